package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	StoreMemory = "memory"
	StoreSQL    = "sql"
	StoreRedis  = "redis"
)

const (
	defaultHTTPAddr          = ":8080"
	defaultStoreDriver       = StoreSQL
	defaultDatabaseURL       = "laundryadmin.db"
	defaultRedisAddr         = "localhost:6379"
	defaultRedisPrefix       = "laundryadmin:"
	defaultLogLevel          = "info"
	defaultServicesLoadDelay = "800ms"
)

type Config struct {
	AppEnv   string `mapstructure:"app_env"`
	HTTPAddr string `mapstructure:"http_addr"`
	LogLevel string `mapstructure:"log_level"`

	Store struct {
		Driver      string `mapstructure:"driver"`
		DatabaseURL string `mapstructure:"database_url"`
	} `mapstructure:"store"`

	Redis struct {
		Addr     string `mapstructure:"addr"`
		Password string `mapstructure:"password"`
		DB       int    `mapstructure:"db"`
		Prefix   string `mapstructure:"prefix"`
	} `mapstructure:"redis"`

	CorsAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	// ServicesLoadDelay simulates backend latency for the studio services loader.
	ServicesLoadDelay time.Duration `mapstructure:"services_load_delay"`

	// CascadeDelete removes a studio's payments and service catalog together with the studio.
	CascadeDelete bool `mapstructure:"cascade_delete"`
}

// Load reads configs/config.yaml (optional) and environment overrides.
func Load() (*Config, error) {
	_ = godotenv.Load()
	return LoadFrom(viper.New(), "configs/config.yaml")
}

func LoadFrom(v *viper.Viper, file string) (*Config, error) {
	v.SetConfigType("yaml")
	if file != "" {
		v.SetConfigFile(file)
	}

	v.SetDefault("app_env", "dev")
	v.SetDefault("http_addr", defaultHTTPAddr)
	v.SetDefault("log_level", defaultLogLevel)
	v.SetDefault("store.driver", defaultStoreDriver)
	v.SetDefault("store.database_url", defaultDatabaseURL)
	v.SetDefault("redis.addr", defaultRedisAddr)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", defaultRedisPrefix)
	v.SetDefault("services_load_delay", defaultServicesLoadDelay)
	v.SetDefault("cascade_delete", false)

	bindEnv(v, "app_env", "APP_ENV")
	bindEnv(v, "http_addr", "HTTP_ADDR")
	bindEnv(v, "log_level", "LOG_LEVEL")
	bindEnv(v, "store.driver", "STORE_DRIVER")
	bindEnv(v, "store.database_url", "DATABASE_URL")
	bindEnv(v, "redis.addr", "REDIS_ADDR")
	bindEnv(v, "redis.password", "REDIS_PASSWORD")
	bindEnv(v, "redis.db", "REDIS_DB")
	bindEnv(v, "redis.prefix", "REDIS_PREFIX")
	bindEnv(v, "cors_allowed_origins", "CORS_ALLOWED_ORIGINS")
	bindEnv(v, "services_load_delay", "SERVICES_LOAD_DELAY")
	bindEnv(v, "cascade_delete", "CASCADE_DELETE")

	if file != "" {
		if err := v.ReadInConfig(); err != nil {
			log.Printf("[Config] no config file at %s, using defaults", file)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config unmarshal: %w", err)
	}

	// env lists arrive as a single comma separated string
	cfg.CorsAllowedOrigins = splitList(cfg.CorsAllowedOrigins)
	cfg.AppEnv = strings.ToLower(strings.TrimSpace(cfg.AppEnv))
	cfg.Store.Driver = strings.ToLower(strings.TrimSpace(cfg.Store.Driver))

	if err := validateConfig(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func validateConfig(cfg *Config) error {
	switch cfg.Store.Driver {
	case StoreMemory:
	case StoreSQL:
		if strings.TrimSpace(cfg.Store.DatabaseURL) == "" {
			return fmt.Errorf("DATABASE_URL must not be empty when STORE_DRIVER=sql")
		}
	case StoreRedis:
		if strings.TrimSpace(cfg.Redis.Addr) == "" {
			return fmt.Errorf("REDIS_ADDR must not be empty when STORE_DRIVER=redis")
		}
	default:
		return fmt.Errorf("STORE_DRIVER must be one of: memory, sql, redis (got %q)", cfg.Store.Driver)
	}
	if cfg.ServicesLoadDelay < 0 {
		return fmt.Errorf("SERVICES_LOAD_DELAY must be >= 0")
	}
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return fmt.Errorf("HTTP_ADDR must not be empty")
	}
	if IsProdLike(cfg.AppEnv) && cfg.Store.Driver == StoreMemory {
		return fmt.Errorf("in prod/release STORE_DRIVER must be persistent (sql or redis)")
	}
	return nil
}

func IsProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func bindEnv(v *viper.Viper, key, env string) {
	_ = v.BindEnv(key, env)
}

func splitList(in []string) []string {
	var out []string
	for _, item := range in {
		for _, part := range strings.Split(item, ",") {
			if p := strings.TrimSpace(part); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}
