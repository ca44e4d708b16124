// Package app wires configuration, storage, repositories and HTTP routes.
package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"laundryadmin/internal/config"
	"laundryadmin/internal/database"
	"laundryadmin/internal/middleware"
	"laundryadmin/internal/modules/catalog"
	"laundryadmin/internal/modules/onboarding"
	"laundryadmin/internal/modules/payments"
	"laundryadmin/internal/modules/realtime"
	"laundryadmin/internal/modules/studios"
	"laundryadmin/internal/modules/users"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/store"
)

// OpenStore opens the configured backend wrapped with metrics. The returned
// close function releases its connections.
func OpenStore(ctx context.Context, cfg *config.Config, log *zap.Logger) (store.Store, func() error, error) {
	noop := func() error { return nil }

	switch cfg.Store.Driver {
	case config.StoreMemory:
		log.Warn("using in-memory store; data is lost on restart")
		return store.NewInstrumented(store.NewMemory()), noop, nil

	case config.StoreSQL:
		db, err := database.Connect(cfg.Store.DatabaseURL, log)
		if err != nil {
			return nil, nil, fmt.Errorf("connect database: %w", err)
		}
		st, err := store.NewSQL(db)
		if err != nil {
			return nil, nil, err
		}
		closeDB := func() error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.Close()
		}
		return store.NewInstrumented(st), closeDB, nil

	case config.StoreRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		if err := client.Ping(pingCtx).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		log.Info("using Redis store", zap.String("addr", cfg.Redis.Addr), zap.String("prefix", cfg.Redis.Prefix))
		return store.NewInstrumented(store.NewRedis(client, cfg.Redis.Prefix)), client.Close, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Store.Driver)
}

type Repositories struct {
	Studios   *repository.StudioRepository
	Customers *repository.CustomerRepository
	Payments  *repository.PaymentRepository
	Requests  *repository.OnboardRequestRepository
	Catalog   *repository.CatalogRepository
}

func NewRepositories(st store.Store, cfg *config.Config, log *zap.Logger) *Repositories {
	return &Repositories{
		Studios:   repository.NewStudioRepository(st, log),
		Customers: repository.NewCustomerRepository(st, log),
		Payments:  repository.NewPaymentRepository(st, log, time.Now),
		Requests:  repository.NewOnboardRequestRepository(st, log, time.Now),
		Catalog:   repository.NewCatalogRepository(st, log, cfg.ServicesLoadDelay),
	}
}

type lifecycle interface {
	Init(ctx context.Context) error
	Reset(ctx context.Context) error
}

func (r *Repositories) all() []lifecycle {
	return []lifecycle{r.Studios, r.Customers, r.Payments, r.Requests, r.Catalog}
}

// Init loads every collection, seeding absent or unreadable ones.
func (r *Repositories) Init(ctx context.Context) error {
	for _, repo := range r.all() {
		if err := repo.Init(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Reset overwrites every collection with its seed.
func (r *Repositories) Reset(ctx context.Context) error {
	for _, repo := range r.all() {
		if err := repo.Reset(ctx); err != nil {
			return err
		}
	}
	return nil
}

// Sources lists the repositories that publish change events. Customers are read-only.
func (r *Repositories) Sources() []realtime.Source {
	return []realtime.Source{r.Studios, r.Payments, r.Requests, r.Catalog}
}

// NewRouter builds the console API. reg receives the HTTP metrics; gatherer backs /metrics.
func NewRouter(cfg *config.Config, log *zap.Logger, repos *Repositories, hub *realtime.Hub, reg prometheus.Registerer, gatherer prometheus.Gatherer) (*gin.Engine, error) {
	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	httpMetrics, err := middleware.NewHTTPMetrics(reg)
	if err != nil {
		return nil, err
	}

	r := gin.New()
	r.Use(
		middleware.RequestID(log),
		middleware.ErrorLogger(log),
		middleware.CORS(cfg.CorsAllowedOrigins),
		httpMetrics.Middleware(),
		middleware.Navigation(),
	)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "store": cfg.Store.Driver})
	})
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))

	studioService := studios.NewService(repos.Studios, repos.Payments, repos.Catalog, cfg.CascadeDelete, log)
	userService := users.NewService(repos.Customers)
	paymentService := payments.NewService(repos.Studios, repos.Payments, time.Now)
	onboardingService := onboarding.NewService(repos.Requests)
	catalogService := catalog.NewService(repos.Studios, repos.Catalog, log)

	v1 := r.Group("/api/v1")
	{
		studios.NewHandler(studioService).RegisterRoutes(v1)
		users.NewHandler(userService).RegisterRoutes(v1)
		payments.NewHandler(paymentService).RegisterRoutes(v1)
		onboarding.NewHandler(onboardingService).RegisterRoutes(v1)
		catalog.NewHandler(catalogService).RegisterRoutes(v1)
		realtime.NewHandler(hub, log).RegisterRoutes(v1)
	}
	return r, nil
}
