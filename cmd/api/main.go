package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	"laundryadmin/internal/app"
	"laundryadmin/internal/config"
	"laundryadmin/internal/logger"
	"laundryadmin/internal/modules/realtime"
	"laundryadmin/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logg, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := store.RegisterMetrics(reg); err != nil {
		logg.Fatal("register store metrics", zap.Error(err))
	}

	st, closeStore, err := app.OpenStore(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("open store", zap.Error(err))
	}
	defer func() {
		if err := closeStore(); err != nil {
			logg.Warn("close store", zap.Error(err))
		}
	}()

	repos := app.NewRepositories(st, cfg, logg)
	if err := repos.Init(ctx); err != nil {
		logg.Fatal("load collections", zap.Error(err))
	}

	hub := realtime.NewHub(logg)
	stopWatching := hub.Watch(repos.Sources()...)
	defer stopWatching()
	defer hub.Close()

	router, err := app.NewRouter(cfg, logg, repos, hub, reg, reg)
	if err != nil {
		logg.Fatal("build router", zap.Error(err))
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logg.Info("console API listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("store", cfg.Store.Driver),
			zap.Bool("cascade_delete", cfg.CascadeDelete),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logg.Fatal("http server", zap.Error(err))
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	logg.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logg.Warn("graceful shutdown failed", zap.Error(err))
	}
}
