// Command seed overwrites every collection in the configured store with the
// default data set.
package main

import (
	"context"
	"flag"
	"log"

	"go.uber.org/zap"

	"laundryadmin/internal/app"
	"laundryadmin/internal/config"
	"laundryadmin/internal/logger"
	"laundryadmin/internal/repository"
	"laundryadmin/internal/store"
)

func main() {
	wipe := flag.Bool("wipe", false, "delete the collections instead of seeding them")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	logg, err := logger.New(cfg.LogLevel, cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logg.Sync() }()

	ctx := context.Background()
	st, closeStore, err := app.OpenStore(ctx, cfg, logg)
	if err != nil {
		logg.Fatal("open store", zap.Error(err))
	}
	defer func() { _ = closeStore() }()

	if *wipe {
		if err := wipeAll(ctx, st); err != nil {
			logg.Fatal("wipe", zap.Error(err))
		}
		logg.Info("collections deleted")
		return
	}

	if err := app.NewRepositories(st, cfg, logg).Reset(ctx); err != nil {
		logg.Fatal("seed", zap.Error(err))
	}
	logg.Info("collections seeded", zap.String("store", cfg.Store.Driver))
}

func wipeAll(ctx context.Context, st store.Store) error {
	for _, key := range []string{
		repository.KeyStudios,
		repository.KeyUsers,
		repository.KeyPayments,
		repository.KeyOnboardRequests,
		repository.KeyStudioServices,
	} {
		for _, k := range []string{key, key + ".seq"} {
			if err := st.Delete(ctx, k); err != nil {
				return err
			}
		}
	}
	return nil
}
