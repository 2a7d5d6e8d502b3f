package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"noteshare/internal/app/server/api"
	"noteshare/internal/app/server/config"
	"noteshare/internal/infrastructure/assetcache"
	"noteshare/internal/utils/logger"
)

func main() {
	bootLog := logger.New(logger.EnvLocal)

	conf, err := config.Load()
	if err != nil {
		bootLog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	log := logger.WithLevel(conf.Env, conf.Logger.LogLevel)

	fetcher, err := assetcache.NewHTTPFetcher(conf.Cache.Origin, conf.Server.FetchTimeout)
	if err != nil {
		log.Error("invalid asset origin", "origin", conf.Cache.Origin, "error", err)
		os.Exit(1)
	}

	manager, err := assetcache.NewManager(assetcache.Config{
		Name:   conf.Cache.Name,
		Assets: conf.Cache.Assets,
		Origin: conf.Cache.Origin,
	}, assetcache.NewRegistry(), fetcher, log)
	if err != nil {
		log.Error("failed to create cache manager", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// the server still proxies to the origin when install fails
	if err := manager.Install(ctx); err != nil {
		log.Warn("serving without cache", "error", err)
	} else {
		manager.Activate()
	}

	srv := &http.Server{
		Addr:              conf.Server.RunAddress,
		Handler:           api.New(manager, log),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("server started", "address", conf.Server.RunAddress, "cache", conf.Cache.Name)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server failed", "error", err)
			stop()
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", "error", err)
	}
	log.Info("server stopped")
}
