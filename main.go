package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"medigraph/app/client/neo4j"
	"medigraph/app/config"
	"medigraph/app/service/catalog"
	"medigraph/app/service/gateway"
	"medigraph/app/service/pipeline"
	"medigraph/app/service/session"
	"medigraph/app/util/mylog"

	"github.com/gofiber/fiber/v2/log"
	"github.com/samber/do"
)

func main() {
	di := do.New()
	defer di.Shutdown()
	defer log.Info("Waiting for services to finish...")

	mylog.Preinit()

	appCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	do.ProvideValue(di, appCtx)

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}
	do.ProvideValue(di, cfg)

	if err = mylog.Init(cfg); err != nil {
		log.Fatalf("logging init failed: %v", err)
	}

	do.Provide(di, neo4j.NewClient)
	do.Provide(di, catalog.New)
	do.Provide(di, pipeline.New)
	do.Provide(di, session.New)
	do.Provide(di, gateway.New)

	warmCtx, warmCancel := context.WithTimeout(appCtx, time.Minute)
	if err = do.MustInvoke[*catalog.Service](di).Warm(warmCtx); err != nil {
		slog.Warn("Catalog warmup failed, keyword fallback will be degraded", "error", err)
	}
	warmCancel()

	slog.Info("Service started")

	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt)
		<-sigint

		log.Info("Shutting down...")

		cancel()
	}()

	go func() {
		if err := do.MustInvoke[*gateway.Service](di).Run(); err != nil {
			slog.Error("HTTP server stopped", "error", err)
			cancel()
		}
	}()

	<-appCtx.Done()
}
