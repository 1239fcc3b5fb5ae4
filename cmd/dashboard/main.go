package main

import (
	"context"
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/config"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/dataset"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/testkit"
	"github.com/srkael/painel-de-analise-de-ecommerce/ui"
)

func main() {
	demo := flag.Bool("demo", false, "serve a generated catalog instead of a dataset file")
	flag.Parse()

	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if *demo {
		appConfig.Data.Demo = true
	}

	logger := internal.DefaultLogger

	table, err := loadTable(appConfig)
	if err != nil {
		log.Fatalf("Failed to load dataset: %v", err)
	}

	app, err := ui.NewApp(ui.Config{
		Host: appConfig.Server.Host,
		Port: appConfig.Server.Port,
	}, table)
	if err != nil {
		log.Fatalf("Failed to create dashboard app: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Pre-render every chart while the listener comes up.
	go func() {
		if err := app.Cache().Warm(ctx); err != nil {
			logger.Warn("chart warmup interrupted: %v", err)
		} else {
			logger.Info("chart cache warmed")
		}
	}()

	if appConfig.Profiling.Enabled {
		go func() {
			addr := "localhost:" + appConfig.Profiling.Port
			logger.Info("pprof listening on http://%s/debug/pprof", addr)
			if err := http.ListenAndServe(addr, nil); err != nil {
				logger.Warn("pprof server stopped: %v", err)
			}
		}()
	}

	if err := app.Start(ctx); err != nil && err != http.ErrServerClosed {
		log.Fatalf("Dashboard server failed: %v", err)
	}
}

func loadTable(appConfig *config.Config) (*catalog.Table, error) {
	if appConfig.Data.Demo {
		internal.DefaultLogger.Info("demo mode: serving a generated catalog")
		return testkit.NewCatalogGenerator(testkit.DefaultCatalogConfig()).GenerateTable(), nil
	}
	return dataset.Load(appConfig.Data.DatasetFile)
}
