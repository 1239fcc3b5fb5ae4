package ui

import (
	"context"
	"embed"
	"fmt"
	"html/template"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/charts"
)

//go:embed templates/* static/*
var embeddedFiles embed.FS

// App represents the dashboard application
type App struct {
	router    *chi.Mux
	table     *catalog.Table
	summary   catalog.Summary
	cache     *charts.Cache
	templates *template.Template
	log       *internal.Logger

	host string
	port string
}

// Config holds dashboard application configuration
type Config struct {
	Host string
	Port string
}

// NewApp creates the dashboard application over a loaded table.
func NewApp(config Config, table *catalog.Table) (*App, error) {
	summary, err := analysis.Summarize(table)
	if err != nil {
		return nil, fmt.Errorf("failed to summarize dataset: %w", err)
	}

	funcMap := template.FuncMap{
		"brl": func(v float64) string { return fmt.Sprintf("R$ %.2f", v) },
		"add": func(a, b int) int { return a + b },
	}
	templates, err := template.New("").Funcs(funcMap).ParseFS(embeddedFiles, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	app := &App{
		router:    chi.NewRouter(),
		table:     table,
		summary:   summary,
		cache:     charts.NewCache(table),
		templates: templates,
		log:       internal.DefaultLogger,
		host:      config.Host,
		port:      config.Port,
	}

	app.setupMiddleware()
	app.setupRoutes()

	return app, nil
}

// Cache exposes the chart cache for startup warmup.
func (a *App) Cache() *charts.Cache {
	return a.cache
}

// setupMiddleware configures HTTP middleware
func (a *App) setupMiddleware() {
	a.router.Use(middleware.Logger)
	a.router.Use(middleware.Recoverer)
	a.router.Use(middleware.Compress(5))

	// Serve static files
	staticFS := http.FileServer(http.FS(embeddedFiles))
	a.router.Handle("/static/*", staticFS)
}

// setupRoutes configures the application routes
func (a *App) setupRoutes() {
	a.router.Get("/", a.handleIndex)

	// HTMX fragment endpoints
	a.router.Get("/fragments/chart", a.handleChartFragment)
	a.router.Get("/fragments/chart/{kind}", a.handleChartFragment)

	// JSON API endpoints
	a.router.Get("/api/dataset/info", a.handleDatasetInfo)
	a.router.Get("/api/summary", a.handleSummary)
	a.router.Get("/api/charts", a.handleChartList)
	a.router.Get("/api/correlations", a.handleCorrelations)

	// Downloads
	a.router.Get("/export/xlsx", a.handleExportXLSX)
	a.router.Get("/export/report.md", a.handleExportReport)
}

// Start runs the HTTP server until the context is cancelled.
func (a *App) Start(ctx context.Context) error {
	addr := a.host + ":" + a.port
	server := &http.Server{
		Addr:              addr,
		Handler:           a.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("dashboard listening on http://%s", addr)
		errCh <- server.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

// Router exposes the handler tree, mainly for tests.
func (a *App) Router() http.Handler {
	return a.router
}
