package ui

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/srkael/painel-de-analise-de-ecommerce/internal/charts"
)

// handleChartFragment returns the rendered chart snippet for the requested
// kind. The kind comes from either the URL path or the dropdown's query
// parameter. An unknown kind gets the empty figure with a 200, so a stale
// dropdown can never break the panel.
func (a *App) handleChartFragment(w http.ResponseWriter, r *http.Request) {
	kind := chi.URLParam(r, "kind")
	if kind == "" {
		kind = r.URL.Query().Get("kind")
	}

	snippet, err := a.cache.Snippet(charts.Kind(kind))
	if err != nil {
		a.log.Warn("chart fragment %q fell back to empty figure: %v", kind, err)
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(snippet)); err != nil {
		a.log.Error("error writing chart fragment: %v", err)
	}
}
