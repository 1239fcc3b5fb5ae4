package ui

import (
	"html/template"
	"net/http"

	"github.com/srkael/painel-de-analise-de-ecommerce/internal/charts"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/insights"
)

// handleIndex renders the dashboard page: header, dropdown, dataset info
// card, insights panel and the default chart already in place.
func (a *App) handleIndex(w http.ResponseWriter, r *http.Request) {
	options := charts.Options()
	defaultKind := options[0].Kind

	snippet, err := a.cache.Snippet(defaultKind)
	if err != nil {
		a.log.Error("failed to render default chart: %v", err)
		snippet = template.HTML("")
	}

	a.renderTemplate(w, "dashboard.html", map[string]interface{}{
		"Title":       "📊 Painel de Análise de E-commerce",
		"Options":     options,
		"Selected":    defaultKind,
		"Summary":     a.summary,
		"SourceFile":  a.table.SourceFile,
		"Fingerprint": a.table.Fingerprint.Short(),
		"Insights":    insights.ReportHTML(a.table, a.summary),
		"Chart":       snippet,
	})
}
