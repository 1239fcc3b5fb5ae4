package ui

import (
	"fmt"
	"net/http"
	"time"

	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/charts"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/export"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/insights"
)

// handleDatasetInfo returns file-level metadata about the loaded dataset.
func (a *App) handleDatasetInfo(w http.ResponseWriter, r *http.Request) {
	numericKeys := make([]string, 0, len(a.table.Numeric))
	for _, col := range a.table.Numeric {
		numericKeys = append(numericKeys, col.Key.String())
	}
	categoricalKeys := make([]string, 0, len(a.table.Categorical))
	for _, col := range a.table.Categorical {
		categoricalKeys = append(categoricalKeys, col.Key.String())
	}

	a.writeJSON(w, http.StatusOK, map[string]interface{}{
		"source_file":         a.table.SourceFile,
		"fingerprint":         a.table.Fingerprint.String(),
		"loaded_at":           a.table.LoadedAt.Time().Format(time.RFC3339),
		"row_count":           a.table.RowCount,
		"numeric_columns":     numericKeys,
		"categorical_columns": categoricalKeys,
	})
}

// handleSummary returns the headline descriptive statistics.
func (a *App) handleSummary(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, a.summary)
}

// handleChartList returns the available chart kinds for the dropdown.
func (a *App) handleChartList(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, charts.Options())
}

// handleCorrelations returns the numeric correlation matrix.
func (a *App) handleCorrelations(w http.ResponseWriter, r *http.Request) {
	a.writeJSON(w, http.StatusOK, analysis.Correlations(a.table))
}

// handleExportXLSX streams the dataset workbook.
func (a *App) handleExportXLSX(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", "analise_ecommerce.xlsx"))

	if err := export.Write(w, a.table, a.summary); err != nil {
		a.log.Error("xlsx export failed: %v", err)
		// Headers are already out; nothing sensible left to send.
	}
}

// handleExportReport serves the insight report as raw markdown.
func (a *App) handleExportReport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/markdown; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(insights.ReportMarkdown(a.table, a.summary))); err != nil {
		a.log.Error("error writing report: %v", err)
	}
}
