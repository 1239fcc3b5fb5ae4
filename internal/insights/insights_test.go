package insights

import (
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/testkit"
)

func TestReportMarkdown(t *testing.T) {
	table := testkit.NewCatalogGenerator(testkit.DefaultCatalogConfig()).GenerateTable()
	summary, err := analysis.Summarize(table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	md := ReportMarkdown(table, summary)

	for _, want := range []string{
		"## Informações do Dataset",
		"Total de produtos",
		"## Relação Preço × Vendas",
		"Correlação de Pearson",
		"## Marcas em Destaque",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("expected report to contain %q", want)
		}
	}

	// Generated demand falls with price, so the cheap-sells-more reading
	// must be picked.
	if !strings.Contains(md, "Produtos mais baratos tendem a vender mais") {
		t.Error("expected negative correlation interpretation")
	}
}

func TestReportPValueUsesCompletePairs(t *testing.T) {
	// Rows with a missing price or quantity must drop out of the p-value's
	// sample size, not just out of the correlation.
	prices := []float64{10, 20, 30, 40, 50, math.NaN(), 70, 80}
	quantities := []float64{90, 40, 85, 35, 60, 33, math.NaN(), 20}

	table := &catalog.Table{
		RowCount: len(prices),
		Numeric: []catalog.NumericColumn{
			{Key: catalog.ColPrice, Values: prices},
			{Key: catalog.ColQuantitySold, Values: quantities},
		},
		Categorical: []catalog.CategoricalColumn{
			{Key: catalog.ColBrand, Values: []string{"A", "A", "B", "B", "C", "C", "D", "D"}},
			{Key: catalog.ColGender, Values: make([]string, len(prices))},
		},
	}
	summary, err := analysis.Summarize(table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	r := analysis.PairwiseCorrelation(prices, quantities)
	pairs := analysis.PairwiseObservations(prices, quantities)
	if pairs != 6 {
		t.Fatalf("fixture expected 6 complete pairs, got %d", pairs)
	}

	md := ReportMarkdown(table, summary)
	want := fmt.Sprintf("**%.3f** (p = %.4f)", r, analysis.CorrelationPValue(r, pairs))
	if !strings.Contains(md, want) {
		t.Errorf("expected report to contain %q", want)
	}
}

func TestReportHTML(t *testing.T) {
	table := testkit.NewCatalogGenerator(testkit.DefaultCatalogConfig()).GenerateTable()
	summary, err := analysis.Summarize(table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}

	html := string(ReportHTML(table, summary))

	if !strings.Contains(html, "<h2") {
		t.Error("expected rendered headings")
	}
	if !strings.Contains(html, "<strong>") {
		t.Error("expected bold metric values")
	}
	if strings.Contains(html, "## ") {
		t.Error("expected markdown markers to be rendered away")
	}
}
