package charts

import (
	"bytes"
	"strings"
	"testing"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/testkit"
)

func demoTable(t *testing.T) *catalog.Table {
	t.Helper()
	return testkit.NewCatalogGenerator(testkit.DefaultCatalogConfig()).GenerateTable()
}

func renderToString(t *testing.T, figure Figure) string {
	t.Helper()
	var buf bytes.Buffer
	if err := figure.Render(&buf); err != nil {
		t.Fatalf("render failed: %v", err)
	}
	return buf.String()
}

func TestRegistryCoversAllOptions(t *testing.T) {
	registry := Registry()
	for _, option := range Options() {
		if _, ok := registry[option.Kind]; !ok {
			t.Errorf("dropdown option %s has no registered builder", option.Kind)
		}
	}
	if len(registry) != len(Options()) {
		t.Errorf("registry has %d builders but dropdown has %d options", len(registry), len(Options()))
	}
}

func TestBuildEveryKind(t *testing.T) {
	table := demoTable(t)

	for kind := range Registry() {
		kind := kind
		t.Run(string(kind), func(t *testing.T) {
			figure, err := Build(kind, table)
			if err != nil {
				t.Fatalf("Build(%s) failed: %v", kind, err)
			}

			html := renderToString(t, figure)
			if !strings.Contains(html, "<div") {
				t.Error("expected snippet to contain a container div")
			}
			if !strings.Contains(html, "echarts.init") {
				t.Error("expected snippet to initialize an echarts instance")
			}
			if strings.Contains(html, "<html") || strings.Contains(html, "<head") {
				t.Error("expected a fragment, not a full page")
			}
		})
	}
}

func TestBuildUnknownKind(t *testing.T) {
	figure, err := Build(Kind("tabela"), demoTable(t))
	if err == nil {
		t.Fatal("expected error for unknown chart kind")
	}
	if errors.GetCode(err) != errors.CodeChartUnknown {
		t.Errorf("expected CHART_UNKNOWN code, got %s", errors.GetCode(err))
	}
	if figure == nil {
		t.Fatal("expected fallback figure, got nil")
	}
	if html := renderToString(t, figure); !strings.Contains(html, "echarts.init") {
		t.Error("expected fallback figure to render a blank chart")
	}
}

func TestBuildHistogramTitle(t *testing.T) {
	figure, err := BuildHistogram(demoTable(t))
	if err != nil {
		t.Fatalf("BuildHistogram failed: %v", err)
	}
	if html := renderToString(t, figure); !strings.Contains(html, "Distribuição dos Preços dos Produtos") {
		t.Error("expected histogram title in snippet")
	}
}

func TestBuildBarTopBrands(t *testing.T) {
	figure, err := BuildBar(demoTable(t))
	if err != nil {
		t.Fatalf("BuildBar failed: %v", err)
	}
	html := renderToString(t, figure)
	if !strings.Contains(html, "Lupo") {
		t.Error("expected most popular brand on the axis")
	}
}

func TestBuildRegressionSubtitle(t *testing.T) {
	figure, err := BuildRegression(demoTable(t))
	if err != nil {
		t.Fatalf("BuildRegression failed: %v", err)
	}
	html := renderToString(t, figure)
	if !strings.Contains(html, "R²") {
		t.Error("expected fit statistics in the subtitle")
	}
}

func TestOptionsDefaultIsHistogram(t *testing.T) {
	options := Options()
	if len(options) == 0 {
		t.Fatal("expected at least one dropdown option")
	}
	if options[0].Kind != KindHistogram {
		t.Errorf("expected histogram as the default selection, got %s", options[0].Kind)
	}
	for _, option := range options {
		if option.Label == "" {
			t.Errorf("option %s has no label", option.Kind)
		}
	}
}
