package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// Kind identifies one of the dashboard's chart types. Values double as the
// dropdown option values and the fragment URL parameter.
type Kind string

const (
	KindHistogram  Kind = "histograma"
	KindScatter    Kind = "dispersao"
	KindHeatmap    Kind = "heatmap"
	KindBar        Kind = "barras"
	KindPie        Kind = "pizza"
	KindDensity    Kind = "densidade"
	KindRegression Kind = "regressao"
)

// Option is one dropdown entry.
type Option struct {
	Kind  Kind   `json:"kind"`
	Label string `json:"label"`
}

// Options returns the dropdown entries in display order. The first entry is
// the default selection.
func Options() []Option {
	return []Option{
		{Kind: KindHistogram, Label: "📈 Histograma de Preços"},
		{Kind: KindScatter, Label: "🟢 Dispersão: Preço vs Avaliações"},
		{Kind: KindHeatmap, Label: "🔥 Mapa de Calor de Correlações"},
		{Kind: KindBar, Label: "📊 Barras: Marcas Populares"},
		{Kind: KindPie, Label: "🍕 Pizza: Distribuição de Gêneros"},
		{Kind: KindDensity, Label: "🌊 Densidade de Preços"},
		{Kind: KindRegression, Label: "📉 Regressão Linear (Preço vs Qtd Vendida)"},
	}
}

// BuildFunc constructs a figure from the loaded table.
type BuildFunc func(*catalog.Table) (Figure, error)

// Registry maps every chart kind to its builder.
func Registry() map[Kind]BuildFunc {
	return map[Kind]BuildFunc{
		KindHistogram:  BuildHistogram,
		KindScatter:    BuildScatter,
		KindHeatmap:    BuildHeatmap,
		KindBar:        BuildBar,
		KindPie:        BuildPie,
		KindDensity:    BuildDensity,
		KindRegression: BuildRegression,
	}
}

// Build resolves a kind and constructs its figure. Unknown kinds fall back
// to the empty figure rather than failing, so a stale or hand-edited
// dropdown value can never break the page. The error reports the miss.
func Build(kind Kind, table *catalog.Table) (Figure, error) {
	build, ok := Registry()[kind]
	if !ok {
		return EmptyFigure(), errors.ChartUnknown(string(kind))
	}
	return build(table)
}

// EmptyFigure returns a blank chart, the equivalent of an empty plot.
func EmptyFigure() Figure {
	chart := charts.NewScatter()
	chart.Renderer = NewSnippetRenderer(chart, chart.Validate)
	chart.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
	)
	return chart
}

func defaultInit() opts.Initialization {
	return opts.Initialization{
		Width:  "100%",
		Height: "600px",
	}
}
