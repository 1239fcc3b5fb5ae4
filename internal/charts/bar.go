package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// topBrands caps the brand bar chart at the seven most common brands.
const topBrands = 7

// pastelPalette mirrors the qualitative pastel palette of the original.
var pastelPalette = []string{
	"#66c5cc", "#f6cf71", "#f89c74", "#dcb0f2", "#87c55f", "#9eb9f3", "#fe88b1",
}

// BuildBar renders the most popular brands by product count.
func BuildBar(table *catalog.Table) (Figure, error) {
	brands, ok := table.CategoricalByKey(catalog.ColBrand)
	if !ok {
		return nil, errors.NotFound("brand column")
	}

	counts := analysis.ValueCounts(brands, topBrands)
	if len(counts) == 0 {
		return nil, errors.DatasetInvalid("no brand values to count")
	}

	labels := make([]string, len(counts))
	values := make([]opts.BarData, len(counts))
	for i, vc := range counts {
		labels[i] = vc.Value
		values[i] = opts.BarData{
			Value:     vc.Count,
			ItemStyle: &opts.ItemStyle{Color: pastelPalette[i%len(pastelPalette)]},
		}
	}

	bar := charts.NewBar()
	bar.Renderer = NewSnippetRenderer(bar, bar.Validate)
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{Title: "Top 7 Marcas mais Populares"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Marca"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Quantidade de Produtos"}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
	)
	bar.SetXAxis(labels).AddSeries("marcas", values)

	return bar, nil
}
