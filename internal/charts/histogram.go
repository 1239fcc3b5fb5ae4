package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// histogramBins matches the binning of the original dashboard.
const histogramBins = 30

// BuildHistogram renders the price distribution as a 30-bin histogram.
func BuildHistogram(table *catalog.Table) (Figure, error) {
	price, ok := table.NumericByKey(catalog.ColPrice)
	if !ok {
		return nil, errors.NotFound("price column")
	}

	bins := analysis.Histogram(price.Values, histogramBins)
	if len(bins) == 0 {
		return nil, errors.DatasetInvalid("no price values to bin")
	}

	labels := make([]string, len(bins))
	values := make([]opts.BarData, len(bins))
	for i, bin := range bins {
		labels[i] = bin.Label()
		values[i] = opts.BarData{Value: bin.Count}
	}

	bar := charts.NewBar()
	bar.Renderer = NewSnippetRenderer(bar, bar.Validate)
	bar.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{Title: "Distribuição dos Preços dos Produtos"}),
		charts.WithColorsOpts(opts.Colors{"#636EFA"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Preço (R$)"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Quantidade de Produtos"}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
	)
	bar.SetXAxis(labels).
		AddSeries("produtos", values).
		SetSeriesOptions(charts.WithBarChartOpts(opts.BarChart{BarGap: "10%"}))

	return bar, nil
}
