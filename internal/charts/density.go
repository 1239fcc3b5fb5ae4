package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// densityGridSize is the number of evaluation points for the KDE curve.
const densityGridSize = 200

// BuildDensity renders a gaussian kernel density estimate of the prices as a
// filled curve.
func BuildDensity(table *catalog.Table) (Figure, error) {
	price, ok := table.NumericByKey(catalog.ColPrice)
	if !ok {
		return nil, errors.NotFound("price column")
	}

	points := analysis.KernelDensity(price.Values, densityGridSize)
	if len(points) == 0 {
		return nil, errors.DatasetInvalid("not enough price values for a density estimate")
	}

	values := make([]opts.LineData, len(points))
	for i, p := range points {
		values[i] = opts.LineData{Value: []interface{}{p.X, p.Density}}
	}

	line := charts.NewLine()
	line.Renderer = NewSnippetRenderer(line, line.Validate)
	line.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{Title: "Densidade dos Preços"}),
		charts.WithColorsOpts(opts.Colors{"#00CC96"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "axis"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Preço (R$)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Densidade", Type: "value"}),
		charts.WithLegendOpts(opts.Legend{Show: false}),
	)
	line.AddSeries("densidade", values,
		charts.WithLineChartOpts(opts.LineChart{Smooth: true, ShowSymbol: false}),
		charts.WithAreaStyleOpts(opts.AreaStyle{Opacity: 0.3}),
	)

	return line, nil
}
