package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// bluesScale mirrors the Blues continuous scale of the original heatmap.
var bluesScale = []string{"#f7fbff", "#c6dbef", "#6baed6", "#2171b5", "#08306b"}

// BuildHeatmap renders the correlation matrix over every numeric column,
// with the coefficient printed in each cell.
func BuildHeatmap(table *catalog.Table) (Figure, error) {
	if len(table.Numeric) < 2 {
		return nil, errors.DatasetInvalid("need at least two numeric columns for correlations")
	}

	matrix := analysis.Correlations(table)

	labels := make([]string, len(matrix.Keys))
	for i, key := range matrix.Keys {
		labels[i] = key.String()
	}

	cells := make([]opts.HeatMapData, 0, len(labels)*len(labels))
	for i := range labels {
		for j := range labels {
			// Round for in-cell display.
			v := math.Round(matrix.At(i, j)*100) / 100
			cells = append(cells, opts.HeatMapData{Value: [3]interface{}{i, j, v}})
		}
	}

	heatmap := charts.NewHeatMap()
	heatmap.Renderer = NewSnippetRenderer(heatmap, heatmap.Validate)
	heatmap.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{Title: "Mapa de Calor das Correlações entre Variáveis Numéricas"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true}),
		charts.WithXAxisOpts(opts.XAxis{Type: "category", Data: labels, Name: "Variáveis"}),
		charts.WithYAxisOpts(opts.YAxis{Type: "category", Data: labels, Name: "Variáveis"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        -1,
			Max:        1,
			InRange:    &opts.VisualMapInRange{Color: bluesScale},
		}),
	)
	heatmap.AddSeries("correlação", cells,
		charts.WithLabelOpts(opts.Label{Show: true, Position: "inside"}),
	)

	return heatmap, nil
}
