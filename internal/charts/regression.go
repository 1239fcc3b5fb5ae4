package charts

import (
	"fmt"
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// BuildRegression renders price against quantity sold with the OLS fit
// drawn through the cloud.
func BuildRegression(table *catalog.Table) (Figure, error) {
	price, ok := table.NumericByKey(catalog.ColPrice)
	if !ok {
		return nil, errors.NotFound("price column")
	}
	qty, ok := table.NumericByKey(catalog.ColQuantitySold)
	if !ok {
		return nil, errors.NotFound("quantity sold column")
	}

	points := make([]opts.ScatterData, 0, table.RowCount)
	minX, maxX := math.Inf(1), math.Inf(-1)
	for i := 0; i < table.RowCount; i++ {
		if math.IsNaN(price.Values[i]) || math.IsNaN(qty.Values[i]) {
			continue
		}
		if price.Values[i] < minX {
			minX = price.Values[i]
		}
		if price.Values[i] > maxX {
			maxX = price.Values[i]
		}
		points = append(points, opts.ScatterData{
			Value:      []interface{}{price.Values[i], qty.Values[i]},
			SymbolSize: 7,
		})
	}

	fit, ok := analysis.LinearRegression(price.Values, qty.Values)
	if !ok || len(points) == 0 {
		return nil, errors.DatasetInvalid("not enough complete rows for a regression fit")
	}

	scatter := charts.NewScatter()
	scatter.Renderer = NewSnippetRenderer(scatter, scatter.Validate)
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{
			Title:    "Regressão Linear: Preço vs Quantidade Vendida",
			Subtitle: fmt.Sprintf("y = %.2f + %.3f·x   R² = %.3f   p = %.4f", fit.Intercept, fit.Slope, fit.RSquared, fit.PValue),
		}),
		charts.WithColorsOpts(opts.Colors{"#EF553B", "#2a3f5f"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Preço (R$)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Quantidade Vendida", Type: "value"}),
	)
	scatter.AddSeries("produtos", points)

	// Trend line across the observed price range.
	line := charts.NewLine()
	line.AddSeries("tendência", []opts.LineData{
		{Value: []interface{}{minX, fit.Predict(minX)}},
		{Value: []interface{}{maxX, fit.Predict(maxX)}},
	}, charts.WithLineChartOpts(opts.LineChart{ShowSymbol: false}))
	scatter.Overlap(line)

	return scatter, nil
}
