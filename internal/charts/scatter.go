package charts

import (
	"math"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// viridisScale approximates the Viridis continuous color scale used for the
// quantity-sold dimension.
var viridisScale = []string{"#440154", "#3b528b", "#21918c", "#5ec962", "#fde725"}

// BuildScatter renders price against review count, with each point colored
// by quantity sold.
func BuildScatter(table *catalog.Table) (Figure, error) {
	price, ok := table.NumericByKey(catalog.ColPrice)
	if !ok {
		return nil, errors.NotFound("price column")
	}
	reviews, ok := table.NumericByKey(catalog.ColReviewCount)
	if !ok {
		return nil, errors.NotFound("review count column")
	}
	qty, ok := table.NumericByKey(catalog.ColQuantitySold)
	if !ok {
		return nil, errors.NotFound("quantity sold column")
	}

	points := make([]opts.ScatterData, 0, table.RowCount)
	maxQty := 0.0
	for i := 0; i < table.RowCount; i++ {
		if math.IsNaN(price.Values[i]) || math.IsNaN(reviews.Values[i]) || math.IsNaN(qty.Values[i]) {
			continue
		}
		if qty.Values[i] > maxQty {
			maxQty = qty.Values[i]
		}
		points = append(points, opts.ScatterData{
			// The third dimension feeds the visual map.
			Value:      []interface{}{price.Values[i], reviews.Values[i], qty.Values[i]},
			SymbolSize: 8,
		})
	}
	if len(points) == 0 {
		return nil, errors.DatasetInvalid("no complete rows for scatter")
	}

	scatter := charts.NewScatter()
	scatter.Renderer = NewSnippetRenderer(scatter, scatter.Validate)
	scatter.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{Title: "Relação entre Preço, Avaliações e Quantidade Vendida"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Preço (R$)", Type: "value"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Número de Avaliações", Type: "value"}),
		charts.WithVisualMapOpts(opts.VisualMap{
			Calculable: true,
			Min:        0,
			Max:        float32(maxQty),
			Text:       []string{"Qtd Vendida", ""},
			InRange:    &opts.VisualMapInRange{Color: viridisScale},
		}),
	)
	scatter.AddSeries("produtos", points)

	return scatter, nil
}
