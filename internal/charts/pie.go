package charts

import (
	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// topGenders caps the donut at the three most common gender categories.
const topGenders = 3

// set3Palette mirrors the qualitative Set3 palette of the original.
var set3Palette = []string{"#8dd3c7", "#ffffb3", "#bebada", "#fb8072", "#80b1d3"}

// BuildPie renders the gender split as a donut with a 30% hole.
func BuildPie(table *catalog.Table) (Figure, error) {
	genders, ok := table.CategoricalByKey(catalog.ColGender)
	if !ok {
		return nil, errors.NotFound("gender column")
	}

	counts := analysis.ValueCounts(genders, topGenders)
	if len(counts) == 0 {
		return nil, errors.DatasetInvalid("no gender values to count")
	}

	slices := make([]opts.PieData, len(counts))
	for i, vc := range counts {
		slices[i] = opts.PieData{
			Name:      vc.Value,
			Value:     vc.Count,
			ItemStyle: &opts.ItemStyle{Color: set3Palette[i%len(set3Palette)]},
		}
	}

	pie := charts.NewPie()
	pie.Renderer = NewSnippetRenderer(pie, pie.Validate)
	pie.SetGlobalOptions(
		charts.WithInitializationOpts(defaultInit()),
		charts.WithTitleOpts(opts.Title{Title: "Distribuição dos Produtos por Gênero (Top 3)"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: true, Trigger: "item"}),
	)
	pie.AddSeries("gêneros", slices).
		SetSeriesOptions(
			charts.WithPieChartOpts(opts.PieChart{Radius: []string{"30%", "60%"}}),
			charts.WithLabelOpts(opts.Label{Show: true, Formatter: "{b}: {c} ({d}%)"}),
		)

	return pie, nil
}
