// Package insights builds the textual dataset report shown beside the
// charts. The report is composed as markdown and rendered to HTML so it can
// also be served raw for download.
package insights

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/gomarkdown/markdown"
	mdhtml "github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
)

// ReportMarkdown composes the dataset insight report.
func ReportMarkdown(table *catalog.Table, summary catalog.Summary) string {
	var sb strings.Builder

	sb.WriteString("## Informações do Dataset\n\n")
	sb.WriteString(fmt.Sprintf("- Total de produtos: **%d**\n", summary.RowCount))
	sb.WriteString(fmt.Sprintf("- Média de preço: **R$ %.2f**\n", summary.MeanPrice))
	sb.WriteString(fmt.Sprintf("- Mediana de preço: **R$ %.2f**\n", summary.MedianPrice))
	sb.WriteString(fmt.Sprintf("- Produto mais caro: **R$ %.2f**\n", summary.MaxPrice))
	sb.WriteString(fmt.Sprintf("- Marcas distintas: **%d**\n", summary.BrandCount))
	if summary.TotalSold > 0 {
		sb.WriteString(fmt.Sprintf("- Unidades vendidas (total): **%.0f**\n", summary.TotalSold))
	}

	if price, ok := table.NumericByKey(catalog.ColPrice); ok {
		if qty, ok := table.NumericByKey(catalog.ColQuantitySold); ok {
			r := analysis.PairwiseCorrelation(price.Values, qty.Values)
			p := analysis.CorrelationPValue(r, analysis.PairwiseObservations(price.Values, qty.Values))
			sb.WriteString("\n## Relação Preço × Vendas\n\n")
			sb.WriteString(fmt.Sprintf("Correlação de Pearson entre preço e quantidade vendida: **%.3f** (p = %.4f). ", r, p))
			switch {
			case r < -0.3:
				sb.WriteString("Produtos mais baratos tendem a vender mais.\n")
			case r > 0.3:
				sb.WriteString("Produtos mais caros tendem a vender mais.\n")
			default:
				sb.WriteString("Não há relação linear forte entre preço e volume de vendas.\n")
			}
		}
	}

	if brands, ok := table.CategoricalByKey(catalog.ColBrand); ok {
		top := analysis.ValueCounts(brands, 3)
		if len(top) > 0 {
			sb.WriteString("\n## Marcas em Destaque\n\n")
			for i, vc := range top {
				sb.WriteString(fmt.Sprintf("%d. %s (%d produtos)\n", i+1, vc.Value, vc.Count))
			}
		}
	}

	return sb.String()
}

// ReportHTML renders the report for embedding in the dashboard page.
func ReportHTML(table *catalog.Table, summary catalog.Summary) template.HTML {
	md := ReportMarkdown(table, summary)

	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	renderer := mdhtml.NewRenderer(mdhtml.RendererOptions{Flags: mdhtml.CommonFlags})

	return template.HTML(markdown.ToHTML([]byte(md), p, renderer))
}
