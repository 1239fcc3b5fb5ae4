package testkit

import (
	"fmt"
	"math"
	"math/rand"
	"strings"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/domain/core"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/dataset"
)

// CatalogGeneratorConfig configures the product catalog generator
type CatalogGeneratorConfig struct {
	ProductCount int   `json:"product_count"`
	Seed         int64 `json:"seed"`
}

// DefaultCatalogConfig returns sensible defaults for catalog generation
func DefaultCatalogConfig() CatalogGeneratorConfig {
	return CatalogGeneratorConfig{
		ProductCount: 400,
		Seed:         42,
	}
}

// CatalogGenerator generates realistic e-commerce product data with known
// structure: quantity sold falls with price, review counts track sales.
// Deterministic for a given seed.
type CatalogGenerator struct {
	config CatalogGeneratorConfig
	rng    *rand.Rand
}

// NewCatalogGenerator creates a new catalog generator
func NewCatalogGenerator(config CatalogGeneratorConfig) *CatalogGenerator {
	return &CatalogGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

var demoBrands = []string{
	"Lupo", "Hering", "Malwee", "Nike", "Adidas", "Puma", "Olympikus", "Mizuno", "Kappa", "Fila",
}

var demoGenders = []string{
	"Feminino", "Masculino", "Unissex", "Meninas", "Meninos",
}

type product struct {
	brand    string
	gender   string
	price    float64
	quantity float64
	reviews  float64
	rating   float64
	discount float64
}

func (g *CatalogGenerator) generateProducts() []product {
	products := make([]product, g.config.ProductCount)
	for i := range products {
		// Brand and gender popularity decay with index, so value counts
		// have a stable ranking.
		brandIdx := int(math.Abs(g.rng.NormFloat64()) * 2)
		if brandIdx >= len(demoBrands) {
			brandIdx = len(demoBrands) - 1
		}
		genderIdx := int(math.Abs(g.rng.NormFloat64()) * 1.2)
		if genderIdx >= len(demoGenders) {
			genderIdx = len(demoGenders) - 1
		}

		price := 20 + g.rng.ExpFloat64()*80
		if price > 500 {
			price = 500
		}

		// Demand decays with price, plus noise.
		quantity := math.Max(0, 1200-2*price+g.rng.NormFloat64()*120)
		reviews := math.Max(0, quantity*0.12+g.rng.NormFloat64()*10)

		products[i] = product{
			brand:    demoBrands[brandIdx],
			gender:   demoGenders[genderIdx],
			price:    math.Round(price*100) / 100,
			quantity: math.Round(quantity),
			reviews:  math.Round(reviews),
			rating:   math.Round((3.2+g.rng.Float64()*1.8)*10) / 10,
			discount: float64(g.rng.Intn(11) * 5),
		}
	}
	return products
}

// GenerateTable produces a loaded table directly, bypassing file parsing.
func (g *CatalogGenerator) GenerateTable() *catalog.Table {
	products := g.generateProducts()
	n := len(products)

	prices := make([]float64, n)
	quantities := make([]float64, n)
	reviews := make([]float64, n)
	ratings := make([]float64, n)
	discounts := make([]float64, n)
	brands := make([]string, n)
	genders := make([]string, n)

	for i, p := range products {
		prices[i] = p.price
		quantities[i] = p.quantity
		reviews[i] = p.reviews
		ratings[i] = p.rating
		discounts[i] = p.discount
		brands[i] = p.brand
		genders[i] = p.gender
	}

	return &catalog.Table{
		SourceFile: "testkit://catalog",
		LoadedAt:   core.Now(),
		RowCount:   n,
		Numeric: []catalog.NumericColumn{
			{Key: catalog.ColPrice, Values: prices},
			{Key: catalog.ColQuantitySold, Values: quantities},
			{Key: catalog.ColReviewCount, Values: reviews},
			{Key: catalog.ColRating, Values: ratings},
			{Key: catalog.ColDiscount, Values: discounts},
		},
		Categorical: []catalog.CategoricalColumn{
			{Key: catalog.ColBrand, Values: brands},
			{Key: catalog.ColGender, Values: genders},
		},
	}
}

// GenerateCSV produces the dataset in source-file format, including the
// marketplace quirks the coercer must handle ("R$" prefixes, decimal commas,
// "mil" shorthand).
func (g *CatalogGenerator) GenerateCSV() []byte {
	products := g.generateProducts()

	var sb strings.Builder
	sb.WriteString("Título,Preço,Qtd_Vendidos,N_Avaliações,Nota,Desconto,Marca,Gênero\n")
	for i, p := range products {
		qty := fmt.Sprintf("%.0f", p.quantity)
		if p.quantity >= 1000 {
			qty = fmt.Sprintf("+%.0fmil", math.Floor(p.quantity/1000))
		}
		sb.WriteString(fmt.Sprintf("Produto %03d,\"R$ %s\",%s,%.0f,\"%s\",%.0f%%,%s,%s\n",
			i+1,
			formatBRL(p.price),
			qty,
			p.reviews,
			strings.ReplaceAll(fmt.Sprintf("%.1f", p.rating), ".", ","),
			p.discount,
			p.brand,
			p.gender,
		))
	}
	return []byte(sb.String())
}

// GenerateRawData parses the generated CSV text into raw rows, for tests
// that exercise coercion without touching the filesystem.
func (g *CatalogGenerator) GenerateRawData() *dataset.RawData {
	lines := strings.Split(strings.TrimSpace(string(g.GenerateCSV())), "\n")
	headers := splitCSVLine(lines[0])

	raw := &dataset.RawData{Headers: headers}
	for _, line := range lines[1:] {
		fields := splitCSVLine(line)
		row := make(dataset.RawRow)
		for i, h := range headers {
			if i < len(fields) {
				row[h] = fields[i]
			}
		}
		raw.Rows = append(raw.Rows, row)
	}
	return raw
}

func formatBRL(v float64) string {
	s := fmt.Sprintf("%.2f", v)
	return strings.ReplaceAll(s, ".", ",")
}

// splitCSVLine handles the quoted fields the generator emits. Test-only
// convenience, not a general CSV parser.
func splitCSVLine(line string) []string {
	var fields []string
	var cur strings.Builder
	inQuotes := false
	for _, r := range line {
		switch {
		case r == '"':
			inQuotes = !inQuotes
		case r == ',' && !inQuotes:
			fields = append(fields, cur.String())
			cur.Reset()
		default:
			cur.WriteRune(r)
		}
	}
	fields = append(fields, cur.String())
	return fields
}
