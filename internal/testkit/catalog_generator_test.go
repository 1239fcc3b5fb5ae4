package testkit

import (
	"bytes"
	"testing"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
)

func TestGenerateTableDeterministic(t *testing.T) {
	config := DefaultCatalogConfig()

	first := NewCatalogGenerator(config).GenerateTable()
	second := NewCatalogGenerator(config).GenerateTable()

	if first.RowCount != second.RowCount {
		t.Fatalf("row counts differ: %d vs %d", first.RowCount, second.RowCount)
	}

	p1, _ := first.NumericByKey(catalog.ColPrice)
	p2, _ := second.NumericByKey(catalog.ColPrice)
	for i := range p1.Values {
		if p1.Values[i] != p2.Values[i] {
			t.Fatalf("prices diverge at row %d for the same seed", i)
		}
	}
}

func TestGenerateTableShape(t *testing.T) {
	config := CatalogGeneratorConfig{ProductCount: 50, Seed: 7}
	table := NewCatalogGenerator(config).GenerateTable()

	if table.RowCount != 50 {
		t.Errorf("expected 50 rows, got %d", table.RowCount)
	}
	if missing := table.MissingColumns(); len(missing) != 0 {
		t.Errorf("generated table missing required columns: %v", missing)
	}

	price, ok := table.NumericByKey(catalog.ColPrice)
	if !ok {
		t.Fatal("expected price column")
	}
	for i, v := range price.Values {
		if v < 20 || v > 500 {
			t.Errorf("price out of range at row %d: %v", i, v)
		}
	}

	qty, _ := table.NumericByKey(catalog.ColQuantitySold)
	for i, v := range qty.Values {
		if v < 0 {
			t.Errorf("negative quantity at row %d: %v", i, v)
		}
	}
}

func TestGenerateCSVRoundTrip(t *testing.T) {
	config := CatalogGeneratorConfig{ProductCount: 30, Seed: 3}
	g := NewCatalogGenerator(config)

	csv := g.GenerateCSV()
	if !bytes.Contains(csv, []byte("Preço")) {
		t.Fatal("expected header row in generated CSV")
	}
	if !bytes.Contains(csv, []byte("R$ ")) {
		t.Error("expected currency-formatted prices")
	}

	raw := NewCatalogGenerator(config).GenerateRawData()
	if len(raw.Rows) != 30 {
		t.Fatalf("expected 30 raw rows, got %d", len(raw.Rows))
	}
	if raw.Rows[0]["Marca"] == "" {
		t.Error("expected brand cell in first raw row")
	}
	if raw.Rows[0]["Preço"] == "" {
		t.Error("expected price cell in first raw row")
	}
}
