package export

import (
	"bytes"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/testkit"
)

func exportFixture(t *testing.T) (*catalog.Table, catalog.Summary) {
	t.Helper()
	table := testkit.NewCatalogGenerator(testkit.CatalogGeneratorConfig{ProductCount: 25, Seed: 9}).GenerateTable()
	summary, err := analysis.Summarize(table)
	if err != nil {
		t.Fatalf("Summarize failed: %v", err)
	}
	return table, summary
}

func TestWorkbookSheets(t *testing.T) {
	table, summary := exportFixture(t)

	f, err := Workbook(table, summary)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 2 {
		t.Fatalf("expected 2 sheets, got %v", sheets)
	}
	if sheets[0] != "Dados" || sheets[1] != "Resumo" {
		t.Errorf("expected sheets Dados and Resumo, got %v", sheets)
	}
}

func TestWorkbookDataSheet(t *testing.T) {
	table, summary := exportFixture(t)

	f, err := Workbook(table, summary)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Dados")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	if len(rows) != table.RowCount+1 {
		t.Errorf("expected %d rows including header, got %d", table.RowCount+1, len(rows))
	}

	header := rows[0]
	expectedCols := len(table.Numeric) + len(table.Categorical)
	if len(header) != expectedCols {
		t.Fatalf("expected %d columns, got %d", expectedCols, len(header))
	}
	if header[0] != catalog.ColPrice.String() {
		t.Errorf("expected first column %s, got %s", catalog.ColPrice, header[0])
	}
}

func TestWorkbookSummarySheet(t *testing.T) {
	table, summary := exportFixture(t)

	f, err := Workbook(table, summary)
	if err != nil {
		t.Fatalf("Workbook failed: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Resumo")
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	if rows[0][0] != "Coluna" || rows[0][2] != "Média" {
		t.Errorf("unexpected summary header: %v", rows[0])
	}

	// One stats row per numeric column, then a gap, then the headline block.
	if len(rows) < 1+len(table.Numeric)+1+4 {
		t.Errorf("summary sheet too short: %d rows", len(rows))
	}
	if rows[1][0] != catalog.ColPrice.String() {
		t.Errorf("expected price stats first, got %s", rows[1][0])
	}
}

func TestWrite(t *testing.T) {
	table, summary := exportFixture(t)

	var buf bytes.Buffer
	if err := Write(&buf, table, summary); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected workbook bytes")
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("written workbook does not reopen: %v", err)
	}
	defer f.Close()
	if got := len(f.GetSheetList()); got != 2 {
		t.Errorf("expected 2 sheets after round trip, got %d", got)
	}
}
