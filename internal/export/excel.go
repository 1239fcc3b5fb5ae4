// Package export produces the downloadable Excel workbook of the cleaned
// dataset and its descriptive statistics.
package export

import (
	"io"
	"math"

	"github.com/xuri/excelize/v2"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/analysis"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

const (
	dataSheet    = "Dados"
	summarySheet = "Resumo"
)

// Workbook assembles an xlsx file with the cleaned table and a summary sheet.
func Workbook(table *catalog.Table, summary catalog.Summary) (*excelize.File, error) {
	f := excelize.NewFile()
	if err := f.SetSheetName("Sheet1", dataSheet); err != nil {
		return nil, errors.Wrap(errors.ExportError(err.Error()), "failed to name data sheet")
	}

	if err := writeDataSheet(f, table); err != nil {
		return nil, err
	}
	if err := writeSummarySheet(f, table, summary); err != nil {
		return nil, err
	}

	return f, nil
}

// Write streams the workbook to w.
func Write(w io.Writer, table *catalog.Table, summary catalog.Summary) error {
	f, err := Workbook(table, summary)
	if err != nil {
		return err
	}
	defer f.Close()

	if _, err := f.WriteTo(w); err != nil {
		return errors.Wrap(errors.ExportError(err.Error()), "failed to write workbook")
	}
	return nil
}

func writeDataSheet(f *excelize.File, table *catalog.Table) error {
	col := 1
	for _, numeric := range table.Numeric {
		if err := writeHeader(f, dataSheet, col, numeric.Key.String()); err != nil {
			return err
		}
		for row, v := range numeric.Values {
			if math.IsNaN(v) {
				continue
			}
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return errors.Wrap(errors.ExportError(err.Error()), "failed to write cell")
			}
		}
		col++
	}
	for _, cat := range table.Categorical {
		if err := writeHeader(f, dataSheet, col, cat.Key.String()); err != nil {
			return err
		}
		for row, v := range cat.Values {
			cell, _ := excelize.CoordinatesToCellName(col, row+2)
			if err := f.SetCellValue(dataSheet, cell, v); err != nil {
				return errors.Wrap(errors.ExportError(err.Error()), "failed to write cell")
			}
		}
		col++
	}
	return nil
}

func writeSummarySheet(f *excelize.File, table *catalog.Table, summary catalog.Summary) error {
	if _, err := f.NewSheet(summarySheet); err != nil {
		return errors.Wrap(errors.ExportError(err.Error()), "failed to create summary sheet")
	}

	headers := []string{"Coluna", "N", "Média", "Mediana", "Desvio Padrão", "Mínimo", "Máximo", "Q25", "Q75"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(summarySheet, cell, h); err != nil {
			return errors.Wrap(errors.ExportError(err.Error()), "failed to write header")
		}
	}

	row := 2
	for _, numeric := range table.Numeric {
		cs, err := analysis.SummarizeColumn(numeric.Key, numeric.Values)
		if err != nil {
			return errors.Wrap(errors.ExportError(err.Error()), "failed to summarize column")
		}
		values := []interface{}{
			cs.Key.String(), cs.SampleSize, cs.Mean, cs.Median, cs.StdDev, cs.Min, cs.Max, cs.Q25, cs.Q75,
		}
		for i, v := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, row)
			if err := f.SetCellValue(summarySheet, cell, v); err != nil {
				return errors.Wrap(errors.ExportError(err.Error()), "failed to write summary row")
			}
		}
		row++
	}

	// Headline block below the per-column table.
	row++
	headline := [][2]interface{}{
		{"Total de produtos", summary.RowCount},
		{"Média de preço", summary.MeanPrice},
		{"Produto mais caro", summary.MaxPrice},
		{"Marcas distintas", summary.BrandCount},
	}
	for _, pair := range headline {
		keyCell, _ := excelize.CoordinatesToCellName(1, row)
		valCell, _ := excelize.CoordinatesToCellName(2, row)
		if err := f.SetCellValue(summarySheet, keyCell, pair[0]); err != nil {
			return errors.Wrap(errors.ExportError(err.Error()), "failed to write headline")
		}
		if err := f.SetCellValue(summarySheet, valCell, pair[1]); err != nil {
			return errors.Wrap(errors.ExportError(err.Error()), "failed to write headline")
		}
		row++
	}

	return nil
}

func writeHeader(f *excelize.File, sheet string, col int, name string) error {
	cell, _ := excelize.CoordinatesToCellName(col, 1)
	if err := f.SetCellValue(sheet, cell, name); err != nil {
		return errors.Wrap(errors.ExportError(err.Error()), "failed to write header")
	}
	return nil
}
