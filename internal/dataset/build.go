package dataset

import (
	"fmt"
	"math"
	"os"
	"strings"

	"github.com/srkael/painel-de-analise-de-ecommerce/domain/catalog"
	"github.com/srkael/painel-de-analise-de-ecommerce/domain/core"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal"
	"github.com/srkael/painel-de-analise-de-ecommerce/internal/errors"
)

// forcedKinds pins the well-known columns so a half-empty export cannot flip
// a price column to categorical or a brand column to numeric.
var forcedKinds = map[core.ColumnKey]catalog.ColumnKind{
	catalog.ColPrice:        catalog.KindNumeric,
	catalog.ColQuantitySold: catalog.KindNumeric,
	catalog.ColReviewCount:  catalog.KindNumeric,
	catalog.ColRating:       catalog.KindNumeric,
	catalog.ColDiscount:     catalog.KindNumeric,
	catalog.ColBrand:        catalog.KindCategorical,
	catalog.ColGender:       catalog.KindCategorical,
}

// Load reads, coerces and cleans the dataset file into an immutable table.
func Load(path string) (*catalog.Table, error) {
	raw, err := NewDataReader(path).ReadData()
	if err != nil {
		return nil, errors.Wrap(errors.DatasetInvalid(err.Error()), "failed to read dataset")
	}

	table, err := Build(raw)
	if err != nil {
		return nil, err
	}

	table.SourceFile = path
	if data, err := os.ReadFile(path); err == nil {
		table.Fingerprint = core.NewFingerprint(data)
	}

	internal.DefaultLogger.Info("dataset loaded: %d rows, %d numeric + %d categorical columns (fingerprint %s)",
		table.RowCount, len(table.Numeric), len(table.Categorical), table.Fingerprint.Short())
	return table, nil
}

// Build coerces raw rows into typed columns and drops rows where price or
// quantity sold failed coercion, mirroring the cleaning the dashboard expects.
func Build(raw *RawData) (*catalog.Table, error) {
	if raw == nil || len(raw.Headers) == 0 {
		return nil, errors.DatasetInvalid("dataset has no columns")
	}

	table := &catalog.Table{LoadedAt: core.Now()}

	kinds := make(map[string]catalog.ColumnKind, len(raw.Headers))
	for _, header := range raw.Headers {
		if kind, ok := forcedKinds[core.ColumnKey(header)]; ok {
			kinds[header] = kind
			continue
		}
		values := make([]string, 0, len(raw.Rows))
		for _, row := range raw.Rows {
			values = append(values, row[header])
		}
		if looksNumeric(values) {
			kinds[header] = catalog.KindNumeric
		} else {
			kinds[header] = catalog.KindCategorical
		}
	}

	keep := cleanRows(raw)

	for _, header := range raw.Headers {
		key := core.ColumnKey(header)
		switch kinds[header] {
		case catalog.KindNumeric:
			values := make([]float64, 0, len(keep))
			for _, i := range keep {
				if v, ok := ParseNumber(raw.Rows[i][header]); ok {
					values = append(values, v)
				} else {
					values = append(values, math.NaN())
				}
			}
			table.Numeric = append(table.Numeric, catalog.NumericColumn{Key: key, Values: values})
		default:
			values := make([]string, 0, len(keep))
			for _, i := range keep {
				values = append(values, raw.Rows[i][header])
			}
			table.Categorical = append(table.Categorical, catalog.CategoricalColumn{Key: key, Values: values})
		}
	}
	table.RowCount = len(keep)

	if missing := table.MissingColumns(); len(missing) > 0 {
		names := make([]string, len(missing))
		for i, key := range missing {
			names[i] = key.String()
		}
		return nil, errors.DatasetInvalid(fmt.Sprintf("dataset missing required columns: %s", strings.Join(names, ", ")))
	}
	if table.RowCount == 0 {
		return nil, errors.DatasetInvalid("dataset has no usable rows after cleaning")
	}

	return table, nil
}

// cleanRows returns the indices of rows whose price and quantity parse.
func cleanRows(raw *RawData) []int {
	priceKey := catalog.ColPrice.String()
	qtyKey := catalog.ColQuantitySold.String()

	hasPrice := false
	hasQty := false
	for _, h := range raw.Headers {
		if h == priceKey {
			hasPrice = true
		}
		if h == qtyKey {
			hasQty = true
		}
	}

	keep := make([]int, 0, len(raw.Rows))
	for i, row := range raw.Rows {
		if hasPrice {
			if _, ok := ParseNumber(row[priceKey]); !ok {
				continue
			}
		}
		if hasQty {
			if _, ok := ParseNumber(row[qtyKey]); !ok {
				continue
			}
		}
		keep = append(keep, i)
	}
	return keep
}
