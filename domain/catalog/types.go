package catalog

import (
	"github.com/srkael/painel-de-analise-de-ecommerce/domain/core"
)

// Well-known columns of the product dataset. Header names follow the source
// CSV, which ships with Portuguese column labels.
const (
	ColPrice        = core.ColumnKey("Preço")
	ColQuantitySold = core.ColumnKey("Qtd_Vendidos")
	ColReviewCount  = core.ColumnKey("N_Avaliações")
	ColBrand        = core.ColumnKey("Marca")
	ColGender       = core.ColumnKey("Gênero")

	// Optional numeric columns that join the correlation heatmap when present.
	ColRating   = core.ColumnKey("Nota")
	ColDiscount = core.ColumnKey("Desconto")
)

// RequiredColumns lists the columns a dataset must carry to be servable.
func RequiredColumns() []core.ColumnKey {
	return []core.ColumnKey{ColPrice, ColQuantitySold, ColReviewCount, ColBrand, ColGender}
}

// ColumnKind distinguishes how a column is stored and analyzed.
type ColumnKind string

const (
	KindNumeric     ColumnKind = "numeric"
	KindCategorical ColumnKind = "categorical"
)

// NumericColumn holds one coerced numeric series, aligned with table rows.
// NaN marks values that failed coercion and survived row cleaning.
type NumericColumn struct {
	Key    core.ColumnKey
	Values []float64
}

// CategoricalColumn holds one text series, aligned with table rows.
type CategoricalColumn struct {
	Key    core.ColumnKey
	Values []string
}

// Table is the in-memory dataset: loaded once at startup, read-only after.
type Table struct {
	Fingerprint core.Fingerprint
	SourceFile  string
	LoadedAt    core.Timestamp

	RowCount    int
	Numeric     []NumericColumn
	Categorical []CategoricalColumn
}

// NumericByKey returns the numeric column with the given key.
func (t *Table) NumericByKey(key core.ColumnKey) (NumericColumn, bool) {
	for _, col := range t.Numeric {
		if col.Key == key {
			return col, true
		}
	}
	return NumericColumn{}, false
}

// CategoricalByKey returns the categorical column with the given key.
func (t *Table) CategoricalByKey(key core.ColumnKey) (CategoricalColumn, bool) {
	for _, col := range t.Categorical {
		if col.Key == key {
			return col, true
		}
	}
	return CategoricalColumn{}, false
}

// HasColumn reports whether a column of either kind exists.
func (t *Table) HasColumn(key core.ColumnKey) bool {
	if _, ok := t.NumericByKey(key); ok {
		return true
	}
	_, ok := t.CategoricalByKey(key)
	return ok
}

// NumericKeys returns numeric column keys in table order.
func (t *Table) NumericKeys() []core.ColumnKey {
	keys := make([]core.ColumnKey, len(t.Numeric))
	for i, col := range t.Numeric {
		keys[i] = col.Key
	}
	return keys
}

// MissingColumns returns the required columns absent from the table.
func (t *Table) MissingColumns() []core.ColumnKey {
	var missing []core.ColumnKey
	for _, key := range RequiredColumns() {
		if !t.HasColumn(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// ValueCount pairs a categorical value with its occurrence count.
type ValueCount struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Summary carries the headline descriptive statistics shown on the dashboard.
type Summary struct {
	RowCount    int     `json:"row_count"`
	ColumnCount int     `json:"column_count"`
	MeanPrice   float64 `json:"mean_price"`
	MedianPrice float64 `json:"median_price"`
	MinPrice    float64 `json:"min_price"`
	MaxPrice    float64 `json:"max_price"`
	StdDevPrice float64 `json:"stddev_price"`
	TotalSold   float64 `json:"total_sold"`
	BrandCount  int     `json:"brand_count"`
}

// Snapshot records one archived summary of a loaded dataset.
type Snapshot struct {
	ID          core.SnapshotID  `json:"id" db:"id"`
	Fingerprint core.Fingerprint `json:"fingerprint" db:"fingerprint"`
	SourceFile  string           `json:"source_file" db:"source_file"`
	RowCount    int              `json:"row_count" db:"row_count"`
	MeanPrice   float64          `json:"mean_price" db:"mean_price"`
	MaxPrice    float64          `json:"max_price" db:"max_price"`
	CreatedAt   core.Timestamp   `json:"created_at" db:"created_at"`
}
