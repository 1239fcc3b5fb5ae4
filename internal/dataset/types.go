package dataset

// RawRow represents a row of raw tabular data as string key-value pairs
type RawRow map[string]string

// RawData represents a parsed file before coercion: headers plus string rows.
type RawData struct {
	Headers []string
	Rows    []RawRow
}
