package composer

// KeyValuePair is one label/value line of a key-value grid.
type KeyValuePair struct {
	Label string `yaml:"label" json:"label"`
	Value string `yaml:"value" json:"value"`
}

// TableContent describes a data table.
//
// ColumnRatios are relative column widths; when missing, invalid or of a
// different length than Columns the columns share the width equally. Rows
// may be ragged: missing cells render empty and extra cells are dropped.
// A table without rows renders only EmptyMessage. Note, when set, follows
// the table.
type TableContent struct {
	Columns      []string   `yaml:"columns" json:"columns"`
	Rows         [][]string `yaml:"rows" json:"rows"`
	ColumnRatios []float64  `yaml:"columnRatios,omitempty" json:"columnRatios,omitempty"`
	Note         string     `yaml:"note,omitempty" json:"note,omitempty"`
	EmptyMessage string     `yaml:"emptyMessage,omitempty" json:"emptyMessage,omitempty"`
}

// DefaultEmptyMessage is shown for empty tables and key-value grids that
// carry no message of their own.
const DefaultEmptyMessage = "No data available."
