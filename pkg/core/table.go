package core

import (
	"encoding/json"
	"fmt"
)

// =============================================================================
// SampleTable
// =============================================================================

// Row is one table row. Cells are aligned with the owning table's column order.
type Row []Value

// SampleTable is an immutable, ordered table of display values.
// The table name doubles as its caption; there is no other identity.
type SampleTable struct {
	name    string
	columns []string
	rows    []Row
}

// NewSampleTable creates a table. Columns and rows are copied so later changes
// to the arguments do not leak into the table.
func NewSampleTable(name string, columns []string, rows ...Row) *SampleTable {
	t := &SampleTable{
		name:    name,
		columns: append([]string(nil), columns...),
		rows:    make([]Row, len(rows)),
	}
	for i, r := range rows {
		t.rows[i] = append(Row(nil), r...)
	}
	return t
}

// Name returns the table name.
func (t *SampleTable) Name() string { return t.name }

// Columns returns a copy of the column names in display order.
func (t *SampleTable) Columns() []string {
	return append([]string(nil), t.columns...)
}

// Len returns the number of rows.
func (t *SampleTable) Len() int { return len(t.rows) }

// Row returns a copy of row i.
func (t *SampleTable) Row(i int) Row {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	return append(Row(nil), t.rows[i]...)
}

// Rows returns a copy of all rows in display order.
func (t *SampleTable) Rows() []Row {
	out := make([]Row, len(t.rows))
	for i := range t.rows {
		out[i] = t.Row(i)
	}
	return out
}

// Cell returns the value at row i for the named column.
func (t *SampleTable) Cell(i int, column string) (Value, bool) {
	if i < 0 || i >= len(t.rows) {
		return Value{}, false
	}
	for c, name := range t.columns {
		if name == column {
			if c < len(t.rows[i]) {
				return t.rows[i][c], true
			}
			return Value{}, false
		}
	}
	return Value{}, false
}

// Record returns row i as a column name -> value mapping.
func (t *SampleTable) Record(i int) map[string]Value {
	if i < 0 || i >= len(t.rows) {
		return nil
	}
	rec := make(map[string]Value, len(t.columns))
	for c, name := range t.columns {
		if c < len(t.rows[i]) {
			rec[name] = t.rows[i][c]
		}
	}
	return rec
}

// Validate checks that columns are named and unique and every row has
// exactly one cell per column.
func (t *SampleTable) Validate() error {
	if len(t.columns) == 0 {
		return fmt.Errorf("%w: table %q has no columns", ErrInvalidTable, t.name)
	}
	seen := make(map[string]struct{}, len(t.columns))
	for _, c := range t.columns {
		if c == "" {
			return fmt.Errorf("%w: table %q has an unnamed column", ErrInvalidTable, t.name)
		}
		if _, dup := seen[c]; dup {
			return fmt.Errorf("%w: table %q has duplicate column %q", ErrInvalidTable, t.name, c)
		}
		seen[c] = struct{}{}
	}
	for i, r := range t.rows {
		if len(r) != len(t.columns) {
			return fmt.Errorf("%w: table %q row %d has %d cells, want %d",
				ErrInvalidTable, t.name, i, len(r), len(t.columns))
		}
	}
	return nil
}

type tableJSON struct {
	Name    string   `json:"name" yaml:"name"`
	Columns []string `json:"columns" yaml:"columns"`
	Rows    []Row    `json:"rows" yaml:"rows"`
}

// MarshalJSON encodes the table as {name, columns, rows}.
func (t *SampleTable) MarshalJSON() ([]byte, error) {
	return json.Marshal(tableJSON{Name: t.name, Columns: t.columns, Rows: t.rows})
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (t *SampleTable) MarshalYAML() (any, error) {
	return tableJSON{Name: t.name, Columns: t.columns, Rows: t.rows}, nil
}

// =============================================================================
// ExampleQuery
// =============================================================================

// ExampleQuery is a natural-language question with the illustrative SQL and
// result description a demo shows for it.
type ExampleQuery struct {
	Question string `json:"question" yaml:"question"`
	SQL      string `json:"sql" yaml:"sql"`
	Result   string `json:"result" yaml:"result"`
}
