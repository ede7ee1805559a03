package core

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValue_String(t *testing.T) {
	tests := []struct {
		name  string
		value Value
		want  string
		kind  ValueKind
	}{
		{"integral number", Num(5420), "5420", ValueNumber},
		{"large id", Num(110913), "110913", ValueNumber},
		{"fraction", Num(2.5), "2.5", ValueNumber},
		{"currency string", Str("$1,250,890.75"), "$1,250,890.75", ValueString},
		{"empty string", Str(""), "", ValueString},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.value.String())
			assert.Equal(t, tt.kind, tt.value.Kind())
		})
	}
}

func TestValue_MarshalJSON(t *testing.T) {
	b, err := json.Marshal([]Value{Num(3), Str("Egypt")})
	require.NoError(t, err)
	assert.JSONEq(t, `[3, "Egypt"]`, string(b))
}

func TestSampleTable_Accessors(t *testing.T) {
	cols := []string{"Rank", "Country"}
	rows := []Row{
		{Num(1), Str("United States")},
		{Num(2), Str("India")},
	}
	tbl := NewSampleTable("Counts", cols, rows...)

	assert.Equal(t, "Counts", tbl.Name())
	assert.Equal(t, 2, tbl.Len())
	assert.Equal(t, []string{"Rank", "Country"}, tbl.Columns())

	v, ok := tbl.Cell(1, "Country")
	require.True(t, ok)
	assert.Equal(t, "India", v.String())

	_, ok = tbl.Cell(5, "Country")
	assert.False(t, ok)
	_, ok = tbl.Cell(0, "Missing")
	assert.False(t, ok)

	rec := tbl.Record(0)
	assert.Equal(t, "United States", rec["Country"].String())
	assert.Nil(t, tbl.Record(-1))
}

func TestSampleTable_IsolatedFromCallers(t *testing.T) {
	cols := []string{"A"}
	row := Row{Str("x")}
	tbl := NewSampleTable("T", cols, row)

	cols[0] = "changed"
	row[0] = Str("changed")
	assert.Equal(t, []string{"A"}, tbl.Columns())
	assert.Equal(t, "x", tbl.Row(0)[0].String())

	got := tbl.Columns()
	got[0] = "mutated"
	r := tbl.Row(0)
	r[0] = Str("mutated")
	assert.Equal(t, "A", tbl.Columns()[0])
	assert.Equal(t, "x", tbl.Row(0)[0].String())
}

func TestSampleTable_Validate(t *testing.T) {
	tests := []struct {
		name    string
		table   *SampleTable
		wantErr bool
	}{
		{"valid", NewSampleTable("ok", []string{"A", "B"}, Row{Num(1), Str("b")}), false},
		{"no rows is fine", NewSampleTable("empty", []string{"A"}), false},
		{"no columns", NewSampleTable("bad", nil), true},
		{"empty column name", NewSampleTable("bad", []string{"A", ""}), true},
		{"duplicate column", NewSampleTable("bad", []string{"A", "A"}), true},
		{"short row", NewSampleTable("bad", []string{"A", "B"}, Row{Num(1)}), true},
		{"long row", NewSampleTable("bad", []string{"A"}, Row{Num(1), Num(2)}), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.table.Validate()
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidTable)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestSampleTable_MarshalJSON(t *testing.T) {
	tbl := NewSampleTable("Top", []string{"Customer ID", "Name"}, Row{Num(110913), Str("Anna Sanchez")})
	b, err := json.Marshal(tbl)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"Top","columns":["Customer ID","Name"],"rows":[[110913,"Anna Sanchez"]]}`, string(b))
}
