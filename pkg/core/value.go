package core

import (
	"encoding/json"
	"strconv"
)

// =============================================================================
// Value
// =============================================================================

// ValueKind identifies how a display value was declared.
type ValueKind int

// Value kinds.
const (
	// ValueString is free text, shown verbatim.
	ValueString ValueKind = iota
	// ValueNumber is a numeric literal, shown without grouping separators.
	ValueNumber
)

// String returns the string representation of the kind.
func (k ValueKind) String() string {
	switch k {
	case ValueString:
		return "string"
	case ValueNumber:
		return "number"
	default:
		return "unknown"
	}
}

// Value is a single display cell: either a string or a number.
type Value struct {
	kind ValueKind
	str  string
	num  float64
}

// Str returns a string display value.
func Str(s string) Value {
	return Value{kind: ValueString, str: s}
}

// Num returns a numeric display value.
func Num(n float64) Value {
	return Value{kind: ValueNumber, num: n}
}

// Kind reports whether the value is a string or a number.
func (v Value) Kind() ValueKind { return v.kind }

// Number returns the numeric value and true for number values.
func (v Value) Number() (float64, bool) {
	if v.kind != ValueNumber {
		return 0, false
	}
	return v.num, true
}

// String returns the display text.
// Integral numbers are printed without a fractional part (5420, not 5420.0).
func (v Value) String() string {
	if v.kind == ValueNumber {
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return v.str
}

// MarshalJSON encodes numbers as JSON numbers and strings as JSON strings.
func (v Value) MarshalJSON() ([]byte, error) {
	if v.kind == ValueNumber {
		return json.Marshal(v.num)
	}
	return json.Marshal(v.str)
}

// MarshalYAML mirrors MarshalJSON for YAML encoders.
func (v Value) MarshalYAML() (any, error) {
	if v.kind == ValueNumber {
		return v.num, nil
	}
	return v.str, nil
}
