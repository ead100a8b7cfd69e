package decl

import (
	"fmt"
	"strconv"
)

// ValueKind tags the two kinds of values the language knows about.
type ValueKind int

const (
	NumberKind ValueKind = iota
	TextKind
)

func (k ValueKind) String() string {
	switch k {
	case NumberKind:
		return "Number"
	case TextKind:
		return "Text"
	default:
		return "Unknown"
	}
}

// Value is the tagged union flowing through stacks and variables.
// Values are immutable and copied on push/store, never aliased.
type Value struct {
	Kind ValueKind
	Num  float64
	Text string
}

func NumberValue(v float64) Value {
	return Value{Kind: NumberKind, Num: v}
}

func TextValue(s string) Value {
	return Value{Kind: TextKind, Text: s}
}

func (v Value) IsNumber() bool { return v.Kind == NumberKind }
func (v Value) IsText() bool   { return v.Kind == TextKind }

// Equals compares two values. Values of different kinds are never equal
// (and this is not an error anywhere equality is used).
func (v Value) Equals(o Value) bool {
	if v.Kind != o.Kind {
		return false
	}
	if v.Kind == NumberKind {
		return v.Num == o.Num
	}
	return v.Text == o.Text
}

// String renders the value the way the console prints it. Integral numbers
// drop the decimal point so `3` prints as 3 and not 3.000000.
func (v Value) String() string {
	if v.Kind == TextKind {
		return v.Text
	}
	if v.Num == float64(int64(v.Num)) {
		return strconv.FormatInt(int64(v.Num), 10)
	}
	return strconv.FormatFloat(v.Num, 'g', -1, 64)
}

// Quoted renders the value for diagnostics and environment dumps, with text
// values wrapped in quotes so `5` and `"5"` stay distinguishable.
func (v Value) Quoted() string {
	if v.Kind == TextKind {
		return fmt.Sprintf("%q", v.Text)
	}
	return v.String()
}
