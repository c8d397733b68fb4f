package frame

import "strconv"

// Kind represents the type of value held by a Cell.
type Kind uint8

const (
	KindNull Kind = iota // missing value, e.g. past the end of a short row
	KindNumber
	KindText
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	default:
		return "null"
	}
}

// Cell is a single dataframe value: a number, a raw text token, or null.
// The zero value is the null cell.
type Cell struct {
	kind Kind
	num  float64
	text string
}

// Null is the missing cell.
var Null Cell

// Number returns a numeric cell.
func Number(f float64) Cell {
	return Cell{kind: KindNumber, num: f}
}

// Text returns a text cell holding s verbatim.
func Text(s string) Cell {
	return Cell{kind: KindText, text: s}
}

// Kind returns the kind of value held by the cell.
func (c Cell) Kind() Kind { return c.kind }

// IsNumber reports whether the cell already holds a numeric value.
func (c Cell) IsNumber() bool { return c.kind == KindNumber }

// IsNull reports whether the cell is the null cell.
func (c Cell) IsNull() bool { return c.kind == KindNull }

// Float returns the numeric value of a number cell.
// ok is false for text and null cells; no parsing is attempted.
func (c Cell) Float() (float64, bool) {
	if c.kind != KindNumber {
		return 0, false
	}
	return c.num, true
}

// Str returns the raw token of a text cell.
func (c Cell) Str() (string, bool) {
	if c.kind != KindText {
		return "", false
	}
	return c.text, true
}

// Equal reports strict equality: same kind and same value, without coercion.
// Number(1) never equals Text("1").
func (c Cell) Equal(o Cell) bool {
	return c == o
}

// String formats the cell for display.
func (c Cell) String() string {
	switch c.kind {
	case KindNumber:
		return strconv.FormatFloat(c.num, 'g', -1, 64)
	case KindText:
		return c.text
	default:
		return "<null>"
	}
}
