package frame

import (
	"errors"
	"regexp"
	"strconv"
)

// numberPattern accepts an optional minus sign, digits, and an optional
// fractional part. No exponents, separators, whitespace, NaN or Infinity.
var numberPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)

// IsValidNumber reports whether c is a number cell or a text cell whose
// token is a plain decimal number such as "42" or "-3.5".
func IsValidNumber(c Cell) bool {
	switch c.kind {
	case KindNumber:
		return true
	case KindText:
		return numberPattern.MatchString(c.text)
	default:
		return false
	}
}

// toFloat converts a valid number cell to its value. Digit strings beyond
// float64 range convert to ±Inf.
func toFloat(c Cell) (float64, bool) {
	if !IsValidNumber(c) {
		return 0, false
	}
	if c.kind == KindNumber {
		return c.num, true
	}
	f, err := strconv.ParseFloat(c.text, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, false
	}
	return f, true
}

// CoerceColumn rewrites, in place, every text cell at index col that holds a
// valid number into a number cell, and returns how many cells it converted.
//
// df is mutated: callers that need the original text must Clone it first.
// Rows too short to have a cell at col are skipped. Cells that are already
// numeric are not counted, so a second call returns 0.
// The mutation is unsynchronized; do not call it concurrently on the same frame.
func CoerceColumn(df Frame, col int) int {
	if len(df) == 0 || col < 0 {
		return 0
	}

	count := 0
	for _, row := range df {
		if col >= len(row) {
			continue
		}
		cell := row[col]
		if cell.IsNumber() {
			continue
		}
		if f, ok := toFloat(cell); ok {
			row[col] = Number(f)
			count++
		}
	}
	return count
}
