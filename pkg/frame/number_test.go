package frame

import (
	"math"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestIsValidNumber(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want bool
	}{
		{"integer text", Text("42"), true},
		{"negative decimal text", Text("-3.5"), true},
		{"zero number", Number(0), true},
		{"negative number", Number(-1.2), true},
		{"NaN number", Number(math.NaN()), true},
		{"word", Text("abc"), false},
		{"exponent", Text("1e10"), false},
		{"empty", Text(""), false},
		{"thousands separator", Text("1,000"), false},
		{"null", Null, false},
		{"leading space", Text(" 1"), false},
		{"trailing newline", Text("1\n"), false},
		{"trailing carriage return", Text("2\r"), false},
		{"NaN literal", Text("NaN"), false},
		{"Infinity literal", Text("Infinity"), false},
		{"leading plus", Text("+1"), false},
		{"bare fraction", Text(".5"), false},
		{"trailing dot", Text("5."), false},
		{"minus only", Text("-"), false},
		{"leading zeros", Text("007"), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsValidNumber(tt.cell); got != tt.want {
				t.Errorf("IsValidNumber(%q) = %v, want %v", tt.cell, got, tt.want)
			}
		})
	}
}

func TestCoerceColumn_Basic(t *testing.T) {
	df := Frame{
		{Text("1"), Text("x")},
		{Text("2"), Text("y")},
	}

	if n := CoerceColumn(df, 0); n != 2 {
		t.Fatalf("expected 2 conversions, got %d", n)
	}

	want := Frame{
		{Number(1), Text("x")},
		{Number(2), Text("y")},
	}
	if diff := cmp.Diff(want, df); diff != "" {
		t.Errorf("frame mismatch (-want +got):\n%s", diff)
	}
}

func TestCoerceColumn_Idempotent(t *testing.T) {
	df := Frame{
		{Text("1"), Text("x")},
		{Text("2"), Text("y")},
	}

	CoerceColumn(df, 0)
	after := Clone(df)

	if n := CoerceColumn(df, 0); n != 0 {
		t.Errorf("expected second call to convert 0 cells, got %d", n)
	}
	if diff := cmp.Diff(after, df); diff != "" {
		t.Errorf("second call changed frame (-want +got):\n%s", diff)
	}
}

func TestCoerceColumn_SkipsInvalidAndShortRows(t *testing.T) {
	df := Frame{
		{Text("a"), Text("-1.5")},
		{Text("b")},
		nil,
		{Text("c"), Text("n/a")},
		{Text("d"), Number(7)},
		{Text("e"), Text("10")},
	}

	if n := CoerceColumn(df, 1); n != 2 {
		t.Fatalf("expected 2 conversions, got %d", n)
	}

	if f, ok := df[0][1].Float(); !ok || f != -1.5 {
		t.Errorf("expected df[0][1] = -1.5, got %v", df[0][1])
	}
	if len(df[1]) != 1 {
		t.Errorf("short row was modified: %v", df[1])
	}
	if !df[3][1].Equal(Text("n/a")) {
		t.Errorf("expected invalid text to be kept, got %v", df[3][1])
	}
	if f, ok := df[5][1].Float(); !ok || f != 10 {
		t.Errorf("expected df[5][1] = 10, got %v", df[5][1])
	}
}

func TestCoerceColumn_Overflow(t *testing.T) {
	huge := "1" + strings.Repeat("0", 400)
	df := Frame{
		{Text(huge)},
		{Text("-" + huge)},
	}

	if !IsValidNumber(df[0][0]) {
		t.Fatalf("expected %d-digit token to be a valid number", len(huge))
	}
	if n := CoerceColumn(df, 0); n != 2 {
		t.Fatalf("expected 2 conversions, got %d", n)
	}
	if f, ok := df[0][0].Float(); !ok || !math.IsInf(f, 1) {
		t.Errorf("expected df[0][0] = +Inf, got %v", df[0][0])
	}
	if f, ok := df[1][0].Float(); !ok || !math.IsInf(f, -1) {
		t.Errorf("expected df[1][0] = -Inf, got %v", df[1][0])
	}
}

func TestCoerceColumn_Degenerate(t *testing.T) {
	if n := CoerceColumn(nil, 0); n != 0 {
		t.Errorf("nil frame: expected 0, got %d", n)
	}
	if n := CoerceColumn(Frame{}, 0); n != 0 {
		t.Errorf("empty frame: expected 0, got %d", n)
	}

	df := Frame{{Text("1")}}
	if n := CoerceColumn(df, -1); n != 0 {
		t.Errorf("negative column: expected 0, got %d", n)
	}
	if n := CoerceColumn(df, 5); n != 0 {
		t.Errorf("column past end: expected 0, got %d", n)
	}
	if !df[0][0].Equal(Text("1")) {
		t.Errorf("frame should be unchanged, got %v", df)
	}
}
