// Package testutil provides testing utilities for dfr tests.
package testutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/akhildatla/dfr/pkg/frame"
)

// TempCSV creates a temporary CSV file and returns its path.
// The file is automatically cleaned up when the test finishes.
func TempCSV(t *testing.T, content string) string {
	t.Helper()
	return TempFile(t, content, ".csv")
}

// TempFile creates a temporary file with the given content and extension.
func TempFile(t *testing.T, content, ext string) string {
	t.Helper()
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "test"+ext)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

// SalesCSV returns standard test CSV content for sales data, in the same
// column order as MakeSalesFrame.
func SalesCSV() string {
	return `A,10.5,5
B,20.0,15
A,5.0,3
C,30.0,20
B,15.0,8
`
}

// SimpleCSV returns minimal test CSV content.
func SimpleCSV() string {
	return "a,b\n1,2\n3,4\n"
}

// MakeSalesFrame creates the frame SalesCSV loads into:
// category, price, quantity, all as text cells.
func MakeSalesFrame() frame.Frame {
	rows := [][]string{
		{"A", "10.5", "5"},
		{"B", "20.0", "15"},
		{"A", "5.0", "3"},
		{"C", "30.0", "20"},
		{"B", "15.0", "8"},
	}
	return TextFrame(rows...)
}

// TextFrame builds a frame of text cells.
func TextFrame(rows ...[]string) frame.Frame {
	df := make(frame.Frame, len(rows))
	for i, r := range rows {
		row := make(frame.Row, len(r))
		for j, s := range r {
			row[j] = frame.Text(s)
		}
		df[i] = row
	}
	return df
}

// AssertFloat64Near checks if two float64 values are approximately equal.
func AssertFloat64Near(t *testing.T, expected, actual, tolerance float64) {
	t.Helper()
	if actual < expected-tolerance || actual > expected+tolerance {
		t.Errorf("expected %.6f, got %.6f (tolerance: %.6f)", expected, actual, tolerance)
	}
}
