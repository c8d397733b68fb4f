package loader

import (
	"os"
	"strings"
	"unicode"

	"github.com/akhildatla/dfr/pkg/frame"
)

// FileExists reports whether something exists at path.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LoadCSV reads a comma-separated file into a frame of text cells.
//   - Lines are split on '\n'; blank and whitespace-only lines are dropped
//   - Cells are split on ',' with no quoting or escaping, and kept verbatim
//   - The first line is data; there is no header
//
// It returns the rows, a row count of len(rows)+1, and the length of the
// first row (0 when no rows remain). A missing or unreadable file yields an
// empty frame and (-1, -1).
func LoadCSV(path string, opts ...Option) (frame.Frame, int, int) {
	if !FileExists(path) {
		return frame.Frame{}, -1, -1
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return frame.Frame{}, -1, -1
	}

	return ParseCSV(string(data), opts...)
}

// ParseCSV splits CSV text the same way LoadCSV does.
func ParseCSV(text string, opts ...Option) (frame.Frame, int, int) {
	options := applyOptions(opts)

	ignored := make(map[int]struct{}, len(options.IgnoreRows))
	for _, i := range options.IgnoreRows {
		ignored[i] = struct{}{}
	}

	rows := frame.Frame{}
	index := 0
	for _, line := range strings.Split(text, "\n") {
		if isBlank(line) {
			continue
		}
		if _, skip := ignored[index]; !skip {
			rows = append(rows, splitLine(line))
		}
		index++
	}

	// The row count is one more than the rows returned; callers depend on it.
	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	return rows, len(rows) + 1, cols
}

func splitLine(line string) frame.Row {
	fields := strings.Split(line, ",")
	row := make(frame.Row, len(fields))
	for i, f := range fields {
		row[i] = frame.Text(f)
	}
	return row
}

// isBlank treats a byte order mark as whitespace too.
func isBlank(line string) bool {
	return strings.TrimFunc(line, func(r rune) bool {
		return unicode.IsSpace(r) || r == '\uFEFF'
	}) == ""
}
