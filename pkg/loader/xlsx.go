package loader

import (
	"errors"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/akhildatla/dfr/pkg/frame"
)

// Spreadsheet-specific errors
var (
	ErrEmptySheet = errors.New("empty worksheet")
	ErrNoSheet    = errors.New("workbook has no worksheets")
)

// LoadXLSX reads a worksheet into a frame of text cells, one row per
// spreadsheet row, using the formatted cell values. An empty sheet name
// selects the first worksheet. Trailing empty cells are not included, so
// rows may be ragged.
func LoadXLSX(path, sheet string) (frame.Frame, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoSheet
		}
		sheet = sheets[0]
	}

	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	if len(rows) == 0 {
		return nil, ErrEmptySheet
	}

	out := make(frame.Frame, len(rows))
	for i, r := range rows {
		row := make(frame.Row, len(r))
		for j, v := range r {
			row[j] = frame.Text(v)
		}
		out[i] = row
	}
	return out, nil
}
