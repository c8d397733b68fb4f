// Package frame provides a minimal row-oriented dataframe.
//
// A Frame is a sequence of rows, each row a sequence of cells addressed by
// zero-based index. There are no column names and no header row; rows may
// have different lengths. All operations are stateless functions that
// degrade to a sentinel value (0, -1, an empty result) on unusable input
// instead of returning an error. CoerceColumn is the only operation that
// mutates its input.
package frame

// Row is an ordered sequence of cells.
type Row []Cell

// At returns the cell at index i, or Null when i is out of range.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r) {
		return Null
	}
	return r[i]
}

// Frame is an ordered sequence of rows.
type Frame []Row

// Dataset is a flat sequence of cells used as input to the aggregates.
type Dataset []Cell

// Wildcard is the Slice pattern that selects every row.
var Wildcard = Text("*")

// Dimensions returns the shape of a frame or dataset as (rows, cols).
//
// data may be a Frame, []Row, [][]Cell, Dataset or []Cell. Nil and any
// other value yield (-1, -1). cols is the length of the first row, or -1
// when there is no first row or it is not itself a sequence, so an empty
// frame is (0, -1) and a flat dataset of n cells is (n, -1). A first row
// that is empty but non-nil is still a sequence and gives cols 0; a nil
// first row gives -1.
func Dimensions(data any) (int, int) {
	switch d := data.(type) {
	case Frame:
		return frameDimensions(d)
	case []Row:
		return frameDimensions(d)
	case [][]Cell:
		if d == nil {
			return -1, -1
		}
		if len(d) == 0 || d[0] == nil {
			return len(d), -1
		}
		return len(d), len(d[0])
	case Dataset:
		if d == nil {
			return -1, -1
		}
		return len(d), -1
	case []Cell:
		if d == nil {
			return -1, -1
		}
		return len(d), -1
	default:
		return -1, -1
	}
}

func frameDimensions(rows []Row) (int, int) {
	if rows == nil {
		return -1, -1
	}
	if len(rows) == 0 || rows[0] == nil {
		return len(rows), -1
	}
	return len(rows), len(rows[0])
}

// Flatten turns a single-column frame into a dataset.
// It returns an empty dataset unless the first row has exactly one cell.
func Flatten(df Frame) Dataset {
	if len(df) == 0 {
		return Dataset{}
	}
	if _, cols := Dimensions(df); cols != 1 {
		return Dataset{}
	}
	out := make(Dataset, len(df))
	for i, row := range df {
		out[i] = row.At(0)
	}
	return out
}

// Column returns the cells at index col of every row, with Null for rows
// too short to have one.
func Column(df Frame, col int) Dataset {
	out := make(Dataset, len(df))
	for i, row := range df {
		out[i] = row.At(col)
	}
	return out
}

// Slice selects the rows whose cell at col strictly equals pattern, or every
// row when pattern is Wildcard. A Null pattern matches rows too short to
// have a cell at col.
//
// With no exportCols the selected rows are returned as-is and share storage
// with df. Otherwise each selected row is rebuilt from the cells at
// exportCols, in that order; indexes may repeat and out-of-range indexes
// produce Null.
func Slice(df Frame, col int, pattern Cell, exportCols ...int) Frame {
	if len(df) == 0 {
		return Frame{}
	}

	selected := df
	if !pattern.Equal(Wildcard) {
		selected = make(Frame, 0, len(df))
		for _, row := range df {
			if row.At(col).Equal(pattern) {
				selected = append(selected, row)
			}
		}
	}

	if len(exportCols) == 0 {
		return selected
	}

	out := make(Frame, len(selected))
	for i, row := range selected {
		projected := make(Row, len(exportCols))
		for j, c := range exportCols {
			projected[j] = row.At(c)
		}
		out[i] = projected
	}
	return out
}

// Clone returns a deep copy of df. Use it before CoerceColumn to keep the
// original text cells.
func Clone(df Frame) Frame {
	if df == nil {
		return nil
	}
	out := make(Frame, len(df))
	for i, row := range df {
		if row == nil {
			continue
		}
		out[i] = make(Row, len(row))
		copy(out[i], row)
	}
	return out
}
