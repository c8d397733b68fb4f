package loader

import (
	"fmt"
	"strconv"

	dataframe "github.com/rocketlaunchr/dataframe-go"

	"github.com/akhildatla/dfr/pkg/frame"
)

// ToDataFrame converts a raw frame into a dataframe-go DataFrame.
//   - Columns are named by index ("0", "1", ...) and span the widest row
//   - A column whose cells are all number or null cells becomes SeriesFloat64,
//     anything else becomes SeriesString
//   - Null cells, including those missing from short rows, become nil
//
// Run frame.CoerceColumn first to get numeric series from text cells.
func ToDataFrame(df frame.Frame) *dataframe.DataFrame {
	width := 0
	for _, row := range df {
		if len(row) > width {
			width = len(row)
		}
	}

	series := make([]dataframe.Series, width)
	for col := 0; col < width; col++ {
		cells := frame.Column(df, col)
		name := strconv.Itoa(col)
		if numericColumn(cells) {
			series[col] = dataframe.NewSeriesFloat64(name, nil, floatValues(cells)...)
		} else {
			series[col] = dataframe.NewSeriesString(name, nil, stringValues(cells)...)
		}
	}

	return dataframe.NewDataFrame(series...)
}

// FromDataFrame flattens a dataframe-go DataFrame into a raw frame, one row
// per DataFrame row and one cell per series. Numeric values become number
// cells, strings become text cells and nil becomes Null. Other values are
// formatted as text.
func FromDataFrame(df *dataframe.DataFrame) frame.Frame {
	if df == nil || len(df.Series) == 0 {
		return frame.Frame{}
	}

	n := df.NRows()
	out := make(frame.Frame, n)
	for i := 0; i < n; i++ {
		row := make(frame.Row, len(df.Series))
		for j, s := range df.Series {
			row[j] = toCell(s.Value(i))
		}
		out[i] = row
	}
	return out
}

func toCell(v any) frame.Cell {
	switch val := v.(type) {
	case nil:
		return frame.Null
	case float64:
		return frame.Number(val)
	case int64:
		return frame.Number(float64(val))
	case int:
		return frame.Number(float64(val))
	case string:
		return frame.Text(val)
	default:
		return frame.Text(fmt.Sprint(val))
	}
}

func numericColumn(cells frame.Dataset) bool {
	for _, c := range cells {
		if c.Kind() == frame.KindText {
			return false
		}
	}
	return true
}

func floatValues(cells frame.Dataset) []interface{} {
	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		if f, ok := c.Float(); ok {
			vals[i] = f
		}
	}
	return vals
}

func stringValues(cells frame.Dataset) []interface{} {
	vals := make([]interface{}, len(cells))
	for i, c := range cells {
		if !c.IsNull() {
			vals[i] = c.String()
		}
	}
	return vals
}
