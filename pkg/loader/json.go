package loader

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rocketlaunchr/dataframe-go/imports"

	"github.com/akhildatla/dfr/pkg/frame"
)

// JSON-specific errors
var (
	ErrEmptyJSON = errors.New("empty JSON file")
)

// LoadJSON reads a JSON file containing an array of objects and returns it
// as a raw frame, one row per object.
// The JSON must be in the format: [{"col1": val1, "col2": val2}, ...]
// Numbers become number cells and strings become text cells.
func LoadJSON(path string) (frame.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	if len(data) == 0 {
		return nil, ErrEmptyJSON
	}

	df, err := imports.LoadFromJSON(context.Background(), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("loading JSON: %w", err)
	}

	if df == nil || len(df.Series) == 0 {
		return nil, ErrEmptyJSON
	}

	return FromDataFrame(df), nil
}
