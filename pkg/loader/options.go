package loader

// Options configures LoadCSV and ParseCSV.
type Options struct {
	// IgnoreRows lists row indexes to drop. Indexes count lines after blank
	// lines have been removed.
	IgnoreRows []int

	// IgnoreCols lists column indexes to drop. It is recorded but not applied:
	// loaded rows always keep every column.
	IgnoreCols []int
}

// Option is a functional option for configuring CSV loading.
type Option func(*Options)

// WithIgnoreRows drops the rows at the given indexes.
func WithIgnoreRows(rows ...int) Option {
	return func(o *Options) {
		o.IgnoreRows = append(o.IgnoreRows, rows...)
	}
}

// WithIgnoreCols sets the column indexes to ignore. See Options.IgnoreCols.
func WithIgnoreCols(cols ...int) Option {
	return func(o *Options) {
		o.IgnoreCols = append(o.IgnoreCols, cols...)
	}
}

func applyOptions(opts []Option) *Options {
	options := &Options{}
	for _, opt := range opts {
		opt(options)
	}
	return options
}
