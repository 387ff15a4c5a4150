// Package report renders aggregated function statistics as a fixed-width table.
//
// The default layout is:
//
//	Function                      Mean execution time
//	update                        12.3456 +- 1.2345 ms
//	render                        3.2100 +- 0.1000 ms
package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/hyp3rd/ewrap"

	"github.com/hyp3rd/profstat/internal/constants"
	"github.com/hyp3rd/profstat/internal/sentinel"
	"github.com/hyp3rd/profstat/pkg/stats"
)

// Table renders function statistics, one row per function.
type Table struct {
	nameWidth int
	precision int
	unit      string
}

// Option is a function type that can be used to configure the `Table` struct.
type Option func(*Table)

// WithNameWidth sets the width the function name column is left-justified to.
func WithNameWidth(width int) Option {
	return func(t *Table) {
		t.nameWidth = width
	}
}

// WithPrecision sets the number of decimals of the mean and the standard deviation.
func WithPrecision(precision int) Option {
	return func(t *Table) {
		t.precision = precision
	}
}

// WithUnit sets the unit printed after every row.
func WithUnit(unit string) Option {
	return func(t *Table) {
		t.unit = unit
	}
}

// NewTable returns a table with the default layout, overridden by opts.
func NewTable(opts ...Option) (*Table, error) {
	table := &Table{
		nameWidth: constants.DefaultNameWidth,
		precision: constants.DefaultPrecision,
		unit:      constants.DefaultUnit,
	}
	for _, opt := range opts {
		opt(table)
	}

	if table.nameWidth < 0 {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidOption, "name width %d", table.nameWidth)
	}

	if table.precision < 0 {
		return nil, ewrap.Wrapf(sentinel.ErrInvalidOption, "precision %d", table.precision)
	}

	if table.unit == "" {
		return nil, ewrap.Wrap(sentinel.ErrParamCannotBeEmpty, "unit")
	}

	return table, nil
}

// Render writes the header followed by one line per row, in the order given.
// Names longer than the column width are not truncated.
func (t *Table) Render(w io.Writer, rows []stats.FunctionStats) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintf(bw, "%-*s%s\n", t.nameWidth, constants.FunctionHeader, constants.MeanHeader)

	for _, row := range rows {
		fmt.Fprintf(bw, "%-*s%.*f +- %.*f %s\n",
			t.nameWidth, row.Function,
			t.precision, row.Mean,
			t.precision, row.StdDev,
			t.unit)
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("%w: %w", sentinel.ErrWriteReport, err)
	}

	return nil
}
