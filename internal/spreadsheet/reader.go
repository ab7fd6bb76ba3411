// Package spreadsheet reads cell values out of Excel workbooks.
package spreadsheet

import (
	"errors"
	"fmt"
	"io"
	"iter"

	"github.com/mrsinham/screenforge/internal/table"
	"github.com/samber/lo"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ErrInvalidPosition is returned for a column or row number below 1.
var ErrInvalidPosition = errors.New("column and row numbers start at 1")

type config struct {
	sheet string
	log   logrus.FieldLogger
}

// Option configures a read.
type Option func(*config)

// WithSheet selects a sheet by name instead of the active one.
func WithSheet(name string) Option {
	return func(c *config) { c.sheet = name }
}

// WithLogger sets the logger that receives one line per value read.
func WithLogger(log logrus.FieldLogger) Option {
	return func(c *config) {
		if log != nil {
			c.log = log
		}
	}
}

func newConfig(opts []Option) *config {
	l := logrus.New()
	l.SetOutput(io.Discard)
	c := &config{log: l}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *config) sheetName(f *excelize.File) string {
	if c.sheet != "" {
		return c.sheet
	}
	return f.GetSheetName(f.GetActiveSheetIndex())
}

// ReadColumn returns the values of one column, starting at startRow and
// ending at the last row of the sheet. The workbook is opened each time the
// sequence is ranged over. An error is yielded once and ends the sequence.
func ReadColumn(path string, column, startRow int, opts ...Option) iter.Seq2[table.Cell, error] {
	cfg := newConfig(opts)

	return func(yield func(table.Cell, error) bool) {
		if column < 1 || startRow < 1 {
			yield(table.Cell{}, fmt.Errorf("%w: column %d, row %d", ErrInvalidPosition, column, startRow))
			return
		}

		f, err := excelize.OpenFile(path)
		if err != nil {
			yield(table.Cell{}, fmt.Errorf("opening workbook %s: %w", path, err))
			return
		}
		defer f.Close()

		sheet := cfg.sheetName(f)
		rows, err := f.Rows(sheet)
		if err != nil {
			yield(table.Cell{}, fmt.Errorf("reading sheet %q: %w", sheet, err))
			return
		}
		defer rows.Close()

		for n := 1; rows.Next(); n++ {
			cols, err := rows.Columns()
			if err != nil {
				yield(table.Cell{}, fmt.Errorf("reading row %d: %w", n, err))
				return
			}
			if n < startRow {
				continue
			}

			var raw string
			if column <= len(cols) {
				raw = cols[column-1]
			}
			cell := table.Infer(raw)
			cfg.log.Infof("Read data from Excel: %s", cell.Text())
			if !yield(cell, nil) {
				return
			}
		}
		if err := rows.Error(); err != nil {
			yield(table.Cell{}, fmt.Errorf("reading sheet %q: %w", sheet, err))
		}
	}
}

// ReadRows reads the whole sheet for use as a table. The first row is the
// header. Trailing empty rows are dropped and short rows are padded to the
// header width.
func ReadRows(path string, opts ...Option) ([]table.Row, error) {
	cfg := newConfig(opts)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening workbook %s: %w", path, err)
	}
	defer f.Close()

	sheet := cfg.sheetName(f)
	cfg.log.WithField("sheet", sheet).Infof("Processing Excel file: %s", path)

	raw, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}

	last := len(raw)
	for last > 0 && lo.EveryBy(raw[last-1], func(s string) bool { return s == "" }) {
		last--
	}

	rows := lo.Map(raw[:last], func(r []string, _ int) table.Row {
		return lo.Map(r, func(s string, _ int) table.Cell { return table.Infer(s) })
	})
	return table.Pad(rows), nil
}
