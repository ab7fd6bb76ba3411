// Package table holds the cell and row types written into table documents.
package table

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

// Kind tells which variant a Cell holds.
type Kind int

const (
	KindString Kind = iota
	KindNumber
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "Number"
	default:
		return "String"
	}
}

// Cell is a table value that is either a string or a number.
// It is only turned into text when a document is serialized.
type Cell struct {
	kind Kind
	str  string
	num  float64
	lit  string // exact decimal text of an integer, kept past float64 precision
}

// String creates a string cell.
func String(s string) Cell {
	return Cell{kind: KindString, str: s}
}

// Number creates a numeric cell.
func Number(n float64) Cell {
	return Cell{kind: KindNumber, num: n}
}

// Integer creates a numeric cell that prints exactly, whatever its size.
func Integer(n *big.Int) Cell {
	f, _ := new(big.Float).SetInt(n).Float64()
	return Cell{kind: KindNumber, num: f, lit: n.String()}
}

func int64Cell(n int64) Cell   { return Integer(big.NewInt(n)) }
func uint64Cell(n uint64) Cell { return Integer(new(big.Int).SetUint64(n)) }

// Kind returns the variant held by the cell.
func (c Cell) Kind() Kind { return c.kind }

// Float returns the numeric value and whether the cell is a number.
func (c Cell) Float() (float64, bool) {
	return c.num, c.kind == KindNumber
}

// Text returns the cell as it appears in a document.
// Numbers use the shortest representation: 30 -> "30", 85.5 -> "85.5".
func (c Cell) Text() string {
	if c.kind == KindNumber {
		if c.lit != "" {
			return c.lit
		}
		if math.IsInf(c.num, 0) || math.IsNaN(c.num) {
			return fmt.Sprint(c.num)
		}
		return strconv.FormatFloat(c.num, 'f', -1, 64)
	}
	return c.str
}

// Infer builds a cell from raw text. Text is only treated as a number when
// formatting the number gives the same text back, so "0042" stays a string.
func Infer(s string) Cell {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return String(s)
	}
	if b, ok := new(big.Int).SetString(trimmed, 10); ok {
		if b.String() != trimmed {
			return String(s)
		}
		return Integer(b)
	}
	n, err := strconv.ParseFloat(trimmed, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return String(s)
	}
	if strconv.FormatFloat(n, 'f', -1, 64) != trimmed {
		return String(s)
	}
	return Number(n)
}

// FromAny converts a decoded value (YAML, JSON) into a cell.
func FromAny(v any) Cell {
	switch x := v.(type) {
	case nil:
		return String("")
	case string:
		return String(x)
	case int:
		return int64Cell(int64(x))
	case int64:
		return int64Cell(x)
	case int32:
		return int64Cell(int64(x))
	case uint:
		return uint64Cell(uint64(x))
	case uint64:
		return uint64Cell(x)
	case *big.Int:
		return Integer(x)
	case float32:
		return Number(float64(x))
	case float64:
		return Number(x)
	case Cell:
		return x
	default:
		return String(fmt.Sprint(x))
	}
}

// Row is an ordered sequence of cells.
type Row []Cell

// Texts returns the serialized text of every cell.
func (r Row) Texts() []string {
	return lo.Map(r, func(c Cell, _ int) string { return c.Text() })
}

// RowOf builds a row from decoded values.
func RowOf(values ...any) Row {
	return lo.Map(values, func(v any, _ int) Cell { return FromAny(v) })
}

var (
	// ErrEmpty is returned for a table without rows or with a zero-width header.
	ErrEmpty = errors.New("table has no columns")
	// ErrRagged is returned when a row width differs from the header width.
	ErrRagged = errors.New("row width differs from header")
)

// Validate checks that rows has a non-empty header and that every row
// matches the header width.
func Validate(rows []Row) error {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return ErrEmpty
	}
	width := len(rows[0])
	for i, row := range rows[1:] {
		if len(row) != width {
			return fmt.Errorf("%w: row %d has %d cells, header has %d", ErrRagged, i+2, len(row), width)
		}
	}
	return nil
}

// Pad extends short rows with empty string cells up to the header width.
func Pad(rows []Row) []Row {
	if len(rows) == 0 {
		return rows
	}
	width := len(rows[0])
	return lo.Map(rows, func(row Row, _ int) Row {
		if len(row) >= width {
			return row
		}
		padded := make(Row, width)
		copy(padded, row)
		for i := len(row); i < width; i++ {
			padded[i] = String("")
		}
		return padded
	})
}
