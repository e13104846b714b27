package bin2tga

import (
	"fmt"

	"github.com/pkg/errors"
)

var (
	// ErrUnboundedLine is returned when a row has no line ending within
	// MaxWidth symbols
	ErrUnboundedLine = errors.New("bin2tga: row exceeds maximum width")
	// ErrEmptyRow is returned when the first row has no symbols so no
	// width can be inferred
	ErrEmptyRow = errors.New("bin2tga: first row is empty")
	// ErrTooManyRows is returned when the input has more than MaxHeight rows
	ErrTooManyRows = errors.New("bin2tga: row count exceeds maximum height")

	errInputChanged = errors.New("input changed between passes")
)

// RowWidthError records a row whose width differs from the first row.
// Line numbers start at 1.
type RowWidthError struct {
	Line     int
	Width    int
	Expected int
}

func (e *RowWidthError) Error() string {
	return fmt.Sprintf("bin2tga: line %d is %d symbols wide, expected %d", e.Line, e.Width, e.Expected)
}

// SymbolError records a symbol other than '0' or '1'. Line and Column start
// at 1 and are zero if the position is not known.
type SymbolError struct {
	Line   int
	Column int
	Symbol byte
}

func (e *SymbolError) Error() string {
	if e.Line == 0 {
		return fmt.Sprintf("bin2tga: invalid pixel symbol %q (0x%02x)", e.Symbol, e.Symbol)
	}
	return fmt.Sprintf("bin2tga: invalid pixel symbol %q (0x%02x) at line %d, column %d", e.Symbol, e.Symbol, e.Line, e.Column)
}

// ReadError records a failure reading the input.
type ReadError struct {
	Err error
}

func (e *ReadError) Error() string { return "bin2tga: read: " + e.Err.Error() }

func (e *ReadError) Unwrap() error { return e.Err }

// WriteError records a failure writing the output.
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string { return "bin2tga: write: " + e.Err.Error() }

func (e *WriteError) Unwrap() error { return e.Err }
