package bin2tga

import (
	"bufio"
	"bytes"
	"io"

	"github.com/bodgit/bin2tga/tga"
	"github.com/pkg/errors"
)

const (
	// MaxWidth is the widest row that can be converted
	MaxWidth = tga.MaxDimension
	// MaxHeight is the largest number of rows that can be converted
	MaxHeight = tga.MaxDimension

	// Longest row plus CRLF
	rowBufferSize = MaxWidth + 2
)

// Grid holds the dimensions of a validated text bitmap.
type Grid struct {
	Width  int
	Height int
}

// Header returns the TGA header describing an image of the same dimensions.
func (g Grid) Header() tga.Header {
	return tga.NewHeader(uint16(g.Width), uint16(g.Height))
}

// rowScanner reads one row at a time with the line ending removed. Rows are
// terminated by LF or CRLF, the final row may be unterminated. Only a single
// row is held in memory.
type rowScanner struct {
	r    *bufio.Reader
	row  []byte
	line int
	err  error
}

func newRowScanner(r io.Reader) *rowScanner {
	return &rowScanner{
		r: bufio.NewReaderSize(r, rowBufferSize),
	}
}

func (s *rowScanner) Scan() bool {
	if s.err != nil {
		return false
	}

	b, err := s.r.ReadSlice('\n')
	switch err {
	case nil:
	case io.EOF:
		if len(b) == 0 {
			return false
		}
	case bufio.ErrBufferFull:
		s.err = errors.Wrapf(ErrUnboundedLine, "line %d", s.line+1)
		return false
	default:
		s.err = &ReadError{Err: err}
		return false
	}

	b = bytes.TrimSuffix(b, []byte{'\n'})
	b = bytes.TrimSuffix(b, []byte{'\r'})

	s.row = b
	s.line++
	return true
}

// Row returns the current row, it is only valid until the next call to Scan
func (s *rowScanner) Row() []byte {
	return s.row
}

// Line returns the line number of the current row, starting at 1
func (s *rowScanner) Line() int {
	return s.line
}

func (s *rowScanner) Err() error {
	return s.err
}

// Scan reads all of r and returns the dimensions of the bitmap it contains.
// The width is taken from the first row and every following row must match
// it, every symbol must be '0' or '1'. Empty input is a valid 0x0 grid.
func Scan(r io.Reader) (Grid, error) {
	var g Grid

	s := newRowScanner(r)
	for s.Scan() {
		row := s.Row()

		switch {
		case s.Line() > 1:
			if len(row) != g.Width {
				return Grid{}, &RowWidthError{Line: s.Line(), Width: len(row), Expected: g.Width}
			}
		case len(row) == 0:
			return Grid{}, ErrEmptyRow
		case len(row) > MaxWidth:
			return Grid{}, errors.Wrapf(ErrUnboundedLine, "line %d", s.Line())
		default:
			g.Width = len(row)
		}

		if g.Height == MaxHeight {
			return Grid{}, ErrTooManyRows
		}

		if err := encodeRow(row, s.Line(), nil); err != nil {
			return Grid{}, err
		}

		g.Height++
	}
	if err := s.Err(); err != nil {
		return Grid{}, err
	}

	return g, nil
}
