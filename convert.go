package bin2tga

import (
	"io"
	"os"

	"github.com/bodgit/bin2tga/tga"
	"github.com/pkg/errors"
)

func rewind(r io.Seeker) error {
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return &ReadError{Err: err}
	}
	return nil
}

// Convert reads a text bitmap from r and writes it to w as a TGA image. The
// whole of r is validated before anything is written so a malformed bitmap
// produces no output. r is read twice, it is rewound between passes and left
// at the end.
func (c *Converter) Convert(r io.ReadSeeker, w io.Writer) error {
	if err := rewind(r); err != nil {
		return err
	}

	g, err := Scan(r)
	if err != nil {
		return err
	}
	c.logger.Printf("Grid is %dx%d\n", g.Width, g.Height)

	if err := rewind(r); err != nil {
		return err
	}

	tw := tga.NewWriter(w, g.Header())
	if err := tw.WriteHeader(); err != nil {
		return &WriteError{Err: err}
	}

	writePixel := func(p tga.Pixel) error {
		if err := tw.WritePixel(p); err != nil {
			return &WriteError{Err: err}
		}
		return nil
	}

	s := newRowScanner(r)
	for s.Scan() {
		if s.Line() > g.Height || len(s.Row()) != g.Width {
			return &ReadError{Err: errInputChanged}
		}
		if err := encodeRow(s.Row(), s.Line(), writePixel); err != nil {
			return err
		}
	}
	if err := s.Err(); err != nil {
		return err
	}

	if err := tw.Close(); err != nil {
		if err == tga.ErrIncomplete {
			return &ReadError{Err: errInputChanged}
		}
		return &WriteError{Err: err}
	}
	c.logger.Printf("Wrote %d bytes\n", tw.Header().FileSize())

	return nil
}

// ConvertFile converts the text bitmap in the file named input and writes
// the TGA image to the file named output, creating or truncating it. The
// output file may be left incomplete if an error is returned.
func (c *Converter) ConvertFile(input, output string) (err error) {
	in, err := os.Open(input)
	if err != nil {
		return errors.Wrap(err, "bin2tga: unable to open input")
	}
	defer in.Close()

	out, err := os.Create(output)
	if err != nil {
		return errors.Wrap(err, "bin2tga: unable to open output")
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = &WriteError{Err: cerr}
		}
	}()

	c.logger.Printf("Converting \"%s\" to \"%s\"\n", input, output)

	return c.Convert(in, out)
}
