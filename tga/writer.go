package tga

import (
	"bufio"
	"errors"
	"image"
	"image/color"
	"io"
)

var (
	// ErrIncomplete is returned by Close when fewer pixel records were
	// written than the header declares
	ErrIncomplete = errors.New("tga: not enough image data")

	errTooMuch   = errors.New("tga: too much image data")
	errTooLarge  = errors.New("tga: image is too large")
	errHeaderSet = errors.New("tga: header already written")
)

// Pixel is a single pixel record stored as blue, green, red, alpha.
type Pixel [PixelSize]byte

var (
	// White is an opaque white pixel
	White = Pixel{0xff, 0xff, 0xff, 0xff}
	// Black is an opaque black pixel
	Black = Pixel{0x00, 0x00, 0x00, 0xff}
)

// PixelFromColor converts c to a non-premultiplied pixel record.
func PixelFromColor(c color.Color) Pixel {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Pixel{n.B, n.G, n.R, n.A}
}

// A Writer emits a header followed by exactly the number of pixel records it
// declares. Output is buffered; Close must be called to flush it.
type Writer struct {
	w           *bufio.Writer
	header      Header
	remaining   int
	wroteHeader bool
}

// NewWriter returns a Writer that writes an image described by h to w.
func NewWriter(w io.Writer, h Header) *Writer {
	return &Writer{
		w:         bufio.NewWriter(w),
		header:    h,
		remaining: h.Pixels(),
	}
}

// Header returns the header the Writer was created with
func (w *Writer) Header() Header {
	return w.header
}

// WriteHeader writes the header. It is called implicitly by the first
// WritePixel or by Close if it hasn't been called already.
func (w *Writer) WriteHeader() error {
	if w.wroteHeader {
		return errHeaderSet
	}
	b, err := w.header.MarshalBinary()
	if err != nil {
		return err
	}
	n, err := w.w.Write(b)
	if err != nil {
		return err
	}
	if n != len(b) {
		return io.ErrShortWrite
	}
	w.wroteHeader = true
	return nil
}

// WritePixel appends the next pixel record in storage order.
func (w *Writer) WritePixel(p Pixel) error {
	if !w.wroteHeader {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	if w.remaining == 0 {
		return errTooMuch
	}
	for _, b := range p {
		if err := w.w.WriteByte(b); err != nil {
			return err
		}
	}
	w.remaining--
	return nil
}

// Close flushes any buffered data to the underlying io.Writer, it does not
// close it. It returns ErrIncomplete if any pixel records are missing.
func (w *Writer) Close() error {
	if !w.wroteHeader {
		if err := w.WriteHeader(); err != nil {
			return err
		}
	}
	if err := w.w.Flush(); err != nil {
		return err
	}
	if w.remaining > 0 {
		return ErrIncomplete
	}
	return nil
}

// Encode writes the Image m to w in TGA format.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > MaxDimension || b.Dy() > MaxDimension {
		return errTooLarge
	}

	e := NewWriter(w, NewHeader(uint16(b.Dx()), uint16(b.Dy())))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if err := e.WritePixel(PixelFromColor(m.At(x, y))); err != nil {
				return err
			}
		}
	}

	return e.Close()
}
