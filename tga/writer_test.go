package tga

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failWriter struct {
	err error
}

func (w failWriter) Write(p []byte) (int, error) {
	return 0, w.err
}

func TestWriter(t *testing.T) {
	b := new(bytes.Buffer)
	w := NewWriter(b, NewHeader(2, 1))

	require.NoError(t, w.WritePixel(Black))
	require.NoError(t, w.WritePixel(White))
	require.NoError(t, w.Close())

	require.Equal(t, 26, b.Len())
	assert.Equal(t, []byte{0x00, 0x00, 0x00, 0xff, 0xff, 0xff, 0xff, 0xff}, b.Bytes()[HeaderSize:])
}

func TestWriterEmpty(t *testing.T) {
	b := new(bytes.Buffer)
	require.NoError(t, NewWriter(b, NewHeader(0, 0)).Close())
	assert.Equal(t, HeaderSize, b.Len())
}

func TestWriterIncomplete(t *testing.T) {
	b := new(bytes.Buffer)
	w := NewWriter(b, NewHeader(2, 2))

	require.NoError(t, w.WritePixel(White))
	assert.Equal(t, ErrIncomplete, w.Close())
}

func TestWriterTooMuch(t *testing.T) {
	w := NewWriter(new(bytes.Buffer), NewHeader(1, 1))

	require.NoError(t, w.WritePixel(White))
	assert.Equal(t, errTooMuch, w.WritePixel(White))
}

func TestWriterHeaderTwice(t *testing.T) {
	w := NewWriter(new(bytes.Buffer), NewHeader(1, 1))

	require.NoError(t, w.WriteHeader())
	assert.Equal(t, errHeaderSet, w.WriteHeader())
}

func TestWriterError(t *testing.T) {
	errBroken := errors.New("broken")
	w := NewWriter(failWriter{errBroken}, NewHeader(1, 1))

	require.NoError(t, w.WritePixel(White))
	assert.Equal(t, errBroken, w.Close())
}

func TestEncode(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	m.Set(0, 0, color.NRGBA{0x10, 0x20, 0x30, 0x40})
	m.Set(2, 1, color.White)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))
	require.Equal(t, 18+3*2*4, b.Len())

	// BGRA
	assert.Equal(t, []byte{0x30, 0x20, 0x10, 0x40}, b.Bytes()[HeaderSize:HeaderSize+PixelSize])

	d, err := Decode(b)
	require.NoError(t, err)
	assert.Equal(t, m.Bounds(), d.Bounds())
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			assert.Equal(t, m.At(x, y), d.At(x, y), "pixel %d,%d", x, y)
		}
	}
}

func TestEncodeOffsetBounds(t *testing.T) {
	m := image.NewGray(image.Rect(5, 5, 7, 6))
	m.Set(5, 5, color.White)

	b := new(bytes.Buffer)
	require.NoError(t, Encode(b, m))

	c, err := DecodeConfig(bytes.NewReader(b.Bytes()))
	require.NoError(t, err)
	assert.Equal(t, 2, c.Width)
	assert.Equal(t, 1, c.Height)
	assert.Equal(t, []byte{0xff, 0xff, 0xff, 0xff, 0x00, 0x00, 0x00, 0xff}, b.Bytes()[HeaderSize:])
}

func TestEncodeTooLarge(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, MaxDimension+1, 1))
	assert.Equal(t, errTooLarge, Encode(new(bytes.Buffer), m))
}
