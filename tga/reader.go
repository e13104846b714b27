package tga

import (
	"fmt"
	"image"
	"image/color"
	"io"
	"io/ioutil"
)

// A FormatError reports that the input is not a valid TGA image.
type FormatError string

func (e FormatError) Error() string { return "tga: invalid format: " + string(e) }

// An UnsupportedError reports that the input uses a valid but unimplemented
// TGA feature.
type UnsupportedError string

func (e UnsupportedError) Error() string { return "tga: unsupported feature: " + string(e) }

func readFull(r io.Reader, b []byte) error {
	_, err := io.ReadFull(r, b)
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	return err
}

type decoder struct {
	r io.Reader

	header Header
	image  *image.NRGBA

	tmp [HeaderSize]byte
}

func (d *decoder) readHeader() error {
	if err := readFull(d.r, d.tmp[:]); err != nil {
		return err
	}
	if err := d.header.UnmarshalBinary(d.tmp[:]); err != nil {
		return err
	}

	switch {
	case d.header.ColorMapType != 0:
		return UnsupportedError("color map")
	case d.header.ImageType != imageTypeTrueColor:
		return UnsupportedError(fmt.Sprintf("image type %d", d.header.ImageType))
	case d.header.PixelDepth != pixelDepth:
		return UnsupportedError(fmt.Sprintf("pixel depth %d", d.header.PixelDepth))
	}

	// Image ID is free-form, skip it
	if d.header.IDLength > 0 {
		if _, err := io.CopyN(ioutil.Discard, d.r, int64(d.header.IDLength)); err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return err
		}
	}

	return nil
}

func (d *decoder) readPixels() error {
	w, h := int(d.header.Width), int(d.header.Height)
	d.image = image.NewNRGBA(image.Rect(0, 0, w, h))

	row := make([]byte, w*PixelSize)
	for y := 0; y < h; y++ {
		if err := readFull(d.r, row); err != nil {
			return err
		}

		dy := y
		if !d.header.TopToBottom() {
			dy = h - 1 - y
		}
		pix := d.image.Pix[dy*d.image.Stride:]

		for x := 0; x < w; x++ {
			dx := x
			if d.header.RightToLeft() {
				dx = w - 1 - x
			}
			// Stored as BGRA, image.NRGBA wants RGBA
			s, p := row[x*PixelSize:], pix[dx*4:]
			p[0], p[1], p[2], p[3] = s[2], s[1], s[0], s[3]
		}
	}
	return nil
}

func (d *decoder) decode(r io.Reader, configOnly bool) error {
	d.r = r

	if err := d.readHeader(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return FormatError("not enough header data")
	}

	if configOnly {
		return nil
	}

	if err := d.readPixels(); err != nil {
		if err != io.ErrUnexpectedEOF {
			return err
		}
		return FormatError("not enough image data")
	}

	return nil
}

// Decode reads a TGA image from r and returns it as an image.Image.
func Decode(r io.Reader) (image.Image, error) {
	var d decoder
	if err := d.decode(r, false); err != nil {
		return nil, err
	}
	return d.image, nil
}

// DecodeConfig returns the color model and dimensions of a TGA image without
// decoding the entire image.
func DecodeConfig(r io.Reader) (image.Config, error) {
	var d decoder
	if err := d.decode(r, true); err != nil {
		return image.Config{}, err
	}
	return image.Config{
		ColorModel: color.NRGBAModel,
		Width:      int(d.header.Width),
		Height:     int(d.header.Height),
	}, nil
}

func init() {
	// No magic number, match on no color map and image type 2 instead
	image.RegisterFormat("tga", "?\x00\x02", Decode, DecodeConfig)
}
