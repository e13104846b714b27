package tga

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

// Header is the fixed size TGA file header. It implements the
// encoding.BinaryMarshaler and encoding.BinaryUnmarshaler interfaces.
//
// Field order matches the on-disk layout:
//
//	offset  size  field
//	0       1     IDLength
//	1       1     ColorMapType
//	2       1     ImageType
//	3       5     ColorMapSpec
//	8       2     XOrigin
//	10      2     YOrigin
//	12      2     Width
//	14      2     Height
//	16      1     PixelDepth
//	17      1     ImageDescriptor
type Header struct {
	IDLength        uint8
	ColorMapType    uint8
	ImageType       uint8
	ColorMapSpec    [5]byte
	XOrigin         uint16
	YOrigin         uint16
	Width           uint16
	Height          uint16
	PixelDepth      uint8
	ImageDescriptor uint8
}

// NewHeader returns the header for an uncompressed 32-bit true color image
// of the given dimensions with a top-left origin.
func NewHeader(width, height uint16) Header {
	return Header{
		ImageType:       imageTypeTrueColor,
		Width:           width,
		Height:          height,
		PixelDepth:      pixelDepth,
		ImageDescriptor: descriptorTopToBottom,
	}
}

// TopToBottom reports whether the first stored row is the top of the image.
func (h Header) TopToBottom() bool {
	return h.ImageDescriptor&descriptorTopToBottom != 0
}

// RightToLeft reports whether each stored row starts at the right edge.
func (h Header) RightToLeft() bool {
	return h.ImageDescriptor&descriptorRightToLeft != 0
}

// Pixels returns the number of pixel records following the header
func (h Header) Pixels() int {
	return int(h.Width) * int(h.Height)
}

// FileSize returns the size in bytes of a complete file using this header
func (h Header) FileSize() int64 {
	return HeaderSize + int64(h.IDLength) + int64(h.Pixels())*PixelSize
}

// MarshalBinary encodes the header into binary form and returns the result
func (h Header) MarshalBinary() ([]byte, error) {
	b := new(bytes.Buffer)
	b.Grow(HeaderSize)
	if err := binary.Write(b, binary.LittleEndian, &h); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// UnmarshalBinary decodes the header from binary form
func (h *Header) UnmarshalBinary(b []byte) error {
	if len(b) != HeaderSize {
		return FormatError(fmt.Sprintf("header is %d bytes, expected %d", len(b), HeaderSize))
	}
	return binary.Read(bytes.NewReader(b), binary.LittleEndian, h)
}
