/*
Package tga implements a Truevision TGA decoder and encoder restricted to
uncompressed 32-bit true color images.

A file is an 18 byte header followed immediately by width * height pixel
records, each four bytes in blue, green, red, alpha order. All multi-byte
header fields are little-endian. Images written by this package set the
top-left origin bit in the image descriptor so rows are stored top to
bottom with no reversal. There is no image ID, no color map and no
compression.
*/
package tga

const (
	// HeaderSize is the size in bytes of the file header
	HeaderSize = 18
	// PixelSize is the size in bytes of each pixel record
	PixelSize = 4
	// MaxDimension is the largest width or height a header can describe
	MaxDimension = 1<<16 - 1

	imageTypeTrueColor = 2
	pixelDepth         = PixelSize * 8

	descriptorRightToLeft = 1 << 4
	descriptorTopToBottom = 2 << 4
)
