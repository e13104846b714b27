/*
Package bin2tga converts text bitmaps into TGA images.

A text bitmap has one line per row and one character per pixel, '1' for an
opaque white pixel and '0' for an opaque black one. Every row must be the
same width. Lines may end with LF or CRLF and the last line doesn't need a
line ending.
*/
package bin2tga

import (
	"io/ioutil"
	"log"
)

// Converter converts text bitmaps into TGA images.
type Converter struct {
	logger *log.Logger
}

// New returns a Converter that logs its progress to logger, a nil logger
// discards it.
func New(logger *log.Logger) *Converter {
	if logger == nil {
		logger = log.New(ioutil.Discard, "", 0)
	}
	return &Converter{
		logger: logger,
	}
}
