package bin2tga

import "github.com/bodgit/bin2tga/tga"

const (
	symbolOn  = '1'
	symbolOff = '0'
)

// EncodeSymbol maps a single grid symbol to its pixel record, '1' is opaque
// white and '0' is opaque black. Any other symbol returns a *SymbolError.
func EncodeSymbol(c byte) (tga.Pixel, error) {
	switch c {
	case symbolOn:
		return tga.White, nil
	case symbolOff:
		return tga.Black, nil
	}
	return tga.Pixel{}, &SymbolError{Symbol: c}
}

// Encode every symbol of row, which is at the given line, passing each pixel
// to fn. A nil fn only validates.
func encodeRow(row []byte, line int, fn func(tga.Pixel) error) error {
	for i, c := range row {
		p, err := EncodeSymbol(c)
		if err != nil {
			return &SymbolError{Line: line, Column: i + 1, Symbol: c}
		}
		if fn == nil {
			continue
		}
		if err := fn(p); err != nil {
			return err
		}
	}
	return nil
}
