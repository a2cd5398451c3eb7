// Package fontimport seeds editable glyphs from TrueType and OpenType
// fonts.
//
// Two loaders are provided. FromSFNT uses golang.org/x/image/font/sfnt;
// FromTypesetting uses github.com/go-text/typesetting. Both return a
// glyph with a single visible layer in font units, y pointing up.
// Contours made only of quadratic segments keep the Quad kind so that
// TrueType outlines round-trip without raising.
//
//	g, err := fontimport.FromSFNT(goregular.TTF, 'a')
package fontimport
