package fontimport

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/runenames"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/geom"
)

// ErrNoGlyph is returned when the font does not map the rune to a glyph.
var ErrNoGlyph = errors.New("fontimport: font has no glyph for rune")

// FromSFNT imports the glyph for r from TrueType or OpenType data.
func FromSFNT(data []byte, r rune, opts ...Option) (*glyph.Glyph, error) {
	o := newOptions(opts)
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("fontimport: parse font: %w", err)
	}

	var buf sfnt.Buffer
	gid, err := f.GlyphIndex(&buf, r)
	if err != nil {
		return nil, fmt.Errorf("fontimport: glyph index of %U: %w", r, err)
	}
	if gid == 0 {
		return nil, fmt.Errorf("%w %U", ErrNoGlyph, r)
	}

	// Loading at one pixel per font unit gives coordinates in font units.
	ppem := fixed.I(int(f.UnitsPerEm()))
	segs, err := f.LoadGlyph(&buf, gid, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("fontimport: load glyph %d: %w", gid, err)
	}
	adv, err := f.GlyphAdvance(&buf, gid, ppem, xfont.HintingNone)
	if err != nil {
		return nil, fmt.Errorf("fontimport: advance of glyph %d: %w", gid, err)
	}

	b := outlineBuilder{scale: o.scale}
	// sfnt segments are y-down.
	at := func(p fixed.Point26_6) geom.Point {
		return b.pt(float64(p.X)/64, -float64(p.Y)/64)
	}
	for _, s := range segs {
		switch s.Op {
		case sfnt.SegmentOpMoveTo:
			b.moveTo(at(s.Args[0]))
		case sfnt.SegmentOpLineTo:
			b.lineTo(at(s.Args[0]))
		case sfnt.SegmentOpQuadTo:
			b.quadTo(at(s.Args[0]), at(s.Args[1]))
		case sfnt.SegmentOpCubeTo:
			b.cubeTo(at(s.Args[0]), at(s.Args[1]), at(s.Args[2]))
		}
	}
	return newGlyph(r, float64(adv)/64*o.scale, b.outline(), o), nil
}

// FromTypesetting imports the glyph for r using go-text's font reader.
// It yields the same contours and points as FromSFNT; coordinates may
// differ by a fraction of a font unit where the two readers resolve
// implied on-curve points differently. FromSFNT is the reference.
func FromTypesetting(data []byte, r rune, opts ...Option) (*glyph.Glyph, error) {
	o := newOptions(opts)
	face, err := font.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("fontimport: parse font: %w", err)
	}
	gid, ok := face.NominalGlyph(r)
	if !ok {
		return nil, fmt.Errorf("%w %U", ErrNoGlyph, r)
	}
	outline, ok := face.GlyphData(gid).(font.GlyphOutline)
	if !ok {
		return nil, fmt.Errorf("fontimport: glyph %d of %U has no vector outline", gid, r)
	}

	b := outlineBuilder{scale: o.scale}
	at := func(p opentype.SegmentPoint) geom.Point {
		return b.pt(float64(p.X), float64(p.Y))
	}
	for _, s := range outline.Segments {
		switch s.Op {
		case opentype.SegmentOpMoveTo:
			b.moveTo(at(s.Args[0]))
		case opentype.SegmentOpLineTo:
			b.lineTo(at(s.Args[0]))
		case opentype.SegmentOpQuadTo:
			b.quadTo(at(s.Args[0]), at(s.Args[1]))
		case opentype.SegmentOpCubeTo:
			b.cubeTo(at(s.Args[0]), at(s.Args[1]), at(s.Args[2]))
		}
	}
	adv := float64(face.HorizontalAdvance(gid)) * o.scale
	return newGlyph(r, adv, b.outline(), o), nil
}

func newGlyph(r rune, width float64, o glyph.Outline, opts options) *glyph.Glyph {
	glyph.Logger().Debug("fontimport: imported glyph",
		"rune", fmt.Sprintf("%U", r), "contours", len(o), "points", o.PointCount())
	return &glyph.Glyph{
		Name:    runenames.Name(r),
		Unicode: []rune{r},
		Width:   width,
		Layers: []*glyph.Layer{{
			Name:    opts.layerName,
			Visible: true,
			Outline: o,
		}},
	}
}
