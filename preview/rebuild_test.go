package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gogpu/glyph"
)

func strokedLine() *glyph.Contour {
	c := glyph.NewContour(glyph.Cubic, []glyph.Point{
		glyph.NewPoint(0, 200, glyph.Move),
		glyph.NewPoint(200, 200, glyph.Line),
	})
	_ = c.SetOperation(glyph.NewVWSContour(c.Len()))
	return c
}

func sampleGlyph() *glyph.Glyph {
	return &glyph.Glyph{
		Name: "a",
		Layers: []*glyph.Layer{{
			Name:    "base",
			Visible: true,
			Outline: glyph.Outline{
				glyph.Rect(0, 0, 100, 100, glyph.CounterClockwise),
				strokedLine(),
			},
		}},
	}
}

func TestRebuild(t *testing.T) {
	g := sampleGlyph()
	r := New()
	require.True(t, r.Dirty())

	res, err := r.Rebuild(g)
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)
	out := res.Outline()
	require.Len(t, out, 2)
	assert.InDelta(t, 10000, out[0].Piecewise().SignedArea(), 1e-6)
	assert.Greater(t, out.Area(), 14000.0)
	assert.Equal(t, uint64(2), res.Misses)
	assert.False(t, r.Dirty())

	again, err := r.Rebuild(g)
	require.NoError(t, err)
	assert.Same(t, res, again, "clean rebuild returns the previous result")
}

func TestRebuild_ReusesUnchangedContours(t *testing.T) {
	g := sampleGlyph()
	r := New()
	_, err := r.Rebuild(g)
	require.NoError(t, err)

	p, _ := g.Layers[0].Outline[0].Point(2)
	p.X = 150
	require.NoError(t, g.Layers[0].Outline[0].SetPoint(2, p))
	r.MarkDirty()

	res, err := r.Rebuild(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(1), res.Hits, "the stroked line is reused")
	assert.Equal(t, uint64(3), res.Misses, "the moved square is rebuilt")
	assert.Equal(t, 3, res.Cached)
}

func TestRebuild_PointRename(t *testing.T) {
	g := sampleGlyph()
	r := New()
	_, err := r.Rebuild(g)
	require.NoError(t, err)

	square := g.Layers[0].Outline[0]
	p, _ := square.Point(1)
	p.Name = "corner"
	require.NoError(t, square.SetPoint(1, p))
	r.MarkDirty()

	res, err := r.Rebuild(g)
	require.NoError(t, err)
	got, _ := res.Layers[0].Outline[0].Point(1)
	assert.Equal(t, "corner", got.Name)
	assert.Equal(t, uint64(1), res.Hits, "only the stroked line is reused")
}

func TestRebuild_ResultIsACopy(t *testing.T) {
	g := sampleGlyph()
	r := New()
	res, err := r.Rebuild(g)
	require.NoError(t, err)
	p, _ := res.Layers[0].Outline[0].Point(0)
	p.X = -50
	require.NoError(t, res.Layers[0].Outline[0].SetPoint(0, p))

	r.MarkDirty()
	res, err = r.Rebuild(g)
	require.NoError(t, err)
	p, _ = res.Layers[0].Outline[0].Point(0)
	assert.Zero(t, p.X)
}

func TestRebuild_SkipsMismatched(t *testing.T) {
	g := sampleGlyph()
	bad := strokedLine()
	bad.Operation().(*glyph.VWSContour).Handles = nil
	g.Layers[0].Outline = append(g.Layers[0].Outline, bad)

	res, err := New().Rebuild(g)
	require.ErrorIs(t, err, glyph.ErrParamMismatch)
	assert.Contains(t, err.Error(), "layer 0 (base)")
	assert.Equal(t, 1, res.Skipped)
	assert.Len(t, res.Outline(), 2)
}

func TestRebuild_CombinesLayers(t *testing.T) {
	g := &glyph.Glyph{Layers: []*glyph.Layer{
		{Name: "a", Visible: true, Outline: glyph.Outline{glyph.Rect(0, 0, 100, 100, glyph.CounterClockwise)}},
		{
			Name:      "b",
			Visible:   true,
			Outline:   glyph.Outline{glyph.Rect(50, 50, 100, 100, glyph.CounterClockwise)},
			Operation: glyph.WithLayerOp(glyph.Union),
		},
		{Name: "hidden", Outline: glyph.Outline{glyph.Rect(500, 0, 10, 10, glyph.CounterClockwise)}},
	}}
	res, err := New(WithTolerance(0.1)).Rebuild(g)
	require.NoError(t, err)
	require.Len(t, res.Layers, 1)
	assert.Equal(t, "a", res.Layers[0].Name)
	assert.InDelta(t, 17500, res.Outline().Area(), 1e-6)
}

func TestRebuild_NewGlyphRebuilds(t *testing.T) {
	r := New()
	first, err := r.Rebuild(sampleGlyph())
	require.NoError(t, err)
	second, err := r.Rebuild(sampleGlyph())
	require.NoError(t, err)
	assert.NotSame(t, first, second)
	assert.Equal(t, uint64(2), second.Hits)
}

func TestRebuild_Nil(t *testing.T) {
	res, err := New().Rebuild(nil)
	require.NoError(t, err)
	assert.Empty(t, res.Layers)
}

func TestReset(t *testing.T) {
	r := New(WithCacheSize(8))
	res, err := r.Rebuild(sampleGlyph())
	require.NoError(t, err)
	require.Equal(t, 2, res.Cached)

	r.Reset()
	assert.True(t, r.Dirty())
	res, err = r.Rebuild(sampleGlyph())
	require.NoError(t, err)
	assert.Equal(t, uint64(4), res.Misses)
}

func TestContourKey(t *testing.T) {
	base := strokedLine()
	key := contourKey(base)
	assert.Equal(t, key, contourKey(base.Clone()))

	moved := base.Clone()
	p, _ := moved.Point(1)
	p.Y++
	_ = moved.SetPoint(1, p)
	assert.NotEqual(t, key, contourKey(moved))

	named := base.Clone()
	p, _ = named.Point(0)
	p.Name = "start"
	_ = named.SetPoint(0, p)
	assert.NotEqual(t, key, contourKey(named))

	wider := base.Clone()
	wider.Operation().(*glyph.VWSContour).Handles[0].LeftOffset++
	assert.NotEqual(t, key, contourKey(wider))

	dashed := base.Clone()
	_ = dashed.SetOperation(glyph.NewDashContour())
	assert.NotEqual(t, key, contourKey(dashed))

	plain := base.Clone()
	_ = plain.SetOperation(nil)
	assert.NotEqual(t, key, contourKey(plain))

	pap := base.Clone()
	_ = pap.SetOperation(glyph.NewPAPContour(glyph.Outline{glyph.Rect(0, 0, 5, 5, glyph.CounterClockwise)}))
	other := base.Clone()
	_ = other.SetOperation(glyph.NewPAPContour(glyph.Outline{glyph.Rect(0, 0, 6, 5, glyph.CounterClockwise)}))
	assert.NotEqual(t, contourKey(pap), contourKey(other))
}

func TestRebuild_Workers(t *testing.T) {
	g := sampleGlyph()
	for i := range 20 {
		g.Layers[0].Outline = append(g.Layers[0].Outline,
			glyph.Rect(float64(i)*200, 400, 100, 100, glyph.CounterClockwise))
	}

	seq, err := New().Rebuild(g)
	require.NoError(t, err)

	r := New(WithWorkers(4))
	defer r.Close()
	par, err := r.Rebuild(g)
	require.NoError(t, err)
	assert.Equal(t, seq.Outline().SVG(), par.Outline().SVG(), "contour order is kept")
	assert.Equal(t, uint64(22), par.Misses)

	r.MarkDirty()
	par, err = r.Rebuild(g)
	require.NoError(t, err)
	assert.Equal(t, uint64(22), par.Hits)

	r.Close()
	r.MarkDirty()
	_, err = r.Rebuild(g)
	require.NoError(t, err, "a closed Rebuilder still builds")
}
