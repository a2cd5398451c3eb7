// Command glyphdemo builds a glyph with contour effects and boolean
// layers, and writes its preview as SVG path data and a PNG.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/vector"
	"honnef.co/go/curve"

	"github.com/gogpu/glyph"
	"github.com/gogpu/glyph/fontimport"
	"github.com/gogpu/glyph/geom"
	"github.com/gogpu/glyph/preview"
)

func main() {
	var (
		char    = flag.String("rune", "", "import this character from Go Regular instead of the sample glyph")
		effect  = flag.String("effect", "vws", "contour effect: none, vws, dash or pap")
		cut     = flag.Bool("cut", true, "subtract a horizontal bar layer")
		size    = flag.Int("size", 512, "PNG size in pixels")
		svgOut  = flag.String("svg", "glyph.svg", "SVG output file")
		pngOut  = flag.String("png", "glyph.png", "PNG output file")
		verbose = flag.Bool("v", false, "log rebuild details")
	)
	flag.Parse()

	if *verbose {
		glyph.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	g, err := loadGlyph(*char)
	if err != nil {
		log.Fatalf("Failed to load glyph: %v", err)
	}
	if err := applyEffect(g.Layers[0], *effect); err != nil {
		log.Fatalf("Failed to apply %s: %v", *effect, err)
	}
	if *cut {
		addCutLayer(g)
	}

	res, err := preview.New().Rebuild(g)
	if err != nil {
		// Skipped contours are reported; the rest still renders.
		log.Printf("Some contours were skipped: %v", err)
	}
	out := res.Outline()

	if err := writeSVG(*svgOut, out); err != nil {
		log.Fatalf("Failed to write SVG: %v", err)
	}
	if err := writePNG(*pngOut, out, *size); err != nil {
		log.Fatalf("Failed to write PNG: %v", err)
	}
	log.Printf("Glyph %q saved to %s and %s (%d contours)\n", g.Name, *svgOut, *pngOut, len(out))
}

func loadGlyph(char string) (*glyph.Glyph, error) {
	if char == "" {
		return sampleGlyph(), nil
	}
	r := []rune(char)
	if len(r) != 1 {
		return nil, fmt.Errorf("-rune wants one character, got %q", char)
	}
	return fontimport.FromSFNT(goregular.TTF, r[0])
}

// sampleGlyph is a ring with a stroked spine through it.
func sampleGlyph() *glyph.Glyph {
	spine := glyph.NewContour(glyph.Cubic, []glyph.Point{
		glyph.NewPoint(100, 100, glyph.Move),
		{X: 500, Y: 600, B: glyph.At(200, 600), A: glyph.At(800, 600), Type: glyph.Curve},
		{X: 900, Y: 100, B: glyph.At(900, 300), Type: glyph.Curve},
	})
	return &glyph.Glyph{
		Name:  "sample",
		Width: 1000,
		Layers: []*glyph.Layer{{
			Name:    "Layer 1",
			Visible: true,
			Outline: glyph.Outline{
				glyph.Circle(500, 400, 300, glyph.CounterClockwise),
				glyph.Circle(500, 400, 220, glyph.Clockwise),
				spine,
			},
		}},
	}
}

func applyEffect(l *glyph.Layer, effect string) error {
	if effect == "none" {
		return nil
	}
	for _, c := range l.Outline {
		var op glyph.ContourOperation
		switch effect {
		case "vws":
			if c.IsClosed() {
				continue
			}
			v := glyph.NewVWSContour(c.Len())
			for i := range v.Handles {
				v.Handles[i].LeftOffset = 20 + 30*float64(i)
				v.Handles[i].RightOffset = 20 + 30*float64(i)
			}
			op = v
		case "dash":
			d := glyph.NewDashContour()
			d.StrokeWidth = 16
			if err := d.SetDashDesc([]float64{40, 20}); err != nil {
				return err
			}
			op = d
		case "pap":
			diamond := glyph.Polygon(4, 0, 0, 12, 0, glyph.CounterClockwise)
			p := glyph.NewPAPContour(glyph.Outline{diamond})
			p.Spacing = 8
			p.Stretch = glyph.StretchSpacing
			op = p
		default:
			return fmt.Errorf("unknown effect %q", effect)
		}
		if err := c.SetOperation(op); err != nil {
			return err
		}
	}
	return nil
}

// addCutLayer subtracts a bar across the middle of the first layer.
func addCutLayer(g *glyph.Glyph) {
	b := g.Layers[0].Outline.Bounds()
	if b.IsEmpty() {
		return
	}
	h := b.Height() / 12
	bar := glyph.Rect(b.Min.X-10, b.Center().Y-h/2, b.Width()+20, h, glyph.CounterClockwise)
	g.Layers = append(g.Layers, &glyph.Layer{
		Name:      "cut",
		Visible:   true,
		Outline:   glyph.Outline{bar},
		Operation: glyph.WithLayerOp(glyph.Difference),
	})
}

func writeSVG(name string, o glyph.Outline) error {
	f, err := os.Create(name)
	if err != nil {
		return err
	}
	defer f.Close()

	b := o.Bounds().Inflate(20)
	// Glyph y points up; flip it for SVG.
	fmt.Fprintf(f, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%g %g %g %g">`+"\n",
		b.Min.X, -b.Max.Y, b.Width(), b.Height())
	fmt.Fprint(f, `<path transform="scale(1,-1)" fill-rule="nonzero" d="`)
	if err := o.WriteSVG(f); err != nil {
		return err
	}
	_, err = fmt.Fprint(f, "\"/>\n</svg>\n")
	return err
}

func writePNG(name string, o glyph.Outline, size int) error {
	b := o.Bounds()
	dst := image.NewRGBA(image.Rect(0, 0, size, size))
	draw.Draw(dst, dst.Bounds(), image.White, image.Point{}, draw.Src)
	if !b.IsEmpty() {
		pad := float64(size) / 16
		scale := (float64(size) - 2*pad) / max(b.Width(), b.Height())
		at := func(p curve.Point) (float32, float32) {
			q := geom.FromCurvePoint(p)
			return float32((q.X-b.Min.X)*scale + pad), float32((b.Max.Y-q.Y)*scale + pad)
		}

		r := vector.NewRasterizer(size, size)
		for el := range o.Path().Flatten(0.25 / scale) {
			switch el.Kind {
			case curve.MoveToKind:
				r.MoveTo(at(el.P0))
			case curve.LineToKind:
				r.LineTo(at(el.P0))
			case curve.ClosePathKind:
				r.ClosePath()
			}
		}
		r.Draw(dst, dst.Bounds(), image.NewUniform(color.RGBA{R: 0x20, G: 0x30, B: 0x60, A: 0xff}), image.Point{})
	}

	f, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := png.Encode(f, dst); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
