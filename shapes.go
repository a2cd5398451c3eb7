package glyph

import (
	"math"

	"honnef.co/go/curve"

	"github.com/gogpu/glyph/geom"
)

// Direction is the winding of a generated shape.
type Direction int

const (
	// CounterClockwise shapes have positive area with y pointing up.
	CounterClockwise Direction = iota
	Clockwise
)

// circleK is the handle length of a quarter circle of radius 1.
const circleK = 0.5522847498307936 // 4/3 * (sqrt(2) - 1)

// Circle returns a closed four-point circle.
func Circle(cx, cy, r float64, dir Direction) *Contour {
	return Ellipse(cx, cy, r, r, dir)
}

// Ellipse returns a closed four-point ellipse.
func Ellipse(cx, cy, rx, ry float64, dir Direction) *Contour {
	ox, oy := rx*circleK, ry*circleK
	var p curve.BezPath
	p.MoveTo(pt(cx+rx, cy))
	p.CubicTo(pt(cx+rx, cy+oy), pt(cx+ox, cy+ry), pt(cx, cy+ry))
	p.CubicTo(pt(cx-ox, cy+ry), pt(cx-rx, cy+oy), pt(cx-rx, cy))
	p.CubicTo(pt(cx-rx, cy-oy), pt(cx-ox, cy-ry), pt(cx, cy-ry))
	p.CubicTo(pt(cx+ox, cy-ry), pt(cx+rx, cy-oy), pt(cx+rx, cy))
	p.ClosePath()
	return shape(p, dir)
}

// Rect returns a closed rectangle with its first point at (x, y).
func Rect(x, y, w, h float64, dir Direction) *Contour {
	var p curve.BezPath
	p.MoveTo(pt(x, y))
	p.LineTo(pt(x+w, y))
	p.LineTo(pt(x+w, y+h))
	p.LineTo(pt(x, y+h))
	p.ClosePath()
	return shape(p, dir)
}

// RoundedRect returns a closed rectangle with corners of radius r,
// clamped to half the smaller side.
func RoundedRect(x, y, w, h, r float64, dir Direction) *Contour {
	r = math.Max(0, math.Min(r, math.Min(w, h)/2))
	if r == 0 {
		return Rect(x, y, w, h, dir)
	}
	var p curve.BezPath
	p.MoveTo(pt(x+r, y))
	p.LineTo(pt(x+w-r, y))
	arc(&p, x+w-r, y+r, r, -math.Pi/2, 0)
	p.LineTo(pt(x+w, y+h-r))
	arc(&p, x+w-r, y+h-r, r, 0, math.Pi/2)
	p.LineTo(pt(x+r, y+h))
	arc(&p, x+r, y+h-r, r, math.Pi/2, math.Pi)
	p.LineTo(pt(x, y+r))
	arc(&p, x+r, y+r, r, math.Pi, 3*math.Pi/2)
	p.ClosePath()
	return shape(p, dir)
}

// Polygon returns a closed regular polygon with n sides inscribed in the
// circle of radius r. Fewer than three sides gives nil.
func Polygon(n int, cx, cy, r, rotation float64, dir Direction) *Contour {
	if n < 3 {
		return nil
	}
	var p curve.BezPath
	angle := 2.0 * math.Pi / float64(n)
	for i := 0; i < n; i++ {
		a := rotation + angle*float64(i)
		q := pt(cx+r*math.Cos(a), cy+r*math.Sin(a))
		if i == 0 {
			p.MoveTo(q)
		} else {
			p.LineTo(q)
		}
	}
	p.ClosePath()
	return shape(p, dir)
}

func pt(x, y float64) curve.Point {
	return curve.Point{X: x, Y: y}
}

func shape(p curve.BezPath, dir Direction) *Contour {
	c := ContoursFromPath(p)[0]
	if dir == Clockwise {
		return c.Reverse()
	}
	return c
}

// arc appends a counter-clockwise arc from angle a1 to a2 in quarter-turn
// cubic pieces.
func arc(p *curve.BezPath, cx, cy, r, a1, a2 float64) {
	const maxAngle = math.Pi / 2
	n := int(math.Ceil((a2 - a1) / maxAngle))
	step := (a2 - a1) / float64(n)
	for i := 0; i < n; i++ {
		seg := geom.Arc(geom.Pt(cx, cy), r, a1+float64(i)*step, a1+float64(i+1)*step)
		p.CubicTo(seg.P1.CurvePoint(), seg.P2.CurvePoint(), seg.P3.CurvePoint())
	}
}
