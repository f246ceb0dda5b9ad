// seehuhn.de/go/glyphdump - dump and compare the glyphs of OpenType fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package outline extracts glyph outlines from TrueType and CFF fonts.
//
// Outlines are given in font design units, with the y-axis pointing up and
// the glyph origin at (0, 0).
package outline

import (
	"math"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// tracer traces with key 'glyphdump.outline'.
func tracer() tracing.Trace {
	return tracing.Select("glyphdump.outline")
}

// Op is a path construction operator.
type Op uint8

// These are the path construction operators.
const (
	MoveTo Op = iota
	LineTo
	QuadTo
	CubeTo
	Close
)

// Point is a point in font design units.
type Point struct {
	X, Y float64
}

// Segment is one path construction step.
// Pts holds one point for MoveTo and LineTo, two points for QuadTo,
// three points for CubeTo, and no points for Close.
type Segment struct {
	Op  Op
	Pts []Point
}

// Outline is the outline of a glyph.  Every contour starts with
// MoveTo and ends with Close.
type Outline []Segment

// Of returns the outline of the glyph gid in f.
// Blank glyphs and glyph IDs outside the font have an empty outline.
func Of(f *sfnt.Font, gid glyph.ID) Outline {
	switch o := f.Outlines.(type) {
	case *glyf.Outlines:
		if int(gid) >= len(o.Glyphs) {
			return nil
		}
		return fromPath(o.Path(gid))
	case *cff.Outlines:
		if int(gid) >= len(o.Glyphs) || o.Glyphs[gid] == nil {
			return nil
		}
		return fromCFF(o.Glyphs[gid])
	default:
		tracer().Errorf("unsupported outline type %T", f.Outlines)
		return nil
	}
}

func fromPath(p path.Path) Outline {
	var res Outline
	open := false
	for cmd, pts := range p {
		seg := Segment{Pts: make([]Point, len(pts))}
		for i, pt := range pts {
			seg.Pts[i] = Point{X: pt.X, Y: pt.Y}
		}
		switch cmd {
		case path.CmdMoveTo:
			if open {
				res = append(res, Segment{Op: Close})
			}
			seg.Op = MoveTo
			open = true
		case path.CmdLineTo:
			seg.Op = LineTo
		case path.CmdQuadTo:
			seg.Op = QuadTo
		case path.CmdCubeTo:
			seg.Op = CubeTo
		case path.CmdClose:
			seg.Op = Close
			seg.Pts = nil
			open = false
		default:
			continue
		}
		res = append(res, seg)
	}
	if open {
		res = append(res, Segment{Op: Close})
	}
	return res
}

// CFF contours are closed implicitly by the next moveto and at the end of
// the charstring.
func fromCFF(g *cff.Glyph) Outline {
	var res Outline
	open := false
	for _, cmd := range g.Cmds {
		switch cmd.Op {
		case cff.OpMoveTo:
			if open {
				res = append(res, Segment{Op: Close})
			}
			res = append(res, Segment{Op: MoveTo, Pts: []Point{{cmd.Args[0], cmd.Args[1]}}})
			open = true
		case cff.OpLineTo:
			res = append(res, Segment{Op: LineTo, Pts: []Point{{cmd.Args[0], cmd.Args[1]}}})
		case cff.OpCurveTo:
			res = append(res, Segment{Op: CubeTo, Pts: []Point{
				{cmd.Args[0], cmd.Args[1]},
				{cmd.Args[2], cmd.Args[3]},
				{cmd.Args[4], cmd.Args[5]},
			}})
		}
	}
	if open {
		res = append(res, Segment{Op: Close})
	}
	return res
}

// IsEmpty reports whether the outline has no drawing operations.
func (o Outline) IsEmpty() bool {
	for _, seg := range o {
		if seg.Op != MoveTo && seg.Op != Close {
			return false
		}
	}
	return true
}

// NumContours returns the number of contours in the outline.
func (o Outline) NumContours() int {
	n := 0
	for _, seg := range o {
		if seg.Op == MoveTo {
			n++
		}
	}
	return n
}

// Map returns a copy of the outline with every point transformed by f.
func (o Outline) Map(f func(x, y float64) (float64, float64)) Outline {
	if o == nil {
		return nil
	}
	res := make(Outline, len(o))
	for i, seg := range o {
		pts := make([]Point, len(seg.Pts))
		for j, pt := range seg.Pts {
			pts[j].X, pts[j].Y = f(pt.X, pt.Y)
		}
		res[i] = Segment{Op: seg.Op, Pts: pts}
	}
	return res
}

// Rect returns a closed rectangular outline.
func Rect(llx, lly, urx, ury float64) Outline {
	return Outline{
		{Op: MoveTo, Pts: []Point{{llx, lly}}},
		{Op: LineTo, Pts: []Point{{urx, lly}}},
		{Op: LineTo, Pts: []Point{{urx, ury}}},
		{Op: LineTo, Pts: []Point{{llx, ury}}},
		{Op: Close},
	}
}

// Bounds returns the tight bounding box of the outline.
// Curve segments contribute their extreme points, not their control points.
// The second return value is false for an empty outline.
func (o Outline) Bounds() (rect.Rect, bool) {
	var bbox rect.Rect
	first := true
	add := func(p Point) {
		if first || p.X < bbox.LLx {
			bbox.LLx = p.X
		}
		if first || p.X > bbox.URx {
			bbox.URx = p.X
		}
		if first || p.Y < bbox.LLy {
			bbox.LLy = p.Y
		}
		if first || p.Y > bbox.URy {
			bbox.URy = p.Y
		}
		first = false
	}

	var cur Point
	for _, seg := range o {
		switch seg.Op {
		case MoveTo, LineTo:
			cur = seg.Pts[0]
			add(cur)
		case QuadTo:
			p0, p1, p2 := cur, seg.Pts[0], seg.Pts[1]
			for _, t := range quadExtrema(p0.X, p1.X, p2.X) {
				add(quadAt(p0, p1, p2, t))
			}
			for _, t := range quadExtrema(p0.Y, p1.Y, p2.Y) {
				add(quadAt(p0, p1, p2, t))
			}
			cur = p2
			add(cur)
		case CubeTo:
			p0, p1, p2, p3 := cur, seg.Pts[0], seg.Pts[1], seg.Pts[2]
			for _, t := range cubeExtrema(p0.X, p1.X, p2.X, p3.X) {
				add(cubeAt(p0, p1, p2, p3, t))
			}
			for _, t := range cubeExtrema(p0.Y, p1.Y, p2.Y, p3.Y) {
				add(cubeAt(p0, p1, p2, p3, t))
			}
			cur = p3
			add(cur)
		}
	}
	return bbox, !first
}

func quadExtrema(a, b, c float64) []float64 {
	denom := a - 2*b + c
	if denom == 0 {
		return nil
	}
	t := (a - b) / denom
	if t <= 0 || t >= 1 {
		return nil
	}
	return []float64{t}
}

func quadAt(p0, p1, p2 Point, t float64) Point {
	s := 1 - t
	return Point{
		X: s*s*p0.X + 2*s*t*p1.X + t*t*p2.X,
		Y: s*s*p0.Y + 2*s*t*p1.Y + t*t*p2.Y,
	}
}

// cubeExtrema returns the parameters in (0, 1) where the derivative of the
// cubic Bezier polynomial with coefficients a, b, c, d vanishes.
func cubeExtrema(a, b, c, d float64) []float64 {
	qa := -a + 3*b - 3*c + d
	qb := 2 * (a - 2*b + c)
	qc := b - a

	var roots []float64
	if math.Abs(qa) < 1e-12 {
		if qb != 0 {
			roots = append(roots, -qc/qb)
		}
	} else {
		disc := qb*qb - 4*qa*qc
		if disc >= 0 {
			sq := math.Sqrt(disc)
			roots = append(roots, (-qb+sq)/(2*qa), (-qb-sq)/(2*qa))
		}
	}

	res := roots[:0]
	for _, t := range roots {
		if t > 0 && t < 1 {
			res = append(res, t)
		}
	}
	return res
}

func cubeAt(p0, p1, p2, p3 Point, t float64) Point {
	s := 1 - t
	return Point{
		X: s*s*s*p0.X + 3*s*s*t*p1.X + 3*s*t*t*p2.X + t*t*t*p3.X,
		Y: s*s*s*p0.Y + 3*s*s*t*p1.Y + 3*s*t*t*p2.Y + t*t*t*p3.Y,
	}
}
