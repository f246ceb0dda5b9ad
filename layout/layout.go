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

// Package layout computes page sizes and glyph positions for glyph dumps.
//
// All pages use a coordinate system with the origin in the lower left
// corner of the page and the y-axis pointing up.
package layout

import (
	"math"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphdump/fontinfo"
)

// Page describes the page for one glyph image.
type Page struct {
	Width, Height float64

	// OriginX and OriginY give the position of the glyph origin on the page.
	OriginX, OriginY float64

	// Scale converts font design units to page units.
	Scale float64
}

// ToPage converts a point from font design units to page coordinates.
func (p Page) ToPage(x, y float64) (float64, float64) {
	return p.OriginX + x*p.Scale, p.OriginY + y*p.Scale
}

// CanvasBounds returns the union of the ink bounding boxes of the glyphs.
// Blank glyphs count as the box [0 0 0 0], so the result always contains
// the origin if the font has a blank glyph.
func CanvasBounds(glyphs []*fontinfo.Glyph) rect.Rect {
	var bounds rect.Rect
	for i, g := range glyphs {
		box := g.BBox
		if g.Blank {
			box = rect.Rect{}
		}
		if i == 0 {
			bounds = box
			continue
		}
		bounds.LLx = math.Min(bounds.LLx, box.LLx)
		bounds.LLy = math.Min(bounds.LLy, box.LLy)
		bounds.URx = math.Max(bounds.URx, box.URx)
		bounds.URy = math.Max(bounds.URy, box.URy)
	}
	return bounds
}

// CanvasPage returns a page, in font design units, which is large enough
// to hold every glyph whose bounding box is inside bounds.  All glyphs of a
// font share this page, so that the glyph images can be overlaid.
func CanvasPage(bounds rect.Rect) Page {
	return Page{
		Width:   math.Abs(bounds.LLx) + bounds.URx,
		Height:  math.Abs(bounds.LLy) + bounds.URy,
		OriginX: math.Abs(bounds.LLx),
		OriginY: math.Abs(bounds.LLy),
		Scale:   1,
	}
}

// Scaled lays out one glyph per page at a given font size, with margins
// around the advance width of the glyph.
type Scaled struct {
	FontSize   float64 // in page units
	UnitsPerEm float64
}

// ScaledPage is a page produced by Scaled.
type ScaledPage struct {
	Page

	// BoundaryRight is the x coordinate of the advance width boundary.
	BoundaryRight float64

	// MarkerHeight is the height of the boundary markers above the origin.
	MarkerHeight float64
}

func (s Scaled) scale() float64 {
	if s.UnitsPerEm <= 0 {
		return s.FontSize / 1000
	}
	return s.FontSize / s.UnitsPerEm
}

// MarginX returns the horizontal page margin.
func (s Scaled) MarginX() float64 { return s.FontSize * 0.05 }

// MarginY returns the vertical page margin.
func (s Scaled) MarginY() float64 { return s.FontSize * 0.25 }

// Page returns the page for glyph g.  Negative side bearings extend the
// page so that the ink of the glyph is not clipped.
func (s Scaled) Page(g *fontinfo.Glyph) ScaledPage {
	scale := s.scale()

	var extLeft, extRight float64
	if g.LSB < 0 {
		extLeft = -g.LSB * scale
	}
	if g.RSB < 0 {
		extRight = -g.RSB * scale
	}

	marginX := s.MarginX()
	marginY := s.MarginY()
	descender := s.FontSize * 0.25
	centering := -s.FontSize * 0.1

	originX := math.Round(marginX + extLeft)
	return ScaledPage{
		Page: Page{
			Width:   extLeft + marginX + g.Advance*scale + marginX + extRight,
			Height:  marginY + s.FontSize + marginY,
			OriginX: originX,
			OriginY: marginY + descender + centering,
			Scale:   scale,
		},
		BoundaryRight: originX + math.Round(g.Advance*scale),
		MarkerHeight:  s.FontSize * 0.75,
	}
}
