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

// Package render draws glyph images with metric overlays.
//
// An Image can be written as SVG or PNG, and a sequence of images can be
// collected into a multi-page PDF file.
package render

import (
	"image/color"

	"seehuhn.de/go/glyphdump/fontinfo"
	"seehuhn.de/go/glyphdump/layout"
	"seehuhn.de/go/glyphdump/outline"
)

// Options control the rendering of glyph images.
type Options struct {
	// StrokeWidth is the width of the metric lines, in font design units.
	StrokeWidth float64

	ShowBaseline bool
	ShowAdvance  bool

	// Scale is the number of PNG pixels per page unit.
	Scale float64
}

// DefaultOptions are used when nil options are passed to a render function.
var DefaultOptions = &Options{
	StrokeWidth:  10,
	ShowBaseline: true,
	ShowAdvance:  true,
	Scale:        0.25,
}

var (
	baselineColor = color.Gray{Y: 230}
	advanceColor  = color.Gray{Y: 204}
	zeroColor     = color.RGBA{R: 255, G: 77, B: 26, A: 255}
	markerColor   = color.RGBA{R: 0, G: 153, B: 255, A: 255}
	boundaryColor = color.RGBA{R: 0, G: 128, B: 255, A: 255}
)

// Image is a glyph placed on a page.
type Image struct {
	Page    layout.Page
	Outline outline.Outline // in font design units
	Advance float64         // in font design units

	markers *markers
}

// markers are the advance boundary lines of a scaled page.
type markers struct {
	right, height float64
}

// NewImage places a glyph on a page.  The image shows the baseline and
// ticks at both ends of the advance width.
func NewImage(page layout.Page, g *fontinfo.Glyph) *Image {
	return &Image{
		Page:    page,
		Outline: g.Outline,
		Advance: g.Advance,
	}
}

// NewScaledImage places a glyph on a scaled page.  Instead of the metric
// overlay, the image shows vertical markers at both ends of the advance
// width.
func NewScaledImage(page layout.ScaledPage, g *fontinfo.Glyph) *Image {
	return &Image{
		Page:    page.Page,
		Outline: g.Outline,
		Advance: g.Advance,
		markers: &markers{
			right:  page.BoundaryRight,
			height: page.MarkerHeight,
		},
	}
}

// canvas is implemented by the output formats.  Coordinates are page
// coordinates, with the y-axis pointing up.
type canvas interface {
	fill(o outline.Outline, col color.Color)
	line(x1, y1, x2, y2, width float64, col color.Color, dash float64)
}

func (img *Image) draw(c canvas, opts *Options) {
	if opts == nil {
		opts = DefaultOptions
	}
	p := img.Page

	c.fill(outline.Rect(0, 0, p.Width, p.Height), color.White)

	if img.markers != nil {
		img.drawMarkers(c, opts)
	} else {
		img.drawMetrics(c, opts)
	}

	c.fill(img.Outline.Map(p.ToPage), color.Black)
}

func (img *Image) drawMetrics(c canvas, opts *Options) {
	p := img.Page
	sw := opts.StrokeWidth * p.Scale
	x0, y0 := p.OriginX, p.OriginY

	if opts.ShowBaseline {
		c.line(0, y0, p.Width, y0, sw, baselineColor, 0)
	}

	if !opts.ShowAdvance {
		return
	}

	if img.Advance == 0 {
		if !opts.ShowBaseline {
			c.line(x0-2*sw, y0, x0+2*sw, y0, sw, zeroColor, 0)
		}
		c.line(x0, y0-2*sw, x0, y0+2*sw, sw, zeroColor, 0)
		return
	}

	if !opts.ShowBaseline {
		c.line(x0, y0-sw/2, x0, y0+sw/2, sw, advanceColor, 0)
	} else {
		c.line(x0, y0+sw/2, x0, y0-2*sw, sw, advanceColor, 0)
	}

	x1 := x0 + img.Advance*p.Scale
	if !opts.ShowBaseline {
		c.line(x1-sw/2, y0, x1+2*sw, y0, sw, advanceColor, 0)
	}
	c.line(x1, y0+sw/2, x1, y0-2*sw, sw, advanceColor, 0)
}

func (img *Image) drawMarkers(c canvas, opts *Options) {
	if !opts.ShowAdvance {
		return
	}
	p := img.Page
	m := img.markers
	c.line(p.OriginX, p.OriginY, p.OriginX, p.OriginY+m.height, 2, markerColor, 0)
	c.line(m.right, p.OriginY, m.right, p.OriginY+m.height, 2, boundaryColor, 2)
}

func rgb(col color.Color) (r, g, b int) {
	r32, g32, b32, _ := col.RGBA()
	return int(r32 >> 8), int(g32 >> 8), int(b32 >> 8)
}
