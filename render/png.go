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

package render

import (
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"seehuhn.de/go/glyphdump/outline"
)

// Raster renders the image into an RGBA image, using opts.Scale pixels
// per page unit.
func (img *Image) Raster(opts *Options) *image.RGBA {
	if opts == nil {
		opts = DefaultOptions
	}
	scale := opts.Scale
	if scale <= 0 {
		scale = 1
	}
	w := max(int(math.Ceil(img.Page.Width*scale)), 1)
	h := max(int(math.Ceil(img.Page.Height*scale)), 1)

	c := &rasterCanvas{
		img:    image.NewRGBA(image.Rect(0, 0, w, h)),
		ras:    vector.NewRasterizer(w, h),
		scale:  scale,
		height: img.Page.Height,
	}
	img.draw(c, opts)
	return c.img
}

// WritePNG writes the image as a PNG file.
func (img *Image) WritePNG(w io.Writer, opts *Options) error {
	return png.Encode(w, img.Raster(opts))
}

type rasterCanvas struct {
	img    *image.RGBA
	ras    *vector.Rasterizer
	scale  float64
	height float64
}

// pt converts page coordinates to pixel coordinates.
func (c *rasterCanvas) pt(x, y float64) (float32, float32) {
	return float32(x * c.scale), float32((c.height - y) * c.scale)
}

func (c *rasterCanvas) fill(o outline.Outline, col color.Color) {
	if o.IsEmpty() {
		return
	}
	size := c.img.Bounds().Size()
	c.ras.Reset(size.X, size.Y)
	for _, seg := range o {
		switch seg.Op {
		case outline.MoveTo:
			c.ras.MoveTo(c.pt(seg.Pts[0].X, seg.Pts[0].Y))
		case outline.LineTo:
			c.ras.LineTo(c.pt(seg.Pts[0].X, seg.Pts[0].Y))
		case outline.QuadTo:
			bx, by := c.pt(seg.Pts[0].X, seg.Pts[0].Y)
			cx, cy := c.pt(seg.Pts[1].X, seg.Pts[1].Y)
			c.ras.QuadTo(bx, by, cx, cy)
		case outline.CubeTo:
			bx, by := c.pt(seg.Pts[0].X, seg.Pts[0].Y)
			cx, cy := c.pt(seg.Pts[1].X, seg.Pts[1].Y)
			dx, dy := c.pt(seg.Pts[2].X, seg.Pts[2].Y)
			c.ras.CubeTo(bx, by, cx, cy, dx, dy)
		case outline.Close:
			c.ras.ClosePath()
		}
	}
	c.ras.Draw(c.img, c.img.Bounds(), image.NewUniform(col), image.Point{})
}

// line draws a straight line with butt caps as a filled rectangle, since
// the rasterizer only fills.
func (c *rasterCanvas) line(x1, y1, x2, y2, width float64, col color.Color, dash float64) {
	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 || width <= 0 {
		return
	}
	ux, uy := dx/length, dy/length
	nx, ny := -uy*width/2, ux*width/2

	var o outline.Outline
	addPiece := func(s, t float64) {
		ax, ay := x1+ux*s, y1+uy*s
		bx, by := x1+ux*t, y1+uy*t
		o = append(o,
			outline.Segment{Op: outline.MoveTo, Pts: []outline.Point{{X: ax + nx, Y: ay + ny}}},
			outline.Segment{Op: outline.LineTo, Pts: []outline.Point{{X: bx + nx, Y: by + ny}}},
			outline.Segment{Op: outline.LineTo, Pts: []outline.Point{{X: bx - nx, Y: by - ny}}},
			outline.Segment{Op: outline.LineTo, Pts: []outline.Point{{X: ax - nx, Y: ay - ny}}},
			outline.Segment{Op: outline.Close},
		)
	}
	if dash <= 0 {
		addPiece(0, length)
	} else {
		for s := 0.0; s < length; s += 2 * dash {
			addPiece(s, math.Min(s+dash, length))
		}
	}
	c.fill(o, col)
}
