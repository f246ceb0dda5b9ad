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
	"fmt"
	"image/color"
	"io"
	"math"
	"strconv"
	"strings"

	svg "github.com/ajstarks/svgo"

	"seehuhn.de/go/glyphdump/outline"
)

// WriteSVG writes the image as an SVG file.  One SVG unit corresponds to
// one page unit.
func (img *Image) WriteSVG(w io.Writer, opts *Options) error {
	ew := &errWriter{w: w}
	s := &svgCanvas{
		svg:    svg.New(ew),
		height: img.Page.Height,
	}
	s.svg.Start(int(math.Ceil(img.Page.Width)), int(math.Ceil(img.Page.Height)))
	img.draw(s, opts)
	s.svg.End()
	return ew.err
}

type svgCanvas struct {
	svg    *svg.SVG
	height float64
}

func (s *svgCanvas) fill(o outline.Outline, col color.Color) {
	if o.IsEmpty() {
		return
	}
	r, g, b := rgb(col)
	s.svg.Path(s.pathData(o), fmt.Sprintf("fill:rgb(%d,%d,%d);stroke:none", r, g, b))
}

func (s *svgCanvas) line(x1, y1, x2, y2, width float64, col color.Color, dash float64) {
	r, g, b := rgb(col)
	style := fmt.Sprintf("fill:none;stroke:rgb(%d,%d,%d);stroke-width:%s",
		r, g, b, num(width))
	if dash > 0 {
		style += ";stroke-dasharray:" + num(dash) + "," + num(dash)
	}
	d := "M" + num(x1) + " " + num(s.height-y1) + "L" + num(x2) + " " + num(s.height-y2)
	s.svg.Path(d, style)
}

func (s *svgCanvas) pathData(o outline.Outline) string {
	b := &strings.Builder{}
	for _, seg := range o {
		switch seg.Op {
		case outline.MoveTo:
			b.WriteString("M")
		case outline.LineTo:
			b.WriteString("L")
		case outline.QuadTo:
			b.WriteString("Q")
		case outline.CubeTo:
			b.WriteString("C")
		case outline.Close:
			b.WriteString("Z")
		}
		for i, pt := range seg.Pts {
			if i > 0 {
				b.WriteString(" ")
			}
			b.WriteString(num(pt.X))
			b.WriteString(" ")
			b.WriteString(num(s.height - pt.Y))
		}
	}
	return b.String()
}

// num formats x with at most two decimal places.
func num(x float64) string {
	x = math.Round(x*100) / 100
	if x == 0 {
		x = 0 // no "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

// errWriter remembers the first write error, since the SVG writer does not
// report errors.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	if ew.err != nil {
		return len(p), nil
	}
	n, err := ew.w.Write(p)
	if err != nil {
		ew.err = err
	}
	return n, err
}
