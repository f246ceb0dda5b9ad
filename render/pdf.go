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
	"errors"
	"image/color"
	"io"

	"codeberg.org/go-pdf/fpdf"

	"seehuhn.de/go/glyphdump/outline"
)

// ErrNoPages is returned when a PDF file without pages is written.
var ErrNoPages = errors.New("render: PDF file has no pages")

// PDF collects glyph images into a PDF file, one glyph per page.
// One PDF point corresponds to one page unit.
type PDF struct {
	pdf   *fpdf.Fpdf
	opts  *Options
	pages int
}

// NewPDF starts a new PDF file.  The title is stored in the document
// information dictionary.
func NewPDF(title string, opts *Options) *PDF {
	if opts == nil {
		opts = DefaultOptions
	}
	pdf := fpdf.NewCustom(&fpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
	})
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetLineCapStyle("butt")
	pdf.SetCreator("glyphdump", true)
	if title != "" {
		pdf.SetTitle(title, true)
	}
	return &PDF{pdf: pdf, opts: opts}
}

// Add appends a page showing img.
func (p *PDF) Add(img *Image) {
	p.pdf.AddPageFormat("P", fpdf.SizeType{Wd: img.Page.Width, Ht: img.Page.Height})
	img.draw(&pdfCanvas{pdf: p.pdf, height: img.Page.Height}, p.opts)
	p.pages++
}

// NumPages returns the number of pages added so far.
func (p *PDF) NumPages() int {
	return p.pages
}

// Write writes the PDF file to w.
func (p *PDF) Write(w io.Writer) error {
	if p.pages == 0 {
		return ErrNoPages
	}
	return p.pdf.Output(w)
}

type pdfCanvas struct {
	pdf    *fpdf.Fpdf
	height float64
}

func (c *pdfCanvas) fill(o outline.Outline, col color.Color) {
	if o.IsEmpty() {
		return
	}
	h := c.height
	for _, seg := range o {
		pts := seg.Pts
		switch seg.Op {
		case outline.MoveTo:
			c.pdf.MoveTo(pts[0].X, h-pts[0].Y)
		case outline.LineTo:
			c.pdf.LineTo(pts[0].X, h-pts[0].Y)
		case outline.QuadTo:
			c.pdf.CurveTo(pts[0].X, h-pts[0].Y, pts[1].X, h-pts[1].Y)
		case outline.CubeTo:
			c.pdf.CurveBezierCubicTo(pts[0].X, h-pts[0].Y,
				pts[1].X, h-pts[1].Y, pts[2].X, h-pts[2].Y)
		case outline.Close:
			c.pdf.ClosePath()
		}
	}
	r, g, b := rgb(col)
	c.pdf.SetFillColor(r, g, b)
	c.pdf.DrawPath("F")
}

func (c *pdfCanvas) line(x1, y1, x2, y2, width float64, col color.Color, dash float64) {
	r, g, b := rgb(col)
	c.pdf.SetDrawColor(r, g, b)
	c.pdf.SetLineWidth(width)
	if dash > 0 {
		c.pdf.SetDashPattern([]float64{dash, dash}, 0)
	}
	c.pdf.Line(x1, c.height-y1, x2, c.height-y2)
	if dash > 0 {
		c.pdf.SetDashPattern(nil, 0)
	}
}
