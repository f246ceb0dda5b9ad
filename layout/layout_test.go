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

package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/glyphdump/fontinfo"
	"seehuhn.de/go/glyphdump/internal/debug"
)

func TestCanvasBounds(t *testing.T) {
	glyphs := []*fontinfo.Glyph{
		{BBox: rect.Rect{LLx: 10, LLy: 20, URx: 300, URy: 700}},
		{BBox: rect.Rect{LLx: -40, LLy: -200, URx: 250, URy: 650}},
	}
	want := rect.Rect{LLx: -40, LLy: -200, URx: 300, URy: 700}
	if d := cmp.Diff(want, CanvasBounds(glyphs)); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// blank glyphs pull the bounds towards the origin
	glyphs = []*fontinfo.Glyph{
		{BBox: rect.Rect{LLx: 10, LLy: 20, URx: 300, URy: 700}},
		{Blank: true},
	}
	want = rect.Rect{LLx: 0, LLy: 0, URx: 300, URy: 700}
	if d := cmp.Diff(want, CanvasBounds(glyphs)); d != "" {
		t.Errorf("blank (-want +got):\n%s", d)
	}

	if d := cmp.Diff(rect.Rect{}, CanvasBounds(nil)); d != "" {
		t.Errorf("empty (-want +got):\n%s", d)
	}
}

func TestCanvasPage(t *testing.T) {
	page := CanvasPage(rect.Rect{LLx: -40, LLy: -200, URx: 300, URy: 700})
	want := Page{Width: 340, Height: 900, OriginX: 40, OriginY: 200, Scale: 1}
	if d := cmp.Diff(want, page); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	x, y := page.ToPage(-40, -200)
	if x != 0 || y != 0 {
		t.Errorf("lower left corner maps to (%g, %g)", x, y)
	}
	x, y = page.ToPage(300, 700)
	if x != page.Width || y != page.Height {
		t.Errorf("upper right corner maps to (%g, %g)", x, y)
	}
}

func TestCanvasPageCFF(t *testing.T) {
	glyphs := fontinfo.Glyphs(debug.MakeCFFFont())
	bounds := CanvasBounds(glyphs)

	approx := cmpopts.EquateApprox(0, 1e-9)
	want := rect.Rect{LLx: -50, LLy: 0, URx: 500, URy: 700}
	if d := cmp.Diff(want, bounds, approx); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	page := CanvasPage(bounds)
	for _, g := range glyphs {
		if g.Blank {
			continue
		}
		llx, lly := page.ToPage(g.BBox.LLx, g.BBox.LLy)
		urx, ury := page.ToPage(g.BBox.URx, g.BBox.URy)
		if llx < -1e-9 || lly < -1e-9 || urx > page.Width+1e-9 || ury > page.Height+1e-9 {
			t.Errorf("%s: not on the page", g.Name)
		}
	}
}

func TestScaled(t *testing.T) {
	s := Scaled{FontSize: 1000, UnitsPerEm: 1000}

	g := &fontinfo.Glyph{Advance: 600, LSB: 20, RSB: 30}
	page := s.Page(g)
	want := ScaledPage{
		Page: Page{
			Width:   50 + 600 + 50,
			Height:  250 + 1000 + 250,
			OriginX: 50,
			OriginY: 250 + 250 - 100,
			Scale:   1,
		},
		BoundaryRight: 650,
		MarkerHeight:  750,
	}
	if d := cmp.Diff(want, page); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// negative side bearings widen the page
	g = &fontinfo.Glyph{Advance: 400, LSB: -50, RSB: -50}
	page = s.Page(g)
	if page.OriginX != 100 || page.BoundaryRight != 500 || page.Width != 600 {
		t.Errorf("got %+v", page)
	}
}

func TestScaledUnitsPerEm(t *testing.T) {
	s := Scaled{FontSize: 100, UnitsPerEm: 2048}
	g := &fontinfo.Glyph{Advance: 1024}
	page := s.Page(g)
	if page.Scale != 100.0/2048 {
		t.Errorf("scale %g", page.Scale)
	}
	if page.BoundaryRight-page.OriginX != 50 {
		t.Errorf("advance maps to %g", page.BoundaryRight-page.OriginX)
	}
	if s.MarginX() != 5 || s.MarginY() != 25 {
		t.Errorf("margins %g %g", s.MarginX(), s.MarginY())
	}
}
