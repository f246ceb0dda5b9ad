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

package fontinfo

import (
	"fmt"
	"strings"
	"unicode"

	"golang.org/x/exp/slices"

	"seehuhn.de/go/geom/rect"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/glyphdump/goadb"
	"seehuhn.de/go/glyphdump/outline"
)

// Glyph contains the metrics of one glyph, in font design units.
type Glyph struct {
	GID        glyph.ID
	Name       string
	Codepoints []rune // sorted

	Advance float64

	// BBox is the ink bounding box.  For blank glyphs this is the zero
	// rectangle.
	BBox  rect.Rect
	Blank bool

	LSB float64 // left side bearing, BBox.LLx
	RSB float64 // right side bearing, Advance - BBox.URx

	Outline outline.Outline
}

// Glyphs returns the glyphs of f in glyph order.
//
// Missing glyph names are replaced by "glyphNNNNN", white space and "#" in
// names are replaced by "_", and repeated names get a ".n" suffix.  The
// resulting names are unique and can be used in a glyph order and alias
// database.
func Glyphs(f *sfnt.Font) []*Glyph {
	n := f.NumGlyphs()
	rev := reverseCMap(f)

	res := make([]*Glyph, n)
	used := make(nameSet, n)
	for i := range res {
		gid := glyph.ID(i)

		name := used.add(f.GlyphName(gid), gid)

		g := &Glyph{
			GID:        gid,
			Name:       name,
			Codepoints: rev[gid],
			Advance:    float64(f.GlyphWidth(gid)),
			Outline:    outline.Of(f, gid),
		}
		bbox, ok := g.Outline.Bounds()
		if ok {
			g.BBox = bbox
			g.LSB = bbox.LLx
			g.RSB = g.Advance - bbox.URx
		} else {
			g.Blank = true
			g.RSB = g.Advance
		}
		res[i] = g
	}
	return res
}

// nameSet hands out unique glyph names which are valid database fields.
type nameSet map[string]bool

func (used nameSet) add(name string, gid glyph.ID) string {
	if name == "" {
		name = fmt.Sprintf("glyph%05d", gid)
	} else if !goadb.ValidField(name) {
		name = strings.Map(func(r rune) rune {
			if r == '#' || unicode.IsSpace(r) {
				return '_'
			}
			return r
		}, name)
	}
	if used[name] {
		base := name
		for k := 1; used[name]; k++ {
			name = fmt.Sprintf("%s.%d", base, k)
		}
	}
	used[name] = true
	return name
}

func reverseCMap(f *sfnt.Font) map[glyph.ID][]rune {
	rev := make(map[glyph.ID][]rune)

	cmap, err := f.CMapTable.GetBest()
	if err != nil || cmap == nil {
		return rev
	}
	low, high := cmap.CodeRange()
	for r := low; r <= high; r++ {
		gid := cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		rev[gid] = append(rev[gid], r)
	}
	for _, rr := range rev {
		slices.Sort(rr)
	}
	return rev
}

// FileName returns the base name of the image file for the glyph:
// the glyph ID, zero padded to the given width, optionally followed by
// a dot and the glyph name.
func (g *Glyph) FileName(pad int, withName bool) string {
	name := fmt.Sprintf("%0*d", pad, g.GID)
	if withName {
		name += "." + strings.ReplaceAll(g.Name, "/", "_")
	}
	return name
}

// UnicodeLabel returns the codepoints of the glyph in the form
// "U+0041, U+00C0", or "-" if the glyph is not mapped.
func (g *Glyph) UnicodeLabel() string {
	if len(g.Codepoints) == 0 {
		return "-"
	}
	parts := make([]string, len(g.Codepoints))
	for i, r := range g.Codepoints {
		parts[i] = fmt.Sprintf("U+%04X", r)
	}
	return strings.Join(parts, ", ")
}

// AliasDB builds a glyph order and alias database for a list of glyphs.
// Production and development names are both set to the glyph name, and
// the codepoint column holds the lowest mapped codepoint.  Names are made
// unique and valid in the same way as by Glyphs.
func AliasDB(glyphs []*Glyph) (*goadb.Database, error) {
	recs := make([]goadb.Record, len(glyphs))
	used := make(nameSet, len(glyphs))
	for i, g := range glyphs {
		name := used.add(g.Name, g.GID)
		recs[i] = goadb.Record{
			ProductionName:  name,
			DevelopmentName: name,
		}
		if len(g.Codepoints) > 0 {
			recs[i].Codepoint = goadb.EncodeCodepoint(g.Codepoints[0])
		}
	}
	return goadb.FromRecords(recs)
}
