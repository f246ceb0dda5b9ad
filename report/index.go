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

package report

import (
	"io"
	"strconv"

	"seehuhn.de/go/glyphdump/fontinfo"
)

// IndexRow is one line of the glyph index.
type IndexRow struct {
	GID     string // "-" for glyphs which are not in the font
	Image   string // relative URL of the glyph image, or empty
	Unicode string
	Name    string
	Note    string
}

// GlyphRow returns the index row for a glyph of the font.
func GlyphRow(g *fontinfo.Glyph, image string) IndexRow {
	return IndexRow{
		GID:     strconv.Itoa(int(g.GID)),
		Image:   image,
		Unicode: g.UnicodeLabel(),
		Name:    g.Name,
	}
}

// MissingRow returns the index row for a glyph which is listed in a glyph
// order database but not present in the font.
func MissingRow(name, note string) IndexRow {
	return IndexRow{
		GID:     "-",
		Unicode: "-",
		Name:    name,
		Note:    note,
	}
}

// Index writes an HTML table listing the glyphs of a font.
func Index(w io.Writer, title string, rows []IndexRow, opts *Options) error {
	data := struct {
		Title string
		Rows  []IndexRow
	}{
		Title: title,
		Rows:  rows,
	}
	return writePage(w, "index", data, opts)
}
