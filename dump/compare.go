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

package dump

import (
	"seehuhn.de/go/glyphdump/fontinfo"
	"seehuhn.de/go/glyphdump/glyphdiff"
	"seehuhn.de/go/glyphdump/goadb"
	"seehuhn.de/go/glyphdump/source"
)

// CurrentNames returns the development names of the glyphs, in glyph
// order.  Glyphs which db does not know keep their production name.
// If db is nil, the glyph names are returned unchanged.
func CurrentNames(glyphs []*fontinfo.Glyph, db *goadb.Database) []string {
	res := make([]string, len(glyphs))
	for i, g := range glyphs {
		res[i] = g.Name
		if rec, ok := db.LookupByProduction(g.Name); ok {
			res[i] = rec.DevelopmentName
		}
	}
	return res
}

// Compare compares the glyph sets described by two alias databases.
func Compare(reference, current *goadb.Database) []glyphdiff.Entry {
	entries := glyphdiff.Compare(reference.DevelopmentNames(), current.DevelopmentNames())
	return glyphdiff.Resolve(entries, current, reference)
}

// CompareFont compares the glyph set of a font file to a reference
// database.  For font collections, the first member font is used.  The glyph names of the font are mapped to development names
// using db, which may be nil.  Glyphs which db does not know are
// described by the names and codepoints found in the font.
func CompareFont(reference *goadb.Database, fileName string, db *goadb.Database) ([]glyphdiff.Entry, error) {
	f, err := source.Font{Path: fileName}.Open()
	if err != nil {
		return nil, err
	}
	glyphs := fontinfo.Glyphs(f)

	font, err := fontinfo.AliasDB(glyphs)
	if err != nil {
		return nil, err
	}
	current := db
	if current == nil {
		current = font
	}

	entries := glyphdiff.Compare(reference.DevelopmentNames(), CurrentNames(glyphs, db))
	entries = glyphdiff.Resolve(entries, current, reference)
	if db != nil {
		for i, e := range entries {
			if e.Found || e.Status == glyphdiff.Removed {
				continue
			}
			rec, ok := font.LookupByDevelopment(e.DevelopmentName)
			if !ok {
				continue
			}
			entries[i].ProductionName = rec.ProductionName
			entries[i].Codepoint = rec.Codepoint
			entries[i].Found = true
		}
	}
	return entries, nil
}
