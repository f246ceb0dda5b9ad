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
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/unicode/runenames"

	"seehuhn.de/go/postscript/type1/names"

	"seehuhn.de/go/glyphdump/glyphdiff"
)

// DiffRow is one line of the glyph set comparison.
type DiffRow struct {
	Class           string // "unchanged", "added" or "removed", plus " missing"
	Symbol          string
	DevelopmentName string
	ProductionName  string
	Unicode         string
	CharName        string
	Note            string
}

// NewDiffRow describes a resolved comparison entry.
//
// If the entry has a Unicode value and its production name differs from the
// Adobe Glyph List name for this character, the note mentions the AGL name.
func NewDiffRow(e glyphdiff.Entry) DiffRow {
	row := DiffRow{
		Class:           e.Status.String(),
		Symbol:          e.Status.Symbol(),
		DevelopmentName: e.DevelopmentName,
		ProductionName:  e.ProductionName,
		Unicode:         "-",
	}
	if row.ProductionName == "" {
		row.ProductionName = "-"
	}

	var notes []string
	if !e.Found {
		row.Class += " missing"
		notes = append(notes, "not in the alias database")
	}
	if r, ok := e.Rune(); ok {
		row.Unicode = fmt.Sprintf("U+%04X", r)
		row.CharName = runenames.Name(r)
		agl := names.FromUnicode(string(r))
		if e.ProductionName != "" && agl != e.ProductionName {
			notes = append(notes, "AGL name "+agl)
		}
	} else if e.Codepoint != "" {
		row.Unicode = e.Codepoint
	}
	row.Note = strings.Join(notes, "; ")
	return row
}

// Diff writes an HTML changelog for a glyph set comparison.
// The entries should have been passed through glyphdiff.Resolve.
func Diff(w io.Writer, title string, entries []glyphdiff.Entry, opts *Options) error {
	rows := make([]DiffRow, len(entries))
	for i, e := range entries {
		rows[i] = NewDiffRow(e)
	}
	data := struct {
		Title   string
		Summary glyphdiff.Summary
		Rows    []DiffRow
	}{
		Title:   title,
		Summary: glyphdiff.Summarize(entries),
		Rows:    rows,
	}
	return writePage(w, "diff", data, opts)
}
