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

// Package glyphdiff compares the glyph sets of two font builds.
//
// The glyph sets are given as ordered lists of development names.  The
// lists are aligned like the lines of two text files, so that added and
// removed glyphs appear at the place where the change occurred.
package glyphdiff

import (
	"strings"

	"github.com/pmezard/go-difflib/difflib"

	"seehuhn.de/go/glyphdump/goadb"
)

// Status classifies a glyph in a comparison.
type Status int

// These are the possible values of Status.
const (
	Unchanged Status = iota // in both glyph sets
	Added                   // only in the current glyph set
	Removed                 // only in the reference glyph set
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Added:
		return "added"
	case Removed:
		return "removed"
	default:
		return "invalid"
	}
}

// Symbol returns the line prefix used for s in diff output.
func (s Status) Symbol() string {
	switch s {
	case Added:
		return "+"
	case Removed:
		return "-"
	default:
		return "="
	}
}

// Entry is one row of a glyph set comparison.
type Entry struct {
	Status          Status
	DevelopmentName string

	// The following fields are filled in by Resolve.
	ProductionName string
	Codepoint      string // raw GOADB token, e.g. "uni0915"
	Found          bool   // whether one of the databases knows the glyph
}

// Rune returns the Unicode value of the glyph, if known.
func (e Entry) Rune() (rune, bool) {
	return goadb.DecodeCodepoint(e.Codepoint)
}

// Compare aligns the reference and current lists of development names.
//
// Names present in both lists are reported as Unchanged, names only in
// current as Added, and names only in reference as Removed.  When a block of
// names is replaced, the removed names are listed before the added ones.
// The result only depends on the two input sequences.
func Compare(reference, current []string) []Entry {
	res := make([]Entry, 0, max(len(reference), len(current)))

	// The automatic junk heuristic would make the alignment of frequent
	// names depend on the length of the lists, so it is switched off.
	m := difflib.NewMatcherWithJunk(reference, current, false, nil)
	for _, op := range m.GetOpCodes() {
		switch op.Tag {
		case 'e':
			res = appendNames(res, Unchanged, reference[op.I1:op.I2])
		case 'd':
			res = appendNames(res, Removed, reference[op.I1:op.I2])
		case 'i':
			res = appendNames(res, Added, current[op.J1:op.J2])
		case 'r':
			res = appendNames(res, Removed, reference[op.I1:op.I2])
			res = appendNames(res, Added, current[op.J1:op.J2])
		}
	}
	return res
}

func appendNames(res []Entry, status Status, names []string) []Entry {
	for _, name := range names {
		res = append(res, Entry{Status: status, DevelopmentName: name})
	}
	return res
}

// Resolve fills in the production names and codepoints of the entries.
//
// Removed glyphs are looked up in the reference database first, all other
// glyphs in the current database first.  If the preferred database does not
// know a glyph, the other one is tried.  Either database may be nil.
// The input slice is not modified.
func Resolve(entries []Entry, current, reference *goadb.Database) []Entry {
	res := make([]Entry, len(entries))
	for i, e := range entries {
		first, second := current, reference
		if e.Status == Removed {
			first, second = reference, current
		}

		rec, ok := first.LookupByDevelopment(e.DevelopmentName)
		if !ok {
			rec, ok = second.LookupByDevelopment(e.DevelopmentName)
		}

		e.Found = ok
		e.ProductionName = rec.ProductionName
		e.Codepoint = rec.Codepoint
		res[i] = e
	}
	return res
}

// Summary counts the entries of a comparison by status.
type Summary struct {
	Unchanged int
	Added     int
	Removed   int
}

// Summarize counts the entries by status.
func Summarize(entries []Entry) Summary {
	var s Summary
	for _, e := range entries {
		switch e.Status {
		case Unchanged:
			s.Unchanged++
		case Added:
			s.Added++
		case Removed:
			s.Removed++
		}
	}
	return s
}

// Changed reports whether any glyph was added or removed.
func (s Summary) Changed() bool {
	return s.Added > 0 || s.Removed > 0
}

// Unified formats the entries as a changelog, one line per glyph.
func Unified(entries []Entry) string {
	b := &strings.Builder{}
	for _, e := range entries {
		b.WriteString(e.Status.Symbol())
		b.WriteByte(' ')
		b.WriteString(e.DevelopmentName)
		b.WriteByte('\n')
	}
	return b.String()
}
