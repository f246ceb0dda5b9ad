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

// Package goadb reads and writes glyph order and alias databases (GOADB).
//
// A GOADB is a line oriented text file.  Every non-blank line maps the
// production name of a glyph (the name stored in the font binary) to a
// development name, optionally followed by the Unicode value of the glyph:
//
//	uni0915  dvKA  uni0915  # DEVANAGARI LETTER KA
//	f_f      ff
//
// Everything after a "#" is a comment.
package goadb

import (
	"bufio"
	"fmt"
	"io"
	"iter"
	"os"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/exp/slices"
)

// tracer traces with key 'glyphdump.goadb'.
func tracer() tracing.Trace {
	return tracing.Select("glyphdump.goadb")
}

// Record is one entry of a glyph order and alias database.
type Record struct {
	ProductionName  string
	DevelopmentName string

	// Codepoint is the raw third column of the line, normally of the form
	// "uniXXXX" or "uXXXXX".  The empty string means that the glyph has
	// no direct character mapping.
	Codepoint string
}

// Rune returns the Unicode value given in the codepoint column.
// The second return value is false if the column is empty or does not have
// the form "uniXXXX" or "uXXXX[XX]".
func (r Record) Rune() (rune, bool) {
	return DecodeCodepoint(r.Codepoint)
}

// DecodeCodepoint decodes a codepoint token of the form "uniXXXX" or
// "uXXXX" to "uXXXXXX".  Surrogates and values above U+10FFFF are
// rejected.
func DecodeCodepoint(tok string) (rune, bool) {
	var digits string
	switch {
	case strings.HasPrefix(tok, "uni") && len(tok) == 7:
		digits = tok[3:]
	case strings.HasPrefix(tok, "u") && len(tok) >= 5 && len(tok) <= 7:
		digits = tok[1:]
	default:
		return 0, false
	}
	x, err := strconv.ParseUint(digits, 16, 32)
	if err != nil || !utf8.ValidRune(rune(x)) {
		return 0, false
	}
	return rune(x), true
}

// EncodeCodepoint returns the canonical codepoint token for r:
// "uniXXXX" inside the BMP and "uXXXXX" outside.
func EncodeCodepoint(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf("uni%04X", r)
	}
	return fmt.Sprintf("u%05X", r)
}

// ValidField reports whether s can be written as one field of a database
// line, i.e. whether s is non-empty and contains neither white space nor
// the comment character "#".
func ValidField(s string) bool {
	if s == "" {
		return false
	}
	return !strings.ContainsFunc(s, func(r rune) bool {
		return r == '#' || unicode.IsSpace(r)
	})
}

// maxLineLength is the longest line Read accepts.
const maxLineLength = 1 << 20

// Database is a parsed glyph order and alias database.
// The records are kept in file order.  A Database is never modified after
// it has been constructed.
type Database struct {
	records []Record
	byProd  map[string]int
	byDev   map[string]int
}

// Parse reads a glyph order and alias database from a string.
//
// Lines with other than two or three fields, and names used by more than
// one line, cause a *FormatError.  No partial database is returned.
func Parse(text string) (*Database, error) {
	return Read(strings.NewReader(text))
}

// ReadFile reads a glyph order and alias database from a file.
func ReadFile(fileName string) (*Database, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	db, err := Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return db, nil
}

// Read reads a glyph order and alias database.
func Read(r io.Reader) (*Database, error) {
	b := newBuilder()

	lineNo := 0
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), maxLineLength)
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()

		content, _, _ := strings.Cut(line, "#")
		fields := strings.Fields(content)
		if len(fields) == 0 {
			continue
		}

		var rec Record
		switch len(fields) {
		case 2:
			rec = Record{ProductionName: fields[0], DevelopmentName: fields[1]}
		case 3:
			rec = Record{ProductionName: fields[0], DevelopmentName: fields[1], Codepoint: fields[2]}
		default:
			return nil, &FormatError{Line: lineNo, Text: line, Err: ErrMalformed}
		}

		if err := b.add(rec, lineNo); err != nil {
			return nil, &FormatError{Line: lineNo, Text: line, Err: err}
		}
	}
	if err := scanner.Err(); err == bufio.ErrTooLong {
		return nil, &FormatError{Line: lineNo + 1, Err: err}
	} else if err != nil {
		return nil, err
	}

	tracer().Debugf("goadb: read %d records from %d lines", len(b.db.records), lineNo)
	return b.db, nil
}

// FromRecords constructs a database from a list of records.
// The same checks as for Parse are applied; the line number in a
// *FormatError is the 1-based position in recs.
func FromRecords(recs []Record) (*Database, error) {
	b := newBuilder()
	for i, rec := range recs {
		if err := b.add(rec, i+1); err != nil {
			return nil, &FormatError{Line: i + 1, Text: rec.String(), Err: err}
		}
	}
	return b.db, nil
}

type builder struct {
	db    *Database
	lines []int
}

func newBuilder() *builder {
	return &builder{
		db: &Database{
			byProd: make(map[string]int),
			byDev:  make(map[string]int),
		},
	}
}

func (b *builder) add(rec Record, lineNo int) error {
	if rec.ProductionName == "" || rec.DevelopmentName == "" {
		return errEmptyName
	}
	if !ValidField(rec.ProductionName) || !ValidField(rec.DevelopmentName) ||
		rec.Codepoint != "" && !ValidField(rec.Codepoint) {
		return errInvalidName
	}
	if idx, seen := b.db.byProd[rec.ProductionName]; seen {
		return fmt.Errorf("%w: production name %q already used in line %d",
			ErrDuplicate, rec.ProductionName, b.lines[idx])
	}
	if idx, seen := b.db.byDev[rec.DevelopmentName]; seen {
		return fmt.Errorf("%w: development name %q already used in line %d",
			ErrDuplicate, rec.DevelopmentName, b.lines[idx])
	}

	idx := len(b.db.records)
	b.db.records = append(b.db.records, rec)
	b.db.byProd[rec.ProductionName] = idx
	b.db.byDev[rec.DevelopmentName] = idx
	b.lines = append(b.lines, lineNo)
	return nil
}

// Len returns the number of records in the database.
func (db *Database) Len() int {
	if db == nil {
		return 0
	}
	return len(db.records)
}

// Records iterates over the records in file order.
func (db *Database) Records() iter.Seq[Record] {
	return func(yield func(Record) bool) {
		if db == nil {
			return
		}
		for _, rec := range db.records {
			if !yield(rec) {
				return
			}
		}
	}
}

// All returns a copy of the records, in file order.
func (db *Database) All() []Record {
	if db == nil {
		return nil
	}
	return slices.Clone(db.records)
}

// LookupByProduction returns the record with the given production name.
// The second return value is false if there is no such record.
func (db *Database) LookupByProduction(name string) (Record, bool) {
	if db == nil {
		return Record{}, false
	}
	idx, ok := db.byProd[name]
	if !ok {
		return Record{}, false
	}
	return db.records[idx], true
}

// LookupByDevelopment returns the record with the given development name.
// The second return value is false if there is no such record.
func (db *Database) LookupByDevelopment(name string) (Record, bool) {
	if db == nil {
		return Record{}, false
	}
	idx, ok := db.byDev[name]
	if !ok {
		return Record{}, false
	}
	return db.records[idx], true
}

// DevelopmentNames returns the development names in file order.
func (db *Database) DevelopmentNames() []string {
	res := make([]string, 0, db.Len())
	for rec := range db.Records() {
		res = append(res, rec.DevelopmentName)
	}
	return res
}

// ProductionNames returns the production names in file order.
func (db *Database) ProductionNames() []string {
	res := make([]string, 0, db.Len())
	for rec := range db.Records() {
		res = append(res, rec.ProductionName)
	}
	return res
}

// Filter returns a database containing the records whose development
// name starts with prefix.  The order of the records is preserved.
func (db *Database) Filter(prefix string) *Database {
	b := newBuilder()
	for rec := range db.Records() {
		if !strings.HasPrefix(rec.DevelopmentName, prefix) {
			continue
		}
		// The names are unique in db, so add cannot fail.
		_ = b.add(rec, len(b.lines)+1)
	}
	return b.db
}
