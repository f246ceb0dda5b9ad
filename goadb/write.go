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

package goadb

import (
	"bufio"
	"io"
	"strings"
)

// String returns the record in GOADB line format, without a newline.
func (r Record) String() string {
	if r.Codepoint == "" {
		return r.ProductionName + " " + r.DevelopmentName
	}
	return r.ProductionName + " " + r.DevelopmentName + " " + r.Codepoint
}

// Encode writes the database in GOADB format, one record per line.
// Comments and blank lines of the original file are not preserved.
func (db *Database) Encode(w io.Writer) error {
	bw := bufio.NewWriter(w)
	for rec := range db.Records() {
		bw.WriteString(rec.String())
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

func (db *Database) String() string {
	buf := &strings.Builder{}
	_ = db.Encode(buf)
	return buf.String()
}
