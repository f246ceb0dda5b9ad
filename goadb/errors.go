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
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrMalformed indicates a line which has neither two nor three fields.
	ErrMalformed = errors.New("malformed line")

	// ErrDuplicate indicates a production or development name which
	// is used by more than one record.
	ErrDuplicate = errors.New("duplicate glyph name")

	errEmptyName   = fmt.Errorf("%w: empty glyph name", ErrMalformed)
	errInvalidName = fmt.Errorf("%w: white space or \"#\" in field", ErrMalformed)
)

// FormatError is returned when a glyph order and alias database cannot be
// parsed.  Line is the 1-based line number of the offending line and Text is
// the raw content of that line.
type FormatError struct {
	Line int
	Text string
	Err  error
}

func (err *FormatError) Error() string {
	msg := "goadb: line " + strconv.Itoa(err.Line)
	if err.Err != nil {
		msg += ": " + err.Err.Error()
	}
	return msg + ": " + strconv.Quote(err.Text)
}

func (err *FormatError) Unwrap() error {
	return err.Err
}
