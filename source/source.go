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

// Package source locates the fonts to process.
package source

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/sfnt"
)

// tracer traces with key 'glyphdump.source'.
func tracer() tracing.Trace {
	return tracing.Select("glyphdump.source")
}

// ErrNoFonts is returned when a directory contains no font files.
var ErrNoFonts = errors.New("no font files found")

// Font is one font to process.  For font collections, Index selects the
// member font.
type Font struct {
	Path       string
	Index      int
	Collection bool
}

func (f Font) String() string {
	if f.Collection {
		return fmt.Sprintf("%s[%d]", f.Path, f.Index)
	}
	return f.Path
}

// Open reads the font.  If the file turns out to be a font collection,
// member f.Index is read.
func (f Font) Open() (*sfnt.Font, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, err
	}
	if isCollectionData(data) {
		data, err = member(data, f.Index)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", f, err)
		}
	} else if f.Index != 0 {
		return nil, fmt.Errorf("%s: not a font collection", f)
	}

	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", f, err)
	}
	return font, nil
}

// Find returns the fonts for input.
//
// If input is a directory, the OpenType and TrueType files in the directory
// are returned in lexical order.  Subdirectories are not searched.  Font
// collections, both as input and inside a directory, are split into their
// member fonts.  If input does not exist, it is looked up as the file name
// of an installed font.
func Find(input string) ([]Font, error) {
	fi, err := os.Stat(input)
	if errors.Is(err, fs.ErrNotExist) {
		fontPath, err2 := findfont.Find(input)
		if err2 != nil {
			return nil, fmt.Errorf("%s: %w", input, err)
		}
		tracer().Debugf("%s resolved to system font %s", input, fontPath)
		return expand(fontPath)
	} else if err != nil {
		return nil, err
	}

	if !fi.IsDir() {
		return expand(input)
	}

	entries, err := os.ReadDir(input)
	if err != nil {
		return nil, err
	}
	var res []Font
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() {
			continue
		}
		switch {
		case isFont(name):
			res = append(res, Font{Path: filepath.Join(input, name)})
		case isCollection(name):
			members, err := expand(filepath.Join(input, name))
			if err != nil {
				return nil, err
			}
			res = append(res, members...)
		}
	}
	if len(res) == 0 {
		return nil, fmt.Errorf("%s: %w", input, ErrNoFonts)
	}
	return res, nil
}

// expand returns the member fonts of a collection file, or the file itself
// for other font files.
func expand(fileName string) ([]Font, error) {
	if !isCollection(fileName) {
		return []Font{{Path: fileName}}, nil
	}

	data, err := os.ReadFile(fileName)
	if err != nil {
		return nil, err
	}
	offsets, err := collectionOffsets(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	tracer().Infof("%s: font collection with %d fonts", fileName, len(offsets))

	res := make([]Font, len(offsets))
	for i := range res {
		res[i] = Font{Path: fileName, Index: i, Collection: true}
	}
	return res, nil
}

func isFont(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".otf", ".ttf":
		return true
	}
	return false
}

func isCollection(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".otc", ".ttc":
		return true
	}
	return false
}
