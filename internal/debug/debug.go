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

// Package debug provides fonts for use in unit tests.
package debug

import (
	"bytes"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"
)

// GoRegular returns the Go Regular font.
func GoRegular() *sfnt.Font {
	return mustRead(goregular.TTF)
}

// GoBold returns the Go Bold font.
func GoBold() *sfnt.Font {
	return mustRead(gobold.TTF)
}

func mustRead(data []byte) *sfnt.Font {
	f, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		panic(err)
	}
	return f
}

// WriteFontFiles writes Go Regular and Go Bold as "GoRegular.ttf" and
// "GoBold.ttf" into dir.  The full paths of the files are returned.
func WriteFontFiles(dir string) ([]string, error) {
	files := []struct {
		name string
		data []byte
	}{
		{"GoRegular.ttf", goregular.TTF},
		{"GoBold.ttf", gobold.TTF},
	}
	var res []string
	for _, file := range files {
		fileName := filepath.Join(dir, file.name)
		err := os.WriteFile(fileName, file.data, 0o644)
		if err != nil {
			return nil, err
		}
		res = append(res, fileName)
	}
	return res, nil
}

// MakeCFFFont creates a font with CFF outlines and four glyphs:
// ".notdef" (a box), "space" (blank), "triangle" (straight lines only)
// and "drop" (cubic curves, two contours, negative left side bearing).
func MakeCFFFont() *sfnt.Font {
	notdef := cff.NewGlyph(".notdef", 500)
	notdef.MoveTo(50, 0)
	notdef.LineTo(450, 0)
	notdef.LineTo(450, 700)
	notdef.LineTo(50, 700)

	space := cff.NewGlyph("space", 250)

	triangle := cff.NewGlyph("triangle", 600)
	triangle.MoveTo(100, 0)
	triangle.LineTo(500, 0)
	triangle.LineTo(300, 600)

	drop := cff.NewGlyph("drop", 400)
	drop.MoveTo(-50, 300)
	drop.CurveTo(-50, 100, 450, 100, 450, 300)
	drop.CurveTo(450, 500, -50, 500, -50, 300)
	drop.MoveTo(150, 300)
	drop.LineTo(250, 300)
	drop.LineTo(200, 350)

	outlines := &cff.Outlines{
		Glyphs:  []*cff.Glyph{notdef, space, triangle, drop},
		Private: []*type1.PrivateDict{{}},
		FDSelect: func(glyph.ID) int {
			return 0
		},
	}

	return &sfnt.Font{
		FamilyName: "Debug CFF",
		IsRegular:  true,
		UnitsPerEm: 1000,
		Ascent:     800,
		Descent:    -200,
		Outlines:   outlines,
	}
}
