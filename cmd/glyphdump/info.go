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

package main

import (
	"fmt"
	"os"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyf"

	"seehuhn.de/go/glyphdump/fontinfo"
	"seehuhn.de/go/glyphdump/layout"
	"seehuhn.de/go/glyphdump/source"
)

// Info shows the metadata which determines where the glyphs of a font are
// dumped.
type Info struct {
	Output string `short:"o" default:"dump" desc:"Output directory of the dump command"`
	Index  int    `desc:"Member font of a font collection"`
	Input  string `index:"0" desc:"Font file"`
}

// Run implements the info command.
func (cmd *Info) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}

	f, err := source.Font{Path: cmd.Input, Index: cmd.Index}.Open()
	if err != nil {
		return err
	}
	info := fontinfo.New(f)
	glyphs := fontinfo.Glyphs(f)

	fmt.Println(cmd.Input)
	fmt.Println("  FamilyName:", info.FamilyName)
	fmt.Println("  StyleName:", info.StyleName)
	fmt.Println("  PostScript family:", info.PSFamilyName)
	fmt.Println("  Version:", info.Version)
	fmt.Println("  IsItalic:", f.IsItalic)
	fmt.Println("  IsBold:", f.IsBold)
	fmt.Println("  Weight:", f.Weight)
	fmt.Println("  UnitsPerEm:", info.UnitsPerEm)
	fmt.Println("  Ascent:", info.Ascent)
	fmt.Println("  Descent:", info.Descent)
	switch f.Outlines.(type) {
	case *glyf.Outlines:
		fmt.Println("  Outlines: TrueType")
	case *cff.Outlines:
		fmt.Println("  Outlines: CFF")
	}
	fmt.Println("  Glyphs:", len(glyphs))

	bounds := layout.CanvasBounds(glyphs)
	page := layout.CanvasPage(bounds)
	fmt.Printf("  Canvas: [%g %g %g %g]\n", bounds.LLx, bounds.LLy, bounds.URx, bounds.URy)
	fmt.Printf("  Page: %g x %g, origin (%g, %g)\n", page.Width, page.Height, page.OriginX, page.OriginY)
	fmt.Println("  Images:", info.DumpDir(cmd.Output))
	fmt.Println("  Index:", info.IndexName())
	if f.Copyright != "" {
		fmt.Println("  Copyright:", f.Copyright)
	}
	if f.License != "" {
		fmt.Println("  License:", f.License)
	}
	return nil
}

// Bootstrap prints a glyph order and alias database which lists the
// glyphs of a font under their own names.
type Bootstrap struct {
	Index int    `desc:"Member font of a font collection"`
	Input string `index:"0" desc:"Font file"`
}

// Run implements the goadb command.
func (cmd *Bootstrap) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	f, err := source.Font{Path: cmd.Input, Index: cmd.Index}.Open()
	if err != nil {
		return err
	}
	db, err := fontinfo.AliasDB(fontinfo.Glyphs(f))
	if err != nil {
		return err
	}
	return db.Encode(os.Stdout)
}
