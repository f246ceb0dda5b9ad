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

// Glyphdump renders the glyphs of OpenType fonts and compares the glyph
// sets of font builds.
package main

import (
	"log"
	"strings"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/glyphdump/dump"
	"seehuhn.de/go/glyphdump/render"
	"seehuhn.de/go/glyphdump/report"
	"seehuhn.de/go/glyphdump/source"
)

func main() {
	log.SetFlags(0)

	root := argp.NewCmd(&Dump{}, "Dump the glyphs of OpenType fonts as images")
	root.AddCmd(&Diff{}, "diff", "Compare the glyph sets of two font builds")
	root.AddCmd(&Info{}, "info", "Show information about a font file")
	root.AddCmd(&Bootstrap{}, "goadb", "Print a glyph order and alias database for a font")
	root.Parse()
	root.PrintHelp()
}

// Dump renders every glyph of one or more fonts.
type Dump struct {
	Output     string  `short:"o" default:"dump" desc:"Output directory"`
	Formats    string  `short:"f" default:"svg" desc:"Comma separated output formats (svg, png, pdf)"`
	GOADB      string  `desc:"Glyph order and alias database"`
	Prefix     string  `desc:"Development name prefix of the glyphs to dump"`
	Scaled     bool    `desc:"One page per glyph, sized to the advance width"`
	Size       float64 `default:"1000" desc:"Font size for scaled pages"`
	Stroke     float64 `default:"10" desc:"Width of the metric lines, in font units"`
	NoBaseline bool    `desc:"Do not draw the baseline"`
	NoAdvance  bool    `desc:"Do not mark the advance width"`
	Scale      float64 `default:"0.25" desc:"PNG pixels per font unit"`
	Pad        int     `default:"4" desc:"Digits of the glyph ID in file names"`
	NoName     bool    `desc:"Omit the glyph name from file names"`
	Minify     bool    `desc:"Minify the HTML index"`
	Input      string  `index:"0" desc:"Font file, font directory or installed font name"`
}

// Run implements the dump command.
func (cmd *Dump) Run() error {
	if cmd.Input == "" {
		return argp.ShowUsage
	}
	fonts, err := source.Find(cmd.Input)
	if err != nil {
		return err
	}

	opts := &dump.Options{
		OutputDir:  cmd.Output,
		Formats:    splitList(cmd.Formats),
		Pad:        cmd.Pad,
		AppendName: !cmd.NoName,
		GOADB:      cmd.GOADB,
		Prefix:     cmd.Prefix,
		Scaled:     cmd.Scaled,
		FontSize:   cmd.Size,
		Render: render.Options{
			StrokeWidth:  cmd.Stroke,
			ShowBaseline: !cmd.NoBaseline,
			ShowAdvance:  !cmd.NoAdvance,
			Scale:        cmd.Scale,
		},
		HTML: report.Options{Minify: cmd.Minify},
	}
	for _, src := range fonts {
		res, err := dump.Font(src, opts)
		if err != nil {
			return err
		}
		log.Printf("%s: %d glyphs -> %s", res.Info.FullName(), res.Glyphs, res.Index)
		for _, name := range res.Missing {
			log.Printf("  %s: not in font", name)
		}
	}
	return nil
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			res = append(res, part)
		}
	}
	return res
}
