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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/tdewolff/argp"

	"seehuhn.de/go/glyphdump/dump"
	"seehuhn.de/go/glyphdump/glyphdiff"
	"seehuhn.de/go/glyphdump/goadb"
	"seehuhn.de/go/glyphdump/report"
)

// Diff compares the glyph set of a build to a reference build.
type Diff struct {
	Reference string `short:"r" desc:"Glyph order and alias database of the reference build"`
	Current   string `short:"c" desc:"Glyph order and alias database of the current build"`
	Font      string `desc:"Font file of the current build, used instead of --current"`
	GOADB     string `desc:"Glyph order and alias database for the glyph names of --font"`
	Output    string `short:"o" desc:"HTML report file"`
	Title     string `default:"Glyph set changes" desc:"Title of the HTML report"`
	Text      bool   `desc:"Print the changes as text"`
	Minify    bool   `desc:"Minify the HTML report"`
}

// Run implements the diff command.
func (cmd *Diff) Run() error {
	if cmd.Reference == "" || (cmd.Current == "") == (cmd.Font == "") {
		return argp.ShowUsage
	}

	reference, err := goadb.ReadFile(cmd.Reference)
	if err != nil {
		return err
	}

	var entries []glyphdiff.Entry
	if cmd.Font != "" {
		var db *goadb.Database
		if cmd.GOADB != "" {
			db, err = goadb.ReadFile(cmd.GOADB)
			if err != nil {
				return err
			}
		}
		entries, err = dump.CompareFont(reference, cmd.Font, db)
		if err != nil {
			return err
		}
	} else {
		current, err := goadb.ReadFile(cmd.Current)
		if err != nil {
			return err
		}
		entries = dump.Compare(reference, current)
	}

	s := glyphdiff.Summarize(entries)
	log.Printf("%d unchanged, %d added, %d removed", s.Unchanged, s.Added, s.Removed)

	if cmd.Text || cmd.Output == "" {
		fmt.Print(glyphdiff.Unified(entries))
	}
	if cmd.Output != "" {
		out, err := os.Create(cmd.Output)
		if err != nil {
			return err
		}
		err = report.Diff(out, cmd.Title, entries, &report.Options{Minify: cmd.Minify})
		return errors.Join(err, out.Close())
	}
	return nil
}
