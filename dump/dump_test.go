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

package dump

import (
	"fmt"
	"html"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/require"

	"seehuhn.de/go/glyphdump/fontinfo"
	"seehuhn.de/go/glyphdump/glyphdiff"
	"seehuhn.de/go/glyphdump/goadb"
	"seehuhn.de/go/glyphdump/internal/debug"
	"seehuhn.de/go/glyphdump/source"
)

func TestFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphdump.dump")
	defer teardown()

	dir := t.TempDir()
	files, err := debug.WriteFontFiles(dir)
	require.NoError(t, err)

	opts := *DefaultOptions
	opts.OutputDir = filepath.Join(dir, "out")
	opts.Formats = []string{"svg", "pdf"}
	res, err := Font(source.Font{Path: files[0]}, &opts)
	require.NoError(t, err)

	numGlyphs := debug.GoRegular().NumGlyphs()
	require.Equal(t, numGlyphs, res.Glyphs)
	require.Empty(t, res.Missing)
	require.Equal(t, res.Info.DumpDir(opts.OutputDir), res.ImageDir)

	svgs, err := filepath.Glob(filepath.Join(res.ImageDir, "*.svg"))
	require.NoError(t, err)
	require.Len(t, svgs, numGlyphs)
	first, err := filepath.Glob(filepath.Join(res.ImageDir, "0000.*.svg"))
	require.NoError(t, err)
	require.Len(t, first, 1)

	index, err := os.ReadFile(res.Index)
	require.NoError(t, err)
	require.Equal(t, numGlyphs+1, strings.Count(string(index), "<tr>"))
	require.Contains(t, html.UnescapeString(string(index)), "<td>U+0041</td>")

	require.NotEmpty(t, res.PDF)
	pdf, err := os.ReadFile(res.PDF)
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(string(pdf), "%PDF-"))
}

func TestFontFormat(t *testing.T) {
	opts := *DefaultOptions
	opts.Formats = []string{"gif"}
	_, err := Font(source.Font{Path: "unused.ttf"}, &opts)
	require.ErrorIs(t, err, ErrFormat)
}

// glyphName returns the name of the glyph for r in Go Regular.
func glyphName(t *testing.T, glyphs []*fontinfo.Glyph, r rune) string {
	t.Helper()
	for _, g := range glyphs {
		for _, c := range g.Codepoints {
			if c == r {
				return g.Name
			}
		}
	}
	t.Fatalf("%q not found", r)
	return ""
}

func writeGOADB(t *testing.T, dir string) string {
	t.Helper()
	glyphs := fontinfo.Glyphs(debug.GoRegular())
	text := fmt.Sprintf("%s devA uni0041\n%s devB uni0042\nmissing devC\n%s other\n",
		glyphName(t, glyphs, 'A'), glyphName(t, glyphs, 'B'), glyphName(t, glyphs, 'C'))
	fileName := filepath.Join(dir, "GlyphOrderAndAliasDB")
	require.NoError(t, os.WriteFile(fileName, []byte(text), 0o644))
	return fileName
}

func TestFontGOADB(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyphdump.dump")
	defer teardown()

	dir := t.TempDir()
	files, err := debug.WriteFontFiles(dir)
	require.NoError(t, err)

	opts := *DefaultOptions
	opts.OutputDir = filepath.Join(dir, "out")
	opts.Formats = []string{"png"}
	opts.GOADB = writeGOADB(t, dir)
	opts.Prefix = "dev"
	opts.Scaled = true
	opts.FontSize = 100
	res, err := Font(source.Font{Path: files[0]}, &opts)
	require.NoError(t, err)

	require.Equal(t, 2, res.Glyphs)
	require.Equal(t, []string{"devC"}, res.Missing)

	pngs, err := filepath.Glob(filepath.Join(res.ImageDir, "*.png"))
	require.NoError(t, err)
	require.Len(t, pngs, 2)
	for _, name := range pngs {
		require.Contains(t, filepath.Base(name), ".dev")
	}

	index, err := os.ReadFile(res.Index)
	require.NoError(t, err)
	require.Contains(t, string(index), "<td>devC</td>")
	require.Contains(t, string(index), "not in font")
	require.NotContains(t, string(index), "other")
	require.Empty(t, res.PDF)
}

func TestCurrentNames(t *testing.T) {
	glyphs := []*fontinfo.Glyph{{Name: "a"}, {Name: "uni0915"}, {Name: "b"}}
	db, err := goadb.Parse("uni0915 dvKA uni0915\na A\n")
	require.NoError(t, err)

	require.Equal(t, []string{"A", "dvKA", "b"}, CurrentNames(glyphs, db))
	require.Equal(t, []string{"a", "uni0915", "b"}, CurrentNames(glyphs, nil))
}

func TestCompare(t *testing.T) {
	reference, err := goadb.Parse("a A\nb B\nc C\n")
	require.NoError(t, err)
	current, err := goadb.Parse("a A\nc C\nd D uni0044\n")
	require.NoError(t, err)

	entries := Compare(reference, current)
	var got []string
	for _, e := range entries {
		got = append(got, e.Status.Symbol()+e.DevelopmentName+":"+e.ProductionName)
	}
	require.Equal(t, []string{"=A:a", "-B:b", "=C:c", "+D:d"}, got)
	require.Equal(t, "uni0044", entries[3].Codepoint)
}

func TestCompareFont(t *testing.T) {
	dir := t.TempDir()
	files, err := debug.WriteFontFiles(dir)
	require.NoError(t, err)

	glyphs := fontinfo.Glyphs(debug.GoRegular())
	reference, err := fontinfo.AliasDB(glyphs)
	require.NoError(t, err)

	entries, err := CompareFont(reference, files[0], nil)
	require.NoError(t, err)
	require.Len(t, entries, len(glyphs))
	require.False(t, glyphdiff.Summarize(entries).Changed())
	for _, e := range entries {
		require.True(t, e.Found, e.DevelopmentName)
	}
}

func TestCompareFontPartialGOADB(t *testing.T) {
	dir := t.TempDir()
	files, err := debug.WriteFontFiles(dir)
	require.NoError(t, err)

	glyphs := fontinfo.Glyphs(debug.GoRegular())
	nameA := glyphName(t, glyphs, 'A')
	nameB := glyphName(t, glyphs, 'B')
	first := glyphs[0].Name

	reference, err := goadb.Parse(first + " " + first + "\n")
	require.NoError(t, err)
	db, err := goadb.Parse(first + " " + first + "\n" + nameA + " devA uni0041\n")
	require.NoError(t, err)

	entries, err := CompareFont(reference, files[0], db)
	require.NoError(t, err)
	require.Len(t, entries, len(glyphs))

	byName := make(map[string]glyphdiff.Entry)
	for _, e := range entries {
		require.True(t, e.Found, e.DevelopmentName)
		byName[e.DevelopmentName] = e
	}
	require.Equal(t, glyphdiff.Unchanged, byName[first].Status)

	a := byName["devA"]
	require.Equal(t, glyphdiff.Added, a.Status)
	require.Equal(t, nameA, a.ProductionName)

	b := byName[nameB]
	require.Equal(t, glyphdiff.Added, b.Status)
	require.Equal(t, nameB, b.ProductionName)
	require.Equal(t, "uni0042", b.Codepoint)
}
