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

// Package dump renders all glyphs of a font into image files and writes an
// HTML index for them.
package dump

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/npillmayer/schuko/tracing"

	"seehuhn.de/go/glyphdump/fontinfo"
	"seehuhn.de/go/glyphdump/goadb"
	"seehuhn.de/go/glyphdump/layout"
	"seehuhn.de/go/glyphdump/render"
	"seehuhn.de/go/glyphdump/report"
	"seehuhn.de/go/glyphdump/source"
)

// tracer traces with key 'glyphdump.dump'.
func tracer() tracing.Trace {
	return tracing.Select("glyphdump.dump")
}

// ErrFormat is returned for unknown output formats.
var ErrFormat = errors.New("unknown output format")

// Options control which glyphs are dumped and how.
type Options struct {
	// OutputDir is the root directory for all output files.
	OutputDir string

	// Formats lists the output formats, out of "svg", "png" and "pdf".
	Formats []string

	// Pad is the number of digits of the glyph ID in image file names.
	Pad int

	// AppendName adds the glyph name to the image file names.
	AppendName bool

	// GOADB, if set, is the path of a glyph order and alias database.
	// Only the glyphs listed in the database are dumped, and glyphs are
	// labelled with their development names.
	GOADB string

	// Prefix restricts the glyphs selected by GOADB to development names
	// starting with Prefix.
	Prefix string

	// Scaled selects one page per glyph, sized to the advance width of the
	// glyph, at the given FontSize.  Otherwise all glyphs share a page
	// which holds every glyph of the font.
	Scaled   bool
	FontSize float64

	Render render.Options
	HTML   report.Options
}

// DefaultOptions are used when Font is called with nil options.
var DefaultOptions = &Options{
	OutputDir:  "dump",
	Formats:    []string{"svg"},
	Pad:        4,
	AppendName: true,
	FontSize:   1000,
	Render:     *render.DefaultOptions,
}

// Result describes the output of Font.
type Result struct {
	Info *fontinfo.Info

	// ImageDir is the directory holding the glyph images.
	ImageDir string

	// Index is the path of the HTML index.
	Index string

	// PDF is the path of the PDF file, if one was written.
	PDF string

	// Glyphs is the number of glyphs rendered.
	Glyphs int

	// Missing lists the development names of GOADB entries whose glyphs
	// are not in the font.
	Missing []string
}

// item is a glyph selected for output.
type item struct {
	glyph *fontinfo.Glyph
	label string
	note  string
}

// Font dumps the glyphs of src.
func Font(src source.Font, opts *Options) (*Result, error) {
	if opts == nil {
		opts = DefaultOptions
	}
	var wantSVG, wantPNG, wantPDF bool
	for _, format := range opts.Formats {
		switch strings.ToLower(format) {
		case "svg":
			wantSVG = true
		case "png":
			wantPNG = true
		case "pdf":
			wantPDF = true
		default:
			return nil, fmt.Errorf("%q: %w", format, ErrFormat)
		}
	}

	f, err := src.Open()
	if err != nil {
		return nil, err
	}
	info := fontinfo.New(f)
	glyphs := fontinfo.Glyphs(f)
	tracer().Infof("%s, %s...", info.FamilyName, info.StyleName)

	res := &Result{
		Info:     info,
		ImageDir: info.DumpDir(opts.OutputDir),
		Index:    filepath.Join(info.IndexDir(opts.OutputDir), info.IndexName()),
	}

	items, missing, err := selectGlyphs(glyphs, opts)
	if err != nil {
		return nil, err
	}
	res.Missing = missing

	err = os.MkdirAll(res.ImageDir, 0o755)
	if err != nil {
		return nil, err
	}

	var doc *render.PDF
	if wantPDF {
		doc = render.NewPDF(info.FullName(), &opts.Render)
	}
	canvas := layout.CanvasPage(layout.CanvasBounds(glyphs))
	scaled := layout.Scaled{
		FontSize:   opts.FontSize,
		UnitsPerEm: float64(info.UnitsPerEm),
	}

	var rows []report.IndexRow
	for _, it := range items {
		if it.glyph == nil {
			rows = append(rows, report.MissingRow(it.label, it.note))
			continue
		}

		var img *render.Image
		if opts.Scaled {
			img = render.NewScaledImage(scaled.Page(it.glyph), it.glyph)
		} else {
			img = render.NewImage(canvas, it.glyph)
		}

		labelled := *it.glyph
		labelled.Name = it.label
		base := labelled.FileName(opts.Pad, opts.AppendName)

		var link string
		if wantPNG {
			err = writeFile(filepath.Join(res.ImageDir, base+".png"), func(w io.Writer) error {
				return img.WritePNG(w, &opts.Render)
			})
			if err != nil {
				return nil, err
			}
			link = imageLink(info, base+".png")
		}
		if wantSVG {
			err = writeFile(filepath.Join(res.ImageDir, base+".svg"), func(w io.Writer) error {
				return img.WriteSVG(w, &opts.Render)
			})
			if err != nil {
				return nil, err
			}
			link = imageLink(info, base+".svg")
		}
		if doc != nil {
			doc.Add(img)
		}
		res.Glyphs++

		row := report.GlyphRow(&labelled, link)
		row.Note = it.note
		rows = append(rows, row)
	}

	if doc != nil && doc.NumPages() > 0 {
		res.PDF = strings.TrimSuffix(res.Index, ".html") + ".pdf"
		err = writeFile(res.PDF, doc.Write)
		if err != nil {
			return nil, err
		}
	}

	err = writeFile(res.Index, func(w io.Writer) error {
		return report.Index(w, info.FullName(), rows, &opts.HTML)
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}

// selectGlyphs returns the glyphs to dump, in output order.  Without a
// GOADB, these are all glyphs of the font.  Otherwise the database order is
// used and database entries without a glyph are reported as missing.
func selectGlyphs(glyphs []*fontinfo.Glyph, opts *Options) ([]item, []string, error) {
	if opts.GOADB == "" {
		items := make([]item, len(glyphs))
		for i, g := range glyphs {
			items[i] = item{glyph: g, label: g.Name}
		}
		return items, nil, nil
	}

	db, err := goadb.ReadFile(opts.GOADB)
	if err != nil {
		return nil, nil, err
	}
	db = db.Filter(opts.Prefix)

	byName := make(map[string]*fontinfo.Glyph, len(glyphs))
	for _, g := range glyphs {
		byName[g.Name] = g
	}

	var items []item
	var missing []string
	for rec := range db.Records() {
		g := byName[rec.ProductionName]
		if g == nil {
			tracer().Infof("glyph %s (%s) not in font", rec.DevelopmentName, rec.ProductionName)
			missing = append(missing, rec.DevelopmentName)
			items = append(items, item{label: rec.DevelopmentName, note: "not in font"})
			continue
		}
		it := item{glyph: g, label: rec.DevelopmentName}
		if rec.ProductionName != rec.DevelopmentName {
			it.note = rec.ProductionName
		}
		items = append(items, it)
	}
	return items, missing, nil
}

// imageLink returns the URL of an image file, relative to the HTML index.
func imageLink(info *fontinfo.Info, base string) string {
	return path.Join(url.PathEscape(info.StyleName), url.PathEscape(info.Version),
		url.PathEscape(base))
}

func writeFile(name string, write func(io.Writer) error) error {
	out, err := os.Create(name)
	if err != nil {
		return err
	}
	err = write(out)
	if err != nil {
		out.Close()
		return fmt.Errorf("%s: %w", name, err)
	}
	return out.Close()
}
