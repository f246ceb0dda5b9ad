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

// Package report writes HTML pages for glyph dumps and glyph set
// comparisons.
package report

import (
	"bytes"
	"html/template"
	"io"

	"github.com/tdewolff/minify/v2"
	"github.com/tdewolff/minify/v2/html"
)

// Options control the HTML output.
type Options struct {
	// Minify removes unnecessary white space and optional tags.
	Minify bool
}

var pageTmpl = template.Must(template.New("page").Parse(pageHTML))

func writePage(w io.Writer, name string, data any, opts *Options) error {
	if opts == nil || !opts.Minify {
		return pageTmpl.ExecuteTemplate(w, name, data)
	}

	buf := &bytes.Buffer{}
	err := pageTmpl.ExecuteTemplate(buf, name, data)
	if err != nil {
		return err
	}
	m := minify.New()
	m.AddFunc("text/html", html.Minify)
	return m.Minify("text/html", w, buf)
}

const pageHTML = `{{define "head" -}}
<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>
body { font-family: sans-serif; }
table { border-collapse: collapse; }
td, th { border: 1px solid #ccc; padding: 0.2em 0.5em; text-align: left; }
img { height: 5em; }
tr.added { background: #dfd; }
tr.removed { background: #fdd; }
tr.missing td.note { color: #c00; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
{{- end}}

{{define "index" -}}
{{template "head" .}}
<table>
  <thead>
    <tr><th>GID</th><th>Image</th><th>Unicode</th><th>Name</th><th>Note</th></tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr>
      <td>{{.GID}}</td>
      <td>{{if .Image}}<img src="{{.Image}}">{{else}}-{{end}}</td>
      <td>{{.Unicode}}</td>
      <td>{{.Name}}</td>
      <td>{{.Note}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
</body>
</html>
{{end}}

{{define "diff" -}}
{{template "head" .}}
<p>{{.Summary.Unchanged}} unchanged, {{.Summary.Added}} added, {{.Summary.Removed}} removed</p>
<table>
  <thead>
    <tr><th></th><th>Development name</th><th>Production name</th><th>Unicode</th><th>Character name</th><th>Note</th></tr>
  </thead>
  <tbody>
{{- range .Rows}}
    <tr class="{{.Class}}">
      <td>{{.Symbol}}</td>
      <td>{{.DevelopmentName}}</td>
      <td>{{.ProductionName}}</td>
      <td>{{.Unicode}}</td>
      <td>{{.CharName}}</td>
      <td class="note">{{.Note}}</td>
    </tr>
{{- end}}
  </tbody>
</table>
</body>
</html>
{{end}}`
