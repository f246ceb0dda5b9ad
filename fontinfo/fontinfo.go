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

// Package fontinfo collects the font and glyph metadata needed to dump the
// glyphs of a font.
package fontinfo

import (
	"path/filepath"
	"regexp"
	"strings"

	"seehuhn.de/go/sfnt"
)

// Info contains information about a font.
type Info struct {
	FamilyName string
	StyleName  string
	Version    string

	// PSFamilyName is FamilyName with all spaces removed.
	PSFamilyName string

	UnitsPerEm uint16
	Ascent     float64
	Descent    float64 // negative
}

var versionOK = regexp.MustCompile(`^[0-9A-Za-z]+(\.[0-9A-Za-z]+)?$`)
var versionBad = regexp.MustCompile(`[^0-9A-Za-z.]+`)

// New extracts the font information from f.
func New(f *sfnt.Font) *Info {
	version := strings.TrimPrefix(f.Version.String(), "Version ")
	if !versionOK.MatchString(version) {
		version = strings.Trim(versionBad.ReplaceAllString(version, "_"), "_.")
	}
	if version == "" {
		version = "0"
	}

	return &Info{
		FamilyName:   f.FamilyName,
		StyleName:    f.Subfamily(),
		Version:      version,
		PSFamilyName: strings.ReplaceAll(f.FamilyName, " ", ""),
		UnitsPerEm:   f.UnitsPerEm,
		Ascent:       float64(f.Ascent),
		Descent:      float64(f.Descent),
	}
}

// DumpDir returns the directory for the glyph images of the font,
// "root/<PSFamilyName>/<StyleName>/<Version>".
func (info *Info) DumpDir(root string) string {
	return filepath.Join(root, info.PSFamilyName, info.StyleName, info.Version)
}

// IndexDir returns the directory for the HTML index of the font.
func (info *Info) IndexDir(root string) string {
	return filepath.Join(root, info.PSFamilyName)
}

// IndexName returns the file name of the HTML index,
// "<PSFamilyName>-<StyleName>-<Version>.html" with dots in the version
// replaced by underscores.
func (info *Info) IndexName() string {
	return info.PSFamilyName + "-" + info.StyleName + "-" +
		strings.ReplaceAll(info.Version, ".", "_") + ".html"
}

// FullName returns the family name followed by the style name.
func (info *Info) FullName() string {
	return info.FamilyName + " " + info.StyleName
}
