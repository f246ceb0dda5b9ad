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

package glyphdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"seehuhn.de/go/glyphdump/goadb"
)

func entries(spec string) []Entry {
	var res []Entry
	for _, f := range strings.Fields(spec) {
		var status Status
		switch f[0] {
		case '=':
			status = Unchanged
		case '+':
			status = Added
		case '-':
			status = Removed
		default:
			panic("bad spec " + f)
		}
		res = append(res, Entry{Status: status, DevelopmentName: f[1:]})
	}
	return res
}

func TestCompare(t *testing.T) {
	cases := []struct {
		ref, cur []string
		want     string
	}{
		{nil, nil, ""},
		{nil, []string{"a", "b"}, "+a +b"},
		{[]string{"a", "b"}, nil, "-a -b"},
		{[]string{"a", "b", "c"}, []string{"a", "b", "c"}, "=a =b =c"},
		{[]string{"a", "b", "c"}, []string{"a", "c", "d"}, "=a -b =c +d"},
		{[]string{"a", "b", "c"}, []string{"x", "b", "y"}, "-a +x =b -c +y"},
		{[]string{"a", "b"}, []string{"c", "d"}, "-a -b +c +d"},
		{[]string{"dvKA", "dvKHA", "dvGA"}, []string{"dvKA", "dvKA.alt", "dvKHA", "dvGA"}, "=dvKA +dvKA.alt =dvKHA =dvGA"},
	}
	for _, c := range cases {
		got := Compare(c.ref, c.cur)
		want := entries(c.want)
		if d := cmp.Diff(want, got, cmpopts.EquateEmpty()); d != "" {
			t.Errorf("Compare(%q, %q) (-want +got):\n%s", c.ref, c.cur, d)
		}
	}
}

func TestCompareIdentity(t *testing.T) {
	names := make([]string, 500)
	for i := range names {
		// many repeated names, to check that no junk heuristic kicks in
		names[i] = []string{"a", "b", "c", "space"}[i%4]
	}
	got := Compare(names, names)
	if len(got) != len(names) {
		t.Fatalf("got %d entries, want %d", len(got), len(names))
	}
	for i, e := range got {
		if e.Status != Unchanged || e.DevelopmentName != names[i] {
			t.Fatalf("entry %d: %v", i, e)
		}
	}
}

func TestCompareDeterministic(t *testing.T) {
	ref := strings.Fields("a b c d e f g a b c")
	cur := strings.Fields("b c x d f g a c q")
	first := Compare(ref, cur)
	for range 10 {
		if d := cmp.Diff(first, Compare(ref, cur)); d != "" {
			t.Fatal(d)
		}
	}
}

func TestCompareCounts(t *testing.T) {
	ref := strings.Fields("a b c d e f g a b c")
	cur := strings.Fields("b c x d f g a c q")
	got := Compare(ref, cur)

	var fromRef, fromCur []string
	for _, e := range got {
		if e.Status != Added {
			fromRef = append(fromRef, e.DevelopmentName)
		}
		if e.Status != Removed {
			fromCur = append(fromCur, e.DevelopmentName)
		}
	}
	if d := cmp.Diff(ref, fromRef); d != "" {
		t.Errorf("reference not reproduced:\n%s", d)
	}
	if d := cmp.Diff(cur, fromCur); d != "" {
		t.Errorf("current not reproduced:\n%s", d)
	}
}

func TestResolve(t *testing.T) {
	reference, err := goadb.Parse(`
uni0915 dvKA  uni0915
uni0916 dvKHA uni0916
ka_ssa  dvK_SSA
`)
	if err != nil {
		t.Fatal(err)
	}
	current, err := goadb.Parse(`
uni0915  dvKA  uni0915
kha      dvKHA uni0916
uni0917  dvGA  uni0917
`)
	if err != nil {
		t.Fatal(err)
	}

	diff := Compare(reference.DevelopmentNames(), append(current.DevelopmentNames(), "dvNEW"))
	got := Resolve(diff, current, reference)
	want := []Entry{
		{Status: Unchanged, DevelopmentName: "dvKA", ProductionName: "uni0915", Codepoint: "uni0915", Found: true},
		{Status: Unchanged, DevelopmentName: "dvKHA", ProductionName: "kha", Codepoint: "uni0916", Found: true},
		{Status: Removed, DevelopmentName: "dvK_SSA", ProductionName: "ka_ssa", Found: true},
		{Status: Added, DevelopmentName: "dvGA", ProductionName: "uni0917", Codepoint: "uni0917", Found: true},
		{Status: Added, DevelopmentName: "dvNEW"},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("(-want +got):\n%s", d)
	}

	// removed glyphs fall back to the current database
	got = Resolve([]Entry{{Status: Removed, DevelopmentName: "dvGA"}}, current, nil)
	if !got[0].Found || got[0].ProductionName != "uni0917" {
		t.Errorf("fallback failed: %v", got[0])
	}
	if r, ok := got[0].Rune(); !ok || r != 0x0917 {
		t.Errorf("Rune() = %U, %t", r, ok)
	}
}

func TestSummary(t *testing.T) {
	s := Summarize(entries("=a -b =c +d +e"))
	want := Summary{Unchanged: 2, Added: 2, Removed: 1}
	if s != want {
		t.Errorf("got %+v, want %+v", s, want)
	}
	if !s.Changed() {
		t.Error("not changed")
	}
	if Summarize(entries("=a =b")).Changed() {
		t.Error("unexpected change")
	}
}

func TestUnified(t *testing.T) {
	got := Unified(Compare([]string{"a", "b", "c"}, []string{"a", "c", "d"}))
	want := "= a\n- b\n= c\n+ d\n"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
