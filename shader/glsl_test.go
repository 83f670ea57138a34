// seehuhn.de/go/glyphtex - pack glyph outlines into shader textures
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

package shader

import (
	"strings"
	"testing"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphtex/contour"
	"seehuhn.de/go/glyphtex/internal/testfont"
)

func TestWrite(t *testing.T) {
	glyphs := []Glyph{
		{Code: 'A', Outline: testfont.Box(0, 0, 10, 20)},
		{Code: 'o', Outline: testfont.Ring(0, 0, 8)},
		{Code: ' ', Outline: &contour.Outline{}},
	}
	buf := &strings.Builder{}
	err := Write(buf, glyphs, &Options{Prefix: "font"})
	if err != nil {
		t.Fatal(err)
	}
	out := buf.String()

	for _, want := range []string{
		"float font_dline(vec2 p, vec2 a, vec2 b) {",
		"float font_dquad(vec2 pos, vec2 A, vec2 B, vec2 C) {",
		"float font_65(vec2 p) {",
		"\td = min(d, font_dline(p, vec2(0.0, 0.0), vec2(10.0, 0.0)));\n",
		"\td = min(d, font_dline(p, vec2(0.0, 20.0), vec2(0.0, 0.0)));\n",
		"float font_32(vec2 p) {\n\tfloat d = 1e10;\n\treturn d;\n}",
		"\tif (code == 111) return font_111(p);\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
	if n := strings.Count(out, "font_dquad(p, "); n != 4 {
		t.Errorf("got %d quadratic segments, want 4", n)
	}
	if n := strings.Count(out, "font_dline(p, "); n != 8 {
		t.Errorf("got %d line segments, want 8", n)
	}
	if strings.Contains(out, "%!") {
		t.Error("formatting error in output")
	}
}

func TestWriteScale(t *testing.T) {
	buf := &strings.Builder{}
	glyphs := []Glyph{{Code: 'x', Outline: testfont.Box(0, 0, 64, 128)}}
	err := Write(buf, glyphs, &Options{Scale: 1.0 / 64})
	if err != nil {
		t.Fatal(err)
	}
	want := "glyph_dline(p, vec2(1.0, 0.0), vec2(1.0, 2.0))"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output does not contain %q", want)
	}

	buf.Reset()
	glyphs = []Glyph{{Code: 'x', Outline: testfont.Box(0, 0, 1, 2)}}
	err = Write(buf, glyphs, &Options{Scale: 1.0 / 3, Precision: 2})
	if err != nil {
		t.Fatal(err)
	}
	want = "glyph_dline(p, vec2(0.33, 0.0), vec2(0.33, 0.67))"
	if !strings.Contains(buf.String(), want) {
		t.Errorf("output does not contain %q", want)
	}
}

func TestDegenerateQuad(t *testing.T) {
	on := contour.TagOnCurve
	o := &contour.Outline{
		Points:   []vec.Vec2{{X: 0, Y: 0}, {X: 5, Y: 5}, {X: 10, Y: 10}, {X: 10, Y: 0}},
		Tags:     []contour.Tag{on, 0, on, on},
		Contours: []int{3},
	}
	buf := &strings.Builder{}
	err := Write(buf, []Glyph{{Code: 'v', Outline: o}}, nil)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "glyph_dquad(p, ") {
		t.Error("straight quadratic curve emitted as dquad")
	}
}

func TestWriteMalformed(t *testing.T) {
	o := &contour.Outline{
		Points:   []vec.Vec2{{X: 0, Y: 0}, {X: 1, Y: 1}},
		Tags:     []contour.Tag{1},
		Contours: []int{1},
	}
	err := Write(&strings.Builder{}, []Glyph{{Code: 'x', Outline: o}}, nil)
	if err == nil {
		t.Error("malformed outline accepted")
	}
}

func TestCubicToQuads(t *testing.T) {
	// a cubic which is an exact degree elevation of a quadratic curve
	p0 := vec.Vec2{X: 0, Y: 0}
	q := vec.Vec2{X: 30, Y: 60}
	p1 := vec.Vec2{X: 90, Y: 0}
	c := contour.Cubic{
		P0: p0,
		C0: p0.Add(q.Sub(p0).Mul(2.0 / 3)),
		C1: p1.Add(q.Sub(p1).Mul(2.0 / 3)),
		P1: p1,
	}
	quads := cubicToQuads(c)

	if quads[0].P0 != c.P0 || quads[1].P1 != c.P1 {
		t.Error("end points changed")
	}
	if quads[0].P1 != quads[1].P0 {
		t.Error("halves are not connected")
	}

	evalQuad := func(q contour.Quad, s float64) vec.Vec2 {
		return q.P0.Mul((1 - s) * (1 - s)).Add(q.C.Mul(2 * s * (1 - s))).Add(q.P1.Mul(s * s))
	}
	evalCubic := func(c contour.Cubic, s float64) vec.Vec2 {
		u := 1 - s
		return c.P0.Mul(u * u * u).
			Add(c.C0.Mul(3 * u * u * s)).
			Add(c.C1.Mul(3 * u * s * s)).
			Add(c.P1.Mul(s * s * s))
	}
	for i, quad := range quads {
		for _, s := range []float64{0.25, 0.5, 0.75} {
			got := evalQuad(quad, s)
			want := evalCubic(c, (float64(i)+s)/2)
			if got.Sub(want).Length() > 1e-9 {
				t.Errorf("half %d, s=%g: got %v, want %v", i, s, got, want)
			}
		}
	}
}
