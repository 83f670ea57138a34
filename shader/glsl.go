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

// Package shader writes glyph outlines as GLSL distance functions.
//
// For every glyph, a function
//
//	float <prefix>_<code>(vec2 p)
//
// is generated, which returns the (unsigned) distance from p to the outline
// of the glyph.  Lines and quadratic Bézier curves are used directly; cubic
// curves are approximated by two quadratic curves each.
package shader

import (
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphtex/contour"
	"seehuhn.de/go/glyphtex/internal/float"
)

// Glyph is the input for one generated distance function.
type Glyph struct {
	Code    byte
	Outline *contour.Outline
}

// Options control the generated code.
type Options struct {
	// Prefix is used for all generated function names.
	// The default is "glyph".
	Prefix string

	// Scale is applied to all coordinates.  The default is 1.
	Scale float64

	// Precision is the maximal number of digits after the decimal point
	// in coordinates.  The default is 6.
	Precision int
}

const helpers = `float %[1]s_dot2(vec2 v) { return dot(v, v); }

float %[1]s_dline(vec2 p, vec2 a, vec2 b) {
	vec2 pa = p - a, ba = b - a;
	float h = clamp(dot(pa, ba) / dot(ba, ba), 0.0, 1.0);
	return length(pa - ba * h);
}

float %[1]s_dquad(vec2 pos, vec2 A, vec2 B, vec2 C) {
	vec2 a = B - A;
	vec2 b = A - 2.0 * B + C;
	vec2 c = a * 2.0;
	vec2 d = A - pos;
	float kk = 1.0 / dot(b, b);
	float kx = kk * dot(a, b);
	float ky = kk * (2.0 * dot(a, a) + dot(d, b)) / 3.0;
	float kz = kk * dot(d, a);
	float res;
	float p = ky - kx * kx;
	float p3 = p * p * p;
	float q = kx * (2.0 * kx * kx - 3.0 * ky) + kz;
	float h = q * q + 4.0 * p3;
	if (h >= 0.0) {
		h = sqrt(h);
		vec2 x = (vec2(h, -h) - q) / 2.0;
		vec2 uv = sign(x) * pow(abs(x), vec2(1.0 / 3.0));
		float t = clamp(uv.x + uv.y - kx, 0.0, 1.0);
		res = %[1]s_dot2(d + (c + b * t) * t);
	} else {
		float z = sqrt(-p);
		float v = acos(q / (p * z * 2.0)) / 3.0;
		float m = cos(v);
		float n = sin(v) * 1.732050808;
		vec3 t = clamp(vec3(m + m, -n - m, n - m) * z - kx, 0.0, 1.0);
		res = min(%[1]s_dot2(d + (c + b * t.x) * t.x),
			%[1]s_dot2(d + (c + b * t.y) * t.y));
	}
	return sqrt(res);
}
`

// Write writes GLSL distance functions for the given glyphs, followed by a
// function <prefix>_distance(int code, vec2 p) which dispatches on the
// character code.
func Write(w io.Writer, glyphs []Glyph, opt *Options) error {
	e := &emitter{
		out:       bufio.NewWriter(w),
		prefix:    "glyph",
		scale:     1,
		precision: 6,
	}
	if opt != nil {
		if opt.Prefix != "" {
			e.prefix = opt.Prefix
		}
		if opt.Scale != 0 {
			e.scale = opt.Scale
		}
		if opt.Precision > 0 {
			e.precision = opt.Precision
		}
	}
	prefix := e.prefix
	fmt.Fprintf(e.out, helpers, prefix)
	for _, g := range glyphs {
		err := e.glyph(g)
		if err != nil {
			return err
		}
	}

	fmt.Fprintf(e.out, "\nfloat %s_distance(int code, vec2 p) {\n", prefix)
	for _, g := range glyphs {
		fmt.Fprintf(e.out, "\tif (code == %d) return %s_%d(p);\n", g.Code, prefix, g.Code)
	}
	e.out.WriteString("\treturn 1e10;\n}\n")

	return e.out.Flush()
}

type emitter struct {
	out       *bufio.Writer
	prefix    string
	scale     float64
	precision int
}

func (e *emitter) glyph(g Glyph) error {
	seqs, err := contour.Segments(g.Outline)
	if err != nil {
		return fmt.Errorf("shader: glyph %d: %w", g.Code, err)
	}

	fmt.Fprintf(e.out, "\nfloat %s_%d(vec2 p) {\n\tfloat d = 1e10;\n", e.prefix, g.Code)
	for _, seq := range seqs {
		for seg := range seq {
			switch seg := seg.(type) {
			case contour.Line:
				e.line(seg.P0, seg.P1)
			case contour.Quad:
				e.quad(seg.P0, seg.C, seg.P1)
			case contour.Cubic:
				for _, q := range cubicToQuads(seg) {
					e.quad(q.P0, q.C, q.P1)
				}
			}
		}
	}
	e.out.WriteString("\treturn d;\n}\n")
	return nil
}

func (e *emitter) line(a, b vec.Vec2) {
	fmt.Fprintf(e.out, "\td = min(d, %s_dline(p, %s, %s));\n",
		e.prefix, e.vec(a), e.vec(b))
}

func (e *emitter) quad(a, c, b vec.Vec2) {
	// The closed form in dquad divides by |a - 2c + b|^2.
	curv := a.Sub(c.Mul(2)).Add(b)
	if curv.Length() <= 1e-9*max(a.Sub(b).Length(), 1) {
		e.line(a, b)
		return
	}
	fmt.Fprintf(e.out, "\td = min(d, %s_dquad(p, %s, %s, %s));\n",
		e.prefix, e.vec(a), e.vec(c), e.vec(b))
}

func (e *emitter) vec(v vec.Vec2) string {
	x := float.Format(v.X*e.scale, e.precision)
	y := float.Format(v.Y*e.scale, e.precision)
	return "vec2(" + x + ", " + y + ")"
}

// cubicToQuads splits the curve at t=1/2 and approximates each half by a
// quadratic Bézier curve.
func cubicToQuads(c contour.Cubic) [2]contour.Quad {
	mid := func(a, b vec.Vec2) vec.Vec2 {
		return a.Add(b).Mul(0.5)
	}
	p01 := mid(c.P0, c.C0)
	p12 := mid(c.C0, c.C1)
	p23 := mid(c.C1, c.P1)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)

	approx := func(p0, c0, c1, p1 vec.Vec2) contour.Quad {
		ctrl := c0.Add(c1).Mul(0.75).Sub(p0.Add(p1).Mul(0.25))
		return contour.Quad{P0: p0, C: ctrl, P1: p1}
	}
	return [2]contour.Quad{
		approx(c.P0, p01, p012, m),
		approx(m, p123, p23, c.P1),
	}
}
