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

package contour

import (
	"iter"

	"seehuhn.de/go/geom/vec"
)

// Segment is a drawable piece of a contour.
// The concrete types are [Line], [Quad] and [Cubic].
type Segment interface {
	Start() vec.Vec2
	End() vec.Vec2
	isSegment()
}

// Line is a straight line from P0 to P1.
type Line struct {
	P0, P1 vec.Vec2
}

// Quad is a quadratic Bézier curve from P0 to P1 with control point C.
type Quad struct {
	P0, C, P1 vec.Vec2
}

// Cubic is a cubic Bézier curve from P0 to P1 with control points C0 and C1.
type Cubic struct {
	P0, C0, C1, P1 vec.Vec2
}

func (l Line) Start() vec.Vec2  { return l.P0 }
func (l Line) End() vec.Vec2    { return l.P1 }
func (q Quad) Start() vec.Vec2  { return q.P0 }
func (q Quad) End() vec.Vec2    { return q.P1 }
func (c Cubic) Start() vec.Vec2 { return c.P0 }
func (c Cubic) End() vec.Vec2   { return c.P1 }

func (Line) isSegment()  {}
func (Quad) isSegment()  {}
func (Cubic) isSegment() {}

// Segments returns one segment sequence for each contour of o.
//
// The outline is validated first; malformed outlines result in a
// [*MalformedContourError].  The returned sequences are evaluated lazily and
// can be iterated any number of times.
func Segments(o *Outline) ([]iter.Seq[Segment], error) {
	err := o.Validate()
	if err != nil {
		return nil, err
	}
	res := make([]iter.Seq[Segment], o.NumContours())
	for i := range res {
		pts, tags := o.Contour(i)
		res[i] = SegmentContour(pts, tags)
	}
	return res, nil
}

// SegmentContour decomposes a single closed contour into segments.
//
// The contour is traversed starting at its first on-curve point and wraps
// around to this point at the end.  Between two consecutive quadratic
// control points an on-curve point at their midpoint is implied, as in
// TrueType glyph outlines.  Two cubic control points between on-curve
// points form a cubic curve.  If the contour has no on-curve points at all,
// the traversal starts at the midpoint between the last and the first point.
//
// Contours with fewer than two points produce no segments.  Lines of zero
// length are omitted.
func SegmentContour(pts []vec.Vec2, tags []Tag) iter.Seq[Segment] {
	return func(yield func(Segment) bool) {
		n := len(pts)
		if n < 2 || len(tags) != n {
			return
		}

		start := -1
		for i, t := range tags {
			if t.OnCurve() {
				start = i
				break
			}
		}

		if start >= 0 {
			w := &walker{yield: yield, cur: pts[start]}
			for i := 1; i <= n; i++ {
				k := (start + i) % n
				if !w.visit(pts[k], tags[k]) {
					return
				}
			}
			return
		}

		first := midpoint(pts[n-1], pts[0])
		w := &walker{yield: yield, cur: first}
		for k := range n {
			if !w.visit(pts[k], tags[k]) {
				return
			}
		}
		w.visit(first, TagOnCurve)
	}
}

// walker collects runs of off-curve points and emits a segment for every
// on-curve point.
type walker struct {
	yield func(Segment) bool
	cur   vec.Vec2
	ctrl  []vec.Vec2
	cubic int
}

func (w *walker) visit(p vec.Vec2, t Tag) bool {
	if !t.OnCurve() {
		w.ctrl = append(w.ctrl, p)
		if t.Cubic() {
			w.cubic++
		}
		return true
	}

	ok := w.emit(p)
	w.cur = p
	w.ctrl = w.ctrl[:0]
	w.cubic = 0
	return ok
}

func (w *walker) emit(end vec.Vec2) bool {
	k := len(w.ctrl)
	switch {
	case k == 0:
		if end == w.cur {
			return true
		}
		return w.yield(Line{P0: w.cur, P1: end})
	case k == 2 && w.cubic == 2:
		return w.yield(Cubic{P0: w.cur, C0: w.ctrl[0], C1: w.ctrl[1], P1: end})
	}

	// Everything else is treated as a quadratic B-spline.
	prev := w.cur
	for i, c := range w.ctrl {
		next := end
		if i < k-1 {
			next = midpoint(c, w.ctrl[i+1])
		}
		if !w.yield(Quad{P0: prev, C: c, P1: next}) {
			return false
		}
		prev = next
	}
	return true
}

func midpoint(a, b vec.Vec2) vec.Vec2 {
	return vec.Vec2{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
