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
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

func TestEmptyOutline(t *testing.T) {
	var o *Outline
	if !o.IsEmpty() {
		t.Error("nil outline is not empty")
	}
	if err := o.Validate(); err != nil {
		t.Error(err)
	}

	o = &Outline{}
	if err := o.Validate(); err != nil {
		t.Error(err)
	}
	if o.NumContours() != 0 {
		t.Errorf("got %d contours, want 0", o.NumContours())
	}
	if o.Bounds() != (rect.Rect{}) {
		t.Errorf("got bounds %v for empty outline", o.Bounds())
	}
}

func TestContour(t *testing.T) {
	o := &Outline{
		Points:   []vec.Vec2{v(0, 0), v(1, 0), v(1, 1), v(5, 5), v(6, 5)},
		Tags:     []Tag{on, off, on, on, on},
		Contours: []int{2, 4},
	}
	if err := o.Validate(); err != nil {
		t.Fatal(err)
	}

	pts, tags := o.Contour(1)
	if d := cmp.Diff([]vec.Vec2{v(5, 5), v(6, 5)}, pts); d != "" {
		t.Errorf("contour 1 points (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]Tag{on, on}, tags); d != "" {
		t.Errorf("contour 1 tags (-want +got):\n%s", d)
	}

	want := rect.Rect{LLx: 0, LLy: 0, URx: 6, URy: 5}
	if d := cmp.Diff(want, o.Bounds()); d != "" {
		t.Errorf("bounds (-want +got):\n%s", d)
	}
}

func TestTag(t *testing.T) {
	if !TagOnCurve.OnCurve() || TagOnCurve.Cubic() {
		t.Error("TagOnCurve misclassified")
	}
	if Tag(0).OnCurve() || Tag(0).Cubic() {
		t.Error("quadratic control point misclassified")
	}
	if TagCubic.OnCurve() || !TagCubic.Cubic() {
		t.Error("cubic control point misclassified")
	}
}

func TestErrorPrefix(t *testing.T) {
	errs := []error{
		&GlyphNotFoundError{Rune: 'x'},
		&MalformedContourError{Contour: -1, Reason: "tags do not match points"},
		&MalformedContourError{Contour: 1, End: 7, Reason: "end out of range"},
	}
	for _, err := range errs {
		if msg := err.Error(); !strings.HasPrefix(msg, "contour: ") {
			t.Errorf("error message %q lacks package prefix", msg)
		}
	}
}
