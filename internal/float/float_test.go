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

package float

import (
	"math"
	"testing"
)

func TestFormat(t *testing.T) {
	cases := []struct {
		x         float64
		precision int
		want      string
	}{
		{0, 6, "0.0"},
		{math.Copysign(0, -1), 6, "0.0"},
		{-0.0000001, 6, "0.0"},
		{1, 6, "1.0"},
		{-2.5, 6, "-2.5"},
		{1234, 6, "1234.0"},
		{0.015625, 6, "0.015625"},
		{0.015625, 3, "0.016"},
		{1.0 / 3, 4, "0.3333"},
		{17, 0, "17.0"},
		{100.10, 2, "100.1"},
	}
	for _, c := range cases {
		if got := Format(c.x, c.precision); got != c.want {
			t.Errorf("Format(%g, %d) = %q, want %q", c.x, c.precision, got, c.want)
		}
	}
}
