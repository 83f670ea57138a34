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

package texture

// SignedMagnitude stores a signed integer as a sign flag and an unsigned
// 16-bit magnitude.  In a texture this uses two units: the sign (0 or 1)
// followed by the magnitude.
type SignedMagnitude struct {
	Negative  bool
	Magnitude uint16
}

// NewSignedMagnitude converts v to sign-and-magnitude form.
// The function fails if |v| does not fit into 16 bits.
func NewSignedMagnitude(v int) (SignedMagnitude, error) {
	neg := v < 0
	m := v
	if neg {
		m = -v
	}
	if m > maxUnit {
		return SignedMagnitude{}, &CoordinateRangeError{Field: "origin", Value: float64(v)}
	}
	return SignedMagnitude{Negative: neg, Magnitude: uint16(m)}, nil
}

// Int returns the value as a signed integer.
func (s SignedMagnitude) Int() int {
	if s.Negative {
		return -int(s.Magnitude)
	}
	return int(s.Magnitude)
}

// Units returns the two texture units representing s.
func (s SignedMagnitude) Units() [2]uint16 {
	var sign uint16
	if s.Negative {
		sign = 1
	}
	return [2]uint16{sign, s.Magnitude}
}

// unpackSignedMagnitude is the inverse of [SignedMagnitude.Units].
func unpackSignedMagnitude(sign, magnitude uint16) (SignedMagnitude, bool) {
	if sign > 1 {
		return SignedMagnitude{}, false
	}
	return SignedMagnitude{Negative: sign == 1, Magnitude: magnitude}, true
}
