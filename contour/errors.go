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
	"fmt"
	"strconv"
)

// GlyphNotFoundError is returned by a [Provider] if the font has no glyph
// for the requested character.
type GlyphNotFoundError struct {
	Rune rune
}

func (err *GlyphNotFoundError) Error() string {
	return fmt.Sprintf("contour: no glyph for %q (U+%04X)", err.Rune, err.Rune)
}

// MalformedContourError indicates that the contour end points of an
// outline are inconsistent with its points.
type MalformedContourError struct {
	Contour int // index of the offending contour, or -1
	End     int
	Reason  string
}

func (err *MalformedContourError) Error() string {
	if err.Contour < 0 {
		return "contour: malformed outline: " + err.Reason
	}
	return "contour: malformed contour " + strconv.Itoa(err.Contour) +
		" (end " + strconv.Itoa(err.End) + "): " + err.Reason
}
