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

import (
	"errors"
	"fmt"
)

// ErrEmptyInput is returned by [Encode] if there are no glyphs to encode.
var ErrEmptyInput = errors.New("texture: no characters to encode")

// GlyphLookupError is returned by [Encode] if the outline for a character
// cannot be obtained.  Err is the error returned by the outline provider;
// for missing glyphs this is a [*contour.GlyphNotFoundError].
type GlyphLookupError struct {
	Code byte
	Rune rune
	Err  error
}

func (err *GlyphLookupError) Error() string {
	return fmt.Sprintf("texture: character %d (%q): %v", err.Code, err.Rune, err.Err)
}

func (err *GlyphLookupError) Unwrap() error {
	return err.Err
}

// CoordinateRangeError indicates that a value does not fit into the 16-bit
// units of the texture.
type CoordinateRangeError struct {
	Code  byte
	Field string
	Value float64
}

func (err *CoordinateRangeError) Error() string {
	return fmt.Sprintf("texture: character %d: %s %g out of range", err.Code, err.Field, err.Value)
}

// FormatError is returned by [Decode] for malformed texture data.
type FormatError struct {
	Pos int // position in units
	Msg string
}

func (err *FormatError) Error() string {
	return fmt.Sprintf("texture: malformed data at unit %d: %s", err.Pos, err.Msg)
}
