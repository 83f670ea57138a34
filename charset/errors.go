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

package charset

import (
	"fmt"
	"strconv"
)

// UnmappableError indicates that a character cannot be represented by an
// 8-bit code in the selected code page.
type UnmappableError struct {
	Rune rune // -1 if the error refers to a code
	Code int
}

func (err *UnmappableError) Error() string {
	if err.Rune < 0 {
		return "charset: character code " + strconv.Itoa(err.Code) + " is not mapped by the code page"
	}
	return fmt.Sprintf("charset: character %q (U+%04X) has no code in the code page", err.Rune, err.Rune)
}

// UnknownCodePageError is returned by [LookupCodePage] for unknown names.
type UnknownCodePageError struct {
	Name string
}

func (err *UnknownCodePageError) Error() string {
	return "charset: unknown code page " + strconv.Quote(err.Name)
}

// SyntaxError indicates a malformed range expression.
type SyntaxError struct {
	Pos int
	Err error
}

func (err *SyntaxError) Error() string {
	return "charset: invalid character range: " + err.Err.Error()
}

func (err *SyntaxError) Unwrap() error {
	return err.Err
}
