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

// Package charset describes the set of characters which is packed into a
// texture.
//
// Every character has an 8-bit code, which is used as the key in the
// texture index, and a Unicode code point, which is used to look up the
// glyph in the font.  The mapping between the two is given by a code page.
package charset

import (
	"cmp"
	"slices"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// Char is a single character of a [Set].
type Char struct {
	Code byte // key in the texture index
	Rune rune // code point used for the font lookup
}

// Set is a list of characters.
//
// Sets returned by the functions in this package are sorted by code and
// contain every code at most once.  Use [Set.Normalize] to bring a set
// constructed by other means into this form.
type Set []Char

// Normalize returns a copy of s, sorted by code, with duplicate codes
// removed.  The first occurrence of each code is kept.
func (s Set) Normalize() Set {
	res := slices.Clone(s)
	slices.SortStableFunc(res, func(a, b Char) int {
		return cmp.Compare(a.Code, b.Code)
	})
	return slices.CompactFunc(res, func(a, b Char) bool {
		return a.Code == b.Code
	})
}

// Codes returns the character codes in s.
func (s Set) Codes() []byte {
	res := make([]byte, len(s))
	for i, c := range s {
		res[i] = c.Code
	}
	return res
}

func (s Set) String() string {
	b := &strings.Builder{}
	for _, c := range s {
		b.WriteRune(c.Rune)
	}
	return b.String()
}

// CodePage maps between 8-bit character codes and Unicode.
type CodePage = *charmap.Charmap

var (
	// Latin1 maps codes 0-255 to U+0000-U+00FF.  This is the identity
	// on ASCII.
	Latin1 CodePage = charmap.ISO8859_1

	// Windows1252 is the Windows Western European code page.
	Windows1252 CodePage = charmap.Windows1252
)

var codePages = map[string]CodePage{
	"latin1":  Latin1,
	"8859-1":  Latin1,
	"cp1252":  Windows1252,
	"windows": Windows1252,
}

// LookupCodePage returns the code page with the given name.
// Known names are "latin1" and "cp1252".
func LookupCodePage(name string) (CodePage, error) {
	cp, ok := codePages[strings.ToLower(name)]
	if !ok {
		return nil, &UnknownCodePageError{Name: name}
	}
	return cp, nil
}

// FromText returns the set of characters occurring in text.
func FromText(text string, cp CodePage) (Set, error) {
	var res Set
	for _, r := range text {
		code, ok := cp.EncodeRune(r)
		if !ok {
			return nil, &UnmappableError{Rune: r}
		}
		res = append(res, Char{Code: code, Rune: r})
	}
	return res.Normalize(), nil
}

// FromCodes returns the set of characters with the given codes.
func FromCodes(codes []int, cp CodePage) (Set, error) {
	var res Set
	for _, code := range codes {
		c, err := fromCode(code, cp)
		if err != nil {
			return nil, err
		}
		res = append(res, c)
	}
	return res.Normalize(), nil
}

// PrintableASCII returns the characters with codes 32 to 126.
func PrintableASCII() Set {
	res := make(Set, 0, 127-32)
	for code := 32; code < 127; code++ {
		res = append(res, Char{Code: byte(code), Rune: rune(code)})
	}
	return res
}

func fromCode(code int, cp CodePage) (Char, error) {
	if code < 0 || code > 255 {
		return Char{}, &UnmappableError{Code: code, Rune: -1}
	}
	r := cp.DecodeByte(byte(code))
	if r == utf8.RuneError {
		return Char{}, &UnmappableError{Code: code, Rune: -1}
	}
	return Char{Code: byte(code), Rune: r}, nil
}
