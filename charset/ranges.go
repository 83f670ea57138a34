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
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	rangeLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Hex", Pattern: `(?:0[xX]|[uU]\+)[0-9A-Fa-f]+`},
		{Name: "Int", Pattern: `[0-9]+`},
		{Name: "Char", Pattern: `'(?:\\.|[^'\\])'`},
		{Name: "Punct", Pattern: `[-,]`},
	})

	rangeParser = participle.MustBuild[rangeList](
		participle.Lexer(rangeLexer),
		participle.Elide("Whitespace"),
	)
)

// rangeList is the root of a range expression like "32-126, 'Ä'".
type rangeList struct {
	Items []*rangeItem `parser:"@@ ( ','? @@ )*"`
}

type rangeItem struct {
	From *rangeValue `parser:"@@"`
	To   *rangeValue `parser:"( '-' @@ )?"`
}

// rangeValue is either a character code (decimal, 0x.. or U+..) or a
// quoted character.
type rangeValue struct {
	Pos  lexer.Position
	Hex  string `parser:"  @Hex"`
	Int  string `parser:"| @Int"`
	Char string `parser:"| @Char"`
}

// code returns the 8-bit code described by v.
func (v *rangeValue) code(cp CodePage) (int, error) {
	switch {
	case v.Hex != "":
		x, err := strconv.ParseUint(v.Hex[2:], 16, 32)
		if err != nil {
			return 0, v.errorf("invalid number %s", v.Hex)
		}
		return int(min(x, 1<<16)), nil
	case v.Int != "":
		x, err := strconv.ParseUint(v.Int, 10, 32)
		if err != nil {
			return 0, v.errorf("invalid number %s", v.Int)
		}
		return int(min(x, 1<<16)), nil
	default:
		s, err := strconv.Unquote(v.Char)
		if err != nil {
			return 0, v.errorf("invalid character %s", v.Char)
		}
		r := []rune(s)[0]
		code, ok := cp.EncodeRune(r)
		if !ok {
			return 0, &UnmappableError{Rune: r}
		}
		return int(code), nil
	}
}

func (v *rangeValue) errorf(format string, args ...any) error {
	return &SyntaxError{Pos: v.Pos.Offset, Err: participle.Errorf(v.Pos, format, args...)}
}

// ParseRanges parses a comma or space separated list of character codes
// and code ranges.  Codes can be given in decimal, in hexadecimal
// ("0x41" or "U+0041"), or as a quoted character ('A').  Examples:
//
//	32-126
//	'a'-'z', 'A'-'Z', '0'-'9'
//	0x20 0x41-0x5A
func ParseRanges(expr string, cp CodePage) (Set, error) {
	ast, err := rangeParser.ParseString("", strings.TrimSpace(expr))
	if err != nil {
		return nil, &SyntaxError{Err: err}
	}

	var codes []int
	for _, item := range ast.Items {
		from, err := item.From.code(cp)
		if err != nil {
			return nil, err
		}
		to := from
		if item.To != nil {
			to, err = item.To.code(cp)
			if err != nil {
				return nil, err
			}
		}
		if to < from {
			return nil, item.From.errorf("empty range %d-%d", from, to)
		}
		for code := from; code <= to; code++ {
			codes = append(codes, code)
		}
	}
	return FromCodes(codes, cp)
}
