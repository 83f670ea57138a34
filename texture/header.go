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
	"bufio"
	"fmt"
	"io"
	"strconv"
)

// HeaderOptions control the output of [WriteHeader].
type HeaderOptions struct {
	// Name is the name of the C array.  The default is "font_texture".
	Name string

	// Guard is the name of the include guard macro.  The default is
	// "FONT_H".
	Guard string

	// Comment, if set, is written as the first line of the file.
	Comment string

	// PerLine is the number of values per line.  The default is 16.
	PerLine int
}

// WriteHeader writes the texture as a C header file.  The header defines
// the array <name>, and the integer constants <name>_length (the number of
// units in the array) and <name>_size (the side length of the square
// texture).
func WriteHeader(w io.Writer, t *Texture, opt *HeaderOptions) error {
	name := "font_texture"
	guard := "FONT_H"
	perLine := 16
	var comment string
	if opt != nil {
		if opt.Name != "" {
			name = opt.Name
		}
		if opt.Guard != "" {
			guard = opt.Guard
		}
		if opt.PerLine > 0 {
			perLine = opt.PerLine
		}
		comment = opt.Comment
	}
	for _, id := range []string{name, guard} {
		if !isIdentifier(id) {
			return fmt.Errorf("texture: invalid C identifier %q", id)
		}
	}

	units := t.Units()

	out := bufio.NewWriter(w)
	if comment != "" {
		fmt.Fprintf(out, "// %s\n\n", comment)
	}
	fmt.Fprintf(out, "#ifndef %s\n#define %s\n\n", guard, guard)
	fmt.Fprintf(out, "const unsigned short %s[%d] = {", name, len(units))
	var buf []byte
	for i, u := range units {
		if i%perLine == 0 {
			out.WriteString("\n\t")
		} else {
			out.WriteByte(' ')
		}
		buf = strconv.AppendUint(buf[:0], uint64(u), 10)
		buf = append(buf, ',')
		out.Write(buf)
	}
	out.WriteString("\n};\n")
	fmt.Fprintf(out, "const int %s_length = %d;\n", name, len(units))
	fmt.Fprintf(out, "const int %s_size = %d;\n", name, t.Size())
	fmt.Fprintf(out, "\n#endif\n")
	return out.Flush()
}

func isIdentifier(s string) bool {
	if s == "" {
		return false
	}
	for i, c := range s {
		switch {
		case c == '_' || 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z':
		case i > 0 && '0' <= c && c <= '9':
		default:
			return false
		}
	}
	return true
}
