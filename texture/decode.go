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

import "encoding/binary"

// Decode parses texture data, as produced by [Encode].
// Trailing zero padding is allowed.  The returned texture shares data with
// the argument.
func Decode(data []byte) (*Texture, error) {
	if len(data)%2 != 0 {
		return nil, &FormatError{Pos: len(data) / 2, Msg: "odd number of bytes"}
	}
	r := &unitReader{data: data}

	n, err := r.next()
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, &FormatError{Pos: 0, Msg: "no glyphs"}
	}

	index := make([]IndexEntry, n)
	for i := range index {
		code, err := r.next()
		if err != nil {
			return nil, err
		}
		if code > 255 {
			return nil, &FormatError{Pos: r.pos - 1, Msg: "character code out of range"}
		}
		if i > 0 && byte(code) <= index[i-1].Code {
			return nil, &FormatError{Pos: r.pos - 1, Msg: "index not sorted"}
		}
		offset, err := r.next()
		if err != nil {
			return nil, err
		}
		index[i] = IndexEntry{Code: byte(code), Offset: offset}
	}

	records := make([]*GlyphRecord, n)
	for i, e := range index {
		if int(e.Offset) != r.pos {
			return nil, &FormatError{Pos: r.pos, Msg: "record offset mismatch"}
		}
		g, err := r.record(e.Code)
		if err != nil {
			return nil, err
		}
		records[i] = g
	}

	for pos := 2 * r.pos; pos < len(data); pos++ {
		if data[pos] != 0 {
			return nil, &FormatError{Pos: pos / 2, Msg: "non-zero data after last record"}
		}
	}

	return &Texture{
		Index:   index,
		Records: records,
		Data:    data,
	}, nil
}

type unitReader struct {
	data []byte
	pos  int // in units
}

func (r *unitReader) next() (uint16, error) {
	if 2*r.pos+2 > len(r.data) {
		return 0, &FormatError{Pos: r.pos, Msg: "unexpected end of data"}
	}
	v := binary.LittleEndian.Uint16(r.data[2*r.pos:])
	r.pos++
	return v, nil
}

// array reads a length-prefixed array of units.
func (r *unitReader) array() ([]uint16, error) {
	n, err := r.next()
	if err != nil {
		return nil, err
	}
	res := make([]uint16, n)
	for i := range res {
		res[i], err = r.next()
		if err != nil {
			return nil, err
		}
	}
	return res, nil
}

func (r *unitReader) record(code byte) (*GlyphRecord, error) {
	start := r.pos
	g := &GlyphRecord{Code: code}
	for i := range g.Origin {
		sign, err := r.next()
		if err != nil {
			return nil, err
		}
		mag, err := r.next()
		if err != nil {
			return nil, err
		}
		var ok bool
		g.Origin[i], ok = unpackSignedMagnitude(sign, mag)
		if !ok {
			return nil, &FormatError{Pos: r.pos - 2, Msg: "invalid sign"}
		}
	}

	var err error
	fields := []*[]uint16{&g.X, &g.Y, &g.Tags, &g.Contours}
	for _, f := range fields {
		*f, err = r.array()
		if err != nil {
			return nil, err
		}
	}
	if len(g.Y) != len(g.X) || len(g.Tags) != len(g.X) {
		return nil, &FormatError{Pos: start, Msg: "inconsistent point counts"}
	}
	for _, tag := range g.Tags {
		if tag&^uint16(tagMask) != 0 {
			return nil, &FormatError{Pos: start, Msg: "invalid point tag"}
		}
	}

	err = g.Outline().Validate()
	if err != nil {
		return nil, &FormatError{Pos: start, Msg: err.Error()}
	}
	return g, nil
}
