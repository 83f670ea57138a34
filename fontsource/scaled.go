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

package fontsource

import (
	"os"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/glyphtex/contour"
)

// DefaultScale is the default em size for [Scaled] outlines, in 26.6 fixed
// point units.  Coordinates of glyphs at this size fit comfortably into
// 16 bits.
const DefaultScale fixed.Int26_6 = 43685 // int(0.6666 * 65535)

// Scaled provides glyph outlines of a TrueType font at a fixed size.
// Coordinates are the raw 26.6 fixed point values, so that one pixel
// corresponds to 64 units.
type Scaled struct {
	font  *truetype.Font
	scale fixed.Int26_6
}

// OpenScaled reads a TrueType font file.
func OpenScaled(fname string, scale fixed.Int26_6) (*Scaled, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, err
	}
	return NewScaled(data, scale)
}

// NewScaled parses TrueType font data.  If scale is not positive,
// [DefaultScale] is used.
func NewScaled(ttf []byte, scale fixed.Int26_6) (*Scaled, error) {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return nil, err
	}
	if scale <= 0 {
		scale = DefaultScale
	}
	return &Scaled{font: f, scale: scale}, nil
}

// Scale returns the em size used for loading glyphs.
func (s *Scaled) Scale() fixed.Int26_6 {
	return s.scale
}

// Outline implements the [contour.Provider] interface.
func (s *Scaled) Outline(r rune) (*contour.Outline, error) {
	idx := s.font.Index(r)
	if idx == 0 {
		return nil, &contour.GlyphNotFoundError{Rune: r}
	}

	var gbuf truetype.GlyphBuf
	err := gbuf.Load(s.font, s.scale, idx, font.HintingNone)
	if err != nil {
		return nil, err
	}

	o := &contour.Outline{
		Points:   make([]vec.Vec2, 0, len(gbuf.Points)),
		Tags:     make([]contour.Tag, 0, len(gbuf.Points)),
		Contours: make([]int, 0, len(gbuf.Ends)),
	}
	start := 0
	for _, end := range gbuf.Ends {
		if end <= start {
			continue
		}
		for _, p := range gbuf.Points[start:end] {
			o.Points = append(o.Points, vec.Vec2{X: float64(p.X), Y: float64(p.Y)})
			var tag contour.Tag
			if p.Flags&1 != 0 {
				tag = contour.TagOnCurve
			}
			o.Tags = append(o.Tags, tag)
		}
		o.Contours = append(o.Contours, len(o.Points)-1)
		start = end
	}
	return o, nil
}
