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

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/glyphtex/charset"
	"seehuhn.de/go/glyphtex/texture"
)

func writeFont(t *testing.T) string {
	t.Helper()
	fname := filepath.Join(t.TempDir(), "GoRegular.ttf")
	err := os.WriteFile(fname, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestHeader(t *testing.T) {
	font := writeFont(t)
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	err := run([]string{"-f", font, "-name", "glyphs", "ABC"}, stdout, stderr)
	if err != nil {
		t.Fatalf("%v\n%s", err, stderr)
	}
	out := stdout.String()
	for _, want := range []string{
		"// Generated by glyphtex from GoRegular.ttf\n",
		"#ifndef FONT_H\n",
		"const unsigned short glyphs[",
		"const int glyphs_size = ",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q", want)
		}
	}
}

func TestBinaryRoundTrip(t *testing.T) {
	font := writeFont(t)
	out := filepath.Join(t.TempDir(), "font.bin")

	for _, scale := range []string{"0", "43685", "4096"} {
		args := []string{"-f", font, "-o", out, "-format", "bin", "-scale", scale, "-range", "'0'-'9'", "Hello"}
		err := run(args, &bytes.Buffer{}, &bytes.Buffer{})
		if err != nil {
			t.Fatalf("scale %s: %v", scale, err)
		}

		data, err := os.ReadFile(out)
		if err != nil {
			t.Fatal(err)
		}
		tex, err := texture.Decode(data)
		if err != nil {
			t.Fatalf("scale %s: %v", scale, err)
		}
		if tex.NumGlyphs() != 14 { // 0-9, H, e, l, o
			t.Errorf("scale %s: got %d glyphs, want 14", scale, tex.NumGlyphs())
		}
		g, ok := tex.Lookup('o')
		if !ok || g.ContourCount() != 2 {
			t.Errorf("scale %s: bad record for 'o'", scale)
		}
	}
}

func TestDefaultCharset(t *testing.T) {
	font := writeFont(t)
	out := filepath.Join(t.TempDir(), "font.bin")
	err := run([]string{"-f", font, "-o", out, "-format", "bin", "-square"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	tex, err := texture.Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if tex.NumGlyphs() != len(charset.PrintableASCII()) {
		t.Errorf("got %d glyphs, want %d", tex.NumGlyphs(), len(charset.PrintableASCII()))
	}
	if s := tex.Size(); len(data) != s*s*4 {
		t.Errorf("got %d bytes, want %d", len(data), s*s*4)
	}
}

func TestGLSL(t *testing.T) {
	font := writeFont(t)
	stdout := &bytes.Buffer{}
	err := run([]string{"-f", font, "-format", "glsl", "-scale", "0", "o"}, stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	if !strings.Contains(out, "float glyph_111(vec2 p) {") {
		t.Error("missing glyph function")
	}
	if !strings.Contains(out, "glyph_dquad(p, ") {
		t.Error("no curves in output")
	}
}

func TestInspect(t *testing.T) {
	font := writeFont(t)
	bin := filepath.Join(t.TempDir(), "font.bin")
	err := run([]string{"-f", font, "-o", bin, "-format", "bin", "AB"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}

	stdout := &bytes.Buffer{}
	err = run([]string{"-inspect", bin}, stdout, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	out := stdout.String()
	for _, want := range []string{"2 glyphs", "contours", "'A'", "'B'", "65", "66"} {
		if !strings.Contains(out, want) {
			t.Errorf("output does not contain %q:\n%s", want, out)
		}
	}

	err = os.WriteFile(bin, []byte{1, 0, 65}, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = run([]string{"-inspect", bin}, &bytes.Buffer{}, &bytes.Buffer{})
	var formatErr *texture.FormatError
	if !errors.As(err, &formatErr) {
		t.Errorf("got error %v, want *texture.FormatError", err)
	}
}

func TestUsageErrors(t *testing.T) {
	font := writeFont(t)
	cases := [][]string{
		{},
		{"A"},
		{"-f", font, "-format", "png"},
		{"-f", font, "-scale", "-1"},
		{"-f", font, "-codepage", "ebcdic"},
		{"-no-such-flag"},
	}
	for _, args := range cases {
		err := run(args, &bytes.Buffer{}, &bytes.Buffer{})
		var usage *UsageError
		if !errors.As(err, &usage) {
			t.Errorf("%q: got error %v, want *UsageError", args, err)
		}
	}
}

func TestErrors(t *testing.T) {
	err := run([]string{"-f", "no-such-font-glyphtex"}, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Error("missing font accepted")
	}

	font := writeFont(t)
	err = run([]string{"-f", font, "€"}, &bytes.Buffer{}, &bytes.Buffer{})
	var unmappable *charset.UnmappableError
	if !errors.As(err, &unmappable) {
		t.Errorf("got error %v, want *charset.UnmappableError", err)
	}

	err = run([]string{"-f", font, "-range", "'z'-'a'"}, &bytes.Buffer{}, &bytes.Buffer{})
	var syntax *charset.SyntaxError
	if !errors.As(err, &syntax) {
		t.Errorf("got error %v, want *charset.SyntaxError", err)
	}
}

func TestNoOutputOnError(t *testing.T) {
	font := writeFont(t)
	dir := t.TempDir()
	out := filepath.Join(dir, "font.h")

	args := []string{"-f", font, "-o", out, "-codepage", "cp1252", "-range", "0x80-0x81"}
	err := run(args, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("unmapped character code accepted")
	}
	if _, err := os.Stat(out); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("output file exists after failure: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("%d files left behind in the output directory", len(entries))
	}

	// an existing output file is left unchanged
	old := []byte("previous contents\n")
	err = os.WriteFile(out, old, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	err = run(args, &bytes.Buffer{}, &bytes.Buffer{})
	if err == nil {
		t.Fatal("unmapped character code accepted")
	}
	data, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(data, old) {
		t.Errorf("output file was modified: %q", data)
	}
}
