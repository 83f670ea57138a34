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

// Glyphtex converts glyph outlines from a font file into a packed 16-bit
// texture, for use by shaders which render text from outlines.
//
// Usage:
//
//	glyphtex -f font.ttf [flags] [characters]
//
// If no characters are given, neither as arguments nor with -range, all
// printable ASCII characters are used.
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/pterm/pterm"
	"golang.org/x/image/math/fixed"
	"golang.org/x/term"

	"seehuhn.de/go/glyphtex/charset"
	"seehuhn.de/go/glyphtex/contour"
	"seehuhn.de/go/glyphtex/fontsource"
	"seehuhn.de/go/glyphtex/internal/atomicfile"
	"seehuhn.de/go/glyphtex/shader"
	"seehuhn.de/go/glyphtex/texture"
)

func main() {
	err := run(os.Args[1:], os.Stdout, os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	} else if err != nil {
		fmt.Fprintf(os.Stderr, "glyphtex: %v\n", err)
		var usage *UsageError
		if errors.As(err, &usage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

// UsageError indicates invalid command line arguments.
type UsageError struct {
	Msg string
}

func (err *UsageError) Error() string {
	return err.Msg
}

type options struct {
	font        string
	output      string
	text        string
	ranges      string
	codePage    string
	skipMissing bool
	scale       int
	format      string
	name        string
	guard       string
	square      bool
	inspect     string
	verbose     bool
}

func parseArgs(args []string, stderr io.Writer) (*options, error) {
	opt := &options{}

	flags := flag.NewFlagSet("glyphtex", flag.ContinueOnError)
	flags.SetOutput(stderr)
	flags.Usage = func() {
		fmt.Fprintf(stderr, "Usage: glyphtex -f font [options] [characters]\n")
		flags.PrintDefaults()
	}
	flags.StringVar(&opt.font, "f", "", "font file or name of an installed font")
	flags.StringVar(&opt.output, "o", "", "output file (default stdout)")
	flags.StringVar(&opt.ranges, "range", "", "character codes to include, e.g. \"32-126\"")
	flags.StringVar(&opt.codePage, "codepage", "latin1", "8-bit code page: latin1 or cp1252")
	flags.BoolVar(&opt.skipMissing, "skip-missing", false, "omit characters which are not in the font")
	flags.IntVar(&opt.scale, "scale", int(fontsource.DefaultScale), "em size in 26.6 units, 0 for font design units")
	flags.StringVar(&opt.format, "format", "header", "output format: header, glsl or bin")
	flags.StringVar(&opt.name, "name", "", "name of the generated array or functions")
	flags.StringVar(&opt.guard, "guard", "", "include guard for header output")
	flags.BoolVar(&opt.square, "square", false, "pad the texture to a full square")
	flags.StringVar(&opt.inspect, "inspect", "", "summarize an existing binary texture file")
	flags.BoolVar(&opt.verbose, "v", false, "verbose output")

	err := flags.Parse(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil, err
	} else if err != nil {
		return nil, &UsageError{Msg: err.Error()}
	}
	opt.text = strings.Join(flags.Args(), "")

	if opt.inspect != "" {
		return opt, nil
	}
	if opt.font == "" {
		return nil, &UsageError{Msg: "no font given (use -f)"}
	}
	if opt.scale < 0 {
		return nil, &UsageError{Msg: "invalid scale " + strconv.Itoa(opt.scale)}
	}
	switch opt.format {
	case "header", "glsl", "bin":
		// pass
	default:
		return nil, &UsageError{Msg: "unknown output format " + strconv.Quote(opt.format)}
	}
	return opt, nil
}

func run(args []string, stdout, stderr io.Writer) error {
	opt, err := parseArgs(args, stderr)
	if err != nil {
		return err
	}

	logger := newLogger(stderr, opt.verbose)
	texture.SetLogger(logger)
	defer texture.SetLogger(nil)

	cp, err := charset.LookupCodePage(opt.codePage)
	if err != nil {
		return &UsageError{Msg: err.Error()}
	}

	if opt.inspect != "" {
		return inspect(stdout, opt.inspect, cp)
	}

	chars, err := selectChars(opt, cp)
	if err != nil {
		return err
	}

	fontFile, err := resolveFont(opt.font)
	if err != nil {
		return err
	}
	logger.Debug("using font", "file", fontFile)
	font, err := openFont(fontFile, opt.scale)
	if err != nil {
		return fmt.Errorf("%s: %w", fontFile, err)
	}

	tex, err := texture.Encode(chars, font, &texture.Options{
		SkipMissing: opt.skipMissing,
		PadSquare:   opt.square,
	})
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	switch opt.format {
	case "header":
		err = texture.WriteHeader(buf, tex, &texture.HeaderOptions{
			Name:    opt.name,
			Guard:   opt.guard,
			Comment: "Generated by glyphtex from " + filepath.Base(fontFile),
		})
	case "glsl":
		glyphs := make([]shader.Glyph, len(tex.Records))
		for i, g := range tex.Records {
			glyphs[i] = shader.Glyph{Code: g.Code, Outline: g.Outline()}
		}
		err = shader.Write(buf, glyphs, &shader.Options{Prefix: opt.name})
	case "bin":
		buf.Write(tex.Data)
	}
	if err != nil {
		return err
	}

	if opt.output == "" {
		_, err = stdout.Write(buf.Bytes())
		return err
	}
	err = atomicfile.WriteFile(opt.output, buf.Bytes(), 0o644)
	if err != nil {
		return err
	}
	logger.Info("texture written",
		"file", opt.output,
		"glyphs", tex.NumGlyphs(),
		"size", tex.Size())
	return nil
}

// newLogger returns a logger writing to w.  Informational messages are
// shown if w is a terminal, debug messages only in verbose mode.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if isTerminal(w) {
		level = slog.LevelInfo
	}
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func selectChars(opt *options, cp charset.CodePage) (charset.Set, error) {
	if opt.text == "" && opt.ranges == "" {
		return charset.PrintableASCII(), nil
	}

	var chars charset.Set
	if opt.text != "" {
		set, err := charset.FromText(opt.text, cp)
		if err != nil {
			return nil, err
		}
		chars = append(chars, set...)
	}
	if opt.ranges != "" {
		set, err := charset.ParseRanges(opt.ranges, cp)
		if err != nil {
			return nil, err
		}
		chars = append(chars, set...)
	}
	return chars.Normalize(), nil
}

// resolveFont returns the file name of a font.  The argument can either be
// a file name, or the name of an installed font.
func resolveFont(name string) (string, error) {
	if _, err := os.Stat(name); err == nil {
		return name, nil
	}
	fname, err := findfont.Find(name)
	if err != nil {
		return "", fmt.Errorf("font %q: %w", name, err)
	}
	return fname, nil
}

func openFont(fname string, scale int) (contour.Provider, error) {
	if scale == 0 {
		return fontsource.OpenSFNT(fname)
	}
	return fontsource.OpenScaled(fname, fixed.Int26_6(scale))
}

func inspect(w io.Writer, fname string, cp charset.CodePage) error {
	data, err := os.ReadFile(fname)
	if err != nil {
		return err
	}
	tex, err := texture.Decode(data)
	if err != nil {
		return fmt.Errorf("%s: %w", fname, err)
	}

	if !isTerminal(w) {
		pterm.DisableStyling()
	}

	fmt.Fprintf(w, "%s: %d glyphs, %d bytes, %dx%d texels\n",
		fname, tex.NumGlyphs(), len(tex.Data), tex.Size(), tex.Size())

	rows := pterm.TableData{
		{"code", "char", "offset", "length", "points", "contours", "origin"},
	}
	for i, g := range tex.Records {
		rows = append(rows, []string{
			strconv.Itoa(int(g.Code)),
			strconv.QuoteRune(cp.DecodeByte(g.Code)),
			strconv.Itoa(int(tex.Index[i].Offset)),
			strconv.Itoa(g.Len()),
			strconv.Itoa(g.PointCount()),
			strconv.Itoa(g.ContourCount()),
			fmt.Sprintf("%d,%d", g.Origin[0].Int(), g.Origin[1].Int()),
		})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(rows).Srender()
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, table)
	return err
}
