package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	cairo "github.com/cairomm/cairomm/cairogo"
)

// lookup maps the lower-cased names of the values first..last to the values.
func lookup[T interface {
	~int
	fmt.Stringer
}](first, last T) map[string]T {
	m := make(map[string]T)
	for v := first; v <= last; v++ {
		m[strings.ToLower(v.String())] = v
	}
	return m
}

var (
	formats     = lookup(cairo.FormatARGB32, cairo.FormatRGBA128F)
	antialiases = lookup(cairo.AntialiasDefault, cairo.AntialiasBest)
	hintStyles  = lookup(cairo.HintStyleDefault, cairo.HintStyleFull)
)

func printOptions(w io.Writer, title string, fo *cairo.FontOptions) error {
	aa, err := fo.GetAntialias()
	if err != nil {
		return err
	}
	so, err := fo.GetSubpixelOrder()
	if err != nil {
		return err
	}
	hs, err := fo.GetHintStyle()
	if err != nil {
		return err
	}
	hm, err := fo.GetHintMetrics()
	if err != nil {
		return err
	}
	hash, err := fo.Hash()
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%s:\n", title)
	fmt.Fprintf(w, "  antialias      %s\n", aa)
	fmt.Fprintf(w, "  subpixel order %s\n", so)
	fmt.Fprintf(w, "  hint style     %s\n", hs)
	fmt.Fprintf(w, "  hint metrics   %s\n", hm)
	fmt.Fprintf(w, "  hash           %#x\n", hash)
	return nil
}

func show(format cairo.Format, antialias cairo.Antialias, hintStyle cairo.HintStyle) error {
	s := cairo.ImageSurfaceNew(format, 1, 1)
	defer s.Destroy()
	if err := s.Status(); err != nil {
		return err
	}
	fo := cairo.FontOptionsNew()
	defer fo.Destroy()
	if err := s.GetFontOptions(fo); err != nil {
		return err
	}
	if err := printOptions(os.Stdout, "surface font options ("+format.String()+")", fo); err != nil {
		return err
	}

	override := cairo.FontOptionsNew()
	defer override.Destroy()
	if err := override.SetAntialias(antialias); err != nil {
		return err
	}
	if err := override.SetHintStyle(hintStyle); err != nil {
		return err
	}
	merged := fo.Copy()
	defer merged.Destroy()
	if err := merged.Merge(override); err != nil {
		return err
	}
	if err := printOptions(os.Stdout, "merged", merged); err != nil {
		return err
	}
	fmt.Printf("unchanged by merge: %t\n", merged.Equal(fo))
	return nil
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: %s [flags]\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	format := flag.String("format", "argb32", "Surface format")
	antialias := flag.String("antialias", "default", "Antialias mode to merge in")
	hintStyle := flag.String("hint-style", "default", "Hint style to merge in")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 0 {
		usage()
	}
	f, ok := formats[strings.ToLower(*format)]
	if !ok {
		fatal(fmt.Errorf("unknown format %q", *format))
	}
	aa, ok := antialiases[strings.ToLower(*antialias)]
	if !ok {
		fatal(fmt.Errorf("unknown antialias mode %q", *antialias))
	}
	hs, ok := hintStyles[strings.ToLower(*hintStyle)]
	if !ok {
		fatal(fmt.Errorf("unknown hint style %q", *hintStyle))
	}
	if err := show(f, aa, hs); err != nil {
		fatal(err)
	}
}
