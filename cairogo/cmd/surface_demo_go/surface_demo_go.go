package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"log/slog"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/term"

	cairo "github.com/cairomm/cairomm/cairogo"
)

// sketch draws text into the memory of an A8 surface, the way a foreign
// renderer sharing a cairo surface would, and writes the result as PNG.
func sketch(text string, width, height int, out string) error {
	stride := cairo.FormatStrideForWidth(cairo.FormatA8, width)
	if stride < 0 {
		return fmt.Errorf("width %d is too large", width)
	}
	buf := make([]byte, stride*height)
	s := cairo.ImageSurfaceNewForData(buf, cairo.FormatA8, width, height, stride)
	defer s.Destroy()
	if err := s.Status(); err != nil {
		return err
	}

	fo := cairo.FontOptionsNew()
	defer fo.Destroy()
	if err := s.GetFontOptions(fo); err != nil {
		return err
	}
	hinting, err := fo.FaceHinting()
	if err != nil {
		return err
	}
	cairo.Logger().Info("surface font options", "face_hinting", int(hinting))

	// cairo must be done with the memory before it is touched.
	if err := s.Flush(); err != nil {
		return err
	}
	img := &image.Alpha{Pix: buf, Stride: stride, Rect: image.Rect(0, 0, width, height)}
	d := font.Drawer{
		Dst:  img,
		Src:  image.Opaque,
		Face: basicfont.Face7x13,
		Dot:  fixed.P(8, height/2),
	}
	bounds, _ := d.BoundString(text)
	d.DrawString(text)
	dirty := image.Rect(bounds.Min.X.Floor(), bounds.Min.Y.Floor(),
		bounds.Max.X.Ceil(), bounds.Max.Y.Ceil()).Intersect(img.Rect)
	if err := s.MarkDirtyRectangle(cairo.RectangleFromImage(dirty)); err != nil {
		return err
	}

	if out == "-" {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			return errors.New("`-` should be used with a pipe for stdout")
		}
		return s.WriteToPNGStream(os.Stdout)
	}
	return s.WriteToPNG(out)
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "%s: error: %s\n", os.Args[0], err)
	os.Exit(1)
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [flags] text\n", os.Args[0])
	flag.PrintDefaults()
	os.Exit(2)
}

func main() {
	width := flag.Int("width", 320, "Image width in pixels")
	height := flag.Int("height", 48, "Image height in pixels")
	out := flag.String("o", "sketch.png", "Output PNG file, - for stdout")
	verbose := flag.Bool("v", false, "Log cairo activity to stderr")
	flag.Usage = usage
	flag.Parse()
	if flag.NArg() != 1 {
		usage()
	}
	if *verbose {
		cairo.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	if err := sketch(flag.Arg(0), *width, *height, *out); err != nil {
		fatal(err)
	}
}
