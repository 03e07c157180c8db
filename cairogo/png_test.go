package cairo

import (
	"bytes"
	"errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

var errDiskFull = errors.New("disk full")

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errDiskFull
}

func TestWriteToPNGStream(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatA8, 3, 2)
	defer s.Destroy()
	data, err := s.GetData()
	if err != nil {
		t.Fatal(err)
	}
	data[0] = 0xff
	if err := s.MarkDirty(); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := s.WriteToPNGStream(&buf); err != nil {
		t.Fatal(err)
	}
	img, err := png.Decode(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 3, 2) {
		t.Errorf("bounds = %v", got)
	}
	if _, _, _, a := img.At(0, 0).RGBA(); a != 0xffff {
		t.Errorf("alpha at (0, 0) = %#x, want opaque", a)
	}
}

func TestWriteToPNGStreamError(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatA8, 1, 1)
	defer s.Destroy()

	err := s.WriteToPNGStream(failingWriter{})
	if !errors.Is(err, StatusWriteError) {
		t.Errorf("error = %v, want %v", err, StatusWriteError)
	}
	if !errors.Is(err, errDiskFull) {
		t.Errorf("error = %v does not carry the writer's error", err)
	}
}

func TestWriteToPNG(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatRGB24, 2, 2)
	defer s.Destroy()

	name := filepath.Join(t.TempDir(), "out.png")
	if err := s.WriteToPNG(name); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(name)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Width != 2 || cfg.Height != 2 {
		t.Errorf("image is %dx%d, want 2x2", cfg.Width, cfg.Height)
	}

	err = s.WriteToPNG(filepath.Join(t.TempDir(), "missing", "out.png"))
	if !errors.Is(err, StatusWriteError) || !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("error = %v", err)
	}
}

func TestWriteToPNGFinished(t *testing.T) {
	useSoftLibrary(t)
	s := ImageSurfaceNew(FormatA8, 1, 1)
	defer s.Destroy()
	if err := s.Finish(); err != nil {
		t.Fatal(err)
	}
	if err := s.WriteToPNGStream(&bytes.Buffer{}); !errors.Is(err, StatusSurfaceFinished) {
		t.Errorf("error = %v, want %v", err, StatusSurfaceFinished)
	}
}
