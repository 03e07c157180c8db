package cairo

import (
	"errors"
	"io"
	"os"
	"runtime"
)

// errWriter remembers the first error of the writer it wraps, which the
// native status alone would lose.
type errWriter struct {
	w   io.Writer
	err error
}

func (ew *errWriter) Write(p []byte) (int, error) {
	n, err := ew.w.Write(p)
	if err != nil && ew.err == nil {
		ew.err = err
	}
	return n, err
}

// WriteToPNGStream encodes the contents of s as PNG to w.
func (s *Surface) WriteToPNGStream(w io.Writer) error {
	ew := &errWriter{w: w}
	st := s.library().SurfaceWriteToPNGStream(s.h, ew)
	runtime.KeepAlive(s)
	err := checkStatus("write to png", st)
	var e *Error
	if errors.As(err, &e) {
		e.Err = ew.err
	}
	return err
}

// WriteToPNG writes the contents of s to the file with filename as PNG.
func (s *Surface) WriteToPNG(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return &Error{Op: "write to png", Status: StatusWriteError, Err: err}
	}
	if err := s.WriteToPNGStream(f); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return &Error{Op: "write to png", Status: StatusWriteError, Err: err}
	}
	return nil
}
