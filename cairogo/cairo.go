// Package cairo provides Go bindings for the cairo 2D graphics library:
// image surfaces and font options, with cairo's reference counting mapped
// onto Go objects and cairo's status codes onto errors.
//
// Nothing is drawn by this package. Every call goes to a native.Library,
// which is libcairo when built with the "cairo" tag and the pure-Go
// softcairo otherwise.
//
// Each checked call reads the object's status right after the native call
// and returns an *Error if it is abnormal:
//
//	s := cairo.ImageSurfaceNew(cairo.FormatARGB32, 640, 480)
//	defer s.Destroy()
//	if err := s.Finish(); err != nil {
//		return err
//	}
//	err := s.MarkDirty()
//	if errors.Is(err, cairo.StatusSurfaceFinished) {
//		// ...
//	}
package cairo
