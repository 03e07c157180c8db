package cairo

import (
	"runtime"

	"github.com/cairomm/cairomm/cairogo/native"
)

// Surface object. It holds one reference to a native surface, or none: the
// zero Surface holds the null handle, on which every checked call reports
// StatusNullPointer.
//
// Surfaces returned by the constructors drop their reference when garbage
// collected; Destroy drops it deterministically. A zero Surface that
// acquires a reference through Assign must be destroyed explicitly.
//
// A Surface is not safe for concurrent use. Distinct Surfaces sharing one
// native surface may be used from different goroutines as far as reference
// counting goes.
type Surface struct {
	lib native.Library
	h   native.SurfaceHandle
}

func surfaceNew(lib native.Library, h native.SurfaceHandle) *Surface {
	s := &Surface{lib: lib, h: h}
	runtime.SetFinalizer(s, (*Surface).finalize)
	return s
}

// SurfaceWrap wraps a native surface of the default library. With
// hasReference the caller's reference is adopted; otherwise a new
// reference is acquired and the caller keeps its own.
func SurfaceWrap(h native.SurfaceHandle, hasReference bool) *Surface {
	lib := DefaultLibrary()
	if !hasReference {
		h = lib.SurfaceReference(h)
	}
	return surfaceNew(lib, h)
}

// ImageSurfaceNew creates an image surface of the given format and size
// with cleared pixels.
//
// Like every constructor it reports no error: a failed creation yields a
// surface in an error state, which Status and every later checked call
// report.
func ImageSurfaceNew(format Format, width, height int) *Surface {
	lib := DefaultLibrary()
	return surfaceNew(lib, lib.ImageSurfaceCreate(format, width, height))
}

// ImageSurfaceNewForData creates an image surface drawing into data, which
// holds height rows of stride bytes each. stride must be at least
// FormatStrideForWidth(format, width). data must not be used for anything
// else until the surface is finished or destroyed.
func ImageSurfaceNewForData(data []byte, format Format, width, height, stride int) *Surface {
	lib := DefaultLibrary()
	return surfaceNew(lib, lib.ImageSurfaceCreateForData(data, format, width, height, stride))
}

// SurfaceNewSimilar creates a surface as compatible as possible with other
// for the given content, sized width by height. The new surface belongs to
// the library of other. A nil other yields the null surface.
func SurfaceNewSimilar(other *Surface, content Content, width, height int) *Surface {
	if other == nil {
		return surfaceNew(DefaultLibrary(), 0)
	}
	lib := other.library()
	h := lib.SurfaceCreateSimilar(other.h, content, width, height)
	runtime.KeepAlive(other)
	return surfaceNew(lib, h)
}

// FormatStrideForWidth returns the row stride ImageSurfaceNewForData
// requires for an image of the given format and width, or -1 if the format
// is invalid or the width too large.
func FormatStrideForWidth(format Format, width int) int {
	return DefaultLibrary().FormatStrideForWidth(format, width)
}

func (s *Surface) library() native.Library {
	if s.lib == nil {
		return DefaultLibrary()
	}
	return s.lib
}

// Handle returns the native handle s holds a reference to.
func (s *Surface) Handle() native.SurfaceHandle {
	return s.h
}

// Reference returns a new Surface holding another reference to the same
// native surface.
func (s *Surface) Reference() *Surface {
	lib := s.library()
	h := lib.SurfaceReference(s.h)
	runtime.KeepAlive(s)
	return surfaceNew(lib, h)
}

// Assign drops the reference s holds and takes a new reference to the
// surface of src. Assigning a Surface to itself, or to one holding the
// same handle, does nothing. A nil src drops the reference s holds.
func (s *Surface) Assign(src *Surface) {
	if s == src {
		return
	}
	if src == nil {
		s.release()
		return
	}
	srcLib := src.library()
	if s.h == src.h && sameLibrary(s.library(), srcLib) {
		return
	}
	s.release()
	s.lib = srcLib
	if src.h == 0 {
		return
	}
	s.h = srcLib.SurfaceReference(src.h)
	runtime.KeepAlive(src)
}

// Destroy drops the reference s holds. The native surface is freed when
// its last reference goes, which also runs the destroy functions of its
// user data. Destroying twice is harmless.
func (s *Surface) Destroy() {
	s.release()
}

func (s *Surface) release() {
	if s.h == 0 {
		return
	}
	s.library().SurfaceDestroy(s.h)
	s.h = 0
}

func (s *Surface) finalize() {
	if s.h != 0 {
		Logger().Debug("cairo: surface released by finalizer", "handle", s.h)
	}
	s.release()
}

// check is the last use of s in every checked method, so it keeps s alive
// until the native calls before it have returned.
func (s *Surface) check(op string) error {
	st := s.library().SurfaceStatus(s.h)
	runtime.KeepAlive(s)
	return checkStatus(op, st)
}

// Status returns the error state of the surface.
func (s *Surface) Status() error {
	return s.check("surface status")
}

// GetReferenceCount returns the number of references to the native
// surface, or 0 for the null handle and static error surfaces.
func (s *Surface) GetReferenceCount() int {
	n := s.library().SurfaceGetReferenceCount(s.h)
	runtime.KeepAlive(s)
	return n
}

// Finish flushes the surface and releases its backing resources. Later
// drawing-related calls fail with StatusSurfaceFinished; the reference held
// by s stays until Destroy.
func (s *Surface) Finish() error {
	s.library().SurfaceFinish(s.h)
	return s.check("finish surface")
}

// GetUserData returns the data attached to s under key, or nil.
func (s *Surface) GetUserData(key *UserDataKey) (any, error) {
	data := s.library().SurfaceGetUserData(s.h, key)
	if err := s.check("get user data"); err != nil {
		return nil, err
	}
	return data, nil
}

// SetUserData attaches data to s under key. destroy, if not nil, is called
// with data when the key is set again or the surface is freed. A nil data
// removes the key.
func (s *Surface) SetUserData(key *UserDataKey, data any, destroy func(data any)) error {
	st := s.library().SurfaceSetUserData(s.h, key, data, destroy)
	runtime.KeepAlive(s)
	return checkStatus("set user data", st)
}

// GetFontOptions stores into options the default font options for text
// drawn on s. options ends up with its own handle, in the library of s.
func (s *Surface) GetFontOptions(options *FontOptions) error {
	if options == nil {
		return checkStatus("get font options", StatusNullPointer)
	}
	lib := s.library()
	scratch := lib.FontOptionsCreate()
	defer lib.FontOptionsDestroy(scratch)

	lib.SurfaceGetFontOptions(s.h, scratch)
	options.Assign(&FontOptions{lib: lib, h: scratch})
	return s.check("get font options")
}

// Flush completes any pending drawing. Call it before touching the pixel
// memory directly.
func (s *Surface) Flush() error {
	s.library().SurfaceFlush(s.h)
	return s.check("flush surface")
}

// MarkDirty tells cairo that the whole surface was changed outside of
// cairo.
func (s *Surface) MarkDirty() error {
	s.library().SurfaceMarkDirty(s.h)
	return s.check("mark dirty")
}

// MarkDirtyRectangle tells cairo that r was changed outside of cairo.
// r is in device space, before the device offset.
func (s *Surface) MarkDirtyRectangle(r Rectangle) error {
	s.library().SurfaceMarkDirtyRectangle(s.h, r.X, r.Y, r.Width, r.Height)
	return s.check("mark dirty rectangle")
}

// SetDeviceOffset moves the origin of drawing on s by (xOffset, yOffset)
// device units.
func (s *Surface) SetDeviceOffset(xOffset, yOffset float64) error {
	s.library().SurfaceSetDeviceOffset(s.h, xOffset, yOffset)
	return s.check("set device offset")
}

// GetDeviceOffset returns the offset set by SetDeviceOffset.
func (s *Surface) GetDeviceOffset() (xOffset, yOffset float64, err error) {
	xOffset, yOffset = s.library().SurfaceGetDeviceOffset(s.h)
	if err := s.check("get device offset"); err != nil {
		return 0, 0, err
	}
	return xOffset, yOffset, nil
}

// GetContent returns what the surface stores: color, alpha or both.
func (s *Surface) GetContent() (Content, error) {
	c := s.library().SurfaceGetContent(s.h)
	if err := s.check("get content"); err != nil {
		return 0, err
	}
	return c, nil
}

// GetType returns the backend type of the surface.
func (s *Surface) GetType() SurfaceType {
	t := s.library().SurfaceGetType(s.h)
	runtime.KeepAlive(s)
	return t
}

// GetWidth returns the width of an image surface in pixels.
func (s *Surface) GetWidth() (int, error) {
	w := s.library().ImageSurfaceGetWidth(s.h)
	if err := s.check("get width"); err != nil {
		return 0, err
	}
	return w, nil
}

// GetHeight returns the height of an image surface in pixels.
func (s *Surface) GetHeight() (int, error) {
	h := s.library().ImageSurfaceGetHeight(s.h)
	if err := s.check("get height"); err != nil {
		return 0, err
	}
	return h, nil
}

// GetStride returns the distance in bytes between the starts of two rows
// of an image surface.
func (s *Surface) GetStride() (int, error) {
	stride := s.library().ImageSurfaceGetStride(s.h)
	if err := s.check("get stride"); err != nil {
		return 0, err
	}
	return stride, nil
}

// GetFormat returns the pixel format of an image surface.
func (s *Surface) GetFormat() (Format, error) {
	f := s.library().ImageSurfaceGetFormat(s.h)
	if err := s.check("get format"); err != nil {
		return FormatInvalid, err
	}
	return f, nil
}

// GetData returns the pixel memory of an image surface. The slice aliases
// the surface: call Flush before reading it and MarkDirty after writing it.
// It is nil once a surface that owned its memory has been finished.
func (s *Surface) GetData() ([]byte, error) {
	data := s.library().ImageSurfaceGetData(s.h)
	if err := s.check("get data"); err != nil {
		return nil, err
	}
	return data, nil
}
