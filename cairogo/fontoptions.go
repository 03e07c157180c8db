package cairo

import (
	"runtime"

	"golang.org/x/image/font"

	"github.com/cairomm/cairomm/cairogo/native"
)

// FontOptions object. It owns one native font options object, or none: the
// zero FontOptions holds the null handle, on which every checked call
// reports StatusNullPointer.
//
// Objects returned by the constructors release their handle when garbage
// collected; Destroy releases it deterministically. A zero FontOptions that
// acquires a handle through Assign must be destroyed explicitly.
type FontOptions struct {
	lib native.Library
	h   native.FontOptionsHandle
}

func fontOptionsNew(lib native.Library, h native.FontOptionsHandle) *FontOptions {
	o := &FontOptions{lib: lib, h: h}
	runtime.SetFinalizer(o, (*FontOptions).finalize)
	return o
}

// FontOptionsNew creates a new font options object with every option at
// its default.
func FontOptionsNew() *FontOptions {
	lib := DefaultLibrary()
	return fontOptionsNew(lib, lib.FontOptionsCreate())
}

// FontOptionsWrap wraps a native handle of the default library. With
// takeOwnership the new object becomes the sole owner of h; otherwise it
// holds a copy and the caller remains responsible for h.
func FontOptionsWrap(h native.FontOptionsHandle, takeOwnership bool) *FontOptions {
	lib := DefaultLibrary()
	if !takeOwnership && h != 0 {
		h = lib.FontOptionsCopy(h)
	}
	return fontOptionsNew(lib, h)
}

func (o *FontOptions) library() native.Library {
	if o.lib == nil {
		return DefaultLibrary()
	}
	return o.lib
}

// Handle returns the native handle owned by o. It stays valid until o is
// destroyed or reassigned.
func (o *FontOptions) Handle() native.FontOptionsHandle {
	return o.h
}

// Copy returns a new object holding a native copy of o. Copying the null
// handle yields the null handle.
func (o *FontOptions) Copy() *FontOptions {
	lib := o.library()
	if o.h == 0 {
		return fontOptionsNew(lib, 0)
	}
	h := lib.FontOptionsCopy(o.h)
	runtime.KeepAlive(o)
	return fontOptionsNew(lib, h)
}

// Assign releases the handle of o and replaces it with a copy of src's.
// Assigning an object to itself, or to one holding the same handle, does
// nothing. A nil src releases the handle of o.
func (o *FontOptions) Assign(src *FontOptions) {
	if o == src {
		return
	}
	if src == nil {
		o.release()
		return
	}
	srcLib := src.library()
	if o.h == src.h && sameLibrary(o.library(), srcLib) {
		return
	}
	o.release()
	o.lib = srcLib
	if src.h == 0 {
		return
	}
	o.h = srcLib.FontOptionsCopy(src.h)
	runtime.KeepAlive(src)
}

// Destroy releases the handle of o. Destroying twice is harmless.
func (o *FontOptions) Destroy() {
	o.release()
}

func (o *FontOptions) release() {
	if o.h == 0 {
		return
	}
	o.library().FontOptionsDestroy(o.h)
	o.h = 0
}

func (o *FontOptions) finalize() {
	if o.h != 0 {
		Logger().Debug("cairo: font options released by finalizer", "handle", o.h)
	}
	o.release()
}

// Status returns the error state of the native object.
func (o *FontOptions) Status() error {
	return o.check("font options status")
}

// check is the last use of o in every checked method, so it keeps o alive
// until the native calls before it have returned.
func (o *FontOptions) check(op string) error {
	st := o.library().FontOptionsStatus(o.h)
	runtime.KeepAlive(o)
	return checkStatus(op, st)
}

// Equal reports whether o and other hold the same options. Objects in an
// error state, or from different libraries, are never equal, and neither
// is nil.
func (o *FontOptions) Equal(other *FontOptions) bool {
	if other == nil {
		return false
	}
	lib := o.library()
	if !sameLibrary(lib, other.library()) {
		return false
	}
	eq := lib.FontOptionsEqual(o.h, other.h)
	runtime.KeepAlive(o)
	runtime.KeepAlive(other)
	return eq
}

// Merge copies into o every option that is set in other; options that are
// at their default in other are left alone.
func (o *FontOptions) Merge(other *FontOptions) error {
	if other == nil {
		return checkStatus("merge font options", StatusNullPointer)
	}
	lib := o.library()
	if !sameLibrary(lib, other.library()) {
		return ErrLibraryMismatch
	}
	lib.FontOptionsMerge(o.h, other.h)
	runtime.KeepAlive(other)
	return o.check("merge font options")
}

// Hash returns a hash of the options, suitable for use as a cache key.
// Objects that are Equal hash equally.
func (o *FontOptions) Hash() (uint64, error) {
	h := o.library().FontOptionsHash(o.h)
	if err := o.check("hash font options"); err != nil {
		return 0, err
	}
	return h, nil
}

// SetAntialias sets the antialiasing mode for rendering text.
func (o *FontOptions) SetAntialias(antialias Antialias) error {
	o.library().FontOptionsSetAntialias(o.h, antialias)
	return o.check("set antialias")
}

// GetAntialias returns the antialiasing mode.
func (o *FontOptions) GetAntialias() (Antialias, error) {
	a := o.library().FontOptionsGetAntialias(o.h)
	if err := o.check("get antialias"); err != nil {
		return AntialiasDefault, err
	}
	return a, nil
}

// SetSubpixelOrder sets the order of the color elements within each pixel
// of the display, used with AntialiasSubpixel.
func (o *FontOptions) SetSubpixelOrder(order SubpixelOrder) error {
	o.library().FontOptionsSetSubpixelOrder(o.h, order)
	return o.check("set subpixel order")
}

// GetSubpixelOrder returns the subpixel order.
func (o *FontOptions) GetSubpixelOrder() (SubpixelOrder, error) {
	so := o.library().FontOptionsGetSubpixelOrder(o.h)
	if err := o.check("get subpixel order"); err != nil {
		return SubpixelOrderDefault, err
	}
	return so, nil
}

// SetHintStyle sets how strongly glyph outlines are fitted to the pixel grid.
func (o *FontOptions) SetHintStyle(style HintStyle) error {
	o.library().FontOptionsSetHintStyle(o.h, style)
	return o.check("set hint style")
}

// GetHintStyle returns the hint style.
func (o *FontOptions) GetHintStyle() (HintStyle, error) {
	hs := o.library().FontOptionsGetHintStyle(o.h)
	if err := o.check("get hint style"); err != nil {
		return HintStyleDefault, err
	}
	return hs, nil
}

// SetHintMetrics sets whether font metrics are rounded to integer device
// units.
func (o *FontOptions) SetHintMetrics(metrics HintMetrics) error {
	o.library().FontOptionsSetHintMetrics(o.h, metrics)
	return o.check("set hint metrics")
}

// GetHintMetrics returns the metrics hinting mode.
func (o *FontOptions) GetHintMetrics() (HintMetrics, error) {
	hm := o.library().FontOptionsGetHintMetrics(o.h)
	if err := o.check("get hint metrics"); err != nil {
		return HintMetricsDefault, err
	}
	return hm, nil
}

// FaceHinting returns the x/image hinting mode closest to o's hint style,
// for configuring Go font faces the way cairo would hint. The default
// style hints fully, as cairo's FreeType backend does.
func (o *FontOptions) FaceHinting() (font.Hinting, error) {
	hs, err := o.GetHintStyle()
	if err != nil {
		return font.HintingNone, err
	}
	switch hs {
	case HintStyleNone:
		return font.HintingNone, nil
	case HintStyleSlight:
		return font.HintingVertical, nil
	default:
		return font.HintingFull, nil
	}
}
