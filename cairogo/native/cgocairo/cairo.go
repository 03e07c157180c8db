//go:build cairo

package cgocairo

/*
#cgo pkg-config: cairo

#include <cairo.h>
*/
import "C"

import (
	"unsafe"

	"github.com/cairomm/cairomm/cairogo/native"
)

// Library forwards every call to libcairo.
type Library struct{}

var _ native.Library = Library{}

// New returns the libcairo library.
func New() Library {
	return Library{}
}

// Name implements native.Library.
func (Library) Name() string {
	return "cairo " + C.GoString(C.cairo_version_string())
}

func fontOptionsPtr(h native.FontOptionsHandle) *C.cairo_font_options_t {
	return (*C.cairo_font_options_t)(unsafe.Pointer(h))
}

func fontOptionsHandle(p *C.cairo_font_options_t) native.FontOptionsHandle {
	return native.FontOptionsHandle(unsafe.Pointer(p))
}

// The cairo_font_options_* functions accept NULL and report it through
// their status, so the null handle needs no special casing here.

// FontOptionsCreate implements native.Library.
func (Library) FontOptionsCreate() native.FontOptionsHandle {
	return fontOptionsHandle(C.cairo_font_options_create())
}

// FontOptionsCopy implements native.Library.
func (Library) FontOptionsCopy(original native.FontOptionsHandle) native.FontOptionsHandle {
	return fontOptionsHandle(C.cairo_font_options_copy(fontOptionsPtr(original)))
}

// FontOptionsDestroy implements native.Library.
func (Library) FontOptionsDestroy(options native.FontOptionsHandle) {
	C.cairo_font_options_destroy(fontOptionsPtr(options))
}

// FontOptionsStatus implements native.Library.
func (Library) FontOptionsStatus(options native.FontOptionsHandle) native.Status {
	return native.Status(C.cairo_font_options_status(fontOptionsPtr(options)))
}

// FontOptionsMerge implements native.Library.
func (Library) FontOptionsMerge(options, other native.FontOptionsHandle) {
	C.cairo_font_options_merge(fontOptionsPtr(options), fontOptionsPtr(other))
}

// FontOptionsEqual implements native.Library.
func (Library) FontOptionsEqual(options, other native.FontOptionsHandle) bool {
	return C.cairo_font_options_equal(fontOptionsPtr(options), fontOptionsPtr(other)) != 0
}

// FontOptionsHash implements native.Library.
func (Library) FontOptionsHash(options native.FontOptionsHandle) uint64 {
	return uint64(C.cairo_font_options_hash(fontOptionsPtr(options)))
}

// FontOptionsSetAntialias implements native.Library.
func (Library) FontOptionsSetAntialias(options native.FontOptionsHandle, antialias native.Antialias) {
	C.cairo_font_options_set_antialias(fontOptionsPtr(options), C.cairo_antialias_t(antialias))
}

// FontOptionsGetAntialias implements native.Library.
func (Library) FontOptionsGetAntialias(options native.FontOptionsHandle) native.Antialias {
	return native.Antialias(C.cairo_font_options_get_antialias(fontOptionsPtr(options)))
}

// FontOptionsSetSubpixelOrder implements native.Library.
func (Library) FontOptionsSetSubpixelOrder(options native.FontOptionsHandle, order native.SubpixelOrder) {
	C.cairo_font_options_set_subpixel_order(fontOptionsPtr(options), C.cairo_subpixel_order_t(order))
}

// FontOptionsGetSubpixelOrder implements native.Library.
func (Library) FontOptionsGetSubpixelOrder(options native.FontOptionsHandle) native.SubpixelOrder {
	return native.SubpixelOrder(C.cairo_font_options_get_subpixel_order(fontOptionsPtr(options)))
}

// FontOptionsSetHintStyle implements native.Library.
func (Library) FontOptionsSetHintStyle(options native.FontOptionsHandle, style native.HintStyle) {
	C.cairo_font_options_set_hint_style(fontOptionsPtr(options), C.cairo_hint_style_t(style))
}

// FontOptionsGetHintStyle implements native.Library.
func (Library) FontOptionsGetHintStyle(options native.FontOptionsHandle) native.HintStyle {
	return native.HintStyle(C.cairo_font_options_get_hint_style(fontOptionsPtr(options)))
}

// FontOptionsSetHintMetrics implements native.Library.
func (Library) FontOptionsSetHintMetrics(options native.FontOptionsHandle, metrics native.HintMetrics) {
	C.cairo_font_options_set_hint_metrics(fontOptionsPtr(options), C.cairo_hint_metrics_t(metrics))
}

// FontOptionsGetHintMetrics implements native.Library.
func (Library) FontOptionsGetHintMetrics(options native.FontOptionsHandle) native.HintMetrics {
	return native.HintMetrics(C.cairo_font_options_get_hint_metrics(fontOptionsPtr(options)))
}
