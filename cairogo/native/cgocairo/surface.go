//go:build cairo

package cgocairo

/*
#include <stdlib.h>
#include <cairo.h>

extern cairo_status_t cairogoWrite(void *closure, unsigned char *data, unsigned int length);
extern void cairogoDestroyUserData(void *cell);
*/
import "C"

import (
	"io"
	"math"
	"runtime"
	"runtime/cgo"
	"unsafe"

	"github.com/cairomm/cairomm/cairogo/native"
)

// pinKey holds the runtime.Pinner of a surface created over Go memory.
var pinKey native.UserDataKey

// strideFits reports whether stride is non-negative and stride*height
// fits in a C int.
func strideFits(stride, height int) bool {
	if stride < 0 || stride > math.MaxInt32 {
		return false
	}
	return height <= 0 || stride <= math.MaxInt32/height
}

func surfacePtr(h native.SurfaceHandle) *C.cairo_surface_t {
	return (*C.cairo_surface_t)(unsafe.Pointer(h))
}

func surfaceHandle(p *C.cairo_surface_t) native.SurfaceHandle {
	return native.SurfaceHandle(unsafe.Pointer(p))
}

// Unlike the font options functions, cairo's surface functions dereference
// their argument unconditionally; the null handle is caught here.

// FormatStrideForWidth implements native.Library.
func (Library) FormatStrideForWidth(format native.Format, width int) int {
	return int(C.cairo_format_stride_for_width(C.cairo_format_t(format), C.int(width)))
}

// ImageSurfaceCreate implements native.Library.
func (Library) ImageSurfaceCreate(format native.Format, width, height int) native.SurfaceHandle {
	return surfaceHandle(C.cairo_image_surface_create(C.cairo_format_t(format), C.int(width), C.int(height)))
}

// ImageSurfaceCreateForData implements native.Library. data stays pinned
// until cairo frees the surface. Negative strides, strides that do not
// fit a C int together with height, and buffers shorter than stride*height
// are rejected with StatusInvalidStride.
func (l Library) ImageSurfaceCreateForData(data []byte, format native.Format, width, height, stride int) native.SurfaceHandle {
	if !strideFits(stride, height) || (width > 0 && height > 0 && len(data) < stride*height) {
		// A misaligned stride makes cairo return its invalid-stride surface.
		stride = 1
	}
	if len(data) == 0 {
		return surfaceHandle(C.cairo_image_surface_create_for_data(nil,
			C.cairo_format_t(format), C.int(width), C.int(height), C.int(stride)))
	}

	p := new(runtime.Pinner)
	ptr := unsafe.Pointer(unsafe.SliceData(data))
	p.Pin(ptr)
	s := surfaceHandle(C.cairo_image_surface_create_for_data((*C.uchar)(ptr),
		C.cairo_format_t(format), C.int(width), C.int(height), C.int(stride)))
	if l.SurfaceStatus(s) != native.StatusSuccess {
		p.Unpin()
		return s
	}
	if st := l.SurfaceSetUserData(s, &pinKey, p, func(any) { p.Unpin() }); st != native.StatusSuccess {
		l.SurfaceDestroy(s)
		p.Unpin()
		return surfaceHandle(C.cairo_image_surface_create(C.CAIRO_FORMAT_INVALID, 0, 0))
	}
	return s
}

// SurfaceCreateSimilar implements native.Library.
func (Library) SurfaceCreateSimilar(other native.SurfaceHandle, content native.Content, width, height int) native.SurfaceHandle {
	if other == 0 {
		return 0
	}
	return surfaceHandle(C.cairo_surface_create_similar(surfacePtr(other),
		C.cairo_content_t(content), C.int(width), C.int(height)))
}

// SurfaceReference implements native.Library.
func (Library) SurfaceReference(h native.SurfaceHandle) native.SurfaceHandle {
	if h == 0 {
		return 0
	}
	return surfaceHandle(C.cairo_surface_reference(surfacePtr(h)))
}

// SurfaceDestroy implements native.Library.
func (Library) SurfaceDestroy(h native.SurfaceHandle) {
	if h != 0 {
		C.cairo_surface_destroy(surfacePtr(h))
	}
}

// SurfaceGetReferenceCount implements native.Library.
func (Library) SurfaceGetReferenceCount(h native.SurfaceHandle) int {
	if h == 0 {
		return 0
	}
	return int(C.cairo_surface_get_reference_count(surfacePtr(h)))
}

// SurfaceStatus implements native.Library.
func (Library) SurfaceStatus(h native.SurfaceHandle) native.Status {
	if h == 0 {
		return native.StatusNullPointer
	}
	return native.Status(C.cairo_surface_status(surfacePtr(h)))
}

// SurfaceFinish implements native.Library.
func (Library) SurfaceFinish(h native.SurfaceHandle) {
	if h != 0 {
		C.cairo_surface_finish(surfacePtr(h))
	}
}

// SurfaceFlush implements native.Library.
func (Library) SurfaceFlush(h native.SurfaceHandle) {
	if h != 0 {
		C.cairo_surface_flush(surfacePtr(h))
	}
}

// SurfaceGetUserData implements native.Library.
func (Library) SurfaceGetUserData(h native.SurfaceHandle, key *native.UserDataKey) any {
	if h == 0 || key == nil {
		return nil
	}
	ck := cKey(key, false)
	if ck == nil {
		return nil
	}
	cell := C.cairo_surface_get_user_data(surfacePtr(h), ck)
	if cell == nil {
		return nil
	}
	return handleFromCell(cell).Value().(userDataSlot).data
}

// SurfaceSetUserData implements native.Library. cairo calls the destroy
// function of a replaced slot itself, through cairogoDestroyUserData.
func (Library) SurfaceSetUserData(h native.SurfaceHandle, key *native.UserDataKey, data any, destroy native.DestroyFunc) native.Status {
	if h == 0 || key == nil {
		return native.StatusNullPointer
	}
	ck := cKey(key, true)
	if data == nil {
		return native.Status(C.cairo_surface_set_user_data(surfacePtr(h), ck, nil, nil))
	}
	cell := newHandleCell(cgo.NewHandle(userDataSlot{data: data, destroy: destroy}))
	st := native.Status(C.cairo_surface_set_user_data(surfacePtr(h), ck, cell,
		C.cairo_destroy_func_t(C.cairogoDestroyUserData)))
	if st != native.StatusSuccess {
		freeHandleCell(cell)
	}
	return st
}

// SurfaceGetFontOptions implements native.Library.
func (Library) SurfaceGetFontOptions(h native.SurfaceHandle, options native.FontOptionsHandle) {
	if h != 0 {
		C.cairo_surface_get_font_options(surfacePtr(h), fontOptionsPtr(options))
	}
}

// SurfaceMarkDirty implements native.Library.
func (Library) SurfaceMarkDirty(h native.SurfaceHandle) {
	if h != 0 {
		C.cairo_surface_mark_dirty(surfacePtr(h))
	}
}

// SurfaceMarkDirtyRectangle implements native.Library.
func (Library) SurfaceMarkDirtyRectangle(h native.SurfaceHandle, x, y, width, height int) {
	if h != 0 {
		C.cairo_surface_mark_dirty_rectangle(surfacePtr(h), C.int(x), C.int(y), C.int(width), C.int(height))
	}
}

// SurfaceSetDeviceOffset implements native.Library.
func (Library) SurfaceSetDeviceOffset(h native.SurfaceHandle, xOffset, yOffset float64) {
	if h != 0 {
		C.cairo_surface_set_device_offset(surfacePtr(h), C.double(xOffset), C.double(yOffset))
	}
}

// SurfaceGetDeviceOffset implements native.Library.
func (Library) SurfaceGetDeviceOffset(h native.SurfaceHandle) (float64, float64) {
	if h == 0 {
		return 0, 0
	}
	var x, y C.double
	C.cairo_surface_get_device_offset(surfacePtr(h), &x, &y)
	return float64(x), float64(y)
}

// SurfaceGetContent implements native.Library.
func (Library) SurfaceGetContent(h native.SurfaceHandle) native.Content {
	if h == 0 {
		return native.ContentColor
	}
	return native.Content(C.cairo_surface_get_content(surfacePtr(h)))
}

// SurfaceGetType implements native.Library.
func (Library) SurfaceGetType(h native.SurfaceHandle) native.SurfaceType {
	if h == 0 {
		return native.SurfaceTypeImage
	}
	return native.SurfaceType(C.cairo_surface_get_type(surfacePtr(h)))
}

// SurfaceWriteToPNGStream implements native.Library.
func (Library) SurfaceWriteToPNGStream(h native.SurfaceHandle, w io.Writer) native.Status {
	if h == 0 {
		return native.StatusNullPointer
	}
	closure := newHandleCell(cgo.NewHandle(w))
	defer freeHandleCell(closure)
	return native.Status(C.cairo_surface_write_to_png_stream(surfacePtr(h),
		C.cairo_write_func_t(C.cairogoWrite), closure))
}

// ImageSurfaceGetData implements native.Library. The slice aliases cairo's
// pixel memory and is valid until the surface is finished.
func (l Library) ImageSurfaceGetData(h native.SurfaceHandle) []byte {
	if h == 0 {
		return nil
	}
	p := C.cairo_image_surface_get_data(surfacePtr(h))
	if p == nil {
		return nil
	}
	n := l.ImageSurfaceGetStride(h) * l.ImageSurfaceGetHeight(h)
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// ImageSurfaceGetFormat implements native.Library.
func (Library) ImageSurfaceGetFormat(h native.SurfaceHandle) native.Format {
	if h == 0 {
		return native.FormatInvalid
	}
	return native.Format(C.cairo_image_surface_get_format(surfacePtr(h)))
}

// ImageSurfaceGetWidth implements native.Library.
func (Library) ImageSurfaceGetWidth(h native.SurfaceHandle) int {
	if h == 0 {
		return 0
	}
	return int(C.cairo_image_surface_get_width(surfacePtr(h)))
}

// ImageSurfaceGetHeight implements native.Library.
func (Library) ImageSurfaceGetHeight(h native.SurfaceHandle) int {
	if h == 0 {
		return 0
	}
	return int(C.cairo_image_surface_get_height(surfacePtr(h)))
}

// ImageSurfaceGetStride implements native.Library.
func (Library) ImageSurfaceGetStride(h native.SurfaceHandle) int {
	if h == 0 {
		return 0
	}
	return int(C.cairo_image_surface_get_stride(surfacePtr(h)))
}
