package softcairo

import (
	"io"

	"github.com/cairomm/cairomm/cairogo/native"
)

type userDataSlot struct {
	key     *native.UserDataKey
	data    any
	destroy native.DestroyFunc
}

// release runs the slot's destroy function, if any.
func (s userDataSlot) release() {
	if s.destroy != nil {
		s.destroy(s.data)
	}
}

type surface struct {
	refs     int
	status   native.Status
	static   bool
	finished bool

	format   native.Format
	width    int
	height   int
	stride   int
	data     []byte
	ownsData bool

	xOffset, yOffset float64

	userData []userDataSlot

	// nil until first queried, as in cairo.
	fontOptions *fontOptions
}

// setError records st unless the surface already carries an error.
func (s *surface) setError(st native.Status) {
	if s.static || s.status != native.StatusSuccess {
		return
	}
	s.status = st
}

// lookupSurface returns nil for the null handle and for handles that are
// not live in l.
func (l *Library) lookupSurface(h native.SurfaceHandle) *surface {
	if h == 0 {
		return nil
	}
	return l.surfaces[h]
}

// errorSurfaceLocked returns the static surface for status st. Such surfaces
// ignore reference and destroy calls and never change.
func (l *Library) errorSurfaceLocked(st native.Status) native.SurfaceHandle {
	if h, ok := l.nilSurfaces[st]; ok {
		return h
	}
	h := native.SurfaceHandle(l.newHandle())
	l.surfaces[h] = &surface{status: st, static: true, format: native.FormatInvalid}
	l.nilSurfaces[st] = h
	return h
}

func (l *Library) newImageSurfaceLocked(format native.Format, width, height, stride int, data []byte, ownsData bool) native.SurfaceHandle {
	if l.allocFailsLocked() {
		return l.errorSurfaceLocked(native.StatusNoMemory)
	}
	h := native.SurfaceHandle(l.newHandle())
	l.surfaces[h] = &surface{
		refs:     1,
		format:   format,
		width:    width,
		height:   height,
		stride:   stride,
		data:     data,
		ownsData: ownsData,
	}
	return h
}

// ImageSurfaceCreate implements native.Library. The pixels start cleared.
func (l *Library) ImageSurfaceCreate(format native.Format, width, height int) native.SurfaceHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !format.Valid() {
		return l.errorSurfaceLocked(native.StatusInvalidFormat)
	}
	if !imageSizeValid(width, height) {
		return l.errorSurfaceLocked(native.StatusInvalidSize)
	}
	stride := strideForWidth(format, width)
	return l.newImageSurfaceLocked(format, width, height, stride, make([]byte, stride*height), true)
}

// ImageSurfaceCreateForData implements native.Library. The surface uses data
// directly; the caller keeps ownership of it. Negative strides, strides
// whose image would not fit in 32 bits, and buffers shorter than
// stride*height are rejected with StatusInvalidStride.
func (l *Library) ImageSurfaceCreateForData(data []byte, format native.Format, width, height, stride int) native.SurfaceHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !format.Valid() {
		return l.errorSurfaceLocked(native.StatusInvalidFormat)
	}
	if stride&(strideAlignment-1) != 0 {
		return l.errorSurfaceLocked(native.StatusInvalidStride)
	}
	if !imageSizeValid(width, height) {
		return l.errorSurfaceLocked(native.StatusInvalidSize)
	}
	if !strideFits(stride, height) {
		return l.errorSurfaceLocked(native.StatusInvalidStride)
	}
	if width == 0 || height == 0 {
		return l.newImageSurfaceLocked(format, width, height, stride, nil, false)
	}
	if stride < strideForWidth(format, width) || len(data) < stride*height {
		return l.errorSurfaceLocked(native.StatusInvalidStride)
	}
	return l.newImageSurfaceLocked(format, width, height, stride, data[:stride*height:stride*height], false)
}

// SurfaceCreateSimilar implements native.Library. Every surface here is an
// image surface, so the result is an image surface whose format follows
// content. Font options of other, if it has any, are inherited.
func (l *Library) SurfaceCreateSimilar(other native.SurfaceHandle, content native.Content, width, height int) native.SurfaceHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	o := l.lookupSurface(other)
	switch {
	case o == nil:
		return l.errorSurfaceLocked(native.StatusNullPointer)
	case o.status != native.StatusSuccess:
		return l.errorSurfaceLocked(o.status)
	case o.finished:
		return l.errorSurfaceLocked(native.StatusSurfaceFinished)
	case width < 0 || height < 0:
		return l.errorSurfaceLocked(native.StatusInvalidSize)
	case !content.Valid():
		return l.errorSurfaceLocked(native.StatusInvalidContent)
	case !imageSizeValid(width, height):
		return l.errorSurfaceLocked(native.StatusInvalidSize)
	}

	format := content.Format()
	stride := strideForWidth(format, width)
	h := l.newImageSurfaceLocked(format, width, height, stride, make([]byte, stride*height), true)
	if s := l.surfaces[h]; !s.static && o.fontOptions != nil {
		fo := *o.fontOptions
		s.fontOptions = &fo
	}
	return h
}

// SurfaceReference implements native.Library.
func (l *Library) SurfaceReference(h native.SurfaceHandle) native.SurfaceHandle {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.lookupSurface(h); s != nil && !s.static {
		s.refs++
	}
	return h
}

// SurfaceDestroy implements native.Library. Dropping the last reference
// finishes the surface and then releases its user data, outside the lock so
// that destroy functions may call back into l.
func (l *Library) SurfaceDestroy(h native.SurfaceHandle) {
	l.mu.Lock()
	s := l.lookupSurface(h)
	if s == nil || s.static {
		l.mu.Unlock()
		return
	}
	s.refs--
	if s.refs > 0 {
		l.mu.Unlock()
		return
	}
	if !s.finished {
		s.finish()
	}
	slots := s.userData
	s.userData = nil
	delete(l.surfaces, h)
	l.mu.Unlock()

	for _, slot := range slots {
		slot.release()
	}
}

// SurfaceGetReferenceCount implements native.Library. Static surfaces
// report 0.
func (l *Library) SurfaceGetReferenceCount(h native.SurfaceHandle) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookupSurface(h)
	if s == nil || s.static {
		return 0
	}
	return s.refs
}

// SurfaceStatus implements native.Library.
func (l *Library) SurfaceStatus(h native.SurfaceHandle) native.Status {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookupSurface(h)
	if s == nil {
		return native.StatusNullPointer
	}
	return s.status
}

func (s *surface) finish() {
	s.finished = true
	if s.ownsData {
		s.data = nil
	}
}

// SurfaceFinish implements native.Library. Finishing twice is a no-op.
func (l *Library) SurfaceFinish(h native.SurfaceHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookupSurface(h)
	if s == nil || s.static || s.finished {
		return
	}
	s.finish()
}

// usableLocked returns the surface behind h if it may be modified, marking
// it finished-in-error when it has been finished.
func (l *Library) usableLocked(h native.SurfaceHandle) *surface {
	s := l.lookupSurface(h)
	if s == nil || s.status != native.StatusSuccess {
		return nil
	}
	if s.finished {
		s.setError(native.StatusSurfaceFinished)
		return nil
	}
	return s
}

// SurfaceFlush implements native.Library. Image memory is always current,
// so flushing only validates the surface; a finished surface goes into
// StatusSurfaceFinished.
func (l *Library) SurfaceFlush(h native.SurfaceHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.usableLocked(h)
}

// SurfaceMarkDirty implements native.Library.
func (l *Library) SurfaceMarkDirty(h native.SurfaceHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.usableLocked(h)
}

// SurfaceMarkDirtyRectangle implements native.Library.
func (l *Library) SurfaceMarkDirtyRectangle(h native.SurfaceHandle, x, y, width, height int) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.usableLocked(h)
}

// SurfaceSetDeviceOffset implements native.Library.
func (l *Library) SurfaceSetDeviceOffset(h native.SurfaceHandle, xOffset, yOffset float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.usableLocked(h); s != nil {
		s.xOffset, s.yOffset = xOffset, yOffset
	}
}

// SurfaceGetDeviceOffset implements native.Library.
func (l *Library) SurfaceGetDeviceOffset(h native.SurfaceHandle) (float64, float64) {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookupSurface(h)
	if s == nil {
		return 0, 0
	}
	return s.xOffset, s.yOffset
}

// SurfaceGetContent implements native.Library.
func (l *Library) SurfaceGetContent(h native.SurfaceHandle) native.Content {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookupSurface(h)
	if s == nil || s.static {
		return native.ContentColor
	}
	return s.format.Content()
}

// SurfaceGetType implements native.Library.
func (l *Library) SurfaceGetType(native.SurfaceHandle) native.SurfaceType {
	return native.SurfaceTypeImage
}

// SurfaceGetUserData implements native.Library.
func (l *Library) SurfaceGetUserData(h native.SurfaceHandle, key *native.UserDataKey) any {
	l.mu.Lock()
	defer l.mu.Unlock()

	s := l.lookupSurface(h)
	if s == nil {
		return nil
	}
	for _, slot := range s.userData {
		if slot.key == key {
			return slot.data
		}
	}
	return nil
}

// SurfaceSetUserData implements native.Library. A nil data removes the
// slot. The destroy function of a replaced or removed slot runs before
// SurfaceSetUserData returns.
func (l *Library) SurfaceSetUserData(h native.SurfaceHandle, key *native.UserDataKey, data any, destroy native.DestroyFunc) native.Status {
	l.mu.Lock()
	s := l.lookupSurface(h)
	switch {
	case s == nil || key == nil:
		l.mu.Unlock()
		return native.StatusNullPointer
	case s.static:
		l.mu.Unlock()
		return s.status
	}

	for i, slot := range s.userData {
		if slot.key != key {
			continue
		}
		if data == nil {
			s.userData = append(s.userData[:i], s.userData[i+1:]...)
		} else {
			s.userData[i] = userDataSlot{key: key, data: data, destroy: destroy}
		}
		l.mu.Unlock()
		slot.release()
		return native.StatusSuccess
	}
	defer l.mu.Unlock()

	if data == nil {
		return native.StatusSuccess
	}
	if l.allocFailsLocked() {
		return native.StatusNoMemory
	}
	s.userData = append(s.userData, userDataSlot{key: key, data: data, destroy: destroy})
	return native.StatusSuccess
}

// SurfaceGetFontOptions implements native.Library. An image surface
// defaults to metrics hinting on; a surface in error, or one finished
// before its options were first asked for, reports the defaults.
func (l *Library) SurfaceGetFontOptions(h native.SurfaceHandle, options native.FontOptionsHandle) {
	l.mu.Lock()
	defer l.mu.Unlock()

	dst := l.mutableFontOptions(options)
	if dst == nil {
		return
	}
	s := l.lookupSurface(h)
	if s == nil || s.status != native.StatusSuccess {
		dst.copyFrom(&fontOptionsDefault)
		return
	}
	if s.fontOptions == nil {
		s.fontOptions = &fontOptions{}
		if !s.finished {
			s.fontOptions.hintMetrics = native.HintMetricsOn
		}
	}
	dst.copyFrom(s.fontOptions)
}

// SurfaceWriteToPNGStream implements native.Library. The pixels are copied
// under the lock and encoded after it is released.
func (l *Library) SurfaceWriteToPNGStream(h native.SurfaceHandle, w io.Writer) native.Status {
	l.mu.Lock()
	s := l.lookupSurface(h)
	switch {
	case s == nil:
		l.mu.Unlock()
		return native.StatusNullPointer
	case s.status != native.StatusSuccess:
		l.mu.Unlock()
		return s.status
	case s.finished:
		l.mu.Unlock()
		return native.StatusSurfaceFinished
	}
	img := s.image()
	l.mu.Unlock()

	return encodePNG(w, img)
}

// imageSurfaceLocked returns the live, non-static surface behind h.
func (l *Library) imageSurfaceLocked(h native.SurfaceHandle) *surface {
	s := l.lookupSurface(h)
	if s == nil || s.static {
		return nil
	}
	return s
}

// ImageSurfaceGetData implements native.Library. The data of a finished
// surface that owned its memory is gone.
func (l *Library) ImageSurfaceGetData(h native.SurfaceHandle) []byte {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.imageSurfaceLocked(h); s != nil {
		return s.data
	}
	return nil
}

// ImageSurfaceGetFormat implements native.Library.
func (l *Library) ImageSurfaceGetFormat(h native.SurfaceHandle) native.Format {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.imageSurfaceLocked(h); s != nil {
		return s.format
	}
	return native.FormatInvalid
}

// ImageSurfaceGetWidth implements native.Library.
func (l *Library) ImageSurfaceGetWidth(h native.SurfaceHandle) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.imageSurfaceLocked(h); s != nil {
		return s.width
	}
	return 0
}

// ImageSurfaceGetHeight implements native.Library.
func (l *Library) ImageSurfaceGetHeight(h native.SurfaceHandle) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.imageSurfaceLocked(h); s != nil {
		return s.height
	}
	return 0
}

// ImageSurfaceGetStride implements native.Library.
func (l *Library) ImageSurfaceGetStride(h native.SurfaceHandle) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	if s := l.imageSurfaceLocked(h); s != nil {
		return s.stride
	}
	return 0
}
