// Package softcairo implements native.Library in Go.
//
// It keeps cairo's object model for image surfaces and font options:
// reference counts, sticky error statuses, static "nil" objects returned on
// allocation failure, user data slots, and finish semantics. Pixels are plain
// memory; nothing is drawn here.
//
// Library additionally counts its live objects (native.Inspector) and can be
// told to fail allocations, which makes it the harness the bindings are
// tested against.
package softcairo

import (
	"math"
	"sync"

	"github.com/cairomm/cairomm/cairogo/native"
)

// maxImageSize is the largest width or height of an image surface.
const maxImageSize = 32767

// strideAlignment is the row alignment, in bytes, of image surface data.
const strideAlignment = 4

// Library is a native.Library holding its objects in Go memory. The zero
// value is not usable; create one with New. Separate Library values share
// nothing.
type Library struct {
	mu sync.Mutex

	next     uintptr
	failures int

	fontOptions map[native.FontOptionsHandle]*fontOptions
	surfaces    map[native.SurfaceHandle]*surface

	// Returned in place of a new object when allocation fails.
	nilFontOptions native.FontOptionsHandle
	nilSurfaces    map[native.Status]native.SurfaceHandle
}

var (
	_ native.Library   = (*Library)(nil)
	_ native.Inspector = (*Library)(nil)
)

// New returns an empty library.
func New() *Library {
	l := &Library{
		fontOptions: make(map[native.FontOptionsHandle]*fontOptions),
		surfaces:    make(map[native.SurfaceHandle]*surface),
		nilSurfaces: make(map[native.Status]native.SurfaceHandle),
	}
	l.nilFontOptions = native.FontOptionsHandle(l.newHandle())
	l.fontOptions[l.nilFontOptions] = &fontOptions{status: native.StatusNoMemory, static: true}
	return l
}

// Name implements native.Library.
func (l *Library) Name() string {
	return "softcairo"
}

// Stats implements native.Inspector. Static error objects are not counted.
func (l *Library) Stats() native.Stats {
	l.mu.Lock()
	defer l.mu.Unlock()

	var st native.Stats
	for _, o := range l.fontOptions {
		if !o.static {
			st.FontOptions++
		}
	}
	for _, s := range l.surfaces {
		if !s.static {
			st.Surfaces++
		}
	}
	return st
}

// FailAllocations makes the next n object allocations fail with
// StatusNoMemory.
func (l *Library) FailAllocations(n int) {
	l.mu.Lock()
	l.failures = n
	l.mu.Unlock()
}

// allocFailsLocked consumes one pending allocation failure.
func (l *Library) allocFailsLocked() bool {
	if l.failures <= 0 {
		return false
	}
	l.failures--
	return true
}

func (l *Library) newHandle() uintptr {
	l.next++
	return l.next
}

// FormatStrideForWidth implements native.Library. It returns -1 if the
// format is invalid or the width too large.
func (l *Library) FormatStrideForWidth(format native.Format, width int) int {
	return strideForWidth(format, width)
}

func strideForWidth(format native.Format, width int) int {
	bpp := format.BitsPerPixel()
	if bpp == 0 || width < 0 {
		return -1
	}
	if width >= (math.MaxInt32-7)/bpp {
		return -1
	}
	return ((bpp*width+7)/8 + strideAlignment - 1) &^ (strideAlignment - 1)
}

// strideFits reports whether stride is non-negative and stride*height
// fits in a C int.
func strideFits(stride, height int) bool {
	if stride < 0 || stride > math.MaxInt32 {
		return false
	}
	return height <= 0 || stride <= math.MaxInt32/height
}

func imageSizeValid(width, height int) bool {
	return 0 <= width && width <= maxImageSize &&
		0 <= height && height <= maxImageSize
}
