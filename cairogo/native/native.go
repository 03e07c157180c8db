// Package native describes the boundary between the cairo bindings and the
// library that actually owns surfaces and font options.
//
// Every native object is reached through an opaque handle and a Library.
// The zero handle is the null object: a Library reports StatusNullPointer for
// it and treats every other operation on it as a no-op.
package native

import "io"

// FontOptionsHandle is an opaque reference to a native font options object.
type FontOptionsHandle uintptr

// SurfaceHandle is an opaque reference to a native surface.
type SurfaceHandle uintptr

// UserDataKey identifies a user data slot on a surface. Only the address of
// a key is significant; keys are usually package-level variables.
type UserDataKey struct {
	_ int
}

// DestroyFunc is called with the user data when it is released by the
// surface, either because the key was overwritten or the surface was freed.
type DestroyFunc func(data any)

// Library is the set of native calls the bindings make. The method set
// mirrors cairo's C API one call per method; implementations must not add
// behavior of their own beyond what cairo documents.
//
// Reference counting and object creation and destruction must be safe for
// concurrent use. Other calls on the same object need not be.
type Library interface {
	// Name identifies the implementation, for logging.
	Name() string

	FontOptionsCreate() FontOptionsHandle
	FontOptionsCopy(original FontOptionsHandle) FontOptionsHandle
	FontOptionsDestroy(options FontOptionsHandle)
	FontOptionsStatus(options FontOptionsHandle) Status
	FontOptionsMerge(options, other FontOptionsHandle)
	FontOptionsEqual(options, other FontOptionsHandle) bool
	FontOptionsHash(options FontOptionsHandle) uint64
	FontOptionsSetAntialias(options FontOptionsHandle, antialias Antialias)
	FontOptionsGetAntialias(options FontOptionsHandle) Antialias
	FontOptionsSetSubpixelOrder(options FontOptionsHandle, order SubpixelOrder)
	FontOptionsGetSubpixelOrder(options FontOptionsHandle) SubpixelOrder
	FontOptionsSetHintStyle(options FontOptionsHandle, style HintStyle)
	FontOptionsGetHintStyle(options FontOptionsHandle) HintStyle
	FontOptionsSetHintMetrics(options FontOptionsHandle, metrics HintMetrics)
	FontOptionsGetHintMetrics(options FontOptionsHandle) HintMetrics

	FormatStrideForWidth(format Format, width int) int
	ImageSurfaceCreate(format Format, width, height int) SurfaceHandle
	ImageSurfaceCreateForData(data []byte, format Format, width, height, stride int) SurfaceHandle
	SurfaceCreateSimilar(other SurfaceHandle, content Content, width, height int) SurfaceHandle

	SurfaceReference(surface SurfaceHandle) SurfaceHandle
	SurfaceDestroy(surface SurfaceHandle)
	SurfaceGetReferenceCount(surface SurfaceHandle) int
	SurfaceStatus(surface SurfaceHandle) Status
	SurfaceFinish(surface SurfaceHandle)
	SurfaceFlush(surface SurfaceHandle)
	SurfaceGetUserData(surface SurfaceHandle, key *UserDataKey) any
	SurfaceSetUserData(surface SurfaceHandle, key *UserDataKey, data any, destroy DestroyFunc) Status
	SurfaceGetFontOptions(surface SurfaceHandle, options FontOptionsHandle)
	SurfaceMarkDirty(surface SurfaceHandle)
	SurfaceMarkDirtyRectangle(surface SurfaceHandle, x, y, width, height int)
	SurfaceSetDeviceOffset(surface SurfaceHandle, xOffset, yOffset float64)
	SurfaceGetDeviceOffset(surface SurfaceHandle) (xOffset, yOffset float64)
	SurfaceGetContent(surface SurfaceHandle) Content
	SurfaceGetType(surface SurfaceHandle) SurfaceType
	SurfaceWriteToPNGStream(surface SurfaceHandle, w io.Writer) Status

	ImageSurfaceGetData(surface SurfaceHandle) []byte
	ImageSurfaceGetFormat(surface SurfaceHandle) Format
	ImageSurfaceGetWidth(surface SurfaceHandle) int
	ImageSurfaceGetHeight(surface SurfaceHandle) int
	ImageSurfaceGetStride(surface SurfaceHandle) int
}

// Stats counts the live objects owned by a library.
type Stats struct {
	FontOptions int
	Surfaces    int
}

// Inspector is implemented by libraries that can count their live objects.
// cairo itself cannot, so only in-process implementations provide it.
type Inspector interface {
	Stats() Stats
}
