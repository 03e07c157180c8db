package cairo

import (
	"sync/atomic"

	"github.com/cairomm/cairomm/cairogo/native"
)

type libraryRef struct {
	native.Library
}

var libraryPtr atomic.Pointer[libraryRef]

func init() {
	libraryPtr.Store(&libraryRef{builtinLibrary})
}

// SetLibrary makes l the library used by constructors called afterwards.
// Existing objects keep the library they were created with. Passing nil
// restores the built-in library: libcairo when built with the "cairo" tag,
// softcairo otherwise.
func SetLibrary(l native.Library) {
	if l == nil {
		l = builtinLibrary
	}
	libraryPtr.Store(&libraryRef{l})
}

// DefaultLibrary returns the library used by constructors.
func DefaultLibrary() native.Library {
	return libraryPtr.Load().Library
}

// sameLibrary reports whether a and b are the same library instance.
func sameLibrary(a, b native.Library) bool {
	return a == b
}
