//go:build cairo

package cgocairo

/*
#include <stdint.h>
#include <stdlib.h>
#include <cairo.h>
*/
import "C"

import (
	"runtime/cgo"
	"sync"
	"unsafe"

	"github.com/cairomm/cairomm/cairogo/native"
)

// userDataSlot is what a surface's user data pointer refers to on the Go
// side.
type userDataSlot struct {
	data    any
	destroy native.DestroyFunc
}

// newHandleCell stores h in C memory so its address can travel as a
// closure or user data pointer. The cell is freed with freeHandleCell.
func newHandleCell(h cgo.Handle) unsafe.Pointer {
	cell := C.malloc(C.size_t(unsafe.Sizeof(C.uintptr_t(0))))
	*(*C.uintptr_t)(cell) = C.uintptr_t(h)
	return cell
}

func handleFromCell(cell unsafe.Pointer) cgo.Handle {
	return cgo.Handle(*(*C.uintptr_t)(cell))
}

// freeHandleCell deletes the handle in cell and frees the cell.
func freeHandleCell(cell unsafe.Pointer) {
	handleFromCell(cell).Delete()
	C.free(cell)
}

// cKeys maps Go keys to the C keys cairo compares by address. C keys are
// never freed; there is one per distinct Go key.
var (
	cKeysMu sync.Mutex
	cKeys   = make(map[*native.UserDataKey]*C.cairo_user_data_key_t)
)

// cKey returns the C key for key, allocating it if create is set.
func cKey(key *native.UserDataKey, create bool) *C.cairo_user_data_key_t {
	cKeysMu.Lock()
	defer cKeysMu.Unlock()

	if k, ok := cKeys[key]; ok || !create {
		return k
	}
	k := (*C.cairo_user_data_key_t)(C.calloc(1, C.size_t(unsafe.Sizeof(C.cairo_user_data_key_t{}))))
	cKeys[key] = k
	return k
}
