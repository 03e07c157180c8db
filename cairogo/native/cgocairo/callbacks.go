//go:build cairo

package cgocairo

/*
#include <cairo.h>
*/
import "C"

import (
	"io"
	"unsafe"
)

//export cairogoWrite
func cairogoWrite(closure unsafe.Pointer, data *C.uchar, length C.uint) C.cairo_status_t {
	w := handleFromCell(closure).Value().(io.Writer)
	if _, err := w.Write(C.GoBytes(unsafe.Pointer(data), C.int(length))); err != nil {
		return C.CAIRO_STATUS_WRITE_ERROR
	}
	return C.CAIRO_STATUS_SUCCESS
}

//export cairogoDestroyUserData
func cairogoDestroyUserData(cell unsafe.Pointer) {
	slot := handleFromCell(cell).Value().(userDataSlot)
	freeHandleCell(cell)
	if slot.destroy != nil {
		slot.destroy(slot.data)
	}
}
