package cairo

import (
	"errors"

	"github.com/cairomm/cairomm/cairogo/native"
)

// ErrLibraryMismatch is returned when an operation combines objects that
// belong to different native libraries.
var ErrLibraryMismatch = errors.New("cairo: objects belong to different libraries")

// Error reports an abnormal cairo status after the operation Op.
// errors.Is(err, StatusSurfaceFinished) and the like match on Status.
type Error struct {
	Op     string
	Status Status

	// Err is an underlying Go error, if the status was caused by one.
	Err error
}

func (e *Error) Error() string {
	msg := "cairo: " + e.Op + ": " + e.Status.String()
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() []error {
	if e.Err != nil {
		return []error{e.Status, e.Err}
	}
	return []error{e.Status}
}

// checkStatus turns a status read right after the native call for op into
// an error.
func checkStatus(op string, st native.Status) error {
	if st == native.StatusSuccess {
		return nil
	}
	Logger().Debug("cairo: abnormal status", "op", op, "status", st.String())
	return &Error{Op: op, Status: st}
}
