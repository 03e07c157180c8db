package native

import "strconv"

// Status is cairo's status code. The values match cairo_status_t.
//
// Status implements error so that a status can be matched with errors.Is
// anywhere in a chain of wrapped errors.
type Status int

const (
	StatusSuccess Status = iota
	StatusNoMemory
	StatusInvalidRestore
	StatusInvalidPopGroup
	StatusNoCurrentPoint
	StatusInvalidMatrix
	StatusInvalidStatus
	StatusNullPointer
	StatusInvalidString
	StatusInvalidPathData
	StatusReadError
	StatusWriteError
	StatusSurfaceFinished
	StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch
	StatusInvalidContent
	StatusInvalidFormat
	StatusInvalidVisual
	StatusFileNotFound
	StatusInvalidDash
	StatusInvalidDSCComment
	StatusInvalidIndex
	StatusClipNotRepresentable
	StatusTempFileError
	StatusInvalidStride
	StatusFontTypeMismatch
	StatusUserFontImmutable
	StatusUserFontError
	StatusNegativeCount
	StatusInvalidClusters
	StatusInvalidSlant
	StatusInvalidWeight
	StatusInvalidSize
	StatusUserFontNotImplemented
	StatusDeviceTypeMismatch
	StatusDeviceError
	StatusInvalidMeshConstruction
	StatusDeviceFinished
	StatusJBIG2GlobalMissing
	StatusPNGError
	StatusFreetypeError
	StatusWin32GDIError
	StatusTagError

	statusLast
)

var statusText = [...]string{
	StatusSuccess:                 "no error has occurred",
	StatusNoMemory:                "out of memory",
	StatusInvalidRestore:          "cairo_restore() without matching cairo_save()",
	StatusInvalidPopGroup:         "no saved group to pop",
	StatusNoCurrentPoint:          "no current point defined",
	StatusInvalidMatrix:           "invalid matrix (not invertible)",
	StatusInvalidStatus:           "invalid value for an input cairo_status_t",
	StatusNullPointer:             "NULL pointer",
	StatusInvalidString:           "input string not valid UTF-8",
	StatusInvalidPathData:         "input path data not valid",
	StatusReadError:               "error while reading from input stream",
	StatusWriteError:              "error while writing to output stream",
	StatusSurfaceFinished:         "the target surface has been finished",
	StatusSurfaceTypeMismatch:     "the surface type is not appropriate for the operation",
	StatusPatternTypeMismatch:     "the pattern type is not appropriate for the operation",
	StatusInvalidContent:          "invalid value for an input cairo_content_t",
	StatusInvalidFormat:           "invalid value for an input cairo_format_t",
	StatusInvalidVisual:           "invalid value for an input Visual*",
	StatusFileNotFound:            "file not found",
	StatusInvalidDash:             "invalid value for a dash setting",
	StatusInvalidDSCComment:       "invalid value for a DSC comment",
	StatusInvalidIndex:            "invalid index passed to getter",
	StatusClipNotRepresentable:    "clip region not representable in desired format",
	StatusTempFileError:           "error creating or writing to a temporary file",
	StatusInvalidStride:           "invalid value for stride",
	StatusFontTypeMismatch:        "the font type is not appropriate for the operation",
	StatusUserFontImmutable:       "the user-font is immutable",
	StatusUserFontError:           "error occurred in a user-font callback function",
	StatusNegativeCount:           "negative number used where it is not allowed",
	StatusInvalidClusters:         "input clusters do not represent the accompanying text and glyph arrays",
	StatusInvalidSlant:            "invalid value for an input cairo_font_slant_t",
	StatusInvalidWeight:           "invalid value for an input cairo_font_weight_t",
	StatusInvalidSize:             "invalid value (typically too big) for the size of the input (surface, pattern, etc.)",
	StatusUserFontNotImplemented:  "user-font method not implemented",
	StatusDeviceTypeMismatch:      "the device type is not appropriate for the operation",
	StatusDeviceError:             "an operation to the device caused an unspecified error",
	StatusInvalidMeshConstruction: "invalid operation during mesh pattern construction",
	StatusDeviceFinished:          "the target device has been finished",
	StatusJBIG2GlobalMissing:      "CAIRO_MIME_TYPE_JBIG2_GLOBAL_ID used but no CAIRO_MIME_TYPE_JBIG2_GLOBAL data provided",
	StatusPNGError:                "error occurred in libpng while reading from or writing to a PNG file",
	StatusFreetypeError:           "error occurred in libfreetype",
	StatusWin32GDIError:           "error occurred in the Windows Graphics Device Interface",
	StatusTagError:                "invalid tag name, attributes, or nesting",
}

// String returns the text cairo_status_to_string gives for s.
func (s Status) String() string {
	if s >= 0 && s < statusLast {
		return statusText[s]
	}
	return "<unknown error status " + strconv.Itoa(int(s)) + ">"
}

func (s Status) Error() string {
	return s.String()
}

// OK reports whether s is StatusSuccess.
func (s Status) OK() bool {
	return s == StatusSuccess
}
