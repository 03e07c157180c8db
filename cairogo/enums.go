package cairo

import "github.com/cairomm/cairomm/cairogo/native"

// The enumerations are defined by the native boundary; they are repeated
// here so that callers need not import it.
type (
	Status        = native.Status
	Format        = native.Format
	Content       = native.Content
	Antialias     = native.Antialias
	SubpixelOrder = native.SubpixelOrder
	HintStyle     = native.HintStyle
	HintMetrics   = native.HintMetrics
	SurfaceType   = native.SurfaceType
	UserDataKey   = native.UserDataKey
)

const (
	StatusSuccess                 = native.StatusSuccess
	StatusNoMemory                = native.StatusNoMemory
	StatusInvalidRestore          = native.StatusInvalidRestore
	StatusInvalidPopGroup         = native.StatusInvalidPopGroup
	StatusNoCurrentPoint          = native.StatusNoCurrentPoint
	StatusInvalidMatrix           = native.StatusInvalidMatrix
	StatusInvalidStatus           = native.StatusInvalidStatus
	StatusNullPointer             = native.StatusNullPointer
	StatusInvalidString           = native.StatusInvalidString
	StatusInvalidPathData         = native.StatusInvalidPathData
	StatusReadError               = native.StatusReadError
	StatusWriteError              = native.StatusWriteError
	StatusSurfaceFinished         = native.StatusSurfaceFinished
	StatusSurfaceTypeMismatch     = native.StatusSurfaceTypeMismatch
	StatusPatternTypeMismatch     = native.StatusPatternTypeMismatch
	StatusInvalidContent          = native.StatusInvalidContent
	StatusInvalidFormat           = native.StatusInvalidFormat
	StatusInvalidVisual           = native.StatusInvalidVisual
	StatusFileNotFound            = native.StatusFileNotFound
	StatusInvalidDash             = native.StatusInvalidDash
	StatusInvalidDSCComment       = native.StatusInvalidDSCComment
	StatusInvalidIndex            = native.StatusInvalidIndex
	StatusClipNotRepresentable    = native.StatusClipNotRepresentable
	StatusTempFileError           = native.StatusTempFileError
	StatusInvalidStride           = native.StatusInvalidStride
	StatusFontTypeMismatch        = native.StatusFontTypeMismatch
	StatusUserFontImmutable       = native.StatusUserFontImmutable
	StatusUserFontError           = native.StatusUserFontError
	StatusNegativeCount           = native.StatusNegativeCount
	StatusInvalidClusters         = native.StatusInvalidClusters
	StatusInvalidSlant            = native.StatusInvalidSlant
	StatusInvalidWeight           = native.StatusInvalidWeight
	StatusInvalidSize             = native.StatusInvalidSize
	StatusUserFontNotImplemented  = native.StatusUserFontNotImplemented
	StatusDeviceTypeMismatch      = native.StatusDeviceTypeMismatch
	StatusDeviceError             = native.StatusDeviceError
	StatusInvalidMeshConstruction = native.StatusInvalidMeshConstruction
	StatusDeviceFinished          = native.StatusDeviceFinished
	StatusJBIG2GlobalMissing      = native.StatusJBIG2GlobalMissing
	StatusPNGError                = native.StatusPNGError
	StatusFreetypeError           = native.StatusFreetypeError
	StatusWin32GDIError           = native.StatusWin32GDIError
	StatusTagError                = native.StatusTagError
)

const (
	FormatInvalid   = native.FormatInvalid
	FormatARGB32    = native.FormatARGB32
	FormatRGB24     = native.FormatRGB24
	FormatA8        = native.FormatA8
	FormatA1        = native.FormatA1
	FormatRGB16_565 = native.FormatRGB16_565
	FormatRGB30     = native.FormatRGB30
	FormatRGB96F    = native.FormatRGB96F
	FormatRGBA128F  = native.FormatRGBA128F
)

const (
	ContentColor      = native.ContentColor
	ContentAlpha      = native.ContentAlpha
	ContentColorAlpha = native.ContentColorAlpha
)

const (
	AntialiasDefault  = native.AntialiasDefault
	AntialiasNone     = native.AntialiasNone
	AntialiasGray     = native.AntialiasGray
	AntialiasSubpixel = native.AntialiasSubpixel
	AntialiasFast     = native.AntialiasFast
	AntialiasGood     = native.AntialiasGood
	AntialiasBest     = native.AntialiasBest
)

const (
	SubpixelOrderDefault = native.SubpixelOrderDefault
	SubpixelOrderRGB     = native.SubpixelOrderRGB
	SubpixelOrderBGR     = native.SubpixelOrderBGR
	SubpixelOrderVRGB    = native.SubpixelOrderVRGB
	SubpixelOrderVBGR    = native.SubpixelOrderVBGR
)

const (
	HintStyleDefault = native.HintStyleDefault
	HintStyleNone    = native.HintStyleNone
	HintStyleSlight  = native.HintStyleSlight
	HintStyleMedium  = native.HintStyleMedium
	HintStyleFull    = native.HintStyleFull
)

const (
	HintMetricsDefault = native.HintMetricsDefault
	HintMetricsOff     = native.HintMetricsOff
	HintMetricsOn      = native.HintMetricsOn
)

const (
	SurfaceTypeImage     = native.SurfaceTypeImage
	SurfaceTypePDF       = native.SurfaceTypePDF
	SurfaceTypePS        = native.SurfaceTypePS
	SurfaceTypeSVG       = native.SurfaceTypeSVG
	SurfaceTypeRecording = native.SurfaceTypeRecording
)
