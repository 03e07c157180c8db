package native

// Format is the pixel format of an image surface (cairo_format_t).
type Format int

const (
	FormatInvalid   Format = -1
	FormatARGB32    Format = 0
	FormatRGB24     Format = 1
	FormatA8        Format = 2
	FormatA1        Format = 3
	FormatRGB16_565 Format = 4
	FormatRGB30     Format = 5
	FormatRGB96F    Format = 6
	FormatRGBA128F  Format = 7
)

// Valid reports whether f names a pixel format.
func (f Format) Valid() bool {
	return f >= FormatARGB32 && f <= FormatRGBA128F
}

// BitsPerPixel returns the storage size of one pixel, or 0 for an invalid
// format.
func (f Format) BitsPerPixel() int {
	switch f {
	case FormatARGB32, FormatRGB24, FormatRGB30:
		return 32
	case FormatRGB16_565:
		return 16
	case FormatA8:
		return 8
	case FormatA1:
		return 1
	case FormatRGB96F:
		return 96
	case FormatRGBA128F:
		return 128
	default:
		return 0
	}
}

// Content returns the content a surface of format f holds.
func (f Format) Content() Content {
	switch f {
	case FormatARGB32, FormatRGBA128F:
		return ContentColorAlpha
	case FormatA8, FormatA1:
		return ContentAlpha
	default:
		return ContentColor
	}
}

func (f Format) String() string {
	switch f {
	case FormatARGB32:
		return "ARGB32"
	case FormatRGB24:
		return "RGB24"
	case FormatA8:
		return "A8"
	case FormatA1:
		return "A1"
	case FormatRGB16_565:
		return "RGB16_565"
	case FormatRGB30:
		return "RGB30"
	case FormatRGB96F:
		return "RGB96F"
	case FormatRGBA128F:
		return "RGBA128F"
	default:
		return "Invalid"
	}
}

// Content describes whether a surface holds color, alpha or both
// (cairo_content_t).
type Content int

const (
	ContentColor      Content = 0x1000
	ContentAlpha      Content = 0x2000
	ContentColorAlpha Content = 0x3000
)

// Valid reports whether c is one of the three content values.
func (c Content) Valid() bool {
	return c == ContentColor || c == ContentAlpha || c == ContentColorAlpha
}

// Format returns the image format cairo picks for a similar image surface
// of content c.
func (c Content) Format() Format {
	switch c {
	case ContentColor:
		return FormatRGB24
	case ContentAlpha:
		return FormatA8
	case ContentColorAlpha:
		return FormatARGB32
	default:
		return FormatInvalid
	}
}

func (c Content) String() string {
	switch c {
	case ContentColor:
		return "Color"
	case ContentAlpha:
		return "Alpha"
	case ContentColorAlpha:
		return "ColorAlpha"
	default:
		return "Invalid"
	}
}

// Antialias is the antialiasing mode (cairo_antialias_t).
type Antialias int

const (
	AntialiasDefault Antialias = iota
	AntialiasNone
	AntialiasGray
	AntialiasSubpixel
	AntialiasFast
	AntialiasGood
	AntialiasBest
)

func (a Antialias) String() string {
	switch a {
	case AntialiasDefault:
		return "Default"
	case AntialiasNone:
		return "None"
	case AntialiasGray:
		return "Gray"
	case AntialiasSubpixel:
		return "Subpixel"
	case AntialiasFast:
		return "Fast"
	case AntialiasGood:
		return "Good"
	case AntialiasBest:
		return "Best"
	default:
		return unknownStr
	}
}

// SubpixelOrder is the order of color elements within each pixel of the
// display device (cairo_subpixel_order_t).
type SubpixelOrder int

const (
	SubpixelOrderDefault SubpixelOrder = iota
	SubpixelOrderRGB
	SubpixelOrderBGR
	SubpixelOrderVRGB
	SubpixelOrderVBGR
)

func (o SubpixelOrder) String() string {
	switch o {
	case SubpixelOrderDefault:
		return "Default"
	case SubpixelOrderRGB:
		return "RGB"
	case SubpixelOrderBGR:
		return "BGR"
	case SubpixelOrderVRGB:
		return "VRGB"
	case SubpixelOrderVBGR:
		return "VBGR"
	default:
		return unknownStr
	}
}

// HintStyle is the amount of outline hinting (cairo_hint_style_t).
type HintStyle int

const (
	HintStyleDefault HintStyle = iota
	HintStyleNone
	HintStyleSlight
	HintStyleMedium
	HintStyleFull
)

func (h HintStyle) String() string {
	switch h {
	case HintStyleDefault:
		return "Default"
	case HintStyleNone:
		return "None"
	case HintStyleSlight:
		return "Slight"
	case HintStyleMedium:
		return "Medium"
	case HintStyleFull:
		return "Full"
	default:
		return unknownStr
	}
}

// HintMetrics selects whether font metrics are quantized to integer device
// units (cairo_hint_metrics_t).
type HintMetrics int

const (
	HintMetricsDefault HintMetrics = iota
	HintMetricsOff
	HintMetricsOn
)

func (m HintMetrics) String() string {
	switch m {
	case HintMetricsDefault:
		return "Default"
	case HintMetricsOff:
		return "Off"
	case HintMetricsOn:
		return "On"
	default:
		return unknownStr
	}
}

// SurfaceType is the backend kind of a surface (cairo_surface_type_t).
type SurfaceType int

const (
	SurfaceTypeImage SurfaceType = iota
	SurfaceTypePDF
	SurfaceTypePS
	SurfaceTypeXlib
	SurfaceTypeXCB
	SurfaceTypeGlitz
	SurfaceTypeQuartz
	SurfaceTypeWin32
	SurfaceTypeBeOS
	SurfaceTypeDirectFB
	SurfaceTypeSVG
	SurfaceTypeOS2
	SurfaceTypeWin32Printing
	SurfaceTypeQuartzImage
	SurfaceTypeScript
	SurfaceTypeQt
	SurfaceTypeRecording
	SurfaceTypeVG
	SurfaceTypeGL
	SurfaceTypeDRM
	SurfaceTypeTee
	SurfaceTypeXML
	SurfaceTypeSkia
	SurfaceTypeSubsurface
	SurfaceTypeCOGL
)

const unknownStr = "Unknown"
