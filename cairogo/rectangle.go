package cairo

import "image"

// Rectangle is an area of device space in whole pixels. A rectangle with a
// width or height of zero or less is empty.
type Rectangle struct {
	X, Y          int
	Width, Height int
}

// RectangleFromImage converts an image.Rectangle, which names its corners,
// into a Rectangle.
func RectangleFromImage(r image.Rectangle) Rectangle {
	r = r.Canon()
	return Rectangle{X: r.Min.X, Y: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

// Image returns r as an image.Rectangle.
func (r Rectangle) Image() image.Rectangle {
	return image.Rect(r.X, r.Y, r.X+r.Width, r.Y+r.Height)
}

// Empty reports whether r contains no pixels.
func (r Rectangle) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
