package softcairo

import (
	"encoding/binary"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"github.com/cairomm/cairomm/cairogo/native"
)

// image copies the pixels of s into a Go image. Pixel words are read in
// host byte order, as cairo stores them.
func (s *surface) image() image.Image {
	rect := image.Rect(0, 0, s.width, s.height)
	switch s.format {
	case native.FormatARGB32, native.FormatRGB24:
		// Both formats are premultiplied, as is image.RGBA.
		img := image.NewRGBA(rect)
		s.eachRow(func(y int, row []byte) {
			for x := 0; x < s.width; x++ {
				p := binary.NativeEndian.Uint32(row[4*x:])
				a := uint8(p >> 24)
				if s.format == native.FormatRGB24 {
					a = 0xff
				}
				img.SetRGBA(x, y, color.RGBA{R: uint8(p >> 16), G: uint8(p >> 8), B: uint8(p), A: a})
			}
		})
		return img
	case native.FormatA8:
		img := image.NewAlpha(rect)
		s.eachRow(func(y int, row []byte) {
			copy(img.Pix[y*img.Stride:], row[:s.width])
		})
		return img
	case native.FormatA1:
		img := image.NewAlpha(rect)
		s.eachRow(func(y int, row []byte) {
			for x := 0; x < s.width; x++ {
				if row[x/8]&(1<<(x%8)) != 0 {
					img.Pix[y*img.Stride+x] = 0xff
				}
			}
		})
		return img
	case native.FormatRGB16_565:
		img := image.NewRGBA(rect)
		s.eachRow(func(y int, row []byte) {
			for x := 0; x < s.width; x++ {
				p := binary.NativeEndian.Uint16(row[2*x:])
				r, g, b := p>>11&0x1f, p>>5&0x3f, p&0x1f
				img.SetRGBA(x, y, color.RGBA{
					R: uint8(r<<3 | r>>2),
					G: uint8(g<<2 | g>>4),
					B: uint8(b<<3 | b>>2),
					A: 0xff,
				})
			}
		})
		return img
	case native.FormatRGB30:
		img := image.NewRGBA64(rect)
		s.eachRow(func(y int, row []byte) {
			for x := 0; x < s.width; x++ {
				p := binary.NativeEndian.Uint32(row[4*x:])
				img.SetRGBA64(x, y, color.RGBA64{
					R: expand10(p >> 20),
					G: expand10(p >> 10),
					B: expand10(p),
					A: 0xffff,
				})
			}
		})
		return img
	case native.FormatRGB96F, native.FormatRGBA128F:
		channels := s.format.BitsPerPixel() / 32
		img := image.NewRGBA64(rect)
		s.eachRow(func(y int, row []byte) {
			for x := 0; x < s.width; x++ {
				px := row[4*channels*x:]
				c := color.RGBA64{
					R: unitToUint16(px[0:]),
					G: unitToUint16(px[4:]),
					B: unitToUint16(px[8:]),
					A: 0xffff,
				}
				if channels == 4 {
					c.A = unitToUint16(px[12:])
				}
				img.SetRGBA64(x, y, c)
			}
		})
		return img
	}
	return image.NewRGBA(image.Rectangle{})
}

func (s *surface) eachRow(fn func(y int, row []byte)) {
	if s.data == nil {
		return
	}
	for y := 0; y < s.height; y++ {
		fn(y, s.data[y*s.stride:])
	}
}

func expand10(v uint32) uint16 {
	v &= 0x3ff
	return uint16(v<<6 | v>>4)
}

// unitToUint16 reads a host-order float32 in [0, 1].
func unitToUint16(b []byte) uint16 {
	f := math.Float32frombits(binary.NativeEndian.Uint32(b))
	switch {
	case !(f > 0):
		return 0
	case f >= 1:
		return 0xffff
	}
	return uint16(f*0xffff + 0.5)
}

func encodePNG(w io.Writer, img image.Image) native.Status {
	if err := png.Encode(w, img); err != nil {
		return native.StatusWriteError
	}
	return native.StatusSuccess
}
