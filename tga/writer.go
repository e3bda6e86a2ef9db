package tga

import (
	"image"
	"image/color"
	"io"
)

// Image is an uncompressed 32-bit true-color TGA image. The pixel data is
// expected to be EffectiveSize(width, height) bytes of BGRA pixels, row-major
// with the top row first, however this is not checked.
type Image struct {
	data   []byte
	width  uint16
	height uint16
}

// EffectiveSize returns the size in bytes of the pixel data for an image
// with the given dimensions.
func EffectiveSize(width, height uint16) int {
	return int(width) * bytesPerPixel * int(height)
}

// FileSize returns the size in bytes of the encoded file for an image with
// the given dimensions.
func FileSize(width, height uint16) int {
	return HeaderSize + EffectiveSize(width, height) + FooterSize
}

// New returns an Image using data as its pixels. The slice is not copied.
func New(width, height uint16, data []byte) *Image {
	return &Image{
		data:   data,
		width:  width,
		height: height,
	}
}

// Width returns the width of the image in pixels.
func (m *Image) Width() uint16 {
	return m.width
}

// Height returns the height of the image in pixels.
func (m *Image) Height() uint16 {
	return m.height
}

// WriteTo writes the header, pixel data and footer to w, stopping at the
// first error. Any bytes already written are left in place.
func (m *Image) WriteTo(w io.Writer) (int64, error) {
	fw := fieldWriter{w: w}

	if err := NewHeader(m.width, m.height).encode(&fw); err != nil {
		return fw.n, err
	}

	if err := fw.write(m.data); err != nil {
		return fw.n, err
	}

	err := NewFooter().encode(&fw)
	return fw.n, err
}

func pixels(m image.Image) []byte {
	b := m.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*bytesPerPixel)

	if nrgba, ok := m.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			i := nrgba.PixOffset(b.Min.X, y)
			row := nrgba.Pix[i : i+b.Dx()*4]
			for x := 0; x < len(row); x += 4 {
				buf = append(buf, row[x+2], row[x+1], row[x], row[x+3])
			}
		}
		return buf
	}

	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(m.At(x, y)).(color.NRGBA)
			buf = append(buf, c.B, c.G, c.R, c.A)
		}
	}
	return buf
}

// Encode writes the Image m to w in TGA format.
func Encode(w io.Writer, m image.Image) error {
	b := m.Bounds()
	if b.Dx() > maxDimension || b.Dy() > maxDimension {
		return ErrTooLarge
	}

	_, err := New(uint16(b.Dx()), uint16(b.Dy()), pixels(m)).WriteTo(w)
	return err
}
