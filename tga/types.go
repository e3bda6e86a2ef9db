package tga

import "strconv"

// BitDepth is the number of bits used by a pixel or channel.
type BitDepth uint8

// Bit depths used by the encoder.
const (
	BitDepth8  BitDepth = 8
	BitDepth32 BitDepth = 32

	DefaultBitDepth = BitDepth32
)

func (d BitDepth) String() string {
	return strconv.Itoa(int(d)) + "-bit"
}

// ColorMapType indicates whether a color map is included.
type ColorMapType uint8

// ColorMapAbsent means there is no color map, it is the default.
const ColorMapAbsent ColorMapType = 0

func (t ColorMapType) String() string {
	if t == ColorMapAbsent {
		return "absent"
	}
	return "ColorMapType(" + strconv.Itoa(int(t)) + ")"
}

// ImageType identifies the pixel format and compression of the image data.
type ImageType uint8

// ImageTrueColor is uncompressed true-color, it is the default.
const ImageTrueColor ImageType = 2

func (t ImageType) String() string {
	if t == ImageTrueColor {
		return "true-color"
	}
	return "ImageType(" + strconv.Itoa(int(t)) + ")"
}

// HorizontalOrdering is the order pixels are stored within a row.
type HorizontalOrdering int

// The zero value is LeftToRight.
const (
	LeftToRight HorizontalOrdering = iota
	RightToLeft
)

func (o HorizontalOrdering) String() string {
	if o == RightToLeft {
		return "right-to-left"
	}
	return "left-to-right"
}

// VerticalOrdering is the order rows are stored.
type VerticalOrdering int

// The zero value is BottomToTop, the TGA default.
const (
	BottomToTop VerticalOrdering = iota
	TopToBottom
)

func (o VerticalOrdering) String() string {
	if o == TopToBottom {
		return "top-to-bottom"
	}
	return "bottom-to-top"
}
