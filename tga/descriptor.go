package tga

const (
	alphaDepthBitmask         = 0b00001111
	horizontalOrderingBitmask = 0b00010000
	verticalOrderingBitmask   = 0b00100000
)

// ImageDescriptor is the packed flag byte of the image specification.
//
// Bits 0-3 hold the alpha channel depth, bit 4 is set for right-to-left
// pixel ordering and bit 5 is set for top-to-bottom row ordering. Bits 6 and
// 7 are always zero.
type ImageDescriptor uint8

// DefaultDescriptor is the descriptor written by the encoder: 8-bit alpha,
// left-to-right, top-to-bottom.
const DefaultDescriptor ImageDescriptor = 0b00101000

// PackDescriptor builds an ImageDescriptor. The alpha depth is not checked,
// anything above 15 will spill into the ordering bits.
func PackDescriptor(alpha BitDepth, h HorizontalOrdering, v VerticalOrdering) ImageDescriptor {
	value := uint8(alpha)

	if h == RightToLeft {
		value |= horizontalOrderingBitmask
	}

	if v == TopToBottom {
		value |= verticalOrderingBitmask
	}

	return ImageDescriptor(value)
}

// AlphaDepth returns the number of alpha bits per pixel.
func (d ImageDescriptor) AlphaDepth() BitDepth {
	return BitDepth(d & alphaDepthBitmask)
}

// HorizontalOrdering returns the pixel ordering within a row.
func (d ImageDescriptor) HorizontalOrdering() HorizontalOrdering {
	if d&horizontalOrderingBitmask != 0 {
		return RightToLeft
	}
	return LeftToRight
}

// VerticalOrdering returns the row ordering.
func (d ImageDescriptor) VerticalOrdering() VerticalOrdering {
	if d&verticalOrderingBitmask != 0 {
		return TopToBottom
	}
	return BottomToTop
}
