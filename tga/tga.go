/*
Package tga implements a Truevision TGA encoder for a single fixed profile.

Images are written uncompressed as 32-bit true-color pixels with an 8-bit
alpha channel. There is no image identifier, no color map and no extension or
developer area.

The file is written as an 18 byte header, followed by the pixel data stored as
4 bytes per pixel in BGRA order with the top row first, and finally a 26 byte
TGA 2.0 footer. The resulting file is therefore 44 bytes larger than the pixel
data.
*/
package tga

import "errors"

const (
	// HeaderSize is the size in bytes of the encoded Header
	HeaderSize = 18
	// FooterSize is the size in bytes of the encoded Footer
	FooterSize = 26

	bytesPerPixel = int(BitDepth32) >> 3
	maxDimension  = 1<<16 - 1
)

// Signature identifies the file as TGA 2.0, it is written in the footer.
const Signature = "TRUEVISION-XFILE"

// ErrTooLarge is returned by Encode when either dimension of the source image
// cannot be represented in the header.
var ErrTooLarge = errors.New("tga: image is too large")
