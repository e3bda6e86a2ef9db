package tga

import (
	"bytes"
	"encoding/binary"
	"io"
)

// fieldWriter writes little-endian fields to w, counting the bytes accepted.
type fieldWriter struct {
	w   io.Writer
	n   int64
	tmp [4]byte
}

func (fw *fieldWriter) write(b []byte) error {
	n, err := fw.w.Write(b)
	fw.n += int64(n)
	if err == nil && n < len(b) {
		err = io.ErrShortWrite
	}
	return err
}

func (fw *fieldWriter) writeUint8(v uint8) error {
	fw.tmp[0] = v
	return fw.write(fw.tmp[:1])
}

func (fw *fieldWriter) writeUint16(v uint16) error {
	binary.LittleEndian.PutUint16(fw.tmp[:2], v)
	return fw.write(fw.tmp[:2])
}

func (fw *fieldWriter) writeUint32(v uint32) error {
	binary.LittleEndian.PutUint32(fw.tmp[:4], v)
	return fw.write(fw.tmp[:4])
}

type encodable interface {
	encode(*fieldWriter) error
}

func writeTo(w io.Writer, e encodable) (int64, error) {
	fw := fieldWriter{w: w}
	err := e.encode(&fw)
	return fw.n, err
}

func marshal(e encodable, size int) ([]byte, error) {
	b := bytes.NewBuffer(make([]byte, 0, size))
	if _, err := writeTo(b, e); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}

// ColorMapSpecification describes the color map, it is always zero-valued as
// the encoder never writes one.
type ColorMapSpecification struct {
	FirstEntryIndex uint16
	EntryCount      uint16
	ColorDepth      BitDepth
}

func (s ColorMapSpecification) encode(fw *fieldWriter) error {
	if err := fw.writeUint16(s.FirstEntryIndex); err != nil {
		return err
	}
	if err := fw.writeUint16(s.EntryCount); err != nil {
		return err
	}
	return fw.writeUint8(uint8(s.ColorDepth))
}

// WriteTo writes the 5 byte color map specification to w.
func (s ColorMapSpecification) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, s)
}

// MarshalBinary encodes the color map specification into binary form.
func (s ColorMapSpecification) MarshalBinary() ([]byte, error) {
	return marshal(s, 5)
}

// ImageSpecification describes the position, dimensions and pixel format of
// the image.
type ImageSpecification struct {
	XOrigin    uint16
	YOrigin    uint16
	Width      uint16
	Height     uint16
	PixelDepth BitDepth
	Descriptor ImageDescriptor
}

func (s ImageSpecification) encode(fw *fieldWriter) error {
	for _, v := range [...]uint16{s.XOrigin, s.YOrigin, s.Width, s.Height} {
		if err := fw.writeUint16(v); err != nil {
			return err
		}
	}
	if err := fw.writeUint8(uint8(s.PixelDepth)); err != nil {
		return err
	}
	return fw.writeUint8(uint8(s.Descriptor))
}

// WriteTo writes the 10 byte image specification to w.
func (s ImageSpecification) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, s)
}

// MarshalBinary encodes the image specification into binary form.
func (s ImageSpecification) MarshalBinary() ([]byte, error) {
	return marshal(s, 10)
}

// Header is the fixed 18 byte record at the start of every file.
type Header struct {
	IDLength              uint8
	ColorMapType          ColorMapType
	ImageType             ImageType
	ColorMapSpecification ColorMapSpecification
	ImageSpecification    ImageSpecification
}

// NewHeader returns the header for a width by height image in the only
// supported profile.
func NewHeader(width, height uint16) Header {
	return Header{
		ColorMapType: ColorMapAbsent,
		ImageType:    ImageTrueColor,
		ImageSpecification: ImageSpecification{
			Width:      width,
			Height:     height,
			PixelDepth: DefaultBitDepth,
			Descriptor: DefaultDescriptor,
		},
	}
}

func (h Header) encode(fw *fieldWriter) error {
	for _, v := range [...]uint8{h.IDLength, uint8(h.ColorMapType), uint8(h.ImageType)} {
		if err := fw.writeUint8(v); err != nil {
			return err
		}
	}
	if err := h.ColorMapSpecification.encode(fw); err != nil {
		return err
	}
	return h.ImageSpecification.encode(fw)
}

// WriteTo writes the header to w.
func (h Header) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, h)
}

// MarshalBinary encodes the header into binary form.
func (h Header) MarshalBinary() ([]byte, error) {
	return marshal(h, HeaderSize)
}

// Footer is the TGA 2.0 trailer written after the image data.
type Footer struct {
	ExtensionOffset uint32
	DeveloperOffset uint32
	Signature       [16]byte
	Dot             byte
	Nul             byte
}

// NewFooter returns a footer with no extension or developer area.
func NewFooter() Footer {
	f := Footer{
		Dot: '.',
		Nul: 0,
	}
	copy(f.Signature[:], Signature)
	return f
}

func (f Footer) encode(fw *fieldWriter) error {
	if err := fw.writeUint32(f.ExtensionOffset); err != nil {
		return err
	}
	if err := fw.writeUint32(f.DeveloperOffset); err != nil {
		return err
	}
	if err := fw.write(f.Signature[:]); err != nil {
		return err
	}
	if err := fw.writeUint8(f.Dot); err != nil {
		return err
	}
	return fw.writeUint8(f.Nul)
}

// WriteTo writes the footer to w.
func (f Footer) WriteTo(w io.Writer) (int64, error) {
	return writeTo(w, f)
}

// MarshalBinary encodes the footer into binary form.
func (f Footer) MarshalBinary() ([]byte, error) {
	return marshal(f, FooterSize)
}
