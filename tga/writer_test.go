package tga

import (
	"bytes"
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func footer() []byte {
	return append(append([]byte{0, 0, 0, 0, 0, 0, 0, 0}, "TRUEVISION-XFILE"...), '.', 0)
}

func TestEffectiveSize(t *testing.T) {
	tables := []struct {
		width, height uint16
		size          int
	}{
		{0, 0, 0},
		{1, 1, 4},
		{0, 100, 0},
		{3, 5, 60},
		{640, 480, 1228800},
		{65535, 2, 524280},
	}

	for _, table := range tables {
		assert.Equal(t, table.size, EffectiveSize(table.width, table.height))
		assert.Equal(t, HeaderSize+table.size+FooterSize, FileSize(table.width, table.height))
	}
}

func TestWriteTo(t *testing.T) {
	m := New(1, 1, []byte{0x11, 0x22, 0x33, 0x44})
	assert.Equal(t, uint16(1), m.Width())
	assert.Equal(t, uint16(1), m.Height())

	buf := new(bytes.Buffer)
	n, err := m.WriteTo(buf)
	require.Nil(t, err)
	assert.Equal(t, int64(48), n)

	want := []byte{0, 0, 2, 0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 0, 1, 0, 32, 40}
	want = append(want, 0x11, 0x22, 0x33, 0x44)
	want = append(want, footer()...)
	assert.Equal(t, want, buf.Bytes())
}

func TestWriteToEmpty(t *testing.T) {
	buf := new(bytes.Buffer)
	n, err := New(0, 0, nil).WriteTo(buf)
	require.Nil(t, err)
	assert.Equal(t, int64(44), n)
	assert.Equal(t, footer(), buf.Bytes()[HeaderSize:])
}

func TestWriteToMismatch(t *testing.T) {
	// Pixel data is written verbatim whatever the dimensions claim
	buf := new(bytes.Buffer)
	_, err := New(2, 2, []byte{1, 2, 3}).WriteTo(buf)
	require.Nil(t, err)
	assert.Equal(t, HeaderSize+3+FooterSize, buf.Len())
	assert.Equal(t, []byte{2, 0, 2, 0}, buf.Bytes()[12:16])
}

func TestWriteToIdempotent(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6, 7, 8}
	m := New(2, 1, data)

	var a, b bytes.Buffer
	_, err := m.WriteTo(&a)
	require.Nil(t, err)
	_, err = m.WriteTo(&b)
	require.Nil(t, err)

	assert.Equal(t, a.Bytes(), b.Bytes())
	assert.Equal(t, []byte{1, 2, 3, 4, 5, 6, 7, 8}, data)
}

func TestWriteToFailure(t *testing.T) {
	m := New(2, 2, bytes.Repeat([]byte{0xaa}, 16))
	total := FileSize(2, 2)

	for _, limit := range []int{0, 1, 17, 18, 20, 34, 35, 40, total - 1} {
		w := &limitWriter{limit: limit}
		n, err := m.WriteTo(w)
		assert.Equal(t, errFull, err, "limit %d", limit)
		assert.Equal(t, int64(limit), n, "limit %d", limit)
		assert.Equal(t, limit, w.buf.Len(), "limit %d", limit)
	}

	w := &limitWriter{}
	_, err := m.WriteTo(w)
	assert.Equal(t, errFull, err)
	assert.Equal(t, 1, w.calls)
}

func TestEncode(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	m.SetNRGBA(0, 0, color.NRGBA{R: 0x01, G: 0x02, B: 0x03, A: 0x04})
	m.SetNRGBA(1, 0, color.NRGBA{R: 0x05, G: 0x06, B: 0x07, A: 0xff})
	m.SetNRGBA(0, 1, color.NRGBA{R: 0x09, G: 0x0a, B: 0x0b, A: 0x0c})
	m.SetNRGBA(1, 1, color.NRGBA{R: 0x0d, G: 0x0e, B: 0x0f, A: 0x00})

	buf := new(bytes.Buffer)
	require.Nil(t, Encode(buf, m))
	require.Equal(t, FileSize(2, 2), buf.Len())

	assert.Equal(t, []byte{
		0x03, 0x02, 0x01, 0x04,
		0x07, 0x06, 0x05, 0xff,
		0x0b, 0x0a, 0x09, 0x0c,
		0x0f, 0x0e, 0x0d, 0x00,
	}, buf.Bytes()[HeaderSize:HeaderSize+16])
}

func TestEncodeSubImage(t *testing.T) {
	m := image.NewNRGBA(image.Rect(0, 0, 4, 4))
	m.SetNRGBA(2, 3, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40})

	buf := new(bytes.Buffer)
	require.Nil(t, Encode(buf, m.SubImage(image.Rect(2, 2, 4, 4))))
	require.Equal(t, FileSize(2, 2), buf.Len())
	assert.Equal(t, []byte{2, 0, 2, 0}, buf.Bytes()[12:16])
	assert.Equal(t, []byte{0x30, 0x20, 0x10, 0x40}, buf.Bytes()[HeaderSize+8:HeaderSize+12])
}

func TestEncodeGray(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, 1, 1))
	m.SetGray(0, 0, color.Gray{Y: 0x80})

	buf := new(bytes.Buffer)
	require.Nil(t, Encode(buf, m))
	assert.Equal(t, []byte{0x80, 0x80, 0x80, 0xff}, buf.Bytes()[HeaderSize:HeaderSize+4])
}

func TestEncodeTooLarge(t *testing.T) {
	m := image.NewGray(image.Rect(0, 0, maxDimension+1, 1))
	buf := new(bytes.Buffer)
	assert.Equal(t, ErrTooLarge, Encode(buf, m))
	assert.Equal(t, 0, buf.Len())
}
