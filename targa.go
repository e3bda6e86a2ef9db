/*
Package targa is a library for converting images into uncompressed 32-bit
Truevision TGA files, either one at a time or by scanning a directory tree.
*/
package targa

import (
	"bytes"
	"crypto/sha1"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io/ioutil"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/bodgit/targa/tga"
	"github.com/ericpauley/go-quantize/quantize"
	"github.com/nfnt/resize"
	"github.com/pkg/errors"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// Extension is the file extension used for converted files.
const Extension = ".tga"

const (
	minColors = 2
	maxColors = 256
)

var errBadColors = errors.Errorf("number of colors must be between %d and %d", minColors, maxColors)

var extensions = map[string]struct{}{
	".bmp":  {},
	".gif":  {},
	".jpeg": {},
	".jpg":  {},
	".png":  {},
	".tif":  {},
	".tiff": {},
	".webp": {},
}

// Options control how an image is transformed before it is encoded.
type Options struct {
	// Colors reduces the image to this many colors, zero leaves the image
	// as it is
	Colors int
	// Width and Height resize the image, if only one of them is set the
	// aspect ratio is preserved
	Width  uint
	Height uint
	// Force overwrites any existing output file
	Force bool
}

// String returns the options that affect the encoded output, it forms part of
// the cache key.
func (o Options) String() string {
	return fmt.Sprintf("colors=%d,width=%d,height=%d", o.Colors, o.Width, o.Height)
}

func (o Options) validate() error {
	if o.Colors != 0 && (o.Colors < minColors || o.Colors > maxColors) {
		return errBadColors
	}
	return nil
}

// Targa converts images, reusing previous conversions from its cache.
type Targa struct {
	cache  *Cache
	logger *log.Logger
}

// New returns a Targa using the cache database in db.
func New(db string, logger *log.Logger) (*Targa, error) {
	cache, err := NewCache(db)
	if err != nil {
		return nil, err
	}

	return &Targa{
		cache:  cache,
		logger: logger,
	}, nil
}

// Close closes the cache database.
func (t *Targa) Close() error {
	return t.cache.Close()
}

// Supported returns whether the file has an extension of a format that can
// be converted.
func Supported(file string) bool {
	_, ok := extensions[strings.ToLower(filepath.Ext(file))]
	return ok
}

// OutputName returns the name of the converted file for file.
func OutputName(file string) string {
	return strings.TrimSuffix(file, filepath.Ext(file)) + Extension
}

func transform(m image.Image, opts Options) image.Image {
	if opts.Width != 0 || opts.Height != 0 {
		m = resize.Resize(opts.Width, opts.Height, m, resize.Lanczos3)
	}

	if opts.Colors != 0 {
		b := m.Bounds()
		q := quantize.MedianCutQuantizer{}
		pm := image.NewPaletted(b, q.Quantize(make(color.Palette, 0, opts.Colors), m))
		draw.Draw(pm, b, m, b.Min, draw.Src)
		m = pm
	}

	return m
}

func sha1Hex(b []byte) string {
	return fmt.Sprintf("%X", sha1.Sum(b))
}

func (t *Targa) convert(src []byte, opts Options) ([]byte, error) {
	sha := sha1Hex(src)

	b, err := t.cache.Lookup(sha, opts.String())
	if err != nil {
		return nil, err
	}
	if b != nil {
		t.logger.Printf("Using cached conversion for %s\n", sha)
		return b, nil
	}

	m, _, err := image.Decode(bytes.NewReader(src))
	if err != nil {
		return nil, err
	}

	buf := new(bytes.Buffer)
	if err := tga.Encode(buf, transform(m, opts)); err != nil {
		return nil, err
	}

	if _, err := t.cache.Store(sha, opts.String(), buf.Bytes()); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// ConvertFile converts the image in src and writes it to dst. If dst already
// exists it is left alone unless opts.Force is set. Concurrent calls must not
// share a dst.
func (t *Targa) ConvertFile(src, dst string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	if !opts.Force {
		switch _, err := os.Stat(dst); {
		case err == nil:
			t.logger.Printf("Skipping \"%s\", \"%s\" already exists\n", src, dst)
			return nil
		case !errors.Is(err, os.ErrNotExist):
			return err
		}
	}

	b, err := ioutil.ReadFile(src)
	if err != nil {
		return err
	}

	out, err := t.convert(b, opts)
	if err != nil {
		return errors.Wrapf(err, "unable to convert %s", src)
	}

	if err := ioutil.WriteFile(dst, out, 0644); err != nil {
		return err
	}

	t.logger.Printf("Converted \"%s\" to \"%s\"\n", src, dst)

	return nil
}
