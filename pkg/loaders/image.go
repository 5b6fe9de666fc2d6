// Package loaders decodes texture assets from disk. Image decoding wraps
// the stdlib image registry (PNG, JPEG) plus golang.org/x/image's BMP and
// TIFF decoders so pkg/texture.Image can consume more LDR containers than
// the standard library alone supports; sRGB-decode-on-load and the "raw"
// bypass for HDR/normal-map sources stay pkg/texture's concern, not this
// package's.
package loaders

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// DecodeImage reads and decodes the image file at path using whichever
// registered format its contents (not its extension) match.
func DecodeImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("loaders: open %s: %w", path, err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loaders: decode %s: %w", path, err)
	}
	_ = format
	return img, nil
}

// IsRawFormat reports whether path's extension denotes a format this
// package treats as already-linear (HDR/EXR), so the caller should pass
// raw=true to texture.NewImage. This repo's image decoders are all LDR;
// callers supply raw explicitly for normal maps.
func IsRawFormat(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hdr", ".exr":
		return true
	default:
		return false
	}
}
