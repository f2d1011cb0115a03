package raster

import (
	"fmt"
	"image/png"
	"io"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// Format is an image file format a Buffer can be exported as.
type Format int

const (
	FormatPNG Format = iota
	FormatBMP
	FormatTIFF
)

// String returns the conventional file extension of the format.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// FormatFromPath picks the format from the file extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".bmp":
		return FormatBMP, nil
	case ".tif", ".tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("raster: unsupported image extension %q", filepath.Ext(path))
	}
}

// Encode writes buf to w in the given format.
func Encode(w io.Writer, buf *Buffer, format Format) error {
	if !buf.Valid() {
		return fmt.Errorf("raster: cannot encode an empty buffer")
	}
	var err error
	switch format {
	case FormatPNG:
		err = png.Encode(w, buf)
	case FormatBMP:
		err = bmp.Encode(w, buf)
	case FormatTIFF:
		err = tiff.Encode(w, buf, &tiff.Options{Compression: tiff.Deflate})
	default:
		return fmt.Errorf("raster: unknown format %v", format)
	}
	if err != nil {
		return fmt.Errorf("raster: encode %s: %w", format, err)
	}
	return nil
}
