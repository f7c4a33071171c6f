// mangautils - convert manga page scans into printable booklet PDFs
// Copyright (C) 2026  Lily Rose
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package raster reads the images which are placed on the booklet sheets.
//
// Pixel data is never decoded.  Only the file headers are parsed, to find
// the pixel dimensions and colour layout; the compressed payload is kept
// byte for byte, so that it can be embedded into the PDF output without
// re-encoding.  JPEG files are embedded whole (DCTDecode), PNG files as
// their concatenated IDAT data (FlateDecode with PNG prediction).
package raster

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Decoding errors.  Errors returned by Decode wrap one of these.
var (
	ErrFormat      = errors.New("unrecognized image file extension")
	ErrCorrupt     = errors.New("image header unparsable")
	ErrUnsupported = errors.New("unsupported image feature")
)

// Format identifies the source file format of an image.
type Format int

// Supported image formats.
const (
	JPEG Format = iota + 1
	PNG
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "JPEG"
	case PNG:
		return "PNG"
	default:
		return fmt.Sprintf("Format(%d)", int(f))
	}
}

// ColorSpace describes the colour layout of the compressed pixel data.
type ColorSpace int

// Colour spaces which can occur in JPEG and PNG files.
const (
	Gray ColorSpace = iota + 1
	RGB
	CMYK
	Indexed
)

// Components returns the number of colour components per pixel.
func (c ColorSpace) Components() int {
	switch c {
	case RGB:
		return 3
	case CMYK:
		return 4
	default:
		return 1
	}
}

// Image is a decoded raster image.  All fields are read-only after Decode
// returns; images can be shared freely between documents.
type Image struct {
	Format           Format
	Width            int
	Height           int
	BitsPerComponent int
	ColorSpace       ColorSpace

	// Palette contains the RGB triples of an Indexed image.
	Palette []byte

	// Data is the compressed payload, to be embedded verbatim.
	Data []byte
}

// Decode reads the image file at the given path.  The file format is
// chosen by extension; anything other than .jpg, .jpeg or .png fails with
// ErrFormat.
func Decode(path string) (*Image, error) {
	var parse func([]byte) (*Image, error)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".jpg", ".jpeg":
		parse = decodeJPEG
	case ".png":
		parse = decodePNG
	default:
		return nil, fmt.Errorf("%s: %w", path, ErrFormat)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	img, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}
