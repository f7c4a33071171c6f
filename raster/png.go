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

package raster

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

var pngSignature = []byte{0x89, 'P', 'N', 'G', '\r', '\n', 0x1A, '\n'}

// decodePNG walks the chunks of a PNG file.  The concatenated IDAT data is
// a zlib stream of PNG-filtered scanlines and becomes the FlateDecode
// payload; the matching predictor parameters are derived from the IHDR
// fields by the document writer.
func decodePNG(data []byte) (*Image, error) {
	if !bytes.HasPrefix(data, pngSignature) {
		return nil, fmt.Errorf("%w: missing PNG signature", ErrCorrupt)
	}

	img := &Image{Format: PNG}
	var idat [][]byte

	pos := len(pngSignature)
	first := true
	for {
		if pos+8 > len(data) {
			return nil, fmt.Errorf("%w: truncated PNG chunk", ErrCorrupt)
		}
		length := int(binary.BigEndian.Uint32(data[pos : pos+4]))
		ctype := string(data[pos+4 : pos+8])
		body := pos + 8
		if length < 0 || body+length+4 > len(data) {
			return nil, fmt.Errorf("%w: truncated PNG chunk %q", ErrCorrupt, ctype)
		}
		chunk := data[body : body+length]

		if first && ctype != "IHDR" {
			return nil, fmt.Errorf("%w: PNG does not start with IHDR", ErrCorrupt)
		}
		first = false

		switch ctype {
		case "IHDR":
			err := parseIHDR(img, chunk)
			if err != nil {
				return nil, err
			}
		case "PLTE":
			if length%3 != 0 {
				return nil, fmt.Errorf("%w: PLTE length not a multiple of 3", ErrCorrupt)
			}
			img.Palette = chunk
		case "IDAT":
			idat = append(idat, chunk)
		case "IEND":
			if len(idat) == 0 {
				return nil, fmt.Errorf("%w: PNG has no image data", ErrCorrupt)
			}
			if img.ColorSpace == Indexed && img.Palette == nil {
				return nil, fmt.Errorf("%w: indexed PNG has no palette", ErrCorrupt)
			}
			img.Data = bytes.Join(idat, nil)
			return img, nil
		}

		pos = body + length + 4 // skip CRC
	}
}

func parseIHDR(img *Image, chunk []byte) error {
	if len(chunk) != 13 {
		return fmt.Errorf("%w: IHDR has wrong length", ErrCorrupt)
	}
	width := int(binary.BigEndian.Uint32(chunk[0:4]))
	height := int(binary.BigEndian.Uint32(chunk[4:8]))
	bitDepth := int(chunk[8])
	colorType := chunk[9]
	interlace := chunk[12]

	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: PNG has no extent", ErrCorrupt)
	}
	if bitDepth > 8 {
		return fmt.Errorf("%w: %d-bit PNG", ErrUnsupported, bitDepth)
	}
	if interlace != 0 {
		return fmt.Errorf("%w: interlaced PNG", ErrUnsupported)
	}

	switch colorType {
	case 0:
		img.ColorSpace = Gray
	case 2:
		img.ColorSpace = RGB
	case 3:
		img.ColorSpace = Indexed
	case 4, 6:
		return fmt.Errorf("%w: PNG with alpha channel", ErrUnsupported)
	default:
		return fmt.Errorf("%w: unknown PNG colour type %d", ErrCorrupt, colorType)
	}

	img.Width = width
	img.Height = height
	img.BitsPerComponent = bitDepth
	return nil
}
