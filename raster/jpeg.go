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
	"encoding/binary"
	"fmt"
)

// decodeJPEG scans the segment markers of a JPEG file until it finds the
// frame header.  The whole file is kept as the DCTDecode payload.
func decodeJPEG(data []byte) (*Image, error) {
	if len(data) < 2 || data[0] != 0xFF || data[1] != 0xD8 {
		return nil, fmt.Errorf("%w: missing JPEG SOI marker", ErrCorrupt)
	}

	pos := 2
	for pos < len(data)-1 {
		if data[pos] != 0xFF {
			pos++
			continue
		}

		marker := data[pos+1]
		pos += 2

		switch {
		case marker == 0xFF:
			// fill byte; the next byte may be the real marker
			pos--
			continue
		case marker == 0x01 || marker >= 0xD0 && marker <= 0xD9:
			// no payload
			continue
		case marker == 0xDA:
			// entropy-coded data follows; a frame header should have
			// come first
			return nil, fmt.Errorf("%w: no JPEG frame header before scan data", ErrCorrupt)
		}

		if pos+2 > len(data) {
			return nil, fmt.Errorf("%w: truncated JPEG segment", ErrCorrupt)
		}

		// SOF0 (baseline) to SOF3 (lossless sequential)
		if marker >= 0xC0 && marker <= 0xC3 {
			if pos+8 > len(data) {
				return nil, fmt.Errorf("%w: truncated JPEG frame header", ErrCorrupt)
			}
			precision := int(data[pos+2])
			height := int(binary.BigEndian.Uint16(data[pos+3 : pos+5]))
			width := int(binary.BigEndian.Uint16(data[pos+5 : pos+7]))
			components := int(data[pos+7])

			if precision != 8 {
				return nil, fmt.Errorf("%w: %d-bit JPEG", ErrUnsupported, precision)
			}
			if width <= 0 || height <= 0 {
				return nil, fmt.Errorf("%w: JPEG frame has no extent", ErrCorrupt)
			}

			var cs ColorSpace
			switch components {
			case 1:
				cs = Gray
			case 3:
				cs = RGB
			case 4:
				cs = CMYK
			default:
				return nil, fmt.Errorf("%w: JPEG with %d components",
					ErrUnsupported, components)
			}

			return &Image{
				Format:           JPEG,
				Width:            width,
				Height:           height,
				BitsPerComponent: precision,
				ColorSpace:       cs,
				Data:             data,
			}, nil
		}

		pos += int(binary.BigEndian.Uint16(data[pos : pos+2]))
	}

	return nil, fmt.Errorf("%w: no JPEG frame header found", ErrCorrupt)
}
