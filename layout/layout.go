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

// Package layout places images on booklet sheets.
package layout

import (
	"errors"
	"fmt"

	"seehuhn.de/go/geom/rect"
)

// ErrGeometry is returned when an image or region is degenerate and no
// placement exists.
var ErrGeometry = errors.New("invalid geometry")

// Fit computes the placement of an image inside a region.  The image keeps
// its aspect ratio, is scaled to the largest size which fits into the
// region after subtracting margin on all four sides, and is centered on the
// axis with slack.  The result is fully contained in the margin-reduced
// region.
func Fit(imageWidth, imageHeight float64, region rect.Rect, margin float64) (rect.Rect, error) {
	if imageWidth <= 0 || imageHeight <= 0 {
		return rect.Rect{}, fmt.Errorf("%w: image is %g x %g",
			ErrGeometry, imageWidth, imageHeight)
	}
	drawWidth := region.Dx() - 2*margin
	drawHeight := region.Dy() - 2*margin
	if drawWidth <= 0 || drawHeight <= 0 {
		return rect.Rect{}, fmt.Errorf("%w: margin %g leaves no drawable area in %g x %g region",
			ErrGeometry, margin, region.Dx(), region.Dy())
	}

	imageRatio := imageWidth / imageHeight
	drawRatio := drawWidth / drawHeight

	var w, h float64
	if imageRatio > drawRatio {
		// wide image: width fills the drawable area
		w = drawWidth
		h = drawWidth / imageRatio
	} else {
		// tall image: height fills the drawable area
		h = drawHeight
		w = drawHeight * imageRatio
	}

	llx := region.LLx + margin + (drawWidth-w)/2
	lly := region.LLy + margin + (drawHeight-h)/2
	return rect.Rect{
		LLx: llx,
		LLy: lly,
		URx: llx + w,
		URy: lly + h,
	}, nil
}
