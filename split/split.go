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

// Package split cuts scanned two-page spreads into single pages.
//
// Manga archives often contain landscape images holding two facing pages.
// Splitting replaces each of them by two portrait images: the right half
// first (suffix "a"), then the left half (suffix "b"), since the right
// page is read before the left one.
package split

import (
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/draw"

	"github.com/LilyRose2798/mangautils/scan"
)

// Dir splits every two-page spread image below dir.  Images which are not
// wider than tall are left alone.  Each split original is deleted after
// both halves have been written.
func Dir(dir string) error {
	paths, err := scan.Images(dir)
	if err != nil {
		return err
	}
	for _, path := range paths {
		err := splitFile(path)
		if err != nil {
			return err
		}
	}
	return nil
}

func splitFile(path string) error {
	fd, err := os.Open(path)
	if err != nil {
		return err
	}
	img, _, err := image.Decode(fd)
	fd.Close()
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	b := img.Bounds()
	if b.Dx() <= b.Dy() {
		// not a spread
		return nil
	}
	mid := b.Min.X + b.Dx()/2

	rightHalf := image.Rect(mid, b.Min.Y, b.Max.X, b.Max.Y)
	leftHalf := image.Rect(b.Min.X, b.Min.Y, mid, b.Max.Y)

	err = writeHalf(withSuffix(path, "a"), img, rightHalf)
	if err != nil {
		return err
	}
	err = writeHalf(withSuffix(path, "b"), img, leftHalf)
	if err != nil {
		return err
	}
	return os.Remove(path)
}

func writeHalf(path string, src image.Image, r image.Rectangle) error {
	dst := image.NewRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Copy(dst, image.Point{}, src, r, draw.Src, nil)

	fd, err := os.Create(path)
	if err != nil {
		return err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		err = png.Encode(fd, dst)
	default:
		err = jpeg.Encode(fd, dst, nil)
	}
	if err != nil {
		fd.Close()
		os.Remove(path)
		return fmt.Errorf("%s: %w", path, err)
	}
	return fd.Close()
}

// withSuffix appends suffix to the file name, before the extension.
func withSuffix(path, suffix string) string {
	ext := filepath.Ext(path)
	return path[:len(path)-len(ext)] + suffix + ext
}
