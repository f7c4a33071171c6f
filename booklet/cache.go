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

package booklet

import (
	"github.com/LilyRose2798/mangautils/raster"
)

// imageCache decodes each source file at most once per build.  Decoded
// images are immutable, so the back and front documents can share one
// cache.
type imageCache struct {
	decoded map[string]*raster.Image
}

func newImageCache() *imageCache {
	return &imageCache{
		decoded: make(map[string]*raster.Image),
	}
}

func (c *imageCache) get(path string) (*raster.Image, error) {
	if img, ok := c.decoded[path]; ok {
		return img, nil
	}
	img, err := raster.Decode(path)
	if err != nil {
		return nil, err
	}
	c.decoded[path] = img
	return img, nil
}
