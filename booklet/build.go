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
	"os"
	"path/filepath"

	"github.com/LilyRose2798/mangautils/imposition"
	"github.com/LilyRose2798/mangautils/scan"
)

// Build scans dir for page images, computes the saddle-stitch imposition
// with the given number of leading blank pages, and writes the two output
// documents "<dir>-back.pdf" and "<dir>-front.pdf" next to dir.
//
// Any failure aborts the whole build; a partly written output file is
// removed.
func Build(dir string, blanks int) error {
	paths, err := scan.Images(dir)
	if err != nil {
		return err
	}

	slots := imposition.Pad(paths, blanks)
	back, front, err := imposition.Plan(slots)
	if err != nil {
		return err
	}

	// front and back share one decode cache
	cache := newImageCache()

	base := filepath.Clean(dir)
	err = writeSheets(base+"-back.pdf", back, cache)
	if err != nil {
		return err
	}
	return writeSheets(base+"-front.pdf", front, cache)
}

func writeSheets(name string, sheets []imposition.Sheet, cache *imageCache) error {
	doc, err := CreateDocument(name, cache)
	if err != nil {
		return err
	}
	for _, sheet := range sheets {
		err = doc.AddSheet(sheet.Left, sheet.Right)
		if err != nil {
			os.Remove(name)
			return err
		}
	}
	err = doc.Close()
	if err != nil {
		os.Remove(name)
		return err
	}
	return nil
}
