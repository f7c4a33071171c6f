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

// Package imposition computes the sheet layout for saddle-stitch booklet
// printing.
//
// The whole job forms a single signature: the padded page sequence is
// distributed over two documents, one holding the back faces of the sheets
// and one the front faces, such that printing both documents duplex,
// folding the stack in the middle and stapling along the fold yields the
// pages in reading order.  Pages are placed right-to-left on each sheet,
// as manga is read.
package imposition

import (
	"fmt"
)

// Slot is one position in the padded page sequence.  An empty Path marks a
// blank page.  Number is the logical page number printed next to the
// image; leading blanks carry numbers less than 1 so that the first real
// page is always number 1.
type Slot struct {
	Number int
	Path   string
}

// Blank reports whether the slot has no page image.
func (s Slot) Blank() bool { return s.Path == "" }

// Half is one of the two page positions on a sheet.
type Half struct {
	Number int
	Path   string
}

// Sheet is one physical page of an output document.  A nil half stays
// empty on the printed sheet.
type Sheet struct {
	Left  *Half
	Right *Half
}

// Pad builds the slot sequence for a list of page image paths: the given
// number of leading blank slots is prepended, and the tail is padded with
// further blanks until the total is a multiple of 4, as a single folded
// signature requires.  Slot numbers are assigned so that the first non-blank page is
// number 1.
func Pad(paths []string, blanks int) []Slot {
	n := blanks + len(paths)
	n += (4 - n%4) % 4

	slots := make([]Slot, n)
	for i := range slots {
		slots[i].Number = i + 1 - blanks
		if i >= blanks && i-blanks < len(paths) {
			slots[i].Path = paths[i-blanks]
		}
	}
	return slots
}

// Plan distributes the slots over the back and front documents.  The
// number of slots must be a multiple of 4; this is an internal invariant
// maintained by Pad, so a violation is a fault in the caller, not bad user
// input.
//
// Sheet k of the back document holds slots 2k (left) and N-1-2k (right);
// sheet k of the front document holds slots N-2-2k (left) and 2k+1
// (right).  Walking the sheets this way from both ends towards the middle
// is what makes the folded stack read in order.
func Plan(slots []Slot) (back, front []Sheet, err error) {
	n := len(slots)
	if n%4 != 0 {
		return nil, nil, fmt.Errorf("imposition: %d slots, need a multiple of 4", n)
	}
	mid := n / 2

	half := func(i int) *Half {
		if slots[i].Blank() {
			return nil
		}
		return &Half{Number: slots[i].Number, Path: slots[i].Path}
	}

	for i := 0; i < mid; i += 2 {
		back = append(back, Sheet{
			Left:  half(i),
			Right: half(n - 1 - i),
		})
		front = append(front, Sheet{
			Left:  half(n - 2 - i),
			Right: half(i + 1),
		})
	}
	return back, front, nil
}
