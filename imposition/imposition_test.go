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

package imposition

import (
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func pages(n int) []string {
	var paths []string
	for i := 1; i <= n; i++ {
		paths = append(paths, fmt.Sprintf("%03d.jpg", i))
	}
	return paths
}

func TestPad(t *testing.T) {
	cases := []struct {
		pages, blanks int
		total         int
		firstNumber   int
	}{
		{4, 0, 4, 1},
		{6, 0, 8, 1},
		{6, 2, 8, -1},
		{1, 0, 4, 1},
		{0, 0, 0, 0},
		{5, 1, 8, 0},
		{9, 3, 12, -2},
	}
	for _, test := range cases {
		slots := Pad(pages(test.pages), test.blanks)
		if len(slots) != test.total {
			t.Errorf("%d pages, %d blanks: %d slots, want %d",
				test.pages, test.blanks, len(slots), test.total)
		}
		if len(slots)%4 != 0 {
			t.Errorf("%d pages, %d blanks: slot count %d not a multiple of 4",
				test.pages, test.blanks, len(slots))
		}
		if test.total > 0 && slots[0].Number != test.firstNumber {
			t.Errorf("%d pages, %d blanks: first slot numbered %d, want %d",
				test.pages, test.blanks, slots[0].Number, test.firstNumber)
		}

		// the first real page is always number 1
		for _, s := range slots {
			if !s.Blank() {
				if s.Number != 1 {
					t.Errorf("%d pages, %d blanks: first real page numbered %d",
						test.pages, test.blanks, s.Number)
				}
				break
			}
		}
	}
}

// TestPlanExample pins the reference mapping for 6 real pages padded to 8
// slots: back sheets (1, blank), (3, 6); front sheets (blank, 2), (5, 4).
func TestPlanExample(t *testing.T) {
	slots := Pad(pages(6), 0)
	if len(slots) != 8 {
		t.Fatalf("%d slots, want 8", len(slots))
	}

	back, front, err := Plan(slots)
	if err != nil {
		t.Fatal(err)
	}

	wantBack := []Sheet{
		{Left: &Half{1, "001.jpg"}, Right: nil}, // slot 7 is a pad blank
		{Left: &Half{3, "003.jpg"}, Right: &Half{6, "006.jpg"}},
	}
	wantFront := []Sheet{
		{Left: nil, Right: &Half{2, "002.jpg"}}, // slot 6 is a pad blank
		{Left: &Half{5, "005.jpg"}, Right: &Half{4, "004.jpg"}},
	}
	if d := cmp.Diff(wantBack, back); d != "" {
		t.Errorf("back sheets mismatch (-want +got):\n%s", d)
	}
	if d := cmp.Diff(wantFront, front); d != "" {
		t.Errorf("front sheets mismatch (-want +got):\n%s", d)
	}
}

func TestPlanNotPadded(t *testing.T) {
	_, _, err := Plan(make([]Slot, 6))
	if err == nil {
		t.Error("planning 6 slots should fail")
	}
}

// unfold reconstructs the reading order of the bound booklet: the first
// half of the book alternates back-left and front-right halves walking in
// from the outermost sheet, the second half alternates front-left and
// back-right walking back out.
func unfold(back, front []Sheet) []*Half {
	var order []*Half
	for k := 0; k < len(back); k++ {
		order = append(order, back[k].Left, front[k].Right)
	}
	for k := len(back) - 1; k >= 0; k-- {
		order = append(order, front[k].Left, back[k].Right)
	}
	return order
}

// TestFolding simulates print, fold and collation for small jobs and
// checks that the pages come out in strict reading order.
func TestFolding(t *testing.T) {
	for _, numPages := range []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12} {
		for blanks := 0; blanks <= 3; blanks++ {
			name := fmt.Sprintf("%dpages_%dblanks", numPages, blanks)
			t.Run(name, func(t *testing.T) {
				slots := Pad(pages(numPages), blanks)
				back, front, err := Plan(slots)
				if err != nil {
					t.Fatal(err)
				}

				if len(back) != len(slots)/4 || len(front) != len(slots)/4 {
					t.Fatalf("%d+%d sheets, want %d+%d",
						len(back), len(front), len(slots)/4, len(slots)/4)
				}

				order := unfold(back, front)
				if len(order) != len(slots) {
					t.Fatalf("unfolded %d slots, want %d", len(order), len(slots))
				}

				// blanks only at the start (leading) or end (padding)
				seen := 0
				for pos, h := range order {
					if h == nil {
						if pos >= blanks && seen != numPages {
							t.Errorf("blank at position %d before last real page", pos)
						}
						continue
					}
					seen++
					if h.Number != seen {
						t.Errorf("position %d holds page %d, want %d",
							pos, h.Number, seen)
					}
					wantPath := fmt.Sprintf("%03d.jpg", seen)
					if h.Path != wantPath {
						t.Errorf("page %d has path %q, want %q",
							seen, h.Path, wantPath)
					}
				}
				if seen != numPages {
					t.Errorf("%d real pages in booklet, want %d", seen, numPages)
				}
			})
		}
	}
}

// TestPartition checks that every non-blank slot lands in exactly one half
// across both documents.
func TestPartition(t *testing.T) {
	slots := Pad(pages(20), 0)
	back, front, err := Plan(slots)
	if err != nil {
		t.Fatal(err)
	}

	count := make(map[string]int)
	for _, sheets := range [][]Sheet{back, front} {
		for _, sheet := range sheets {
			for _, h := range []*Half{sheet.Left, sheet.Right} {
				if h != nil {
					count[h.Path]++
				}
			}
		}
	}
	for _, p := range pages(20) {
		if count[p] != 1 {
			t.Errorf("page %s placed %d times, want once", p, count[p])
		}
	}
	if len(count) != 20 {
		t.Errorf("%d distinct pages placed, want 20", len(count))
	}
}
