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
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
)

func TestBuild(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "vol1")
	if err := os.Mkdir(dir, 0o777); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 6; i++ {
		writeJPEG(t, dir, fmt.Sprintf("%d.jpg", i), 60, 90)
	}

	err := Build(dir, 0)
	if err != nil {
		t.Fatal(err)
	}

	// 6 pages pad to 8 slots: 2 back sheets and 2 front sheets
	for _, test := range []struct {
		name    string
		numbers []string
	}{
		{"vol1-back.pdf", []string{"(1)", "(3)", "(6)"}},
		{"vol1-front.pdf", []string{"(2)", "(4)", "(5)"}},
	} {
		body, err := os.ReadFile(filepath.Join(root, test.name))
		if err != nil {
			t.Fatal(err)
		}
		if n := countPages(body); n != 2 {
			t.Errorf("%s has %d pages, want 2", test.name, n)
		}
		for _, num := range test.numbers {
			if !bytes.Contains(body, []byte(num+" Tj")) {
				t.Errorf("%s does not number page %s", test.name, num)
			}
		}
	}
}

func TestBuildWithBlanks(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "vol2")
	if err := os.Mkdir(dir, 0o777); err != nil {
		t.Fatal(err)
	}
	for i := 1; i <= 3; i++ {
		writeJPEG(t, dir, fmt.Sprintf("%d.jpg", i), 60, 90)
	}

	err := Build(dir, 1)
	if err != nil {
		t.Fatal(err)
	}

	// 1 blank + 3 pages fill one signature of 4 slots exactly; the blank
	// carries no page number, the real pages stay numbered 1 to 3
	back, err := os.ReadFile(filepath.Join(root, "vol2-back.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	front, err := os.ReadFile(filepath.Join(root, "vol2-front.pdf"))
	if err != nil {
		t.Fatal(err)
	}
	if bytes.Contains(back, []byte("(0) Tj")) || bytes.Contains(front, []byte("(0) Tj")) {
		t.Error("blank page must not be numbered")
	}
	all := append(append([]byte{}, back...), front...)
	for _, num := range []string{"(1) Tj", "(2) Tj", "(3) Tj"} {
		if !bytes.Contains(all, []byte(num)) {
			t.Errorf("output does not contain %q", num)
		}
	}
}

func TestBuildBadImage(t *testing.T) {
	root := t.TempDir()
	dir := filepath.Join(root, "vol3")
	if err := os.Mkdir(dir, 0o777); err != nil {
		t.Fatal(err)
	}
	writeJPEG(t, dir, "1.jpg", 60, 90)
	err := os.WriteFile(filepath.Join(dir, "2.jpg"), []byte("broken"), 0o666)
	if err != nil {
		t.Fatal(err)
	}

	err = Build(dir, 0)
	if err == nil {
		t.Fatal("building from a corrupt image should fail")
	}

	// the corrupt image lands in the front document; the completed back
	// document stays, but no partial front document may remain
	if _, err := os.Stat(filepath.Join(root, "vol3-back.pdf")); err != nil {
		t.Errorf("completed back document missing: %v", err)
	}
	if _, err := os.Stat(filepath.Join(root, "vol3-front.pdf")); err == nil {
		t.Error("vol3-front.pdf left behind after failed build")
	}
}
