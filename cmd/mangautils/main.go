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

// Mangautils prepares scanned manga pages for booklet printing.
//
// Usage:
//
//	mangautils split <dir>
//	mangautils build [-b N] <dir>
//
// The split command cuts every two-page spread image below <dir> into two
// single-page images.  The build command lays the pages out as a single
// saddle-stitch signature and writes <dir>-back.pdf and <dir>-front.pdf;
// print the back file first, then the front file on the reverse side, fold
// the stack in the middle and staple along the fold.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/LilyRose2798/mangautils/booklet"
	"github.com/LilyRose2798/mangautils/split"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage:\n")
	fmt.Fprintf(os.Stderr, "  %s split <dir>\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  %s build [-b N] <dir>\n", os.Args[0])
	os.Exit(2)
}

func main() {
	if len(os.Args) < 2 {
		usage()
	}

	var err error
	switch os.Args[1] {
	case "split":
		if len(os.Args) != 3 {
			usage()
		}
		err = split.Dir(os.Args[2])
	case "build":
		flags := flag.NewFlagSet("build", flag.ExitOnError)
		blanks := flags.Int("b", 0, "number of blank pages to add at the start")
		flags.IntVar(blanks, "blanks", 0, "number of blank pages to add at the start")
		flags.Parse(os.Args[2:])
		if flags.NArg() != 1 {
			usage()
		}
		err = booklet.Build(flags.Arg(0), *blanks)
	default:
		usage()
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
