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

// Package font provides metrics for the built-in PDF fonts used by the
// booklet writer.
//
// The built-in fonts are never embedded; a conforming reader supplies them.
// Only their advance widths are needed here, so that right-aligned text can
// be positioned exactly.
package font

import (
	"github.com/LilyRose2798/mangautils/pdf"
)

// Metrics holds the character metrics of a built-in font.  Widths are given
// in 1/1000 of the point size, indexed by character code.  A width of zero
// marks an unmapped code, for which MissingWidth is substituted.
type Metrics struct {
	PostScriptName string
	MissingWidth   int16
	Widths         [256]int16
}

// GlyphWidth returns the advance width of the glyph for character code c,
// in 1/1000 of the point size.
func (m *Metrics) GlyphWidth(c byte) int16 {
	w := m.Widths[c]
	if w == 0 {
		w = m.MissingWidth
	}
	return w
}

// TextWidth returns the width of s at the given font size.  The result is
// in the same unit as size.
func (m *Metrics) TextWidth(s string, size float64) float64 {
	var total int64
	for i := 0; i < len(s); i++ {
		total += int64(m.GlyphWidth(s[i]))
	}
	return float64(total) * size / 1000
}

// ResourceDict returns the PDF font dictionary for the font.
func (m *Metrics) ResourceDict() pdf.Dict {
	return pdf.Dict{
		"Type":     pdf.Name("Font"),
		"Subtype":  pdf.Name("Type1"),
		"BaseFont": pdf.Name(m.PostScriptName),
		"Encoding": pdf.Name("WinAnsiEncoding"),
	}
}

// TimesBold holds the metrics of the built-in Times-Bold font.
var TimesBold = &Metrics{
	PostScriptName: "Times-Bold",
	MissingWidth:   250,
}

// Advance widths for the printable ASCII range (codes 32 to 126) of
// Times-Bold, in 1/1000 em, from the Adobe core font metrics.
var timesBoldASCII = [95]int16{
	250, 333, 555, 500, 500, 1000, 833, 278, // space ! " # $ % & '
	333, 333, 500, 570, 250, 333, 250, 278, // ( ) * + , - . /
	500, 500, 500, 500, 500, 500, 500, 500, // 0 1 2 3 4 5 6 7
	500, 500, 333, 333, 570, 570, 570, 500, // 8 9 : ; < = > ?
	930, 722, 667, 722, 722, 667, 611, 778, // @ A B C D E F G
	778, 389, 500, 778, 667, 944, 722, 778, // H I J K L M N O
	611, 778, 722, 556, 667, 722, 722, 1000, // P Q R S T U V W
	722, 722, 667, 333, 278, 333, 581, 500, // X Y Z [ \ ] ^ _
	333, 500, 556, 444, 556, 444, 333, 500, // ` a b c d e f g
	556, 278, 333, 556, 278, 833, 556, 500, // h i j k l m n o
	556, 556, 444, 389, 333, 556, 500, 722, // p q r s t u v w
	500, 500, 444, 394, 220, 394, 520, // x y z { | } ~
}

func init() {
	copy(TimesBold.Widths[32:], timesBoldASCII[:])
}
