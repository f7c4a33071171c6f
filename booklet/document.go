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

// Package booklet writes the booklet documents and drives the build
// pipeline.
package booklet

import (
	"bytes"
	"fmt"
	"io"
	"strconv"

	"seehuhn.de/go/geom/rect"

	"github.com/LilyRose2798/mangautils/font"
	"github.com/LilyRose2798/mangautils/imposition"
	"github.com/LilyRose2798/mangautils/layout"
	"github.com/LilyRose2798/mangautils/pdf"
	"github.com/LilyRose2798/mangautils/raster"
)

// Sheet geometry, in millimetres.  A landscape A4 sheet holds two portrait
// A5 page images side by side.
const (
	pageWidth  = 297.0
	pageHeight = 210.0

	imageMargin = 4.2 // around each page image
	textMargin  = 7.0 // page number inset from the bottom and side edges

	fontSize = 12 // points
)

// millimetres to default PDF user-space units
const mm = 72.0 / 25.4

// Document accumulates booklet sheets and writes them as one PDF file.
// It is append-only: each sheet is written out as soon as it is added,
// and nothing can be changed afterwards.
type Document struct {
	out    *pdf.Writer
	images *imageCache

	metrics  *font.Metrics
	fontRef  *pdf.Reference
	pagesRef *pdf.Reference
	pageRefs []*pdf.Reference

	resources map[string]*imageResource
	numImages int
}

type imageResource struct {
	name pdf.Name
	ref  *pdf.Reference
}

// CreateDocument creates the named PDF file and prepares it for booklet
// sheets.  Decoded images are taken from (and kept in) the given cache,
// so that the cache can be shared between the front and back documents of
// one build.
func CreateDocument(name string, images *imageCache) (*Document, error) {
	out, err := pdf.Create(name)
	if err != nil {
		return nil, err
	}
	return newDocument(out, images), nil
}

// WriteDocument prepares a booklet document which is written to w.
func WriteDocument(w io.Writer, images *imageCache) (*Document, error) {
	out, err := pdf.NewWriter(w)
	if err != nil {
		return nil, err
	}
	return newDocument(out, images), nil
}

func newDocument(out *pdf.Writer, images *imageCache) *Document {
	if images == nil {
		images = newImageCache()
	}
	return &Document{
		out:       out,
		images:    images,
		metrics:   font.TimesBold,
		fontRef:   out.Alloc(),
		pagesRef:  out.Alloc(),
		resources: make(map[string]*imageResource),
	}
}

// AddSheet appends one physical page holding the two given halves.  A nil
// half leaves its side of the sheet empty.  Every non-blank half gets its
// page image, scaled and centered by [layout.Fit], and its page number.
func (d *Document) AddSheet(left, right *imposition.Half) error {
	content := &bytes.Buffer{}
	xobjects := pdf.Dict{}

	err := d.writeHalf(content, xobjects, left, false)
	if err != nil {
		return err
	}
	err = d.writeHalf(content, xobjects, right, true)
	if err != nil {
		return err
	}

	contentRef, err := d.out.WriteIndirect(&pdf.Stream{
		Dict: pdf.Dict{"Length": pdf.Integer(content.Len())},
		R:    content,
	}, nil)
	if err != nil {
		return err
	}

	resources := pdf.Dict{
		"Font": pdf.Dict{"F1": d.fontRef},
	}
	if len(xobjects) > 0 {
		resources["XObject"] = xobjects
	}
	pageRef, err := d.out.WriteIndirect(pdf.Dict{
		"Type":      pdf.Name("Page"),
		"Parent":    d.pagesRef,
		"Resources": resources,
		"Contents":  contentRef,
	}, nil)
	if err != nil {
		return err
	}
	d.pageRefs = append(d.pageRefs, pageRef)
	return nil
}

func (d *Document) writeHalf(content *bytes.Buffer, xobjects pdf.Dict, h *imposition.Half, rightSide bool) error {
	if h == nil {
		return nil
	}

	img, err := d.images.get(h.Path)
	if err != nil {
		return err
	}
	res, err := d.registerImage(h.Path, img)
	if err != nil {
		return err
	}
	xobjects[res.name] = res.ref

	region := rect.Rect{URx: pageWidth / 2, URy: pageHeight}
	if rightSide {
		region.LLx = pageWidth / 2
		region.URx = pageWidth
	}
	placed, err := layout.Fit(float64(img.Width), float64(img.Height), region, imageMargin)
	if err != nil {
		return err
	}

	fmt.Fprintf(content, "q %.2f 0 0 %.2f %.2f %.2f cm /%s Do Q\n",
		placed.Dx()*mm, placed.Dy()*mm, placed.LLx*mm, placed.LLy*mm, res.name)

	num := strconv.Itoa(h.Number)
	x := textMargin
	if rightSide {
		x = pageWidth - textMargin - d.metrics.TextWidth(num, fontSize)/mm
	}
	fmt.Fprintf(content, "BT /F1 %d Tf %.2f %.2f Td ", fontSize, x*mm, textMargin*mm)
	err = pdf.String(num).PDF(content)
	if err != nil {
		return err
	}
	content.WriteString(" Tj ET\n")
	return nil
}

// registerImage embeds the image as an XObject, once per source path.
// Using the path as the registry key keeps resource numbering stable
// across runs.
func (d *Document) registerImage(path string, img *raster.Image) (*imageResource, error) {
	if res, ok := d.resources[path]; ok {
		return res, nil
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(img.Width),
		"Height":           pdf.Integer(img.Height),
		"BitsPerComponent": pdf.Integer(img.BitsPerComponent),
		"Length":           pdf.Integer(len(img.Data)),
	}

	switch img.Format {
	case raster.JPEG:
		dict["Filter"] = pdf.Name("DCTDecode")
	case raster.PNG:
		dict["Filter"] = pdf.Name("FlateDecode")
		colors := 1
		if img.ColorSpace == raster.RGB {
			colors = 3
		}
		dict["DecodeParms"] = pdf.Dict{
			"Predictor":        pdf.Integer(15),
			"Colors":           pdf.Integer(colors),
			"BitsPerComponent": pdf.Integer(img.BitsPerComponent),
			"Columns":          pdf.Integer(img.Width),
		}
	default:
		return nil, fmt.Errorf("%s: unexpected image format %v", path, img.Format)
	}

	colorSpace, err := d.colorSpace(img)
	if err != nil {
		return nil, err
	}
	dict["ColorSpace"] = colorSpace

	ref, err := d.out.WriteIndirect(&pdf.Stream{
		Dict: dict,
		R:    bytes.NewReader(img.Data),
	}, nil)
	if err != nil {
		return nil, err
	}

	d.numImages++
	res := &imageResource{
		name: pdf.Name("I" + strconv.Itoa(d.numImages)),
		ref:  ref,
	}
	d.resources[path] = res
	return res, nil
}

func (d *Document) colorSpace(img *raster.Image) (pdf.Object, error) {
	switch img.ColorSpace {
	case raster.Gray:
		return pdf.Name("DeviceGray"), nil
	case raster.RGB:
		return pdf.Name("DeviceRGB"), nil
	case raster.CMYK:
		return pdf.Name("DeviceCMYK"), nil
	case raster.Indexed:
		palRef, err := d.out.WriteIndirect(&pdf.Stream{
			Dict: pdf.Dict{"Length": pdf.Integer(len(img.Palette))},
			R:    bytes.NewReader(img.Palette),
		}, nil)
		if err != nil {
			return nil, err
		}
		return pdf.Array{
			pdf.Name("Indexed"),
			pdf.Name("DeviceRGB"),
			pdf.Integer(len(img.Palette)/3 - 1),
			palRef,
		}, nil
	default:
		return nil, fmt.Errorf("unexpected colour space %v", img.ColorSpace)
	}
}

// Close writes the font, the page tree, the document catalog and the file
// trailer, and closes the underlying file.
func (d *Document) Close() error {
	_, err := d.out.WriteIndirect(d.metrics.ResourceDict(), d.fontRef)
	if err != nil {
		return err
	}

	kids := make(pdf.Array, len(d.pageRefs))
	for i, ref := range d.pageRefs {
		kids[i] = ref
	}
	_, err = d.out.WriteIndirect(pdf.Dict{
		"Type":  pdf.Name("Pages"),
		"Kids":  kids,
		"Count": pdf.Integer(len(kids)),
		"MediaBox": pdf.Array{
			pdf.Integer(0), pdf.Integer(0),
			pdf.Real(pageWidth * mm), pdf.Real(pageHeight * mm),
		},
	}, d.pagesRef)
	if err != nil {
		return err
	}

	catalogRef, err := d.out.WriteIndirect(pdf.Dict{
		"Type":  pdf.Name("Catalog"),
		"Pages": d.pagesRef,
	}, nil)
	if err != nil {
		return err
	}
	infoRef, err := d.out.WriteIndirect(pdf.Dict{
		"Producer": pdf.String("mangautils"),
	}, nil)
	if err != nil {
		return err
	}

	return d.out.Close(catalogRef, infoRef)
}
