// ahas/pdf - a library for creating PDF documents
// Copyright (C) 2026  The ahas/pdf authors
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

package graphics

import (
	"fmt"
	"image"
	"io"

	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/ahas/pdf"
)

// Image is a raster image, embedded as an image XObject in the DeviceRGB
// color space with 8 bits per component.
type Image struct {
	img image.Image
}

// NewImage decodes a raster image from r.  The container format is
// detected automatically; unsupported formats are rejected here.
func NewImage(r io.Reader) (*Image, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	return &Image{img: img}, nil
}

// FromGoImage wraps an already decoded image.
func FromGoImage(img image.Image) *Image {
	return &Image{img: img}
}

// Bounds returns the pixel dimensions of the image.
func (im *Image) Bounds() (width, height int) {
	b := im.img.Bounds()
	return b.Dx(), b.Dy()
}

// ResourceCategory implements the resource [resource.Embeddable]
// interface.
func (im *Image) ResourceCategory() pdf.Name {
	return "XObject"
}

// EmbedResource adds the image XObject to the object graph.  Pixels are
// converted to raw 8-bit RGB samples; the sample stream is left for the
// optimize step to compress.
func (im *Image) EmbedResource(f *pdf.File) (pdf.Reference, error) {
	b := im.img.Bounds()
	width, height := b.Dx(), b.Dy()

	samples := make([]byte, 0, 3*width*height)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := im.img.At(x, y).RGBA()
			samples = append(samples, byte(r>>8), byte(g>>8), byte(bl>>8))
		}
	}

	dict := pdf.Dict{
		"Type":             pdf.Name("XObject"),
		"Subtype":          pdf.Name("Image"),
		"Width":            pdf.Integer(width),
		"Height":           pdf.Integer(height),
		"ColorSpace":       pdf.Name("DeviceRGB"),
		"BitsPerComponent": pdf.Integer(8),
	}
	return f.AddStream(dict, samples, true), nil
}
