// Package preview renders packed atlas layouts into images for debugging.
//
// Given the sizes fed to a packer and the placements it returned, [Pages]
// produces one image per atlas page with every rectangle filled in a
// distinct color. The images exist purely for visual inspection of packing
// quality; nothing here touches pixel data of the actual textures.
package preview

import (
	"image"
	"image/color"
	"image/draw"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/atlas"
)

// Options holds preview rendering options.
type Options struct {
	// Scale resizes the output images by this factor using nearest-neighbor
	// sampling. Zero or one keeps the native page size.
	Scale float64

	// Background fills the unoccupied area of each page.
	// Default: opaque black.
	Background color.NRGBA
}

// palette holds the fill colors cycled through by rectangle index. The
// outline of each rectangle is drawn one shade darker.
var palette = [...]color.NRGBA{
	{R: 0xe6, G: 0x59, B: 0x4c, A: 0xff},
	{R: 0x4c, G: 0xa6, B: 0xe6, A: 0xff},
	{R: 0x5c, G: 0xc9, B: 0x63, A: 0xff},
	{R: 0xe6, G: 0xc2, B: 0x4c, A: 0xff},
	{R: 0xa8, G: 0x6b, B: 0xd9, A: 0xff},
	{R: 0x4c, G: 0xd9, B: 0xc0, A: 0xff},
	{R: 0xe6, G: 0x8a, B: 0x4c, A: 0xff},
	{R: 0xb5, G: 0xd9, B: 0x4c, A: 0xff},
}

// Pages renders one image per page of a packed layout.
//
// The sizes slice must be the exact input of the pack that produced
// placements; rotated placements are drawn with swapped dimensions. Returns
// [atlas.ErrLengthMismatch] if the slices differ in length. An empty input
// yields no images.
func Pages(pageSize atlas.Size, sizes []atlas.Size, placements []atlas.Placement, opts Options) ([]*image.NRGBA, error) {
	if len(sizes) != len(placements) {
		return nil, atlas.ErrLengthMismatch
	}

	pageCount := 0
	for _, p := range placements {
		if p.Page+1 > pageCount {
			pageCount = p.Page + 1
		}
	}
	if pageCount == 0 {
		return nil, nil
	}

	bg := opts.Background
	if bg == (color.NRGBA{}) {
		bg = color.NRGBA{A: 0xff}
	}

	pages := make([]*image.NRGBA, pageCount)
	for i := range pages {
		pages[i] = image.NewNRGBA(image.Rect(0, 0, pageSize.Width, pageSize.Height))
		draw.Draw(pages[i], pages[i].Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	}

	for i, p := range placements {
		b := p.Bounds(sizes[i])
		if b.IsZero() {
			continue
		}
		fill := palette[i%len(palette)]
		rect := image.Rect(p.X, p.Y, p.X+b.Width, p.Y+b.Height)
		drawRect(pages[p.Page], rect, fill)
	}

	if opts.Scale > 0 && opts.Scale != 1 {
		for i, img := range pages {
			w := int(float64(pageSize.Width) * opts.Scale)
			h := int(float64(pageSize.Height) * opts.Scale)
			if w < 1 {
				w = 1
			}
			if h < 1 {
				h = 1
			}
			scaled := image.NewNRGBA(image.Rect(0, 0, w, h))
			xdraw.NearestNeighbor.Scale(scaled, scaled.Bounds(), img, img.Bounds(), xdraw.Src, nil)
			pages[i] = scaled
		}
	}
	return pages, nil
}

// drawRect fills the rectangle and outlines its border one shade darker.
func drawRect(dst *image.NRGBA, r image.Rectangle, fill color.NRGBA) {
	draw.Draw(dst, r, image.NewUniform(fill), image.Point{}, draw.Src)

	outline := color.NRGBA{R: fill.R / 2, G: fill.G / 2, B: fill.B / 2, A: fill.A}
	for x := r.Min.X; x < r.Max.X; x++ {
		dst.SetNRGBA(x, r.Min.Y, outline)
		dst.SetNRGBA(x, r.Max.Y-1, outline)
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		dst.SetNRGBA(r.Min.X, y, outline)
		dst.SetNRGBA(r.Max.X-1, y, outline)
	}
}
