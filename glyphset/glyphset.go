// Package glyphset derives glyph bitmap sizes from a font, ready to feed
// into an atlas packer.
//
// The package shapes a string with go-text/typesetting (HarfBuzz-level
// shaping, so ligatures and mark attachment resolve to the glyphs that
// would actually be rasterized) and returns the pixel extents of every
// shaped glyph. Rasterizing the glyphs and uploading them at the packed
// offsets stays with the caller.
package glyphset

import (
	"bytes"
	"fmt"

	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/norm"

	"github.com/gogpu/atlas"
)

// Options holds glyph measurement options.
type Options struct {
	// SizePx is the font size in pixels.
	// Default: 16
	SizePx float64

	// Padding is added to both dimensions of every glyph, twice (once per
	// edge), to leave room for filtering bleed in the atlas.
	// Default: 0
	Padding int
}

// Sizes shapes text with the given font and returns the pixel size of every
// shaped glyph. The input is NFC-normalized before shaping, so decomposed
// sequences measure the same as their composed equivalents.
//
// The number of returned sizes is the number of shaped glyphs, which may
// differ from the number of input runes (ligatures, mark attachment).
// Whitespace glyphs typically come back zero-sized; [atlas.Packer] places
// those without consuming area.
func Sizes(fontData []byte, text string, opts Options) ([]atlas.Size, error) {
	runes := []rune(norm.NFC.String(text))
	if len(runes) == 0 {
		return nil, nil
	}

	sizePx := opts.SizePx
	if sizePx <= 0 {
		sizePx = 16
	}
	if opts.Padding < 0 {
		return nil, fmt.Errorf("glyphset: padding must be non-negative, got %d", opts.Padding)
	}

	face, err := font.ParseTTF(bytes.NewReader(fontData))
	if err != nil {
		return nil, fmt.Errorf("glyphset: parse font: %w", err)
	}

	shaper := &shaping.HarfbuzzShaper{}
	out := shaper.Shape(shaping.Input{
		Text:      runes,
		RunStart:  0,
		RunEnd:    len(runes),
		Direction: di.DirectionLTR,
		Face:      face,
		Size:      fixed.Int26_6(sizePx * 64),
		Script:    detectScript(runes),
		Language:  language.NewLanguage("en"),
	})

	pad := 2 * opts.Padding
	sizes := make([]atlas.Size, len(out.Glyphs))
	for i, g := range out.Glyphs {
		w := ceilAbs(g.Width)
		h := ceilAbs(g.Height)
		if w > 0 && h > 0 {
			w += pad
			h += pad
		}
		sizes[i] = atlas.Size{Width: w, Height: h}
	}
	return sizes, nil
}

// detectScript inspects the runes and returns the script of the first
// non-space character. This is a simple heuristic; for mixed-script text,
// users should split runs by script before shaping.
func detectScript(runes []rune) language.Script {
	for _, r := range runes {
		if r == ' ' || r == '\t' || r == '\n' || r == '\r' {
			continue
		}
		return language.LookupScript(r)
	}
	return language.Latin
}

// ceilAbs converts a fixed.Int26_6 extent to whole pixels, rounding away
// from zero. Vertical extents come out of shaping negative (Y grows up in
// font space).
func ceilAbs(v fixed.Int26_6) int {
	if v < 0 {
		v = -v
	}
	return int((v + 63) >> 6)
}
