package atlas

import "fmt"

// Size is a width/height pair in pixels. Sizes are supplied by the caller
// and never mutated by the packer.
type Size struct {
	// Width is the horizontal extent.
	Width int
	// Height is the vertical extent.
	Height int
}

// Area returns Width times Height.
func (s Size) Area() int {
	return s.Width * s.Height
}

// IsZero returns true if either dimension is zero.
func (s Size) IsZero() bool {
	return s.Width == 0 || s.Height == 0
}

// Rotated returns the size with width and height swapped.
func (s Size) Rotated() Size {
	return Size{Width: s.Height, Height: s.Width}
}

// String returns a string representation of the size.
func (s Size) String() string {
	return fmt.Sprintf("%dx%d", s.Width, s.Height)
}

// Placement is the computed position of one input rectangle. Placements are
// returned in the caller's original index order: placements[i] corresponds
// to sizes[i] regardless of the internal packing order.
type Placement struct {
	// X is the left edge of the rectangle on its page.
	X int
	// Y is the top edge of the rectangle on its page.
	Y int
	// Page is the page (array layer) index, starting at 0.
	Page int
	// Rotated reports whether the rectangle was rotated by 90 degrees.
	// A rotated rectangle occupies Height x Width pixels at (X, Y).
	Rotated bool
}

// Bounds returns the effective size the placement occupies on its page,
// accounting for rotation.
func (p Placement) Bounds(s Size) Size {
	if p.Rotated {
		return s.Rotated()
	}
	return s
}

// String returns a string representation of the placement.
func (p Placement) String() string {
	if p.Rotated {
		return fmt.Sprintf("(%d,%d page %d rotated)", p.X, p.Y, p.Page)
	}
	return fmt.Sprintf("(%d,%d page %d)", p.X, p.Y, p.Page)
}

// Extent is the filled size of a packed atlas: the page width, the maximum
// used height across pages, and the number of non-empty pages.
type Extent struct {
	// Width is the page width from the packer configuration.
	Width int
	// Height is the maximum top edge over all placements on the
	// fullest-used page.
	Height int
	// Pages is the number of pages holding at least one placement.
	Pages int
}

// String returns a string representation of the extent.
func (e Extent) String() string {
	return fmt.Sprintf("%dx%dx%d", e.Width, e.Height, e.Pages)
}
