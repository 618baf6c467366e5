package atlas

import "strings"

// Flags control the packing heuristics of [Packer]. Flags are a bit set and
// can be combined, except where documented as mutually exclusive.
type Flags uint8

const (
	// RotateLandscape allows rotating rectangles by 90 degrees when the
	// rotated orientation places lower on the frontier. On an exact tie the
	// rotated orientation is preferred for rectangles wider than tall and
	// the original orientation otherwise.
	RotateLandscape Flags = 1 << iota

	// WidestFirst sorts rectangles largest first: descending by the longer
	// side, ties broken by descending shorter side. Placing large items
	// first keeps the frontier valleys wide. This is the default.
	WidestFirst

	// NarrowestFirst sorts rectangles smallest first: ascending by the
	// longer side. Useful for workloads dominated by many small,
	// similar-sized items such as CJK glyph atlases. Mutually exclusive
	// with WidestFirst.
	NarrowestFirst

	// ReverseDirectionAlways scans each page frontier right-to-left instead
	// of left-to-right, breaking valley ties toward the largest x instead
	// of the smallest.
	ReverseDirectionAlways
)

var flagNames = [...]struct {
	flag Flags
	name string
}{
	{RotateLandscape, "RotateLandscape"},
	{WidestFirst, "WidestFirst"},
	{NarrowestFirst, "NarrowestFirst"},
	{ReverseDirectionAlways, "ReverseDirectionAlways"},
}

// String returns a pipe-separated list of the set flags.
func (f Flags) String() string {
	if f == 0 {
		return "None"
	}
	var parts []string
	for _, fn := range flagNames {
		if f&fn.flag != 0 {
			parts = append(parts, fn.name)
		}
	}
	return strings.Join(parts, "|")
}
