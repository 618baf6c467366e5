package atlas

import (
	"fmt"
	"sort"
)

// PackPowerOfTwo packs square power-of-two sizes into pages of the given
// size using a grid layout, returning the total page count and one placement
// per input, in input order.
//
// Every input must be a square whose side is a power of two and fits the
// page; violations fail with a [*PackError] wrapping [ErrInvalidSize] or
// [ErrSizeExceedsPage]. Larger size classes are packed before smaller ones
// so rows never mix sizes; within a class, items go in row-major order,
// wrapping to a new row when the page width is exhausted and to a new page
// when the page height is exhausted. No rotation is ever applied.
//
// Compared to [Packer] this wastes no space in all but the last page, at the
// cost of the power-of-two precondition. Setting the page size to the
// largest input size wastes the least space in the last page.
func PackPowerOfTwo(pageSize Size, sizes []Size) (int, []Placement, error) {
	if pageSize.Width < 1 || pageSize.Height < 1 {
		return 0, nil, fmt.Errorf("atlas: invalid page size %v: %w", pageSize, ErrInvalidSize)
	}

	// Bucket indices by side length, validating as we go. Buckets keep
	// input order, so equal-sized items stay in caller order.
	classes := make(map[int][]int)
	for i, s := range sizes {
		if s.Width != s.Height || !isPowerOfTwo(s.Width) {
			return 0, nil, &PackError{Index: i, Size: s, Err: ErrInvalidSize}
		}
		if s.Width > pageSize.Width || s.Height > pageSize.Height {
			return 0, nil, &PackError{Index: i, Size: s, Err: ErrSizeExceedsPage}
		}
		classes[s.Width] = append(classes[s.Width], i)
	}
	if len(sizes) == 0 {
		return 0, nil, nil
	}

	sides := make([]int, 0, len(classes))
	for side := range classes {
		sides = append(sides, side)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(sides)))

	placements := make([]Placement, len(sizes))
	x, y, pg := 0, 0, 0
	prevSide := 0
	for _, side := range sides {
		// A partially filled row of the previous class is never shared.
		if x > 0 {
			x = 0
			y += prevSide
		}
		if y+side > pageSize.Height {
			pg++
			y = 0
		}
		for _, idx := range classes[side] {
			if x+side > pageSize.Width {
				x = 0
				y += side
				if y+side > pageSize.Height {
					pg++
					y = 0
				}
			}
			placements[idx] = Placement{X: x, Y: y, Page: pg}
			x += side
		}
		prevSide = side
	}
	return pg + 1, placements, nil
}

// isPowerOfTwo reports whether v is a positive power of two.
func isPowerOfTwo(v int) bool {
	return v > 0 && v&(v-1) == 0
}
