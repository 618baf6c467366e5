package atlas

import "sort"

// sortIndices returns a permutation of 0..len(sizes) giving the order in
// which rectangles are placed.
//
// With WidestFirst, rectangles are ordered descending by their longer side,
// ties broken by descending shorter side. NarrowestFirst flips the primary
// key to ascending while keeping the secondary key descending. Remaining
// ties fall back to ascending original index, so the order is a total one
// and packing stays deterministic. With neither flag set the original input
// order is kept.
func sortIndices(sizes []Size, flags Flags) []int {
	order := make([]int, len(sizes))
	for i := range order {
		order[i] = i
	}

	if flags&(WidestFirst|NarrowestFirst) == 0 {
		return order
	}
	ascending := flags&NarrowestFirst != 0

	sort.Slice(order, func(a, b int) bool {
		sa, sb := sizes[order[a]], sizes[order[b]]
		la, sha := longShort(sa)
		lb, shb := longShort(sb)

		if la != lb {
			if ascending {
				return la < lb
			}
			return la > lb
		}
		if sha != shb {
			return sha > shb
		}
		return order[a] < order[b]
	})
	return order
}

// longShort returns the longer and shorter side of a size.
func longShort(s Size) (long, short int) {
	if s.Width >= s.Height {
		return s.Width, s.Height
	}
	return s.Height, s.Width
}
