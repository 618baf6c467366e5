package atlas

// segment is a maximal run of contiguous columns sharing the same filled
// height on a page frontier. Segments are kept contiguous, non-overlapping
// and sorted by start; their widths always sum to the page width.
type segment struct {
	start  int
	width  int
	height int
}

// frontier is the skyline of one page: the profile of currently filled
// column heights, used to find the lowest valley for the next placement.
//
// Segments live in a growable slice rather than a linked structure; commits
// rebuild the affected span with slice splices. The segment count is bounded
// by 2*placements+1, so scans stay linear in the number of items placed.
type frontier struct {
	pageWidth  int
	pageHeight int
	segs       []segment
	scratch    []segment
}

// newFrontier creates an empty frontier spanning the whole page width at
// height 0.
func newFrontier(pageWidth, pageHeight int) *frontier {
	return &frontier{
		pageWidth:  pageWidth,
		pageHeight: pageHeight,
		segs:       []segment{{start: 0, width: pageWidth, height: 0}},
	}
}

// usedHeight returns the maximum filled height across the page.
func (f *frontier) usedHeight() int {
	h := 0
	for _, s := range f.segs {
		if s.height > h {
			h = s.height
		}
	}
	return h
}

// heightOver returns the maximum segment height over the span [x, x+w).
func (f *frontier) heightOver(x, w int) int {
	end := x + w
	h := 0
	for _, s := range f.segs {
		if s.start >= end {
			break
		}
		if s.start+s.width <= x {
			continue
		}
		if s.height > h {
			h = s.height
		}
	}
	return h
}

// lowest finds the placement position for a w x h rectangle that minimizes
// the resulting top edge. Candidate positions are evaluated left-aligned at
// every segment start and right-aligned at every segment end: sliding the
// span between two boundaries cannot lower the covered maximum, so the
// boundary set reaches every distinct minimum. Ties are broken toward the
// smallest x, or the largest x when scanning reversed.
//
// The returned top may exceed the page height; the caller decides whether
// that fails the page. ok is false only if w exceeds the page width.
func (f *frontier) lowest(w, h int, reverse bool) (x, top int, ok bool) {
	if w > f.pageWidth {
		return 0, 0, false
	}

	best := -1
	bestTop := 0
	try := func(cx int) {
		if cx < 0 || cx+w > f.pageWidth {
			return
		}
		t := f.heightOver(cx, w) + h
		switch {
		case best < 0 || t < bestTop:
		case t > bestTop:
			return
		case !reverse && cx >= best:
			return
		case reverse && cx <= best:
			return
		}
		best, bestTop = cx, t
	}

	for _, s := range f.segs {
		try(s.start)
		try(s.start + s.width - w)
	}
	return best, bestTop, best >= 0
}

// place finds the lowest valley for the rectangle, trying the rotated
// orientation as well when allowed, and commits the winning position.
// On an exact tie between orientations the rotated one wins only for
// landscape rectangles (wider than tall). ok is false when neither
// orientation fits this page.
func (f *frontier) place(w, h int, flags Flags) (x, y int, rotated, ok bool) {
	reverse := flags&ReverseDirectionAlways != 0

	bestX, bestTop := 0, 0
	bestW, bestH := 0, 0
	found := false

	consider := func(cw, ch int, rot bool) {
		cx, top, ok := f.lowest(cw, ch, reverse)
		if !ok || top > f.pageHeight {
			return
		}
		if found {
			if top > bestTop {
				return
			}
			if top == bestTop {
				// Orientation tie: keep the rotated candidate only for
				// landscape inputs.
				if !rot || w <= h {
					return
				}
			}
		}
		bestX, bestTop = cx, top
		bestW, bestH = cw, ch
		rotated = rot
		found = true
	}

	consider(w, h, false)
	if flags&RotateLandscape != 0 && w != h {
		consider(h, w, true)
	}
	if !found {
		return 0, 0, false, false
	}

	f.commit(bestX, bestW, bestTop)
	return bestX, bestTop - bestH, rotated, true
}

// commit replaces the covered span [x, x+w) with a single segment at the
// given top height, splitting boundary segments and re-merging equal-height
// neighbors to preserve the frontier invariants.
func (f *frontier) commit(x, w, top int) {
	end := x + w
	out := f.scratch[:0]
	inserted := false
	for _, s := range f.segs {
		sEnd := s.start + s.width
		if s.start < x {
			cut := min(sEnd, x)
			out = append(out, segment{start: s.start, width: cut - s.start, height: s.height})
		}
		if !inserted && sEnd > x {
			out = append(out, segment{start: x, width: w, height: top})
			inserted = true
		}
		if sEnd > end {
			rs := max(s.start, end)
			out = append(out, segment{start: rs, width: sEnd - rs, height: s.height})
		}
	}

	merged := f.segs[:0]
	for _, s := range out {
		if n := len(merged); n > 0 && merged[n-1].height == s.height {
			merged[n-1].width += s.width
		} else {
			merged = append(merged, s)
		}
	}
	f.segs, f.scratch = merged, out
}
