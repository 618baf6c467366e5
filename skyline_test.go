package atlas

import "testing"

func segsEqual(a, b []segment) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestFrontier_Initial(t *testing.T) {
	f := newFrontier(100, 200)
	want := []segment{{start: 0, width: 100, height: 0}}
	if !segsEqual(f.segs, want) {
		t.Errorf("got %v, want %v", f.segs, want)
	}
	if f.usedHeight() != 0 {
		t.Errorf("usedHeight: got %d, want 0", f.usedHeight())
	}
}

func TestFrontier_CommitSplitsSegments(t *testing.T) {
	f := newFrontier(100, 100)
	f.commit(20, 30, 10)

	want := []segment{
		{start: 0, width: 20, height: 0},
		{start: 20, width: 30, height: 10},
		{start: 50, width: 50, height: 0},
	}
	if !segsEqual(f.segs, want) {
		t.Errorf("got %v, want %v", f.segs, want)
	}
}

func TestFrontier_CommitMergesEqualHeights(t *testing.T) {
	f := newFrontier(100, 100)
	f.commit(20, 30, 10)
	f.commit(0, 20, 10)

	want := []segment{
		{start: 0, width: 50, height: 10},
		{start: 50, width: 50, height: 0},
	}
	if !segsEqual(f.segs, want) {
		t.Errorf("got %v, want %v", f.segs, want)
	}
}

func TestFrontier_InvariantsAfterCommits(t *testing.T) {
	f := newFrontier(100, 100)
	commits := [][3]int{{0, 40, 40}, {40, 40, 40}, {10, 50, 70}, {0, 100, 90}, {30, 20, 95}}
	for _, c := range commits {
		f.commit(c[0], c[1], c[2])

		// Segments stay contiguous, sorted, and span the page width.
		total := 0
		pos := 0
		for _, s := range f.segs {
			if s.start != pos {
				t.Fatalf("segment gap at %d: %v", pos, f.segs)
			}
			if s.width <= 0 {
				t.Fatalf("non-positive width: %v", f.segs)
			}
			pos = s.start + s.width
			total += s.width
		}
		if total != 100 {
			t.Fatalf("widths sum to %d, want 100: %v", total, f.segs)
		}
	}
}

func TestFrontier_LowestFindsValley(t *testing.T) {
	f := newFrontier(100, 100)
	f.commit(0, 40, 40)
	f.commit(40, 40, 40)
	// Frontier is now 40 high over [0,80) and 0 over [80,100).

	x, top, ok := f.lowest(20, 10, false)
	if !ok {
		t.Fatal("expected fit")
	}
	if x != 80 || top != 10 {
		t.Errorf("got x=%d top=%d, want x=80 top=10", x, top)
	}
}

func TestFrontier_LowestTieBreak(t *testing.T) {
	f := newFrontier(100, 100)

	x, top, ok := f.lowest(10, 10, false)
	if !ok || x != 0 || top != 10 {
		t.Errorf("forward: got x=%d top=%d ok=%v, want x=0 top=10", x, top, ok)
	}

	x, top, ok = f.lowest(10, 10, true)
	if !ok || x != 90 || top != 10 {
		t.Errorf("reverse: got x=%d top=%d ok=%v, want x=90 top=10", x, top, ok)
	}
}

func TestFrontier_LowestTooWide(t *testing.T) {
	f := newFrontier(100, 100)
	if _, _, ok := f.lowest(101, 10, false); ok {
		t.Error("expected no fit for width 101")
	}
}

func TestFrontier_PlaceRotatesIntoValley(t *testing.T) {
	f := newFrontier(100, 100)
	f.commit(0, 70, 50)

	// A 60x20 item only fits low in the 30-wide valley when rotated.
	x, y, rotated, ok := f.place(60, 20, RotateLandscape)
	if !ok {
		t.Fatal("expected fit")
	}
	if !rotated || x != 70 || y != 0 {
		t.Errorf("got x=%d y=%d rotated=%v, want 70,0 rotated", x, y, rotated)
	}
}

func TestFrontier_PlaceRotationTie(t *testing.T) {
	// Both orientations of a 40x10 item top out at 40 here: unrotated it
	// sits on the 30-high plateau, rotated it drops into the 10-wide well.
	// Landscape inputs prefer the rotated orientation on such ties.
	f := newFrontier(100, 100)
	f.commit(0, 90, 30)

	x, y, rotated, ok := f.place(40, 10, RotateLandscape)
	if !ok {
		t.Fatal("expected fit")
	}
	if !rotated || x != 90 || y != 0 {
		t.Errorf("landscape tie: got x=%d y=%d rotated=%v, want 90,0 rotated", x, y, rotated)
	}

	// The mirrored portrait input keeps its orientation on the same tie.
	f = newFrontier(100, 100)
	f.commit(0, 90, 30)

	x, y, rotated, ok = f.place(10, 40, RotateLandscape)
	if !ok {
		t.Fatal("expected fit")
	}
	if rotated || x != 90 || y != 0 {
		t.Errorf("portrait tie: got x=%d y=%d rotated=%v, want 90,0 unrotated", x, y, rotated)
	}
}

func TestFrontier_PlaceRespectsPageHeight(t *testing.T) {
	f := newFrontier(100, 50)
	f.commit(0, 100, 40)

	if _, _, _, ok := f.place(10, 20, 0); ok {
		t.Error("expected failure: 40+20 exceeds page height 50")
	}
	if _, _, _, ok := f.place(10, 10, 0); !ok {
		t.Error("expected fit: 40+10 is exactly the page height")
	}
}
