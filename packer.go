package atlas

// page is one fixed-size packing surface owned by the packer.
type page struct {
	frontier *frontier
	count    int // placements on this page
}

// Packer packs rectangles into fixed-size pages using the landfill skyline
// heuristic. Create one with [NewPacker].
//
// A Packer is not safe for concurrent use; concurrent packing of independent
// atlases should use one Packer per goroutine.
type Packer struct {
	config Config
	pages  []*page

	// Results of the last successful Add.
	filled   Extent
	usedArea int
}

// NewPacker creates a packer for pages of the configured size.
func NewPacker(config Config) (*Packer, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	return &Packer{config: config}, nil
}

// Config returns the packer configuration.
func (p *Packer) Config() Config {
	return p.config
}

// Add packs the given sizes and returns one placement per input, in input
// order. Each call is a complete, independent pack: placements from earlier
// calls are discarded.
//
// Rectangles are placed sorted by the configured heuristic, first-fit across
// pages in creation order. When a rectangle fits no open page a new page is
// opened, up to Config.MaxPages. On failure Add returns a [*PackError]
// wrapping one of the sentinel errors and no placements; the packer then
// still reports the extent of the last successful pack.
func (p *Packer) Add(sizes []Size) ([]Placement, error) {
	cfg := &p.config
	pad := 2 * cfg.Padding

	for i, s := range sizes {
		if s.Width < 0 || s.Height < 0 {
			return nil, &PackError{Index: i, Size: s, Err: ErrInvalidSize}
		}
	}

	placements := make([]Placement, len(sizes))
	pages := []*page{newPage(cfg)}
	usedArea := 0

	for _, idx := range sortIndices(sizes, cfg.Flags) {
		w := sizes[idx].Width + pad
		h := sizes[idx].Height + pad

		// Zero-area rectangles don't consume space: they sit at the origin
		// of the currently shortest page. Padding makes them non-zero and
		// then they are placed like any other rectangle.
		if w == 0 || h == 0 {
			placements[idx] = Placement{Page: shortestPage(pages)}
			pages[placements[idx].Page].count++
			continue
		}

		if !fitsAnyOrientation(w, h, cfg) {
			return nil, &PackError{Index: idx, Size: sizes[idx], Err: ErrSizeExceedsPage}
		}

		placed := false
		for pi, pg := range pages {
			if x, y, rot, ok := pg.frontier.place(w, h, cfg.Flags); ok {
				placements[idx] = Placement{X: x + cfg.Padding, Y: y + cfg.Padding, Page: pi, Rotated: rot}
				pg.count++
				placed = true
				break
			}
		}
		if !placed {
			if len(pages) == cfg.MaxPages {
				return nil, &PackError{Index: idx, Size: sizes[idx], Err: ErrPageLimitReached}
			}
			pg := newPage(cfg)
			pages = append(pages, pg)
			Logger().Debug("atlas: opened page", "page", len(pages)-1)

			x, y, rot, ok := pg.frontier.place(w, h, cfg.Flags)
			if !ok {
				// Guarded by fitsAnyOrientation above.
				return nil, &PackError{Index: idx, Size: sizes[idx], Err: ErrSizeExceedsPage}
			}
			placements[idx] = Placement{X: x + cfg.Padding, Y: y + cfg.Padding, Page: len(pages) - 1, Rotated: rot}
			pg.count++
		}
		usedArea += sizes[idx].Area()
	}

	p.pages = pages
	p.usedArea = usedArea
	p.filled = filledExtent(cfg.Width, pages)
	Logger().Debug("atlas: pack complete",
		"items", len(sizes),
		"pages", p.filled.Pages,
		"height", p.filled.Height,
		"utilization", p.Utilization())
	return placements, nil
}

// FilledSize returns the extent of the last successful pack: the page width,
// the maximum used height across pages, and the number of non-empty pages.
// Before the first successful Add it returns the zero Extent.
func (p *Packer) FilledSize() Extent {
	return p.filled
}

// UsedArea returns the summed area of all rectangles in the last successful
// pack, without padding.
func (p *Packer) UsedArea() int {
	return p.usedArea
}

// Utilization returns the fraction of total page area covered by rectangles
// in the last successful pack (0.0 to 1.0).
func (p *Packer) Utilization() float64 {
	if p.filled.Pages == 0 {
		return 0
	}
	total := p.config.Width * p.config.Height * p.filled.Pages
	return float64(p.usedArea) / float64(total)
}

// PageCount returns the number of non-empty pages in the last successful
// pack.
func (p *Packer) PageCount() int {
	return p.filled.Pages
}

func newPage(cfg *Config) *page {
	return &page{frontier: newFrontier(cfg.Width, cfg.Height)}
}

// shortestPage returns the index of the open page with the lowest filled
// height, preferring the earliest on ties.
func shortestPage(pages []*page) int {
	best, bestH := 0, -1
	for i, pg := range pages {
		if h := pg.frontier.usedHeight(); bestH < 0 || h < bestH {
			best, bestH = i, h
		}
	}
	return best
}

// fitsAnyOrientation reports whether a padded w x h rectangle fits an empty
// page in at least one permitted orientation.
func fitsAnyOrientation(w, h int, cfg *Config) bool {
	if w <= cfg.Width && h <= cfg.Height {
		return true
	}
	return cfg.Flags&RotateLandscape != 0 && h <= cfg.Width && w <= cfg.Height
}

// filledExtent derives the filled size triple from the page set. Only pages
// holding at least one placement count; with first-fit page opening there
// are never empty trailing pages.
func filledExtent(pageWidth int, pages []*page) Extent {
	e := Extent{Width: pageWidth}
	for _, pg := range pages {
		if pg.count == 0 {
			continue
		}
		e.Pages++
		if h := pg.frontier.usedHeight(); h > e.Height {
			e.Height = h
		}
	}
	return e
}
