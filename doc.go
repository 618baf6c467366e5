// Package atlas packs rectangular regions (glyph bitmaps, sprite images,
// texture tiles) into one or more fixed-size pages so that no two regions
// overlap and the consumed height is kept as low as possible.
//
// The general-purpose packer is [Packer], which uses a skyline ("landfill")
// heuristic: it tracks the currently filled height profile of every page and
// always drops the next rectangle into the lowest valley wide enough to hold
// it. Rectangles can optionally be rotated by 90 degrees and overflow into
// additional pages up to a configured limit.
//
// For inputs that are all power-of-two squares, [PackPowerOfTwo] provides a
// simpler grid-based packer with no wasted space in all but the last page.
//
// # Usage
//
//	packer, err := atlas.NewPacker(atlas.Config{
//	    Width:    1024,
//	    Height:   1024,
//	    MaxPages: 4,
//	    Flags:    atlas.WidestFirst | atlas.RotateLandscape,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	placements, err := packer.Add(sizes)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	// placements[i] holds the page, offset and rotation of sizes[i].
//	filled := packer.FilledSize()
//
// Every call to [Packer.Add] is a complete, independent pack over the given
// input set. The packer does not upload textures, convert pixel formats or
// normalize UV coordinates; it only computes placements. Feeding glyph or
// image sizes in and building vertex/texture-coordinate data from the
// returned offsets is the caller's job. The [github.com/gogpu/atlas/preview]
// package renders a packed layout into images for debugging, and
// [github.com/gogpu/atlas/glyphset] derives glyph bitmap sizes from a font
// to feed into the packer.
//
// # Determinism
//
// Packing is fully deterministic: the same sizes, configuration and flags
// always produce bit-identical placements. All tie-breaks (sort order, valley
// choice, rotation preference) are defined and covered by tests.
package atlas
