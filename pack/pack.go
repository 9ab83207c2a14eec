/*
Package pack lays out named rectangles into a single atlas.

The packer keeps a skyline: the upper contour of everything placed so far,
as a run of horizontal segments. Each item lands at the lowest position the
contour allows, leftmost on ties, and the contour is raised where it
settled. Items are never rotated, no padding is inserted between them, and
the atlas grows downward without bound; only the width is fixed.
*/
package pack

import (
	"errors"
	"fmt"
	"math"
)

// Item is one rectangle to place, identified by name.
type Item struct {
	Name string
	W, H int
}

// Placement locates one item inside the atlas.
type Placement struct {
	Name       string
	X, Y, W, H int
}

// Atlas is the result of packing: the final dimensions plus one placement
// per item, in input order.
type Atlas struct {
	Width      int
	Height     int
	Placements []Placement
}

// ErrEmptySheet is returned when there are no items to pack; the sizing
// heuristic is undefined on an empty set.
var ErrEmptySheet = errors.New("pack: no sprites to pack")

// FitError reports an item wider than the atlas. Oversized items are
// rejected outright, never clipped and never allowed to widen the atlas.
type FitError struct {
	Name     string
	Width    int
	MaxWidth int
}

func (e *FitError) Error() string {
	return fmt.Sprintf("pack: sprite %q is %d pixels wide, wider than the %d pixel atlas", e.Name, e.Width, e.MaxWidth)
}

// MaxWidth computes the target atlas width for a set of items as
// round(sqrt(total width * mean height)), which aims the packed result at a
// roughly square shape. When a single item is wider than that, the width is
// raised to the widest item plus two so everything can fit.
func MaxWidth(items []Item) (int, error) {
	if len(items) == 0 {
		return 0, ErrEmptySheet
	}

	var largest, widthSum, heightSum int
	for _, it := range items {
		if it.W > largest {
			largest = it.W
		}
		widthSum += it.W
		heightSum += it.H
	}

	meanHeight := float64(heightSum) / float64(len(items))
	width := int(math.Round(math.Sqrt(float64(widthSum) * meanHeight)))

	if width < largest {
		width = largest + 2
	}

	return width, nil
}

// Pack places every item into an atlas no wider than maxWidth. Placement is
// deterministic for a fixed input order: the same items in the same order
// always produce the same layout.
func Pack(items []Item, maxWidth int) (*Atlas, error) {
	if len(items) == 0 {
		return nil, ErrEmptySheet
	}

	sky := newSkyline(maxWidth)
	atlas := &Atlas{
		Width:      maxWidth,
		Placements: make([]Placement, 0, len(items)),
	}

	for _, it := range items {
		if it.W > maxWidth {
			return nil, &FitError{Name: it.Name, Width: it.W, MaxWidth: maxWidth}
		}

		// Lowest resting position wins; segments are ordered left to
		// right so the first match of a height is also the leftmost.
		best, bestY := -1, 0
		for i := range sky.segments {
			if y, ok := sky.fit(i, it.W); ok && (best < 0 || y < bestY) {
				best, bestY = i, y
			}
		}

		x, y := sky.place(best, it.W, it.H)
		atlas.Placements = append(atlas.Placements, Placement{Name: it.Name, X: x, Y: y, W: it.W, H: it.H})
		if y+it.H > atlas.Height {
			atlas.Height = y + it.H
		}
	}

	return atlas, nil
}

// segment is one horizontal run of the skyline: the contour is at height y
// for x..x+w.
type segment struct {
	x, y, w int
}

type skyline struct {
	width    int
	segments []segment
}

func newSkyline(width int) *skyline {
	return &skyline{
		width:    width,
		segments: []segment{{0, 0, width}},
	}
}

// fit returns the height at which an item of width w would rest with its
// left edge at segment i's start, or ok=false if it would overhang the
// right edge of the atlas.
func (s *skyline) fit(i, w int) (int, bool) {
	x := s.segments[i].x
	if x+w > s.width {
		return 0, false
	}

	y := s.segments[i].y
	for j := i; w > 0; j++ {
		if s.segments[j].y > y {
			y = s.segments[j].y
		}
		w -= s.segments[j].w
	}
	return y, true
}

// place settles an item of size w x h with its left edge at segment i's
// start, raises the contour over it and returns the item's position.
func (s *skyline) place(i, w, h int) (int, int) {
	x := s.segments[i].x
	y, _ := s.fit(i, w)

	out := make([]segment, 0, len(s.segments)+1)
	inserted := false
	for _, seg := range s.segments {
		switch {
		case seg.x+seg.w <= x:
			out = append(out, seg)
		case seg.x >= x+w:
			if !inserted {
				out = append(out, segment{x, y + h, w})
				inserted = true
			}
			out = append(out, seg)
		default:
			if !inserted {
				out = append(out, segment{x, y + h, w})
				inserted = true
			}
			// Placement starts on a segment boundary, so only a right
			// remainder can survive.
			if right := seg.x + seg.w - (x + w); right > 0 {
				out = append(out, segment{x + w, seg.y, right})
			}
		}
	}
	if !inserted {
		out = append(out, segment{x, y + h, w})
	}

	// Merge neighbours that ended up level.
	merged := out[:1]
	for _, seg := range out[1:] {
		if last := &merged[len(merged)-1]; last.y == seg.y {
			last.w += seg.w
		} else {
			merged = append(merged, seg)
		}
	}
	s.segments = merged

	return x, y
}
