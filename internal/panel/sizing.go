package panel

import "github.com/shelfhq/shelf/pkg/types"

// Fixed layout metrics. The paddings swap between the long and short axis
// with orientation.
const (
	itemGap      = 4.0
	longAxisPad  = 10.0
	shortAxisPad = 8.0
)

// Note panels have a fixed initial size.
const (
	noteWidth  = 260.0
	noteHeight = 200.0
)

// SizeFor computes a shelf panel's size as a pure function of shelf state.
// An empty shelf sizes as if it held one entry so the panel never collapses
// to nothing.
func SizeFor(shelf types.Shelf) (width, height float64) {
	n := float64(len(shelf.Entries))
	if n < 1 {
		n = 1
	}
	s := shelf.IconSize
	long := n*s + (n-1)*itemGap + 2*longAxisPad
	short := s + 2*shortAxisPad

	if shelf.Orientation == types.OrientationVertical {
		return short, long
	}
	return long, short
}
