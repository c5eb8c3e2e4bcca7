package types

// Shelf orientations.
const (
	OrientationHorizontal = "horizontal"
	OrientationVertical   = "vertical"
)

// Default geometry for newly created shelves.
const (
	DefaultPositionX = 100
	DefaultPositionY = 100
	DefaultIconSize  = 48
)

// Shelf is a named, independently positioned collection of entries rendered
// as one floating panel. The JSON field names are the on-disk document
// format and must not change. Entry order is visual order and is preserved
// exactly across save and load.
type Shelf struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Entries     []Entry `json:"items"`
	PositionX   float64 `json:"positionX"`
	PositionY   float64 `json:"positionY"`
	Orientation string  `json:"orientation"`
	AutoHide    bool    `json:"autoHide"`
	IconSize    float64 `json:"iconSize"`
	Visible     bool    `json:"isVisible"`
}

// NewShelf builds a shelf with default geometry: position (100,100),
// horizontal, icon size 48, visible.
func NewShelf(name string) Shelf {
	return Shelf{
		ID:          newID(),
		Name:        name,
		PositionX:   DefaultPositionX,
		PositionY:   DefaultPositionY,
		Orientation: OrientationHorizontal,
		IconSize:    DefaultIconSize,
		Visible:     true,
	}
}

// EntryIndex returns the position of the entry with the given id, or -1.
func (s *Shelf) EntryIndex(entryID string) int {
	for i, e := range s.Entries {
		if e.ID == entryID {
			return i
		}
	}
	return -1
}

// Entry returns a copy of the entry with the given id.
func (s *Shelf) Entry(entryID string) (Entry, bool) {
	if i := s.EntryIndex(entryID); i >= 0 {
		return s.Entries[i], true
	}
	return Entry{}, false
}

// Clone returns a deep copy of the shelf, including its entry slice.
func (s Shelf) Clone() Shelf {
	out := s
	if s.Entries != nil {
		out.Entries = make([]Entry, len(s.Entries))
		copy(out.Entries, s.Entries)
	}
	return out
}

// Validate checks the shelf record and every entry in it.
func (s Shelf) Validate() error {
	if s.ID == "" {
		return ErrInvalidShelf
	}
	if s.Orientation != OrientationHorizontal && s.Orientation != OrientationVertical {
		return ErrInvalidShelf
	}
	for _, e := range s.Entries {
		if err := e.Validate(); err != nil {
			return err
		}
	}
	return nil
}
