package types

import "errors"

// Standard errors returned by the read surface and the CLI layer.
// Mutations that target an absent shelf or entry are silent no-ops by
// contract and do not return these.
var (
	ErrShelfNotFound = errors.New("shelf not found")
	ErrEntryNotFound = errors.New("entry not found")
	ErrInvalidKind   = errors.New("invalid entry kind")
	ErrInvalidEntry  = errors.New("entry payload does not match its kind")
	ErrInvalidShelf  = errors.New("malformed shelf record")
	ErrEmptyName     = errors.New("name must not be empty")
)
