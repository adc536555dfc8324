package board

import "errors"

var (
	// ErrInvalidConfig reports dimensions or a mine density that cannot
	// produce a playable board.
	ErrInvalidConfig = errors.New("invalid board config")

	// ErrOutOfBounds reports a coordinate outside the board. Frontends map
	// clicks and cursor positions to cells; a coordinate landing here means
	// that mapping is broken.
	ErrOutOfBounds = errors.New("coordinate out of bounds")

	// ErrNotOpened reports a content query for a cell that has not been
	// opened yet.
	ErrNotOpened = errors.New("cell not opened")
)
