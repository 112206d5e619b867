package plotgrid

import "errors"

var (
	// ErrNoSuchField is returned when a column name is not present in a data frame.
	ErrNoSuchField = errors.New("plotgrid: no such field")

	// ErrLength is returned when a column does not match the row count of its frame.
	ErrLength = errors.New("plotgrid: field length does not match data frame")

	// ErrDuplicateField is returned when a column name is added twice.
	ErrDuplicateField = errors.New("plotgrid: duplicate field")

	// ErrUnknownColor is returned by ParseColor for strings which name no color.
	ErrUnknownColor = errors.New("plotgrid: unknown color")
)
