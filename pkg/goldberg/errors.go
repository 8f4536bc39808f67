// pkg/goldberg/errors.go
package goldberg

import "errors"

var (
	// ErrInvalidFrequency is returned when a subdivision frequency below 1 is requested.
	ErrInvalidFrequency = errors.New("goldberg: subdivision frequency must be at least 1")
	// ErrNoPath is returned by FindPath when the target cannot be reached.
	ErrNoPath = errors.New("goldberg: no path between tiles")
	// ErrTileNotFound is returned when a tile ID is outside the graph.
	ErrTileNotFound = errors.New("goldberg: tile not found")
)
