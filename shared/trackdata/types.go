// Package trackdata reads racetrack centerlines from .track text files and
// Tiled maps. It produces plain point data and has no dependencies on donburi
// or resolv.
package trackdata

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl64"
)

// ErrNotEnoughPoints is returned when fewer than the minimum number of
// waypoints survive colinear reduction.
var ErrNotEnoughPoints = errors.New("not enough points to make a racetrack")

// FormatError reports a malformed waypoint line.
type FormatError struct {
	File   string
	Line   int // 1-based
	Reason string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format in line %d of %s: %s", e.Line, e.File, e.Reason)
}

// TrackData holds the cleaned centerline of a racetrack.
type TrackData struct {
	Name     string       // Track name that was requested
	File     string       // File the points were read from
	Fallback bool         // Requested track was missing and File is the default track
	Points   []mgl64.Vec3 // Closed loop; the last point connects back to the first
}
