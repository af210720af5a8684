package collision

import "github.com/automoto/racetrack/tags"

// Track is the registry shared by every racetrack object.
var Track = NewRegistry(
	tags.ResolvWall,
	tags.ResolvFloor,
	tags.ResolvCheckpoint,
	tags.ResolvPowerup,
)

var (
	Wall       = Track.Mask(tags.ResolvWall)
	Floor      = Track.Mask(tags.ResolvFloor)
	Checkpoint = Track.Mask(tags.ResolvCheckpoint)
	Powerup    = Track.Mask(tags.ResolvPowerup)
)
