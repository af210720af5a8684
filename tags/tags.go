package tags

import "github.com/yohamta/donburi"

var (
	Wall       = donburi.NewTag().SetName("Wall")
	Floor      = donburi.NewTag().SetName("Floor")
	Checkpoint = donburi.NewTag().SetName("Checkpoint")
	Powerup    = donburi.NewTag().SetName("Powerup")
)

// Resolv tags for track collision
const (
	ResolvWall       = "wall"
	ResolvFloor      = "floor"
	ResolvCheckpoint = "checkpoint"
	ResolvPowerup    = "powerup"
)
