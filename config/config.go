package config

import "github.com/yohamta/donburi/ecs"

// TrackConfig contains track loading and layout configuration values
type TrackConfig struct {
	// Loading
	Dir          string // Directory holding .track and .tmx files
	DefaultTrack string // Substituted when the requested track is missing
	Extension    string

	// Reference assets used for dimension queries
	WallAsset    string
	FloorAsset   string
	CarAsset     string
	PowerupAsset string

	// Layout
	CarWidthMultiplier float64 // Track width = max(wall dim) + car width * multiplier
	MinPoints          int     // Points required after colinear reduction
	ColinearEpsilon    float64 // Cross product magnitude treated as zero
}

// PowerupConfig contains powerup placement configuration values
type PowerupConfig struct {
	SpawnChance float64 // Probability of a powerup on each centerline segment
	MinFraction float64 // Placement range along the segment
	MaxFraction float64

	// Hover animation
	HoverHeight   float64 // World units above the spawn point at the top of the bob
	HoverDuration float32 // Seconds for one half of the bob
}

// CollisionConfig contains collision space configuration values
type CollisionConfig struct {
	CellSize int     // resolv cell size in world units
	Margin   float64 // Padding added around the track bounds
}

// MinimapConfig contains minimap rendering configuration values
type MinimapConfig struct {
	Size    int     // Output image edge in pixels
	Padding float64 // Pixels kept clear around the track
}

// Default is the ECS layer every racetrack entity is created on.
const Default ecs.LayerID = 0

// Global configuration instances
var Track TrackConfig
var Powerup PowerupConfig
var Collision CollisionConfig
var Minimap MinimapConfig

func init() {
	Track = TrackConfig{
		Dir:          "racetracks",
		DefaultTrack: "test.track",
		Extension:    ".track",

		WallAsset:    "concrete_crate",
		FloorAsset:   "ground",
		CarAsset:     "groundroamer",
		PowerupAsset: "powerup",

		CarWidthMultiplier: 5,
		MinPoints:          4,
		ColinearEpsilon:    1e-6,
	}

	Powerup = PowerupConfig{
		SpawnChance: 0.5,
		MinFraction: 0.1,
		MaxFraction: 0.9,

		HoverHeight:   0.5,
		HoverDuration: 1,
	}

	Collision = CollisionConfig{
		CellSize: 4,
		Margin:   16,
	}

	Minimap = MinimapConfig{
		Size:    512,
		Padding: 16,
	}
}
