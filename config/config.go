package config

import (
	"image/color"

	"github.com/yohamta/donburi/ecs"
)

// Default is the single render layer used by every state's ECS.
const Default ecs.LayerID = 0

// GameConfig contains top-level game properties
type GameConfig struct {
	Name            string
	BackgroundColor color.RGBA
	AssetsPath      string // Base directory inside the embedded asset filesystem
	LevelsDir       string // Directory (relative to AssetsPath) holding level files
	LevelExt        string // Level file extension appended to a map path
	StartMap        string // Map path requested by the load state
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	// Movement
	Speed              float64 // Velocity added per tick while a direction is held
	Friction           float64 // Per-tick velocity multiplier, closer to 1 = more sliding
	AnimationThreshold float64 // Minimum |velocity| on an axis to pick a walk animation

	// Dimensions
	FrameWidth      int
	FrameHeight     int
	CollisionWidth  float64
	CollisionHeight float64
	CollisionOffX   float64 // Body offset from the sprite's top-left corner
	CollisionOffY   float64
	AnchorX         float64 // Sprite anchor, 0.5/1 = bottom centre
	AnchorY         float64
}

// MapConfig contains tilemap layout and collision configuration
type MapConfig struct {
	TileSize       int
	TileHalfSize   int
	CollideFrom    int // First collidable tile index (inclusive)
	CollideTo      int // Last collidable tile index (inclusive)
	TilesLayer     string
	DetailsLayer   string
	ObjectsLayer   string
	SpawnType      string
	DefaultTexture string
	SpawnSelection string // first, nearest-origin or error-on-multiple
	SpaceCellSize  int    // resolv broadphase cell size in pixels
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	Smoothing     float64 // Divisor for each smoothing step, larger = slower
	SnapThreshold float64 // Step size below which the camera lands on the target
	DeadZoneX     float64 // Pixels of horizontal delta before smoothing engages
	DeadZoneY     float64 // Pixels of vertical delta before smoothing engages
	ClampToWorld  bool    // Keep the viewport inside the world bounds
}

// LoadingConfig contains the progress bar shown while a state preloads
type LoadingConfig struct {
	BarWidth     float64
	BarHeight    float64
	BarColor     color.RGBA
	BarBgColor   color.RGBA
	EaseSeconds  float32 // Time for the displayed progress to catch up with the real one
	FadeInFrames int     // World fade-in duration after loading completes
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Enabled       bool // Draw collision boxes and the debug overlay
	LogCacheHits  bool
	ShowTileIndex bool
}

// LogConfig mirrors the logger options
type LogConfig struct {
	Level       string // debug, info, warn, error
	Format      string // console or json
	Development bool
}

type Config struct {
	Width  int
	Height int
	TPS    int
}

var C *Config
var Game GameConfig
var Player PlayerConfig
var Map MapConfig
var Camera CameraConfig
var Loading LoadingConfig
var Debug DebugConfig
var Log LogConfig

func init() {
	C = &Config{
		Width:  240,
		Height: 160,
		TPS:    60,
	}

	Game = GameConfig{
		Name:            "Tile Walk",
		BackgroundColor: color.RGBA{R: 0x3f, G: 0x28, B: 0x32, A: 0xff},
		AssetsPath:      ".",
		LevelsDir:       "levels",
		LevelExt:        ".tmx",
		StartMap:        "map",
	}

	Player = PlayerConfig{
		Speed:              4,
		Friction:           0.925,
		AnimationThreshold: 10,

		FrameWidth:      12,
		FrameHeight:     15,
		CollisionWidth:  8,
		CollisionHeight: 8,
		CollisionOffX:   2,
		CollisionOffY:   5,
		AnchorX:         0.5,
		AnchorY:         1,
	}

	Map = MapConfig{
		TileSize:       8,
		TileHalfSize:   4,
		CollideFrom:    1,
		CollideTo:      32,
		TilesLayer:     "tiles",
		DetailsLayer:   "details",
		ObjectsLayer:   "objects",
		SpawnType:      "start",
		DefaultTexture: "tiles",
		SpawnSelection: "first",
		SpaceCellSize:  8,
	}

	Camera = CameraConfig{
		Smoothing:     10,
		SnapThreshold: 0.01,
		DeadZoneX:     3,
		DeadZoneY:     4,
		ClampToWorld:  true,
	}

	Loading = LoadingConfig{
		BarWidth:     120,
		BarHeight:    6,
		BarColor:     color.RGBA{R: 0xe8, G: 0xd6, B: 0xa8, A: 0xff},
		BarBgColor:   color.RGBA{R: 0x1c, G: 0x12, B: 0x17, A: 0xff},
		EaseSeconds:  0.25,
		FadeInFrames: 20,
	}

	Debug = DebugConfig{
		Enabled: false,
	}

	Log = LogConfig{
		Level:       "info",
		Format:      "console",
		Development: true,
	}
}
