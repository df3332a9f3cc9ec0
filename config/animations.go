package config

// Animation names selected by the player movement system.
const (
	AnimWalkDown  = "walk-down"
	AnimWalkUp    = "walk-up"
	AnimWalkLeft  = "walk-left"
	AnimWalkRight = "walk-right"
)

type AnimationDef struct {
	Frames []int // Spritesheet frame indices, played in order
	FPS    float64
	Loop   bool
}

// CharacterAnimations maps a spritesheet key (e.g., "player")
// to its named animation definitions.
var CharacterAnimations = map[string]map[string]AnimationDef{
	"player": {
		AnimWalkRight: {Frames: []int{7, 8, 7, 9}, FPS: 4, Loop: true},
		AnimWalkLeft:  {Frames: []int{11, 12, 11, 13}, FPS: 4, Loop: true},
		AnimWalkDown:  {Frames: []int{0, 1, 0, 2}, FPS: 4, Loop: true},
		AnimWalkUp:    {Frames: []int{3, 4, 3, 5}, FPS: 4, Loop: true},
	},
}
