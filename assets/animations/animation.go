package animations

// Animation plays a list of spritesheet frames at a fixed rate.
type Animation struct {
	Name   string
	Frames []int
	FPS    float64
	Loop   bool

	ticks    float64 // Ticks spent on the current frame
	index    int
	Finished bool
}

// Update advances the animation by one game tick at tps ticks per second.
func (a *Animation) Update(tps int) {
	if a.Finished || len(a.Frames) == 0 || a.FPS <= 0 || tps <= 0 {
		return
	}
	a.ticks++
	perFrame := float64(tps) / a.FPS
	for a.ticks >= perFrame {
		a.ticks -= perFrame
		a.index++
		if a.index >= len(a.Frames) {
			if !a.Loop {
				a.index = len(a.Frames) - 1
				a.Finished = true
				return
			}
			a.index = 0
		}
	}
}

// Frame returns the spritesheet index of the current frame.
func (a *Animation) Frame() int {
	if len(a.Frames) == 0 {
		return 0
	}
	return a.Frames[a.index]
}

func (a *Animation) Restart() {
	a.index = 0
	a.ticks = 0
	a.Finished = false
}

func NewAnimation(name string, frames []int, fps float64, loop bool) *Animation {
	return &Animation{
		Name:   name,
		Frames: frames,
		FPS:    fps,
		Loop:   loop,
	}
}
