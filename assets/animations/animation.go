package animations

import "github.com/automoto/hoh/movement"

// epsilon absorbs float drift when tick length divides the frame length.
const epsilon = 1e-9

// SpriteAnimation plays an arbitrary list of sheet indices at a fixed rate.
type SpriteAnimation struct {
	frames  []int
	mode    movement.RepeatMode
	fps     float64
	playing bool
	pos     int     // index into frames
	elapsed float64 // seconds spent on the current frame
	frame   int     // sheet index currently shown
	started bool    // Play ran this tick; the first frame gets a full tick count
}

// NewSpriteAnimation returns a stopped player showing sheet index frame.
func NewSpriteAnimation(frame int) *SpriteAnimation {
	return &SpriteAnimation{frame: frame}
}

// Play restarts playback of frames from the first entry.
func (a *SpriteAnimation) Play(frames []int, mode movement.RepeatMode, fps float64) {
	a.frames = append(a.frames[:0], frames...)
	a.mode = mode
	a.fps = fps
	a.pos = 0
	a.elapsed = 0
	a.playing = len(a.frames) > 0 && fps > 0
	a.started = a.playing
	if len(a.frames) > 0 {
		a.frame = a.frames[0]
	}
}

// Stop freezes on the current frame.
func (a *SpriteAnimation) Stop() {
	a.playing = false
	a.started = false
	a.elapsed = 0
}

// SetFrame shows a sheet index directly without changing playback state.
func (a *SpriteAnimation) SetFrame(index int) {
	a.frame = index
}

// Update advances playback by dt seconds. The call in the same tick as Play
// is skipped so every frame is held for the same number of ticks.
func (a *SpriteAnimation) Update(dt float64) {
	if !a.playing {
		return
	}
	if a.started {
		a.started = false
		return
	}

	step := 1 / a.fps
	a.elapsed += dt
	for a.elapsed+epsilon >= step && a.playing {
		a.elapsed -= step
		a.pos++
		if a.pos >= len(a.frames) {
			if a.mode == movement.LoopInfinite {
				// loop back to the beginning
				a.pos = 0
			} else {
				a.pos = len(a.frames) - 1
				a.playing = false
			}
		}
		a.frame = a.frames[a.pos]
	}
}

// Frame is the sheet index to draw.
func (a *SpriteAnimation) Frame() int {
	return a.frame
}

func (a *SpriteAnimation) Playing() bool {
	return a.playing
}

// Frames is the sequence last passed to Play.
func (a *SpriteAnimation) Frames() []int {
	return a.frames
}

func (a *SpriteAnimation) Mode() movement.RepeatMode {
	return a.mode
}

func (a *SpriteAnimation) FPS() float64 {
	return a.fps
}
