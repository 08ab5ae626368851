package movement

import "github.com/rs/zerolog"

// DefaultAnimationFPS is the playback rate of a walk cycle.
const DefaultAnimationFPS = 15.0

// RepeatMode controls what a sprite animation does after its last frame.
type RepeatMode int

const (
	PlayOnce RepeatMode = iota
	LoopInfinite
)

func (m RepeatMode) String() string {
	if m == LoopInfinite {
		return "loop"
	}
	return "once"
}

// Animator is the sprite-sheet player the controller drives.
type Animator interface {
	Play(frames []int, mode RepeatMode, fps float64)
	Stop()
	SetFrame(index int)
}

// Body receives the character velocity every tick.
type Body interface {
	SetVelocity(v Vec3)
}

// Settings are the tunables of a Controller. Zero fields take defaults.
type Settings struct {
	Speed        float64
	AnimationFPS float64
	Frames       FrameTable
	Logger       *zerolog.Logger
}

func (s Settings) withDefaults() Settings {
	if s.Speed == 0 {
		s.Speed = DefaultSpeed
	}
	if s.AnimationFPS == 0 {
		s.AnimationFPS = DefaultAnimationFPS
	}
	if s.Frames == nil {
		s.Frames = DefaultFrames()
	}
	if s.Logger == nil {
		nop := zerolog.Nop()
		s.Logger = &nop
	}
	return s
}

// Controller maps directional input to a walk animation and a velocity.
// It keeps the previous tick's direction to detect changes and must only be
// updated from the game loop.
type Controller struct {
	keys     KeyReader
	anim     Animator
	body     Body
	settings Settings
	previous Direction
}

func NewController(keys KeyReader, anim Animator, body Body, s Settings) *Controller {
	return &Controller{
		keys:     keys,
		anim:     anim,
		body:     body,
		settings: s.withDefaults(),
	}
}

// Update runs one tick and returns the sampled direction.
func (c *Controller) Update() Direction {
	d := SampleDirection(c.keys)
	c.animate(d)
	c.body.SetVelocity(Velocity(d, c.settings.Speed))
	return d
}

// Direction is the direction retained from the last Update.
func (c *Controller) Direction() Direction {
	return c.previous
}

// Settings returns the effective settings, defaults applied.
func (c *Controller) Settings() Settings {
	return c.settings
}

func (c *Controller) animate(d Direction) {
	switch {
	case d == None && c.previous != None:
		c.anim.Stop()
		if first, ok := c.settings.Frames.FirstFrame(c.previous); ok {
			c.anim.SetFrame(first)
		}
		c.settings.Logger.Debug().Stringer("from", c.previous).Msg("walk stopped")
	case d != None && d != c.previous:
		c.anim.Play(c.settings.Frames.Frames(d), LoopInfinite, c.settings.AnimationFPS)
		c.settings.Logger.Debug().Stringer("from", c.previous).Stringer("to", d).Msg("walk started")
	}
	c.previous = d
}
