package movement

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recorder captures every call the controller makes into its host.
type recorder struct {
	held       Direction
	calls      []string
	velocities []Vec3
}

func (r *recorder) IsKeyDown(k Key) bool {
	switch r.held {
	case Left:
		return k == KeyLeft
	case Right:
		return k == KeyRight
	case Up:
		return k == KeyUp
	case Down:
		return k == KeyDown
	}
	return false
}

func (r *recorder) Play(frames []int, mode RepeatMode, fps float64) {
	r.calls = append(r.calls, fmt.Sprintf("play %v %s %g", frames, mode, fps))
}

func (r *recorder) Stop() {
	r.calls = append(r.calls, "stop")
}

func (r *recorder) SetFrame(index int) {
	r.calls = append(r.calls, fmt.Sprintf("frame %d", index))
}

func (r *recorder) SetVelocity(v Vec3) {
	r.velocities = append(r.velocities, v)
}

func newRecorded() (*Controller, *recorder) {
	r := &recorder{}
	return NewController(r, r, r, Settings{}), r
}

func TestController_StartStopSequence(t *testing.T) {
	c, r := newRecorded()

	tick := func(d Direction) []string {
		r.calls = nil
		r.held = d
		c.Update()
		return r.calls
	}

	assert.Empty(t, tick(None))
	assert.Equal(t, []string{"play [4 5 6 7] loop 15"}, tick(Left))
	assert.Empty(t, tick(Left))
	assert.Equal(t, []string{"stop", "frame 4"}, tick(None))
	assert.Equal(t, None, c.Direction())
	assert.Len(t, r.velocities, 4)
}

func TestController_HeldUp(t *testing.T) {
	c, r := newRecorded()
	r.held = Up

	for i := 0; i < 3; i++ {
		assert.Equal(t, Up, c.Update())
	}

	require.Len(t, r.velocities, 3)
	for _, v := range r.velocities {
		assert.InDelta(t, 0, v.X, 1e-9)
		assert.InDelta(t, 60, v.Y, 1e-9)
		assert.Zero(t, v.Z)
	}
	assert.Equal(t, []string{"play [8 9 10 11] loop 15"}, r.calls)
}

func TestController_DirectionChange(t *testing.T) {
	c, r := newRecorded()

	for _, d := range []Direction{Right, Right, Down, Up, Up, None, None} {
		r.held = d
		c.Update()
	}

	assert.Equal(t, []string{
		"play [12 13 14 15] loop 15",
		"play [0 1 2 3] loop 15",
		"play [8 9 10 11] loop 15",
		"stop",
		"frame 8",
	}, r.calls)
	assert.Len(t, r.velocities, 7)
	assert.True(t, r.velocities[6].Zero())
}

func TestController_CustomSettings(t *testing.T) {
	r := &recorder{held: Left}
	frames := DefaultFrames()
	frames[Left] = []int{20, 21}
	c := NewController(r, r, r, Settings{Speed: 120, AnimationFPS: 8, Frames: frames})

	c.Update()
	r.held = None
	c.Update()

	assert.Equal(t, []string{"play [20 21] loop 8", "stop", "frame 20"}, r.calls)
	assert.InDelta(t, -120, r.velocities[0].X, 1e-9)
	assert.Equal(t, 120.0, c.Settings().Speed)
}
