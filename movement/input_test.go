package movement

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type heldKeys map[Key]bool

func (h heldKeys) IsKeyDown(k Key) bool { return h[k] }

func TestSampleDirection_AllCombinations(t *testing.T) {
	for mask := 0; mask < 16; mask++ {
		keys := heldKeys{
			KeyLeft:  mask&1 != 0,
			KeyRight: mask&2 != 0,
			KeyUp:    mask&4 != 0,
			KeyDown:  mask&8 != 0,
		}

		want := None
		switch {
		case keys[KeyDown]:
			want = Down
		case keys[KeyUp]:
			want = Up
		case keys[KeyRight]:
			want = Right
		case keys[KeyLeft]:
			want = Left
		}

		assert.Equal(t, want, SampleDirection(keys), "mask %04b", mask)
	}
}

func TestSampleDirection_PollOrder(t *testing.T) {
	var polled []Key
	keys := KeyReaderFunc(func(k Key) bool {
		polled = append(polled, k)
		return false
	})

	assert.Equal(t, None, SampleDirection(keys))
	assert.Equal(t, []Key{KeyLeft, KeyRight, KeyUp, KeyDown}, polled)
}

func TestDirectionString(t *testing.T) {
	tests := []struct {
		dir  Direction
		want string
	}{
		{None, "none"},
		{Up, "up"},
		{Down, "down"},
		{Left, "left"},
		{Right, "right"},
	}
	for _, tc := range tests {
		t.Run(tc.want, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.dir.String())
			got, ok := ParseDirection(tc.want)
			assert.True(t, ok)
			assert.Equal(t, tc.dir, got)
		})
	}

	_, ok := ParseDirection("diagonal")
	assert.False(t, ok)
}
