package movement

import (
	"errors"
	"fmt"
)

// ErrMissingFrames is returned by Validate when a direction has no frames.
var ErrMissingFrames = errors.New("missing animation frames")

// FrameTable maps a direction to its ordered sprite-sheet frame indices.
type FrameTable map[Direction][]int

// DefaultFrames is the layout of the 4x4 character sheet: one row per direction.
func DefaultFrames() FrameTable {
	return FrameTable{
		Left:  {4, 5, 6, 7},
		Right: {12, 13, 14, 15},
		Up:    {8, 9, 10, 11},
		Down:  {0, 1, 2, 3},
	}
}

// Frames returns the sequence for d, or nil for None.
func (t FrameTable) Frames(d Direction) []int {
	return t[d]
}

// FirstFrame returns the first index of d's sequence. ok is false when d has
// no sequence.
func (t FrameTable) FirstFrame(d Direction) (int, bool) {
	f := t[d]
	if len(f) == 0 {
		return 0, false
	}
	return f[0], true
}

// Validate checks that every direction has at least one non-negative frame.
func (t FrameTable) Validate() error {
	for _, d := range Directions {
		f := t[d]
		if len(f) == 0 {
			return fmt.Errorf("%s: %w", d, ErrMissingFrames)
		}
		for _, i := range f {
			if i < 0 {
				return fmt.Errorf("%s: negative frame index %d", d, i)
			}
		}
	}
	return nil
}

// Clone returns a deep copy so callers can't mutate a shared table.
func (t FrameTable) Clone() FrameTable {
	c := make(FrameTable, len(t))
	for d, f := range t {
		c[d] = append([]int(nil), f...)
	}
	return c
}
