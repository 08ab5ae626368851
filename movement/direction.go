package movement

// Direction is the single movement direction sampled for a tick.
// Only one value is ever active, so it is a plain enum rather than flags.
type Direction int

const (
	None Direction = iota
	Up
	Down
	Left
	Right
)

// Directions lists every non-None direction.
var Directions = [...]Direction{Up, Down, Left, Right}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection is the inverse of String. ok is false for unknown names.
func ParseDirection(s string) (d Direction, ok bool) {
	switch s {
	case "up":
		return Up, true
	case "down":
		return Down, true
	case "left":
		return Left, true
	case "right":
		return Right, true
	case "none", "":
		return None, true
	}
	return None, false
}
