package movement

// Key is one of the four directional keys the controller polls.
type Key int

const (
	KeyLeft Key = iota
	KeyRight
	KeyUp
	KeyDown
)

// KeyReader reports whether a directional key is held this tick.
type KeyReader interface {
	IsKeyDown(k Key) bool
}

// KeyReaderFunc adapts a plain function to KeyReader.
type KeyReaderFunc func(k Key) bool

func (f KeyReaderFunc) IsKeyDown(k Key) bool { return f(k) }

// SampleDirection polls Left, Right, Up, Down in that order. A later held key
// overwrites an earlier one, so Down wins over Up, Up over Right, Right over Left.
func SampleDirection(keys KeyReader) Direction {
	d := None
	if keys.IsKeyDown(KeyLeft) {
		d = Left
	}
	if keys.IsKeyDown(KeyRight) {
		d = Right
	}
	if keys.IsKeyDown(KeyUp) {
		d = Up
	}
	if keys.IsKeyDown(KeyDown) {
		d = Down
	}
	return d
}
