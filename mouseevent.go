package fbinput

// MouseButton identifies which physical button a MouseEvent concerns. For
// Motion events the button field is set to ButtonLeft but consumers are
// expected to ignore it (spec §4.2).
type MouseButton uint8

const (
	ButtonLeft MouseButton = iota
	ButtonMiddle
	ButtonRight
)

// MouseEventKind distinguishes a button transition from plain motion.
type MouseEventKind uint8

const (
	MousePress MouseEventKind = iota
	MouseRelease
	MouseMotion
)

// MouseEvent is a single normalized pointer event. X and Y are always
// within [0, width) x [0, height) for the screen size currently configured
// on the Handler that produced it.
type MouseEvent struct {
	X, Y      int
	Button    MouseButton
	Kind      MouseEventKind
	Modifiers Modifier
}

// Clamp confines (x, y) to [0, width-1] x [0, height-1], per spec §3's
// coordinate invariant. width/height of zero clamp to 0.
func Clamp(x, y int, width, height uint32) (int, int) {
	if width == 0 {
		x = 0
	} else if x < 0 {
		x = 0
	} else if x > int(width)-1 {
		x = int(width) - 1
	}
	if height == 0 {
		y = 0
	} else if y < 0 {
		y = 0
	} else if y > int(height)-1 {
		y = int(height) - 1
	}
	return x, y
}
