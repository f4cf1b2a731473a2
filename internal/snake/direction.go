package snake

// Direction is one of the four cardinal movement directions, ordered so
// that the 180-degree reversal is always two steps away cyclically.
type Direction uint8

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

// Opposite returns the reversal of d. Up/Down and Left/Right are each
// other's opposite; no other pair is.
func (d Direction) Opposite() Direction {
	return (d + 2) % 4
}

// Delta returns the per-step coordinate change for d. The origin is the
// top-left corner, so Up decreases Y.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	default:
		return 1, 0
	}
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}
