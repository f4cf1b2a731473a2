package snake

// lfsrReseed replaces the all-zero register state, which would otherwise
// stall the shift sequence forever. It doubles as the fallback when the
// external entropy sample reads zero at seed time.
const lfsrReseed = 0x5A

// lfsr8 is the 8-bit linear-feedback shift register behind fruit
// placement. Taps x^8 + x^6 + x^5 + x^4 + 1 give the maximal 255-state
// period; starting from any nonzero seed the register never reaches zero.
type lfsr8 struct {
	state uint8
}

func (l *lfsr8) seed(s uint8) {
	if s == 0 {
		s = lfsrReseed
	}
	l.state = s
}

// next advances the register one shift and returns the new state.
// The zero guard is defensive: a maximal-tap LFSR seeded nonzero cannot
// produce zero, but a stalled register would freeze fruit placement.
func (l *lfsr8) next() uint8 {
	fb := ((l.state >> 7) ^ (l.state >> 5) ^ (l.state >> 4) ^ (l.state >> 3)) & 1
	s := l.state<<1 | fb
	if s == 0 {
		s = lfsrReseed
	}
	l.state = s
	return s
}

// coord splits the current state into the two 4-bit grid axes:
// X from the low nibble, Y from the high nibble.
func (l *lfsr8) coord() Coord {
	return Coord{X: int(l.state & 0x0F), Y: int(l.state >> 4)}
}
