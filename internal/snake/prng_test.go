package snake

import "testing"

func TestLfsrNeverZero(t *testing.T) {
	for _, seed := range []uint8{1, 0x5A, 0x80, 0xFF} {
		var l lfsr8
		l.seed(seed)
		for i := 0; i < 10000; i++ {
			if s := l.next(); s == 0 {
				t.Fatalf("seed %#02x: state reached zero after %d steps", seed, i+1)
			}
		}
	}
}

func TestLfsrFullPeriod(t *testing.T) {
	var l lfsr8
	l.seed(1)

	seen := make(map[uint8]bool)
	seen[l.state] = true
	for i := 0; i < 254; i++ {
		s := l.next()
		if seen[s] {
			t.Fatalf("state %#02x repeated after %d steps, period is not maximal", s, i+1)
		}
		seen[s] = true
	}
	if len(seen) != 255 {
		t.Errorf("expected 255 distinct states, got %d", len(seen))
	}
	// Step 255 closes the cycle back to the seed
	if s := l.next(); s != 1 {
		t.Errorf("expected sequence to return to seed 1 after 255 steps, got %#02x", s)
	}
}

func TestLfsrZeroSeedCoerced(t *testing.T) {
	var l lfsr8
	l.seed(0)
	if l.state != lfsrReseed {
		t.Errorf("zero seed should coerce to %#02x, got %#02x", lfsrReseed, l.state)
	}
}

func TestLfsrCoordSplit(t *testing.T) {
	tests := []struct {
		state uint8
		want  Coord
	}{
		{0xAB, Coord{X: 0xB, Y: 0xA}},
		{0x01, Coord{X: 1, Y: 0}},
		{0xF0, Coord{X: 0, Y: 15}},
		{0xFF, Coord{X: 15, Y: 15}},
	}

	for _, tc := range tests {
		l := lfsr8{state: tc.state}
		if got := l.coord(); got != tc.want {
			t.Errorf("coord(%#02x) = %v, expected %v", tc.state, got, tc.want)
		}
	}
}
