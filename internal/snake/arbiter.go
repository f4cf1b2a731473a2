package snake

// TiltSample is one reading of the two-axis tilt input. Positive
// horizontal tilts toward Right, negative toward Left; positive vertical
// tilts toward Down, negative toward Up. The sign convention is fixed by
// the sensor's axis orientation.
type TiltSample struct {
	Vertical   int
	Horizontal int
}

// arbiter turns raw tilt readings into the requested movement direction.
// It latches the most recent acceptable candidate immediately; movement
// reads the latch at the next step boundary.
type arbiter struct {
	deadzone  int
	requested Direction
}

func newArbiter(deadzone int) arbiter {
	return arbiter{deadzone: deadzone, requested: DirRight}
}

func (a *arbiter) reset() {
	a.requested = DirRight
}

// sample evaluates one tilt reading against the committed direction.
// A candidate that would reverse the snake is discarded; every other
// candidate (including a repeat of the committed direction) overwrites
// the latch.
func (a *arbiter) sample(t TiltSample, committed Direction) {
	cand, ok := a.arbitrate(t)
	if !ok {
		return
	}
	if cand == committed.Opposite() {
		return
	}
	a.requested = cand
}

// arbitrate picks the winning axis. An axis whose magnitude is below the
// deadzone is not valid; with both valid the strictly larger magnitude
// wins and exact ties go to the horizontal axis. The tie-break is a
// fixed design choice, not arbitrary: it mirrors the hysteresis of the
// original input path and must not be "fixed" to something else.
func (a *arbiter) arbitrate(t TiltSample) (Direction, bool) {
	av := abs(t.Vertical)
	ah := abs(t.Horizontal)
	vValid := av >= a.deadzone
	hValid := ah >= a.deadzone

	switch {
	case !vValid && !hValid:
		return DirUp, false
	case hValid && (!vValid || ah >= av):
		if t.Horizontal > 0 {
			return DirRight, true
		}
		return DirLeft, true
	default:
		if t.Vertical > 0 {
			return DirDown, true
		}
		return DirUp, true
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
