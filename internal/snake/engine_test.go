package snake

import "testing"

func newTestEngine(seed uint8) *Engine {
	return New(Params{Deadzone: 40, Seed: seed})
}

func TestPowerUpState(t *testing.T) {
	e := newTestEngine(0x3C)

	wantBody := []Coord{{8, 8}, {7, 8}, {6, 8}, {5, 8}}
	if e.length != len(wantBody) {
		t.Fatalf("length = %d, expected %d", e.length, len(wantBody))
	}
	for i, want := range wantBody {
		if e.body[i] != want {
			t.Errorf("body[%d] = %v, expected %v", i, e.body[i], want)
		}
	}
	if e.dir != DirRight {
		t.Errorf("direction = %v, expected right", e.dir)
	}
	if e.arb.requested != DirRight {
		t.Errorf("requested = %v, expected right", e.arb.requested)
	}
	if e.fruitPending {
		t.Error("power-up fruit should be placed, not pending")
	}
	if e.fruit != initialFruit {
		t.Errorf("fruit = %v, expected %v", e.fruit, initialFruit)
	}
	if e.score != 0 || e.gameOver {
		t.Errorf("score = %d, gameOver = %v, expected fresh state", e.score, e.gameOver)
	}
	if e.rng.state != 0x3C {
		t.Errorf("rng state = %#02x, expected seed 0x3c", e.rng.state)
	}
}

func TestStraightMoveAfterRestart(t *testing.T) {
	e := newTestEngine(1)
	e.Restart(0x3C)

	if !e.fruitPending {
		t.Fatal("restart should defer fruit placement")
	}

	e.Advance()

	wantBody := []Coord{{9, 8}, {8, 8}, {7, 8}, {6, 8}}
	for i, want := range wantBody {
		if e.body[i] != want {
			t.Errorf("body[%d] = %v, expected %v", i, e.body[i], want)
		}
	}
	if e.length != 4 {
		t.Errorf("length = %d, expected 4 (no growth)", e.length)
	}
	if e.score != 0 {
		t.Errorf("score = %#04x, expected 0", uint16(e.score))
	}

	// The deferred placement ran on this first tick: seed 0x3C splits
	// into (12, 3), which is free.
	if e.fruitPending {
		t.Error("placement attempt on a free cell should have committed")
	}
	if want := (Coord{12, 3}); e.fruit != want {
		t.Errorf("fruit = %v, expected %v", e.fruit, want)
	}
}

func TestGrowthOnFruit(t *testing.T) {
	e := newTestEngine(0x3C)

	// Power-up fruit sits at (12, 8), four cells ahead of the head.
	for i := 0; i < 3; i++ {
		e.Advance()
	}
	if e.length != 4 || e.score != 0 {
		t.Fatalf("setup: length = %d score = %d before reaching fruit", e.length, e.score.Int())
	}

	e.Advance() // head moves onto the fruit

	if e.length != 5 {
		t.Errorf("length = %d, expected 5 after growth", e.length)
	}
	wantBody := []Coord{{12, 8}, {11, 8}, {10, 8}, {9, 8}, {8, 8}}
	for i, want := range wantBody {
		if e.body[i] != want {
			t.Errorf("body[%d] = %v, expected %v", i, e.body[i], want)
		}
	}
	if e.score != 0x0001 {
		t.Errorf("score = %#04x, expected 0x0001", uint16(e.score))
	}
	if !e.fruitPending {
		t.Error("consumed fruit should leave placement pending at tick end")
	}

	// Placement reacts on the following tick.
	e.Advance()
	if e.fruitPending {
		t.Error("placement should have committed on the tick after consumption")
	}
	if want := (Coord{12, 3}); e.fruit != want {
		t.Errorf("fruit = %v, expected %v", e.fruit, want)
	}
}

func TestWallCollisionFreezesBoard(t *testing.T) {
	e := newTestEngine(0x3C)

	// Head starts at x=8 heading right; the 8th step would leave the grid.
	for i := 0; i < 8; i++ {
		e.Advance()
	}
	if !e.gameOver {
		t.Fatal("expected game over at the right wall")
	}
	if e.body[0] != (Coord{15, 8}) {
		t.Errorf("head = %v, expected frozen at (15, 8)", e.body[0])
	}

	frozen := e.Snapshot()
	for i := 0; i < 5; i++ {
		e.Advance()
	}
	after := e.Snapshot()

	if after.Tick != frozen.Tick+5 {
		t.Errorf("tick should keep counting, got %d -> %d", frozen.Tick, after.Tick)
	}
	if after.Body[0] != frozen.Body[0] || len(after.Body) != len(frozen.Body) {
		t.Error("body changed while game over")
	}
	if after.Score != frozen.Score {
		t.Error("score changed while game over")
	}
	if after.FruitPending != frozen.FruitPending || after.Fruit != frozen.Fruit {
		t.Error("fruit state changed while game over")
	}
}

func TestWallCollisionLeftEdge(t *testing.T) {
	e := newTestEngine(1)
	e.body[0] = Coord{0, 8}
	e.arb.requested = DirLeft

	e.step()

	if !e.gameOver {
		t.Error("moving left from x=0 should collide with the wall")
	}
}

func TestTailVacateExemption(t *testing.T) {
	e := newTestEngine(1)
	// A length-4 snake coiled in a 2x2 square: the next head cell is the
	// current tail, which vacates this same tick.
	e.body[0] = Coord{5, 5}
	e.body[1] = Coord{4, 5}
	e.body[2] = Coord{4, 4}
	e.body[3] = Coord{5, 4}
	e.length = 4
	e.fruitPending = true // no growth possible
	e.arb.requested = DirUp

	e.step()

	if e.gameOver {
		t.Fatal("moving into the vacating tail cell must not collide")
	}
	if e.body[0] != (Coord{5, 4}) {
		t.Errorf("head = %v, expected (5, 4)", e.body[0])
	}
	seen := make(map[Coord]bool)
	for i := 0; i < e.length; i++ {
		if seen[e.body[i]] {
			t.Errorf("duplicate body cell %v after move", e.body[i])
		}
		seen[e.body[i]] = true
	}
}

func TestTailCellCollidesWhenGrowing(t *testing.T) {
	e := newTestEngine(1)
	e.body[0] = Coord{5, 5}
	e.body[1] = Coord{4, 5}
	e.body[2] = Coord{4, 4}
	e.body[3] = Coord{5, 4}
	e.length = 4
	// Fruit on the tail cell: growth keeps the tail occupied, so the
	// exemption does not apply.
	e.fruit = Coord{5, 4}
	e.fruitPending = false
	e.arb.requested = DirUp

	e.step()

	if !e.gameOver {
		t.Error("growing into the tail cell must collide")
	}
}

func TestSelfCollisionMidBody(t *testing.T) {
	e := newTestEngine(1)
	body := []Coord{{5, 5}, {4, 5}, {3, 5}, {3, 4}, {4, 4}, {5, 4}, {6, 4}}
	copy(e.body[:], body)
	e.length = len(body)
	e.fruitPending = true
	e.arb.requested = DirUp // next head (5, 4) is body[5], not the tail

	e.step()

	if !e.gameOver {
		t.Error("moving into a mid-body segment must collide")
	}
}

func TestRequestedDirectionNotTickGated(t *testing.T) {
	e := newTestEngine(1)

	// Two samples between ticks: the latch takes the latest acceptable
	// candidate immediately.
	e.Sample(TiltSample{Vertical: 100})  // down
	e.Sample(TiltSample{Vertical: -100}) // up, allowed while committed is right
	if e.arb.requested != DirUp {
		t.Fatalf("requested = %v, expected up", e.arb.requested)
	}

	e.Advance()
	if e.dir != DirUp {
		t.Errorf("committed direction = %v, expected up", e.dir)
	}
	if e.body[0] != (Coord{8, 7}) {
		t.Errorf("head = %v, expected (8, 7)", e.body[0])
	}

	// Down is now the reversal of the committed direction.
	e.Sample(TiltSample{Vertical: 100})
	if e.arb.requested != DirUp {
		t.Errorf("requested = %v, reversal should have been discarded", e.arb.requested)
	}
}

func TestFruitPlacementRetriesNextTick(t *testing.T) {
	e := newTestEngine(1)
	// Seed 0x88 splits into (8, 8), which the body occupies after the
	// first move: the candidate is rejected and retried with fresh
	// state on the following tick.
	e.Restart(0x88)

	e.Advance()
	if !e.fruitPending {
		t.Fatal("colliding candidate should stay pending")
	}
	if e.rng.state != 0x10 {
		t.Errorf("rng state = %#02x, expected advance to 0x10 after rejection", e.rng.state)
	}

	e.Advance()
	if e.fruitPending {
		t.Fatal("free candidate should have committed")
	}
	if want := (Coord{0, 1}); e.fruit != want {
		t.Errorf("fruit = %v, expected %v", e.fruit, want)
	}
	if e.rng.state != 0x21 {
		t.Errorf("rng state = %#02x, expected advance to 0x21 after acceptance", e.rng.state)
	}
}

func TestGrowthSuppressedAtCapacity(t *testing.T) {
	e := newTestEngine(1)
	// Synthetic length: only the clamp is under test here.
	e.length = Capacity
	e.fruit = Coord{9, 8}
	e.fruitPending = false

	e.step()

	if e.gameOver {
		t.Fatal("unexpected collision in capacity test")
	}
	if e.length != Capacity {
		t.Errorf("length = %d, expected clamp at %d", e.length, Capacity)
	}
	if e.score != 0x0001 {
		t.Errorf("score = %#04x, fruit should still count when growth is suppressed", uint16(e.score))
	}
	if !e.fruitPending {
		t.Error("fruit should still be consumed when growth is suppressed")
	}
}

func TestRestartScenario(t *testing.T) {
	e := newTestEngine(0x3C)

	// Eat the power-up fruit, then run into the right wall.
	for i := 0; i < 8; i++ {
		e.Advance()
	}
	if !e.gameOver || e.score.Int() != 1 {
		t.Fatalf("setup: gameOver = %v score = %d", e.gameOver, e.score.Int())
	}

	e.Restart(0)

	wantBody := []Coord{{8, 8}, {7, 8}, {6, 8}, {5, 8}}
	for i, want := range wantBody {
		if e.body[i] != want {
			t.Errorf("body[%d] = %v, expected %v", i, e.body[i], want)
		}
	}
	if e.length != 4 || e.dir != DirRight || e.arb.requested != DirRight {
		t.Errorf("length/dir/requested = %d/%v/%v, expected 4/right/right", e.length, e.dir, e.arb.requested)
	}
	if !e.fruitPending {
		t.Error("restart must defer fruit placement")
	}
	if e.score != 0 || e.gameOver {
		t.Errorf("score = %d gameOver = %v after restart", e.score.Int(), e.gameOver)
	}
	if e.rng.state != lfsrReseed {
		t.Errorf("rng state = %#02x, zero entropy should coerce to %#02x", e.rng.state, lfsrReseed)
	}
	if e.tick != 0 {
		t.Errorf("tick = %d, expected 0", e.tick)
	}
}

func TestInvariantsOverLongRun(t *testing.T) {
	e := newTestEngine(7)

	prevLen := e.length
	for i := 0; i < 300; i++ {
		// Deterministic steering pattern; reversals are filtered by the
		// arbiter, so any mix of samples is safe to feed.
		switch {
		case i%11 == 0:
			e.Sample(TiltSample{Vertical: -100})
		case i%7 == 0:
			e.Sample(TiltSample{Horizontal: -100})
		case i%5 == 0:
			e.Sample(TiltSample{Vertical: 100})
		case i%3 == 0:
			e.Sample(TiltSample{Horizontal: 100})
		}
		e.Advance()

		snap := e.Snapshot()
		if snap.GameOver {
			break
		}

		if len(snap.Body) < prevLen {
			t.Fatalf("tick %d: length shrank %d -> %d", i, prevLen, len(snap.Body))
		}
		prevLen = len(snap.Body)

		seen := make(map[Coord]bool)
		for _, c := range snap.Body {
			if !c.inBounds() {
				t.Fatalf("tick %d: body cell %v out of bounds", i, c)
			}
			if seen[c] {
				t.Fatalf("tick %d: duplicate body cell %v", i, c)
			}
			seen[c] = true
		}

		if !snap.FruitPending {
			if seen[snap.Fruit] {
				t.Fatalf("tick %d: fruit %v overlaps the body", i, snap.Fruit)
			}
			if !snap.Fruit.inBounds() {
				t.Fatalf("tick %d: fruit %v out of bounds", i, snap.Fruit)
			}
		}
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	e := newTestEngine(0x3C)
	snap := e.Snapshot()

	if len(snap.Body) != 4 || snap.Body[0] != (Coord{8, 8}) {
		t.Fatalf("snapshot body = %v", snap.Body)
	}

	snap.Body[0] = Coord{0, 0}
	if e.body[0] != (Coord{8, 8}) {
		t.Error("mutating a snapshot must not affect the engine")
	}
}
