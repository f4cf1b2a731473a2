// Package snake implements the tick-synchronous logic core of the
// tilt-controlled snake game: direction arbitration, body movement and
// collision, LFSR-driven fruit placement and a packed-BCD score counter.
//
// The Engine owns all mutable state and mutates it only inside Advance
// and Restart, so readers always observe a fully committed board; tilt
// samples update the requested-direction latch between ticks without
// touching anything else.
package snake

import "sync"

// DefaultDeadzone is the tilt magnitude below which an axis is ignored
// when no explicit value is configured.
const DefaultDeadzone = 40

// Params configures an engine at construction time. The grid size and
// step period are fixed by the game design; only the input deadzone and
// the PRNG entropy sample vary.
type Params struct {
	Deadzone int   // tilt magnitude below which an axis is ignored
	Seed     uint8 // power-up entropy sample for the fruit PRNG
}

// Initial board layout: a four-segment horizontal snake heading Right.
// The fruit sits at a fixed cell on power-up; a restart defers placement
// to the PRNG instead.
var (
	initialBody  = [4]Coord{{8, 8}, {7, 8}, {6, 8}, {5, 8}}
	initialFruit = Coord{12, 8}
)

// Engine is the single-owner aggregate for one game.
type Engine struct {
	mu sync.Mutex

	arb arbiter
	rng lfsr8

	body   [Capacity]Coord
	length int
	dir    Direction

	fruit        Coord
	fruitPending bool

	score    Score
	gameOver bool
	tick     uint64
}

// New builds an engine in its power-up state: snake on the initial row,
// fruit already placed at the fixed power-up cell.
func New(p Params) *Engine {
	if p.Deadzone <= 0 {
		p.Deadzone = DefaultDeadzone
	}
	e := &Engine{arb: newArbiter(p.Deadzone)}
	e.reset(p.Seed)
	e.fruitPending = false
	return e
}

// Restart reinitializes every component atomically: body, direction,
// fruit, score, PRNG and the game-over flag all return to their initial
// values within the same logical step. Unlike power-up, fruit placement
// is deferred: the placement engine searches for a free cell starting on
// the next tick.
func (e *Engine) Restart(entropy uint8) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.reset(entropy)
}

func (e *Engine) reset(seed uint8) {
	e.arb.reset()
	e.rng.seed(seed)
	copy(e.body[:], initialBody[:])
	e.length = len(initialBody)
	e.dir = DirRight
	e.fruit = initialFruit
	e.fruitPending = true
	e.score = 0
	e.gameOver = false
	e.tick = 0
}

// Sample feeds one tilt reading to the direction arbiter. The requested
// direction latch updates immediately, independent of the tick; movement
// picks it up at the next tick boundary.
func (e *Engine) Sample(t TiltSample) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.arb.sample(t, e.dir)
}

// Advance runs one game tick: movement and collision first, then one
// fruit placement attempt if a fruit was owed at the start of the tick.
// A fruit consumed by this tick's movement is therefore placed no
// earlier than the next tick, matching the register semantics of the
// synchronous update discipline. While game over, the board stays
// frozen until Restart.
func (e *Engine) Advance() {
	e.mu.Lock()
	defer e.mu.Unlock()

	e.tick++
	if e.gameOver {
		return
	}
	pendingAtStart := e.fruitPending
	e.step()
	if !e.gameOver && pendingAtStart {
		e.placeFruit()
	}
}

// step computes the next head from the requested direction and commits
// the move, or transitions to game over on a wall or self collision.
// The next-state computation is pure over the committed state; mutation
// happens only after both collision checks pass.
func (e *Engine) step() {
	next := e.body[0]
	dx, dy := e.arb.requested.Delta()
	next.X += dx
	next.Y += dy

	if !next.inBounds() {
		e.gameOver = true
		return
	}

	willGrow := !e.fruitPending && next == e.fruit

	// Self collision. On a non-growing move the tail cell is exempt:
	// it vacates during this same tick.
	occupied := e.length
	if !willGrow {
		occupied--
	}
	for i := 0; i < occupied; i++ {
		if e.body[i] == next {
			e.gameOver = true
			return
		}
	}

	// Saturating growth: at full capacity the fruit is still consumed
	// but the body cannot extend further.
	if willGrow && e.length < Capacity {
		e.length++
	}
	for i := e.length - 1; i >= 1; i-- {
		e.body[i] = e.body[i-1]
	}
	e.body[0] = next
	e.dir = e.arb.requested

	if willGrow {
		e.score = e.score.Inc()
		e.fruitPending = true
	}
}

// placeFruit makes at most one placement attempt per tick. The PRNG
// advances whether or not the candidate lands on the snake, so a
// rejected attempt retries with fresh state on the following tick.
func (e *Engine) placeFruit() {
	if !e.fruitPending {
		return
	}
	cand := e.rng.coord()
	if !e.occupiedBySnake(cand) {
		e.fruit = cand
		e.fruitPending = false
	}
	e.rng.next()
}

func (e *Engine) occupiedBySnake(c Coord) bool {
	for i := 0; i < e.length; i++ {
		if e.body[i] == c {
			return true
		}
	}
	return false
}

// Snapshot is an immutable copy of the committed state, safe to render
// from any goroutine.
type Snapshot struct {
	Tick         uint64
	Body         []Coord // head at index 0
	Dir          Direction
	Fruit        Coord
	FruitPending bool
	Score        Score
	GameOver     bool
}

// Snapshot returns a copy of the current committed state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	body := make([]Coord, e.length)
	copy(body, e.body[:e.length])
	return Snapshot{
		Tick:         e.tick,
		Body:         body,
		Dir:          e.dir,
		Fruit:        e.fruit,
		FruitPending: e.fruitPending,
		Score:        e.score,
		GameOver:     e.gameOver,
	}
}
