package snake

// CellKind classifies a board location for presentation. The classifier
// is a pure query over committed state; it never mutates the engine and
// may be called at any frequency by a rendering layer.
type CellKind uint8

const (
	CellBackground CellKind = iota
	CellGridLine
	CellFruit
	CellSnakeHead
	CellSnakeBody
	CellGameOverBody
)

func (k CellKind) String() string {
	switch k {
	case CellBackground:
		return "background"
	case CellGridLine:
		return "grid-line"
	case CellFruit:
		return "fruit"
	case CellSnakeHead:
		return "snake-head"
	case CellSnakeBody:
		return "snake-body"
	case CellGameOverBody:
		return "game-over-body"
	default:
		return "unknown"
	}
}

// CellAt classifies one grid cell of the committed board.
func (e *Engine) CellAt(c Coord) CellKind {
	e.mu.Lock()
	defer e.mu.Unlock()
	return classifyCell(c, e.body[:e.length], e.fruit, e.fruitPending, e.gameOver)
}

// Classify maps a pixel of the visible grid area to its cell kind.
// Pixels on a cell boundary are grid lines; everything else classifies
// as its enclosing cell. Coordinates outside the board are background.
func (e *Engine) Classify(px, py int) CellKind {
	if px < 0 || px >= BoardPix || py < 0 || py >= BoardPix {
		return CellBackground
	}
	if px%CellPix == 0 || py%CellPix == 0 {
		return CellGridLine
	}
	return e.CellAt(Coord{X: px / CellPix, Y: py / CellPix})
}

// CellAt classifies one grid cell of a snapshot. Rendering layers that
// already hold a snapshot use this to avoid re-locking the engine per
// cell.
func (s Snapshot) CellAt(c Coord) CellKind {
	return classifyCell(c, s.Body, s.Fruit, s.FruitPending, s.GameOver)
}

func classifyCell(c Coord, body []Coord, fruit Coord, pending, gameOver bool) CellKind {
	for i, seg := range body {
		if seg != c {
			continue
		}
		if gameOver {
			return CellGameOverBody
		}
		if i == 0 {
			return CellSnakeHead
		}
		return CellSnakeBody
	}
	if !pending && fruit == c {
		return CellFruit
	}
	return CellBackground
}
