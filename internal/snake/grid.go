package snake

// Playfield geometry. The board is fixed at 16 cells per axis; the
// classifier additionally exposes the rasterized geometry the cell
// boundary model comes from (30 pixels per cell, 480x480 visible area).
const (
	GridSize = 16
	Capacity = GridSize * GridSize
	CellPix  = 30
	BoardPix = GridSize * CellPix
)

// Coord is a cell position on the playfield, both axes in [0, 15] for
// any committed state.
type Coord struct {
	X, Y int
}

func (c Coord) inBounds() bool {
	return c.X >= 0 && c.X < GridSize && c.Y >= 0 && c.Y < GridSize
}
