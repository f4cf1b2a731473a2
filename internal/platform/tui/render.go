package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Ace2932/working-snake-ee354/internal/core"
	"github.com/Ace2932/working-snake-ee354/internal/snake"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:      lipgloss.NewStyle(),
	core.ColorRed:          lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorGreen:        lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorYellow:       lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorBlue:         lipgloss.NewStyle().Foreground(lipgloss.Color("4")),
	core.ColorWhite:        lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorBrightRed:    lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorBrightGreen:  lipgloss.NewStyle().Foreground(lipgloss.Color("10")),
	core.ColorBrightYellow: lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorGray:         lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
}

// RenderScreen converts a Screen buffer to styled terminal output.
// Runs of same-colored cells are grouped to limit escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			startColor := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != startColor {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[startColor]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}

// Board layout. Each grid cell renders two columns wide so the board
// comes out roughly square in terminal cells.
const (
	boardCols = snake.GridSize*2 + 2
	boardRows = snake.GridSize + 2
	hudRows   = 2

	minScreenW = boardCols
	minScreenH = hudRows + boardRows + 1
)

// cellFace is the two-column face one board cell renders as.
type cellFace struct {
	left, right rune
	color       core.Color
}

func faceFor(kind snake.CellKind, showGrid bool) cellFace {
	switch kind {
	case snake.CellSnakeHead:
		return cellFace{'█', '█', core.ColorBrightGreen}
	case snake.CellSnakeBody:
		return cellFace{'█', '█', core.ColorGreen}
	case snake.CellGameOverBody:
		return cellFace{'█', '█', core.ColorBrightRed}
	case snake.CellFruit:
		return cellFace{'◆', ' ', core.ColorBrightYellow}
	default:
		if showGrid {
			return cellFace{'·', ' ', core.ColorGray}
		}
		return cellFace{' ', ' ', core.ColorDefault}
	}
}

// drawGame renders one committed board snapshot into the screen buffer.
func drawGame(s *core.Screen, snap snake.Snapshot, showGrid bool) {
	s.Clear()
	drawHUD(s, snap)

	if s.Width() < minScreenW || s.Height() < minScreenH {
		s.DrawTextCentered(s.Height()/2, "Window too small", core.ColorBrightRed)
		s.DrawTextCentered(s.Height()/2+1, "Resize to continue", core.ColorWhite)
		return
	}

	boardX := (s.Width() - boardCols) / 2
	boardY := hudRows

	s.DrawBox(boardX, boardY, boardCols, boardRows, core.ColorGray)

	for y := 0; y < snake.GridSize; y++ {
		for x := 0; x < snake.GridSize; x++ {
			face := faceFor(snap.CellAt(snake.Coord{X: x, Y: y}), showGrid)
			px := boardX + 1 + 2*x
			py := boardY + 1 + y
			s.SetCell(px, py, face.left, face.color)
			s.SetCell(px+1, py, face.right, face.color)
		}
	}

	if snap.GameOver {
		s.DrawTextCentered(boardY+boardRows/2-1, " GAME OVER ", core.ColorBrightRed)
		s.DrawTextCentered(boardY+boardRows/2, " press r to restart ", core.ColorWhite)
	}
}

// drawHUD draws the top status bar: the four-digit score display and
// the snake length.
func drawHUD(s *core.Screen, snap snake.Snapshot) {
	d := snap.Score.Digits()
	hud := fmt.Sprintf(" SNAKE  score %d%d%d%d  length %d", d[0], d[1], d[2], d[3], len(snap.Body))
	s.DrawText(0, 0, hud, core.ColorWhite)
	s.DrawHLine(0, 1, s.Width(), '─', core.ColorGray)
}
