// Package render draws snake frames into a core.Screen.
package render

import (
	"fmt"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

// Layout constants
const (
	tileWidth = 2 // Terminal columns per tile, keeps tiles roughly square
	hudHeight = 2 // Score line + separator
)

const (
	foodColor core.Color = "#ff6b6b"
	gridColor            = core.ColorDarkGray
	wallColor            = core.ColorGray
	textColor            = core.ColorBrightWhite
)

// Renderer implements snake.Renderer on top of a character screen.
type Renderer struct {
	screen *core.Screen
}

// New creates a renderer with a width x height screen.
func New(width, height int) *Renderer {
	return &Renderer{screen: core.NewScreen(width, height)}
}

// Screen returns the drawing surface.
func (r *Renderer) Screen() *core.Screen {
	return r.screen
}

// Resize follows a terminal size change. The next RenderFrame redraws.
func (r *Renderer) Resize(width, height int) {
	r.screen.Resize(width, height)
}

// RequiredSize returns the smallest screen that fits a board of tileCount tiles.
func RequiredSize(tileCount int) (width, height int) {
	return tileCount*tileWidth + 2, tileCount + 2 + hudHeight
}

// SnakeColor returns the colour of the segment at body index i.
// Hue starts at green and drifts two degrees per segment.
func SnakeColor(i int) core.Color {
	hue := float64((120 + i*2) % 360)
	return core.Color(colorful.Hsl(hue, 0.7, 0.5).Hex())
}

// RenderFrame draws the full frame: HUD, grid, snake, food and overlays.
func (r *Renderer) RenderFrame(f snake.Frame) {
	dst := r.screen
	dst.Clear()

	r.renderHUD(f)

	needW, needH := RequiredSize(f.TileCount)
	if dst.Width() < needW || dst.Height() < needH {
		r.renderOverlay(dst.Bounds(), core.ColorBrightRed, "Window too small",
			fmt.Sprintf("Need %dx%d", needW, needH))
		return
	}

	board := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, f.TileCount+2)
	dst.DrawBox(board, wallColor)
	r.renderGrid(board, f.TileCount)

	if f.Status != snake.StatusIdle {
		for i, seg := range f.Snake {
			r.setTile(board, seg, "██", SnakeColor(i))
		}
		if f.Food != snake.NoFood {
			r.setTile(board, f.Food, "● ", foodColor)
		}
	}

	switch f.Status {
	case snake.StatusIdle:
		r.renderOverlay(board, core.ColorBrightGreen, "SNAKE", "Enter: start  1/2/3: speed")
	case snake.StatusPaused:
		r.renderOverlay(board, core.ColorBrightYellow, "PAUSED", "P: resume")
	case snake.StatusOver:
		r.renderOverlay(board, core.ColorBrightRed, "GAME OVER",
			fmt.Sprintf("Score: %d", f.Score),
			fmt.Sprintf("Best: %d", f.HighScore),
			"Enter: play again")
	}
}

// renderHUD draws the score line and separator.
func (r *Renderer) renderHUD(f snake.Frame) {
	dst := r.screen
	hud := fmt.Sprintf(" Snake | Score: %d  Best: %d  Speed: %s", f.Score, f.HighScore, f.Difficulty)
	dst.DrawTextColored(0, 0, hud, textColor)
	for x, w := 0, dst.Width(); x < w; x++ {
		dst.SetColored(x, 1, '─', wallColor)
	}
}

// renderGrid dots the centre of every tile.
func (r *Renderer) renderGrid(board core.Rect, tileCount int) {
	for y := 0; y < tileCount; y++ {
		for x := 0; x < tileCount; x++ {
			r.setTile(board, snake.Cell{X: x, Y: y}, "· ", gridColor)
		}
	}
}

// setTile writes a two-column glyph pair for a board cell.
func (r *Renderer) setTile(board core.Rect, c snake.Cell, glyph string, color core.Color) {
	sx := board.X + 1 + c.X*tileWidth
	sy := board.Y + 1 + c.Y
	r.screen.DrawTextColored(sx, sy, glyph, color)
}

// renderOverlay draws a boxed message centred in area. The first line is
// the title.
func (r *Renderer) renderOverlay(area core.Rect, title core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	box := area.Centered(maxLen+4, len(lines)+2)

	r.screen.FillRect(box, ' ', core.ColorDefault)
	r.screen.DrawBox(box, textColor)
	for i, l := range lines {
		color := textColor
		if i == 0 {
			color = title
		}
		r.screen.DrawTextCentered(box, box.Y+1+i, l, color)
	}
}

// Text returns the screen as plain text with trailing spaces trimmed.
// Used by screenshots and tests.
func (r *Renderer) Text() string {
	rows := make([]string, r.screen.Height())
	for y := range rows {
		rows[y] = strings.TrimRight(r.screen.Row(y), " ")
	}
	return strings.Join(rows, "\n")
}
