package render

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/snake"
)

func runningFrame() snake.Frame {
	return snake.Frame{
		Snake:      []snake.Cell{{X: 10, Y: 10}, {X: 9, Y: 10}, {X: 8, Y: 10}},
		Food:       snake.Cell{X: 3, Y: 4},
		Score:      40,
		HighScore:  90,
		Status:     snake.StatusRunning,
		Difficulty: snake.Hard,
		Heading:    snake.DirRight,
		TileCount:  20,
	}
}

// tileOrigin returns the screen position of a board cell on a 60x30 screen.
func tileOrigin(c snake.Cell) (int, int) {
	boardX := (60 - 42) / 2
	return boardX + 1 + c.X*2, hudHeight + 1 + c.Y
}

// colorOf returns the colour of the first cell where text starts.
func colorOf(s *core.Screen, text string) core.Color {
	for y, h := 0, s.Height(); y < h; y++ {
		row := []rune(s.Row(y))
		for x := range row {
			if strings.HasPrefix(string(row[x:]), text) {
				return s.GlyphAt(x, y).Color
			}
		}
	}
	return core.ColorDefault
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(20)
	if w != 42 || h != 24 {
		t.Errorf("RequiredSize(20) = %dx%d, expected 42x24", w, h)
	}
}

func TestRenderRunningFrame(t *testing.T) {
	r := New(60, 30)
	f := runningFrame()
	r.RenderFrame(f)
	s := r.Screen()

	for i, seg := range f.Snake {
		x, y := tileOrigin(seg)
		if s.Get(x, y) != '█' || s.Get(x+1, y) != '█' {
			t.Errorf("Segment %d not drawn at (%d, %d): %q%q", i, x, y, s.Get(x, y), s.Get(x+1, y))
		}
		if s.GlyphAt(x, y).Color != SnakeColor(i) {
			t.Errorf("Segment %d colour = %q, expected %q", i, s.GlyphAt(x, y).Color, SnakeColor(i))
		}
	}

	fx, fy := tileOrigin(f.Food)
	if s.Get(fx, fy) != '●' {
		t.Errorf("Food not drawn at (%d, %d), got %q", fx, fy, s.Get(fx, fy))
	}
	if s.GlyphAt(fx, fy).Color != foodColor {
		t.Errorf("Food colour = %q, expected %q", s.GlyphAt(fx, fy).Color, foodColor)
	}

	ex, ey := tileOrigin(snake.Cell{X: 0, Y: 0})
	if s.Get(ex, ey) != '·' {
		t.Errorf("Empty tile should show the grid dot, got %q", s.Get(ex, ey))
	}

	hud := s.Row(0)
	if !strings.HasPrefix(hud, " Snake | Score: 40") {
		t.Errorf("HUD %q should start with the title and score", hud)
	}
	for _, want := range []string{"Score: 40", "Best: 90", "Speed: hard"} {
		if !strings.Contains(hud, want) {
			t.Errorf("HUD %q missing %q", hud, want)
		}
	}

	text := r.Text()
	for _, unwanted := range []string{"PAUSED", "GAME OVER", "Enter: start"} {
		if strings.Contains(text, unwanted) {
			t.Errorf("Running frame should not show %q", unwanted)
		}
	}
}

func TestRenderOverlays(t *testing.T) {
	tests := []struct {
		name   string
		status snake.Status
		want   []string
		title  core.Color
	}{
		{"idle", snake.StatusIdle, []string{"SNAKE", "Enter: start"}, core.ColorBrightGreen},
		{"paused", snake.StatusPaused, []string{"PAUSED", "P: resume"}, core.ColorBrightYellow},
		{"over", snake.StatusOver, []string{"GAME OVER", "Score: 40", "Best: 90", "Enter: play again"}, core.ColorBrightRed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := New(60, 30)
			f := runningFrame()
			f.Status = tt.status
			r.RenderFrame(f)

			text := r.Text()
			for _, want := range tt.want {
				if !strings.Contains(text, want) {
					t.Errorf("%s overlay missing %q:\n%s", tt.name, want, text)
				}
			}
			if got := colorOf(r.Screen(), tt.want[0]); got != tt.title {
				t.Errorf("%s title colour = %q, expected %q", tt.name, got, tt.title)
			}
		})
	}
}

func TestRenderIdleHidesSnake(t *testing.T) {
	r := New(60, 30)
	f := runningFrame()
	f.Status = snake.StatusIdle
	r.RenderFrame(f)

	if strings.Contains(r.Text(), "●") {
		t.Error("Idle frame should not draw food")
	}
}

func TestRenderNoFood(t *testing.T) {
	r := New(60, 30)
	f := runningFrame()
	f.Food = snake.NoFood
	r.RenderFrame(f)

	if strings.Contains(r.Text(), "●") {
		t.Error("NoFood should not be drawn")
	}
}

func TestRenderTooSmall(t *testing.T) {
	r := New(30, 10)
	r.RenderFrame(runningFrame())

	if !strings.Contains(r.Text(), "Window too small") {
		t.Errorf("Expected too-small message, got:\n%s", r.Text())
	}

	r.Resize(60, 30)
	r.RenderFrame(runningFrame())
	if strings.Contains(r.Text(), "Window too small") {
		t.Error("Message should disappear after resize")
	}
}

func TestSnakeColor(t *testing.T) {
	head := SnakeColor(0)
	if !strings.HasPrefix(string(head), "#") || len(head) != 7 {
		t.Fatalf("SnakeColor(0) = %q, expected a #rrggbb colour", head)
	}
	if SnakeColor(10) == head {
		t.Error("Colour should change along the body")
	}
	// 180 segments * 2 degrees wraps the hue back to the head colour
	if SnakeColor(180) != head {
		t.Errorf("SnakeColor(180) = %q, expected wrap to %q", SnakeColor(180), head)
	}
}
