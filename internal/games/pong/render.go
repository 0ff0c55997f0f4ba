package pong

import (
	"math"
	"strconv"

	"github.com/vovakirdan/starfield-pong/internal/core"
)

// Visual characters for rendering
const (
	PaddleChar  = '█'
	BallChar    = '●'
	PowerUpChar = '◉'
	NetChar     = '│'
)

// bigDigits is a 3x5 font for the score display.
var bigDigits = [10][5]string{
	{"███", "█ █", "█ █", "█ █", "███"},
	{" █ ", "██ ", " █ ", " █ ", "███"},
	{"███", "  █", "███", "█  ", "███"},
	{"███", "  █", "███", "  █", "███"},
	{"█ █", "█ █", "███", "  █", "  █"},
	{"███", "█  ", "███", "  █", "███"},
	{"███", "█  ", "███", "█ █", "███"},
	{"███", "  █", "  █", "  █", "  █"},
	{"███", "█ █", "███", "█ █", "███"},
	{"███", "█ █", "███", "  █", "███"},
}

// viewport maps world coordinates to screen cells.
type viewport struct {
	field  Field
	w, h   int
	sx, sy float64
}

func newViewport(f Field, w, h int) viewport {
	return viewport{
		field: f,
		w:     w,
		h:     h,
		sx:    float64(w) / (2 * f.HalfW),
		sy:    float64(h) / (2 * f.HalfH),
	}
}

// col maps a world x to a column in [0, w-1].
func (v viewport) col(x float64) int {
	return core.Clamp(int(math.Floor((x+v.field.HalfW)*v.sx)), 0, v.w-1)
}

// row maps a world y to a row in [0, h-1]. World y grows upward, rows grow downward.
func (v viewport) row(y float64) int {
	return core.Clamp(int(math.Floor((v.field.HalfH-y)*v.sy)), 0, v.h-1)
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if dst.Width() <= 0 || dst.Height() <= 0 {
		return
	}

	s := g.state
	v := newViewport(s.Field, dst.Width(), dst.Height())

	g.drawStars(dst, v)

	centerX := v.col(0)
	for y := 0; y < dst.Height(); y += 2 {
		dst.SetColored(centerX, y, NetChar, core.ColorGray)
	}

	g.drawScore(dst, v.col(-150), v.row(s.Field.HalfH-150), s.ScoreA)
	g.drawScore(dst, v.col(150), v.row(s.Field.HalfH-150), s.ScoreB)

	g.drawPaddle(dst, v, s.PaddleA)
	g.drawPaddle(dst, v, s.PaddleB)

	if s.PowerUp.Active {
		color := core.ColorCyan
		if s.PowerUp.Kind == PowerUpGhost {
			color = core.ColorOrange
		}
		dst.SetColored(v.col(s.PowerUp.X), v.row(s.PowerUp.Y), PowerUpChar, color)
	}

	if s.Active {
		dst.SetColored(v.col(s.Ball.X), v.row(s.Ball.Y), BallChar, ballColor(s.Ball.Tint))
	}

	switch {
	case !s.Active && s.Winner != SideNone:
		g.drawCenteredMessage(dst, "PLAYER "+s.Winner.String()+" WINS!", "SPACE TO RESTART")
	case !s.Active:
		g.drawCenteredMessage(dst, "PRESS SPACE TO START", "W/S and Up/Down to move")
	}

	if g.speaker.Muted() {
		dst.DrawText(1, dst.Height()-1, "MUTED", core.ColorRed)
	}
}

func ballColor(t Tint) core.Color {
	switch t {
	case TintGhost:
		return core.ColorDim
	case TintPower:
		return core.ColorYellow
	default:
		return core.ColorWhite
	}
}

func (g *Game) drawStars(dst *core.Screen, v viewport) {
	if g.stars == nil {
		return
	}
	for _, st := range g.stars.Stars() {
		r, color := '.', core.ColorGray
		if st.Size > 0.15 {
			r, color = '*', core.ColorWhite
		} else if st.Size > 0.1 {
			r = '·'
		}
		dst.SetColored(v.col(st.X), v.row(st.Y), r, color)
	}
}

func (g *Game) drawPaddle(dst *core.Screen, v viewport, p Paddle) {
	half := g.rules.PaddleHalfHeight * p.Scale
	x := v.col(p.X)
	for y := v.row(p.Y + half); y <= v.row(p.Y-half); y++ {
		dst.SetColored(x, y, PaddleChar, core.ColorBrightWhite)
	}
}

// drawScore draws a score in big digits centred on (cx, top).
func (g *Game) drawScore(dst *core.Screen, cx, top, score int) {
	digits := strconv.Itoa(score)
	width := len(digits)*4 - 1
	x := cx - width/2
	for _, d := range digits {
		glyph := bigDigits[d-'0']
		for row, line := range glyph {
			dst.DrawText(x, top+row, line, core.ColorBrightWhite)
		}
		x += 4
	}
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := core.Max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorWhite)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title, core.ColorBrightWhite)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle, core.ColorGray)
}
