package sidestep

import (
	"fmt"
	"math"

	"github.com/vovakirdan/sidestep/internal/core"
)

// Visual characters for rendering
const (
	PlayerChar   = '▲'
	ObstacleChar = '█'
)

// cellAspect is how many terminal columns match one row in physical size.
const cellAspect = 2.0

// Draw renders a RenderState into a terminal screen buffer.
// Row 0 holds the HUD; the world is scaled into a bordered field below it,
// keeping its aspect ratio.
func Draw(dst *core.Screen, view RenderState) {
	dst.Clear()

	field, ok := fieldRect(dst, view)
	if !ok {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small", core.ColorBrightRed)
		return
	}

	dst.DrawBox(core.NewRect(field.X-1, field.Y-1, field.W+2, field.H+2), core.ColorGray)

	switch view.Phase {
	case PhaseStart:
		drawCenteredMessage(dst, field, "SIDESTEP", "Press SPACE to Start")
	case PhasePlaying:
		drawEntity(dst, field, view, view.Obstacle, ObstacleChar)
		if view.Player.Visible {
			drawEntity(dst, field, view, view.Player, PlayerChar)
		}
		drawHUD(dst, field, view)
	case PhaseGameOver:
		drawCenteredMessage(dst, field,
			fmt.Sprintf("Game Over. Your Score: %d", view.Score),
			"Press SPACE to Restart")
	}
}

// fieldRect returns the inner playfield in screen cells.
func fieldRect(dst *core.Screen, view RenderState) (core.Rect, bool) {
	innerH := dst.Height() - 3 // HUD row + top and bottom border
	if innerH < 1 || view.Height <= 0 {
		return core.Rect{}, false
	}

	innerW := int(math.Round(view.Width / view.Height * float64(innerH) * cellAspect))
	innerW = min(innerW, dst.Width()-2)
	if innerW < 1 {
		return core.Rect{}, false
	}

	x := (dst.Width()-innerW-2)/2 + 1
	return core.NewRect(x, 2, innerW, innerH), true
}

// drawEntity scales a world-space square into the field, clipping at its edges.
func drawEntity(dst *core.Screen, field core.Rect, view RenderState, e EntityView, ch rune) {
	sx := float64(field.W) / view.Width
	sy := float64(field.H) / view.Height

	x0 := int(math.Floor(e.X * sx))
	y0 := int(math.Floor(e.Y * sy))
	x1 := max(int(math.Ceil((e.X+e.Size)*sx)), x0+1)
	y1 := max(int(math.Ceil((e.Y+e.Size)*sy)), y0+1)

	x0, x1 = core.Clamp(x0, 0, field.W), core.Clamp(x1, 0, field.W)
	y0, y1 = core.Clamp(y0, 0, field.H), core.Clamp(y1, 0, field.H)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	dst.DrawRect(core.NewRect(field.X+x0, field.Y+y0, x1-x0, y1-y0), ch, core.ColorRed)
}

// drawHUD renders score and lives above the field.
func drawHUD(dst *core.Screen, field core.Rect, view RenderState) {
	dst.DrawTextColored(field.X-1, 0, fmt.Sprintf("Score: %d", view.Score), core.ColorBrightRed)

	lives := fmt.Sprintf("Lives: %d", view.Lives)
	dst.DrawTextColored(field.Right()+1-len(lives), 0, lives, core.ColorBrightRed)
}

// drawCenteredMessage draws a message box in the center of the field.
func drawCenteredMessage(dst *core.Screen, field core.Rect, title, subtitle string) {
	// Calculate box dimensions
	boxW := min(core.Max(len(title), len(subtitle))+4, dst.Width())
	boxH := 5
	boxX := (dst.Width() - boxW) / 2
	boxY := field.Y + (field.H-boxH)/2

	// Draw box
	box := core.NewRect(boxX, boxY, boxW, boxH)
	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorWhite)

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawTextColored(titleX, boxY+1, title, core.ColorBrightRed)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawTextColored(subtitleX, boxY+3, subtitle, core.ColorBrightRed)
}
