package sidestep

import (
	"strings"
	"testing"

	"github.com/vovakirdan/sidestep/internal/config"
	"github.com/vovakirdan/sidestep/internal/core"
)

func TestDrawStartScreen(t *testing.T) {
	s := New(config.DefaultSidestepConfig(), 1)
	scr := core.NewScreen(80, 24)

	Draw(scr, s.View())

	out := scr.String()
	if !strings.Contains(out, "Press SPACE to Start") {
		t.Errorf("start screen should prompt to start:\n%s", out)
	}
	if strings.ContainsRune(out, PlayerChar) {
		t.Error("start screen should not draw the player")
	}
}

func TestDrawPlaying(t *testing.T) {
	s := newTestSession(config.DefaultSidestepConfig())
	startPlaying(t, s)
	scr := core.NewScreen(80, 24)

	Draw(scr, s.View())

	hud := strings.Split(scr.String(), "\n")[0]
	if !strings.Contains(hud, "Score: 0") || !strings.Contains(hud, "Lives: 3") {
		t.Errorf("HUD row = %q, expected score and lives", hud)
	}
	out := scr.String()
	if !strings.ContainsRune(out, PlayerChar) {
		t.Errorf("player should be drawn:\n%s", out)
	}
	if !strings.ContainsRune(out, ObstacleChar) {
		t.Errorf("obstacle should be drawn:\n%s", out)
	}
}

func TestDrawHiddenPlayer(t *testing.T) {
	s := newTestSession(config.DefaultSidestepConfig())
	startPlaying(t, s)
	view := s.View()
	view.Player.Visible = false
	scr := core.NewScreen(80, 24)

	Draw(scr, view)

	if strings.ContainsRune(scr.String(), PlayerChar) {
		t.Error("hidden player should not be drawn")
	}
}

func TestDrawPlayerPosition(t *testing.T) {
	s := newTestSession(config.DefaultSidestepConfig())
	startPlaying(t, s)
	scr := core.NewScreen(80, 24)
	view := s.View()

	Draw(scr, view)

	field, ok := fieldRect(scr, view)
	if !ok {
		t.Fatal("80x24 should fit the field")
	}
	// The player sits on the bottom rows of the field, near the middle.
	found := false
	for x := field.X; x < field.Right(); x++ {
		if scr.GetCell(x, field.Bottom()-2).Rune == PlayerChar {
			found = true
			mid := field.X + field.W/2
			if x < mid-3 || x > mid+3 {
				t.Errorf("player drawn at column %d, expected near %d", x, mid)
			}
		}
	}
	if !found {
		t.Errorf("player not found on row %d:\n%s", field.Bottom()-2, scr.String())
	}
}

func TestDrawGameOver(t *testing.T) {
	s := newTestSession(config.DefaultSidestepConfig())
	s.phase = PhaseGameOver
	s.score = 12
	scr := core.NewScreen(80, 24)

	Draw(scr, s.View())

	out := scr.String()
	if !strings.Contains(out, "Game Over. Your Score: 12") {
		t.Errorf("missing final score:\n%s", out)
	}
	if !strings.Contains(out, "Press SPACE to Restart") {
		t.Errorf("missing restart prompt:\n%s", out)
	}
}

func TestDrawTerminalTooSmall(t *testing.T) {
	s := New(config.DefaultSidestepConfig(), 1)
	scr := core.NewScreen(30, 3)

	Draw(scr, s.View())

	if !strings.Contains(scr.String(), "Terminal too small") {
		t.Errorf("expected a size warning:\n%s", scr.String())
	}
}

func TestDrawEntityClipsAtField(t *testing.T) {
	scr := core.NewScreen(80, 24)
	view := RenderState{Width: 400, Height: 600}
	field, _ := fieldRect(scr, view)

	// Partially below the bottom edge.
	drawEntity(scr, field, view, EntityView{X: 0, Y: 580, Size: 50}, ObstacleChar)

	for x := 0; x < scr.Width(); x++ {
		if scr.GetCell(x, field.Bottom()).Rune == ObstacleChar {
			t.Fatalf("obstacle drawn outside the field at (%d, %d)", x, field.Bottom())
		}
	}
	if scr.GetCell(field.X, field.Bottom()-1).Rune != ObstacleChar {
		t.Error("visible part of the obstacle should be drawn")
	}
}
