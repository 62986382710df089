package sidestep

import (
	"testing"

	"github.com/vovakirdan/sidestep/internal/config"
	"github.com/vovakirdan/sidestep/internal/core"
)

// edgeRand always spawns at the right edge and samples the middle of the speed range.
type edgeRand struct{}

func (edgeRand) Intn(n int) int   { return n - 1 }
func (edgeRand) Float64() float64 { return 0.5 }

// newTestSession returns a session whose obstacle spawns at the right edge.
func newTestSession(cfg config.SidestepConfig) *Session {
	s := New(cfg, 1)
	s.rng = edgeRand{}
	s.spawnObstacle(cfg.Obstacle.SpeedMin)
	return s
}

// startPlaying moves a fresh session into the Playing phase.
func startPlaying(t *testing.T, s *Session) {
	t.Helper()
	view := s.Tick(0, core.Intents{Confirm: true})
	if view.Phase != PhasePlaying {
		t.Fatalf("confirm should start the game, phase = %v", view.Phase)
	}
}

func TestNewSessionInitialLayout(t *testing.T) {
	cfg := config.DefaultSidestepConfig()
	s := New(cfg, 42)
	snap := s.Snapshot()

	if snap.Phase != PhaseStart {
		t.Errorf("initial phase = %v, expected start", snap.Phase)
	}
	if snap.Score != 0 {
		t.Errorf("initial score = %d, expected 0", snap.Score)
	}
	if snap.Player.Lives != 3 {
		t.Errorf("initial lives = %d, expected 3", snap.Player.Lives)
	}
	if snap.Player.X != 188 || snap.Player.Y != 555 {
		t.Errorf("initial player at (%g, %g), expected (188, 555)", snap.Player.X, snap.Player.Y)
	}
	if !snap.Player.Visible || snap.Player.Invulnerable {
		t.Errorf("player should start visible and vulnerable: %+v", snap.Player)
	}
	if snap.Obstacle.Y != 0 {
		t.Errorf("initial obstacle y = %g, expected 0", snap.Obstacle.Y)
	}
	if snap.Obstacle.Speed != cfg.Obstacle.SpeedMin {
		t.Errorf("initial obstacle speed = %g, expected %g", snap.Obstacle.Speed, cfg.Obstacle.SpeedMin)
	}
	if snap.Obstacle.X < 0 || snap.Obstacle.X > 350 || snap.Obstacle.X != float64(int(snap.Obstacle.X)) {
		t.Errorf("initial obstacle x = %g, expected an integer in [0, 350]", snap.Obstacle.X)
	}
}

func TestViewReflectsSession(t *testing.T) {
	cfg := config.DefaultSidestepConfig()
	s := New(cfg, 7)
	view := s.View()

	if view.Width != 400 || view.Height != 600 {
		t.Errorf("view world = %gx%g, expected 400x600", view.Width, view.Height)
	}
	if view.Player.Size != 25 || view.Obstacle.Size != 50 {
		t.Errorf("view sizes = %g/%g, expected 25/50", view.Player.Size, view.Obstacle.Size)
	}
	if view.QuitRequested {
		t.Error("View() should never request quit")
	}
	if view.Lives != 3 || view.Score != 0 || view.Phase != PhaseStart {
		t.Errorf("unexpected view %+v", view)
	}
}

func TestDeterminism(t *testing.T) {
	cfg := config.DefaultSidestepConfig()
	cfg.Rules.StartingLives = 1000

	s1 := New(cfg, 12345)
	s2 := New(cfg, 12345)

	for i := 0; i < 5000; i++ {
		in := core.Intents{
			MoveLeft:  i%300 < 120,
			MoveRight: i%300 >= 150,
			Confirm:   i == 0,
		}
		now := float64(i) / 60
		s1.Tick(now, in)
		s2.Tick(now, in)
	}

	if s1.Snapshot() != s2.Snapshot() {
		t.Errorf("same seed and inputs diverged:\n%+v\n%+v", s1.Snapshot(), s2.Snapshot())
	}
	if s1.Snapshot().Score == 0 {
		t.Error("expected some obstacles to be dodged over 5000 ticks")
	}
}

func TestPhaseString(t *testing.T) {
	tests := []struct {
		p        Phase
		expected string
	}{
		{PhaseStart, "start"},
		{PhasePlaying, "playing"},
		{PhaseGameOver, "game_over"},
		{Phase(9), "unknown"},
	}
	for _, tc := range tests {
		if got := tc.p.String(); got != tc.expected {
			t.Errorf("Phase(%d).String() = %q, expected %q", tc.p, got, tc.expected)
		}
	}
}
