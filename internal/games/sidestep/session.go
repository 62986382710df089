// Package sidestep implements the Sidestep avoidance game: the player slides
// left and right along the bottom of the screen to dodge a falling obstacle.
//
// A Session is a pure function of its inputs. Frontends call Tick once per
// frame with a monotonic timestamp and the decoded intents, then draw the
// returned RenderState. The session never reads the clock, performs I/O or
// calls back into its frontend.
package sidestep

import (
	"math/rand"

	"github.com/vovakirdan/sidestep/internal/config"
)

// Phase is the coarse game mode.
type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Player is the shape controlled by the user.
type Player struct {
	X            float64 // Left edge, always within [0, width-size]
	Y            float64 // Top edge, fixed for a round
	VelX         float64 // -speed, 0 or +speed
	Lives        int
	Invulnerable bool
	InvulnStart  float64 // Timestamp of the last registered hit
	LastFlicker  float64 // Timestamp of the last visibility toggle
	Visible      bool    // Flicker state, forced true when not invulnerable
}

// Obstacle is the single falling block.
type Obstacle struct {
	X     float64 // Left edge, fixed during a fall
	Y     float64 // Top edge, grows every playing tick
	Speed float64 // Units per tick, resampled on respawn
}

// randSource is the subset of *rand.Rand the session draws from.
type randSource interface {
	Intn(n int) int
	Float64() float64
}

// Session owns the complete state of one game.
type Session struct {
	cfg      config.SidestepConfig
	rng      randSource
	phase    Phase
	score    int
	player   Player
	obstacle Obstacle
	ticks    uint64 // Playing ticks simulated since creation
}

// New creates a session in the Start phase with the initial layout.
// cfg must be valid (see config.SidestepConfig.Validate).
func New(cfg config.SidestepConfig, seed int64) *Session {
	s := &Session{
		cfg: cfg,
		rng: rand.New(rand.NewSource(seed)),
	}
	s.player.Lives = cfg.Rules.StartingLives
	s.player.Visible = true
	s.placePlayer()
	s.spawnObstacle(cfg.Obstacle.SpeedMin)
	return s
}

// placePlayer centers the player on the start row.
func (s *Session) placePlayer() {
	w, size := s.cfg.Screen.Width, s.cfg.Player.Size
	s.player.X = float64(w/2 - size/2)
	s.player.Y = float64(s.cfg.Screen.Height - size - s.cfg.Player.BottomMargin)
	s.player.VelX = 0
}

// spawnObstacle puts the obstacle back at the top at a random column.
func (s *Session) spawnObstacle(speed float64) {
	maxX := s.cfg.Screen.Width - s.cfg.Obstacle.Size
	s.obstacle = Obstacle{
		X:     float64(s.rng.Intn(maxX + 1)),
		Y:     0,
		Speed: speed,
	}
}

// randomSpeed samples a fall speed uniformly from the configured range.
func (s *Session) randomSpeed() float64 {
	lo, hi := s.cfg.Obstacle.SpeedMin, s.cfg.Obstacle.SpeedMax
	return lo + s.rng.Float64()*(hi-lo)
}

// Config returns the configuration the session was created with.
func (s *Session) Config() config.SidestepConfig {
	return s.cfg
}

// Phase returns the current phase.
func (s *Session) Phase() Phase {
	return s.phase
}

// EntityView is the drawable part of an entity.
type EntityView struct {
	X, Y    float64
	Size    float64
	Visible bool
}

// RenderState is a read-only snapshot handed to the drawing collaborator.
type RenderState struct {
	Phase         Phase
	Player        EntityView
	Obstacle      EntityView
	Score         int
	Lives         int
	Width         float64 // World width
	Height        float64 // World height
	QuitRequested bool
}

// View returns the current render state.
func (s *Session) View() RenderState {
	return RenderState{
		Phase: s.phase,
		Player: EntityView{
			X:       s.player.X,
			Y:       s.player.Y,
			Size:    float64(s.cfg.Player.Size),
			Visible: !s.player.Invulnerable || s.player.Visible,
		},
		Obstacle: EntityView{
			X:       s.obstacle.X,
			Y:       s.obstacle.Y,
			Size:    float64(s.cfg.Obstacle.Size),
			Visible: true,
		},
		Score:  s.score,
		Lives:  s.player.Lives,
		Width:  float64(s.cfg.Screen.Width),
		Height: float64(s.cfg.Screen.Height),
	}
}

// Snapshot captures the complete session state for determinism testing.
type Snapshot struct {
	Ticks    uint64
	Phase    Phase
	Score    int
	Player   Player
	Obstacle Obstacle
}

// Snapshot returns the current session snapshot.
func (s *Session) Snapshot() Snapshot {
	return Snapshot{
		Ticks:    s.ticks,
		Phase:    s.phase,
		Score:    s.score,
		Player:   s.player,
		Obstacle: s.obstacle,
	}
}
