package sidestep

import "github.com/vovakirdan/sidestep/internal/core"

// step runs one playing frame: move, age the invulnerability window,
// resolve collisions, then respawn the obstacle once it leaves the screen.
func (s *Session) step(now float64, in core.Intents) {
	s.ticks++

	s.player.VelX = s.horizontalVelocity(in)
	maxX := float64(s.cfg.Screen.Width - s.cfg.Player.Size)
	s.player.X = core.ClampF(s.player.X+s.player.VelX, 0, maxX)

	s.obstacle.Y += s.obstacle.Speed

	s.updateInvulnerability(now)

	if !s.player.Invulnerable && s.playerRect().Intersects(s.obstacleRect()) {
		s.hit(now)
	}

	if s.obstacle.Y > float64(s.cfg.Screen.Height) {
		s.score++
		s.spawnObstacle(s.randomSpeed())
	}
}

// horizontalVelocity resolves the movement intents; conflicting holds cancel out.
func (s *Session) horizontalVelocity(in core.Intents) float64 {
	switch {
	case in.MoveLeft && !in.MoveRight:
		return -s.cfg.Player.Speed
	case in.MoveRight && !in.MoveLeft:
		return s.cfg.Player.Speed
	default:
		return 0
	}
}

// updateInvulnerability expires the grace window and drives the flicker.
func (s *Session) updateInvulnerability(now float64) {
	if !s.player.Invulnerable {
		return
	}

	if now-s.player.InvulnStart >= s.cfg.Rules.InvulnDuration {
		s.player.Invulnerable = false
		s.player.Visible = true
		return
	}

	if now-s.player.LastFlicker >= s.cfg.Rules.FlickerInterval {
		s.player.LastFlicker = now
		s.player.Visible = !s.player.Visible
	}
}

// hit costs a life and opens the invulnerability window.
// The window is what keeps one overlap spanning several frames from
// costing more than one life.
func (s *Session) hit(now float64) {
	s.player.Lives = max(s.player.Lives-1, 0)
	s.player.Invulnerable = true
	s.player.InvulnStart = now
	s.player.LastFlicker = now

	if s.player.Lives == 0 {
		s.phase = PhaseGameOver
	}
}

// playerRect returns the player's collision rectangle.
func (s *Session) playerRect() core.RectF {
	size := float64(s.cfg.Player.Size)
	return core.NewRectF(s.player.X, s.player.Y, size, size)
}

// obstacleRect returns the obstacle's collision rectangle.
func (s *Session) obstacleRect() core.RectF {
	size := float64(s.cfg.Obstacle.Size)
	return core.NewRectF(s.obstacle.X, s.obstacle.Y, size, size)
}
