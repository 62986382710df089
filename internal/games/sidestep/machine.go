package sidestep

import "github.com/vovakirdan/sidestep/internal/core"

// Tick advances the session by one frame.
// now is a monotonic timestamp in seconds; in carries this frame's intents.
// A quit intent is honored in every phase and short-circuits the frame.
func (s *Session) Tick(now float64, in core.Intents) RenderState {
	if in.Quit {
		view := s.View()
		view.QuitRequested = true
		return view
	}

	switch s.phase {
	case PhaseStart:
		if in.Confirm {
			s.phase = PhasePlaying
		}
	case PhasePlaying:
		s.step(now, in)
	case PhaseGameOver:
		if in.Confirm {
			s.restart()
		}
	}

	return s.View()
}

// restart begins a new round after game over.
// Lives carry over unless rules.reset_lives_on_restart is set, so a restarted
// round with no lives left ends on its first hit.
func (s *Session) restart() {
	s.placePlayer()
	s.spawnObstacle(s.cfg.Obstacle.SpeedMin)
	s.score = 0
	if s.cfg.Rules.ResetLivesOnRestart {
		s.player.Lives = s.cfg.Rules.StartingLives
	}
	s.phase = PhasePlaying
}
