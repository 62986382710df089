package core

// RuntimeConfig contains settings a frontend passes when it starts a session.
// Games use this for deterministic simulation; screen size is the frontend's
// drawing surface, not the game world.
type RuntimeConfig struct {
	ScreenW  int   // Screen width in characters
	ScreenH  int   // Screen height in characters
	TickRate int   // Simulation ticks per second (default 60)
	Seed     int64 // RNG seed; 0 means seed from the clock
}
