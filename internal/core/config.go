package core

// RuntimeConfig is what a host passes when it starts a run.
type RuntimeConfig struct {
	ScreenW  int   // Host surface width (cells or pixels)
	ScreenH  int   // Host surface height
	TickRate int   // Host frames per second
	Seed     int64 // RNG seed; 0 means seed from the clock
}

// DefaultConfig returns a terminal-sized RuntimeConfig.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
	}
}

// GameState is the summary a host needs after each step.
type GameState struct {
	Score     int
	HighScore int
	GameOver  bool // Run ended, won or lost
	Won       bool // Run ended by reaching the score ceiling
	Paused    bool
}
