package core

// GameState is the frontend-facing summary of the running game.
type GameState struct {
	Scene         string // Active scene ID
	Session       int    // Increments every time a gameplay session starts
	Score         int    // Score of the current gameplay session
	GameOver      bool   // Whether the gameplay session has ended
	PhysicsPaused bool   // Whether the physics world is frozen
}

// StepResult is returned after each simulation tick.
type StepResult struct {
	State GameState
}
