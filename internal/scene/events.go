package scene

import "time"

// Event is something observable that happened inside a scene.
type Event interface {
	sceneEvent()
}

// StartedEvent is sent after a scene's Setup ran.
type StartedEvent struct {
	Scene   ID
	Session int // Gameplay session number, 0 for other scenes
}

func (StartedEvent) sceneEvent() {}

// StoppedEvent is sent after a scene was torn down.
type StoppedEvent struct {
	Scene ID
}

func (StoppedEvent) sceneEvent() {}

// ButtonEvent is sent when an interactive label is activated.
type ButtonEvent struct {
	Scene ID
	Label string
}

func (ButtonEvent) sceneEvent() {}

// SpawnEvent is sent every time the spawner adds an obstacle.
type SpawnEvent struct {
	At        time.Duration // Scene time
	X         float64
	Obstacles int
	Score     int
}

func (SpawnEvent) sceneEvent() {}

// GameOverEvent is sent once per gameplay session, on the first overlap.
type GameOverEvent struct {
	At        time.Duration
	Score     int
	Obstacles int
}

func (GameOverEvent) sceneEvent() {}

// OverlapRepeatedEvent reports overlaps detected after game over. The bodies
// stay overlapping while physics is frozen, so the test keeps succeeding.
type OverlapRepeatedEvent struct {
	Count int
}

func (OverlapRepeatedEvent) sceneEvent() {}

// Listener receives scene events. Listeners run on the frame loop and must
// not block.
type Listener func(Event)
