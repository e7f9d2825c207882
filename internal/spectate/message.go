// Package spectate streams scene events to websocket spectators.
package spectate

import (
	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// Message types.
const (
	TypeSceneStarted    = "scene_started"
	TypeSceneStopped    = "scene_stopped"
	TypeButton          = "button"
	TypeSpawn           = "spawn"
	TypeGameOver        = "game_over"
	TypeOverlapRepeated = "overlap_repeated"
)

// Message is the JSON document sent to spectators for one scene event.
type Message struct {
	Type      string  `json:"type"`
	Player    string  `json:"player"`
	Scene     string  `json:"scene,omitempty"`
	Session   int     `json:"session,omitempty"`
	Label     string  `json:"label,omitempty"`
	AtMS      int64   `json:"at_ms,omitempty"`
	X         float64 `json:"x,omitempty"`
	Score     int     `json:"score,omitempty"`
	Obstacles int     `json:"obstacles,omitempty"`
}

// FromEvent converts a scene event. It reports false for events that are not
// forwarded: repeated overlaps are only announced once per session.
func FromEvent(player string, ev scene.Event) (Message, bool) {
	switch e := ev.(type) {
	case scene.StartedEvent:
		return Message{Type: TypeSceneStarted, Player: player, Scene: string(e.Scene), Session: e.Session}, true
	case scene.StoppedEvent:
		return Message{Type: TypeSceneStopped, Player: player, Scene: string(e.Scene)}, true
	case scene.ButtonEvent:
		return Message{Type: TypeButton, Player: player, Scene: string(e.Scene), Label: e.Label}, true
	case scene.SpawnEvent:
		return Message{
			Type:      TypeSpawn,
			Player:    player,
			AtMS:      e.At.Milliseconds(),
			X:         e.X,
			Score:     e.Score,
			Obstacles: e.Obstacles,
		}, true
	case scene.GameOverEvent:
		return Message{
			Type:      TypeGameOver,
			Player:    player,
			AtMS:      e.At.Milliseconds(),
			Score:     e.Score,
			Obstacles: e.Obstacles,
		}, true
	case scene.OverlapRepeatedEvent:
		if e.Count != 1 {
			return Message{}, false
		}
		return Message{Type: TypeOverlapRepeated, Player: player}, true
	}
	return Message{}, false
}
