package spectate

import (
	"context"
	"encoding/json"
	"io"
	"testing"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-dodge/internal/scene"
)

func discard() *log.Logger {
	return log.New(io.Discard)
}

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for !cond() {
		if time.Now().After(deadline) {
			t.Fatalf("timed out waiting for %s", what)
		}
		time.Sleep(5 * time.Millisecond)
	}
}

func TestFromEvent(t *testing.T) {
	tests := []struct {
		name string
		ev   scene.Event
		want Message
		ok   bool
	}{
		{
			name: "started",
			ev:   scene.StartedEvent{Scene: scene.Gameplay, Session: 3},
			want: Message{Type: TypeSceneStarted, Player: "p", Scene: "gameplay", Session: 3},
			ok:   true,
		},
		{
			name: "stopped",
			ev:   scene.StoppedEvent{Scene: scene.Title},
			want: Message{Type: TypeSceneStopped, Player: "p", Scene: "title"},
			ok:   true,
		},
		{
			name: "button",
			ev:   scene.ButtonEvent{Scene: scene.Title, Label: "Start Game"},
			want: Message{Type: TypeButton, Player: "p", Scene: "title", Label: "Start Game"},
			ok:   true,
		},
		{
			name: "spawn",
			ev:   scene.SpawnEvent{At: 2 * time.Second, X: 120, Obstacles: 2, Score: 20},
			want: Message{Type: TypeSpawn, Player: "p", AtMS: 2000, X: 120, Obstacles: 2, Score: 20},
			ok:   true,
		},
		{
			name: "game over",
			ev:   scene.GameOverEvent{At: 1500 * time.Millisecond, Score: 10, Obstacles: 1},
			want: Message{Type: TypeGameOver, Player: "p", AtMS: 1500, Score: 10, Obstacles: 1},
			ok:   true,
		},
		{
			name: "first repeated overlap",
			ev:   scene.OverlapRepeatedEvent{Count: 1},
			want: Message{Type: TypeOverlapRepeated, Player: "p"},
			ok:   true,
		},
		{
			name: "later repeated overlap",
			ev:   scene.OverlapRepeatedEvent{Count: 2},
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := FromEvent("p", tt.ev)
			if ok != tt.ok {
				t.Fatalf("FromEvent() ok = %v, want %v", ok, tt.ok)
			}
			if got != tt.want {
				t.Errorf("FromEvent() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestMessageJSON(t *testing.T) {
	msg, _ := FromEvent("alice", scene.StartedEvent{Scene: scene.Gameplay, Session: 1})
	data, err := json.Marshal(msg)
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	want := `{"type":"scene_started","player":"alice","scene":"gameplay","session":1}`
	if string(data) != want {
		t.Errorf("json = %s, want %s", data, want)
	}
}

func TestPublishNeverBlocks(t *testing.T) {
	h := NewHub(discard())

	done := make(chan struct{})
	go func() {
		// Nothing drains the queue.
		for i := 0; i < broadcastBuffer*2; i++ {
			h.Publish(Message{Type: TypeSpawn})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Publish blocked on a full queue")
	}
}

func TestHubDropsSlowClient(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	h := NewHub(discard())
	go h.Run(ctx)

	// An unbuffered channel nobody reads from is the slowest possible client.
	slow := &client{hub: h, send: make(chan []byte)}
	if !h.join(slow) {
		t.Fatal("join() failed on a running hub")
	}
	waitFor(t, "registration", func() bool { return h.Clients() == 1 })

	h.Publish(Message{Type: TypeSpawn})
	waitFor(t, "slow client drop", func() bool { return h.Clients() == 0 })

	if _, ok := <-slow.send; ok {
		t.Error("send channel of dropped client is still open")
	}
}

func TestJoinAfterStop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	h := NewHub(discard())
	stopped := make(chan struct{})
	go func() {
		h.Run(ctx)
		close(stopped)
	}()
	cancel()
	<-stopped

	if h.join(&client{hub: h, send: make(chan []byte, 1)}) {
		t.Error("join() succeeded on a stopped hub")
	}
}

func TestServerStreamsEvents(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := NewServer("127.0.0.1:0", discard())
	if err := srv.Start(ctx); err != nil {
		t.Fatalf("Start() error: %v", err)
	}

	conn, _, err := websocket.DefaultDialer.Dial("ws://"+srv.Addr()+"/ws", nil)
	if err != nil {
		t.Fatalf("Dial() error: %v", err)
	}
	defer conn.Close()
	waitFor(t, "spectator", func() bool { return srv.Hub().Clients() == 1 })

	listen := srv.Hub().Listener("alice")
	listen(scene.StartedEvent{Scene: scene.Gameplay, Session: 1})
	listen(scene.OverlapRepeatedEvent{Count: 5}) // Not forwarded
	listen(scene.GameOverEvent{At: time.Second, Score: 10, Obstacles: 1})

	want := []Message{
		{Type: TypeSceneStarted, Player: "alice", Scene: "gameplay", Session: 1},
		{Type: TypeGameOver, Player: "alice", AtMS: 1000, Score: 10, Obstacles: 1},
	}
	for i, w := range want {
		conn.SetReadDeadline(time.Now().Add(2 * time.Second))
		_, data, err := conn.ReadMessage()
		if err != nil {
			t.Fatalf("ReadMessage() #%d error: %v", i, err)
		}
		var got Message
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("Unmarshal() #%d error: %v", i, err)
		}
		if got != w {
			t.Errorf("message #%d = %+v, want %+v", i, got, w)
		}
	}
}
