package storage

import (
	"io"
	"sync"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/scene"
)

// Recorder saves the score of every gameplay session that ends in game over.
// Sessions that end with a zero score are not recorded.
type Recorder struct {
	store  *Store
	player string
	logger *log.Logger

	mu    sync.Mutex
	saved int // Scores written by this recorder
	best  int // Player's best, loaded lazily
	ready bool
}

// NewRecorder creates a recorder for one player. A nil store makes every
// call a no-op, so frontends can run without a database.
func NewRecorder(store *Store, player string, logger *log.Logger) *Recorder {
	if player == "" {
		player = AnonymousPlayer
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Recorder{store: store, player: player, logger: logger.WithPrefix("scores")}
}

// Listen is a scene.Listener.
func (r *Recorder) Listen(ev scene.Event) {
	over, ok := ev.(scene.GameOverEvent)
	if !ok || over.Score <= 0 || r.store == nil {
		return
	}

	if _, err := r.store.SaveScore(GameID, r.player, over.Score); err != nil {
		r.logger.Warn("could not save score", "player", r.player, "score", over.Score, "err", err)
		return
	}

	r.mu.Lock()
	r.saved++
	if over.Score > r.best {
		r.best = over.Score
	}
	r.mu.Unlock()
	r.logger.Debug("score saved", "player", r.player, "score", over.Score)
}

// Saved returns how many scores this recorder has written.
func (r *Recorder) Saved() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.saved
}

// Best returns the player's best score, including scores from earlier runs.
func (r *Recorder) Best() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	if !r.ready && r.store != nil {
		if best, err := r.store.PlayerBest(GameID, r.player); err == nil && best > r.best {
			r.best = best
		}
		r.ready = true
	}
	return r.best
}
