package assets

import (
	"context"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

func pngServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/ok.png", func(w http.ResponseWriter, _ *http.Request) {
		img := image.NewRGBA(image.Rect(0, 0, 17, 17))
		img.Set(8, 8, color.White)
		w.Header().Set("Content-Type", "image/png")
		png.Encode(w, img)
	})
	mux.HandleFunc("/garbage.png", func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte("not an image"))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchAll(t *testing.T) {
	srv := pngServer(t)
	cfg := config.AssetConfig{
		Background: srv.URL + "/ok.png",
		Player:     srv.URL + "/ok.png",
		Obstacle:   srv.URL + "/ok.png",
	}

	images, err := Fetch(context.Background(), srv.Client(), cfg, nil)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	for _, key := range []string{dodge.AssetBackground, dodge.AssetPlayer, dodge.AssetObstacle} {
		img, ok := images[key]
		if !ok {
			t.Errorf("missing %s", key)
			continue
		}
		if got := img.Bounds().Dx(); got != 17 {
			t.Errorf("%s width = %d, want 17", key, got)
		}
	}
}

func TestFetchPartialFailure(t *testing.T) {
	srv := pngServer(t)
	cfg := config.AssetConfig{
		Background: srv.URL + "/missing.png",
		Player:     srv.URL + "/ok.png",
		Obstacle:   srv.URL + "/garbage.png",
	}

	images, err := Fetch(context.Background(), srv.Client(), cfg, nil)
	if err == nil {
		t.Fatal("Fetch() should report failures")
	}
	if len(images) != 1 || images[dodge.AssetPlayer] == nil {
		t.Errorf("images = %v, want only the player", images)
	}
	for _, key := range []string{"background", "obstacle"} {
		if !strings.Contains(err.Error(), key) {
			t.Errorf("error %q does not name %s", err, key)
		}
	}
}

func TestFetchSkipsEmptyURLs(t *testing.T) {
	images, err := Fetch(context.Background(), nil, config.AssetConfig{}, nil)
	if err != nil {
		t.Fatalf("Fetch() error: %v", err)
	}
	if len(images) != 0 {
		t.Errorf("images = %d, want 0", len(images))
	}
}

func TestFetchCancelled(t *testing.T) {
	srv := pngServer(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Fetch(ctx, srv.Client(), config.AssetConfig{Player: srv.URL + "/ok.png"}, nil)
	if err == nil {
		t.Error("Fetch() with a cancelled context should fail")
	}
}
