// Package assets downloads the images referenced by the asset config.
package assets

import (
	"context"
	"errors"
	"fmt"
	"image"
	_ "image/jpeg" // Register decoders
	_ "image/png"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dodge/internal/config"
	"github.com/vovakirdan/tui-dodge/internal/games/dodge"
)

// maxImageBytes bounds a single download.
const maxImageBytes = 8 << 20

// DefaultTimeout is the per-request timeout used by Fetch when client is nil.
const DefaultTimeout = 10 * time.Second

// Sources maps asset keys to their URLs.
func Sources(cfg config.AssetConfig) map[string]string {
	return map[string]string{
		dodge.AssetBackground: cfg.Background,
		dodge.AssetPlayer:     cfg.Player,
		dodge.AssetObstacle:   cfg.Obstacle,
	}
}

// Fetch downloads and decodes every configured image. Images that fail are
// left out of the result and reported in the joined error, so callers can
// draw the rest and fall back to primitives for the missing ones.
func Fetch(ctx context.Context, client *http.Client, cfg config.AssetConfig, logger *log.Logger) (map[string]image.Image, error) {
	if client == nil {
		client = &http.Client{Timeout: DefaultTimeout}
	}

	images := make(map[string]image.Image)
	var errs []error
	for key, url := range Sources(cfg) {
		if url == "" {
			continue
		}
		img, err := fetchImage(ctx, client, url)
		if err != nil {
			errs = append(errs, fmt.Errorf("assets: %s: %w", key, err))
			continue
		}
		images[key] = img
		if logger != nil {
			logger.Debug("asset loaded", "key", key, "size", img.Bounds().Size())
		}
	}
	return images, errors.Join(errs...)
}

func fetchImage(ctx context.Context, client *http.Client, url string) (image.Image, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GET %s: %s", url, resp.Status)
	}
	img, _, err := image.Decode(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", url, err)
	}
	return img, nil
}
