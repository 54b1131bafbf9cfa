// Package careimage loads the washing-care pictogram drawn on labels.
// The image is optional decoration: every failure path returns nil and the
// label is simply printed without it.
package careimage

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/disintegration/imaging"
)

const fetchTimeout = 5 * time.Second

// Load resolves a local path or an http(s) URL into a decoded RGB image.
// Returns nil when the source is empty, the file or URL is unreachable, or
// the payload does not decode.
func Load(ctx context.Context, pathOrURL string, log *slog.Logger) image.Image {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if pathOrURL == "" {
		return nil
	}

	if _, err := os.Stat(pathOrURL); err == nil {
		img, err := imaging.Open(pathOrURL)
		if err != nil {
			log.Warn("care image unreadable", "path", pathOrURL, "error", err)
			return nil
		}
		return imaging.Clone(img)
	}

	img := fetch(ctx, pathOrURL)
	if img == nil {
		log.Warn("care image unavailable", "source", pathOrURL)
	}
	return img
}

func fetch(ctx context.Context, url string) image.Image {
	ctx, cancel := context.WithTimeout(ctx, fetchTimeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil
	}
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(resp.Body); err != nil {
		return nil
	}
	img, err := imaging.Decode(&buf)
	if err != nil {
		return nil
	}
	return imaging.Clone(img)
}
