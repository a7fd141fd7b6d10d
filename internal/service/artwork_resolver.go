package service

import (
	"context"
	"sync"

	"go.uber.org/zap"

	"gallery/internal/client/met"
)

// CatalogClient is the single point of contact with the external catalog.
type CatalogClient interface {
	GetObject(ctx context.Context, externalID string) (*met.Object, []byte, error)
}

// ResolvedArtwork is the display-ready projection of a catalog record. It is
// built fresh per request and never persisted.
type ResolvedArtwork struct {
	ExternalID string `json:"external_id"`
	Title      string `json:"title"`
	Artist     string `json:"artist"`
	Year       string `json:"year"`
	ImageURL   string `json:"image_url"`
	ObjectURL  string `json:"object_url,omitempty"`
}

const defaultResolveWindow = 6

type ArtworkResolver struct {
	Client CatalogClient
	Logger *zap.Logger
	// WindowSize bounds concurrent catalog calls; windows run strictly in
	// sequence so peak outbound concurrency never exceeds it.
	WindowSize int
}

// ResolveMany fetches full records for the given identifiers. Output preserves
// input order among survivors; identifiers that fail to resolve or lack an
// image are dropped rather than failing the batch, so a gallery with one
// broken link still renders.
func (r *ArtworkResolver) ResolveMany(ctx context.Context, ids []string) []ResolvedArtwork {
	if r == nil || r.Client == nil || len(ids) == 0 {
		return []ResolvedArtwork{}
	}
	window := r.WindowSize
	if window <= 0 {
		window = defaultResolveWindow
	}

	results := make([]*ResolvedArtwork, len(ids))
	for start := 0; start < len(ids); start += window {
		if ctx.Err() != nil {
			break
		}
		end := start + window
		if end > len(ids) {
			end = len(ids)
		}
		var wg sync.WaitGroup
		for i := start; i < end; i++ {
			wg.Add(1)
			go func(idx int, externalID string) {
				defer wg.Done()
				results[idx] = r.resolveOne(ctx, externalID)
			}(i, ids[i])
		}
		wg.Wait()
	}

	out := make([]ResolvedArtwork, 0, len(ids))
	for _, item := range results {
		if item != nil {
			out = append(out, *item)
		}
	}
	return out
}

func (r *ArtworkResolver) resolveOne(ctx context.Context, externalID string) *ResolvedArtwork {
	obj, _, err := r.Client.GetObject(ctx, externalID)
	if err != nil {
		if r.Logger != nil && !met.IsNotFound(err) {
			r.Logger.Debug("artwork lookup failed", zap.String("external_id", externalID), zap.Error(err))
		}
		return nil
	}
	img := obj.ImageURL()
	if img == "" {
		// Records without an image are useless on the grid.
		return nil
	}
	item := projectObject(externalID, obj)
	item.ImageURL = img
	return &item
}

// projectObject is the one place where absent catalog fields become defaults.
func projectObject(externalID string, obj *met.Object) ResolvedArtwork {
	item := ResolvedArtwork{
		ExternalID: externalID,
		Title:      obj.Title,
		Artist:     obj.ArtistDisplayName,
		Year:       obj.ObjectDate,
		ObjectURL:  obj.ObjectURL,
	}
	if item.Title == "" {
		item.Title = "Artwork #" + externalID
	}
	if item.Artist == "" {
		item.Artist = "Unknown artist"
	}
	return item
}
