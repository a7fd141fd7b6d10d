package service

import (
	"context"

	"go.uber.org/zap"

	"gallery/internal/models"
	"gallery/internal/repository"
)

// CoverService lazily materializes a collection's cover image from its first
// linked artwork. Success is persisted write-through so the external lookup
// happens at most once per collection; failures stay unpersisted and are
// retried on a later read.
type CoverService struct {
	Repo   repository.Repository
	Client CatalogClient
	Logger *zap.Logger
}

// ResolveCover returns the collection's cover image URL, backfilling it from
// the catalog when missing. Returns nil when the collection has no links or
// the lookup fails.
func (s *CoverService) ResolveCover(ctx context.Context, collection *models.Collection) *string {
	if s == nil || collection == nil {
		return nil
	}
	if collection.HasCover() {
		return collection.CoverImageURL
	}

	link, err := s.Repo.FirstLinkByCollectionID(ctx, collection.ID)
	if err != nil || link == nil {
		return nil
	}

	obj, _, err := s.Client.GetObject(ctx, link.ExternalID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.Debug("cover backfill lookup failed",
				zap.Uint64("collection_id", collection.ID),
				zap.String("external_id", link.ExternalID),
				zap.Error(err),
			)
		}
		return nil
	}
	img := obj.ImageURL()
	if img == "" {
		return nil
	}

	if err := s.Repo.UpdateCollectionCover(ctx, collection.ID, img); err != nil {
		if s.Logger != nil {
			s.Logger.Warn("cover backfill persist failed",
				zap.Uint64("collection_id", collection.ID), zap.Error(err))
		}
		return nil
	}
	collection.CoverImageURL = &img
	return &img
}

// BackfillMissing sweeps collections with blank covers and resolves each one.
// Per-item failures are logged and skipped; the sweep never fails as a whole.
func (s *CoverService) BackfillMissing(ctx context.Context, limit int) (int, error) {
	collections, err := s.Repo.ListCollectionsMissingCover(ctx, limit)
	if err != nil {
		return 0, err
	}
	filled := 0
	for i := range collections {
		if ctx.Err() != nil {
			return filled, ctx.Err()
		}
		if s.ResolveCover(ctx, &collections[i]) != nil {
			filled++
		}
	}
	return filled, nil
}
