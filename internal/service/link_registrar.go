package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/datatypes"

	"gallery/internal/client/met"
	"gallery/internal/models"
	"gallery/internal/repository"
)

var (
	ErrCollectionNotFound = errors.New("collection not found")
	ErrLinkExists         = errors.New("artwork already linked to collection")
	ErrLinkNotFound       = errors.New("artwork not linked to collection")
	ErrExternalIDRequired = errors.New("external artwork id is required")
)

// ArtworkNotFoundError blocks a link write when the artwork could not be
// affirmatively confirmed. Unreachable distinguishes "the catalog was down"
// from "the catalog does not know this id" for the admin-facing message; both
// carry the same machine-readable outcome.
type ArtworkNotFoundError struct {
	ExternalID  string
	Unreachable bool
}

func (e *ArtworkNotFoundError) Error() string {
	if e.Unreachable {
		return fmt.Sprintf("artwork %s could not be verified: catalog temporarily unreachable", e.ExternalID)
	}
	return fmt.Sprintf("artwork %s is not part of the catalog", e.ExternalID)
}

// LinkService owns collection-artwork associations. The store cannot enforce
// a foreign key into an external catalog, so every new link is gated on an
// explicit existence check (cache hit or live lookup).
type LinkService struct {
	Repo   repository.Repository
	Client CatalogClient
	Logger *zap.Logger
}

// CreateLink validates and persists one collection-artwork association. The
// cache row is written before the link row, so a link's presence always
// implies a cache witness.
func (s *LinkService) CreateLink(ctx context.Context, collectionID uint64, externalID string, sortOrder *int) (*models.CollectionArtwork, error) {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return nil, ErrExternalIDRequired
	}

	collection, err := s.Repo.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}

	if err := s.ensureCached(ctx, externalID); err != nil {
		return nil, err
	}

	link := &models.CollectionArtwork{
		CollectionID: collectionID,
		ExternalID:   externalID,
		SortOrder:    sortOrder,
	}
	inserted, err := s.Repo.InsertLink(ctx, link)
	if err != nil {
		return nil, err
	}
	if !inserted {
		return nil, ErrLinkExists
	}
	if s.Logger != nil {
		s.Logger.Info("artwork linked",
			zap.Uint64("collection_id", collectionID),
			zap.String("external_id", externalID),
		)
	}
	return link, nil
}

// ensureCached confirms the identifier exists, populating the cache on first
// sight. NotFound and transient failures both block the write; the registrar
// favors referential integrity over availability, the inverse of the batch
// resolver's policy.
func (s *LinkService) ensureCached(ctx context.Context, externalID string) error {
	cached, err := s.Repo.GetArtworkCache(ctx, externalID)
	if err != nil {
		return err
	}
	if cached != nil {
		return nil
	}

	obj, raw, err := s.Client.GetObject(ctx, externalID)
	if err != nil {
		if met.IsNotFound(err) {
			return &ArtworkNotFoundError{ExternalID: externalID}
		}
		if s.Logger != nil {
			s.Logger.Warn("catalog lookup failed during link validation",
				zap.String("external_id", externalID), zap.Error(err))
		}
		return &ArtworkNotFoundError{ExternalID: externalID, Unreachable: true}
	}

	return s.Repo.UpsertArtworkCache(ctx, &models.ArtworkCache{
		ExternalID: externalID,
		Title:      optional(obj.Title),
		Artist:     optional(obj.ArtistDisplayName),
		DateLabel:  optional(obj.ObjectDate),
		ImageURL:   optional(obj.ImageURL()),
		ObjectURL:  optional(obj.ObjectURL),
		FetchedAt:  time.Now().UTC(),
		RawJSON:    datatypes.JSON(raw),
	})
}

// RemoveLink deletes the association; absence is reported, not swallowed.
func (s *LinkService) RemoveLink(ctx context.Context, collectionID uint64, externalID string) error {
	externalID = strings.TrimSpace(externalID)
	if externalID == "" {
		return ErrExternalIDRequired
	}
	removed, err := s.Repo.DeleteLink(ctx, collectionID, externalID)
	if err != nil {
		return err
	}
	if !removed {
		return ErrLinkNotFound
	}
	return nil
}

// ListLinks returns the collection's links ordered by explicit sort position
// ascending, nulls last, ties broken by insertion id.
func (s *LinkService) ListLinks(ctx context.Context, collectionID uint64) ([]models.CollectionArtwork, error) {
	collection, err := s.Repo.GetCollectionByID(ctx, collectionID)
	if err != nil {
		return nil, err
	}
	if collection == nil {
		return nil, ErrCollectionNotFound
	}
	return s.Repo.ListLinksByCollectionID(ctx, collectionID)
}

func optional(val string) *string {
	if val == "" {
		return nil
	}
	return &val
}
