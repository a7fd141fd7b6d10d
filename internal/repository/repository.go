package repository

import (
	"context"

	"gallery/internal/models"
)

type ListCollectionsParams struct {
	Published *bool
	Desc      bool
}

// Repository is the persistence surface of the gallery service. All writes
// are single-row and auto-committing; no method spans a network call.
type Repository interface {
	// Collections.
	CreateCollection(ctx context.Context, item *models.Collection) error
	GetCollectionByID(ctx context.Context, id uint64) (*models.Collection, error)
	ListCollections(ctx context.Context, params ListCollectionsParams) ([]models.Collection, error)
	ListCollectionsMissingCover(ctx context.Context, limit int) ([]models.Collection, error)
	UpdateCollection(ctx context.Context, id uint64, updates map[string]any) error
	SetCollectionPublished(ctx context.Context, id uint64, published bool) error
	UpdateCollectionCover(ctx context.Context, id uint64, coverURL string) error
	DeleteCollection(ctx context.Context, id uint64) error

	// Collection-artwork links. InsertLink and DeleteLink report whether a
	// row was actually written so callers can surface duplicates/absence.
	InsertLink(ctx context.Context, item *models.CollectionArtwork) (bool, error)
	DeleteLink(ctx context.Context, collectionID uint64, externalID string) (bool, error)
	ListLinksByCollectionID(ctx context.Context, collectionID uint64) ([]models.CollectionArtwork, error)
	FirstLinkByCollectionID(ctx context.Context, collectionID uint64) (*models.CollectionArtwork, error)

	// Artwork cache. Upsert is ignore-on-conflict: cached content is
	// immutable, redundant writes are harmless.
	GetArtworkCache(ctx context.Context, externalID string) (*models.ArtworkCache, error)
	UpsertArtworkCache(ctx context.Context, item *models.ArtworkCache) error

	// Users.
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	CreateUser(ctx context.Context, item *models.User) error

	// Favorites.
	ListFavoritesByUserID(ctx context.Context, userID uint64) ([]models.Favorite, error)
	InsertFavorite(ctx context.Context, item *models.Favorite) error
	DeleteFavorite(ctx context.Context, userID uint64, externalID string) (bool, error)

	// Comments.
	ListCommentsByArtwork(ctx context.Context, userID uint64, externalID string) ([]models.Comment, error)
	InsertComment(ctx context.Context, item *models.Comment) error
}
