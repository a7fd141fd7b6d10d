package gormrepository

import (
	"context"
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gallery/internal/models"
	"gallery/internal/repository"
)

type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// --- Collections ------------------------------------------------------------

func (s *Store) CreateCollection(ctx context.Context, item *models.Collection) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}

func (s *Store) GetCollectionByID(ctx context.Context, id uint64) (*models.Collection, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.Collection
	err := s.db.WithContext(ctx).First(&item, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) ListCollections(ctx context.Context, params repository.ListCollectionsParams) ([]models.Collection, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	query := s.db.WithContext(ctx).Model(&models.Collection{})
	if params.Published != nil {
		query = query.Where("is_published = ?", *params.Published)
	}
	order := "id asc"
	if params.Desc {
		order = "id desc"
	}
	var items []models.Collection
	if err := query.Order(order).Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) ListCollectionsMissingCover(ctx context.Context, limit int) ([]models.Collection, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	if limit <= 0 {
		limit = 100
	}
	var items []models.Collection
	err := s.db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("cover_image_url IS NULL OR cover_image_url = ''").
		Order("id asc").
		Limit(limit).
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) UpdateCollection(ctx context.Context, id uint64, updates map[string]any) error {
	if s == nil || s.db == nil || len(updates) == 0 {
		return nil
	}
	updates["updated_at"] = time.Now().UTC()
	return s.db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("id = ?", id).
		Updates(updates).Error
}

func (s *Store) SetCollectionPublished(ctx context.Context, id uint64, published bool) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"is_published": published,
			"updated_at":   time.Now().UTC(),
		}).Error
}

func (s *Store) UpdateCollectionCover(ctx context.Context, id uint64, coverURL string) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).
		Model(&models.Collection{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"cover_image_url": coverURL,
			"updated_at":      time.Now().UTC(),
		}).Error
}

func (s *Store) DeleteCollection(ctx context.Context, id uint64) error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("collection_id = ?", id).Delete(&models.CollectionArtwork{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Collection{}, "id = ?", id).Error
	})
}

// --- Collection-artwork links ----------------------------------------------

func (s *Store) InsertLink(ctx context.Context, item *models.CollectionArtwork) (bool, error) {
	if s == nil || s.db == nil || item == nil {
		return false, nil
	}
	res := s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "collection_id"}, {Name: "external_id"}},
		DoNothing: true,
	}).Create(item)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *Store) DeleteLink(ctx context.Context, collectionID uint64, externalID string) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	res := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Where("external_id = ?", externalID).
		Delete(&models.CollectionArtwork{})
	return res.RowsAffected > 0, res.Error
}

func (s *Store) ListLinksByCollectionID(ctx context.Context, collectionID uint64) ([]models.CollectionArtwork, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.CollectionArtwork
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("sort_order ASC NULLS LAST, id ASC").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) FirstLinkByCollectionID(ctx context.Context, collectionID uint64) (*models.CollectionArtwork, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.CollectionArtwork
	err := s.db.WithContext(ctx).
		Where("collection_id = ?", collectionID).
		Order("sort_order ASC NULLS LAST, id ASC").
		First(&item).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// --- Artwork cache ----------------------------------------------------------

func (s *Store) GetArtworkCache(ctx context.Context, externalID string) (*models.ArtworkCache, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.ArtworkCache
	err := s.db.WithContext(ctx).First(&item, "external_id = ?", externalID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) UpsertArtworkCache(ctx context.Context, item *models.ArtworkCache) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	if strings.TrimSpace(item.ExternalID) == "" {
		return nil
	}
	if item.FetchedAt.IsZero() {
		item.FetchedAt = time.Now().UTC()
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "external_id"}},
		DoNothing: true,
	}).Create(item).Error
}

// --- Users ------------------------------------------------------------------

func (s *Store) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var item models.User
	err := s.db.WithContext(ctx).First(&item, "username = ?", username).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

func (s *Store) CreateUser(ctx context.Context, item *models.User) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "username"}},
		DoNothing: true,
	}).Create(item).Error
}

// --- Favorites ----------------------------------------------------------------

func (s *Store) ListFavoritesByUserID(ctx context.Context, userID uint64) ([]models.Favorite, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Favorite
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertFavorite(ctx context.Context, item *models.Favorite) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}, {Name: "external_id"}},
		DoNothing: true,
	}).Create(item).Error
}

func (s *Store) DeleteFavorite(ctx context.Context, userID uint64, externalID string) (bool, error) {
	if s == nil || s.db == nil {
		return false, nil
	}
	res := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("external_id = ?", externalID).
		Delete(&models.Favorite{})
	return res.RowsAffected > 0, res.Error
}

// --- Comments -----------------------------------------------------------------

func (s *Store) ListCommentsByArtwork(ctx context.Context, userID uint64, externalID string) ([]models.Comment, error) {
	if s == nil || s.db == nil {
		return nil, nil
	}
	var items []models.Comment
	err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Where("external_id = ?", externalID).
		Order("created_at desc").
		Find(&items).Error
	if err != nil {
		return nil, err
	}
	return items, nil
}

func (s *Store) InsertComment(ctx context.Context, item *models.Comment) error {
	if s == nil || s.db == nil || item == nil {
		return nil
	}
	return s.db.WithContext(ctx).Create(item).Error
}
