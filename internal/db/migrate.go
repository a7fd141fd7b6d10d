package db

import (
	"gallery/internal/models"
)

func AutoMigrate(db *DB) error {
	if db == nil || db.Gorm == nil || db.SQL == nil {
		return nil
	}

	return db.Gorm.AutoMigrate(
		&models.User{},
		&models.Collection{},
		&models.CollectionArtwork{},
		&models.ArtworkCache{},
		&models.Favorite{},
		&models.Comment{},
	)
}
