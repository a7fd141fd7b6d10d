package models

import (
	"time"
)

// CollectionArtwork links a local collection to one external catalog object.
// The (collection_id, external_id) pair is unique; rows are never updated in
// place, re-linking is delete + insert.
type CollectionArtwork struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement;comment:链接唯一标识" json:"id"`
	CollectionID uint64    `gorm:"not null;uniqueIndex:idx_collection_external,priority:1;comment:所属收藏集ID" json:"collection_id"`
	ExternalID   string    `gorm:"type:text;not null;uniqueIndex:idx_collection_external,priority:2;comment:外部藏品ID" json:"external_id"`
	SortOrder    *int      `gorm:"comment:显示顺序" json:"sort_order"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;autoCreateTime;comment:创建时间" json:"created_at"`
}

func (CollectionArtwork) TableName() string {
	return "collection_artworks"
}
