package models

import (
	"time"

	"gorm.io/datatypes"
)

// ArtworkCache is the local mirror of an external catalog object. A row is a
// durable witness that the identifier resolved at least once; it is never
// required to be fresh and this service never deletes rows.
type ArtworkCache struct {
	ExternalID string         `gorm:"primaryKey;type:text;comment:外部藏品ID"`
	Title      *string        `gorm:"type:text;comment:标题"`
	Artist     *string        `gorm:"type:text;comment:艺术家"`
	DateLabel  *string        `gorm:"type:text;comment:年代标签"`
	ImageURL   *string        `gorm:"type:text;comment:图片URL"`
	ObjectURL  *string        `gorm:"type:text;comment:详情页URL"`
	FetchedAt  time.Time      `gorm:"type:timestamptz;not null;comment:首次抓取时间"`
	RawJSON    datatypes.JSON `gorm:"type:jsonb;comment:原始数据"`
}

func (ArtworkCache) TableName() string {
	return "artwork_cache"
}
