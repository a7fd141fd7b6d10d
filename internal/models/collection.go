package models

import (
	"time"
)

type Collection struct {
	ID            uint64    `gorm:"primaryKey;autoIncrement;comment:收藏集唯一标识" json:"id"`
	Name          string    `gorm:"type:text;not null;comment:名称" json:"name"`
	Description   string    `gorm:"type:text;not null;default:'';comment:描述" json:"description"`
	Category      string    `gorm:"type:text;not null;default:'';comment:分类" json:"category"`
	CoverImageURL *string   `gorm:"type:text;comment:封面图片URL" json:"cover_image_url"`
	IsPublished   bool      `gorm:"not null;default:false;comment:是否已发布" json:"is_published"`
	CreatedAt     time.Time `gorm:"type:timestamptz;not null;autoCreateTime;comment:创建时间" json:"created_at"`
	UpdatedAt     time.Time `gorm:"type:timestamptz;not null;autoUpdateTime;comment:更新时间" json:"updated_at"`
}

func (Collection) TableName() string {
	return "collections"
}

// HasCover reports whether a usable cover image is already stored.
func (c *Collection) HasCover() bool {
	return c.CoverImageURL != nil && *c.CoverImageURL != ""
}
