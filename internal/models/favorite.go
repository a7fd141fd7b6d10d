package models

import (
	"time"
)

type Favorite struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;comment:收藏唯一标识" json:"id"`
	UserID     uint64    `gorm:"not null;uniqueIndex:idx_user_external,priority:1;comment:用户ID" json:"user_id"`
	ExternalID string    `gorm:"type:text;not null;uniqueIndex:idx_user_external,priority:2;comment:外部藏品ID" json:"external_id"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null;autoCreateTime;comment:创建时间" json:"created_at"`
}

func (Favorite) TableName() string {
	return "favorites"
}
