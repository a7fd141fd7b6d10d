package models

import (
	"time"
)

type Comment struct {
	ID         uint64    `gorm:"primaryKey;autoIncrement;comment:评论唯一标识" json:"id"`
	UserID     uint64    `gorm:"not null;index;comment:用户ID" json:"user_id"`
	ExternalID string    `gorm:"type:text;not null;index;comment:外部藏品ID" json:"external_id"`
	Text       string    `gorm:"type:text;not null;comment:评论内容" json:"text"`
	CreatedAt  time.Time `gorm:"type:timestamptz;not null;autoCreateTime;comment:创建时间" json:"created_at"`
}

func (Comment) TableName() string {
	return "comments"
}
