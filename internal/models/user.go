package models

import (
	"time"
)

type User struct {
	ID           uint64    `gorm:"primaryKey;autoIncrement;comment:用户唯一标识" json:"id"`
	Username     string    `gorm:"type:text;uniqueIndex;not null;comment:用户名" json:"username"`
	Email        string    `gorm:"type:text;not null;default:'';comment:邮箱" json:"email"`
	PasswordHash string    `gorm:"type:text;not null;comment:密码哈希" json:"-"`
	IsAdmin      bool      `gorm:"not null;default:false;comment:是否管理员" json:"is_admin"`
	CreatedAt    time.Time `gorm:"type:timestamptz;not null;autoCreateTime;comment:创建时间" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
