package models

import (
	"strings"
	"time"

	"gorm.io/gorm"
)

// Admin 后台账号。超级管理员跳过能力校验
type Admin struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	DisplayName  string `gorm:"type:varchar(100)" json:"display_name"`
	PasswordHash string `gorm:"not null" json:"-"`
	IsSuper      bool   `gorm:"not null;default:false;index" json:"is_super"`

	// TokenVersion 递增后旧 token 全部失效
	TokenVersion       uint64     `gorm:"not null;default:0" json:"-"`
	TokenInvalidBefore *time.Time `gorm:"index" json:"-"`

	LastLoginAt *time.Time     `json:"last_login_at"`
	CreatedAt   time.Time      `gorm:"index" json:"created_at"`
	DeletedAt   gorm.DeletedAt `gorm:"index" json:"-"`
}

// TableName 指定表名
func (Admin) TableName() string {
	return "admins"
}

// Label 展示名，未设置时退回账号名
func (a *Admin) Label() string {
	if a == nil {
		return ""
	}
	if name := strings.TrimSpace(a.DisplayName); name != "" {
		return name
	}
	return a.Username
}
