package models

import (
	"errors"
	"strings"

	"github.com/dujiao-next/gift-message/internal/logger"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	defaultSuperAdminUsername = "admin"
	defaultSuperAdminPassword = "admin123"
)

// EnsureSuperAdmin 空库时创建超级管理员；已有账号时只保证同名账号为超级管理员。
// 返回值表示是否新建了账号
func EnsureSuperAdmin(db *gorm.DB, username, password string) (bool, error) {
	if db == nil {
		return false, errors.New("database not initialized")
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username = defaultSuperAdminUsername
	}
	if password == "" {
		password = defaultSuperAdminPassword
	}

	created := false
	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&Admin{}).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return tx.Model(&Admin{}).Where("username = ?", username).Update("is_super", true).Error
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := tx.Create(&Admin{
			Username:     username,
			DisplayName:  "Super Admin",
			PasswordHash: string(hash),
			IsSuper:      true,
		}).Error; err != nil {
			return err
		}
		created = true
		return nil
	})
	if err != nil {
		return false, err
	}
	if created {
		logger.Warnw("super_admin_created",
			"username", username,
			"default_password", password == defaultSuperAdminPassword,
		)
	}
	return created, nil
}
