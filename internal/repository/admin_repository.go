package repository

import (
	"time"

	"github.com/dujiao-next/gift-message/internal/models"

	"gorm.io/gorm"
)

// AdminRepository 后台管理员
type AdminRepository interface {
	GetByUsername(username string) (*models.Admin, error)
	GetByID(id uint) (*models.Admin, error)
	Create(admin *models.Admin) error
	TouchLogin(id uint, at time.Time) error
}

// GormAdminRepository GORM 实现
type GormAdminRepository struct {
	db *gorm.DB
}

// NewAdminRepository 创建管理员仓库
func NewAdminRepository(db *gorm.DB) *GormAdminRepository {
	return &GormAdminRepository{db: db}
}

// GetByUsername 不存在时返回 nil
func (r *GormAdminRepository) GetByUsername(username string) (*models.Admin, error) {
	return firstOrNil[models.Admin](r.db.Where("username = ?", username))
}

// GetByID 不存在时返回 nil
func (r *GormAdminRepository) GetByID(id uint) (*models.Admin, error) {
	return firstOrNil[models.Admin](r.db, id)
}

// Create 创建管理员
func (r *GormAdminRepository) Create(admin *models.Admin) error {
	return r.db.Create(admin).Error
}

// TouchLogin 只更新最后登录时间，不覆盖其余字段
func (r *GormAdminRepository) TouchLogin(id uint, at time.Time) error {
	return r.db.Model(&models.Admin{}).Where("id = ?", id).Update("last_login_at", at).Error
}
