package repository

import (
	"github.com/dujiao-next/gift-message/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SettingRepository 键值设置
type SettingRepository interface {
	GetByKey(key string) (*models.Setting, error)
	Upsert(key string, value models.JSON) (*models.Setting, error)
}

// GormSettingRepository GORM 实现
type GormSettingRepository struct {
	db *gorm.DB
}

// NewSettingRepository 创建设置仓库
func NewSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// GetByKey 不存在时返回 nil
func (r *GormSettingRepository) GetByKey(key string) (*models.Setting, error) {
	return firstOrNil[models.Setting](r.db.Where(`"key" = ?`, key))
}

// Upsert 按 key 覆盖写入
func (r *GormSettingRepository) Upsert(key string, value models.JSON) (*models.Setting, error) {
	setting := &models.Setting{Key: key, ValueJSON: value}
	err := r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "key"}},
		DoUpdates: clause.AssignmentColumns([]string{"value_json", "updated_at"}),
	}).Create(setting).Error
	if err != nil {
		return nil, err
	}
	return setting, nil
}
