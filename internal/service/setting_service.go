package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/dujiao-next/gift-message/internal/cache"
	"github.com/dujiao-next/gift-message/internal/constants"
	"github.com/dujiao-next/gift-message/internal/hooks"
	"github.com/dujiao-next/gift-message/internal/logger"
	"github.com/dujiao-next/gift-message/internal/models"
	"github.com/dujiao-next/gift-message/internal/repository"
)

const (
	giftMessageMaxLengthLimit = 1000
	giftMessageLabelLimit     = 100
	// 后台设置覆盖配置文件，优先级高于配置过滤器
	giftMessageSettingPriority = 5
)

// GiftMessageSettings 礼品留言后台设置，零值表示不覆盖
type GiftMessageSettings struct {
	MaxLength int    `json:"max_length"`
	Label     string `json:"label"`
}

// SettingService 设置业务服务
type SettingService struct {
	repo repository.SettingRepository
}

// NewSettingService 创建设置服务
func NewSettingService(repo repository.SettingRepository) *SettingService {
	return &SettingService{repo: repo}
}

// GetByKey 获取设置
func (s *SettingService) GetByKey(key string) (models.JSON, error) {
	setting, err := s.repo.GetByKey(key)
	if err != nil {
		return nil, err
	}
	if setting == nil {
		return nil, nil
	}
	return setting.ValueJSON, nil
}

// GetGiftMessageSettings 获取礼品留言设置，优先读缓存
func (s *SettingService) GetGiftMessageSettings(ctx context.Context) (GiftMessageSettings, error) {
	var settings GiftMessageSettings
	if hit, err := cache.GetSetting(ctx, constants.SettingKeyGiftMessageConfig, &settings); err == nil && hit {
		return settings, nil
	}
	value, err := s.GetByKey(constants.SettingKeyGiftMessageConfig)
	if err != nil {
		return settings, err
	}
	settings = giftMessageSettingsFromJSON(value)
	if err := cache.SetSetting(ctx, constants.SettingKeyGiftMessageConfig, settings); err != nil {
		logger.Debugw("setting_cache_set_failed", "key", constants.SettingKeyGiftMessageConfig, "error", err)
	}
	return settings, nil
}

// UpdateGiftMessageSettings 更新礼品留言设置
func (s *SettingService) UpdateGiftMessageSettings(ctx context.Context, input GiftMessageSettings) (GiftMessageSettings, error) {
	input.Label = strings.TrimSpace(input.Label)
	if input.MaxLength < 0 || input.MaxLength > giftMessageMaxLengthLimit {
		return input, ErrSettingsInvalid
	}
	if utf8.RuneCountInString(input.Label) > giftMessageLabelLimit {
		return input, ErrSettingsInvalid
	}
	value := models.JSON{
		constants.SettingFieldMaxLength: input.MaxLength,
		constants.SettingFieldLabel:     input.Label,
	}
	setting, err := s.repo.Upsert(constants.SettingKeyGiftMessageConfig, value)
	if err != nil {
		return input, err
	}
	if err := cache.DelSetting(ctx, constants.SettingKeyGiftMessageConfig); err != nil {
		logger.Warnw("setting_cache_invalidate_failed", "key", constants.SettingKeyGiftMessageConfig, "error", err)
	}
	return giftMessageSettingsFromJSON(setting.ValueJSON), nil
}

// RegisterGiftMessageFilters 后台设置通过过滤器覆盖留言长度与标签
func (s *SettingService) RegisterGiftMessageFilters(registry *hooks.Registry) {
	if s == nil || registry == nil {
		return
	}
	registry.GiftMessageMaxLength.Add(giftMessageSettingPriority, func(current int, _ struct{}) int {
		settings, err := s.GetGiftMessageSettings(context.Background())
		if err != nil {
			logger.Warnw("gift_message_settings_load_failed", "error", err)
			return current
		}
		if settings.MaxLength > 0 {
			return settings.MaxLength
		}
		return current
	})
	registry.GiftMessageLabel.Add(giftMessageSettingPriority, func(current string, _ string) string {
		settings, err := s.GetGiftMessageSettings(context.Background())
		if err != nil {
			logger.Warnw("gift_message_settings_load_failed", "error", err)
			return current
		}
		if settings.Label != "" {
			return settings.Label
		}
		return current
	})
}

func giftMessageSettingsFromJSON(value models.JSON) GiftMessageSettings {
	var settings GiftMessageSettings
	if value == nil {
		return settings
	}
	if raw, ok := value[constants.SettingFieldMaxLength]; ok {
		if n, err := parseSettingInt(raw); err == nil && n > 0 {
			settings.MaxLength = n
		}
	}
	if raw, ok := value[constants.SettingFieldLabel].(string); ok {
		settings.Label = strings.TrimSpace(raw)
	}
	return settings
}

func parseSettingInt(value interface{}) (int, error) {
	switch v := value.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case float64:
		return int(v), nil
	case json.Number:
		if i, err := v.Int64(); err == nil {
			return int(i), nil
		}
		if f, err := v.Float64(); err == nil {
			return int(f), nil
		}
		return 0, fmt.Errorf("invalid json number")
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, fmt.Errorf("empty string")
		}
		parsed, err := strconv.Atoi(trimmed)
		if err != nil {
			return 0, err
		}
		return parsed, nil
	default:
		return 0, fmt.Errorf("unsupported type %T", value)
	}
}
