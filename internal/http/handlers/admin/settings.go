package admin

import (
	"errors"

	"github.com/dujiao-next/gift-message/internal/http/response"
	"github.com/dujiao-next/gift-message/internal/service"

	"github.com/gin-gonic/gin"
)

// GiftMessageSettingsResponse 后台设置与当前生效值
type GiftMessageSettingsResponse struct {
	service.GiftMessageSettings
	EffectiveMaxLength int    `json:"effective_max_length"`
	EffectiveLabel     string `json:"effective_label"`
	Loaded             bool   `json:"loaded"`
}

// GiftMessageSettingsRequest 更新请求，0 与空串表示恢复默认
type GiftMessageSettingsRequest struct {
	MaxLength int    `json:"max_length" binding:"min=0,max=1000"`
	Label     string `json:"label" binding:"max=100"`
}

// GetGiftMessageSettings 获取礼品留言设置
func (h *Handler) GetGiftMessageSettings(c *gin.Context) {
	settings, err := h.SettingService.GetGiftMessageSettings(c.Request.Context())
	if err != nil {
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	response.Success(c, h.giftMessageSettingsResponse(settings))
}

// UpdateGiftMessageSettings 更新礼品留言设置
func (h *Handler) UpdateGiftMessageSettings(c *gin.Context) {
	var req GiftMessageSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, response.CodeBadRequest, "error.settings_invalid", nil)
		return
	}
	settings, err := h.SettingService.UpdateGiftMessageSettings(c.Request.Context(), service.GiftMessageSettings{
		MaxLength: req.MaxLength,
		Label:     req.Label,
	})
	if err != nil {
		if errors.Is(err, service.ErrSettingsInvalid) {
			respondError(c, response.CodeBadRequest, "error.settings_invalid", nil)
			return
		}
		respondError(c, response.CodeInternal, "error.internal", err)
		return
	}
	requestLog(c).Infow("admin_gift_message_settings_updated",
		"max_length", settings.MaxLength,
		"label", settings.Label,
	)
	response.Success(c, h.giftMessageSettingsResponse(settings))
}

func (h *Handler) giftMessageSettingsResponse(settings service.GiftMessageSettings) GiftMessageSettingsResponse {
	resp := GiftMessageSettingsResponse{GiftMessageSettings: settings}
	if h.GiftMessage != nil {
		resp.EffectiveMaxLength = h.GiftMessage.MaxLength()
		resp.EffectiveLabel = h.GiftMessage.Label()
		resp.Loaded = h.GiftMessage.Loaded()
	}
	return resp
}
