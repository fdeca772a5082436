package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/dujiao-next/gift-message/internal/models"
)

const authStateTTL = 10 * time.Minute

// AdminAuthState 后台令牌校验所需的管理员快照，避免每个请求都查库
type AdminAuthState struct {
	AdminID      uint   `json:"admin_id"`
	Username     string `json:"username"`
	TokenVersion uint64 `json:"token_version"`
	// TokenInvalidBefore Unix 秒，0 表示未设置
	TokenInvalidBefore int64 `json:"token_invalid_before"`
	IsSuper            bool  `json:"is_super"`
}

func authStateKey(adminID uint) string {
	return fmt.Sprintf("auth:admin:%d", adminID)
}

// BuildAdminAuthState 由管理员记录生成快照
func BuildAdminAuthState(admin *models.Admin) *AdminAuthState {
	if admin == nil {
		return nil
	}
	state := &AdminAuthState{
		AdminID:      admin.ID,
		Username:     admin.Username,
		TokenVersion: admin.TokenVersion,
		IsSuper:      admin.IsSuper,
	}
	if admin.TokenInvalidBefore != nil {
		state.TokenInvalidBefore = admin.TokenInvalidBefore.Unix()
	}
	return state
}

// GetAdminAuthState 读取快照
func GetAdminAuthState(ctx context.Context, adminID uint) (*AdminAuthState, bool, error) {
	if adminID == 0 {
		return nil, false, nil
	}
	var state AdminAuthState
	hit, err := getJSON(ctx, authStateKey(adminID), &state)
	if err != nil || !hit {
		return nil, false, err
	}
	return &state, true, nil
}

// SetAdminAuthState 写入快照
func SetAdminAuthState(ctx context.Context, state *AdminAuthState) error {
	if state == nil || state.AdminID == 0 {
		return nil
	}
	return setJSON(ctx, authStateKey(state.AdminID), state, authStateTTL)
}
