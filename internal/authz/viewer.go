package authz

import (
	"github.com/dujiao-next/gift-message/internal/logger"
)

// Viewer 后台访问者，按 RBAC 判定能力
type Viewer struct {
	svc     *Service
	adminID uint
	isSuper bool
}

// NewViewer 创建访问者；adminID 为 0 表示未登录
func NewViewer(svc *Service, adminID uint, isSuper bool) Viewer {
	return Viewer{svc: svc, adminID: adminID, isSuper: isSuper}
}

// AdminID 管理员 ID
func (v Viewer) AdminID() uint {
	return v.adminID
}

// IsLoggedIn 是否已登录
func (v Viewer) IsLoggedIn() bool {
	return v.adminID > 0
}

// Can 超级管理员拥有全部能力，其余按策略判定，判定失败视为无权限
func (v Viewer) Can(capability string) bool {
	if !v.IsLoggedIn() {
		return false
	}
	if v.isSuper {
		return true
	}
	if v.svc == nil {
		return false
	}
	allowed, err := v.svc.Can(v.adminID, capability)
	if err != nil {
		logger.Warnw("authz_capability_check_failed",
			"admin_id", v.adminID,
			"capability", capability,
			"error", err,
		)
		return false
	}
	return allowed
}
