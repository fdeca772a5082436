package authz

import (
	"fmt"

	"github.com/dujiao-next/gift-message/internal/constants"
)

// RoleSeed 预置角色
type RoleSeed struct {
	Role         string
	Inherits     []string
	Policies     []Policy
	Capabilities []string
}

// BuiltinRoleSeeds 审计员只读订单；店长可管理订单；管理员拥有全部后台接口与站点设置
func BuiltinRoleSeeds() []RoleSeed {
	return []RoleSeed{
		{
			Role: "readonly_auditor",
			Policies: []Policy{
				{Object: "/admin/orders/*", Action: "GET"},
				{Object: "/admin/notices", Action: "GET"},
			},
		},
		{
			Role:         "shop_manager",
			Inherits:     []string{"readonly_auditor"},
			Policies:     []Policy{{Object: "/admin/settings/gift-message", Action: "GET"}},
			Capabilities: []string{constants.CapabilityManageOrders},
		},
		{
			Role:         "administrator",
			Inherits:     []string{"shop_manager"},
			Policies:     []Policy{{Object: "/admin/*", Action: "*"}},
			Capabilities: []string{constants.CapabilityManageOptions},
		},
	}
}

// BootstrapBuiltinRoles 写入预置角色，可重复执行
func (s *Service) BootstrapBuiltinRoles() error {
	if err := s.ready(); err != nil {
		return err
	}
	for _, seed := range BuiltinRoleSeeds() {
		role, err := s.EnsureRole(seed.Role)
		if err != nil {
			return err
		}
		for _, parent := range seed.Inherits {
			parentRole, err := s.EnsureRole(parent)
			if err != nil {
				return err
			}
			if _, err := s.enforcer.AddNamedGroupingPolicy("g", role, parentRole); err != nil {
				return fmt.Errorf("link %s to %s failed: %w", role, parentRole, err)
			}
		}
		for _, policy := range seed.Policies {
			if err := s.GrantRolePolicy(role, policy.Object, policy.Action); err != nil {
				return fmt.Errorf("seed %s policy failed: %w", role, err)
			}
		}
		for _, capability := range seed.Capabilities {
			if err := s.GrantCapability(role, capability); err != nil {
				return fmt.Errorf("seed %s capability failed: %w", role, err)
			}
		}
	}
	return nil
}
