package authz

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/casbin/casbin/v3"
	"github.com/casbin/casbin/v3/model"
	"github.com/casbin/casbin/v3/util"
	gormadapter "github.com/casbin/gorm-adapter/v3"
	"gorm.io/gorm"
)

const (
	apiV1Prefix     = "/api/v1"
	casbinTableName = "casbin_rule"
	adminSubjectFmt = "admin:%d"
	rolePrefix      = "role:"
	capabilityFmt   = "/capabilities/%s"
	capabilityAct   = "USE"
	// roleAnchor 让没有成员的角色也能被列出
	roleAnchor = "role:__anchor__"
)

// rbacModel 后台接口路径与能力共用一套策略，能力以 /capabilities/<name> + USE 表示
const rbacModel = `
[request_definition]
r = sub, obj, act

[policy_definition]
p = sub, obj, act

[role_definition]
g = _, _

[policy_effect]
e = some(where (p.eft == allow))

[matchers]
m = (g(r.sub, p.sub) || r.sub == p.sub) && keyMatch2(r.obj, p.obj) && (r.act == p.act || p.act == "*")
`

// ErrUnavailable 授权服务未初始化
var ErrUnavailable = errors.New("authz service unavailable")

// Policy 一条授权策略
type Policy struct {
	Subject string `json:"subject"`
	Object  string `json:"object"`
	Action  string `json:"action"`
}

// Service Casbin 授权服务，策略经 gorm-adapter 落库
type Service struct {
	enforcer *casbin.SyncedEnforcer
}

// NewService 创建授权服务并加载已有策略
func NewService(db *gorm.DB) (*Service, error) {
	if db == nil {
		return nil, errors.New("authz db is nil")
	}
	adapter, err := gormadapter.NewAdapterByDBUseTableName(db, "", casbinTableName)
	if err != nil {
		return nil, fmt.Errorf("create authz adapter failed: %w", err)
	}
	m, err := model.NewModelFromString(rbacModel)
	if err != nil {
		return nil, fmt.Errorf("load authz model failed: %w", err)
	}
	enforcer, err := casbin.NewSyncedEnforcer(m, adapter)
	if err != nil {
		return nil, fmt.Errorf("init authz enforcer failed: %w", err)
	}
	enforcer.AddFunction("keyMatch2", util.KeyMatch2Func)
	enforcer.EnableAutoSave(true)
	if err := enforcer.LoadPolicy(); err != nil {
		return nil, fmt.Errorf("load authz policy failed: %w", err)
	}
	return &Service{enforcer: enforcer}, nil
}

func (s *Service) ready() error {
	if s == nil || s.enforcer == nil {
		return ErrUnavailable
	}
	return nil
}

// EnforceAdmin 判定管理员能否以 act 访问 obj，obj 可带 /api/v1 前缀
func (s *Service) EnforceAdmin(adminID uint, obj, act string) (bool, error) {
	if err := s.ready(); err != nil {
		return false, err
	}
	return s.enforcer.Enforce(SubjectForAdmin(adminID), NormalizeObject(obj), NormalizeAction(act))
}

// Can 判定管理员是否拥有某项能力
func (s *Service) Can(adminID uint, capability string) (bool, error) {
	capability = strings.TrimSpace(capability)
	if capability == "" {
		return false, errors.New("capability is required")
	}
	return s.EnforceAdmin(adminID, CapabilityObject(capability), capabilityAct)
}

// EnsureRole 角色不存在时创建，返回带前缀的角色名
func (s *Service) EnsureRole(role string) (string, error) {
	normalized, err := NormalizeRole(role)
	if err != nil {
		return "", err
	}
	if normalized == roleAnchor {
		return "", errors.New("reserved role is not allowed")
	}
	if err := s.ready(); err != nil {
		return "", err
	}
	if _, err := s.enforcer.AddNamedGroupingPolicy("g", normalized, roleAnchor); err != nil {
		return "", fmt.Errorf("create role %s failed: %w", normalized, err)
	}
	return normalized, nil
}

// ListRoles 列出全部角色（不含锚点）
func (s *Service) ListRoles() ([]string, error) {
	if err := s.ready(); err != nil {
		return nil, err
	}
	rules, err := s.enforcer.GetFilteredNamedGroupingPolicy("g", 0)
	if err != nil {
		return nil, fmt.Errorf("list roles failed: %w", err)
	}
	set := make(map[string]struct{})
	for _, rule := range rules {
		for _, name := range rule {
			if isRole(name) {
				set[name] = struct{}{}
			}
		}
	}
	roles := make([]string, 0, len(set))
	for role := range set {
		roles = append(roles, role)
	}
	sort.Strings(roles)
	return roles, nil
}

// GrantRolePolicy 为角色授予接口访问策略
func (s *Service) GrantRolePolicy(role, object, action string) error {
	normalizedRole, err := s.EnsureRole(role)
	if err != nil {
		return err
	}
	act := NormalizeAction(action)
	if act == "" {
		return errors.New("action is required")
	}
	if _, err := s.enforcer.AddPolicy(normalizedRole, NormalizeObject(object), act); err != nil {
		return fmt.Errorf("grant policy failed: %w", err)
	}
	return nil
}

// GrantCapability 为角色授予能力
func (s *Service) GrantCapability(role, capability string) error {
	if strings.TrimSpace(capability) == "" {
		return errors.New("capability is required")
	}
	return s.GrantRolePolicy(role, CapabilityObject(capability), capabilityAct)
}

// SetAdminRoles 覆盖管理员的角色
func (s *Service) SetAdminRoles(adminID uint, roles []string) error {
	if adminID == 0 {
		return errors.New("admin id is required")
	}
	if err := s.ready(); err != nil {
		return err
	}
	subject := SubjectForAdmin(adminID)
	if _, err := s.enforcer.RemoveFilteredNamedGroupingPolicy("g", 0, subject); err != nil {
		return fmt.Errorf("clear admin roles failed: %w", err)
	}
	for _, role := range roles {
		normalizedRole, err := s.EnsureRole(role)
		if err != nil {
			return err
		}
		if _, err := s.enforcer.AddNamedGroupingPolicy("g", subject, normalizedRole); err != nil {
			return fmt.Errorf("assign admin role failed: %w", err)
		}
	}
	return nil
}

// GetAdminRoles 管理员直接拥有的角色
func (s *Service) GetAdminRoles(adminID uint) ([]string, error) {
	if adminID == 0 {
		return nil, errors.New("admin id is required")
	}
	if err := s.ready(); err != nil {
		return nil, err
	}
	roles, err := s.enforcer.GetRolesForUser(SubjectForAdmin(adminID))
	if err != nil {
		return nil, fmt.Errorf("get admin roles failed: %w", err)
	}
	filtered := make([]string, 0, len(roles))
	for _, role := range roles {
		if isRole(role) {
			filtered = append(filtered, role)
		}
	}
	sort.Strings(filtered)
	return filtered, nil
}

func isRole(name string) bool {
	return strings.HasPrefix(name, rolePrefix) && name != roleAnchor
}

// CapabilityObject 能力对应的授权资源
func CapabilityObject(capability string) string {
	return fmt.Sprintf(capabilityFmt, strings.TrimSpace(capability))
}

// SubjectForAdmin 管理员主体标识
func SubjectForAdmin(adminID uint) string {
	return fmt.Sprintf(adminSubjectFmt, adminID)
}

// NormalizeRole 去空格、空白转下划线并补 role: 前缀
func NormalizeRole(role string) (string, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(role), " ", "_")
	normalized = strings.TrimPrefix(normalized, rolePrefix)
	if normalized == "" {
		return "", errors.New("role is required")
	}
	return rolePrefix + normalized, nil
}

// NormalizeObject 统一为以 / 开头且去掉 /api/v1 前缀的路径
func NormalizeObject(object string) string {
	normalized := strings.TrimSpace(object)
	if !strings.HasPrefix(normalized, "/") {
		normalized = "/" + normalized
	}
	if normalized == apiV1Prefix {
		return "/"
	}
	if strings.HasPrefix(normalized, apiV1Prefix+"/") {
		return strings.TrimPrefix(normalized, apiV1Prefix)
	}
	return normalized
}

// NormalizeAction 动作统一大写
func NormalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}
