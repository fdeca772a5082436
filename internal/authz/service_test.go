package authz

import (
	"fmt"
	"strings"
	"testing"

	"github.com/dujiao-next/gift-message/internal/constants"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
)

func setupAuthzServiceTest(t *testing.T) *Service {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite failed: %v", err)
	}
	svc, err := NewService(db)
	if err != nil {
		t.Fatalf("new authz service failed: %v", err)
	}
	return svc
}

func TestEnforceAdminWithRolePolicy(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("ops", "/admin/orders/:id", "GET"); err != nil {
		t.Fatalf("grant role policy failed: %v", err)
	}
	if err := svc.SetAdminRoles(1, []string{"ops"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(1, "/api/v1/admin/orders/42", "get")
	if err != nil {
		t.Fatalf("enforce allow failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected allow=true")
	}

	allow, err = svc.EnforceAdmin(1, "/api/v1/admin/settings/gift-message", "PUT")
	if err != nil {
		t.Fatalf("enforce deny failed: %v", err)
	}
	if allow {
		t.Fatalf("expected allow=false")
	}
}

func TestSetAdminRolesOverride(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantRolePolicy("ops", "/admin/orders", "GET"); err != nil {
		t.Fatalf("grant ops policy failed: %v", err)
	}
	if err := svc.GrantRolePolicy("auditor", "/admin/notices", "GET"); err != nil {
		t.Fatalf("grant auditor policy failed: %v", err)
	}

	if err := svc.SetAdminRoles(2, []string{"ops"}); err != nil {
		t.Fatalf("set first role failed: %v", err)
	}
	roles, err := svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:ops" {
		t.Fatalf("roles want [role:ops], got=%v", roles)
	}

	if err := svc.SetAdminRoles(2, []string{"auditor"}); err != nil {
		t.Fatalf("set second role failed: %v", err)
	}
	roles, err = svc.GetAdminRoles(2)
	if err != nil {
		t.Fatalf("get roles failed: %v", err)
	}
	if len(roles) != 1 || roles[0] != "role:auditor" {
		t.Fatalf("roles want [role:auditor], got=%v", roles)
	}

	allow, err := svc.EnforceAdmin(2, "/admin/orders", "GET")
	if err != nil {
		t.Fatalf("enforce old role failed: %v", err)
	}
	if allow {
		t.Fatalf("expected old role permission removed")
	}

	allow, err = svc.EnforceAdmin(2, "/admin/notices", "GET")
	if err != nil {
		t.Fatalf("enforce new role failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected new role permission granted")
	}
}

func TestNormalizeObject(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{in: "/api/v1/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "/admin/orders/:id", want: "/admin/orders/:id"},
		{in: "admin/orders", want: "/admin/orders"},
		{in: "/api/v1", want: "/"},
		{in: "", want: "/"},
	}
	for _, item := range cases {
		got := NormalizeObject(item.in)
		if got != item.want {
			t.Fatalf("normalize object failed, in=%q want=%q got=%q", item.in, item.want, got)
		}
	}
}

func TestBootstrapBuiltinRoles(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles twice failed: %v", err)
	}

	roles, err := svc.ListRoles()
	if err != nil {
		t.Fatalf("list roles failed: %v", err)
	}
	wantRoles := map[string]bool{
		"role:readonly_auditor": true,
		"role:shop_manager":     true,
		"role:administrator":    true,
	}
	for _, role := range roles {
		delete(wantRoles, role)
	}
	if len(wantRoles) != 0 {
		t.Fatalf("builtin roles missing: %v", wantRoles)
	}

	if err := svc.SetAdminRoles(3, []string{"shop_manager"}); err != nil {
		t.Fatalf("set admin roles failed: %v", err)
	}

	allow, err := svc.EnforceAdmin(3, "/api/v1/admin/orders/legacy-table", "GET")
	if err != nil {
		t.Fatalf("enforce inherited readonly failed: %v", err)
	}
	if !allow {
		t.Fatalf("expected inherited order table permission")
	}

	allow, err = svc.EnforceAdmin(3, "/api/v1/admin/settings/gift-message", "PUT")
	if err != nil {
		t.Fatalf("enforce settings write failed: %v", err)
	}
	if allow {
		t.Fatalf("expected shop manager deny settings write")
	}
}

func TestCapabilities(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	if err := svc.SetAdminRoles(10, []string{"readonly_auditor"}); err != nil {
		t.Fatalf("set auditor role failed: %v", err)
	}
	if err := svc.SetAdminRoles(11, []string{"shop_manager"}); err != nil {
		t.Fatalf("set manager role failed: %v", err)
	}
	if err := svc.SetAdminRoles(12, []string{"administrator"}); err != nil {
		t.Fatalf("set administrator role failed: %v", err)
	}

	cases := []struct {
		adminID    uint
		capability string
		want       bool
	}{
		{10, constants.CapabilityManageOrders, false},
		{10, constants.CapabilityManageOptions, false},
		{11, constants.CapabilityManageOrders, true},
		{11, constants.CapabilityManageOptions, false},
		{12, constants.CapabilityManageOrders, true},
		{12, constants.CapabilityManageOptions, true},
	}
	for _, item := range cases {
		got, err := svc.Can(item.adminID, item.capability)
		if err != nil {
			t.Fatalf("can failed: %v", err)
		}
		if got != item.want {
			t.Fatalf("admin %d capability %s want %v got %v", item.adminID, item.capability, item.want, got)
		}
	}

	if _, err := svc.Can(10, " "); err == nil {
		t.Fatalf("expected empty capability error")
	}
}

func TestViewer(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.BootstrapBuiltinRoles(); err != nil {
		t.Fatalf("bootstrap builtin roles failed: %v", err)
	}
	if err := svc.SetAdminRoles(21, []string{"shop_manager"}); err != nil {
		t.Fatalf("set roles failed: %v", err)
	}

	anonymous := NewViewer(svc, 0, false)
	if anonymous.IsLoggedIn() || anonymous.Can(constants.CapabilityManageOrders) {
		t.Fatalf("anonymous viewer must not have capabilities")
	}
	manager := NewViewer(svc, 21, false)
	if !manager.Can(constants.CapabilityManageOrders) || manager.Can(constants.CapabilityManageOptions) {
		t.Fatalf("shop manager capabilities mismatch")
	}
	super := NewViewer(nil, 99, true)
	if !super.Can(constants.CapabilityManageOptions) {
		t.Fatalf("super admin should bypass policy")
	}
}

func TestGrantCapabilityToCustomRole(t *testing.T) {
	svc := setupAuthzServiceTest(t)
	if err := svc.GrantCapability("support", constants.CapabilityManageOrders); err != nil {
		t.Fatalf("grant capability failed: %v", err)
	}
	if err := svc.SetAdminRoles(30, []string{"support"}); err != nil {
		t.Fatalf("set roles failed: %v", err)
	}
	ok, err := svc.Can(30, constants.CapabilityManageOrders)
	if err != nil || !ok {
		t.Fatalf("support should manage orders, ok=%v err=%v", ok, err)
	}
	ok, err = svc.EnforceAdmin(30, "/api/v1/admin/orders/1", "GET")
	if err != nil || ok {
		t.Fatalf("capability must not grant api paths, ok=%v err=%v", ok, err)
	}
	if err := svc.GrantCapability("support", " "); err == nil {
		t.Fatalf("expected empty capability error")
	}
}

func TestNormalizeRole(t *testing.T) {
	cases := map[string]string{
		"shop manager":       "role:shop_manager",
		"role:administrator": "role:administrator",
		" auditor ":          "role:auditor",
	}
	for in, want := range cases {
		got, err := NormalizeRole(in)
		if err != nil || got != want {
			t.Fatalf("normalize role %q want %q got %q err=%v", in, want, got, err)
		}
	}
	for _, in := range []string{"", "role:", "  "} {
		if _, err := NormalizeRole(in); err == nil {
			t.Fatalf("normalize role %q should fail", in)
		}
	}
}

func TestNilServiceUnavailable(t *testing.T) {
	var svc *Service
	if _, err := svc.EnforceAdmin(1, "/admin/orders", "GET"); err != ErrUnavailable {
		t.Fatalf("want ErrUnavailable got %v", err)
	}
	if err := svc.BootstrapBuiltinRoles(); err != ErrUnavailable {
		t.Fatalf("want ErrUnavailable got %v", err)
	}
}
