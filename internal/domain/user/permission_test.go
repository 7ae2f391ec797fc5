package user

import "testing"

func TestHasPermission(t *testing.T) {
	cases := []struct {
		role       Role
		permission Permission
		want       bool
	}{
		{RoleAdmin, PermissionUserManage, true},
		{RoleAdmin, PermissionPunchAdjust, true},
		{RoleHR, PermissionPunchAdjust, true},
		{RoleHR, PermissionReportsViewAll, true},
		{RoleHR, PermissionUserManage, false},
		{RoleHR, PermissionMasterManage, false},
		{RoleStaff, PermissionReportsViewOwn, true},
		{RoleStaff, PermissionReportsViewAll, false},
		{RoleStaff, PermissionDataExport, false},
		{Role("unknown"), PermissionReportsViewOwn, false},
	}
	for _, c := range cases {
		got := HasPermission(c.role, c.permission)
		if got != c.want {
			t.Errorf("HasPermission(%q, %q) = %v, want %v", c.role, c.permission, got, c.want)
		}
	}
}
