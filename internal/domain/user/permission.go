package user

type Permission string

const (
	// Master data
	PermissionMasterManage Permission = "master.manage"

	// Employee management
	PermissionEmployeeViewAll Permission = "employee.view_all"
	PermissionEmployeeManage  Permission = "employee.manage"
	PermissionEmployeeImport  Permission = "employee.import"

	// Punch records
	PermissionPunchViewAll Permission = "punch.view_all"
	PermissionPunchAdjust  Permission = "punch.adjust"

	// Reports
	PermissionReportsViewOwn Permission = "reports.view_own"
	PermissionReportsViewAll Permission = "reports.view_all"

	// Exports
	PermissionDataExport Permission = "data.export"

	// User management
	PermissionUserManage Permission = "user.manage"
)

// RolePermissions maps roles to their permissions
var RolePermissions = map[Role][]Permission{
	RoleAdmin: {
		// Admin has all permissions
		PermissionMasterManage,
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionEmployeeImport,
		PermissionPunchViewAll,
		PermissionPunchAdjust,
		PermissionReportsViewOwn,
		PermissionReportsViewAll,
		PermissionDataExport,
		PermissionUserManage,
	},
	RoleHR: {
		// HR handles day-to-day attendance administration
		PermissionEmployeeViewAll,
		PermissionEmployeeManage,
		PermissionEmployeeImport,
		PermissionPunchViewAll,
		PermissionPunchAdjust,
		PermissionReportsViewOwn,
		PermissionReportsViewAll,
		PermissionDataExport,
	},
	RoleStaff: {
		// Staff can only look at their own timesheet
		PermissionReportsViewOwn,
	},
}

// HasPermission checks if a role has a specific permission
func HasPermission(role Role, permission Permission) bool {
	permissions, exists := RolePermissions[role]
	if !exists {
		return false
	}

	for _, p := range permissions {
		if p == permission {
			return true
		}
	}

	return false
}
