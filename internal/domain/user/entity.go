package user

import "time"

type Role string

const (
	RoleAdmin Role = "admin" // Full access, manages users and master data
	RoleHR    Role = "hr"    // Adjusts punches, views all reports, exports data
	RoleStaff Role = "staff" // Views own timesheet only
)

type User struct {
	ID              string
	Email           string
	FullName        string
	PasswordHash    *string
	Role            Role
	OAuthProvider   *string
	OAuthProviderID *string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}
