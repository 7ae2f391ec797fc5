package user

import (
	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

// UpdateUserRoleRequest changes the role of an existing account. The ID
// comes from the URL path, the role from the body.
type UpdateUserRoleRequest struct {
	ID   string `json:"-"`
	Role string `json:"role"`
}

var assignableRoles = []string{
	string(RoleAdmin),
	string(RoleHR),
	string(RoleStaff),
}

func (r *UpdateUserRoleRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidUUID(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id must be a valid UUID",
		})
	}

	if validator.IsEmpty(r.Role) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role is required",
		})
	} else if !validator.IsInSlice(r.Role, assignableRoles) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be one of: admin, hr, staff",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type UserResponse struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
