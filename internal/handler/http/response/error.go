package response

import (
	"errors"
	"net/http"

	"github.com/makerhq/timeclock-backend-go/internal/domain/auth"
	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/department"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/position"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/shift"
	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	// Auth domain errors
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrOAuthNotConfigured):
		BadRequest(w, "Google login is not configured", nil)
	case errors.Is(err, auth.ErrUserNotFound):
		NotFound(w, "User not found")

	// User domain errors
	case errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrUserEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")
	case errors.Is(err, user.ErrInsufficientPermissions):
		Forbidden(w, "Insufficient permissions")
	case errors.Is(err, user.ErrCannotChangeOwnRole):
		Forbidden(w, "You cannot change your own role")

	// Master data errors
	case errors.Is(err, department.ErrDepartmentNotFound):
		NotFound(w, "Department not found")
	case errors.Is(err, department.ErrDepartmentNameExists):
		Conflict(w, "Department name already exists")
	case errors.Is(err, department.ErrDepartmentInUse):
		Conflict(w, "Department is still assigned to employees")
	case errors.Is(err, position.ErrPositionNotFound):
		NotFound(w, "Position not found")
	case errors.Is(err, position.ErrPositionNameExists):
		Conflict(w, "Position name already exists")
	case errors.Is(err, position.ErrPositionInUse):
		Conflict(w, "Position is still assigned to employees")
	case errors.Is(err, shift.ErrShiftNotFound):
		NotFound(w, "Shift not found")
	case errors.Is(err, shift.ErrShiftNameExists):
		Conflict(w, "Shift name already exists")
	case errors.Is(err, shift.ErrShiftInUse):
		Conflict(w, "Shift is still assigned to employees")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeCodeExists):
		Conflict(w, "Employee code already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")
	case errors.Is(err, employee.ErrBiometricIDExists):
		Conflict(w, "Biometric ID already registered")
	case errors.Is(err, employee.ErrEmployeeNotActive):
		Forbidden(w, "Employee is not active")
	case errors.Is(err, employee.ErrUnknownBiometricID):
		NotFound(w, "Unknown biometric ID")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
