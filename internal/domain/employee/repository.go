package employee

import "context"

type EmployeeRepository interface {
	Create(ctx context.Context, emp Employee) (Employee, error)

	// GetByID retrieves an employee with department, position and shift labels joined in.
	GetByID(ctx context.Context, id string) (Employee, error)
	GetByEmployeeCode(ctx context.Context, code string) (Employee, error)
	GetByBiometricID(ctx context.Context, biometricID int64) (Employee, error)

	// GetByEmail resolves the employee record behind a user account.
	// Used by the self-service timesheet endpoint.
	GetByEmail(ctx context.Context, email string) (Employee, error)

	List(ctx context.Context, filter EmployeeFilter) ([]Employee, int64, error)

	Update(ctx context.Context, req UpdateEmployeeRequest) error
	Delete(ctx context.Context, id string) error

	// ListActiveBiometric lists active employees that have a biometric id,
	// ordered by employee code. Used by the terminal sync endpoint.
	ListActiveBiometric(ctx context.Context) ([]Employee, error)
}
