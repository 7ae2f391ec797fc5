package employee

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/department"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/position"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/shift"
	"github.com/makerhq/timeclock-backend-go/internal/pkg/database"
	"github.com/makerhq/timeclock-backend-go/internal/repository/postgresql"
)

type EmployeeService interface {
	CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error)
	GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error)
	ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error)
	UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error
	DeleteEmployee(ctx context.Context, id string) error
	ImportCSV(ctx context.Context, r io.Reader) (employee.ImportEmployeesResult, error)
	ListBiometric(ctx context.Context) ([]employee.BiometricEmployee, error)
}

type EmployeeServiceImpl struct {
	db *database.DB
	employee.EmployeeRepository
	departmentRepo department.DepartmentRepository
	positionRepo   position.PositionRepository
	shiftRepo      shift.ShiftRepository
}

func NewEmployeeService(
	db *database.DB,
	employeeRepository employee.EmployeeRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	shiftRepo shift.ShiftRepository,
) EmployeeService {
	return &EmployeeServiceImpl{
		db:                 db,
		EmployeeRepository: employeeRepository,
		departmentRepo:     departmentRepo,
		positionRepo:       positionRepo,
		shiftRepo:          shiftRepo,
	}
}

// CreateEmployee implements EmployeeService.
func (s *EmployeeServiceImpl) CreateEmployee(ctx context.Context, req employee.CreateEmployeeRequest) (employee.EmployeeResponse, error) {
	if err := req.Validate(); err != nil {
		return employee.EmployeeResponse{}, err
	}

	emp := employee.Employee{
		FullName:     req.FullName,
		EmployeeCode: req.EmployeeCode,
		Email:        req.Email,
		BiometricID:  req.BiometricID,
		Status:       employee.Status(strings.ToLower(req.Status)),
		DepartmentID: req.DepartmentID,
		PositionID:   req.PositionID,
		ShiftID:      req.ShiftID,
	}

	created, err := s.EmployeeRepository.Create(ctx, emp)
	if err != nil {
		if mapped := mapEmployeeConstraintError(err); mapped != nil {
			return employee.EmployeeResponse{}, mapped
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to create employee: %w", err)
	}

	return mapEmployeeToResponse(created), nil
}

// GetEmployee implements EmployeeService.
func (s *EmployeeServiceImpl) GetEmployee(ctx context.Context, id string) (employee.EmployeeResponse, error) {
	emp, err := s.EmployeeRepository.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.EmployeeResponse{}, employee.ErrEmployeeNotFound
		}
		return employee.EmployeeResponse{}, fmt.Errorf("failed to get employee: %w", err)
	}

	return mapEmployeeToResponse(emp), nil
}

// ListEmployees implements EmployeeService.
func (s *EmployeeServiceImpl) ListEmployees(ctx context.Context, filter employee.EmployeeFilter) (employee.ListEmployeesResponse, error) {
	if err := filter.Validate(); err != nil {
		return employee.ListEmployeesResponse{}, err
	}

	employees, total, err := s.EmployeeRepository.List(ctx, filter)
	if err != nil {
		return employee.ListEmployeesResponse{}, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]employee.EmployeeResponse, 0, len(employees))
	for _, emp := range employees {
		responses = append(responses, mapEmployeeToResponse(emp))
	}

	return employee.ListEmployeesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Employees:  responses,
	}, nil
}

// UpdateEmployee implements EmployeeService.
func (s *EmployeeServiceImpl) UpdateEmployee(ctx context.Context, req employee.UpdateEmployeeRequest) error {
	if err := req.Validate(); err != nil {
		return err
	}

	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		if mapped := mapEmployeeConstraintError(err); mapped != nil {
			return mapped
		}
		return err
	}
	return nil
}

// DeleteEmployee implements EmployeeService.
func (s *EmployeeServiceImpl) DeleteEmployee(ctx context.Context, id string) error {
	return s.EmployeeRepository.Delete(ctx, id)
}

// csvHeader is the required first row of an import file. Department and
// position are created on demand; the shift must already exist.
var csvHeader = []string{
	"full_name", "employee_code", "email", "biometric_id",
	"department", "position", "shift", "status",
}

// ImportCSV implements EmployeeService. Rows are upserted by employee_code
// inside a single transaction; per-row failures are collected, not fatal.
func (s *EmployeeServiceImpl) ImportCSV(ctx context.Context, r io.Reader) (employee.ImportEmployeesResult, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return employee.ImportEmployeesResult{}, fmt.Errorf("failed to read csv header: %w", err)
	}
	if err := validateCSVHeader(header); err != nil {
		return employee.ImportEmployeesResult{}, err
	}

	var result employee.ImportEmployeesResult

	err = postgresql.WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		txCtx := postgresql.WithTx(ctx, tx)

		line := 1
		for {
			line++
			record, err := reader.Read()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				result.Errors = append(result.Errors, employee.ImportRowError{
					Line:    line,
					Message: fmt.Sprintf("malformed csv row: %v", err),
				})
				continue
			}

			created, err := s.importRow(txCtx, record)
			if err != nil {
				result.Errors = append(result.Errors, employee.ImportRowError{
					Line:    line,
					Message: err.Error(),
				})
				continue
			}
			if created {
				result.Created++
			} else {
				result.Updated++
			}
		}
		return nil
	})
	if err != nil {
		return employee.ImportEmployeesResult{}, err
	}

	return result, nil
}

func validateCSVHeader(header []string) error {
	if len(header) != len(csvHeader) {
		return fmt.Errorf("csv header must have %d columns: %s", len(csvHeader), strings.Join(csvHeader, ","))
	}
	for i, col := range header {
		if strings.ToLower(strings.TrimSpace(col)) != csvHeader[i] {
			return fmt.Errorf("csv header column %d must be %q", i+1, csvHeader[i])
		}
	}
	return nil
}

// importRow upserts a single record and reports whether it created a new
// employee (true) or updated an existing one (false).
func (s *EmployeeServiceImpl) importRow(ctx context.Context, record []string) (bool, error) {
	if len(record) != len(csvHeader) {
		return false, fmt.Errorf("expected %d columns, got %d", len(csvHeader), len(record))
	}

	fullName := strings.TrimSpace(record[0])
	code := strings.TrimSpace(record[1])
	email := strings.TrimSpace(record[2])
	biometricRaw := strings.TrimSpace(record[3])
	departmentName := strings.TrimSpace(record[4])
	positionName := strings.TrimSpace(record[5])
	shiftName := strings.TrimSpace(record[6])
	status := strings.ToLower(strings.TrimSpace(record[7]))

	var biometricID *int64
	if biometricRaw != "" {
		id, err := strconv.ParseInt(biometricRaw, 10, 64)
		if err != nil || id <= 0 {
			return false, fmt.Errorf("biometric_id %q must be a positive number", biometricRaw)
		}
		biometricID = &id
	}
	if status == "" {
		status = string(employee.StatusActive)
	}

	departmentID, err := s.resolveDepartment(ctx, departmentName)
	if err != nil {
		return false, err
	}
	positionID, err := s.resolvePosition(ctx, positionName)
	if err != nil {
		return false, err
	}

	if shiftName == "" {
		return false, fmt.Errorf("shift is required")
	}
	sh, err := s.shiftRepo.GetByName(ctx, shiftName)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return false, fmt.Errorf("shift %q does not exist", shiftName)
		}
		return false, fmt.Errorf("failed to look up shift %q: %w", shiftName, err)
	}

	existing, err := s.EmployeeRepository.GetByEmployeeCode(ctx, code)
	if err != nil && !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("failed to look up employee %q: %w", code, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		req := employee.CreateEmployeeRequest{
			FullName:     fullName,
			EmployeeCode: code,
			Email:        email,
			BiometricID:  biometricID,
			Status:       status,
			DepartmentID: departmentID,
			PositionID:   positionID,
			ShiftID:      sh.ID,
		}
		if err := req.Validate(); err != nil {
			return false, err
		}

		_, err := s.EmployeeRepository.Create(ctx, employee.Employee{
			FullName:     req.FullName,
			EmployeeCode: req.EmployeeCode,
			Email:        req.Email,
			BiometricID:  req.BiometricID,
			Status:       employee.Status(req.Status),
			DepartmentID: req.DepartmentID,
			PositionID:   req.PositionID,
			ShiftID:      req.ShiftID,
		})
		if err != nil {
			if mapped := mapEmployeeConstraintError(err); mapped != nil {
				return false, mapped
			}
			return false, fmt.Errorf("failed to create employee %q: %w", code, err)
		}
		return true, nil
	}

	req := employee.UpdateEmployeeRequest{
		ID:           existing.ID,
		FullName:     &fullName,
		Email:        &email,
		BiometricID:  biometricID,
		Status:       &status,
		DepartmentID: &departmentID,
		PositionID:   &positionID,
		ShiftID:      &sh.ID,
	}
	if err := req.Validate(); err != nil {
		return false, err
	}
	if err := s.EmployeeRepository.Update(ctx, req); err != nil {
		if mapped := mapEmployeeConstraintError(err); mapped != nil {
			return false, mapped
		}
		return false, fmt.Errorf("failed to update employee %q: %w", code, err)
	}
	return false, nil
}

func (s *EmployeeServiceImpl) resolveDepartment(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("department is required")
	}

	dept, err := s.departmentRepo.GetByName(ctx, name)
	if err == nil {
		return dept.ID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to look up department %q: %w", name, err)
	}

	created, err := s.departmentRepo.Create(ctx, department.Department{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to create department %q: %w", name, err)
	}
	return created.ID, nil
}

func (s *EmployeeServiceImpl) resolvePosition(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("position is required")
	}

	pos, err := s.positionRepo.GetByName(ctx, name)
	if err == nil {
		return pos.ID, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return "", fmt.Errorf("failed to look up position %q: %w", name, err)
	}

	created, err := s.positionRepo.Create(ctx, position.Position{Name: name})
	if err != nil {
		return "", fmt.Errorf("failed to create position %q: %w", name, err)
	}
	return created.ID, nil
}

// ListBiometric implements EmployeeService.
func (s *EmployeeServiceImpl) ListBiometric(ctx context.Context) ([]employee.BiometricEmployee, error) {
	employees, err := s.EmployeeRepository.ListActiveBiometric(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list biometric employees: %w", err)
	}

	listing := make([]employee.BiometricEmployee, 0, len(employees))
	for _, emp := range employees {
		if emp.BiometricID == nil {
			continue
		}
		listing = append(listing, employee.BiometricEmployee{
			BiometricID:  *emp.BiometricID,
			EmployeeCode: emp.EmployeeCode,
			FullName:     emp.FullName,
		})
	}
	return listing, nil
}

func mapEmployeeConstraintError(err error) error {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != "23505" { // unique_violation
		return nil
	}

	switch {
	case strings.Contains(pgErr.ConstraintName, "employee_code"):
		return employee.ErrEmployeeCodeExists
	case strings.Contains(pgErr.ConstraintName, "biometric"):
		return employee.ErrBiometricIDExists
	default:
		return employee.ErrEmailExists
	}
}

func mapEmployeeToResponse(emp employee.Employee) employee.EmployeeResponse {
	return employee.EmployeeResponse{
		ID:             emp.ID,
		FullName:       emp.FullName,
		EmployeeCode:   emp.EmployeeCode,
		Email:          emp.Email,
		BiometricID:    emp.BiometricID,
		Status:         string(emp.Status),
		DepartmentID:   emp.DepartmentID,
		DepartmentName: emp.DepartmentName,
		PositionID:     emp.PositionID,
		PositionName:   emp.PositionName,
		ShiftID:        emp.ShiftID,
		ShiftName:      emp.ShiftName,
		CreatedAt:      emp.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
		UpdatedAt:      emp.UpdatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}
