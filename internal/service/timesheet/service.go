package timesheet

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/makerhq/timeclock-backend-go/internal/domain/auth"
	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/shift"
	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/domain/timesheet"
)

type TimesheetService interface {
	// GetReport rebuilds the timesheet for one employee over an
	// inclusive date range.
	GetReport(ctx context.Context, req timesheet.ReportRequest) (timesheet.PeriodReport, error)

	// GetMyReport rebuilds the caller's own timesheet. The employee
	// record is resolved through the email on the access token.
	GetMyReport(ctx context.Context, startDate string, endDate string) (timesheet.PeriodReport, error)
}

type timesheetServiceImpl struct {
	engine *Engine
	employee.EmployeeRepository
	shift.ShiftRepository
	punch.PunchRepository
}

func NewTimesheetService(
	engine *Engine,
	employeeRepo employee.EmployeeRepository,
	shiftRepo shift.ShiftRepository,
	punchRepo punch.PunchRepository,
) TimesheetService {
	return &timesheetServiceImpl{
		engine:             engine,
		EmployeeRepository: employeeRepo,
		ShiftRepository:    shiftRepo,
		PunchRepository:    punchRepo,
	}
}

// GetReport implements TimesheetService.
func (s *timesheetServiceImpl) GetReport(ctx context.Context, req timesheet.ReportRequest) (timesheet.PeriodReport, error) {
	if err := req.Validate(); err != nil {
		return timesheet.PeriodReport{}, err
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	emp, err := s.EmployeeRepository.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.PeriodReport{}, employee.ErrEmployeeNotFound
		}
		return timesheet.PeriodReport{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	empShift, err := s.ShiftRepository.GetByID(ctx, emp.ShiftID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.PeriodReport{}, shift.ErrShiftNotFound
		}
		return timesheet.PeriodReport{}, fmt.Errorf("failed to get shift: %w", err)
	}

	// End bound is exclusive: the day after the last requested date.
	punches, err := s.PunchRepository.ListByEmployeeAndRange(ctx, emp.ID, startDate, endDate.AddDate(0, 0, 1))
	if err != nil {
		return timesheet.PeriodReport{}, fmt.Errorf("failed to list punches: %w", err)
	}

	info := timesheet.EmployeeInfo{
		FullName:     emp.FullName,
		EmployeeCode: emp.EmployeeCode,
	}
	if emp.DepartmentName != nil {
		info.Department = *emp.DepartmentName
	}
	if emp.PositionName != nil {
		info.Position = *emp.PositionName
	}

	policy := timesheet.ShiftPolicy{
		Name:                 empShift.Name,
		Start:                empShift.StartTime,
		End:                  empShift.EndTime,
		BreakDurationMinutes: empShift.BreakDurationMinutes,
		LateGraceMinutes:     empShift.LateGraceMinutes,
	}

	return s.engine.BuildPeriodReport(info, policy, startDate, endDate, punches), nil
}

// GetMyReport implements TimesheetService.
func (s *timesheetServiceImpl) GetMyReport(ctx context.Context, startDate string, endDate string) (timesheet.PeriodReport, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return timesheet.PeriodReport{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return timesheet.PeriodReport{}, auth.ErrInvalidToken
	}

	emp, err := s.EmployeeRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return timesheet.PeriodReport{}, employee.ErrEmployeeNotFound
		}
		return timesheet.PeriodReport{}, fmt.Errorf("failed to get employee by email: %w", err)
	}

	return s.GetReport(ctx, timesheet.ReportRequest{
		EmployeeCode: emp.EmployeeCode,
		StartDate:    startDate,
		EndDate:      endDate,
	})
}
