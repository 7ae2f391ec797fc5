package punch

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
)

type PunchService interface {
	// TerminalPunch records a punch reported by a hardware terminal. The
	// timestamp is taken from the server clock at the moment of the call.
	TerminalPunch(ctx context.Context, req punch.TerminalPunchRequest) (punch.PunchResponse, error)

	// AdjustPunch records a punch on behalf of an employee, attributed to
	// the authenticated user. The punch log stays append-only; corrections
	// are new entries, never edits.
	AdjustPunch(ctx context.Context, req punch.AdjustPunchRequest) (punch.PunchResponse, error)

	ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchesResponse, error)
}

type PunchServiceImpl struct {
	punch.PunchRepository
	employeeRepo employee.EmployeeRepository
}

func NewPunchService(
	punchRepository punch.PunchRepository,
	employeeRepo employee.EmployeeRepository,
) PunchService {
	return &PunchServiceImpl{
		PunchRepository: punchRepository,
		employeeRepo:    employeeRepo,
	}
}

// TerminalPunch implements PunchService.
func (s *PunchServiceImpl) TerminalPunch(ctx context.Context, req punch.TerminalPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	emp, err := s.employeeRepo.GetByBiometricID(ctx, req.BiometricID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, employee.ErrUnknownBiometricID
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee by biometric id: %w", err)
	}
	if !emp.IsActive() {
		return punch.PunchResponse{}, employee.ErrEmployeeNotActive
	}

	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		EmployeeID: emp.ID,
		Timestamp:  time.Now().UTC(),
		Kind:       punch.Kind(req.Kind),
		Source:     punch.SourceTerminal,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeCode = &emp.EmployeeCode
	return mapPunchToResponse(created), nil
}

// AdjustPunch implements PunchService.
func (s *PunchServiceImpl) AdjustPunch(ctx context.Context, req punch.AdjustPunchRequest) (punch.PunchResponse, error) {
	if err := req.Validate(); err != nil {
		return punch.PunchResponse{}, err
	}

	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to extract claims from context: %w", err)
	}
	adjustedBy, _ := claims["user_id"].(string)

	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.PunchResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.PunchResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	timestamp, err := time.Parse(time.RFC3339, req.Timestamp)
	if err != nil {
		timestamp, err = time.Parse(time.RFC3339Nano, req.Timestamp)
		if err != nil {
			return punch.PunchResponse{}, fmt.Errorf("failed to parse timestamp: %w", err)
		}
	}

	created, err := s.PunchRepository.Create(ctx, punch.Punch{
		EmployeeID:    emp.ID,
		Timestamp:     timestamp,
		Kind:          punch.Kind(req.Kind),
		Source:        punch.SourceManualAdjustment,
		Justification: &req.Justification,
		AdjustedBy:    &adjustedBy,
	})
	if err != nil {
		return punch.PunchResponse{}, fmt.Errorf("failed to create punch: %w", err)
	}

	created.EmployeeName = &emp.FullName
	created.EmployeeCode = &emp.EmployeeCode
	return mapPunchToResponse(created), nil
}

// ListPunches implements PunchService.
func (s *PunchServiceImpl) ListPunches(ctx context.Context, filter punch.PunchFilter) (punch.ListPunchesResponse, error) {
	if err := filter.Validate(); err != nil {
		return punch.ListPunchesResponse{}, err
	}

	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, filter.EmployeeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return punch.ListPunchesResponse{}, employee.ErrEmployeeNotFound
		}
		return punch.ListPunchesResponse{}, fmt.Errorf("failed to get employee by code: %w", err)
	}

	punches, total, err := s.PunchRepository.List(ctx, emp.ID, filter)
	if err != nil {
		return punch.ListPunchesResponse{}, fmt.Errorf("failed to list punches: %w", err)
	}

	responses := make([]punch.PunchResponse, 0, len(punches))
	for _, p := range punches {
		responses = append(responses, mapPunchToResponse(p))
	}

	return punch.ListPunchesResponse{
		TotalCount: total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(filter.Limit))),
		Punches:    responses,
	}, nil
}

func mapPunchToResponse(p punch.Punch) punch.PunchResponse {
	return punch.PunchResponse{
		ID:            p.ID,
		EmployeeID:    p.EmployeeID,
		EmployeeCode:  p.EmployeeCode,
		EmployeeName:  p.EmployeeName,
		Timestamp:     p.Timestamp.Format(time.RFC3339),
		Kind:          string(p.Kind),
		Source:        string(p.Source),
		Justification: p.Justification,
		AdjustedBy:    p.AdjustedBy,
		CreatedAt:     p.CreatedAt.Format(time.RFC3339),
	}
}
