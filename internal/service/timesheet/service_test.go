package timesheet

import (
	"context"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/shift"
	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
)

type fakeEmployeeRepo struct {
	employee.EmployeeRepository
	employees []employee.Employee
}

func (f *fakeEmployeeRepo) GetByEmail(ctx context.Context, email string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

func (f *fakeEmployeeRepo) GetByEmployeeCode(ctx context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.employees {
		if emp.EmployeeCode == code {
			return emp, nil
		}
	}
	return employee.Employee{}, pgx.ErrNoRows
}

type fakeShiftRepo struct {
	shift.ShiftRepository
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, pgx.ErrNoRows
	}
	return s, nil
}

type fakePunchRepo struct {
	punch.PunchRepository
	punches []punch.Punch
}

func (f *fakePunchRepo) ListByEmployeeAndRange(ctx context.Context, employeeID string, start time.Time, end time.Time) ([]punch.Punch, error) {
	return f.punches, nil
}

func tokenContext(t *testing.T, claims map[string]interface{}) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	token, _, err := ja.Encode(claims)
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), token, nil)
}

func newTestService(punches []punch.Punch) TimesheetService {
	employeeRepo := &fakeEmployeeRepo{employees: []employee.Employee{
		{
			ID:           "emp-1",
			FullName:     "Ana Souza",
			EmployeeCode: "EMP001",
			Email:        "ana@example.com",
			Status:       employee.StatusActive,
			ShiftID:      "shift-1",
		},
	}}
	shiftRepo := &fakeShiftRepo{shifts: map[string]shift.Shift{
		"shift-1": {
			ID:                   "shift-1",
			Name:                 "Comercial",
			StartTime:            time.Date(0, 1, 1, 9, 0, 0, 0, time.UTC),
			EndTime:              time.Date(0, 1, 1, 18, 0, 0, 0, time.UTC),
			BreakDurationMinutes: 60,
			LateGraceMinutes:     5,
		},
	}}
	return NewTimesheetService(NewEngine(), employeeRepo, shiftRepo, &fakePunchRepo{punches: punches})
}

func TestGetMyReportResolvesEmployeeFromToken(t *testing.T) {
	day := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	svc := newTestService([]punch.Punch{
		{EmployeeID: "emp-1", Timestamp: day.Add(9 * time.Hour), Kind: punch.KindClockIn, Source: punch.SourceTerminal},
		{EmployeeID: "emp-1", Timestamp: day.Add(18 * time.Hour), Kind: punch.KindClockOut, Source: punch.SourceTerminal},
	})

	ctx := tokenContext(t, map[string]interface{}{
		"user_id": "user-1",
		"email":   "ana@example.com",
		"type":    "access",
	})
	report, err := svc.GetMyReport(ctx, "2024-03-01", "2024-03-31")
	require.NoError(t, err)

	assert.Equal(t, "EMP001", report.Employee.EmployeeCode)
	assert.Equal(t, "Ana Souza", report.Employee.FullName)
	require.Len(t, report.Days, 1)
	assert.Equal(t, 9.0, report.Days[0].WorkedHours)
}

func TestGetMyReportWithoutEmailClaim(t *testing.T) {
	svc := newTestService(nil)

	ctx := tokenContext(t, map[string]interface{}{"user_id": "user-1", "type": "access"})
	_, err := svc.GetMyReport(ctx, "2024-03-01", "2024-03-31")
	assert.Error(t, err)
}

func TestGetMyReportWithoutEmployeeRecord(t *testing.T) {
	svc := newTestService(nil)

	ctx := tokenContext(t, map[string]interface{}{
		"user_id": "user-2",
		"email":   "nobody@example.com",
		"type":    "access",
	})
	_, err := svc.GetMyReport(ctx, "2024-03-01", "2024-03-31")
	assert.ErrorIs(t, err, employee.ErrEmployeeNotFound)
}

func TestGetMyReportValidatesDates(t *testing.T) {
	svc := newTestService(nil)

	ctx := tokenContext(t, map[string]interface{}{
		"user_id": "user-1",
		"email":   "ana@example.com",
		"type":    "access",
	})
	_, err := svc.GetMyReport(ctx, "03/01/2024", "2024-03-31")
	assert.Error(t, err)
}
