package export

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/timesheet"
)

func strPtr(s string) *string { return &s }

func TestEmployeeExportRecord(t *testing.T) {
	biometric := int64(42)
	emp := employee.Employee{
		FullName:       "Ana Souza",
		EmployeeCode:   "EMP001",
		Email:          "ana@example.com",
		BiometricID:    &biometric,
		Status:         employee.StatusActive,
		DepartmentName: strPtr("Engineering"),
		PositionName:   strPtr("Developer"),
		ShiftName:      strPtr("Day Shift"),
	}

	record := employeeExportRecord(emp)

	assert.Equal(t, []string{
		"Ana Souza", "EMP001", "ana@example.com", "42",
		"Engineering", "Developer", "Day Shift", "active",
	}, record)
}

func TestEmployeeExportRecordOptionalFieldsEmpty(t *testing.T) {
	emp := employee.Employee{
		FullName:     "Bruno Lima",
		EmployeeCode: "EMP002",
		Email:        "bruno@example.com",
		Status:       employee.StatusInactive,
	}

	record := employeeExportRecord(emp)

	assert.Equal(t, []string{
		"Bruno Lima", "EMP002", "bruno@example.com", "",
		"", "", "", "inactive",
	}, record)
}

func TestBuildTimesheetWorkbook(t *testing.T) {
	report := timesheet.PeriodReport{
		Employee: timesheet.EmployeeInfo{
			FullName:     "Ana Souza",
			EmployeeCode: "EMP001",
			Department:   "Engineering",
			Position:     "Developer",
		},
		Shift: timesheet.ShiftInfo{
			Name:      "Day Shift",
			StartTime: "09:00",
			EndTime:   "18:00",
		},
		PeriodStart: "2024-01-15",
		PeriodEnd:   "2024-01-16",
		Days: []timesheet.DayRecord{
			{Date: "2024-01-15", DayOfWeek: "Monday", WorkedHours: 9, BreakHours: 0, LateMinutes: 0, OvertimeHours: 0},
			{Date: "2024-01-16", DayOfWeek: "Tuesday", WorkedHours: 7.83, BreakHours: 1, LateMinutes: 5, OvertimeHours: 0},
		},
		Totals: timesheet.ReportTotals{
			WorkedHours: 16.83, BreakHours: 1, LateMinutes: 5, OvertimeHours: 0,
		},
	}

	f, err := buildTimesheetWorkbook(report)
	require.NoError(t, err)
	defer f.Close()

	name, err := f.GetCellValue("Timesheet", "B1")
	require.NoError(t, err)
	assert.Equal(t, "Ana Souza", name)

	period, err := f.GetCellValue("Timesheet", "B6")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15 to 2024-01-16", period)

	// Column header row sits two rows below the report header block.
	dateHeader, err := f.GetCellValue("Timesheet", "A8")
	require.NoError(t, err)
	assert.Equal(t, "Date", dateHeader)

	firstDay, err := f.GetCellValue("Timesheet", "A9")
	require.NoError(t, err)
	assert.Equal(t, "2024-01-15", firstDay)

	worked, err := f.GetCellValue("Timesheet", "C10")
	require.NoError(t, err)
	assert.Equal(t, "7.83", worked)

	totalsLabel, err := f.GetCellValue("Timesheet", "A11")
	require.NoError(t, err)
	assert.Equal(t, "Totals", totalsLabel)

	totalWorked, err := f.GetCellValue("Timesheet", "C11")
	require.NoError(t, err)
	assert.Equal(t, "16.83", totalWorked)
}

func TestBuildEmployeesWorkbook(t *testing.T) {
	biometric := int64(7)
	employees := []employee.Employee{
		{
			FullName:       "Ana Souza",
			EmployeeCode:   "EMP001",
			Email:          "ana@example.com",
			BiometricID:    &biometric,
			Status:         employee.StatusActive,
			DepartmentName: strPtr("Engineering"),
			PositionName:   strPtr("Developer"),
			ShiftName:      strPtr("Day Shift"),
		},
	}

	f, err := buildEmployeesWorkbook(employees)
	require.NoError(t, err)
	defer f.Close()

	header, err := f.GetCellValue("Employees", "A1")
	require.NoError(t, err)
	assert.Equal(t, "Full Name", header)

	code, err := f.GetCellValue("Employees", "B2")
	require.NoError(t, err)
	assert.Equal(t, "EMP001", code)

	status, err := f.GetCellValue("Employees", "H2")
	require.NoError(t, err)
	assert.Equal(t, "active", status)
}
