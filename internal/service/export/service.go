package export

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/xuri/excelize/v2"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/department"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/position"
	"github.com/makerhq/timeclock-backend-go/internal/domain/master/shift"
	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/domain/timesheet"
	timesheetservice "github.com/makerhq/timeclock-backend-go/internal/service/timesheet"
)

type ExportService interface {
	// ExportEmployeesCSV streams the full employee roster as CSV.
	ExportEmployeesCSV(ctx context.Context, w io.Writer) error

	// ExportEmployeesXLSX writes the full employee roster as a workbook.
	ExportEmployeesXLSX(ctx context.Context, w io.Writer) error

	// ExportPunchesCSV streams the raw punch log of one employee over an
	// inclusive date range.
	ExportPunchesCSV(ctx context.Context, req punch.PunchFilter, w io.Writer) error

	// ExportTimesheetXLSX rebuilds a timesheet report and writes it as a
	// workbook with one row per worked day plus a totals row.
	ExportTimesheetXLSX(ctx context.Context, req timesheet.ReportRequest, w io.Writer) error

	// Master data CSV exports.
	ExportDepartmentsCSV(ctx context.Context, w io.Writer) error
	ExportPositionsCSV(ctx context.Context, w io.Writer) error
	ExportShiftsCSV(ctx context.Context, w io.Writer) error
}

type ExportServiceImpl struct {
	employeeRepo     employee.EmployeeRepository
	punchRepo        punch.PunchRepository
	departmentRepo   department.DepartmentRepository
	positionRepo     position.PositionRepository
	shiftRepo        shift.ShiftRepository
	timesheetService timesheetservice.TimesheetService
}

func NewExportService(
	employeeRepo employee.EmployeeRepository,
	punchRepo punch.PunchRepository,
	departmentRepo department.DepartmentRepository,
	positionRepo position.PositionRepository,
	shiftRepo shift.ShiftRepository,
	timesheetService timesheetservice.TimesheetService,
) ExportService {
	return &ExportServiceImpl{
		employeeRepo:     employeeRepo,
		punchRepo:        punchRepo,
		departmentRepo:   departmentRepo,
		positionRepo:     positionRepo,
		shiftRepo:        shiftRepo,
		timesheetService: timesheetService,
	}
}

func writeCSV(w io.Writer, header []string, records [][]string) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, record := range records {
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportDepartmentsCSV implements ExportService.
func (s *ExportServiceImpl) ExportDepartmentsCSV(ctx context.Context, w io.Writer) error {
	departments, err := s.departmentRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list departments: %w", err)
	}

	records := make([][]string, 0, len(departments))
	for _, d := range departments {
		description := ""
		if d.Description != nil {
			description = *d.Description
		}
		records = append(records, []string{d.Name, description})
	}
	return writeCSV(w, []string{"name", "description"}, records)
}

// ExportPositionsCSV implements ExportService.
func (s *ExportServiceImpl) ExportPositionsCSV(ctx context.Context, w io.Writer) error {
	positions, err := s.positionRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list positions: %w", err)
	}

	records := make([][]string, 0, len(positions))
	for _, p := range positions {
		records = append(records, []string{p.Name})
	}
	return writeCSV(w, []string{"name"}, records)
}

// ExportShiftsCSV implements ExportService.
func (s *ExportServiceImpl) ExportShiftsCSV(ctx context.Context, w io.Writer) error {
	shifts, err := s.shiftRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list shifts: %w", err)
	}

	records := make([][]string, 0, len(shifts))
	for _, sh := range shifts {
		records = append(records, []string{
			sh.Name,
			sh.StartTime.Format("15:04"),
			sh.EndTime.Format("15:04"),
			fmt.Sprintf("%d", sh.BreakDurationMinutes),
			fmt.Sprintf("%d", sh.LateGraceMinutes),
		})
	}
	return writeCSV(w, []string{"name", "start_time", "end_time", "break_duration_minutes", "late_grace_minutes"}, records)
}

var employeeExportHeader = []string{
	"full_name", "employee_code", "email", "biometric_id",
	"department", "position", "shift", "status",
}

// employeeExportRecord flattens one employee into the export column order.
// The columns mirror the import format so an export round-trips.
func employeeExportRecord(emp employee.Employee) []string {
	biometric := ""
	if emp.BiometricID != nil {
		biometric = fmt.Sprintf("%d", *emp.BiometricID)
	}
	department := ""
	if emp.DepartmentName != nil {
		department = *emp.DepartmentName
	}
	position := ""
	if emp.PositionName != nil {
		position = *emp.PositionName
	}
	shift := ""
	if emp.ShiftName != nil {
		shift = *emp.ShiftName
	}

	return []string{
		emp.FullName, emp.EmployeeCode, emp.Email, biometric,
		department, position, shift, string(emp.Status),
	}
}

func (s *ExportServiceImpl) listAllEmployees(ctx context.Context) ([]employee.Employee, error) {
	var all []employee.Employee

	filter := employee.EmployeeFilter{Page: 1, Limit: 100}
	for {
		employees, total, err := s.employeeRepo.List(ctx, filter)
		if err != nil {
			return nil, fmt.Errorf("failed to list employees: %w", err)
		}
		all = append(all, employees...)
		if int64(len(all)) >= total || len(employees) == 0 {
			return all, nil
		}
		filter.Page++
	}
}

// ExportEmployeesCSV implements ExportService.
func (s *ExportServiceImpl) ExportEmployeesCSV(ctx context.Context, w io.Writer) error {
	employees, err := s.listAllEmployees(ctx)
	if err != nil {
		return err
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(employeeExportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, emp := range employees {
		if err := writer.Write(employeeExportRecord(emp)); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportEmployeesXLSX implements ExportService.
func (s *ExportServiceImpl) ExportEmployeesXLSX(ctx context.Context, w io.Writer) error {
	employees, err := s.listAllEmployees(ctx)
	if err != nil {
		return err
	}

	f, err := buildEmployeesWorkbook(employees)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildEmployeesWorkbook(employees []employee.Employee) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Employees"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	header := []interface{}{
		"Full Name", "Employee Code", "Email", "Biometric ID",
		"Department", "Position", "Shift", "Status",
	}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("failed to write header row: %w", err)
	}

	for i, emp := range employees {
		record := employeeExportRecord(emp)
		row := make([]interface{}, len(record))
		for j, col := range record {
			row[j] = col
		}
		cell := fmt.Sprintf("A%d", i+2)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write employee row: %w", err)
		}
	}

	return f, nil
}

var punchExportHeader = []string{
	"timestamp", "kind", "source", "justification", "adjusted_by",
}

// ExportPunchesCSV implements ExportService.
func (s *ExportServiceImpl) ExportPunchesCSV(ctx context.Context, req punch.PunchFilter, w io.Writer) error {
	if err := req.Validate(); err != nil {
		return err
	}

	emp, err := s.employeeRepo.GetByEmployeeCode(ctx, req.EmployeeCode)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return employee.ErrEmployeeNotFound
		}
		return fmt.Errorf("failed to get employee by code: %w", err)
	}

	startDate, _ := time.Parse("2006-01-02", req.StartDate)
	endDate, _ := time.Parse("2006-01-02", req.EndDate)

	punches, err := s.punchRepo.ListByEmployeeAndRange(ctx, emp.ID, startDate, endDate.AddDate(0, 0, 1))
	if err != nil {
		return fmt.Errorf("failed to list punches: %w", err)
	}

	writer := csv.NewWriter(w)
	if err := writer.Write(punchExportHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, p := range punches {
		justification := ""
		if p.Justification != nil {
			justification = *p.Justification
		}
		adjustedBy := ""
		if p.AdjustedBy != nil {
			adjustedBy = *p.AdjustedBy
		}
		record := []string{
			p.Timestamp.Format(time.RFC3339),
			string(p.Kind),
			string(p.Source),
			justification,
			adjustedBy,
		}
		if err := writer.Write(record); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}
	writer.Flush()
	return writer.Error()
}

// ExportTimesheetXLSX implements ExportService.
func (s *ExportServiceImpl) ExportTimesheetXLSX(ctx context.Context, req timesheet.ReportRequest, w io.Writer) error {
	report, err := s.timesheetService.GetReport(ctx, req)
	if err != nil {
		return err
	}

	f, err := buildTimesheetWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}

func buildTimesheetWorkbook(report timesheet.PeriodReport) (*excelize.File, error) {
	f := excelize.NewFile()

	const sheet = "Timesheet"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}

	headerRows := [][]interface{}{
		{"Employee", report.Employee.FullName},
		{"Employee Code", report.Employee.EmployeeCode},
		{"Department", report.Employee.Department},
		{"Position", report.Employee.Position},
		{"Shift", fmt.Sprintf("%s (%s - %s)", report.Shift.Name, report.Shift.StartTime, report.Shift.EndTime)},
		{"Period", fmt.Sprintf("%s to %s", report.PeriodStart, report.PeriodEnd)},
	}
	for i, row := range headerRows {
		cell := fmt.Sprintf("A%d", i+1)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write header row: %w", err)
		}
	}

	columns := []interface{}{
		"Date", "Day", "Worked Hours", "Break Hours", "Late Minutes", "Overtime Hours",
	}
	tableStart := len(headerRows) + 2
	if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", tableStart), &columns); err != nil {
		return nil, fmt.Errorf("failed to write column row: %w", err)
	}

	for i, day := range report.Days {
		row := []interface{}{
			day.Date, day.DayOfWeek,
			day.WorkedHours, day.BreakHours, day.LateMinutes, day.OvertimeHours,
		}
		cell := fmt.Sprintf("A%d", tableStart+1+i)
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write day row: %w", err)
		}
	}

	totalsRow := []interface{}{
		"Totals", "",
		report.Totals.WorkedHours, report.Totals.BreakHours,
		report.Totals.LateMinutes, report.Totals.OvertimeHours,
	}
	cell := fmt.Sprintf("A%d", tableStart+1+len(report.Days))
	if err := f.SetSheetRow(sheet, cell, &totalsRow); err != nil {
		return nil, fmt.Errorf("failed to write totals row: %w", err)
	}

	return f, nil
}
