package http

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/domain/timesheet"
	"github.com/makerhq/timeclock-backend-go/internal/handler/http/response"
	exportservice "github.com/makerhq/timeclock-backend-go/internal/service/export"
	timesheetservice "github.com/makerhq/timeclock-backend-go/internal/service/timesheet"
)

type ReportHandler interface {
	GetTimesheet(w http.ResponseWriter, r *http.Request)
	GetMyTimesheet(w http.ResponseWriter, r *http.Request)
	ExportTimesheetXLSX(w http.ResponseWriter, r *http.Request)
	ExportEmployeesCSV(w http.ResponseWriter, r *http.Request)
	ExportEmployeesXLSX(w http.ResponseWriter, r *http.Request)
	ExportPunchesCSV(w http.ResponseWriter, r *http.Request)
	ExportDepartmentsCSV(w http.ResponseWriter, r *http.Request)
	ExportPositionsCSV(w http.ResponseWriter, r *http.Request)
	ExportShiftsCSV(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	timesheetService timesheetservice.TimesheetService
	exportService    exportservice.ExportService
}

func NewReportHandler(
	timesheetService timesheetservice.TimesheetService,
	exportService exportservice.ExportService,
) ReportHandler {
	return &ReportHandlerImpl{
		timesheetService: timesheetService,
		exportService:    exportService,
	}
}

func reportRequestFromQuery(r *http.Request) timesheet.ReportRequest {
	query := r.URL.Query()
	return timesheet.ReportRequest{
		EmployeeCode: query.Get("employee_code"),
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
	}
}

// GetTimesheet implements ReportHandler.
func (h *ReportHandlerImpl) GetTimesheet(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	report, err := h.timesheetService.GetReport(r.Context(), req)
	if err != nil {
		slog.Error("GetTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// GetMyTimesheet implements ReportHandler. The employee is resolved
// from the access token, not from the query.
func (h *ReportHandlerImpl) GetMyTimesheet(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	report, err := h.timesheetService.GetMyReport(r.Context(), query.Get("start_date"), query.Get("end_date"))
	if err != nil {
		slog.Error("GetMyTimesheet service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Success(w, report)
}

// ExportTimesheetXLSX implements ReportHandler.
func (h *ReportHandlerImpl) ExportTimesheetXLSX(w http.ResponseWriter, r *http.Request) {
	req := reportRequestFromQuery(r)

	// Validate before touching the response so errors still go out as JSON.
	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("timesheet_%s_%s_%s.xlsx", req.EmployeeCode, req.StartDate, req.EndDate)
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.ExportTimesheetXLSX(r.Context(), req, w); err != nil {
		slog.Error("ExportTimesheetXLSX service error", "error", err)
		return
	}
}

// ExportEmployeesCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportEmployeesCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.csv"`)

	if err := h.exportService.ExportEmployeesCSV(r.Context(), w); err != nil {
		slog.Error("ExportEmployeesCSV service error", "error", err)
		return
	}
}

// ExportEmployeesXLSX implements ReportHandler.
func (h *ReportHandlerImpl) ExportEmployeesXLSX(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="employees.xlsx"`)

	if err := h.exportService.ExportEmployeesXLSX(r.Context(), w); err != nil {
		slog.Error("ExportEmployeesXLSX service error", "error", err)
		return
	}
}

// ExportDepartmentsCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportDepartmentsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="departments.csv"`)

	if err := h.exportService.ExportDepartmentsCSV(r.Context(), w); err != nil {
		slog.Error("ExportDepartmentsCSV service error", "error", err)
		return
	}
}

// ExportPositionsCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportPositionsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="positions.csv"`)

	if err := h.exportService.ExportPositionsCSV(r.Context(), w); err != nil {
		slog.Error("ExportPositionsCSV service error", "error", err)
		return
	}
}

// ExportShiftsCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportShiftsCSV(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", `attachment; filename="shifts.csv"`)

	if err := h.exportService.ExportShiftsCSV(r.Context(), w); err != nil {
		slog.Error("ExportShiftsCSV service error", "error", err)
		return
	}
}

// ExportPunchesCSV implements ReportHandler.
func (h *ReportHandlerImpl) ExportPunchesCSV(w http.ResponseWriter, r *http.Request) {
	filter := punchFilterFromQuery(r)
	filter.Page = 1
	filter.Limit = 500

	if err := filter.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	filename := fmt.Sprintf("punches_%s_%s_%s.csv", filter.EmployeeCode, filter.StartDate, filter.EndDate)
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if err := h.exportService.ExportPunchesCSV(r.Context(), punch.PunchFilter{
		EmployeeCode: filter.EmployeeCode,
		StartDate:    filter.StartDate,
		EndDate:      filter.EndDate,
		Page:         filter.Page,
		Limit:        filter.Limit,
	}, w); err != nil {
		slog.Error("ExportPunchesCSV service error", "error", err)
		return
	}
}
