package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/makerhq/timeclock-backend-go/internal/domain/employee"
	"github.com/makerhq/timeclock-backend-go/internal/handler/http/response"
	employeeservice "github.com/makerhq/timeclock-backend-go/internal/service/employee"
)

type EmployeeHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ImportEmployees(w http.ResponseWriter, r *http.Request)
	BiometricSync(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employeeservice.EmployeeService
}

func NewEmployeeHandler(employeeService employeeservice.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{
		employeeService: employeeService,
	}
}

// CreateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		slog.Error("CreateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created successfully", result)
}

// GetEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	result, err := h.employeeService.GetEmployee(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	filter := employeeFilterFromQuery(r)

	result, err := h.employeeService.ListEmployees(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Employees, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

func employeeFilterFromQuery(r *http.Request) employee.EmployeeFilter {
	var filter employee.EmployeeFilter

	query := r.URL.Query()
	if name := query.Get("name"); name != "" {
		filter.Name = &name
	}
	if departmentID := query.Get("department_id"); departmentID != "" {
		filter.DepartmentID = &departmentID
	}
	if positionID := query.Get("position_id"); positionID != "" {
		filter.PositionID = &positionID
	}
	if status := query.Get("status"); status != "" {
		filter.Status = &status
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	return filter
}

// UpdateEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	if err := h.employeeService.UpdateEmployee(r.Context(), req); err != nil {
		slog.Error("UpdateEmployee service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated successfully", nil)
}

// DeleteEmployee implements EmployeeHandler.
func (h *EmployeeHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := h.employeeService.DeleteEmployee(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee deleted successfully", nil)
}

// ImportEmployees implements EmployeeHandler. It accepts a multipart form
// with the CSV under the "file" field.
func (h *EmployeeHandlerImpl) ImportEmployees(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(10 << 20); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Missing csv file upload under 'file'", nil)
		return
	}
	defer file.Close()

	result, err := h.employeeService.ImportCSV(r.Context(), file)
	if err != nil {
		slog.Error("ImportEmployees service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee import processed", "created", result.Created, "updated", result.Updated, "rejected", len(result.Errors))
	response.SuccessWithMessage(w, "Employee import processed", result)
}

// BiometricSync implements EmployeeHandler. Terminals poll this endpoint to
// refresh their local fingerprint-to-employee mapping.
func (h *EmployeeHandlerImpl) BiometricSync(w http.ResponseWriter, r *http.Request) {
	listing, err := h.employeeService.ListBiometric(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, listing)
}
