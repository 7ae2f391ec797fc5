package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/makerhq/timeclock-backend-go/internal/domain/punch"
	"github.com/makerhq/timeclock-backend-go/internal/handler/http/response"
	punchservice "github.com/makerhq/timeclock-backend-go/internal/service/punch"
)

type PunchHandler interface {
	TerminalPunch(w http.ResponseWriter, r *http.Request)
	AdjustPunch(w http.ResponseWriter, r *http.Request)
	ListPunches(w http.ResponseWriter, r *http.Request)
}

type PunchHandlerImpl struct {
	punchService punchservice.PunchService
}

func NewPunchHandler(punchService punchservice.PunchService) PunchHandler {
	return &PunchHandlerImpl{
		punchService: punchService,
	}
}

// TerminalPunch implements PunchHandler.
func (h *PunchHandlerImpl) TerminalPunch(w http.ResponseWriter, r *http.Request) {
	var req punch.TerminalPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.TerminalPunch(r.Context(), req)
	if err != nil {
		slog.Error("TerminalPunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Terminal punch recorded", "kind", result.Kind)
	response.Created(w, "Punch recorded successfully", result)
}

// AdjustPunch implements PunchHandler.
func (h *PunchHandlerImpl) AdjustPunch(w http.ResponseWriter, r *http.Request) {
	var req punch.AdjustPunchRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.punchService.AdjustPunch(r.Context(), req)
	if err != nil {
		slog.Error("AdjustPunch service error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("Manual punch adjustment recorded", "employee_code", req.EmployeeCode, "kind", result.Kind)
	response.Created(w, "Punch adjustment recorded successfully", result)
}

// ListPunches implements PunchHandler.
func (h *PunchHandlerImpl) ListPunches(w http.ResponseWriter, r *http.Request) {
	filter := punchFilterFromQuery(r)

	result, err := h.punchService.ListPunches(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMeta(w, result.Punches, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: result.TotalPages,
	})
}

func punchFilterFromQuery(r *http.Request) punch.PunchFilter {
	var filter punch.PunchFilter

	query := r.URL.Query()
	filter.EmployeeCode = query.Get("employee_code")
	filter.StartDate = query.Get("start_date")
	filter.EndDate = query.Get("end_date")
	if kind := query.Get("kind"); kind != "" {
		filter.Kind = &kind
	}
	if source := query.Get("source"); source != "" {
		filter.Source = &source
	}
	filter.Page, _ = strconv.Atoi(query.Get("page"))
	filter.Limit, _ = strconv.Atoi(query.Get("limit"))

	return filter
}
