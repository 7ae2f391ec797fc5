package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/makerhq/timeclock-backend-go/internal/domain/user"
	"github.com/makerhq/timeclock-backend-go/internal/handler/http/response"
	userservice "github.com/makerhq/timeclock-backend-go/internal/service/user"
)

type UserHandler interface {
	UpdateUserRole(w http.ResponseWriter, r *http.Request)
}

type UserHandlerImpl struct {
	userService userservice.UserService
}

func NewUserHandler(userService userservice.UserService) UserHandler {
	return &UserHandlerImpl{
		userService: userService,
	}
}

// UpdateUserRole implements UserHandler.
func (h *UserHandlerImpl) UpdateUserRole(w http.ResponseWriter, r *http.Request) {
	var req user.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateUserRole decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = chi.URLParam(r, "id")

	updated, err := h.userService.UpdateUserRole(r.Context(), req)
	if err != nil {
		slog.Error("UpdateUserRole service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "User role updated successfully", updated)
}
