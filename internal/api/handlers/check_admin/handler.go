package check_admin

import (
	"net/http"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
)

// RoleResponse tells the admin panel whether to render the staff views.
type RoleResponse struct {
	UserID  string `json:"user_id"`
	IsAdmin bool   `json:"is_admin"`
}

type Handler struct {
	service AccessService
	logger  Logger
}

func NewHandler(service AccessService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	isAdmin, err := h.service.IsAdmin(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /admin/me - Failed for user=%s: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, RoleResponse{
		UserID:  userID,
		IsAdmin: isAdmin,
	})
}
