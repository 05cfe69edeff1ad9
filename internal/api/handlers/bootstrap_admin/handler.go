package bootstrap_admin

import (
	"errors"
	"net/http"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/access"
)

const msgAdminExists = "já existe um administrador cadastrado"

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

// Handle POST /api/v1/admin/bootstrap
//
// Grants the admin role to the caller while no admin exists yet. Used once
// right after the service is deployed.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.service.BootstrapFirstAdmin(r.Context(), userID); err != nil {
		switch {
		case errors.Is(err, access.ErrAdminExists):
			h.logger.Warn("POST /admin/bootstrap - Rejected, admin exists: user=%s", userID)
			handlers.RespondConflict(w, msgAdminExists)

		default:
			h.logger.Error("POST /admin/bootstrap - Failed for user=%s: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/bootstrap - User %s is now admin", userID)
	handlers.RespondNoContent(w)
}
