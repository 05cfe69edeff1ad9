package unblock_date

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/calendar"
)

const (
	msgInvalidBlockedDateID = "identificador inválido"
	msgBlockedDateNotFound  = "data bloqueada não encontrada"
	msgAccessDenied         = "acesso negado"
)

type Handler struct {
	service CalendarService
	logger  Logger
}

func NewHandler(service CalendarService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle DELETE /api/v1/admin/blocked-dates/{blockedDateId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["blockedDateId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidBlockedDateID)
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.Unblock(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Access denied: user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, calendar.ErrBlockedDateNotFound):
			h.logger.Warn("DELETE /admin/blocked-dates/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgBlockedDateNotFound)

		default:
			h.logger.Error("DELETE /admin/blocked-dates/{id} - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
