package block_date

import (
	"errors"
	"net/http"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/calendar"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, use YYYY-MM-DD"
	msgDateInPast         = "não é possível bloquear datas passadas"
	msgSundayClosed       = "domingos já estão sempre fechados"
	msgAlreadyBlocked     = "esta data já está bloqueada"
	msgAccessDenied       = "acesso negado"
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

// Handle POST /api/v1/admin/blocked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req BlockDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(middleware.GetUserID(r.Context()))
	if err != nil {
		h.logger.Warn("POST /admin/blocked-dates - Invalid date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.Block(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, calendar.ErrAccessDenied):
			h.logger.Warn("POST /admin/blocked-dates - Access denied: user=%s", serviceReq.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, calendar.ErrDateInPast):
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, calendar.ErrSundayAlwaysClosed):
			handlers.RespondBadRequest(w, msgSundayClosed)

		case errors.Is(err, calendar.ErrDateAlreadyBlocked):
			handlers.RespondConflict(w, msgAlreadyBlocked)

		case errors.Is(err, calendar.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidDate)

		default:
			h.logger.Error("POST /admin/blocked-dates - Failed for date=%s: %v", req.Date, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusCreated, result)
}
