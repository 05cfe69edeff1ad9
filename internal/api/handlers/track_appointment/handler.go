package track_appointment

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/service/appointments"
)

const (
	msgMissingCode         = "código é obrigatório"
	msgAppointmentNotFound = "agendamento não encontrado, verifique o código e tente novamente"
)

type Handler struct {
	service AppointmentsService
	logger  Logger
}

func NewHandler(service AppointmentsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/appointments/track/{code}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]
	if code == "" {
		handlers.RespondBadRequest(w, msgMissingCode)
		return
	}

	result, err := h.service.TrackByCode(r.Context(), code)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("GET /appointments/track - Not found: code=%s", code)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgMissingCode)

		default:
			h.logger.Error("GET /appointments/track - Failed for code=%s: %v", code, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
