package cancel_appointment

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	"github.com/newcase/agendamento-service/internal/api/middleware"
	"github.com/newcase/agendamento-service/internal/service/appointments"
	"github.com/newcase/agendamento-service/internal/service/appointments/models"
)

const (
	msgInvalidAppointmentID = "identificador de agendamento inválido"
	msgInvalidRequestBody   = "corpo da requisição inválido"
	msgAppointmentNotFound  = "agendamento não encontrado"
	msgAccessDenied         = "acesso negado"
	msgEmptyBatch           = "informe ao menos um agendamento"
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

// Handle DELETE /api/v1/admin/appointments/{appointmentId}
//
// Cancelling is a hard delete so the slot opens up again immediately.
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(mux.Vars(r)["appointmentId"])
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	userID := middleware.GetUserID(r.Context())

	if err := h.service.Delete(r.Context(), id, userID); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("DELETE /admin/appointments/{id} - Access denied: user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("DELETE /admin/appointments/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgAppointmentNotFound)

		default:
			h.logger.Error("DELETE /admin/appointments/{id} - Failed for id=%s: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}

// HandleBatch POST /api/v1/admin/appointments/batch-delete
func (h *Handler) HandleBatch(w http.ResponseWriter, r *http.Request) {
	var req models.DeleteManyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/appointments/batch-delete - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	req.UserID = middleware.GetUserID(r.Context())

	if err := h.service.DeleteMany(r.Context(), &req); err != nil {
		switch {
		case errors.Is(err, appointments.ErrAccessDenied):
			h.logger.Warn("POST /admin/appointments/batch-delete - Access denied: user=%s", req.UserID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, appointments.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgEmptyBatch)

		default:
			h.logger.Error("POST /admin/appointments/batch-delete - Failed for user=%s: %v", req.UserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondNoContent(w)
}
