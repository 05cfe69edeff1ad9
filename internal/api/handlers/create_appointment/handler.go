package create_appointment

import (
	"errors"
	"net/http"

	"github.com/newcase/agendamento-service/internal/api/handlers"
	createAppointment "github.com/newcase/agendamento-service/internal/usecase/create_appointment"
	"github.com/newcase/agendamento-service/pkg/types"
)

const (
	msgInvalidRequestBody = "corpo da requisição inválido"
	msgInvalidDate        = "formato de data inválido, use YYYY-MM-DD"
	msgDateNotBookable    = "esta data não está disponível para agendamento"
	msgInvalidTimeSlot    = "horário inválido"
	msgSlotNotAvailable   = "este horário já está reservado, escolha outro"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /appointments - Failed to parse request: %v", err)
		if errors.Is(err, types.ErrInvalidTimeString) {
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)
		} else {
			handlers.RespondBadRequest(w, msgInvalidDate)
		}
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createAppointment.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /appointments - Validation failed: field=%s", validationErr.Field)
			handlers.RespondBadRequest(w, validationErr.Message)

		case errors.Is(err, createAppointment.ErrValidation):
			h.logger.Warn("POST /appointments - Validation failed: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createAppointment.ErrDateNotBookable):
			h.logger.Warn("POST /appointments - Date not bookable: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateNotBookable)

		case errors.Is(err, createAppointment.ErrInvalidTimeSlot):
			h.logger.Warn("POST /appointments - Invalid time slot: time=%s", req.StartTime)
			handlers.RespondBadRequest(w, msgInvalidTimeSlot)

		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: date=%s, time=%s", req.Date, req.StartTime)
			handlers.RespondConflict(w, msgSlotNotAvailable)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: code=%s, date=%s, time=%s",
		result.Code, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
