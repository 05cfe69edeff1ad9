package update_appointment_status

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
