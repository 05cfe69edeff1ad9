package track_appointment

import (
	"context"

	"github.com/newcase/agendamento-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	TrackByCode(ctx context.Context, code string) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
