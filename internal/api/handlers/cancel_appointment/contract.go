package cancel_appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/service/appointments/models"
)

type AppointmentsService interface {
	Delete(ctx context.Context, id uuid.UUID, userID string) error
	DeleteMany(ctx context.Context, req *models.DeleteManyRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
