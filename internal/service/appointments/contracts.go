package appointments

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
)

// AppointmentRepository describes the appointment storage operations.
type AppointmentRepository interface {
	GetByCode(ctx context.Context, code string) (*domain.Appointment, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error)
	ListAll(ctx context.Context) ([]*domain.Appointment, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error
	Delete(ctx context.Context, id uuid.UUID) error
	DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error)
}

// RoleRepository describes the role read operations.
type RoleRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

// Logger describes the logging operations.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
