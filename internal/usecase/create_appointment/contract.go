package create_appointment

import (
	"context"
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/types"
)

// AppointmentRepository describes the appointment storage operations.
type AppointmentRepository interface {
	Create(ctx context.Context, appointment *domain.Appointment) (*domain.Appointment, error)
	ListBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// ServiceTypeRepository describes the catalog read operations.
type ServiceTypeRepository interface {
	ListActive(ctx context.Context) ([]*domain.ServiceType, error)
}

// BlockedDateRepository describes the blocklist read operations.
type BlockedDateRepository interface {
	List(ctx context.Context) ([]*domain.BlockedDate, error)
}

// SheetRelay pushes the confirmed appointment to the spreadsheet webhook.
type SheetRelay interface {
	PushAsync(appointment *domain.Appointment, timeout time.Duration)
}

// TransactionManager describes transaction control.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider supplies the current time (swappable in tests).
type TimeProvider interface {
	Now() time.Time
}

// Logger describes the logging operations.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider is the production time provider.
type RealTimeProvider struct{}

// Now returns the current time.
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
