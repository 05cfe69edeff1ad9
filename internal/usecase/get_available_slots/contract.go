package get_available_slots

import (
	"context"
	"time"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/types"
)

// AppointmentRepository describes the appointment read operations.
type AppointmentRepository interface {
	ListBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// BlockedDateRepository describes the blocklist read operations.
type BlockedDateRepository interface {
	List(ctx context.Context) ([]*domain.BlockedDate, error)
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
