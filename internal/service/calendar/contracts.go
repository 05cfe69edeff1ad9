package calendar

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
)

// BlockedDateRepository describes the blocklist storage operations.
type BlockedDateRepository interface {
	List(ctx context.Context) ([]*domain.BlockedDate, error)
	Create(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleRepository describes the role read operations.
type RoleRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
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
