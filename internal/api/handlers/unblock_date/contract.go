package unblock_date

import (
	"context"

	"github.com/google/uuid"
)

type CalendarService interface {
	Unblock(ctx context.Context, id uuid.UUID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
