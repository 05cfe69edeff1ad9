package list_blocked_dates

import (
	"context"

	"github.com/newcase/agendamento-service/internal/service/calendar/models"
)

type CalendarService interface {
	List(ctx context.Context, userID string) (*models.BlockedDateListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
