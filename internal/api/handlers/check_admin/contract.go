package check_admin

import "context"

type AccessService interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
