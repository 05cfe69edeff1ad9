package bootstrap_admin

import "context"

type AccessService interface {
	BootstrapFirstAdmin(ctx context.Context, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
