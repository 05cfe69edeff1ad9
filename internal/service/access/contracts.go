package access

import "context"

// RoleRepository describes the role storage operations.
type RoleRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
	CountAdmins(ctx context.Context) (int, error)
	AssignAdmin(ctx context.Context, userID string) error
}

// TransactionManager describes transaction control.
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger describes the logging operations.
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
