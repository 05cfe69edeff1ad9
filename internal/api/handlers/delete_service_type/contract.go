package delete_service_type

import (
	"context"

	"github.com/google/uuid"
)

type CatalogService interface {
	Delete(ctx context.Context, id uuid.UUID, userID string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
