package reorder_service_type

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

type CatalogService interface {
	Move(ctx context.Context, id uuid.UUID, req *models.MoveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
