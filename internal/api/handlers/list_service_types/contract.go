package list_service_types

import (
	"context"

	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

type CatalogService interface {
	ListActive(ctx context.Context) (*models.ServiceTypeListResponse, error)
	ListAll(ctx context.Context, userID string) (*models.ServiceTypeListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
