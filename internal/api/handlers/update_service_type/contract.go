package update_service_type

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

type CatalogService interface {
	Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceTypeRequest) error
	SetActive(ctx context.Context, id uuid.UUID, req *models.SetActiveRequest) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
