package catalog

import (
	"context"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
)

// ServiceTypeRepository describes the catalog storage operations.
type ServiceTypeRepository interface {
	ListActive(ctx context.Context) ([]*domain.ServiceType, error)
	ListAll(ctx context.Context) ([]*domain.ServiceType, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error)
	Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error)
	Update(ctx context.Context, id uuid.UUID, name string, extraOptions []string) error
	SetActive(ctx context.Context, id uuid.UUID, active bool) error
	UpdateOrder(ctx context.Context, id uuid.UUID, order int) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// RoleRepository describes the role read operations.
type RoleRepository interface {
	IsAdmin(ctx context.Context, userID string) (bool, error)
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
