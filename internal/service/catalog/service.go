package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
	serviceTypeRepo "github.com/newcase/agendamento-service/internal/infra/storage/servicetype"
	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

// Service manages the service-type catalog shown on the booking form.
type Service struct {
	serviceTypeRepo ServiceTypeRepository
	roleRepo        RoleRepository
	txManager       TransactionManager
	logger          Logger
}

// NewService creates the catalog service.
func NewService(
	serviceTypeRepo ServiceTypeRepository,
	roleRepo RoleRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		serviceTypeRepo: serviceTypeRepo,
		roleRepo:        roleRepo,
		txManager:       txManager,
		logger:          logger,
	}
}

// ListActive returns the catalog entries the booking form offers. Public.
func (s *Service) ListActive(ctx context.Context) (*models.ServiceTypeListResponse, error) {
	serviceTypes, err := s.serviceTypeRepo.ListActive(ctx)
	if err != nil {
		s.logger.Error("ListActive: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListActive - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceTypeList(serviceTypes), nil
}

// ListAll returns the whole catalog, inactive entries included. Admin only.
func (s *Service) ListAll(ctx context.Context, userID string) (*models.ServiceTypeListResponse, error) {
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("ListAll: access denied for user=%s", userID)
		return nil, err
	}

	serviceTypes, err := s.serviceTypeRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("ListAll: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListAll - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainServiceTypeList(serviceTypes), nil
}

// Create appends a catalog entry at the end of the display order. Admin only.
func (s *Service) Create(ctx context.Context, req *models.CreateServiceTypeRequest) (*models.ServiceTypeResponse, error) {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Create: access denied for user=%s", req.UserID)
		return nil, err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	created, err := s.serviceTypeRepo.Create(ctx, &domain.ServiceType{
		Name:         name,
		ExtraOptions: normalizeOptions(req.ExtraOptions),
	})
	if err != nil {
		if errors.Is(err, serviceTypeRepo.ErrDuplicateName) {
			s.logger.Warn("Create: duplicate service type name=%q", name)
			return nil, ErrDuplicateName
		}
		s.logger.Error("Create: repository error for name=%q: %v", name, err)
		return nil, fmt.Errorf("%w: Create - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Create: service type id=%s name=%q created by user=%s", created.ID, name, req.UserID)
	return models.FromDomainServiceType(created), nil
}

// Update renames an entry or replaces its extra options. Admin only.
func (s *Service) Update(ctx context.Context, id uuid.UUID, req *models.UpdateServiceTypeRequest) error {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Update: access denied for user=%s", req.UserID)
		return err
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	err := s.serviceTypeRepo.Update(ctx, id, name, normalizeOptions(req.ExtraOptions))
	if err != nil {
		switch {
		case errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound):
			s.logger.Warn("Update: service type id=%s not found", id)
			return ErrServiceTypeNotFound
		case errors.Is(err, serviceTypeRepo.ErrDuplicateName):
			s.logger.Warn("Update: duplicate service type name=%q", name)
			return ErrDuplicateName
		}
		s.logger.Error("Update: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Update: service type id=%s updated by user=%s", id, req.UserID)
	return nil
}

// SetActive toggles whether the entry is offered for new bookings. Existing
// appointments keep their denormalized service name either way. Admin only.
func (s *Service) SetActive(ctx context.Context, id uuid.UUID, req *models.SetActiveRequest) error {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("SetActive: access denied for user=%s", req.UserID)
		return err
	}

	if err := s.serviceTypeRepo.SetActive(ctx, id, req.Active); err != nil {
		if errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound) {
			s.logger.Warn("SetActive: service type id=%s not found", id)
			return ErrServiceTypeNotFound
		}
		s.logger.Error("SetActive: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: SetActive - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SetActive: service type id=%s active=%t by user=%s", id, req.Active, req.UserID)
	return nil
}

// Move swaps the entry with its display-order neighbor. Moving past either
// end of the list is a no-op. Admin only.
func (s *Service) Move(ctx context.Context, id uuid.UUID, req *models.MoveRequest) error {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Move: access denied for user=%s", req.UserID)
		return err
	}

	if req.Direction != models.MoveUp && req.Direction != models.MoveDown {
		return fmt.Errorf("%w: direction must be %q or %q", ErrInvalidInput, models.MoveUp, models.MoveDown)
	}

	// Both order updates share a serializable transaction so concurrent moves
	// cannot leave two entries with the same position.
	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		serviceTypes, err := s.serviceTypeRepo.ListAll(txCtx)
		if err != nil {
			return fmt.Errorf("%w: Move - list catalog: %v", ErrInternal, err)
		}

		index := -1
		for i, st := range serviceTypes {
			if st.ID == id {
				index = i
				break
			}
		}
		if index == -1 {
			return ErrServiceTypeNotFound
		}

		neighbor := index - 1
		if req.Direction == models.MoveDown {
			neighbor = index + 1
		}
		if neighbor < 0 || neighbor >= len(serviceTypes) {
			return nil
		}

		current, other := serviceTypes[index], serviceTypes[neighbor]

		if err := s.serviceTypeRepo.UpdateOrder(txCtx, current.ID, other.Order); err != nil {
			return fmt.Errorf("%w: Move - update order: %v", ErrInternal, err)
		}
		if err := s.serviceTypeRepo.UpdateOrder(txCtx, other.ID, current.Order); err != nil {
			return fmt.Errorf("%w: Move - update neighbor order: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		if !errors.Is(err, ErrServiceTypeNotFound) {
			s.logger.Error("Move: failed for service type id=%s: %v", id, err)
		}
		return err
	}

	s.logger.Info("Move: service type id=%s moved %s by user=%s", id, req.Direction, req.UserID)
	return nil
}

// Delete removes a catalog entry. Appointments keep the denormalized service
// name, so history survives the removal. Admin only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%s", userID)
		return err
	}

	if err := s.serviceTypeRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, serviceTypeRepo.ErrServiceTypeNotFound) {
			s.logger.Warn("Delete: service type id=%s not found", id)
			return ErrServiceTypeNotFound
		}
		s.logger.Error("Delete: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: service type id=%s removed by user=%s", id, userID)
	return nil
}

// checkAdminAccess verifies the caller holds the admin role.
func (s *Service) checkAdminAccess(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return ErrAccessDenied
	}

	isAdmin, err := s.roleRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("checkAdminAccess: failed to check role for user=%s: %v", userID, err)
		return fmt.Errorf("%w: checkAdminAccess - role check: %v", ErrInternal, err)
	}

	if !isAdmin {
		return ErrAccessDenied
	}

	return nil
}

// normalizeOptions trims each option and drops empties.
func normalizeOptions(options []string) []string {
	out := make([]string, 0, len(options))
	for _, o := range options {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
