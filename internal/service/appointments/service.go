package appointments

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
	appointmentRepo "github.com/newcase/agendamento-service/internal/infra/storage/appointment"
	"github.com/newcase/agendamento-service/internal/service/appointments/models"
)

// Service handles appointment lookups and the admin pipeline operations.
type Service struct {
	appointmentRepo AppointmentRepository
	roleRepo        RoleRepository
	logger          Logger
}

// NewService creates the appointments service.
func NewService(appointmentRepo AppointmentRepository, roleRepo RoleRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		roleRepo:        roleRepo,
		logger:          logger,
	}
}

// TrackByCode looks up an appointment by the customer's 6-character code.
// Public; the code itself is the credential.
func (s *Service) TrackByCode(ctx context.Context, code string) (*models.AppointmentResponse, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if len(code) == 0 {
		return nil, fmt.Errorf("%w: code is required", ErrInvalidInput)
	}

	s.logger.Info("TrackByCode: looking up appointment code=%s", code)

	appointment, err := s.appointmentRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("TrackByCode: appointment code=%s not found", code)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("TrackByCode: repository error for code=%s: %v", code, err)
		return nil, fmt.Errorf("%w: TrackByCode - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appointment), nil
}

// List returns every appointment, newest first. Admin only.
func (s *Service) List(ctx context.Context, userID string) (*models.AppointmentListResponse, error) {
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("List: access denied for user=%s", userID)
		return nil, err
	}

	appointments, err := s.appointmentRepo.ListAll(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for user=%s", len(appointments), userID)
	return models.FromDomainAppointmentList(appointments), nil
}

// UpdateStatus moves an appointment along the repair pipeline. Admin only.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) error {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("UpdateStatus: access denied for user=%s", req.UserID)
		return err
	}

	status := domain.AppointmentStatus(req.Status)
	if !status.IsValid() {
		s.logger.Warn("UpdateStatus: invalid status=%q for appointment id=%s", req.Status, id)
		return ErrInvalidStatus
	}

	if err := s.appointmentRepo.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("UpdateStatus: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("UpdateStatus: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: appointment id=%s moved to status=%s", id, status)
	return nil
}

// Delete removes one appointment, freeing its slot. Admin only.
func (s *Service) Delete(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("Delete: access denied for user=%s", userID)
		return err
	}

	if err := s.appointmentRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("Delete: appointment id=%s not found", id)
			return ErrAppointmentNotFound
		}
		s.logger.Error("Delete: repository error for appointment id=%s: %v", id, err)
		return fmt.Errorf("%w: Delete - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Delete: appointment id=%s removed by user=%s", id, userID)
	return nil
}

// DeleteMany removes a batch of appointments. Admin only.
func (s *Service) DeleteMany(ctx context.Context, req *models.DeleteManyRequest) error {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("DeleteMany: access denied for user=%s", req.UserID)
		return err
	}

	if len(req.IDs) == 0 {
		return fmt.Errorf("%w: ids are required", ErrInvalidInput)
	}

	removed, err := s.appointmentRepo.DeleteMany(ctx, req.IDs)
	if err != nil {
		s.logger.Error("DeleteMany: repository error for %d ids: %v", len(req.IDs), err)
		return fmt.Errorf("%w: DeleteMany - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteMany: removed %d of %d appointments by user=%s", removed, len(req.IDs), req.UserID)
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
