package calendar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/newcase/agendamento-service/internal/domain"
	blockedDateRepo "github.com/newcase/agendamento-service/internal/infra/storage/blockeddate"
	"github.com/newcase/agendamento-service/internal/service/calendar/models"
)

// Service manages the admin blocklist of closure dates.
type Service struct {
	blockedDateRepo BlockedDateRepository
	roleRepo        RoleRepository
	timeProvider    TimeProvider
	logger          Logger
}

// NewService creates the calendar service.
func NewService(blockedDateRepo BlockedDateRepository, roleRepo RoleRepository, logger Logger) *Service {
	return &Service{
		blockedDateRepo: blockedDateRepo,
		roleRepo:        roleRepo,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// List returns every blocked date in ascending order. Admin only.
func (s *Service) List(ctx context.Context, userID string) (*models.BlockedDateListResponse, error) {
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("List: access denied for user=%s", userID)
		return nil, err
	}

	blocked, err := s.blockedDateRepo.List(ctx)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBlockedDateList(blocked), nil
}

// Block adds a date to the blocklist. Past dates cannot be blocked and
// Sundays are rejected because the weekly closure already covers them.
// Admin only.
func (s *Service) Block(ctx context.Context, req *models.BlockDateRequest) (*models.BlockedDateResponse, error) {
	if err := s.checkAdminAccess(ctx, req.UserID); err != nil {
		s.logger.Warn("Block: access denied for user=%s", req.UserID)
		return nil, err
	}

	if req.Date.IsZero() {
		return nil, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	now := s.timeProvider.Now()
	if domain.IsDateInPast(req.Date, now) {
		s.logger.Warn("Block: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrDateInPast
	}
	if domain.IsSunday(req.Date) {
		s.logger.Warn("Block: date %s is a Sunday", req.Date.Format(domain.DateFormat))
		return nil, ErrSundayAlwaysClosed
	}

	created, err := s.blockedDateRepo.Create(ctx, req.Date, req.Reason)
	if err != nil {
		if errors.Is(err, blockedDateRepo.ErrDuplicateDate) {
			s.logger.Warn("Block: date %s already blocked", req.Date.Format(domain.DateFormat))
			return nil, ErrDateAlreadyBlocked
		}
		s.logger.Error("Block: repository error for date %s: %v", req.Date.Format(domain.DateFormat), err)
		return nil, fmt.Errorf("%w: Block - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Block: date %s blocked by user=%s", req.Date.Format(domain.DateFormat), req.UserID)
	return models.FromDomainBlockedDate(created), nil
}

// Unblock removes a blocklist entry by id. Admin only.
func (s *Service) Unblock(ctx context.Context, id uuid.UUID, userID string) error {
	if err := s.checkAdminAccess(ctx, userID); err != nil {
		s.logger.Warn("Unblock: access denied for user=%s", userID)
		return err
	}

	if err := s.blockedDateRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, blockedDateRepo.ErrBlockedDateNotFound) {
			s.logger.Warn("Unblock: blocked date id=%s not found", id)
			return ErrBlockedDateNotFound
		}
		s.logger.Error("Unblock: repository error for id=%s: %v", id, err)
		return fmt.Errorf("%w: Unblock - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Unblock: blocked date id=%s removed by user=%s", id, userID)
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
