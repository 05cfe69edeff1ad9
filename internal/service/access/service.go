package access

import (
	"context"
	"fmt"
	"strings"
)

// Service answers role questions for the staff endpoints.
type Service struct {
	roleRepo  RoleRepository
	txManager TransactionManager
	logger    Logger
}

// NewService creates the access service.
func NewService(roleRepo RoleRepository, txManager TransactionManager, logger Logger) *Service {
	return &Service{
		roleRepo:  roleRepo,
		txManager: txManager,
		logger:    logger,
	}
}

// IsAdmin reports whether userID holds the admin role.
func (s *Service) IsAdmin(ctx context.Context, userID string) (bool, error) {
	if strings.TrimSpace(userID) == "" {
		return false, fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	isAdmin, err := s.roleRepo.IsAdmin(ctx, userID)
	if err != nil {
		s.logger.Error("IsAdmin: repository error for user=%s: %v", userID, err)
		return false, fmt.Errorf("%w: IsAdmin - repository error: %v", ErrInternal, err)
	}

	return isAdmin, nil
}

// BootstrapFirstAdmin grants the admin role to userID, but only while no
// admin exists yet. The count and the insert share a serializable transaction
// so two racing bootstrap calls cannot both win.
func (s *Service) BootstrapFirstAdmin(ctx context.Context, userID string) error {
	if strings.TrimSpace(userID) == "" {
		return fmt.Errorf("%w: userID is required", ErrInvalidInput)
	}

	s.logger.Info("BootstrapFirstAdmin: attempting bootstrap for user=%s", userID)

	err := s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		count, err := s.roleRepo.CountAdmins(txCtx)
		if err != nil {
			s.logger.Error("BootstrapFirstAdmin: failed to count admins: %v", err)
			return fmt.Errorf("%w: BootstrapFirstAdmin - count admins: %v", ErrInternal, err)
		}

		if count > 0 {
			s.logger.Warn("BootstrapFirstAdmin: rejected, %d admin(s) already assigned", count)
			return ErrAdminExists
		}

		if err := s.roleRepo.AssignAdmin(txCtx, userID); err != nil {
			s.logger.Error("BootstrapFirstAdmin: failed to assign admin role: %v", err)
			return fmt.Errorf("%w: BootstrapFirstAdmin - assign role: %v", ErrInternal, err)
		}

		return nil
	})

	if err != nil {
		return err
	}

	s.logger.Info("BootstrapFirstAdmin: user=%s is now admin", userID)
	return nil
}
