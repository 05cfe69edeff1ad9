package userrole

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/newcase/agendamento-service/pkg/dbmetrics"
	"github.com/newcase/agendamento-service/pkg/psqlbuilder"
)

// DBExecutor is shared with dbmetrics.
type DBExecutor = dbmetrics.DBExecutor

// RoleAdmin is the only role this service evaluates. Authentication itself is
// handled upstream; the caller identity arrives via the auth middleware.
const RoleAdmin = "admin"

// Repository reads and assigns staff roles.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a user-role repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// IsAdmin reports whether userID holds the admin role.
func (r *Repository) IsAdmin(ctx context.Context, userID string) (bool, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("user_roles").
		Where(squirrel.Eq{"user_id": userID, "role": RoleAdmin}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: IsAdmin - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: IsAdmin - scan count: %v", ErrScanRow, err)
	}

	return count > 0, nil
}

// CountAdmins returns how many users hold the admin role.
func (r *Repository) CountAdmins(ctx context.Context) (int, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("user_roles").
		Where(squirrel.Eq{"role": RoleAdmin}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: CountAdmins - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("%w: CountAdmins - scan count: %v", ErrScanRow, err)
	}

	return count, nil
}

// AssignAdmin grants the admin role to userID. Idempotent.
func (r *Repository) AssignAdmin(ctx context.Context, userID string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("user_roles").
		Columns("user_id", "role").
		Values(userID, RoleAdmin).
		Suffix("ON CONFLICT (user_id, role) DO NOTHING").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: AssignAdmin - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: AssignAdmin - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
