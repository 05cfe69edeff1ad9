package blockeddate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/dbmetrics"
	"github.com/newcase/agendamento-service/pkg/psqlbuilder"
)

// DBExecutor is shared with dbmetrics.
type DBExecutor = dbmetrics.DBExecutor

const dateUniqueConstraint = "datas_bloqueadas_data_key"

// Repository persists the admin blocklist of calendar dates.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a blocked-date repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// List returns every blocked date in ascending order.
func (r *Repository) List(ctx context.Context) ([]*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "data", "motivo", "created_at").
		From("datas_bloqueadas").
		OrderBy("data ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	blocked := make([]*domain.BlockedDate, 0)
	for rows.Next() {
		var b domain.BlockedDate
		var createdAt sql.NullTime

		if err := rows.Scan(&b.ID, &b.Date, &b.Reason, &createdAt); err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}

		b.CreatedAt = createdAt.Time
		blocked = append(blocked, &b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return blocked, nil
}

// Create blocks a date. The unique constraint on the date column rejects
// duplicates regardless of who checked first.
func (r *Repository) Create(ctx context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("datas_bloqueadas").
		Columns("data", "motivo").
		Values(date, reason).
		Suffix("RETURNING id, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	b := &domain.BlockedDate{Date: date, Reason: reason}
	var createdAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(&b.ID, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == dateUniqueConstraint {
			return nil, ErrDuplicateDate
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	b.CreatedAt = createdAt.Time
	return b, nil
}

// Delete unblocks a date by entry id.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("datas_bloqueadas").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Delete - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Delete - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBlockedDateNotFound
	}

	return nil
}
