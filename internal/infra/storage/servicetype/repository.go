package servicetype

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/dbmetrics"
	"github.com/newcase/agendamento-service/pkg/psqlbuilder"
)

// DBExecutor is shared with dbmetrics.
type DBExecutor = dbmetrics.DBExecutor

const nameUniqueConstraint = "tipos_servico_nome_ativo_key"

var serviceTypeColumns = []string{
	"id",
	"nome",
	"opcoes_extras",
	"ordem",
	"ativo",
	"created_at",
}

// Repository persists the service-type catalog.
type Repository struct {
	db DBExecutor
}

// NewRepository creates a service-type repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListActive returns active catalog entries in display order. This is the
// snapshot customer bookings validate against.
func (r *Repository) ListActive(ctx context.Context) ([]*domain.ServiceType, error) {
	return r.list(ctx, true)
}

// ListAll returns the whole catalog, active and inactive, in display order.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.ServiceType, error) {
	return r.list(ctx, false)
}

func (r *Repository) list(ctx context.Context, activeOnly bool) ([]*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(serviceTypeColumns...).
		From("tipos_servico").
		OrderBy("ordem ASC")

	if activeOnly {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"ativo": true})
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: list - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: list - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanServiceTypes(rows)
}

// GetByID fetches one catalog entry.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(serviceTypeColumns...).
		From("tipos_servico").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// Create inserts a catalog entry at the end of the display order.
func (r *Repository) Create(ctx context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// ordem = max(ordem) + 1, computed in the same statement to avoid a
	// read-modify-write on the ordering column.
	query, args, err := psqlbuilder.Insert("tipos_servico").
		Columns("nome", "opcoes_extras", "ordem", "ativo").
		Values(
			st.Name,
			pq.Array(st.ExtraOptions),
			squirrel.Expr("(SELECT COALESCE(MAX(ordem), 0) + 1 FROM tipos_servico)"),
			true,
		).
		Suffix("RETURNING id, ordem, ativo, created_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(&st.ID, &st.Order, &st.Active, &createdAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" && pqErr.Constraint == nameUniqueConstraint {
			return nil, ErrDuplicateName
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	st.CreatedAt = createdAt.Time
	return st, nil
}

// Update changes the name and extra options of a catalog entry.
func (r *Repository) Update(ctx context.Context, id uuid.UUID, name string, extraOptions []string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tipos_servico").
		Set("nome", name).
		Set("opcoes_extras", pq.Array(extraOptions)).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Update - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Update")
}

// SetActive toggles visibility of a catalog entry for new bookings.
func (r *Repository) SetActive(ctx context.Context, id uuid.UUID, active bool) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tipos_servico").
		Set("ativo", active).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetActive - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "SetActive")
}

// UpdateOrder sets the display position of a catalog entry. Reordering is a
// neighbor swap performed by the service inside a transaction.
func (r *Repository) UpdateOrder(ctx context.Context, id uuid.UUID, order int) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("tipos_servico").
		Set("ordem", order).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateOrder - build update query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "UpdateOrder")
}

// Delete removes a catalog entry.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("tipos_servico").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Delete - build delete query: %v", ErrBuildQuery, err)
	}

	return r.execExpectingRow(ctx, executor, query, args, "Delete")
}

func (r *Repository) execExpectingRow(ctx context.Context, executor DBExecutor, query string, args []interface{}, method string) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute: %v", ErrExecQuery, method, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, method, err)
	}

	if rowsAffected == 0 {
		return ErrServiceTypeNotFound
	}

	return nil
}

func (r *Repository) scanOne(row *sql.Row, method string) (*domain.ServiceType, error) {
	var st domain.ServiceType
	var createdAt sql.NullTime

	err := row.Scan(
		&st.ID,
		&st.Name,
		pq.Array(&st.ExtraOptions),
		&st.Order,
		&st.Active,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrServiceTypeNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan service type: %v", ErrScanRow, method, err)
	}

	st.CreatedAt = createdAt.Time
	return &st, nil
}

func (r *Repository) scanServiceTypes(rows *sql.Rows) ([]*domain.ServiceType, error) {
	serviceTypes := make([]*domain.ServiceType, 0)

	for rows.Next() {
		var st domain.ServiceType
		var createdAt sql.NullTime

		err := rows.Scan(
			&st.ID,
			&st.Name,
			pq.Array(&st.ExtraOptions),
			&st.Order,
			&st.Active,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanServiceTypes - scan row: %v", ErrScanRow, err)
		}

		st.CreatedAt = createdAt.Time
		serviceTypes = append(serviceTypes, &st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanServiceTypes - rows error: %v", ErrScanRow, err)
	}

	return serviceTypes, nil
}
