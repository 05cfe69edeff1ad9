package appointment

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/dbmetrics"
	"github.com/newcase/agendamento-service/pkg/psqlbuilder"
	"github.com/newcase/agendamento-service/pkg/trackcode"
	"github.com/newcase/agendamento-service/pkg/types"
)

// Constraint names from migrations/001_init.sql; used to tell a lost slot
// race apart from a code collision on unique violations.
const (
	slotUniqueConstraint = "agendamentos_slot_key"
	codeUniqueConstraint = "agendamentos_codigo_cliente_key"
)

// maxCodeAttempts bounds the retry loop for lookup code collisions.
const maxCodeAttempts = 5

var appointmentColumns = []string{
	"id",
	"codigo_cliente",
	"nome",
	"telefone",
	"modelo_celular",
	"tipo_servico",
	"descricao_problema",
	"data_agendamento",
	"horario_agendamento",
	"data_entrega_prevista",
	"status",
	"created_at",
}

// Repository persists appointments.
type Repository struct {
	db DBExecutor
}

// NewRepository creates an appointment repository.
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create inserts a new appointment, assigning its lookup code. The slot
// uniqueness constraint is the authoritative double-booking guard: losing a
// race to a concurrent insert surfaces as ErrSlotTaken. Code collisions are
// detected with a read before the insert: a unique violation aborts the
// surrounding transaction, so retrying the INSERT itself could never succeed.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	for attempt := 0; attempt < maxCodeAttempts; attempt++ {
		code, err := trackcode.Generate()
		if err != nil {
			return nil, fmt.Errorf("%w: Create - generate code: %v", ErrExecQuery, err)
		}

		taken, err := r.codeTaken(ctx, executor, code)
		if err != nil {
			return nil, err
		}
		if taken {
			continue
		}

		query, args, err := psqlbuilder.Insert("agendamentos").
			Columns(
				"codigo_cliente",
				"nome",
				"telefone",
				"modelo_celular",
				"tipo_servico",
				"descricao_problema",
				"data_agendamento",
				"horario_agendamento",
				"data_entrega_prevista",
				"status",
			).
			Values(
				code,
				appt.CustomerName,
				appt.Phone,
				appt.DeviceModel,
				appt.ServiceName,
				appt.ProblemDescription,
				appt.Date,
				appt.StartTime,
				appt.EstimatedDelivery,
				appt.Status,
			).
			Suffix("RETURNING id, created_at").
			ToSql()

		if err != nil {
			return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
		}

		var createdAt sql.NullTime
		err = executor.QueryRowContext(ctx, query, args...).Scan(&appt.ID, &createdAt)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
				switch pqErr.Constraint {
				case slotUniqueConstraint:
					return nil, ErrSlotTaken
				case codeUniqueConstraint:
					// A concurrent insert grabbed this code between the read and
					// the insert. The transaction is aborted now, so no retry.
					return nil, fmt.Errorf("%w: Create - code raced a concurrent insert", ErrCodeCollision)
				}
			}
			return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
		}

		appt.Code = code
		appt.CreatedAt = createdAt.Time
		return appt, nil
	}

	return nil, ErrCodeCollision
}

// codeTaken reports whether an appointment already holds the lookup code.
func (r *Repository) codeTaken(ctx context.Context, executor DBExecutor, code string) (bool, error) {
	query, args, err := psqlbuilder.Select("COUNT(*)").
		From("agendamentos").
		Where(squirrel.Eq{"codigo_cliente": code}).
		ToSql()

	if err != nil {
		return false, fmt.Errorf("%w: codeTaken - build select query: %v", ErrBuildQuery, err)
	}

	var count int
	if err := executor.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return false, fmt.Errorf("%w: codeTaken - execute query: %v", ErrExecQuery, err)
	}

	return count > 0, nil
}

// GetByCode finds an appointment by its customer lookup code. Matching is
// case-insensitive: the code is upper-cased before the exact comparison.
func (r *Repository) GetByCode(ctx context.Context, code string) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("agendamentos").
		Where(squirrel.Eq{"codigo_cliente": strings.ToUpper(strings.TrimSpace(code))}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByCode - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByCode")
}

// GetByID fetches an appointment by its internal id.
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("agendamentos").
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	return r.scanOne(executor.QueryRowContext(ctx, query, args...), "GetByID")
}

// ListAll returns every appointment, newest first. Staff panel view.
func (r *Repository) ListAll(ctx context.Context) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("agendamentos").
		OrderBy("created_at DESC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListAll - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanAppointments(rows)
}

// ListBookedTimes returns the start times already booked on date, in
// chronological order. Inside a transaction the rows are locked FOR UPDATE so
// the availability check and the subsequent insert see a stable day.
func (r *Repository) ListBookedTimes(ctx context.Context, date time.Time) ([]types.TimeString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select("horario_agendamento").
		From("agendamentos").
		Where(squirrel.Eq{"data_agendamento": date}).
		OrderBy("horario_agendamento ASC")

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	booked := make([]types.TimeString, 0)
	for rows.Next() {
		var t types.TimeString
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("%w: ListBookedTimes - scan time: %v", ErrScanRow, err)
		}
		booked = append(booked, t)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedTimes - rows error: %v", ErrScanRow, err)
	}

	return booked, nil
}

// UpdateStatus sets the repair stage of an appointment.
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.AppointmentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("agendamentos").
		Set("status", status).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrAppointmentNotFound
	}

	return nil
}

// Delete removes an appointment, immediately freeing its slot.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agendamentos").
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
		return ErrAppointmentNotFound
	}

	return nil
}

// DeleteMany removes a batch of appointments, returning how many existed.
func (r *Repository) DeleteMany(ctx context.Context, ids []uuid.UUID) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Delete("agendamentos").
		Where(squirrel.Eq{"id": ids}).
		ToSql()

	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - build delete query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - execute delete: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: DeleteMany - get rows affected: %v", ErrExecQuery, err)
	}

	return rowsAffected, nil
}

func (r *Repository) scanOne(row *sql.Row, method string) (*domain.Appointment, error) {
	var appt domain.Appointment
	var createdAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.Code,
		&appt.CustomerName,
		&appt.Phone,
		&appt.DeviceModel,
		&appt.ServiceName,
		&appt.ProblemDescription,
		&appt.Date,
		&appt.StartTime,
		&appt.EstimatedDelivery,
		&appt.Status,
		&createdAt,
	)

	if err == sql.ErrNoRows {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan appointment: %v", ErrScanRow, method, err)
	}

	appt.CreatedAt = createdAt.Time
	return &appt, nil
}

func (r *Repository) scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)

	for rows.Next() {
		var appt domain.Appointment
		var createdAt sql.NullTime

		err := rows.Scan(
			&appt.ID,
			&appt.Code,
			&appt.CustomerName,
			&appt.Phone,
			&appt.DeviceModel,
			&appt.ServiceName,
			&appt.ProblemDescription,
			&appt.Date,
			&appt.StartTime,
			&appt.EstimatedDelivery,
			&appt.Status,
			&createdAt,
		)

		if err != nil {
			return nil, fmt.Errorf("%w: scanAppointments - scan row: %v", ErrScanRow, err)
		}

		appt.CreatedAt = createdAt.Time
		appointments = append(appointments, &appt)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanAppointments - rows error: %v", ErrScanRow, err)
	}

	return appointments, nil
}
