package appointment

import (
	"context"
	"database/sql"

	"github.com/newcase/agendamento-service/pkg/dbmetrics"
)

// Database executor interfaces shared with dbmetrics.
type DBExecutor = dbmetrics.DBExecutor
type TxExecutor = dbmetrics.TxExecutor

// TxBeginner starts transactions. Satisfied by *sql.DB and *dbmetrics.DB.
type TxBeginner interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error)
}
