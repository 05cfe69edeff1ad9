// Package dbmetrics wraps database/sql with Prometheus instrumentation and
// carries the active transaction executor through the context, so repositories
// transparently run inside a transaction when one is open.
package dbmetrics

import (
	"context"
	"database/sql"
	"time"

	"github.com/newcase/agendamento-service/pkg/metrics"
)

// DBExecutor is the query surface repositories depend on. Both *sql.DB,
// *sql.Tx and the instrumented wrappers satisfy it.
type DBExecutor interface {
	QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row
	QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error)
	ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error)
}

// TxExecutor is a DBExecutor bound to an open transaction.
type TxExecutor interface {
	DBExecutor
	Commit() error
	Rollback() error
}

type executorCtxKey struct{}

// WithExecutor returns a context carrying the given transaction executor.
func WithExecutor(ctx context.Context, tx TxExecutor) context.Context {
	return context.WithValue(ctx, executorCtxKey{}, tx)
}

// GetExecutor returns the transaction executor from the context, or fallback
// when no transaction is open.
func GetExecutor(ctx context.Context, fallback DBExecutor) DBExecutor {
	if tx, ok := ctx.Value(executorCtxKey{}).(TxExecutor); ok {
		return tx
	}
	return fallback
}

// IsInTransaction reports whether the context carries an open transaction.
func IsInTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(executorCtxKey{}).(TxExecutor)
	return ok
}

// DB instruments *sql.DB with query metrics.
type DB struct {
	db        *sql.DB
	collector *metrics.Metrics
	name      string
}

// Wrap returns an instrumented DB.
func Wrap(db *sql.DB, collector *metrics.Metrics, name string) *DB {
	return &DB{db: db, collector: collector, name: name}
}

// WrapWithDefault wraps db and starts the connection pool stats collector,
// which runs until stopCh is closed.
func WrapWithDefault(db *sql.DB, collector *metrics.Metrics, name string, stopCh <-chan struct{}) *DB {
	wrapped := Wrap(db, collector, name)
	go wrapped.collectPoolStats(15*time.Second, stopCh)
	return wrapped
}

func (d *DB) collectPoolStats(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			stats := d.db.Stats()
			d.collector.DBPoolOpenConnections.WithLabelValues(d.name).Set(float64(stats.OpenConnections))
			d.collector.DBPoolInUse.WithLabelValues(d.name).Set(float64(stats.InUse))
			d.collector.DBPoolIdle.WithLabelValues(d.name).Set(float64(stats.Idle))
			d.collector.DBPoolWaitCount.WithLabelValues(d.name).Set(float64(stats.WaitCount))
		}
	}
}

func (d *DB) observe(operation string, start time.Time, err error) {
	status := "ok"
	if err != nil {
		status = "error"
	}
	d.collector.ObserveDBQuery(operation, status, time.Since(start))
}

// QueryRowContext runs an instrumented single-row query.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := d.db.QueryRowContext(ctx, query, args...)
	d.observe("query_row", start, nil)
	return row
}

// QueryContext runs an instrumented multi-row query.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := d.db.QueryContext(ctx, query, args...)
	d.observe("query", start, err)
	return rows, err
}

// ExecContext runs an instrumented statement.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := d.db.ExecContext(ctx, query, args...)
	d.observe("exec", start, err)
	return res, err
}

// BeginTx opens an instrumented transaction.
func (d *DB) BeginTx(ctx context.Context, opts *sql.TxOptions) (TxExecutor, error) {
	start := time.Now()
	tx, err := d.db.BeginTx(ctx, opts)
	d.observe("begin_tx", start, err)
	if err != nil {
		return nil, err
	}
	return &instrumentedTx{tx: tx, db: d}, nil
}

type instrumentedTx struct {
	tx *sql.Tx
	db *DB
}

func (t *instrumentedTx) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	start := time.Now()
	row := t.tx.QueryRowContext(ctx, query, args...)
	t.db.observe("tx_query_row", start, nil)
	return row
}

func (t *instrumentedTx) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	start := time.Now()
	rows, err := t.tx.QueryContext(ctx, query, args...)
	t.db.observe("tx_query", start, err)
	return rows, err
}

func (t *instrumentedTx) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	start := time.Now()
	res, err := t.tx.ExecContext(ctx, query, args...)
	t.db.observe("tx_exec", start, err)
	return res, err
}

func (t *instrumentedTx) Commit() error {
	start := time.Now()
	err := t.tx.Commit()
	t.db.observe("commit", start, err)
	return err
}

func (t *instrumentedTx) Rollback() error {
	start := time.Now()
	err := t.tx.Rollback()
	t.db.observe("rollback", start, err)
	return err
}
