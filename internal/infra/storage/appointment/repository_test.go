package appointment

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/types"
)

// fakeConn scripts driver-level responses so the code-assignment path runs
// without a database. COUNT queries consume codeCounts in order (missing
// entries read as 0); the INSERT returns insertErr or one row with insertID
// and insertTime.
type fakeConn struct {
	codeCounts []int64
	countIdx   int
	insertErr  error
	insertID   string
	insertTime time.Time
	queries    []string
}

func (c *fakeConn) Prepare(string) (driver.Stmt, error) { return nil, errors.New("prepare not scripted") }
func (c *fakeConn) Close() error                        { return nil }
func (c *fakeConn) Begin() (driver.Tx, error)           { return nil, errors.New("begin not scripted") }

func (c *fakeConn) QueryContext(_ context.Context, query string, _ []driver.NamedValue) (driver.Rows, error) {
	c.queries = append(c.queries, query)

	if strings.HasPrefix(query, "SELECT COUNT") {
		var n int64
		if c.countIdx < len(c.codeCounts) {
			n = c.codeCounts[c.countIdx]
		}
		c.countIdx++
		return &fakeRows{columns: []string{"count"}, rows: [][]driver.Value{{n}}}, nil
	}

	if c.insertErr != nil {
		return nil, c.insertErr
	}
	return &fakeRows{
		columns: []string{"id", "created_at"},
		rows:    [][]driver.Value{{c.insertID, c.insertTime}},
	}, nil
}

type fakeRows struct {
	columns []string
	rows    [][]driver.Value
	pos     int
}

func (r *fakeRows) Columns() []string { return r.columns }
func (r *fakeRows) Close() error      { return nil }

func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.rows) {
		return io.EOF
	}
	copy(dest, r.rows[r.pos])
	r.pos++
	return nil
}

type fakeConnector struct {
	conn *fakeConn
}

func (f fakeConnector) Connect(context.Context) (driver.Conn, error) { return f.conn, nil }
func (f fakeConnector) Driver() driver.Driver                        { return fakeDriver{} }

type fakeDriver struct{}

func (fakeDriver) Open(string) (driver.Conn, error) { return nil, errors.New("use the connector") }

var (
	fakeID        = uuid.MustParse("1b4e28ba-2fa1-11d2-883f-0016d3cca427")
	fakeCreatedAt = time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)
)

func newFakeRepository(conn *fakeConn) *Repository {
	if conn.insertID == "" {
		conn.insertID = fakeID.String()
	}
	if conn.insertTime.IsZero() {
		conn.insertTime = fakeCreatedAt
	}
	return NewRepository(sql.OpenDB(fakeConnector{conn: conn}))
}

func appointmentFixture() *domain.Appointment {
	return &domain.Appointment{
		CustomerName:       "Maria Oliveira",
		Phone:              "11987654321",
		DeviceModel:        "iPhone 13",
		ServiceName:        "Troca de tela",
		ProblemDescription: "Tela trincada",
		Date:               time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC),
		StartTime:          types.TimeString("09:30"),
		EstimatedDelivery:  time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC),
		Status:             domain.StatusAwaitingAnalysis,
	}
}

func countQueries(queries []string, prefix string) int {
	n := 0
	for _, q := range queries {
		if strings.HasPrefix(q, prefix) {
			n++
		}
	}
	return n
}

func TestCreate_AssignsCode(t *testing.T) {
	conn := &fakeConn{}
	repo := newFakeRepository(conn)

	created, err := repo.Create(context.Background(), appointmentFixture())
	require.NoError(t, err)

	assert.Equal(t, fakeID, created.ID)
	assert.Equal(t, fakeCreatedAt, created.CreatedAt)
	assert.Len(t, created.Code, 6)

	assert.Equal(t, 1, countQueries(conn.queries, "SELECT COUNT"))
	assert.Equal(t, 1, countQueries(conn.queries, "INSERT"))
}

func TestCreate_RetriesCodeOnCollision(t *testing.T) {
	// The first generated code is already taken; the pre-insert read catches
	// it and a fresh code goes in. Only one INSERT ever runs, so a collision
	// never aborts the surrounding transaction.
	conn := &fakeConn{codeCounts: []int64{1, 0}}
	repo := newFakeRepository(conn)

	created, err := repo.Create(context.Background(), appointmentFixture())
	require.NoError(t, err)
	assert.Len(t, created.Code, 6)

	assert.Equal(t, 2, countQueries(conn.queries, "SELECT COUNT"))
	assert.Equal(t, 1, countQueries(conn.queries, "INSERT"))
}

func TestCreate_ExhaustsCodeAttempts(t *testing.T) {
	conn := &fakeConn{codeCounts: []int64{1, 1, 1, 1, 1}}
	repo := newFakeRepository(conn)

	_, err := repo.Create(context.Background(), appointmentFixture())
	assert.ErrorIs(t, err, ErrCodeCollision)

	assert.Equal(t, maxCodeAttempts, countQueries(conn.queries, "SELECT COUNT"))
	assert.Zero(t, countQueries(conn.queries, "INSERT"))
}

func TestCreate_SlotConflict(t *testing.T) {
	conn := &fakeConn{insertErr: &pq.Error{Code: "23505", Constraint: slotUniqueConstraint}}
	repo := newFakeRepository(conn)

	_, err := repo.Create(context.Background(), appointmentFixture())
	assert.ErrorIs(t, err, ErrSlotTaken)
}

func TestCreate_CodeRaceSurfacesCollision(t *testing.T) {
	// A concurrent insert grabbed the code between the read and the insert.
	// The violation aborted the transaction, so the error surfaces instead
	// of a doomed retry.
	conn := &fakeConn{insertErr: &pq.Error{Code: "23505", Constraint: codeUniqueConstraint}}
	repo := newFakeRepository(conn)

	_, err := repo.Create(context.Background(), appointmentFixture())
	assert.ErrorIs(t, err, ErrCodeCollision)

	assert.Equal(t, 1, countQueries(conn.queries, "INSERT"))
}
