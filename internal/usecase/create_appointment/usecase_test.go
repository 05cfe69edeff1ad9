package create_appointment

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/internal/domain"
	appointmentRepo "github.com/newcase/agendamento-service/internal/infra/storage/appointment"
	"github.com/newcase/agendamento-service/pkg/types"
)

// Fakes

type fakeAppointmentRepo struct {
	booked    []types.TimeString
	createErr error
	created   *domain.Appointment
}

func (f *fakeAppointmentRepo) Create(_ context.Context, a *domain.Appointment) (*domain.Appointment, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *a
	out.ID = uuid.New()
	out.Code = "AB12CD"
	out.CreatedAt = time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)
	f.created = &out
	return &out, nil
}

func (f *fakeAppointmentRepo) ListBookedTimes(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return f.booked, nil
}

type fakeServiceTypeRepo struct {
	catalog []*domain.ServiceType
}

func (f *fakeServiceTypeRepo) ListActive(_ context.Context) ([]*domain.ServiceType, error) {
	return f.catalog, nil
}

type fakeBlockedDateRepo struct {
	blocked []*domain.BlockedDate
}

func (f *fakeBlockedDateRepo) List(_ context.Context) ([]*domain.BlockedDate, error) {
	return f.blocked, nil
}

type fakeSheetRelay struct {
	pushed []*domain.Appointment
}

func (f *fakeSheetRelay) PushAsync(a *domain.Appointment, _ time.Duration) {
	f.pushed = append(f.pushed, a)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type useCaseFixture struct {
	uc    *UseCase
	repo  *fakeAppointmentRepo
	relay *fakeSheetRelay
	txMgr *fakeTxManager
	dates *fakeBlockedDateRepo
	clock *fixedTime
}

func newFixture() *useCaseFixture {
	repo := &fakeAppointmentRepo{}
	relay := &fakeSheetRelay{}
	txMgr := &fakeTxManager{}
	dates := &fakeBlockedDateRepo{}
	clock := &fixedTime{t: time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)} // Monday

	uc := NewUseCase(repo, &fakeServiceTypeRepo{catalog: catalogFixture()}, dates, relay, txMgr, nopLogger{})
	uc.timeProvider = clock

	return &useCaseFixture{uc: uc, repo: repo, relay: relay, txMgr: txMgr, dates: dates, clock: clock}
}

// Tests

func TestExecute_Success(t *testing.T) {
	f := newFixture()

	resp, err := f.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, "AB12CD", resp.Code)
	assert.Equal(t, string(domain.StatusAwaitingAnalysis), resp.Status)
	assert.Equal(t, "Troca de tela", resp.ServiceName)
	assert.Equal(t, "Opção selecionada: Tela original\n\nTela trincada após queda no chão", resp.ProblemDescription)

	// Delivery estimate is booking date plus three days.
	assert.Equal(t, time.Date(2025, 12, 5, 0, 0, 0, 0, time.UTC), resp.EstimatedDelivery)

	// The insert ran inside the serializable transaction and the sheet relay
	// fired exactly once with the committed appointment.
	assert.Equal(t, 1, f.txMgr.calls)
	require.Len(t, f.relay.pushed, 1)
	assert.Equal(t, "AB12CD", f.relay.pushed[0].Code)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	f := newFixture()
	f.repo.booked = []types.TimeString{"09:30"}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.relay.pushed)
}

func TestExecute_ConcurrentInsertLosesToConstraint(t *testing.T) {
	// The pre-insert read saw a free slot but the insert hit the unique
	// constraint: the race loser gets the same conflict error.
	f := newFixture()
	f.repo.createErr = appointmentRepo.ErrSlotTaken

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotNotAvailable)
	assert.Empty(t, f.relay.pushed)
}

func TestExecute_BlockedDate(t *testing.T) {
	f := newFixture()
	f.dates.blocked = []*domain.BlockedDate{{Date: time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)}}

	_, err := f.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecute_Sunday(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC) // Sunday

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecute_PastDate(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.Date = time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC)

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateNotBookable)
}

func TestExecute_TimeOutsideGrid(t *testing.T) {
	f := newFixture()

	for _, ts := range []types.TimeString{"12:00", "08:30", "18:00", "09:15"} {
		req := validRequest()
		req.StartTime = ts

		_, err := f.uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, ErrInvalidTimeSlot, "time %s is not on the grid", ts)
	}
}

func TestExecute_UnknownService(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.ServiceName = "Conserto de drone"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Empty(t, f.relay.pushed)
}

func TestExecute_ValidationRejectsBeforeAnyIO(t *testing.T) {
	f := newFixture()
	req := validRequest()
	req.CustomerName = "x"

	_, err := f.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Zero(t, f.txMgr.calls)
}
