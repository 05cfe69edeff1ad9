package get_available_slots

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/internal/domain"
	"github.com/newcase/agendamento-service/pkg/types"
)

type fakeAppointmentRepo struct {
	booked []types.TimeString
}

func (f *fakeAppointmentRepo) ListBookedTimes(_ context.Context, _ time.Time) ([]types.TimeString, error) {
	return f.booked, nil
}

type fakeBlockedDateRepo struct {
	blocked []*domain.BlockedDate
}

func (f *fakeBlockedDateRepo) List(_ context.Context) ([]*domain.BlockedDate, error) {
	return f.blocked, nil
}

type fixedTime struct {
	t time.Time
}

func (f *fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

var monday = time.Date(2025, 12, 1, 10, 30, 0, 0, time.UTC)

func newUseCase(repo *fakeAppointmentRepo, dates *fakeBlockedDateRepo) *UseCase {
	uc := NewUseCase(repo, dates, nopLogger{})
	uc.timeProvider = &fixedTime{t: monday}
	return uc
}

func TestExecute_FullGridOnOpenDay(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeBlockedDateRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.True(t, resp.Bookable)
	require.Len(t, resp.Slots, len(domain.DailySlots))

	// Grid follows the fixed enumeration in order, everything free.
	for i, slot := range resp.Slots {
		assert.Equal(t, domain.DailySlots[i], slot.StartTime)
		assert.True(t, slot.Available)
	}

	assert.Equal(t, types.TimeString("09:00"), resp.Slots[0].StartTime)
	assert.Equal(t, types.TimeString("17:30"), resp.Slots[len(resp.Slots)-1].StartTime)
}

func TestExecute_OccupiedSlotsMarked(t *testing.T) {
	repo := &fakeAppointmentRepo{booked: []types.TimeString{"09:30", "14:00"}}
	uc := newUseCase(repo, &fakeBlockedDateRepo{})

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	unavailable := make([]types.TimeString, 0)
	for _, slot := range resp.Slots {
		if !slot.Available {
			unavailable = append(unavailable, slot.StartTime)
		}
	}
	assert.Equal(t, []types.TimeString{"09:30", "14:00"}, unavailable)
}

func TestExecute_NonBookableDayGridIsGreyedOut(t *testing.T) {
	for name, date := range map[string]time.Time{
		"sunday": time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC),
		"past":   time.Date(2025, 11, 28, 0, 0, 0, 0, time.UTC),
	} {
		uc := newUseCase(&fakeAppointmentRepo{}, &fakeBlockedDateRepo{})

		resp, err := uc.Execute(context.Background(), &Request{Date: date})
		require.NoError(t, err, name)

		assert.False(t, resp.Bookable, name)
		require.Len(t, resp.Slots, len(domain.DailySlots), name)
		for _, slot := range resp.Slots {
			assert.False(t, slot.Available, name)
		}
	}
}

func TestExecute_BlockedDayGridIsGreyedOut(t *testing.T) {
	blocked := &fakeBlockedDateRepo{
		blocked: []*domain.BlockedDate{{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)}},
	}
	uc := newUseCase(&fakeAppointmentRepo{}, blocked)

	resp, err := uc.Execute(context.Background(), &Request{Date: time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC)})
	require.NoError(t, err)

	assert.False(t, resp.Bookable)
	for _, slot := range resp.Slots {
		assert.False(t, slot.Available)
	}
}

func TestExecute_MissingDate(t *testing.T) {
	uc := newUseCase(&fakeAppointmentRepo{}, &fakeBlockedDateRepo{})

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
