package calendar

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/internal/domain"
	blockedDateRepo "github.com/newcase/agendamento-service/internal/infra/storage/blockeddate"
	"github.com/newcase/agendamento-service/internal/service/calendar/models"
	"github.com/newcase/agendamento-service/pkg/ptr"
)

type fakeBlockedDateRepo struct {
	entries   []*domain.BlockedDate
	createErr error
	deleteErr error
}

func (f *fakeBlockedDateRepo) List(_ context.Context) ([]*domain.BlockedDate, error) {
	return f.entries, nil
}

func (f *fakeBlockedDateRepo) Create(_ context.Context, date time.Time, reason *string) (*domain.BlockedDate, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	entry := &domain.BlockedDate{ID: uuid.New(), Date: date, Reason: reason, CreatedAt: time.Now()}
	f.entries = append(f.entries, entry)
	return entry, nil
}

func (f *fakeBlockedDateRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return f.deleteErr
}

type fakeRoleRepo struct {
	admins map[string]bool
}

func (f *fakeRoleRepo) IsAdmin(_ context.Context, userID string) (bool, error) {
	return f.admins[userID], nil
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

func newService(repo *fakeBlockedDateRepo) *Service {
	svc := NewService(repo, &fakeRoleRepo{admins: map[string]bool{"admin": true}}, nopLogger{})
	svc.timeProvider = &fixedTime{t: monday}
	return svc
}

func TestBlock_Success(t *testing.T) {
	repo := &fakeBlockedDateRepo{}
	svc := newService(repo)

	resp, err := svc.Block(context.Background(), &models.BlockDateRequest{
		UserID: "admin",
		Date:   time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
		Reason: ptr.Ptr("Feriado"),
	})
	require.NoError(t, err)
	assert.Equal(t, "2025-12-25", resp.Date)
	require.NotNil(t, resp.Reason)
	assert.Equal(t, "Feriado", *resp.Reason)
}

func TestBlock_Rejections(t *testing.T) {
	svc := newService(&fakeBlockedDateRepo{})

	// Past date.
	_, err := svc.Block(context.Background(), &models.BlockDateRequest{
		UserID: "admin",
		Date:   time.Date(2025, 11, 20, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateInPast)

	// Sunday, already covered by the weekly closure.
	_, err = svc.Block(context.Background(), &models.BlockDateRequest{
		UserID: "admin",
		Date:   time.Date(2025, 12, 7, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrSundayAlwaysClosed)
}

func TestBlock_Duplicate(t *testing.T) {
	repo := &fakeBlockedDateRepo{createErr: blockedDateRepo.ErrDuplicateDate}
	svc := newService(repo)

	_, err := svc.Block(context.Background(), &models.BlockDateRequest{
		UserID: "admin",
		Date:   time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrDateAlreadyBlocked)
}

func TestBlock_AccessDenied(t *testing.T) {
	svc := newService(&fakeBlockedDateRepo{})

	_, err := svc.Block(context.Background(), &models.BlockDateRequest{
		UserID: "intruder",
		Date:   time.Date(2025, 12, 25, 0, 0, 0, 0, time.UTC),
	})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.List(context.Background(), "")
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestUnblock_NotFound(t *testing.T) {
	repo := &fakeBlockedDateRepo{deleteErr: blockedDateRepo.ErrBlockedDateNotFound}
	svc := newService(repo)

	err := svc.Unblock(context.Background(), uuid.New(), "admin")
	assert.ErrorIs(t, err, ErrBlockedDateNotFound)
}
