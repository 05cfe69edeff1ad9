package access

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRoleRepo struct {
	admins   map[string]bool
	assigned []string
}

func (f *fakeRoleRepo) IsAdmin(_ context.Context, userID string) (bool, error) {
	return f.admins[userID], nil
}

func (f *fakeRoleRepo) CountAdmins(_ context.Context) (int, error) {
	return len(f.admins), nil
}

func (f *fakeRoleRepo) AssignAdmin(_ context.Context, userID string) error {
	if f.admins == nil {
		f.admins = make(map[string]bool)
	}
	f.admins[userID] = true
	f.assigned = append(f.assigned, userID)
	return nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestIsAdmin(t *testing.T) {
	svc := NewService(&fakeRoleRepo{admins: map[string]bool{"alice": true}}, fakeTxManager{}, nopLogger{})

	isAdmin, err := svc.IsAdmin(context.Background(), "alice")
	require.NoError(t, err)
	assert.True(t, isAdmin)

	isAdmin, err = svc.IsAdmin(context.Background(), "bob")
	require.NoError(t, err)
	assert.False(t, isAdmin)

	_, err = svc.IsAdmin(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestBootstrapFirstAdmin(t *testing.T) {
	repo := &fakeRoleRepo{}
	svc := NewService(repo, fakeTxManager{}, nopLogger{})

	require.NoError(t, svc.BootstrapFirstAdmin(context.Background(), "alice"))
	assert.Equal(t, []string{"alice"}, repo.assigned)

	// A second bootstrap is rejected, whoever calls it.
	err := svc.BootstrapFirstAdmin(context.Background(), "bob")
	assert.ErrorIs(t, err, ErrAdminExists)
	assert.Equal(t, []string{"alice"}, repo.assigned)
}

func TestBootstrapFirstAdmin_EmptyUser(t *testing.T) {
	svc := NewService(&fakeRoleRepo{}, fakeTxManager{}, nopLogger{})
	assert.ErrorIs(t, svc.BootstrapFirstAdmin(context.Background(), ""), ErrInvalidInput)
}
