package catalog

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/newcase/agendamento-service/internal/domain"
	serviceTypeRepo "github.com/newcase/agendamento-service/internal/infra/storage/servicetype"
	"github.com/newcase/agendamento-service/internal/service/catalog/models"
)

type orderChange struct {
	id    uuid.UUID
	order int
}

type fakeServiceTypeRepo struct {
	entries      []*domain.ServiceType
	createErr    error
	orderChanges []orderChange
}

func (f *fakeServiceTypeRepo) ListActive(_ context.Context) ([]*domain.ServiceType, error) {
	active := make([]*domain.ServiceType, 0)
	for _, st := range f.entries {
		if st.Active {
			active = append(active, st)
		}
	}
	return active, nil
}

func (f *fakeServiceTypeRepo) ListAll(_ context.Context) ([]*domain.ServiceType, error) {
	return f.entries, nil
}

func (f *fakeServiceTypeRepo) GetByID(_ context.Context, id uuid.UUID) (*domain.ServiceType, error) {
	for _, st := range f.entries {
		if st.ID == id {
			return st, nil
		}
	}
	return nil, serviceTypeRepo.ErrServiceTypeNotFound
}

func (f *fakeServiceTypeRepo) Create(_ context.Context, st *domain.ServiceType) (*domain.ServiceType, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	out := *st
	out.ID = uuid.New()
	out.Active = true
	out.Order = len(f.entries) + 1
	f.entries = append(f.entries, &out)
	return &out, nil
}

func (f *fakeServiceTypeRepo) Update(_ context.Context, _ uuid.UUID, _ string, _ []string) error {
	return nil
}

func (f *fakeServiceTypeRepo) SetActive(_ context.Context, _ uuid.UUID, _ bool) error {
	return nil
}

func (f *fakeServiceTypeRepo) UpdateOrder(_ context.Context, id uuid.UUID, order int) error {
	f.orderChanges = append(f.orderChanges, orderChange{id: id, order: order})
	return nil
}

func (f *fakeServiceTypeRepo) Delete(_ context.Context, _ uuid.UUID) error {
	return nil
}

type fakeRoleRepo struct {
	admins map[string]bool
}

func (f *fakeRoleRepo) IsAdmin(_ context.Context, userID string) (bool, error) {
	return f.admins[userID], nil
}

type fakeTxManager struct{}

func (fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func catalogEntries() []*domain.ServiceType {
	return []*domain.ServiceType{
		{ID: uuid.New(), Name: "Troca de tela", ExtraOptions: []string{"Tela nacional", "Tela original"}, Order: 1, Active: true},
		{ID: uuid.New(), Name: "Troca de bateria", Order: 2, Active: true},
		{ID: uuid.New(), Name: "Limpeza interna", Order: 3, Active: false},
	}
}

func newService(repo *fakeServiceTypeRepo) *Service {
	return NewService(repo, &fakeRoleRepo{admins: map[string]bool{"admin": true}}, fakeTxManager{}, nopLogger{})
}

func TestListActive_SkipsInactive(t *testing.T) {
	repo := &fakeServiceTypeRepo{entries: catalogEntries()}
	svc := newService(repo)

	resp, err := svc.ListActive(context.Background())
	require.NoError(t, err)
	require.Len(t, resp.ServiceTypes, 2)
	assert.Equal(t, "Troca de tela", resp.ServiceTypes[0].Name)
	assert.Equal(t, "Troca de bateria", resp.ServiceTypes[1].Name)

	// Options always serialize as a list, never null.
	assert.Equal(t, []string{"Tela nacional", "Tela original"}, resp.ServiceTypes[0].ExtraOptions)
	assert.Equal(t, []string{}, resp.ServiceTypes[1].ExtraOptions)
}

func TestCreate_TrimsNameAndOptions(t *testing.T) {
	repo := &fakeServiceTypeRepo{}
	svc := newService(repo)

	resp, err := svc.Create(context.Background(), &models.CreateServiceTypeRequest{
		UserID:       "admin",
		Name:         "  Troca de conector  ",
		ExtraOptions: []string{" Conector original ", "", "Conector paralelo"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Troca de conector", resp.Name)
	assert.Equal(t, []string{"Conector original", "Conector paralelo"}, resp.ExtraOptions)
	assert.True(t, resp.Active)
}

func TestCreate_DuplicateName(t *testing.T) {
	repo := &fakeServiceTypeRepo{createErr: serviceTypeRepo.ErrDuplicateName}
	svc := newService(repo)

	_, err := svc.Create(context.Background(), &models.CreateServiceTypeRequest{
		UserID: "admin",
		Name:   "Troca de tela",
	})
	assert.ErrorIs(t, err, ErrDuplicateName)
}

func TestCreate_EmptyName(t *testing.T) {
	svc := newService(&fakeServiceTypeRepo{})

	_, err := svc.Create(context.Background(), &models.CreateServiceTypeRequest{
		UserID: "admin",
		Name:   "   ",
	})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestMove_SwapsWithNeighbor(t *testing.T) {
	entries := catalogEntries()
	repo := &fakeServiceTypeRepo{entries: entries}
	svc := newService(repo)

	err := svc.Move(context.Background(), entries[1].ID, &models.MoveRequest{UserID: "admin", Direction: models.MoveUp})
	require.NoError(t, err)

	// The entry takes its neighbor's position and vice versa.
	require.Len(t, repo.orderChanges, 2)
	assert.Equal(t, orderChange{id: entries[1].ID, order: 1}, repo.orderChanges[0])
	assert.Equal(t, orderChange{id: entries[0].ID, order: 2}, repo.orderChanges[1])
}

func TestMove_EdgeIsNoOp(t *testing.T) {
	entries := catalogEntries()
	repo := &fakeServiceTypeRepo{entries: entries}
	svc := newService(repo)

	require.NoError(t, svc.Move(context.Background(), entries[0].ID, &models.MoveRequest{UserID: "admin", Direction: models.MoveUp}))
	require.NoError(t, svc.Move(context.Background(), entries[2].ID, &models.MoveRequest{UserID: "admin", Direction: models.MoveDown}))
	assert.Empty(t, repo.orderChanges)
}

func TestMove_Rejections(t *testing.T) {
	entries := catalogEntries()
	repo := &fakeServiceTypeRepo{entries: entries}
	svc := newService(repo)

	err := svc.Move(context.Background(), entries[0].ID, &models.MoveRequest{UserID: "admin", Direction: "sideways"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	err = svc.Move(context.Background(), uuid.New(), &models.MoveRequest{UserID: "admin", Direction: models.MoveDown})
	assert.ErrorIs(t, err, ErrServiceTypeNotFound)
}

func TestAdminOnlyOperations_DenyNonAdmins(t *testing.T) {
	entries := catalogEntries()
	svc := newService(&fakeServiceTypeRepo{entries: entries})

	_, err := svc.ListAll(context.Background(), "intruder")
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = svc.Create(context.Background(), &models.CreateServiceTypeRequest{UserID: "", Name: "Novo"})
	assert.ErrorIs(t, err, ErrAccessDenied)

	err = svc.Delete(context.Background(), entries[0].ID, "intruder")
	assert.ErrorIs(t, err, ErrAccessDenied)
}
