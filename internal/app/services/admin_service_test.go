package services

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/trackpro/trackpro/internal/app/models"
	"github.com/trackpro/trackpro/internal/app/models/dto"
	"github.com/trackpro/trackpro/internal/pkg/apperrors"
	"github.com/trackpro/trackpro/internal/pkg/auth"
)

type fakeAdminStore struct {
	admins           map[uuid.UUID]*models.Admin
	uniquenessChecks int
}

func newFakeAdminStore() *fakeAdminStore {
	return &fakeAdminStore{admins: make(map[uuid.UUID]*models.Admin)}
}

func (f *fakeAdminStore) Create(_ context.Context, admin *models.Admin) error {
	if admin.ID == uuid.Nil {
		admin.ID = uuid.New()
	}
	admin.CreatedAt = time.Now()
	copied := *admin
	f.admins[admin.ID] = &copied
	return nil
}

func (f *fakeAdminStore) GetByID(_ context.Context, id uuid.UUID) (*models.Admin, error) {
	admin, ok := f.admins[id]
	if !ok {
		return nil, apperrors.ErrAdminNotFound
	}
	copied := *admin
	return &copied, nil
}

func (f *fakeAdminStore) GetAll(_ context.Context) ([]*models.Admin, error) {
	var out []*models.Admin
	for _, a := range f.admins {
		copied := *a
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeAdminStore) Search(ctx context.Context, _ string) ([]*models.Admin, error) {
	return f.GetAll(ctx)
}

func (f *fakeAdminStore) ExistsByUsername(_ context.Context, username string, excludeID uuid.UUID) (bool, error) {
	f.uniquenessChecks++
	for _, a := range f.admins {
		if a.ID != excludeID && strings.EqualFold(a.Username, username) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminStore) ExistsByEmail(_ context.Context, email string, excludeID uuid.UUID) (bool, error) {
	f.uniquenessChecks++
	for _, a := range f.admins {
		if a.ID != excludeID && strings.EqualFold(a.Email, email) {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeAdminStore) Update(_ context.Context, admin *models.Admin) error {
	if _, ok := f.admins[admin.ID]; !ok {
		return apperrors.ErrAdminNotFound
	}
	copied := *admin
	f.admins[admin.ID] = &copied
	return nil
}

func (f *fakeAdminStore) Delete(_ context.Context, id uuid.UUID) error {
	if _, ok := f.admins[id]; !ok {
		return apperrors.ErrAdminNotFound
	}
	delete(f.admins, id)
	return nil
}

func (f *fakeAdminStore) GetStats(_ context.Context) (*dto.AdminStats, error) {
	stats := &dto.AdminStats{}
	for _, a := range f.admins {
		stats.Total++
		if a.Status == models.AccountActive {
			stats.Active++
		}
	}
	return stats, nil
}

func createAdminRequest(username, email string) *dto.CreateAdminRequest {
	return &dto.CreateAdminRequest{
		Username:  username,
		Email:     email,
		Password:  "admin123",
		FirstName: "Asha",
		LastName:  "Nair",
	}
}

func TestAdminCreate(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store, zerolog.Nop())

	admin, err := service.Create(context.Background(), createAdminRequest("asha", "asha@trackpro.local"))
	require.NoError(t, err)

	assert.Equal(t, models.AccountActive, admin.Status)
	assert.NotEqual(t, "admin123", admin.Password)
	assert.True(t, auth.CheckPassword(admin.Password, "admin123"))
}

func TestAdminCreateDuplicateUsername(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store, zerolog.Nop())

	_, err := service.Create(context.Background(), createAdminRequest("asha", "asha@trackpro.local"))
	require.NoError(t, err)

	_, err = service.Create(context.Background(), createAdminRequest("ASHA", "other@trackpro.local"))
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyUsed)
	assert.ErrorIs(t, err, apperrors.ErrConflict)

	_, err = service.Create(context.Background(), createAdminRequest("other", "asha@trackpro.local"))
	assert.ErrorIs(t, err, apperrors.ErrUsernameAlreadyUsed)
}

func TestAdminUpdateSkipsUnchangedUniquenessChecks(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store, zerolog.Nop())

	admin, err := service.Create(context.Background(), createAdminRequest("asha", "asha@trackpro.local"))
	require.NoError(t, err)

	store.uniquenessChecks = 0
	updated, err := service.Update(context.Background(), admin.ID, &dto.UpdateAdminRequest{
		Username:  "asha",
		Email:     "asha@trackpro.local",
		FirstName: "Asha",
		LastName:  "Nair",
		Status:    string(models.AccountInactive),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AccountInactive, updated.Status)
	assert.Zero(t, store.uniquenessChecks)
}

func TestAdminUpdateKeepsPasswordWhenEmpty(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store, zerolog.Nop())

	admin, err := service.Create(context.Background(), createAdminRequest("asha", "asha@trackpro.local"))
	require.NoError(t, err)
	originalHash := admin.Password

	updated, err := service.Update(context.Background(), admin.ID, &dto.UpdateAdminRequest{
		Username:  "asha",
		Email:     "asha@trackpro.local",
		FirstName: "Asha",
		LastName:  "Nair",
		Status:    string(models.AccountActive),
	})
	require.NoError(t, err)
	assert.Equal(t, originalHash, updated.Password)

	updated, err = service.Update(context.Background(), admin.ID, &dto.UpdateAdminRequest{
		Username:  "asha",
		Email:     "asha@trackpro.local",
		Password:  "newpassword",
		FirstName: "Asha",
		LastName:  "Nair",
		Status:    string(models.AccountActive),
	})
	require.NoError(t, err)
	assert.NotEqual(t, originalHash, updated.Password)
	assert.True(t, auth.CheckPassword(updated.Password, "newpassword"))
}

func TestAdminDelete(t *testing.T) {
	store := newFakeAdminStore()
	service := NewAdminService(store, zerolog.Nop())

	admin, err := service.Create(context.Background(), createAdminRequest("asha", "asha@trackpro.local"))
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), admin.ID))
	assert.ErrorIs(t, service.Delete(context.Background(), admin.ID), apperrors.ErrAdminNotFound)
}
