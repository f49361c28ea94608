package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/restaurant-reviews/internal/apperror"
	"github.com/sakif/restaurant-reviews/internal/model"
)

func strPtr(s string) *string { return &s }

func newTestUserService(t *testing.T) (*UserService, *fakeUserRepo) {
	t.Helper()
	repo := newFakeUserRepo()
	return NewUserService(repo, discardLogger()), repo
}

func TestUpsert_ReturnsWrittenFieldsOnly(t *testing.T) {
	svc, _ := newTestUserService(t)

	got, err := svc.Upsert(context.Background(), "u1", model.ProfileFields{DisplayName: strPtr("Lerato")})
	require.NoError(t, err)

	assert.Equal(t, "u1", got.ID)
	assert.Nil(t, got.Email)
	require.NotNil(t, got.DisplayName)
	assert.Equal(t, "Lerato", *got.DisplayName)
	assert.Nil(t, got.CreatedAt)
}

func TestUpsert_TwicePreservesCreatedAt(t *testing.T) {
	svc, repo := newTestUserService(t)
	ctx := context.Background()

	_, err := svc.Upsert(ctx, "u1", model.ProfileFields{Email: strPtr("a@example.com"), DisplayName: strPtr("A")})
	require.NoError(t, err)
	first := repo.users["u1"].CreatedAt

	_, err = svc.Upsert(ctx, "u1", model.ProfileFields{Email: strPtr("b@example.com"), DisplayName: strPtr("B")})
	require.NoError(t, err)

	got, err := svc.Get(ctx, "u1")
	require.NoError(t, err)
	assert.Equal(t, first, got.CreatedAt)
	assert.Equal(t, "b@example.com", got.Email)
}

func TestUpsert_RequiresUserID(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Upsert(context.Background(), "", model.ProfileFields{})
	assert.True(t, errors.Is(err, apperror.ErrValidation))
}

func TestUpsert_StoreFailure(t *testing.T) {
	svc, repo := newTestUserService(t)
	repo.upsertErr = errors.New("permission denied")

	_, err := svc.Upsert(context.Background(), "u1", model.ProfileFields{})
	require.Error(t, err)
	assert.False(t, errors.Is(err, apperror.ErrValidation))
}

func TestGet_NotFound(t *testing.T) {
	svc, _ := newTestUserService(t)

	_, err := svc.Get(context.Background(), "ghost")
	assert.True(t, errors.Is(err, apperror.ErrNotFound))
	assert.Equal(t, "User not found", err.Error())
}
