package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/materialsdb/internal/database/dbtest"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserUpsertRefreshesProfile(t *testing.T) {
	svc := services.NewUserService(dbtest.New(t))
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &services.Identity{ID: "abc", Email: "ada@example.com", FirstName: "Ada"})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, &services.Identity{ID: "abc", Email: "ada@example.com", FirstName: "Ada", LastName: "Byron"})
	require.NoError(t, err)

	user, err := svc.Get(ctx, "abc")
	require.NoError(t, err)
	require.NotNil(t, user.LastName)
	assert.Equal(t, "Byron", *user.LastName)
	assert.Nil(t, user.ProfileImageURL)

	_, err = svc.Get(ctx, "missing")
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestUserUpsertAcceptsReissuedEmail(t *testing.T) {
	svc := services.NewUserService(dbtest.New(t))
	ctx := context.Background()

	_, err := svc.Upsert(ctx, &services.Identity{ID: "old-id", Email: "ada@example.com"})
	require.NoError(t, err)
	_, err = svc.Upsert(ctx, &services.Identity{ID: "new-id", Email: "ada@example.com", FirstName: "Ada"})
	require.NoError(t, err)

	user, err := svc.Get(ctx, "new-id")
	require.NoError(t, err)
	require.NotNil(t, user.Email)
	assert.Equal(t, "ada@example.com", *user.Email)
}
