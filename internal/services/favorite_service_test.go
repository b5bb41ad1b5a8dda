package services_test

import (
	"context"
	"testing"

	"github.com/localnerve/materialsdb/internal/database/dbtest"
	"github.com/localnerve/materialsdb/internal/models"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFavoriteAddIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	svc := services.NewFavoriteService(db)
	ctx := context.Background()

	m := dbtest.CreateMaterial(t, db, &models.Material{})

	first, created, err := svc.Add(ctx, "user-1", m.ID)
	require.NoError(t, err)
	assert.True(t, created)

	second, created, err := svc.Add(ctx, "user-1", m.ID)
	require.NoError(t, err)
	assert.False(t, created)
	assert.Equal(t, first.ID, second.ID)

	var count int64
	require.NoError(t, db.Model(&models.Favorite{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)

	ok, err := svc.IsFavorite(ctx, "user-1", m.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = svc.IsFavorite(ctx, "user-2", m.ID)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestFavoriteAddUnknownMaterial(t *testing.T) {
	svc := services.NewFavoriteService(dbtest.New(t))
	_, _, err := svc.Add(context.Background(), "user-1", 999)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestFavoriteRemoveAndList(t *testing.T) {
	db := dbtest.New(t)
	svc := services.NewFavoriteService(db)
	ctx := context.Background()

	older := dbtest.CreateMaterial(t, db, &models.Material{Name: "Older"})
	newer := dbtest.CreateMaterial(t, db, &models.Material{Name: "Newer"})

	_, _, err := svc.Add(ctx, "user-1", older.ID)
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "user-1", newer.ID)
	require.NoError(t, err)
	_, _, err = svc.Add(ctx, "user-2", older.ID)
	require.NoError(t, err)

	list, err := svc.List(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].Material)
	assert.Equal(t, "Newer", list[0].Material.Name)
	assert.Equal(t, "Older", list[1].Material.Name)

	removed, err := svc.Remove(ctx, "user-1", newer.ID)
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = svc.Remove(ctx, "user-1", newer.ID)
	require.NoError(t, err)
	assert.False(t, removed)

	list, err = svc.List(ctx, "user-1")
	require.NoError(t, err)
	assert.Len(t, list, 1)

	empty, err := svc.List(ctx, "nobody")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
