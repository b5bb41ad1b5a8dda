package seed_test

import (
	"context"
	"net/url"
	"testing"

	"github.com/localnerve/materialsdb/data"
	"github.com/localnerve/materialsdb/internal/database/dbtest"
	"github.com/localnerve/materialsdb/internal/filter"
	"github.com/localnerve/materialsdb/internal/seed"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadIsIdempotent(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()

	first, err := seed.Load(ctx, db, data.SeedCatalog)
	require.NoError(t, err)
	assert.Equal(t, 3, first.Vendors)
	assert.Equal(t, 10, first.Materials)
	assert.Equal(t, 10, first.Links)

	second, err := seed.Load(ctx, db, data.SeedCatalog)
	require.NoError(t, err)
	assert.Zero(t, second.Vendors)
	assert.Zero(t, second.Materials)
	assert.Equal(t, 10, second.Skipped)
}

func TestSeededCatalogSearch(t *testing.T) {
	db := dbtest.New(t)
	ctx := context.Background()
	_, err := seed.Load(ctx, db, data.SeedCatalog)
	require.NoError(t, err)

	svc := services.NewMaterialService(db, nil)
	names := func(values url.Values) []string {
		criteria, err := filter.Parse(services.MaterialFilterFields, values)
		require.NoError(t, err)
		result, err := svc.Search(ctx, criteria, filter.Page{Limit: 50})
		require.NoError(t, err)
		out := make([]string, 0, len(result.Materials))
		for _, m := range result.Materials {
			out = append(out, m.Name)
		}
		return out
	}

	assert.Contains(t, names(url.Values{"materialType": {"ABS"}, "fdaApproved": {"true"}}), "Cycolac ABS MG47")
	assert.NotContains(t, names(url.Values{"materialType": {"PC"}}), "Cycolac ABS MG47")
	assert.ElementsMatch(t, []string{"Cycolac ABS MG47", "Terluran GP-35"}, names(url.Values{"materialType": {"ABS"}, "tensileStrengthMin": {"40"}}))
}

func TestLoadRejectsUnknownVendor(t *testing.T) {
	db := dbtest.New(t)
	_, err := seed.Load(context.Background(), db, []byte(`{"materials": [{"name": "X", "manufacturer": "Y", "materialType": "PP", "vendors": [{"vendor": "Nobody"}]}]}`))
	assert.ErrorContains(t, err, "unknown vendor")
}
