// e2e_test.go
//
// A catalog data service for industrial plastic materials
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of materialsdb.
// materialsdb is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// materialsdb is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with materialsdb.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.

package e2e_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/database"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/localnerve/materialsdb/tests/helpers"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestE2EWithFullStack drives the server container over HTTP
func TestE2EWithFullStack(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E test in short mode")
	}
	ctx := context.Background()

	stack, err := helpers.StartStack(t)
	require.NoError(t, err, "start the stack")
	t.Cleanup(func() { stack.Terminate(t) })

	baseURL, err := stack.ServerURL(ctx)
	require.NoError(t, err)

	t.Run("HealthCheck", func(t *testing.T) {
		testHealthCheck(t, stack)
	})
	t.Run("HealthEndpoint", func(t *testing.T) {
		resp := helpers.Get(t, baseURL, "/api/health", "")
		helpers.AssertStatus(t, resp, http.StatusOK)
	})
	t.Run("PrometheusMetrics", func(t *testing.T) {
		testPrometheusMetrics(t, baseURL)
	})
	t.Run("SwaggerUI", func(t *testing.T) {
		resp := helpers.Get(t, baseURL, "/swagger/index.html", "")
		helpers.AssertStatus(t, resp, http.StatusOK)
	})
	t.Run("PublicSearch", func(t *testing.T) {
		testPublicSearch(t, baseURL)
	})
	t.Run("FavoritesNeedSession", func(t *testing.T) {
		resp := helpers.Get(t, baseURL, "/api/favorites", "")
		helpers.AssertError(t, resp, http.StatusUnauthorized)
	})
	t.Run("UnknownSessionRejected", func(t *testing.T) {
		resp := helpers.Get(t, baseURL, "/api/auth/user", "not-a-session")
		helpers.AssertError(t, resp, http.StatusUnauthorized)
	})
	t.Run("UnknownMaterial", func(t *testing.T) {
		resp := helpers.Get(t, baseURL, "/api/materials/999999", "")
		helpers.AssertError(t, resp, http.StatusNotFound)
	})
}

// testHealthCheck runs the same check as the healthcheck command from the
// host, through the mapped ports.
func testHealthCheck(t *testing.T, stack *helpers.Stack) {
	ctx := context.Background()

	cfg, err := config.Load()
	require.NoError(t, err)

	cfg.DBHost, cfg.DBPort, err = stack.DatabaseAddress(ctx)
	require.NoError(t, err)
	cfg.AuthzURL, err = stack.AuthorizerURL(ctx)
	require.NoError(t, err)
	cfg.RedisURL, err = stack.RedisURL(ctx)
	require.NoError(t, err)

	db, err := database.Connect(cfg)
	require.NoError(t, err)
	defer database.Close(db)

	redis, err := cache.NewRedis(cfg.RedisURL, cfg.CacheTTL)
	require.NoError(t, err)
	defer redis.Close()

	result := services.HealthCheck(ctx, cfg, db, redis)
	assert.True(t, result.Healthy(), "health: %+v", result)
	assert.Equal(t, "ok", result.Cache)
}

func testPrometheusMetrics(t *testing.T, baseURL string) {
	// One API call first so the request counters exist.
	helpers.Get(t, baseURL, "/api/materials?limit=1", "")

	resp := helpers.Get(t, baseURL, "/metrics", "")
	helpers.AssertStatus(t, resp, http.StatusOK)

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	text := string(body)
	assert.True(t, strings.Contains(text, "http_requests_total"), "request counter missing")
	assert.True(t, strings.Contains(text, `service="materialsdb"`), "service label missing")
	assert.True(t, strings.Contains(text, "materialsdb_search_results_count"), "search histogram missing")
}

func testPublicSearch(t *testing.T, baseURL string) {
	resp := helpers.Get(t, baseURL, "/api/materials?materialType=ABS&limit=5", "")
	helpers.AssertStatus(t, resp, http.StatusOK)
	assert.NotEmpty(t, resp.Header.Get("X-Total-Count"))
	assert.NotEmpty(t, resp.Header.Get("X-Api-Version"))

	var materials []map[string]interface{}
	helpers.ParseJSON(t, resp, &materials)
	for _, m := range materials {
		assert.Equal(t, "ABS", m["materialType"])
	}

	bad := helpers.Get(t, baseURL, "/api/materials?tensileStrengthMin=strong", "")
	body := helpers.AssertError(t, bad, http.StatusBadRequest)
	assert.Contains(t, body.Errors, "tensileStrengthMin")
}
