package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/utils"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

// HealthCheckResult represents the result of a health check
type HealthCheckResult struct {
	Status       string            `json:"status"`
	Database     string            `json:"database"`
	Authorizer   string            `json:"authorizer"`
	Cache        string            `json:"cache"`
	Details      map[string]string `json:"details,omitempty"`
	ErrorMessage string            `json:"error,omitempty"`
}

// Healthy reports whether every dependency answered
func (r HealthCheckResult) Healthy() bool {
	return r.Status == "healthy"
}

func (r *HealthCheckResult) fail(component, detailKey string, err error) {
	r.Status = "unhealthy"
	r.Details[detailKey] = err.Error()
	msg := fmt.Sprintf("%s: %v", component, err)
	if r.ErrorMessage == "" {
		r.ErrorMessage = msg
	} else {
		r.ErrorMessage = strings.Join([]string{r.ErrorMessage, msg}, "; ")
	}
	log.Warn().Err(err).Str("component", component).Msg("health check failed")
}

// HealthCheck pings the database, the identity provider and the cache.
// A nil cache is reported as disabled.
func HealthCheck(ctx context.Context, cfg *config.Config, db *gorm.DB, c cache.Cache) HealthCheckResult {
	result := HealthCheckResult{
		Status:  "healthy",
		Details: make(map[string]string),
	}

	// Database
	sqlDB, err := db.DB()
	switch {
	case err != nil:
		result.Database = "error"
		result.fail("database connection", "database_error", err)
	default:
		if err := sqlDB.PingContext(ctx); err != nil {
			result.Database = "unreachable"
			result.fail("database ping", "database_ping_error", err)
		} else {
			result.Database = "ok"
			result.Details["database_type"] = cfg.DBType
			result.Details["database_name"] = cfg.DBAppDatabase
		}
	}

	// Identity provider
	if err := utils.PingAuthorizer(cfg.AuthzURL); err != nil {
		result.Authorizer = "unreachable"
		result.fail("authorizer ping", "authorizer_error", err)
	} else {
		result.Authorizer = "ok"
		result.Details["authorizer_url"] = cfg.AuthzURL
	}

	// Cache
	if _, disabled := c.(cache.Nop); c == nil || disabled {
		result.Cache = "disabled"
	} else if err := c.Ping(ctx); err != nil {
		result.Cache = "unreachable"
		result.fail("cache ping", "cache_error", err)
	} else {
		result.Cache = "ok"
	}

	if result.Healthy() {
		log.Debug().Msg("health check passed")
	}

	return result
}
