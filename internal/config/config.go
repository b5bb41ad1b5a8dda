// config.go
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

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	// Server configuration
	Port             string
	AppEnv           string // development, production
	LogLevel         string
	CORSAllowOrigins string

	// Database configuration
	DBType               string // mysql, mariadb, postgres, sqlite, sqlite-pure, sqlserver
	DBHost               string
	DBPort               string
	DBAppDatabase        string
	DBAppUser            string
	DBAppPassword        string
	DBAppConnectionLimit int

	// Authorizer configuration
	AuthzURL         string
	AuthzClientID    string
	AuthzRedirectURL string
	AuthzAdminRole   string

	// Cache configuration, disabled when RedisURL is empty
	RedisURL string
	CacheTTL time.Duration

	// Paging
	DefaultPageSize int
	MaxPageSize     int
}

// Load loads configuration from environment variables.
// When ENV_FILE names a file, it is loaded first without overriding variables already set.
func Load() (*Config, error) {
	if envFile := os.Getenv("ENV_FILE"); envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	port := getEnv("PORT", "3000")
	cfg := &Config{
		Port:                 port,
		AppEnv:               getEnv("APP_ENV", "production"),
		LogLevel:             getEnv("LOG_LEVEL", "info"),
		CORSAllowOrigins:     getEnv("CORS_ALLOW_ORIGINS", "*"),
		DBType:               getEnv("DB_TYPE", "mysql"),
		DBHost:               getEnv("DB_HOST", "localhost"),
		DBPort:               getEnv("DB_PORT", "3306"),
		DBAppDatabase:        getEnv("DB_APP_DATABASE", ""),
		DBAppUser:            getEnv("DB_APP_USER", ""),
		DBAppPassword:        getEnv("DB_APP_PASSWORD", ""),
		DBAppConnectionLimit: getEnvAsInt("DB_APP_CONNECTION_LIMIT", 10),
		AuthzURL:             getEnv("AUTHZ_URL", ""),
		AuthzClientID:        getEnv("AUTHZ_CLIENT_ID", ""),
		AuthzRedirectURL:     getEnv("AUTHZ_REDIRECT_URL", "http://localhost:"+port),
		AuthzAdminRole:       getEnv("AUTHZ_ADMIN_ROLE", ""),
		RedisURL:             getEnv("REDIS_URL", ""),
		CacheTTL:             getEnvAsDuration("CACHE_TTL", 5*time.Minute),
		DefaultPageSize:      getEnvAsInt("DEFAULT_PAGE_SIZE", 50),
		MaxPageSize:          getEnvAsInt("MAX_PAGE_SIZE", 200),
	}

	// Validate required fields
	if cfg.DBAppDatabase == "" {
		return nil, fmt.Errorf("DB_APP_DATABASE is required")
	}
	if cfg.DBAppUser == "" && !cfg.IsSQLite() {
		return nil, fmt.Errorf("DB_APP_USER is required")
	}
	if cfg.AuthzURL == "" {
		return nil, fmt.Errorf("AUTHZ_URL is required")
	}
	if cfg.AuthzClientID == "" {
		return nil, fmt.Errorf("AUTHZ_CLIENT_ID is required")
	}
	if cfg.DefaultPageSize < 1 || cfg.MaxPageSize < cfg.DefaultPageSize {
		return nil, fmt.Errorf("invalid page sizes: DEFAULT_PAGE_SIZE=%d MAX_PAGE_SIZE=%d",
			cfg.DefaultPageSize, cfg.MaxPageSize)
	}

	return cfg, nil
}

// IsSQLite reports whether the configured store is a sqlite file
func (c *Config) IsSQLite() bool {
	return c.DBType == "sqlite" || c.DBType == "sqlite-pure"
}

// IsDevelopment reports whether the service runs in development mode
func (c *Config) IsDevelopment() bool {
	return c.AppEnv == "development"
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt gets an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration accepts a Go duration ("90s") or a whole number of seconds
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	if d, err := time.ParseDuration(valueStr); err == nil {
		return d
	}
	if seconds, err := strconv.Atoi(valueStr); err == nil {
		return time.Duration(seconds) * time.Second
	}
	return defaultValue
}
