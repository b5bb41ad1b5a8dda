// main.go
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

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ansrivas/fiberprometheus/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/database"
	"github.com/localnerve/materialsdb/internal/handlers"
	"github.com/localnerve/materialsdb/internal/logging"
	"github.com/localnerve/materialsdb/internal/middleware"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/rs/zerolog/log"

	_ "github.com/localnerve/materialsdb/docs/api" // Swagger docs
)

// @title MaterialsDB API
// @version 1.0.0
// @description Catalog of industrial plastic materials with search, pricing links, favorites and reviews
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/localnerve/materialsdb
// @contact.email info@localnerve.com

// @license.name AGPL-3.0
// @license.url https://www.gnu.org/licenses/agpl-3.0.html

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name cookie_session

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Cache is optional
	catalogCache, err := cache.New(cfg)
	if err != nil {
		log.Warn().Err(err).Msg("cache unavailable, continuing without it")
		catalogCache = cache.Unavailable{Err: err}
	}

	users := services.NewUserService(db)
	auth := middleware.NewAuth(services.NewAuthorizerValidator(cfg), users, cfg.AuthzAdminRole)
	h := handlers.New(cfg, db, catalogCache, users)

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "materialsdb",
		ErrorHandler: handlers.ErrorHandler,
	})

	// Global middleware
	app.Use(requestid.New(requestid.Config{
		Generator:  uuid.NewString,
		ContextKey: logging.RequestIDKey,
	}))
	app.Use(logging.RequestLogger())
	app.Use(recover.New())
	app.Use(compress.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSAllowOrigins,
		AllowCredentials: cfg.CORSAllowOrigins != "*",
		ExposeHeaders:    "X-Total-Count, X-Api-Version",
	}))

	// Prometheus metrics
	prometheus := fiberprometheus.New("materialsdb")
	prometheus.RegisterAt(app, "/metrics")
	app.Use(prometheus.Middleware)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API routes under /api
	api := app.Group("/api")
	api.Use(middleware.VersionMiddleware())
	h.Register(api, auth)

	// 404 handler
	app.Use(handlers.NotFound)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-quit
		log.Info().Msg("gracefully shutting down")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = app.ShutdownWithContext(ctx)
	}()

	// Start server
	log.Info().Str("port", cfg.Port).Str("env", cfg.AppEnv).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}

	if closer, ok := catalogCache.(*cache.Redis); ok {
		_ = closer.Close()
	}
	log.Info().Msg("server stopped")
}
