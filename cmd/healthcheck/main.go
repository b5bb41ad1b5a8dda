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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/localnerve/materialsdb/internal/cache"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/database"
	"github.com/localnerve/materialsdb/internal/logging"
	"github.com/localnerve/materialsdb/internal/services"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	// A cache that cannot connect is reported as unreachable, not fatal
	var catalogCache cache.Cache = cache.Nop{}
	if cfg.RedisURL != "" {
		if c, err := cache.New(cfg); err == nil {
			catalogCache = c
		} else {
			catalogCache = cache.Unavailable{Err: err}
		}
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	result := services.HealthCheck(ctx, cfg, db, catalogCache)

	output, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to marshal health check result")
	}
	fmt.Println(string(output))

	if !result.Healthy() {
		os.Exit(1)
	}
}
