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
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/localnerve/materialsdb/data"
	"github.com/localnerve/materialsdb/internal/config"
	"github.com/localnerve/materialsdb/internal/database"
	"github.com/localnerve/materialsdb/internal/logging"
	"github.com/localnerve/materialsdb/internal/seed"
	"github.com/rs/zerolog/log"
)

func main() {
	var showHelp bool
	var envFilename string
	var catalogPath string
	flag.BoolVar(&showHelp, "h", false, "show help")
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.StringVar(&catalogPath, "c", "", "path to a catalog JSON file, defaults to the built-in catalog")
	flag.Parse()

	usage := `
Load the example materials catalog into the configured database.
Existing vendors and materials are left untouched.

Usage:

seed [-h] [-f ENV_FILE_PATH] [-c CATALOG_PATH]

example
  seed -f /path/to/something/.env
`
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatal().Err(err).Str("file", envFilename).Msg("failed to load environment variables")
		}
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}
	logging.Setup(cfg.LogLevel, cfg.IsDevelopment())

	catalog := data.SeedCatalog
	if catalogPath != "" {
		if catalog, err = os.ReadFile(catalogPath); err != nil {
			log.Fatal().Err(err).Str("file", catalogPath).Msg("failed to read catalog")
		}
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	defer database.Close(db)

	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()
	if _, err := seed.Load(ctx, db, catalog); err != nil {
		log.Fatal().Err(err).Msg("seed failed")
	}
}
