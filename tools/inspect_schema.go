// inspect_schema.go
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

// inspect_schema prints the tables and indexes gorm creates for the catalog
// models, for comparison with the hand-written DDL under data/initdb.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/glebarez/sqlite"
	"github.com/localnerve/materialsdb/internal/database"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type schemaObject struct {
	Type string
	Name string
	SQL  string
}

func main() {
	var showSQL bool
	flag.BoolVar(&showSQL, "sql", false, "print the generated DDL, not just the column list")
	flag.Parse()

	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	db, err := gorm.Open(sqlite.Open("file::memory:?_pragma=foreign_keys(1)"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		log.Fatal().Err(err).Msg("open in-memory database")
	}
	if err := database.AutoMigrate(db); err != nil {
		log.Fatal().Err(err).Msg("migrate models")
	}

	var objects []schemaObject
	err = db.Raw("SELECT type, name, sql FROM sqlite_master WHERE sql IS NOT NULL AND name NOT LIKE 'sqlite_%' ORDER BY type DESC, name").
		Scan(&objects).Error
	if err != nil {
		log.Fatal().Err(err).Msg("read schema")
	}

	for _, obj := range objects {
		if obj.Type != "table" {
			if showSQL {
				fmt.Printf("%s;\n", obj.SQL)
			}
			continue
		}

		fmt.Printf("\n=== Table: %s ===\n", obj.Name)
		if showSQL {
			fmt.Printf("%s;\n", obj.SQL)
			continue
		}
		columns, err := db.Migrator().ColumnTypes(obj.Name)
		if err != nil {
			log.Fatal().Err(err).Str("table", obj.Name).Msg("read columns")
		}
		for _, col := range columns {
			nullable, _ := col.Nullable()
			fmt.Printf("  %-28s %-16s null=%t\n", col.Name(), col.DatabaseTypeName(), nullable)
		}
	}
}
