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
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/materialsdb/internal/logging"
	"github.com/localnerve/materialsdb/tests/helpers"
	"github.com/rs/zerolog/log"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	flag.Parse()

	usage := `
Start the materialsdb container stack (database, redis, authorizer, server)
with the environment variables from the .env file. Stop it with Ctrl-C.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -f /path/to/something/.env
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	logging.Setup("info", true)

	if envFilename != "" {
		log.Info().Str("file", envFilename).Msg("loading environment variables")
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatal().Err(err).Msg("failed to load environment variables")
		}
	} else {
		log.Info().Msg("no environment file specified, using the current environment")
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGTSTP, syscall.SIGQUIT)

	started := make(chan *helpers.Stack, 1)
	go func() {
		stack, err := helpers.StartStack(nil)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to start the stack")
		}
		started <- stack
	}()

	sig := <-sigs
	log.Info().Str("signal", sig.String()).Msg("terminating the stack")
	select {
	case stack := <-started:
		stack.Terminate(nil)
	default:
	}
}
