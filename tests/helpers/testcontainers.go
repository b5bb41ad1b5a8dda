// testcontainers.go
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

// Package helpers starts the container stack the server depends on and offers
// shared assertions for the integration and e2e suites. The stack reads its
// settings from the environment, usually loaded from a .env file.
package helpers

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/docker/docker/api/types/build"
	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/image"
	"github.com/docker/docker/client"
	"github.com/docker/go-connections/nat"
	_ "github.com/go-sql-driver/mysql"
	"github.com/google/uuid"
	"github.com/localnerve/materialsdb/data"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	serverImage    = "materialsdb-test:latest"
	authzAlias     = "authorizer"
	cacheAlias     = "cache"
	redisPort      = "6379/tcp"
	debuggerPort   = "2345/tcp"
	defaultRedis   = "redis:7-alpine"
	startupTimeout = 60 * time.Second
)

// Stack holds the running containers of one test environment
type Stack struct {
	Network    *testcontainers.DockerNetwork
	Database   testcontainers.Container
	Cache      testcontainers.Container
	Authorizer testcontainers.Container
	Server     testcontainers.Container
	Builder    testcontainers.Container
}

// Terminate stops every started container in reverse start order.
// t may be nil when run outside a test.
func (s *Stack) Terminate(t *testing.T) {
	ctx := context.Background()
	stop := []struct {
		name string
		c    testcontainers.Container
	}{
		{"server", s.Server},
		{"server builder", s.Builder},
		{"authorizer", s.Authorizer},
		{"cache", s.Cache},
		{"database", s.Database},
	}
	for _, entry := range stop {
		if entry.c == nil {
			continue
		}
		if err := entry.c.Terminate(ctx); err != nil {
			logMessage(t, "Failed to terminate %s: %v", entry.name, err)
		}
	}
	if s.Network != nil {
		if err := s.Network.Remove(ctx); err != nil {
			logMessage(t, "Failed to remove network: %v", err)
		}
	}
}

// ServerURL is the host-reachable base URL of the server container
func (s *Stack) ServerURL(ctx context.Context) (string, error) {
	return endpoint(ctx, s.Server, os.Getenv("PORT"), "http")
}

// AuthorizerURL is the host-reachable base URL of the identity provider
func (s *Stack) AuthorizerURL(ctx context.Context) (string, error) {
	return endpoint(ctx, s.Authorizer, os.Getenv("AUTHZ_PORT"), "http")
}

// RedisURL is the host-reachable URL of the cache container
func (s *Stack) RedisURL(ctx context.Context) (string, error) {
	u, err := endpoint(ctx, s.Cache, "6379", "redis")
	if err != nil {
		return "", err
	}
	return u + "/0", nil
}

// DatabaseAddress is the host and mapped port of the database container
func (s *Stack) DatabaseAddress(ctx context.Context) (host, port string, err error) {
	if s.Database == nil {
		return "", "", errors.New("database container not started")
	}
	if host, err = s.Database.Host(ctx); err != nil {
		return "", "", err
	}
	mapped, err := s.Database.MappedPort(ctx, nat.Port(os.Getenv("DB_PORT")+"/tcp"))
	if err != nil {
		return "", "", err
	}
	return host, mapped.Port(), nil
}

// StartStack starts the database, cache, identity provider and server
// containers on a private network. The server image is built on first use and
// kept for later runs. On failure the containers already started are stopped.
func StartStack(t *testing.T) (*Stack, error) {
	ctx := context.Background()
	stack := &Stack{}

	fail := func(err error, step string) (*Stack, error) {
		stack.Terminate(t)
		return nil, fmt.Errorf("%s: %w", step, err)
	}

	nw, err := network.New(ctx)
	if err != nil {
		return fail(err, "create network")
	}
	stack.Network = nw

	if stack.Database, err = startDatabase(ctx, nw.Name); err != nil {
		return fail(err, "start database")
	}
	if err = initDatabase(ctx, stack.Database); err != nil {
		return fail(err, "initialize database")
	}
	if stack.Cache, err = startCache(ctx, nw.Name); err != nil {
		return fail(err, "start cache")
	}
	if stack.Authorizer, err = startAuthorizer(ctx, nw.Name); err != nil {
		return fail(err, "start authorizer")
	}
	if authzURL, err := stack.AuthorizerURL(ctx); err == nil {
		logMessage(t, "AUTHZ_URL=%s", authzURL)
	}
	if err = startServer(ctx, t, stack, nw.Name); err != nil {
		return fail(err, "start server")
	}

	baseURL, err := stack.ServerURL(ctx)
	if err != nil {
		return fail(err, "resolve server url")
	}
	logMessage(t, "BASE_URL=%s", baseURL)
	logMessage(t, "MaterialsDB stack started")
	return stack, nil
}

func startDatabase(ctx context.Context, networkName string) (testcontainers.Container, error) {
	port, err := nat.NewPort("tcp", os.Getenv("DB_PORT"))
	if err != nil {
		return nil, err
	}
	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          os.Getenv("DB_IMAGE"),
			ExposedPorts:   []string{string(port)},
			Env:            databaseEnv(os.Getenv("DB_TYPE")),
			WaitingFor:     wait.ForListeningPort(port).WithStartupTimeout(startupTimeout),
			Networks:       []string{networkName},
			NetworkAliases: map[string][]string{networkName: {os.Getenv("DB_HOST")}},
		},
		Started: true,
	})
}

func databaseEnv(dbType string) map[string]string {
	switch dbType {
	case "postgres":
		return map[string]string{
			"POSTGRES_USER":     os.Getenv("DB_APP_USER"),
			"POSTGRES_PASSWORD": os.Getenv("DB_APP_PASSWORD"),
			"POSTGRES_DB":       os.Getenv("DB_APP_DATABASE"),
		}
	default:
		return map[string]string{
			"MYSQL_ROOT_PASSWORD": os.Getenv("DB_ROOT_PASSWORD"),
			"MYSQL_DATABASE":      os.Getenv("DB_APP_DATABASE"),
			"MYSQL_USER":          os.Getenv("DB_APP_USER"),
			"MYSQL_PASSWORD":      os.Getenv("DB_APP_PASSWORD"),
		}
	}
}

// initDatabase prepares the MySQL family databases. Postgres needs nothing
// beyond its entrypoint: the server migrates its own tables there and the
// identity provider shares the application database.
func initDatabase(ctx context.Context, c testcontainers.Container) error {
	switch os.Getenv("DB_TYPE") {
	case "mysql", "mariadb":
	default:
		return nil
	}

	host, err := c.Host(ctx)
	if err != nil {
		return err
	}
	port, err := c.MappedPort(ctx, nat.Port(os.Getenv("DB_PORT")+"/tcp"))
	if err != nil {
		return err
	}

	db, err := sql.Open("mysql", fmt.Sprintf("root:%s@tcp(%s:%s)/?multiStatements=false", os.Getenv("DB_ROOT_PASSWORD"), host, port.Port()))
	if err != nil {
		return err
	}
	defer db.Close()

	deadline := time.Now().Add(30 * time.Second)
	for {
		if err = db.PingContext(ctx); err == nil {
			break
		}
		if time.Now().After(deadline) {
			return fmt.Errorf("database not ready: %w", err)
		}
		time.Sleep(time.Second)
	}

	statements := []string{
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("DB_APP_DATABASE")),
		fmt.Sprintf("CREATE DATABASE IF NOT EXISTS %s", os.Getenv("AUTHZ_DATABASE")),
		fmt.Sprintf("CREATE USER IF NOT EXISTS '%s'@'%%' IDENTIFIED BY '%s'", os.Getenv("DB_APP_USER"), os.Getenv("DB_APP_PASSWORD")),
	}
	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: when executing > %s", err, stmt)
		}
	}

	for _, script := range []string{data.InitdbMariaDBTables, data.InitdbMariaDBPrivileges} {
		if err := execScript(ctx, db, script); err != nil {
			return err
		}
	}
	return nil
}

// execScript runs each statement of a SQL script in turn.
func execScript(ctx context.Context, db *sql.DB, script string) error {
	for _, stmt := range splitStatements(script) {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("%w: when executing > %s", err, stmt)
		}
	}
	return nil
}

// splitStatements breaks a script on semicolons, dropping "--" comments.
// Quoted text is copied as is, so semicolons and dashes inside it survive.
func splitStatements(script string) []string {
	var (
		statements []string
		current    strings.Builder
		quote      rune
		comment    bool
	)
	runes := []rune(script)
	for i := 0; i < len(runes); i++ {
		r := runes[i]
		switch {
		case comment:
			if r == '\n' {
				comment = false
				current.WriteRune(' ')
			}
		case quote != 0:
			current.WriteRune(r)
			if r == quote {
				quote = 0
			}
		case r == '\'' || r == '"' || r == '`':
			quote = r
			current.WriteRune(r)
		case r == '-' && i+1 < len(runes) && runes[i+1] == '-':
			comment = true
			i++
		case r == ';':
			if stmt := strings.TrimSpace(current.String()); stmt != "" {
				statements = append(statements, stmt)
			}
			current.Reset()
		case r == '\n':
			current.WriteRune(' ')
		default:
			current.WriteRune(r)
		}
	}
	if stmt := strings.TrimSpace(current.String()); stmt != "" {
		statements = append(statements, stmt)
	}
	return statements
}

func startCache(ctx context.Context, networkName string) (testcontainers.Container, error) {
	img := os.Getenv("REDIS_IMAGE")
	if img == "" {
		img = defaultRedis
	}
	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:          img,
			ExposedPorts:   []string{redisPort},
			WaitingFor:     wait.ForLog("Ready to accept connections").WithStartupTimeout(startupTimeout),
			Networks:       []string{networkName},
			NetworkAliases: map[string][]string{networkName: {cacheAlias}},
		},
		Started: true,
	})
}

func startAuthorizer(ctx context.Context, networkName string) (testcontainers.Container, error) {
	port, err := nat.NewPort("tcp", os.Getenv("AUTHZ_PORT"))
	if err != nil {
		return nil, err
	}

	dbType := os.Getenv("DB_TYPE")
	dbAddr := os.Getenv("DB_HOST") + ":" + os.Getenv("DB_PORT")
	dbName := os.Getenv("AUTHZ_DATABASE")
	dbURL := fmt.Sprintf("root:%s@tcp(%s)/%s", os.Getenv("DB_ROOT_PASSWORD"), dbAddr, dbName)
	if dbType == "postgres" {
		dbName = os.Getenv("DB_APP_DATABASE")
		dbURL = fmt.Sprintf("postgres://%s:%s@%s/%s?sslmode=disable", os.Getenv("DB_APP_USER"), os.Getenv("DB_APP_PASSWORD"), dbAddr, dbName)
	}

	logLevel := "info"
	if os.Getenv("DEBUG_CONTAINER") == "true" {
		logLevel = "debug"
	}
	adminRole := adminRole()

	return testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        os.Getenv("AUTHZ_IMAGE"),
			ExposedPorts: []string{string(port)},
			Env: map[string]string{
				"ENV":           "production",
				"CLIENT_ID":     os.Getenv("AUTHZ_CLIENT_ID"),
				"PORT":          os.Getenv("AUTHZ_PORT"),
				"DATABASE_TYPE": dbType,
				"DATABASE_NAME": dbName,
				"DATABASE_URL":  dbURL,
				"ADMIN_SECRET":  os.Getenv("AUTHZ_ADMIN_SECRET"),
				"ROLES":         adminRole + ",user",
				"DEFAULT_ROLES": "user",
				"LOG_LEVEL":     logLevel,
			},
			WaitingFor:     wait.ForLog("Authorizer running at PORT:").WithStartupTimeout(startupTimeout),
			Networks:       []string{networkName},
			NetworkAliases: map[string][]string{networkName: {authzAlias}},
		},
		Started: true,
	})
}

func adminRole() string {
	if role := os.Getenv("AUTHZ_ADMIN_ROLE"); role != "" {
		return role
	}
	return "admin"
}

func startServer(ctx context.Context, t *testing.T, stack *Stack, networkName string) error {
	debug := os.Getenv("DEBUG_CONTAINER") == "true"

	port, err := nat.NewPort("tcp", os.Getenv("PORT"))
	if err != nil {
		return err
	}
	exposed := []string{string(port)}
	if debug {
		exposed = append(exposed, debuggerPort)
	}

	var waitFor wait.Strategy = wait.ForHTTP("/metrics").WithPort(port).WithStartupTimeout(30 * time.Second)
	if debug {
		waitFor = wait.ForLog("API server listening at: [::]:2345").WithStartupTimeout(5 * time.Minute)
	}

	req := testcontainers.ContainerRequest{
		ExposedPorts: exposed,
		Env: map[string]string{
			"DB_TYPE":                 os.Getenv("DB_TYPE"),
			"DB_HOST":                 os.Getenv("DB_HOST"),
			"DB_PORT":                 os.Getenv("DB_PORT"),
			"DB_APP_DATABASE":         os.Getenv("DB_APP_DATABASE"),
			"DB_APP_USER":             os.Getenv("DB_APP_USER"),
			"DB_APP_PASSWORD":         os.Getenv("DB_APP_PASSWORD"),
			"DB_APP_CONNECTION_LIMIT": os.Getenv("DB_APP_CONNECTION_LIMIT"),
			"AUTHZ_URL":               fmt.Sprintf("http://%s:%s", authzAlias, os.Getenv("AUTHZ_PORT")),
			"AUTHZ_CLIENT_ID":         os.Getenv("AUTHZ_CLIENT_ID"),
			"AUTHZ_ADMIN_ROLE":        adminRole(),
			"REDIS_URL":               fmt.Sprintf("redis://%s:6379/0", cacheAlias),
			"LOG_LEVEL":               os.Getenv("LOG_LEVEL"),
			"PORT":                    os.Getenv("PORT"),
		},
		HostConfigModifier: func(hc *container.HostConfig) {
			if !debug {
				return
			}
			hc.PortBindings = nat.PortMap{
				debuggerPort: []nat.PortBinding{{HostIP: "127.0.0.1", HostPort: "2345"}},
			}
			hc.CapAdd = []string{"SYS_PTRACE"}
			hc.SecurityOpt = []string{"apparmor:unconfined"}
		},
		WaitingFor: waitFor,
		Networks:   []string{networkName},
	}
	if debug {
		req.Entrypoint = []string{
			"/usr/local/bin/dlv", "--listen=:2345", "--headless=true",
			"--api-version=2", "--accept-multiclient", "exec", "./materialsdb",
		}
	}

	found, err := imageExists(ctx, serverImage)
	if err != nil {
		return fmt.Errorf("check image %s: %w", serverImage, err)
	}
	if found {
		logMessage(t, "Image %s exists, reusing...", serverImage)
		req.Image = serverImage
	} else {
		logMessage(t, "Image %s does not exist, building...", serverImage)
		if req.FromDockerfile, err = buildServerImage(ctx, stack, debug); err != nil {
			return err
		}
	}

	stack.Server, err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	return err
}

// buildServerImage builds the builder stage, then returns the runtime stage
// build for the server request. The runtime image is kept for reuse.
func buildServerImage(ctx context.Context, stack *Stack, debug bool) (testcontainers.FromDockerfile, error) {
	sessionID := uuid.NewString()
	args := map[string]*string{"RESOURCE_REAPER_SESSION_ID": &sessionID}
	if debug {
		flag := "true"
		args["DEBUG"] = &flag
	}

	buildContext := os.Getenv("TESTCONTAINERS_BUILD_CONTEXT")
	if buildContext == "" {
		buildContext = "../.."
	}

	stage := func(repo, tag, target string, keep bool) testcontainers.FromDockerfile {
		return testcontainers.FromDockerfile{
			Context:    buildContext,
			Dockerfile: "Dockerfile",
			Repo:       repo,
			Tag:        tag,
			KeepImage:  keep,
			BuildArgs:  args,
			BuildOptionsModifier: func(opts *build.ImageBuildOptions) {
				opts.Target = target
			},
			PrintBuildLog: true,
		}
	}

	builder, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			FromDockerfile: stage("materialsdb-test-builder", "latest", "builder", false),
		},
		Started: false,
	})
	if err != nil {
		return testcontainers.FromDockerfile{}, fmt.Errorf("build materialsdb-test-builder: %w", err)
	}
	stack.Builder = builder

	repo, tag, _ := strings.Cut(serverImage, ":")
	return stage(repo, tag, "runtime", true), nil
}

func endpoint(ctx context.Context, c testcontainers.Container, port, scheme string) (string, error) {
	if c == nil {
		return "", errors.New("container not started")
	}
	host, err := c.Host(ctx)
	if err != nil {
		return "", err
	}
	mapped, err := c.MappedPort(ctx, nat.Port(port+"/tcp"))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s://%s:%s", scheme, host, mapped.Port()), nil
}

func imageExists(ctx context.Context, name string) (bool, error) {
	cli, err := client.NewClientWithOpts(client.FromEnv, client.WithAPIVersionNegotiation())
	if err != nil {
		return false, err
	}
	defer cli.Close()

	images, err := cli.ImageList(ctx, image.ListOptions{})
	if err != nil {
		return false, err
	}
	for _, img := range images {
		for _, tag := range img.RepoTags {
			if tag == name {
				return true, nil
			}
		}
	}
	return false, nil
}

func logMessage(t *testing.T, format string, args ...any) {
	if t != nil {
		t.Helper()
		t.Logf(format, args...)
	} else {
		fmt.Printf(format+"\n", args...)
	}
}
