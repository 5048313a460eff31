package integration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"

	_ "github.com/lib/pq"
)

func setupPQ(t *testing.T) *sql.DB {
	t.Helper()

	var db *sql.DB
	setupDatabase(t, func(dsn string) error {
		var err error
		db, err = sql.Open("postgres", dsn)
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		return db.PingContext(ctx)
	})
	t.Cleanup(func() {
		db.Close()
	})

	return db
}

func setupPGX(t *testing.T) *pgxpool.Pool {
	t.Helper()

	var db *pgxpool.Pool
	setupDatabase(t, func(dsn string) error {
		ctx, cancel := context.WithTimeout(context.Background(), 12*time.Second)
		defer cancel()
		var err error
		db, err = pgxpool.New(ctx, dsn)
		if err != nil {
			return err
		}
		return db.Ping(ctx)
	})
	t.Cleanup(func() {
		db.Close() //nolint:errcheck
	})

	return db
}

// setupDatabase connects to LOGIC2SQL_TEST_DSN when it is set, otherwise it
// starts a throwaway PostgreSQL container.
func setupDatabase(t *testing.T, connect func(string) error) {
	t.Helper()

	if dsn := os.Getenv("LOGIC2SQL_TEST_DSN"); dsn != "" {
		if err := connect(dsn); err != nil {
			t.Fatalf("Could not connect to %s: %s", dsn, err)
		}
		return
	}

	pool, err := dockertest.NewPool("")
	if err != nil {
		t.Fatalf("Could not construct pool: %s", err)
	}

	err = pool.Client.Ping()
	if err != nil {
		t.Fatalf("Could not connect to Docker: %s", err)
	}
	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_PASSWORD=test",
			"POSTGRES_USER=test",
			"POSTGRES_DB=test",
			"listen_addresses='*'",
			"fsync='off'",
			"full_page_writes='off'",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		t.Fatalf("Could not start resource: %s", err)
	}
	resource.Expire(120) //nolint:errcheck

	dsn := fmt.Sprintf("postgres://test:test@%s/test?sslmode=disable", resource.GetHostPort("5432/tcp"))

	pool.MaxWait = 120 * time.Second
	if err = pool.Retry(func() error {
		return connect(dsn)
	}); err != nil {
		t.Fatalf("Could not connect to docker: %s", err)
	}

	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Fatalf("Could not purge resource: %s", err)
		}
	})
}

// createPlayersTable (re)creates a players table with 10 players.
func createPlayersTable(t *testing.T, exec func(query string) error) {
	t.Helper()

	if err := exec(`DROP TABLE IF EXISTS players;`); err != nil {
		t.Fatal(err)
	}
	if err := exec(`
		CREATE TABLE players (
			"id" serial PRIMARY KEY,
			"name" text,
			"level" int,
			"class" text,
			"mount" text,
			"guild_id" int,
			"home_guild_id" int
		);
	`); err != nil {
		t.Fatal(err)
	}
	if err := exec(`
		INSERT INTO players
			("id", "name",    "level", "class",   "mount",   "guild_id", "home_guild_id") VALUES
			(1,    'Alice',   10,      'warrior', 'horse',   20,         20),
			(2,    'Bob',     20,      'mage',    'horse',   20,         10),
			(3,    'Charlie', 30,      'rogue',   NULL,      30,         30),
			(4,    'David',   40,      'warrior', NULL,      30,         40),
			(5,    'Eve',     50,      'mage',    'griffon', 40,         40),
			(6,    'Frank',   60,      'rogue',   'griffon', 40,         50),
			(7,    'Grace',   70,      'warrior', 'dragon',  50,         50),
			(8,    'Hank',    80,      'mage',    'dragon',  50,         60),
			(9,    'Ivy',     90,      'rogue',   'phoenix', 60,         60),
			(10,   'Jack',    100,     'warrior', 'phoenix', 60,         60);
	`); err != nil {
		t.Fatal(err)
	}
}
