package postgres_test

import (
	"context"
	"flag"
	"fmt"
	"os"
	"testing"
	"time"

	"tradenomi-backend/pkg/database"

	"github.com/jackc/pgx/v5/pgxpool"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
)

// testPool is nil when no Postgres is reachable; tests then skip.
var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()
	os.Exit(run(m))
}

func run(m *testing.M) int {
	if testing.Short() {
		return m.Run()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		pgC, err := tcpostgres.Run(ctx,
			"postgres:16-alpine",
			tcpostgres.WithDatabase("tradenomi"),
			tcpostgres.WithUsername("tradenomi"),
			tcpostgres.WithPassword("tradenomi"),
			tcpostgres.BasicWaitStrategies(),
		)
		if err != nil {
			fmt.Fprintf(os.Stderr, "postgres container unavailable, skipping integration tests: %v\n", err)
			return m.Run()
		}
		defer func() { _ = pgC.Terminate(context.Background()) }()

		dsn, err = pgC.ConnectionString(ctx, "sslmode=disable")
		if err != nil {
			fmt.Fprintf(os.Stderr, "resolve connection string: %v\n", err)
			return 1
		}
	}

	pool, err := database.NewPostgresConnection(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connect: %v\n", err)
		return 1
	}
	defer pool.Close()

	schema, err := os.ReadFile("testdata/schema.sql")
	if err != nil {
		fmt.Fprintf(os.Stderr, "read schema: %v\n", err)
		return 1
	}
	if _, err := pool.Exec(ctx, string(schema)); err != nil {
		fmt.Fprintf(os.Stderr, "apply schema: %v\n", err)
		return 1
	}

	testPool = pool
	return m.Run()
}

var (
	day1 = time.Date(2018, 1, 1, 10, 0, 0, 0, time.UTC)
	day2 = time.Date(2018, 1, 2, 10, 0, 0, 0, time.UTC)
	// Later than every seeded user.
	aDate = time.Date(2018, 1, 13, 11, 0, 0, 0, time.UTC)
)

// resetStore truncates every table and seeds users 1 and 2.
func resetStore(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testPool == nil {
		t.Skip("no Postgres available")
	}
	ctx := context.Background()

	if _, err := testPool.Exec(ctx, `TRUNCATE contacts, answers, ads, users RESTART IDENTITY CASCADE`); err != nil {
		t.Fatalf("truncate: %v", err)
	}
	insertUser(t, 1, -1, `{"name": "Tradenomi Testinen", "title": "Controller", "domain": "Taloushallinto", "location": "Helsinki"}`,
		`{"email_address": "testinen@example.com"}`, day1)
	insertUser(t, 2, -2, `{"name": "Matti Meikäläinen", "title": "Myyntipäällikkö", "domain": "Kauppa", "location": "Tampere"}`,
		`{"emails_for_new_ads": false, "email_address": "matti@example.com"}`, day2)
	return testPool
}

func insertUser(t *testing.T, id, remoteID int64, data, settings string, modifiedAt time.Time) {
	t.Helper()
	_, err := testPool.Exec(context.Background(),
		`INSERT INTO users (id, remote_id, data, settings, modified_at) VALUES ($1, $2, $3::jsonb, $4::jsonb, $5)`,
		id, remoteID, data, settings, modifiedAt)
	if err != nil {
		t.Fatalf("insert user %d: %v", id, err)
	}
}
