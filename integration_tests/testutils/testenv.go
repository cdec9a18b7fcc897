package testutils

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/Black-And-White-Club/trivia-bot/app/database"
	"github.com/Black-And-White-Club/trivia-bot/app/eventbus"
	"github.com/Black-And-White-Club/trivia-bot/integration_tests/containers"
	"github.com/testcontainers/testcontainers-go"
	tcnats "github.com/testcontainers/testcontainers-go/modules/nats"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/uptrace/bun"
)

// TestEnvironment holds the containers and connections shared by the tests
// of one package.
type TestEnvironment struct {
	Ctx           context.Context
	PgContainer   *postgres.PostgresContainer
	NatsContainer *tcnats.NATSContainer
	DSN           string
	NatsURL       string
	DB            *bun.DB
	Logger        *slog.Logger
}

var (
	envOnce   sync.Once
	sharedEnv *TestEnvironment
	envErr    error
)

// Env returns the package-wide environment, starting the containers on first
// use. Tests are skipped in -short mode and when Docker is unavailable.
func Env(t *testing.T) *TestEnvironment {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	envOnce.Do(func() {
		sharedEnv, envErr = newTestEnvironment(context.Background())
	})
	if envErr != nil {
		t.Fatalf("failed to set up test environment: %v", envErr)
	}
	return sharedEnv
}

// RunMain runs the package's tests and tears the environment down after.
func RunMain(m *testing.M) {
	code := m.Run()
	if sharedEnv != nil {
		sharedEnv.Cleanup()
	}
	os.Exit(code)
}

func newTestEnvironment(ctx context.Context) (*TestEnvironment, error) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	if os.Getenv("INTEGRATION_LOGS") != "" {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}

	pgContainer, dsn, err := containers.SetupPostgresContainer(ctx)
	if err != nil {
		return nil, err
	}
	natsContainer, natsURL, err := containers.SetupNatsContainer(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	env := &TestEnvironment{
		Ctx:           ctx,
		PgContainer:   pgContainer,
		NatsContainer: natsContainer,
		DSN:           dsn,
		NatsURL:       natsURL,
		Logger:        logger,
	}

	db, err := database.Open(ctx, dsn, logger)
	if err != nil {
		env.Cleanup()
		return nil, err
	}
	env.DB = db

	if err := database.MigrateAll(ctx, db, logger); err != nil {
		env.Cleanup()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	return env, nil
}

// ResetDatabase empties every table the service writes to.
func (env *TestEnvironment) ResetDatabase(t *testing.T) {
	t.Helper()
	_, err := env.DB.ExecContext(env.Ctx,
		"TRUNCATE TABLE trivia_player_stats, trivia_guild_configs")
	if err != nil {
		t.Fatalf("failed to truncate tables: %v", err)
	}
}

// NewEventBus connects a bus to the test NATS server with the streams in
// place. It is closed when the test ends.
func (env *TestEnvironment) NewEventBus(t *testing.T) *eventbus.EventBus {
	t.Helper()
	ctx, cancel := context.WithTimeout(env.Ctx, 30*time.Second)
	defer cancel()

	bus, err := eventbus.NewEventBus(ctx, env.NatsURL, env.Logger)
	if err != nil {
		t.Fatalf("failed to create event bus: %v", err)
	}
	if err := bus.EnsureStreams(ctx); err != nil {
		_ = bus.Close()
		t.Fatalf("failed to ensure streams: %v", err)
	}
	t.Cleanup(func() { _ = bus.Close() })
	return bus
}

// Cleanup closes connections and terminates the containers.
func (env *TestEnvironment) Cleanup() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if env.DB != nil {
		_ = env.DB.Close()
	}
	if env.NatsContainer != nil {
		_ = env.NatsContainer.Terminate(ctx)
	}
	if env.PgContainer != nil {
		_ = env.PgContainer.Terminate(ctx)
	}
}
