package database

import (
	"context"
	stdsql "database/sql"
	"encoding/json"
	"os"
	"testing"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/meridianhealth/intake/ent"
)

// newTestClient creates a test database client with CI/local environment
// detection. In CI (when CI_DATABASE_URL is set) it connects to an external
// PostgreSQL service container; locally it spins up a testcontainer.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	var connStr string
	if ciDatabaseURL := os.Getenv("CI_DATABASE_URL"); ciDatabaseURL != "" {
		t.Log("Using external PostgreSQL from CI_DATABASE_URL")
		connStr = ciDatabaseURL
	} else {
		t.Log("Using testcontainers for PostgreSQL")
		pgContainer, err := postgres.Run(ctx,
			"postgres:16-alpine",
			postgres.WithDatabase("test"),
			postgres.WithUsername("test"),
			postgres.WithPassword("test"),
			testcontainers.WithWaitStrategy(
				wait.ForLog("database system is ready to accept connections").
					WithOccurrence(2).
					WithStartupTimeout(30*time.Second)),
		)
		require.NoError(t, err)

		t.Cleanup(func() {
			if err := testcontainers.TerminateContainer(pgContainer); err != nil {
				t.Logf("failed to terminate container: %v", err)
			}
		})

		connStr, err = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests; production runs the embedded SQL migrations.
	require.NoError(t, entClient.Schema.Create(ctx))
	require.NoError(t, CreateJSONIndexes(ctx, drv))

	client := NewClientFromEnt(entClient, db)
	t.Cleanup(func() {
		client.Close()
	})
	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	require.NoError(t, client.DB().PingContext(ctx))

	health, err := client.Health(ctx)
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.Pool.MaxOpen, 0)
}

func TestJSONContainmentQueries(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.IntakeSession.Create().
		SetID("sess-1").
		SetSymptomsDetected(map[string]bool{"depression": true, "sleep": true}).
		SetRiskFlags([]map[string]any{{"kind": "high_suicide_risk", "source": "cssrs"}}).
		Save(ctx)
	require.NoError(t, err)

	_, err = client.IntakeSession.Create().
		SetID("sess-2").
		SetSymptomsDetected(map[string]bool{"anxiety": true}).
		Save(ctx)
	require.NoError(t, err)

	// Symptom containment should hit only the first session.
	rows, err := client.DB().QueryContext(ctx,
		`SELECT session_token FROM intake_sessions
		WHERE symptoms_detected @> $1::jsonb`,
		`{"depression": true}`,
	)
	require.NoError(t, err)
	defer rows.Close()

	var tokens []string
	for rows.Next() {
		var token string
		require.NoError(t, rows.Scan(&token))
		tokens = append(tokens, token)
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, []string{"sess-1"}, tokens)

	// Risk-flag triage query across sessions.
	rows2, err := client.DB().QueryContext(ctx,
		`SELECT session_token FROM intake_sessions
		WHERE risk_flags @> $1::jsonb`,
		`[{"kind": "high_suicide_risk"}]`,
	)
	require.NoError(t, err)
	defer rows2.Close()

	tokens = nil
	for rows2.Next() {
		var token string
		require.NoError(t, rows2.Scan(&token))
		tokens = append(tokens, token)
	}
	require.NoError(t, rows2.Err())
	assert.Equal(t, []string{"sess-1"}, tokens)
}

func TestHealthSnapshot(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	health, err := client.Health(ctx)
	require.NoError(t, err)
	require.NotNil(t, health)
	assert.Equal(t, "healthy", health.Status)
	assert.GreaterOrEqual(t, health.PingMS, int64(0))
	assert.Less(t, health.PingMS, int64(1000), "local ping should be fast")
	assert.GreaterOrEqual(t, health.Pool.Open, 1)

	jsonBytes, err := json.Marshal(health)
	require.NoError(t, err)

	var jsonData map[string]any
	require.NoError(t, json.Unmarshal(jsonBytes, &jsonData))

	// Durations serialize in milliseconds, not nanoseconds.
	ping, ok := jsonData["ping_ms"].(float64)
	require.True(t, ok, "ping_ms should be a number")
	assert.Less(t, ping, float64(1000000))

	pool, ok := jsonData["pool"].(map[string]any)
	require.True(t, ok, "pool should be an object")
	waitMS, ok := pool["wait_ms"].(float64)
	require.True(t, ok, "wait_ms should be a number")
	assert.Less(t, waitMS, float64(1000000))
}
