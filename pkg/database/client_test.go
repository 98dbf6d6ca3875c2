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
	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

// newTestClient creates a test database client with CI/local environment detection.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
func newTestClient(t *testing.T) *Client {
	ctx := context.Background()

	ciDatabaseURL := os.Getenv("CI_DATABASE_URL")

	var connStr string

	if ciDatabaseURL != "" {
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

		var err2 error
		connStr, err2 = pgContainer.ConnectionString(ctx, "sslmode=disable")
		require.NoError(t, err2)
	}

	db, err := stdsql.Open("pgx", connStr)
	require.NoError(t, err)

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)

	drv := entsql.OpenDB(dialect.Postgres, db)
	entClient := ent.NewClient(ent.Driver(drv))

	// Auto-migration for tests instead of the embedded SQL migrations.
	err = entClient.Schema.Create(ctx)
	require.NoError(t, err)

	err = CreateGINIndexes(ctx, drv)
	require.NoError(t, err)

	client := NewClientFromEnt(entClient, db)

	t.Cleanup(func() {
		client.Close()
	})

	return client
}

func TestDatabaseClient_ConnectionPool(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	err := client.DB().PingContext(ctx)
	require.NoError(t, err)

	health, err := Health(ctx, client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", health.Status)
	assert.Greater(t, health.MaxOpenConns, 0)
}

func TestGithubEvent_QueueRoundTrip(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	_, err := client.GitHubEvent.Create().
		SetID("4100000001").
		SetEventType("PushEvent").
		SetActorLogin("octocat").
		SetActorID(42).
		SetRepoName("octo-org/widgets").
		SetRepoID(7).
		SetEventCreatedAt(time.Now().UTC()).
		SetPayload(json.RawMessage(`{"ref":"refs/heads/main","size":1}`)).
		SetPriority(githubevent.PriorityHigh).
		Save(ctx)
	require.NoError(t, err)

	// Duplicate insert hits the primary key.
	_, err = client.GitHubEvent.Create().
		SetID("4100000001").
		SetEventType("PushEvent").
		SetActorLogin("octocat").
		SetActorID(42).
		SetRepoName("octo-org/widgets").
		SetRepoID(7).
		SetEventCreatedAt(time.Now().UTC()).
		Save(ctx)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	got, err := client.GitHubEvent.Get(ctx, "4100000001")
	require.NoError(t, err)
	assert.Equal(t, githubevent.StatusPending, got.Status)
	assert.Equal(t, githubevent.PriorityHigh, got.Priority)
}

func TestAnomalyRecord_UniqueEventID(t *testing.T) {
	client := newTestClient(t)
	ctx := context.Background()

	create := func() error {
		_, err := client.AnomalyRecord.Create().
			SetEventID("evt-1").
			SetRepositoryName("octo-org/widgets").
			SetUserLogin("octocat").
			SetEventType("PushEvent").
			SetEventTimestamp(time.Now().UTC()).
			SetBehavioralAnomalyScore(0.7).
			SetContentRiskScore(0.9).
			SetTemporalAnomalyScore(0.1).
			SetRepositoryCriticalityScore(0.5).
			SetFinalAnomalyScore(0.72).
			SetSeverityLevel(anomalyrecord.SeverityLevelHigh).
			SetPrimaryMethod("content").
			SetHighRiskIndicators([]string{"secret:aws_access_key"}).
			Save(ctx)
		return err
	}

	require.NoError(t, create())

	err := create()
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	n, err := client.AnomalyRecord.Query().
		Where(anomalyrecord.EventID("evt-1")).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
}
