// Package database provides *database.Client constructors for tests.
package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/database"
	"github.com/forgewatch/forgewatch/test/util"
)

// NewTestClient returns a client backed by a per-test schema. Schema
// drop and connection close are registered by SetupTestDatabase.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	entClient, db := util.SetupTestDatabase(t)

	// The GIN indexes live outside the ent schema definition, so apply
	// them here the same way production migrations do.
	drv := entsql.OpenDB(dialect.Postgres, db)
	require.NoError(t, database.CreateGINIndexes(ctx, drv))

	return database.NewClientFromEnt(entClient, db)
}
