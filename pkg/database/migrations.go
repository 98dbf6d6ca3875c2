package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates GIN indexes for PostgreSQL that the Ent schema
// cannot express. These enable containment queries on the high-risk
// indicator lists and full-text search on AI summaries.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_anomaly_records_indicators_gin
		ON anomaly_records USING gin(high_risk_indicators)`)
	if err != nil {
		return fmt.Errorf("failed to create high_risk_indicators GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_anomaly_records_summary_gin
		ON anomaly_records USING gin(to_tsvector('english', COALESCE(ai_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create ai_summary GIN index: %w", err)
	}

	return nil
}
