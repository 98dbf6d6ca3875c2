package pubsub

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/forgewatch/forgewatch/pkg/models"
)

// Publisher broadcasts detection output for WebSocket delivery.
// Anomaly reports are stored in the stream_events table then broadcast
// via NOTIFY; per-batch stats are broadcast via NOTIFY only.
type Publisher struct {
	db *sql.DB
}

// NewPublisher creates a publisher. The db parameter should be the
// *sql.DB from database.Client.DB().
func NewPublisher(db *sql.DB) *Publisher {
	return &Publisher{db: db}
}

// anomalyMessage is the wire envelope for an anomaly report.
type anomalyMessage struct {
	Type string `json:"type"`
	*models.AnomalyReport
}

// statsMessage is the wire envelope for per-batch processing stats.
type statsMessage struct {
	Type string `json:"type"`
	*models.ProcessingStats
}

// PublishAnomaly persists the report envelope to the anomalies channel
// and fans out transient copies to the severity, actor, and repository
// channels so filtered subscribers receive it without client-side
// filtering. The fan-out is best-effort: a failed filtered notify does
// not undo the persistent publish. Returns the first error encountered.
func (p *Publisher) PublishAnomaly(ctx context.Context, report *models.AnomalyReport) error {
	payloadJSON, err := json.Marshal(anomalyMessage{Type: MessageTypeAnomaly, AnomalyReport: report})
	if err != nil {
		return fmt.Errorf("failed to marshal anomaly message: %w", err)
	}

	var firstErr error
	if err := p.persistAndNotify(ctx, ChannelAnomalies, payloadJSON); err != nil {
		slog.Warn("Failed to publish anomaly to main channel",
			"event_id", report.EventID, "error", err)
		firstErr = err
	}

	filtered := []string{
		SeverityChannel(string(report.SeverityLevel)),
		UserChannel(report.UserLogin),
		RepoChannel(report.RepositoryName),
	}
	for _, channel := range filtered {
		if err := p.notifyOnly(ctx, channel, payloadJSON); err != nil {
			slog.Warn("Failed to publish anomaly to filtered channel",
				"event_id", report.EventID, "channel", channel, "error", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	return firstErr
}

// PublishStats broadcasts a processing.stats transient message (no DB
// persistence). Stats are superseded by the next batch, so missed ones
// are not worth a catchup.
func (p *Publisher) PublishStats(ctx context.Context, stats *models.ProcessingStats) error {
	payloadJSON, err := json.Marshal(statsMessage{Type: MessageTypeStats, ProcessingStats: stats})
	if err != nil {
		return fmt.Errorf("failed to marshal stats message: %w", err)
	}
	return p.notifyOnly(ctx, ChannelStats, payloadJSON)
}

// persistAndNotify stores a pre-marshaled message in stream_events and
// broadcasts it via NOTIFY in a single transaction. pg_notify is
// transactional, so the notification is held until COMMIT and never
// fires for a row that was rolled back.
func (p *Publisher) persistAndNotify(ctx context.Context, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var streamID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO stream_events (channel, payload, created_at) VALUES ($1, $2, $3) RETURNING id`,
		channel, payloadJSON, time.Now(),
	).Scan(&streamID)
	if err != nil {
		return fmt.Errorf("failed to persist stream event: %w", err)
	}

	notifyPayload, err := injectStreamIDAndTruncate(payloadJSON, streamID)
	if err != nil {
		return err
	}

	if _, err := tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit stream event: %w", err)
	}
	return nil
}

// notifyOnly broadcasts a pre-marshaled message via NOTIFY without persisting.
func (p *Publisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	if _, err := p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload); err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// injectStreamIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit. Subscribers track db_event_id as their catchup
// position.
func injectStreamIDAndTruncate(payloadJSON []byte, streamID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = streamID

	enriched, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}
	return truncateIfNeeded(string(enriched))
}

// truncateIfNeeded returns the payload as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise a minimal truncation
// envelope with only routing fields. Reports with large analysis blobs
// or AI summaries can exceed the limit; the client fetches the full
// record over REST using event_id.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload extracts the routing fields a client needs to
// fetch the complete record and re-marshals them with a truncated flag.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type      string `json:"type"`
		EventID   string `json:"event_id"`
		Severity  string `json:"severity_level"`
		DBEventID *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":           routing.Type,
		"event_id":       routing.EventID,
		"severity_level": routing.Severity,
		"truncated":      true,
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
