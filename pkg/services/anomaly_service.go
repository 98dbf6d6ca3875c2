package services

import (
	"context"
	"fmt"
	"time"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
	"github.com/forgewatch/forgewatch/pkg/detect"
	"github.com/forgewatch/forgewatch/pkg/models"
)

// AnomalyService persists and queries anomaly records and the auxiliary
// temporal patterns.
type AnomalyService struct {
	client *ent.Client
}

// NewAnomalyService creates a new AnomalyService.
func NewAnomalyService(client *ent.Client) *AnomalyService {
	return &AnomalyService{client: client}
}

// PersistReport stores one anomaly record. Idempotent on event id: a
// replayed event (orphan recovery, requeued batch) hits the unique
// constraint and is treated as already written.
func (s *AnomalyService) PersistReport(ctx context.Context, report *models.AnomalyReport) error {
	create := s.client.AnomalyRecord.Create().
		SetEventID(report.EventID).
		SetRepositoryName(report.RepositoryName).
		SetUserLogin(report.UserLogin).
		SetEventType(report.EventType).
		SetEventTimestamp(report.Timestamp).
		SetBehavioralAnomalyScore(report.BehavioralAnomalyScore).
		SetContentRiskScore(report.ContentRiskScore).
		SetTemporalAnomalyScore(report.TemporalAnomalyScore).
		SetRepositoryCriticalityScore(report.RepositoryCriticalityScore).
		SetFinalAnomalyScore(report.FinalAnomalyScore).
		SetSeverityLevel(anomalyrecord.SeverityLevel(report.SeverityLevel)).
		SetPrimaryMethod(report.PrimaryMethod).
		SetDegraded(report.Degraded).
		SetDetectionTimestamp(report.DetectionTimestamp)

	if len(report.BehavioralAnalysis) > 0 {
		create.SetBehavioralAnalysis(report.BehavioralAnalysis)
	}
	if len(report.ContentAnalysis) > 0 {
		create.SetContentAnalysis(report.ContentAnalysis)
	}
	if len(report.TemporalAnalysis) > 0 {
		create.SetTemporalAnalysis(report.TemporalAnalysis)
	}
	if len(report.RepositoryContext) > 0 {
		create.SetRepositoryContext(report.RepositoryContext)
	}
	if len(report.HighRiskIndicators) > 0 {
		create.SetHighRiskIndicators(report.HighRiskIndicators)
	}
	if report.AISummary != "" {
		create.SetAiSummary(report.AISummary)
	}

	if err := create.Exec(ctx); err != nil {
		if ent.IsConstraintError(err) {
			return nil // already reported for this event
		}
		return fmt.Errorf("failed to persist anomaly record: %w", err)
	}
	return nil
}

// PersistPatterns stores the temporal patterns emitted while processing
// one event.
func (s *AnomalyService) PersistPatterns(ctx context.Context, ev models.Event, patterns []detect.Pattern) error {
	if len(patterns) == 0 {
		return nil
	}

	builders := make([]*ent.TemporalPatternCreate, 0, len(patterns))
	for _, p := range patterns {
		create := s.client.TemporalPattern.Create().
			SetPatternType(temporalpattern.PatternType(p.Type)).
			SetEventID(ev.ID).
			SetRepoName(ev.Repository.FullName).
			SetSeverity(p.Severity).
			SetEventCount(p.EventCount).
			SetActorCount(p.ActorCount).
			SetWindowStart(p.WindowStart).
			SetWindowEnd(p.WindowEnd)
		// Coordination spans multiple actors; no single login applies.
		if p.ActorCount <= 1 {
			create.SetActorLogin(ev.Actor.Login)
		}
		builders = append(builders, create)
	}

	if err := s.client.TemporalPattern.CreateBulk(builders...).Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist temporal patterns: %w", err)
	}
	return nil
}

// AnomalyFilter narrows ListAnomalies. Zero values mean "no filter".
type AnomalyFilter struct {
	Severity string
	User     string
	Repo     string
	Since    time.Time
	Until    time.Time
	Limit    int
	Offset   int
}

// ListAnomalies returns matching records newest first, plus the total
// match count for pagination.
func (s *AnomalyService) ListAnomalies(ctx context.Context, filter AnomalyFilter) ([]*ent.AnomalyRecord, int, error) {
	query := s.client.AnomalyRecord.Query()

	if filter.Severity != "" {
		query.Where(anomalyrecord.SeverityLevelEQ(anomalyrecord.SeverityLevel(filter.Severity)))
	}
	if filter.User != "" {
		query.Where(anomalyrecord.UserLoginEQ(filter.User))
	}
	if filter.Repo != "" {
		query.Where(anomalyrecord.RepositoryNameEQ(filter.Repo))
	}
	if !filter.Since.IsZero() {
		query.Where(anomalyrecord.DetectionTimestampGTE(filter.Since))
	}
	if !filter.Until.IsZero() {
		query.Where(anomalyrecord.DetectionTimestampLT(filter.Until))
	}

	total, err := query.Clone().Count(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count anomaly records: %w", err)
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	records, err := query.
		Order(ent.Desc(anomalyrecord.FieldDetectionTimestamp)).
		Limit(limit).
		Offset(filter.Offset).
		All(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list anomaly records: %w", err)
	}
	return records, total, nil
}

// GetAnomalyByEventID returns the record for one event, or ErrNotFound.
func (s *AnomalyService) GetAnomalyByEventID(ctx context.Context, eventID string) (*ent.AnomalyRecord, error) {
	record, err := s.client.AnomalyRecord.Query().
		Where(anomalyrecord.EventIDEQ(eventID)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("anomaly record %s: %w", eventID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get anomaly record: %w", err)
	}
	return record, nil
}

// AnomalyStats aggregates detection output since a point in time.
type AnomalyStats struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity"`
	ByMethod   map[string]int `json:"by_method"`
	Degraded   int            `json:"degraded"`
}

// GetStats aggregates anomaly counts since the given time.
func (s *AnomalyService) GetStats(ctx context.Context, since time.Time) (*AnomalyStats, error) {
	base := func() *ent.AnomalyRecordQuery {
		q := s.client.AnomalyRecord.Query()
		if !since.IsZero() {
			q.Where(anomalyrecord.DetectionTimestampGTE(since))
		}
		return q
	}

	stats := &AnomalyStats{
		BySeverity: make(map[string]int),
		ByMethod:   make(map[string]int),
	}

	var severityRows []struct {
		SeverityLevel string `json:"severity_level"`
		Count         int    `json:"count"`
	}
	err := base().
		GroupBy(anomalyrecord.FieldSeverityLevel).
		Aggregate(ent.Count()).
		Scan(ctx, &severityRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by severity: %w", err)
	}
	for _, row := range severityRows {
		stats.BySeverity[row.SeverityLevel] = row.Count
		stats.Total += row.Count
	}

	var methodRows []struct {
		PrimaryMethod string `json:"primary_method"`
		Count         int    `json:"count"`
	}
	err = base().
		GroupBy(anomalyrecord.FieldPrimaryMethod).
		Aggregate(ent.Count()).
		Scan(ctx, &methodRows)
	if err != nil {
		return nil, fmt.Errorf("failed to aggregate by method: %w", err)
	}
	for _, row := range methodRows {
		stats.ByMethod[row.PrimaryMethod] = row.Count
	}

	degraded, err := base().Where(anomalyrecord.Degraded(true)).Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count degraded records: %w", err)
	}
	stats.Degraded = degraded

	return stats, nil
}

// CleanupAnomalies deletes records older than the cutoff.
func (s *AnomalyService) CleanupAnomalies(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.AnomalyRecord.Delete().
		Where(anomalyrecord.DetectionTimestampLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup anomaly records: %w", err)
	}
	return count, nil
}

// CleanupPatterns deletes temporal patterns older than the cutoff.
func (s *AnomalyService) CleanupPatterns(ctx context.Context, cutoff time.Time) (int, error) {
	writeCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	count, err := s.client.TemporalPattern.Delete().
		Where(temporalpattern.DetectedAtLT(cutoff)).
		Exec(writeCtx)
	if err != nil {
		return 0, fmt.Errorf("failed to cleanup temporal patterns: %w", err)
	}
	return count, nil
}

// ReportFromRecord converts a stored record back to the wire shape used
// by the API and the publisher.
func ReportFromRecord(rec *ent.AnomalyRecord) *models.AnomalyReport {
	return &models.AnomalyReport{
		EventID:                    rec.EventID,
		RepositoryName:             rec.RepositoryName,
		UserLogin:                  rec.UserLogin,
		EventType:                  rec.EventType,
		Timestamp:                  rec.EventTimestamp,
		BehavioralAnomalyScore:     rec.BehavioralAnomalyScore,
		ContentRiskScore:           rec.ContentRiskScore,
		TemporalAnomalyScore:       rec.TemporalAnomalyScore,
		RepositoryCriticalityScore: rec.RepositoryCriticalityScore,
		FinalAnomalyScore:          rec.FinalAnomalyScore,
		SeverityLevel:              models.Severity(rec.SeverityLevel),
		PrimaryMethod:              rec.PrimaryMethod,
		BehavioralAnalysis:         rec.BehavioralAnalysis,
		ContentAnalysis:            rec.ContentAnalysis,
		TemporalAnalysis:           rec.TemporalAnalysis,
		RepositoryContext:          rec.RepositoryContext,
		HighRiskIndicators:         rec.HighRiskIndicators,
		AISummary:                  rec.AiSummary,
		Degraded:                   rec.Degraded,
		DetectionTimestamp:         rec.DetectionTimestamp,
	}
}
