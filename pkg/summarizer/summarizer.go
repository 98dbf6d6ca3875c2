package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/forgewatch/forgewatch/pkg/models"
)

// cacheSize bounds the summary cache. Keys are coarse (actor, repo,
// method, severity), so the working set stays small.
const cacheSize = 1024

const systemPrompt = "You are a security analyst reviewing anomalous " +
	"activity on a public code hosting platform. Summarize the anomaly " +
	"in two or three plain sentences for an on-call engineer: what " +
	"happened, why it was flagged, and how urgent it looks. Do not " +
	"speculate beyond the provided signals."

// completionClient is the slice of Client the service consumes.
type completionClient interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Service produces summaries for high-severity reports, caching by
// anomaly shape so a burst of similar reports costs one API call.
type Service struct {
	client  completionClient
	timeout time.Duration
	cache   *expirable.LRU[string, string]
	logger  *slog.Logger
}

// New creates a summarizer service. cacheTTL bounds how long a cached
// summary is reused for similar anomalies.
func New(client completionClient, timeout, cacheTTL time.Duration) *Service {
	return &Service{
		client:  client,
		timeout: timeout,
		cache:   expirable.NewLRU[string, string](cacheSize, nil, cacheTTL),
		logger:  slog.With("component", "summarizer"),
	}
}

// Summarize returns a short natural-language summary of the report.
// Similar anomalies (same actor, repository, primary method, and
// severity) reuse the cached summary until the TTL expires.
func (s *Service) Summarize(ctx context.Context, report *models.AnomalyReport) (string, error) {
	key := cacheKey(report)
	if cached, ok := s.cache.Get(key); ok {
		return cached, nil
	}

	reqCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	summary, err := s.client.Complete(reqCtx, systemPrompt, buildPrompt(report))
	if err != nil {
		return "", fmt.Errorf("summarize %s: %w", report.EventID, err)
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return "", fmt.Errorf("summarize %s: empty completion", report.EventID)
	}

	s.cache.Add(key, summary)
	return summary, nil
}

func cacheKey(report *models.AnomalyReport) string {
	return strings.Join([]string{
		report.UserLogin,
		report.RepositoryName,
		report.PrimaryMethod,
		string(report.SeverityLevel),
	}, "|")
}

// buildPrompt renders the report's signals. Indicators are already
// redacted secret types, never raw matches.
func buildPrompt(report *models.AnomalyReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Event: %s by %s on %s at %s\n",
		report.EventType, report.UserLogin, report.RepositoryName,
		report.Timestamp.UTC().Format(time.RFC3339))
	fmt.Fprintf(&b, "Severity: %s (final score %.2f, primary signal: %s)\n",
		report.SeverityLevel, report.FinalAnomalyScore, report.PrimaryMethod)
	fmt.Fprintf(&b, "Detector scores: behavioral=%.2f content=%.2f temporal=%.2f criticality=%.2f\n",
		report.BehavioralAnomalyScore, report.ContentRiskScore,
		report.TemporalAnomalyScore, report.RepositoryCriticalityScore)
	if len(report.HighRiskIndicators) > 0 {
		fmt.Fprintf(&b, "High-risk indicators: %s\n", strings.Join(report.HighRiskIndicators, ", "))
	}
	if report.Degraded {
		b.WriteString("Note: one or more detectors timed out; scores are partial.\n")
	}
	return b.String()
}
