package processor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/detect"
	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/profile"
)

// fakeProfiles is an in-memory ProfileStore recording update order.
type fakeProfiles struct {
	mu      sync.Mutex
	users   map[string]*profile.User
	repos   map[string]*profile.Repo
	upserts []time.Time
}

func newFakeProfiles() *fakeProfiles {
	return &fakeProfiles{
		users: map[string]*profile.User{},
		repos: map[string]*profile.Repo{},
	}
}

func (f *fakeProfiles) GetUser(_ context.Context, login string) (*profile.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.users[login], nil
}

func (f *fakeProfiles) GetRepo(_ context.Context, name string) (*profile.Repo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.repos[name], nil
}

func (f *fakeProfiles) UpsertUser(_ context.Context, login string, features []float64, eventType string, ts time.Time) (*profile.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u := f.users[login]
	if u == nil {
		u = profile.NewUser(login, ts)
		f.users[login] = u
	}
	u.Update(features, 0.05, 100)
	u.Observe(eventType, ts, 0.05)
	f.upserts = append(f.upserts, ts)
	return u, nil
}

func (f *fakeProfiles) TouchRepo(_ context.Context, name string, ts time.Time) (*profile.Repo, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	r := f.repos[name]
	if r == nil {
		r = profile.NewRepo(name, ts)
		f.repos[name] = r
	}
	r.Touch(ts, 0.05)
	return r, nil
}

func (f *fakeProfiles) UpdateRepoCriticality(_ context.Context, r *profile.Repo) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.repos[r.Name] = r
	return nil
}

// fakeSink collects persisted reports and patterns.
type fakeSink struct {
	mu       sync.Mutex
	reports  []*models.AnomalyReport
	patterns []detect.Pattern
}

func (f *fakeSink) PersistReport(_ context.Context, report *models.AnomalyReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakeSink) PersistPatterns(_ context.Context, _ models.Event, patterns []detect.Pattern) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.patterns = append(f.patterns, patterns...)
	return nil
}

// fakePublisher collects published reports and stats.
type fakePublisher struct {
	mu      sync.Mutex
	reports []*models.AnomalyReport
	stats   []*models.ProcessingStats
}

func (f *fakePublisher) PublishAnomaly(_ context.Context, report *models.AnomalyReport) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.reports = append(f.reports, report)
	return nil
}

func (f *fakePublisher) PublishStats(_ context.Context, stats *models.ProcessingStats) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.stats = append(f.stats, stats)
	return nil
}

type fakeSummarizer struct {
	mu    sync.Mutex
	calls int
}

func (f *fakeSummarizer) Summarize(_ context.Context, report *models.AnomalyReport) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = f.calls + 1
	return "summary for " + report.EventID, nil
}

// stubDetector returns a fixed result, optionally after a delay.
type stubDetector struct {
	name  string
	res   detect.Result
	delay time.Duration
}

func (s *stubDetector) Name() string { return s.name }

func (s *stubDetector) Detect(ctx context.Context, _ *detect.Input) detect.Result {
	if s.delay > 0 {
		select {
		case <-time.After(s.delay):
		case <-ctx.Done():
		}
	}
	return s.res
}

func row(id, eventType, login, repo string, ts time.Time, priority githubevent.Priority, payload json.RawMessage) *ent.GitHubEvent {
	return &ent.GitHubEvent{
		ID:             id,
		EventType:      eventType,
		ActorLogin:     login,
		ActorID:        1,
		RepoName:       repo,
		RepoID:         7,
		EventCreatedAt: ts,
		Payload:        payload,
		Priority:       priority,
		Status:         githubevent.StatusInProgress,
	}
}

func newTestProcessor(t *testing.T, opts ...Option) (*Processor, *fakeProfiles, *fakeSink, *fakePublisher) {
	t.Helper()
	profiles := newFakeProfiles()
	sink := &fakeSink{}
	pub := &fakePublisher{}
	p := New(config.DefaultDetectionConfig(), profiles, sink, pub, opts...)
	return p, profiles, sink, pub
}

func TestProcessorReportsSecretPush(t *testing.T) {
	p, _, sink, pub := newTestProcessor(t)

	payload, err := json.Marshal(models.PushPayload{
		Ref: "refs/heads/main",
		Commits: []models.PushCommit{
			{SHA: "abcdef1234567890", Message: "oops " + "AKIA" + strings.Repeat("A", 16)},
		},
	})
	require.NoError(t, err)

	ts := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)
	batch := []*ent.GitHubEvent{
		row("e1", models.TypePush, "octocat", "octo-org/widgets", ts, githubevent.PriorityHigh, payload),
	}

	result := p.Process(context.Background(), batch)
	require.NotNil(t, result)
	assert.Equal(t, []string{"e1"}, result.Processed)
	assert.Empty(t, result.Failed)

	require.Len(t, sink.reports, 1)
	report := sink.reports[0]
	assert.Equal(t, "e1", report.EventID)
	assert.InDelta(t, 0.9, report.ContentRiskScore, 1e-9)
	assert.Equal(t, detect.NameContent, report.PrimaryMethod)
	assert.Contains(t, report.HighRiskIndicators, "secret:aws_access_key")
	// 0.35 * 0.9 with no criticality boost.
	assert.InDelta(t, 0.315, report.FinalAnomalyScore, 1e-9)
	assert.Equal(t, models.SeverityLow, report.SeverityLevel)

	require.Len(t, pub.reports, 1)
	require.Len(t, pub.stats, 1)
	assert.Equal(t, 1, pub.stats[0].EventsProcessed)
	assert.Equal(t, 1, pub.stats[0].AnomaliesDetected)
	assert.Equal(t, 1, pub.stats[0].BatchSize)
}

func TestProcessorQuietEventNoReport(t *testing.T) {
	p, _, sink, pub := newTestProcessor(t)

	batch := []*ent.GitHubEvent{
		row("e1", models.TypeWatch, "octocat", "octo-org/widgets",
			time.Now().UTC(), githubevent.PriorityLow, nil),
	}

	result := p.Process(context.Background(), batch)
	assert.Equal(t, []string{"e1"}, result.Processed)
	assert.Empty(t, sink.reports)

	require.Len(t, pub.stats, 1)
	assert.Zero(t, pub.stats[0].AnomaliesDetected)
}

func TestProcessorPrefilterSkipsFrequentLowPriority(t *testing.T) {
	p, profiles, sink, _ := newTestProcessor(t)

	// Established actor that mostly watches.
	u := profile.NewUser("octocat", time.Now().UTC().Add(-time.Hour))
	u.SampleCount = 100
	u.EventTypeCounts = map[string]int64{models.TypeWatch: 80, models.TypePush: 20}
	profiles.users["octocat"] = u

	batch := []*ent.GitHubEvent{
		row("e1", models.TypeWatch, "octocat", "octo-org/widgets",
			time.Now().UTC(), githubevent.PriorityLow, nil),
	}

	result := p.Process(context.Background(), batch)
	assert.Equal(t, []string{"e1"}, result.Processed)
	assert.Empty(t, sink.reports)

	// The profile still advances: the prefilter skips detectors, not
	// the baseline update.
	assert.Len(t, profiles.upserts, 1)
	assert.Equal(t, int64(101), u.SampleCount)
}

func TestProcessorPrefilterNeverSkipsHighPriority(t *testing.T) {
	p, profiles, _, _ := newTestProcessor(t)

	u := profile.NewUser("octocat", time.Now().UTC().Add(-time.Hour))
	u.SampleCount = 100
	u.EventTypeCounts = map[string]int64{models.TypePush: 100}
	profiles.users["octocat"] = u

	ev := models.Event{
		ID:       "e1",
		Type:     models.TypePush,
		Priority: models.PriorityHigh,
	}
	assert.False(t, p.prefilter(ev, u))

	ev.Priority = models.PriorityLow
	assert.True(t, p.prefilter(ev, u))
}

func TestProcessorSameActorSerial(t *testing.T) {
	p, profiles, _, _ := newTestProcessor(t)

	base := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)
	batch := make([]*ent.GitHubEvent, 10)
	for i := range batch {
		batch[i] = row(fmt.Sprintf("e%d", i), models.TypePush, "octocat", "octo-org/widgets",
			base.Add(time.Duration(i)*time.Second), githubevent.PriorityHigh, nil)
	}

	result := p.Process(context.Background(), batch)
	assert.Len(t, result.Processed, 10)

	// Profile updates for one actor happen in event order.
	require.Len(t, profiles.upserts, 10)
	for i := 1; i < len(profiles.upserts); i++ {
		assert.True(t, profiles.upserts[i].After(profiles.upserts[i-1]),
			"update %d out of order", i)
	}
}

func TestProcessorDetectorTimeout(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	cfg.DetectorTimeout = 20 * time.Millisecond

	profiles := newFakeProfiles()
	sink := &fakeSink{}
	pub := &fakePublisher{}
	p := New(cfg, profiles, sink, pub)
	p.behavioral = &stubDetector{name: detect.NameBehavioral, delay: time.Second, res: detect.Result{Score: 1}}

	batch := []*ent.GitHubEvent{
		row("e1", models.TypePush, "octocat", "octo-org/widgets",
			time.Now().UTC(), githubevent.PriorityHigh, nil),
	}

	result := p.Process(context.Background(), batch)
	assert.Equal(t, []string{"e1"}, result.Processed)

	require.Len(t, pub.stats, 1)
	assert.Equal(t, 1, pub.stats[0].DetectorTimeouts)
	// The timed-out detector contributed zero: no report from its score.
	assert.Empty(t, sink.reports)
}

func TestProcessorSummarizesHighSeverity(t *testing.T) {
	summarizer := &fakeSummarizer{}
	p, _, sink, _ := newTestProcessor(t, WithSummarizer(summarizer))
	p.behavioral = &stubDetector{name: detect.NameBehavioral, res: detect.Result{Score: 1}}
	p.temporal = &stubDetector{name: detect.NameTemporal, res: detect.Result{Score: 1}}
	p.content = &stubDetector{name: detect.NameContent, res: detect.Result{Score: 1}}

	batch := []*ent.GitHubEvent{
		row("e1", models.TypePush, "octocat", "octo-org/widgets",
			time.Now().UTC(), githubevent.PriorityHigh, nil),
	}

	p.Process(context.Background(), batch)

	require.Len(t, sink.reports, 1)
	assert.Equal(t, models.SeverityCritical, sink.reports[0].SeverityLevel)
	assert.Equal(t, "summary for e1", sink.reports[0].AISummary)
	assert.Equal(t, 1, summarizer.calls)
}

func TestProcessorPersistsBurstPatterns(t *testing.T) {
	p, _, sink, _ := newTestProcessor(t)

	base := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)
	batch := make([]*ent.GitHubEvent, 12)
	for i := range batch {
		batch[i] = row(fmt.Sprintf("e%d", i), models.TypePush, "burster", "octo-org/widgets",
			base.Add(time.Duration(i*8)*time.Second), githubevent.PriorityHigh, nil)
	}

	p.Process(context.Background(), batch)

	var burst bool
	for _, pat := range sink.patterns {
		if pat.Type == detect.PatternBurst {
			burst = true
		}
	}
	assert.True(t, burst, "burst pattern persisted")
}
