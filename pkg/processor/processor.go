// Package processor implements the stream processing pipeline: claimed
// event batches run through the four detectors in parallel, scores are
// fused, reports persisted and published, and actor baselines updated.
package processor

import (
	"context"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/detect"
	"github.com/forgewatch/forgewatch/pkg/github"
	"github.com/forgewatch/forgewatch/pkg/metrics"
	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/profile"
	"github.com/forgewatch/forgewatch/pkg/queue"
)

// laneCount is the number of serial processing lanes per batch. Events
// sharded to the same lane (by actor) run strictly in order; lanes run
// concurrently.
const laneCount = 8

// prefilterMinSamples and prefilterShare gate the low-priority
// fast-reject: an established actor doing what it always does is not
// worth a full detector fan-out.
const (
	prefilterMinSamples = 50
	prefilterShare      = 0.20
)

// ProfileStore is the baseline read-modify-write surface the processor
// needs. *profile.Store satisfies it.
type ProfileStore interface {
	GetUser(ctx context.Context, login string) (*profile.User, error)
	GetRepo(ctx context.Context, name string) (*profile.Repo, error)
	UpsertUser(ctx context.Context, login string, features []float64, eventType string, ts time.Time) (*profile.User, error)
	TouchRepo(ctx context.Context, name string, ts time.Time) (*profile.Repo, error)
	UpdateRepoCriticality(ctx context.Context, r *profile.Repo) error
}

// Sink persists detection output. Writes must be idempotent on event id.
type Sink interface {
	PersistReport(ctx context.Context, report *models.AnomalyReport) error
	PersistPatterns(ctx context.Context, ev models.Event, patterns []detect.Pattern) error
}

// Publisher delivers reports and per-batch stats to subscribers.
type Publisher interface {
	PublishAnomaly(ctx context.Context, report *models.AnomalyReport) error
	PublishStats(ctx context.Context, stats *models.ProcessingStats) error
}

// Summarizer enriches a report with a human-readable summary.
type Summarizer interface {
	Summarize(ctx context.Context, report *models.AnomalyReport) (string, error)
}

// RepoMetadataFetcher fetches repository metadata for criticality
// refreshes. *github.Client satisfies it.
type RepoMetadataFetcher interface {
	GetRepository(ctx context.Context, fullName string) (*github.RepoMetadata, error)
}

// Processor runs claimed batches through the detection pipeline. It
// implements queue.BatchProcessor.
type Processor struct {
	cfg      *config.DetectionConfig
	profiles ProfileStore
	windows  *detect.WindowIndex
	sink     Sink
	pub      Publisher

	behavioral detect.Detector
	temporal   detect.Detector
	content    detect.Detector
	contextual detect.Detector
	fuser      *detect.Fuser

	// Optional collaborators; nil disables the feature.
	summarizer Summarizer
	repoAPI    RepoMetadataFetcher

	logger *slog.Logger
}

// Option configures optional processor collaborators.
type Option func(*Processor)

// WithSummarizer enables AI summary enrichment for high and critical
// reports.
func WithSummarizer(s Summarizer) Option {
	return func(p *Processor) { p.summarizer = s }
}

// WithRepoMetadata enables repository criticality refreshes from the
// upstream API.
func WithRepoMetadata(f RepoMetadataFetcher) Option {
	return func(p *Processor) { p.repoAPI = f }
}

// New creates a stream processor.
func New(cfg *config.DetectionConfig, profiles ProfileStore, sink Sink, pub Publisher, opts ...Option) *Processor {
	p := &Processor{
		cfg:        cfg,
		profiles:   profiles,
		windows:    detect.NewWindowIndex(),
		sink:       sink,
		pub:        pub,
		behavioral: detect.NewBehavioralDetector(cfg),
		temporal:   detect.NewTemporalDetector(cfg),
		content:    detect.NewContentDetector(cfg),
		contextual: detect.NewContextualDetector(cfg),
		fuser:      detect.NewFuser(cfg),
		logger:     slog.With("component", "processor"),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Process runs one claimed batch end to end and reports per-event
// dispositions to the worker.
func (p *Processor) Process(ctx context.Context, batch []*ent.GitHubEvent) *queue.BatchResult {
	start := time.Now()
	result := &queue.BatchResult{}
	stats := &models.ProcessingStats{
		BatchSize:         len(batch),
		DroppedByPriority: metrics.Drops.Drain(),
		Timestamp:         start.UTC(),
	}

	events := make([]models.Event, 0, len(batch))
	for _, row := range batch {
		events = append(events, eventFromRow(row))
	}

	// Shard into per-actor lanes: same actor is strictly serial so
	// profile updates observe events in order; distinct actors run
	// concurrently.
	lanes := make([][]models.Event, laneCount)
	for _, ev := range events {
		lane := laneFor(ev.Actor.Login)
		lanes[lane] = append(lanes[lane], ev)
	}

	var (
		mu sync.Mutex
		wg sync.WaitGroup
	)
	for _, lane := range lanes {
		if len(lane) == 0 {
			continue
		}
		wg.Add(1)
		go func(lane []models.Event) {
			defer wg.Done()
			for _, ev := range lane {
				if ctx.Err() != nil {
					return
				}
				out := p.processEvent(ctx, ev)

				mu.Lock()
				if out.failed {
					result.Failed = append(result.Failed, ev.ID)
				} else {
					result.Processed = append(result.Processed, ev.ID)
					stats.EventsProcessed++
				}
				if out.reported {
					stats.AnomaliesDetected++
				}
				stats.DetectorTimeouts += out.timeouts
				mu.Unlock()
			}
		}(lane)
	}
	wg.Wait()

	stats.ProcessingMillis = time.Since(start).Milliseconds()
	metrics.BatchDuration.Observe(time.Since(start).Seconds())
	metrics.EventsProcessed.Add(float64(stats.EventsProcessed))

	if err := p.pub.PublishStats(ctx, stats); err != nil {
		p.logger.Warn("Failed to publish processing stats", "error", err)
	}
	return result
}

// eventOutcome summarizes one event's trip through the pipeline.
type eventOutcome struct {
	failed   bool
	reported bool
	timeouts int
}

func (p *Processor) processEvent(ctx context.Context, ev models.Event) eventOutcome {
	ctx, cancel := context.WithTimeout(ctx, p.cfg.EventTimeout)
	defer cancel()

	log := p.logger.With("event_id", ev.ID, "actor", ev.Actor.Login)

	// The sliding window index sees every event, including prefiltered
	// ones; the temporal detector needs the full picture.
	p.windows.Observe(ev)

	user, err := p.profiles.GetUser(ctx, ev.Actor.Login)
	if err != nil {
		log.Error("Failed to load user profile", "error", err)
		return eventOutcome{failed: true}
	}

	if p.prefilter(ev, user) {
		p.updateProfiles(ctx, ev, detect.ExtractFeatures(p.windows, ev.Actor.Login, ev.Timestamp), log)
		return eventOutcome{}
	}

	repo, err := p.loadRepo(ctx, ev, log)
	if err != nil {
		log.Error("Failed to load repository profile", "error", err)
		return eventOutcome{failed: true}
	}

	features := detect.ExtractFeatures(p.windows, ev.Actor.Login, ev.Timestamp)
	in := &detect.Input{
		Event:    ev,
		User:     user,
		Repo:     repo,
		Features: features,
		Windows:  p.windows,
	}

	results, timeouts := p.runDetectors(ctx, in)
	fusion := p.fuser.Fuse(
		results[detect.NameBehavioral].Score,
		results[detect.NameTemporal].Score,
		results[detect.NameContent].Score,
		results[detect.NameContextual].Score,
	)

	out := eventOutcome{timeouts: timeouts}

	if fusion.Final >= p.cfg.ReportFloor {
		report := buildReport(ev, results, fusion)
		p.enrich(ctx, report)

		if err := p.sink.PersistReport(ctx, report); err != nil {
			log.Error("Failed to persist anomaly report", "error", err)
			return eventOutcome{failed: true, timeouts: timeouts}
		}
		metrics.AnomaliesDetected.WithLabelValues(string(report.SeverityLevel)).Inc()
		out.reported = true

		if err := p.pub.PublishAnomaly(ctx, report); err != nil {
			// Publishing is best-effort: the report is already durable.
			log.Warn("Failed to publish anomaly report", "error", err)
		}
	}

	if patterns := results[detect.NameTemporal].Patterns; len(patterns) > 0 {
		if err := p.sink.PersistPatterns(ctx, ev, patterns); err != nil {
			log.Warn("Failed to persist temporal patterns", "error", err)
		}
	}

	p.updateProfiles(ctx, ev, features, log)
	return out
}

// prefilter rejects trivially-normal low-priority events from full
// scoring: an established profile doing one of its frequent event types.
// High and medium priority events are never prefiltered.
func (p *Processor) prefilter(ev models.Event, user *profile.User) bool {
	if ev.Priority != models.PriorityLow || user == nil {
		return false
	}
	if user.SampleCount < prefilterMinSamples {
		return false
	}
	var total int64
	for _, n := range user.EventTypeCounts {
		total += n
	}
	if total == 0 {
		return false
	}
	share := float64(user.EventTypeCounts[ev.Type]) / float64(total)
	return share >= prefilterShare
}

// loadRepo returns the repository baseline, refreshing cached
// criticality from the upstream API when stale.
func (p *Processor) loadRepo(ctx context.Context, ev models.Event, log *slog.Logger) (*profile.Repo, error) {
	repo, err := p.profiles.GetRepo(ctx, ev.Repository.FullName)
	if err != nil {
		return nil, err
	}
	if p.repoAPI == nil {
		return repo, nil
	}
	if repo != nil && repo.CriticalityFresh(ev.Timestamp, p.cfg.CriticalityCacheTTL) {
		return repo, nil
	}

	meta, err := p.repoAPI.GetRepository(ctx, ev.Repository.FullName)
	if err != nil || meta == nil {
		// Stale criticality beats no score at all.
		if err != nil {
			log.Debug("Repository metadata fetch failed", "error", err)
		}
		return repo, nil
	}

	if repo == nil {
		repo = profile.NewRepo(ev.Repository.FullName, ev.Timestamp)
	}
	repo.Stars = meta.Stars
	repo.Forks = meta.Forks
	repo.HasSecurityPolicy = meta.HasSecurityPolicy()
	repo.Criticality = detect.CriticalityFeatures(repo, ev.Timestamp)[0]
	repo.CriticalityUpdatedAt = ev.Timestamp

	if err := p.profiles.UpdateRepoCriticality(ctx, repo); err != nil {
		log.Warn("Failed to persist repository criticality", "error", err)
	}
	return repo, nil
}

// runDetectors fans out to the four detectors concurrently, each bounded
// by the per-detector deadline. A timed-out or panicked detector
// contributes a degraded zero-score result; the event continues.
func (p *Processor) runDetectors(ctx context.Context, in *detect.Input) (map[string]detect.Result, int) {
	detectors := []detect.Detector{p.behavioral, p.temporal, p.content, p.contextual}

	var (
		mu       sync.Mutex
		wg       sync.WaitGroup
		timeouts int
	)
	results := make(map[string]detect.Result, len(detectors))

	for _, d := range detectors {
		wg.Add(1)
		go func(d detect.Detector) {
			defer wg.Done()

			dctx, cancel := context.WithTimeout(ctx, p.cfg.DetectorTimeout)
			defer cancel()

			done := make(chan detect.Result, 1)
			go func() {
				defer func() {
					if r := recover(); r != nil {
						p.logger.Error("Detector panicked",
							"detector", d.Name(), "panic", r)
						done <- detect.DegradedResult("panic")
					}
				}()
				done <- d.Detect(dctx, in)
			}()

			var res detect.Result
			select {
			case res = <-done:
			case <-dctx.Done():
				res = detect.DegradedResult("timeout")
				metrics.DetectorTimeouts.WithLabelValues(d.Name()).Inc()
				mu.Lock()
				timeouts++
				mu.Unlock()
			}

			mu.Lock()
			results[d.Name()] = res
			mu.Unlock()
		}(d)
	}
	wg.Wait()

	return results, timeouts
}

// enrich attaches an AI summary to high and critical reports,
// best-effort.
func (p *Processor) enrich(ctx context.Context, report *models.AnomalyReport) {
	if p.summarizer == nil {
		return
	}
	if report.SeverityLevel != models.SeverityHigh && report.SeverityLevel != models.SeverityCritical {
		return
	}
	summary, err := p.summarizer.Summarize(ctx, report)
	if err != nil {
		p.logger.Debug("Summary enrichment failed",
			"event_id", report.EventID, "error", err)
		return
	}
	report.AISummary = summary
}

// updateProfiles applies the post-detection EWMA step. Profile update
// failures are logged, not fatal: the detection output already stands.
func (p *Processor) updateProfiles(ctx context.Context, ev models.Event, features []float64, log *slog.Logger) {
	if _, err := p.profiles.UpsertUser(ctx, ev.Actor.Login, features, ev.Type, ev.Timestamp); err != nil {
		log.Warn("Failed to update user profile", "error", err)
	}
	if _, err := p.profiles.TouchRepo(ctx, ev.Repository.FullName, ev.Timestamp); err != nil {
		log.Warn("Failed to update repository profile", "error", err)
	}
}

func laneFor(login string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(login))
	return int(h.Sum32() % laneCount)
}

func eventFromRow(row *ent.GitHubEvent) models.Event {
	return models.Event{
		ID:         row.ID,
		Type:       row.EventType,
		Actor:      models.Actor{ID: row.ActorID, Login: row.ActorLogin},
		Repository: models.Repository{ID: row.RepoID, FullName: row.RepoName},
		Timestamp:  row.EventCreatedAt,
		Payload:    row.Payload,
		Priority:   models.Priority(row.Priority),
	}
}
