package detect

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/profile"
)

func simpleEvent(id, login, repo string, ts time.Time) models.Event {
	return models.Event{
		ID:         id,
		Type:       models.TypePush,
		Actor:      models.Actor{ID: 1, Login: login},
		Repository: models.Repository{ID: 7, FullName: repo},
		Timestamp:  ts,
		Priority:   models.PriorityHigh,
	}
}

// Twelve pushes from one actor inside 90 seconds: burst severity 0.75.
func TestTemporalBurst(t *testing.T) {
	d := NewTemporalDetector(config.DefaultDetectionConfig())
	w := NewWindowIndex()
	start := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)

	var last models.Event
	for i := 0; i < 12; i++ {
		repo := "octo-org/alpha"
		if i%2 == 1 {
			repo = "octo-org/beta"
		}
		ts := start.Add(time.Duration(i*90/11) * time.Second)
		last = simpleEvent(fmt.Sprintf("e%d", i), "burster", repo, ts)
		w.Observe(last)
	}

	res := d.Detect(context.Background(), &Input{Event: last, Windows: w})

	var burst *Anomaly
	for i := range res.Anomalies {
		if res.Anomalies[i].Type == PatternBurst {
			burst = &res.Anomalies[i]
		}
	}
	require.NotNil(t, burst, "burst must fire")
	// 12 events over 90s = 8/min → clip((8-2)/8) = 0.75.
	assert.InDelta(t, 0.75, burst.Severity, 0.02)
	assert.GreaterOrEqual(t, res.Score, 0.7)

	require.NotEmpty(t, res.Patterns)
	assert.Equal(t, PatternBurst, res.Patterns[0].Type)
	assert.Equal(t, 12, res.Patterns[0].EventCount)
}

// Five actors, three events each, same repo, inside eight minutes:
// coordination severity 0.5.
func TestTemporalCoordination(t *testing.T) {
	d := NewTemporalDetector(config.DefaultDetectionConfig())
	w := NewWindowIndex()
	start := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)

	var last models.Event
	id := 0
	for actor := 0; actor < 5; actor++ {
		for i := 0; i < 3; i++ {
			id++
			ts := start.Add(time.Duration(id*30) * time.Second)
			last = simpleEvent(fmt.Sprintf("e%d", id), fmt.Sprintf("actor-%d", actor), "octo-org/target", ts)
			w.Observe(last)
		}
	}

	res := d.Detect(context.Background(), &Input{Event: last, Windows: w})

	var coord *Anomaly
	for i := range res.Anomalies {
		if res.Anomalies[i].Type == PatternCoordination {
			coord = &res.Anomalies[i]
		}
	}
	require.NotNil(t, coord, "coordination must fire")
	assert.InDelta(t, 0.5, coord.Severity, 1e-9) // 5 actors / 10

	var pattern *Pattern
	for i := range res.Patterns {
		if res.Patterns[i].Type == PatternCoordination {
			pattern = &res.Patterns[i]
		}
	}
	require.NotNil(t, pattern)
	assert.Equal(t, 5, pattern.ActorCount)
	assert.Equal(t, 15, pattern.EventCount)
}

func TestTemporalQuietActor(t *testing.T) {
	d := NewTemporalDetector(config.DefaultDetectionConfig())
	w := NewWindowIndex()

	ev := simpleEvent("e1", "quiet", "octo-org/calm", time.Now().UTC())
	w.Observe(ev)

	res := d.Detect(context.Background(), &Input{Event: ev, Windows: w})
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Anomalies)
}

func TestTemporalUnusualTiming(t *testing.T) {
	d := NewTemporalDetector(config.DefaultDetectionConfig())
	w := NewWindowIndex()

	// Profile with all activity in one hour bin: extreme concentration.
	u := profile.NewUser("nightowl", time.Time{})
	u.HourCounts = make([]float64, 24)
	u.HourCounts[3] = 200

	ev := simpleEvent("e1", "nightowl", "octo-org/widgets", time.Now().UTC())
	w.Observe(ev)

	res := d.Detect(context.Background(), &Input{Event: ev, User: u, Windows: w})

	var timing *Anomaly
	for i := range res.Anomalies {
		if res.Anomalies[i].Type == "unusual_timing" {
			timing = &res.Anomalies[i]
		}
	}
	require.NotNil(t, timing, "timing anomaly must fire")
	assert.InDelta(t, 1.0, timing.Severity, 1e-9, "p is astronomically small, severity saturates")
}

func TestTemporalTimingNeedsMass(t *testing.T) {
	// Sparse histograms must not fire the chi-square test.
	counts := make([]float64, 24)
	counts[3] = 10
	_, ok := hourChiSquareP(counts)
	assert.False(t, ok)
}

func TestHourChiSquareUniform(t *testing.T) {
	counts := make([]float64, 24)
	for i := range counts {
		counts[i] = 10
	}
	p, ok := hourChiSquareP(counts)
	require.True(t, ok)
	assert.InDelta(t, 1.0, p, 1e-9, "perfectly uniform activity is unremarkable")
}

func TestTemporalVelocityAcceleration(t *testing.T) {
	d := NewTemporalDetector(config.DefaultDetectionConfig())
	w := NewWindowIndex()
	start := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)

	// Previous 5-minute window: 3 events (0.6/min). Current window: 9
	// events (1.8/min) — 3x acceleration with both rates above 0.5/min,
	// but below the burst threshold's reach.
	id := 0
	add := func(ts time.Time) models.Event {
		id++
		ev := simpleEvent(fmt.Sprintf("e%d", id), "accel", fmt.Sprintf("octo-org/r%d", id), ts)
		w.Observe(ev)
		return ev
	}

	for i := 0; i < 3; i++ {
		add(start.Add(time.Duration(i) * time.Minute))
	}
	var last models.Event
	for i := 0; i < 9; i++ {
		last = add(start.Add(5*time.Minute + time.Duration(i*30)*time.Second))
	}

	res := d.Detect(context.Background(), &Input{Event: last, Windows: w})

	var accel bool
	for _, a := range res.Anomalies {
		if a.Type == "velocity_acceleration" {
			accel = true
			assert.InDelta(t, 0.6, a.Severity, 1e-9)
		}
	}
	assert.True(t, accel, "acceleration must fire")
}
