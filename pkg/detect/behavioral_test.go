package detect

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/profile"
)

func behavioralInput(u *profile.User, features []float64) *Input {
	return &Input{
		Event: models.Event{
			ID:         "evt-1",
			Type:       models.TypePush,
			Actor:      models.Actor{ID: 1, Login: "octocat"},
			Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
			Timestamp:  time.Now().UTC(),
		},
		User:     u,
		Features: features,
		Windows:  NewWindowIndex(),
	}
}

func featuresWith(idx int, v float64) []float64 {
	x := make([]float64, profile.FeatureDim)
	x[idx] = v
	return x
}

func TestBehavioralColdPath(t *testing.T) {
	d := NewBehavioralDetector(config.DefaultDetectionConfig())
	ctx := context.Background()

	t.Run("quiet new actor scores zero", func(t *testing.T) {
		res := d.Detect(ctx, behavioralInput(nil, featuresWith(FeatEventsPerHour, 1)))
		assert.Zero(t, res.Score)
		assert.Empty(t, res.Anomalies)
		assert.Equal(t, "cold", res.Explanation["path"])
	})

	t.Run("volume tiers", func(t *testing.T) {
		tests := []struct {
			eph      float64
			expected float64
		}{
			{19, 0}, {20, 0.5}, {50, 0.7}, {100, 0.9}, {500, 0.9},
		}
		for _, tt := range tests {
			// A mixed event stream, so only the volume heuristic fires
			// and the single-type monotony score stays out of the max.
			x := featuresWith(FeatEventsPerHour, tt.eph)
			x[FeatEventTypeEntropy] = 1.5
			res := d.Detect(ctx, behavioralInput(nil, x))
			assert.InDelta(t, tt.expected, res.Score, 1e-9, "events_per_hour=%v", tt.eph)
		}
	})

	t.Run("single type flood", func(t *testing.T) {
		x := featuresWith(FeatEventsPerHour, 12)
		x[FeatEventTypeEntropy] = 0
		res := d.Detect(ctx, behavioralInput(nil, x))
		assert.InDelta(t, 0.6, res.Score, 1e-9)
	})

	t.Run("warming profile still cold below threshold", func(t *testing.T) {
		u := profile.NewUser("octocat", time.Now().UTC())
		for i := 0; i < 5; i++ {
			u.Update(featuresWith(FeatEventsPerHour, 2), 0.05, 100)
		}
		res := d.Detect(ctx, behavioralInput(u, featuresWith(FeatEventsPerHour, 3)))
		assert.Equal(t, "cold", res.Explanation["path"])
	})
}

func TestBehavioralWarmPath(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	d := NewBehavioralDetector(cfg)
	ctx := context.Background()

	u := profile.NewUser("octocat", time.Now().UTC())
	u.Mean = make([]float64, profile.FeatureDim)
	u.Variance = make([]float64, profile.FeatureDim)
	for i := range u.Mean {
		u.Mean[i] = 5
		u.Variance[i] = 1
	}
	u.SampleCount = 20 // warm but below the multivariate threshold

	t.Run("within three sigma is quiet", func(t *testing.T) {
		x := make([]float64, profile.FeatureDim)
		for i := range x {
			x[i] = 7 // z = 2
		}
		res := d.Detect(ctx, behavioralInput(u, x))
		assert.Zero(t, res.Score)
		assert.Equal(t, "warm", res.Explanation["path"])
	})

	t.Run("deviation flags with severity", func(t *testing.T) {
		x := make([]float64, profile.FeatureDim)
		for i := range x {
			x[i] = 5
		}
		x[FeatEventsPerHour] = 13 // z = 8 → severity (8-3)/5 = 1.0

		res := d.Detect(ctx, behavioralInput(u, x))
		require.Len(t, res.Anomalies, 1)
		a := res.Anomalies[0]
		assert.Equal(t, "feature_deviation", a.Type)
		assert.Equal(t, "events_per_hour", a.FeatureName)
		assert.InDelta(t, 8, a.ZScore, 1e-9)
		assert.InDelta(t, 1.0, a.Severity, 1e-9)
		assert.InDelta(t, 1.0, res.Score, 1e-9)
	})

	t.Run("severity scales with z", func(t *testing.T) {
		x := make([]float64, profile.FeatureDim)
		for i := range x {
			x[i] = 5
		}
		x[FeatEventsPerHour] = 9 // z = 4 → severity (4-3)/5 = 0.2

		res := d.Detect(ctx, behavioralInput(u, x))
		require.Len(t, res.Anomalies, 1)
		assert.InDelta(t, 0.2, res.Score, 1e-9)
	})
}

func TestBehavioralMultivariate(t *testing.T) {
	cfg := config.DefaultDetectionConfig()
	d := NewBehavioralDetector(cfg)
	ctx := context.Background()

	u := profile.NewUser("octocat", time.Now().UTC())
	for i := 0; i < 60; i++ {
		x := make([]float64, profile.FeatureDim)
		for dim := range x {
			x[dim] = float64((i*7+dim*3)%11) / 10
		}
		u.Update(x, 0.05, 100)
	}

	// An observation consistent with history stays quiet on the
	// multivariate test.
	res := d.Detect(ctx, behavioralInput(u, append([]float64(nil), u.Mean...)))
	assert.Contains(t, res.Explanation, "mahalanobis_d2")
	for _, a := range res.Anomalies {
		assert.NotEqual(t, "multivariate_outlier", a.Type)
	}

	// A wildly inconsistent one trips it.
	far := make([]float64, profile.FeatureDim)
	for i := range far {
		far[i] = 1000
	}
	res = d.Detect(ctx, behavioralInput(u, far))
	var tripped bool
	for _, a := range res.Anomalies {
		if a.Type == "multivariate_outlier" {
			tripped = true
			assert.Greater(t, a.Severity, 0.0)
		}
	}
	assert.True(t, tripped)
}
