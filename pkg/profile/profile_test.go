package profile

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func vec(v float64) []float64 {
	x := make([]float64, FeatureDim)
	for i := range x {
		x[i] = v
	}
	return x
}

func TestUserUpdateEWMA(t *testing.T) {
	u := NewUser("octocat", time.Now().UTC())

	u.Update(vec(10), 0.05, 100)

	// mu' = 0.05*10 + 0.95*0 = 0.5
	assert.InDelta(t, 0.5, u.Mean[0], 1e-9)
	// sigma2' = 0.05*(10-0.5)^2 + 0.95*eps
	assert.InDelta(t, 0.05*9.5*9.5, u.Variance[0], 1e-6)
	assert.Equal(t, int64(1), u.SampleCount)
}

func TestUserUpdateMonotonicity(t *testing.T) {
	u := NewUser("octocat", time.Now().UTC())

	for i := 0; i < 50; i++ {
		before := u.SampleCount
		u.Update(vec(float64(i%5)), 0.05, 100)
		assert.Equal(t, before+1, u.SampleCount)
		for d, v := range u.Variance {
			assert.GreaterOrEqual(t, v, VarianceFloor, "dimension %d", d)
		}
	}
}

func TestUserUpdateVarianceFloor(t *testing.T) {
	u := NewUser("octocat", time.Now().UTC())

	// Identical observations drive variance toward zero; it must stop
	// at the floor.
	for i := 0; i < 500; i++ {
		u.Update(vec(1), 0.05, 100)
	}
	for _, v := range u.Variance {
		assert.GreaterOrEqual(t, v, VarianceFloor)
	}
	for _, z := range u.ZScores(vec(1)) {
		assert.False(t, math.IsNaN(z))
		assert.False(t, math.IsInf(z, 0))
	}
}

func TestUserFeatureHistoryBounded(t *testing.T) {
	u := NewUser("octocat", time.Now().UTC())
	for i := 0; i < 250; i++ {
		u.Update(vec(float64(i)), 0.05, 100)
	}
	assert.Len(t, u.FeatureHistory, 100)
	// Oldest rows dropped, newest kept.
	assert.Equal(t, float64(249), u.FeatureHistory[99][0])
}

func TestUserZScores(t *testing.T) {
	u := NewUser("octocat", time.Now().UTC())
	u.Mean = vec(5)
	u.Variance = vec(4)

	z := u.ZScores(vec(11))
	for _, v := range z {
		assert.InDelta(t, 3.0, v, 1e-9) // (11-5)/2
	}
}

func TestUserMahalanobis(t *testing.T) {
	u := NewUser("octocat", time.Now().UTC())

	// Not enough history yet.
	_, ok := u.Mahalanobis(vec(1), 30)
	assert.False(t, ok)

	// Feed varied observations so covariance is well conditioned.
	for i := 0; i < 60; i++ {
		x := make([]float64, FeatureDim)
		for d := range x {
			x[d] = float64((i*7+d*3)%11) / 10
		}
		u.Update(x, 0.05, 100)
	}

	d2, ok := u.Mahalanobis(u.Mean, 30)
	require.True(t, ok)
	assert.InDelta(t, 0, d2, 1e-6, "distance from the mean itself is zero")

	far, ok := u.Mahalanobis(vec(100), 30)
	require.True(t, ok)
	assert.Greater(t, far, d2)
}

func TestUserObserveHourHistogram(t *testing.T) {
	u := NewUser("octocat", time.Time{})

	ts := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC)
	for i := 0; i < 10; i++ {
		u.Observe("PushEvent", ts.Add(time.Duration(i)*time.Minute), 0.05)
	}

	counts, total := u.HourDistribution()
	assert.Greater(t, counts[2], 9.0, "all activity lands in the 02:00 bin")
	assert.InDelta(t, counts[2], total, 1e-9)
	assert.Equal(t, int64(10), u.EventTypeCounts["PushEvent"])
}

func TestRepoTouch(t *testing.T) {
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	r := NewRepo("octo-org/widgets", start)
	assert.Zero(t, r.EventsPerHour)

	// One event every 6 minutes is 10/hour; the EWMA crawls toward it.
	ts := start
	for i := 0; i < 100; i++ {
		ts = ts.Add(6 * time.Minute)
		r.Touch(ts, 0.05)
	}
	assert.Greater(t, r.EventsPerHour, 5.0)
	assert.Less(t, r.EventsPerHour, 11.0)
}

func TestRepoCriticalityFresh(t *testing.T) {
	now := time.Now().UTC()
	r := NewRepo("octo-org/widgets", now)

	assert.False(t, r.CriticalityFresh(now, 2*time.Hour))

	r.CriticalityUpdatedAt = now.Add(-time.Hour)
	assert.True(t, r.CriticalityFresh(now, 2*time.Hour))

	r.CriticalityUpdatedAt = now.Add(-3 * time.Hour)
	assert.False(t, r.CriticalityFresh(now, 2*time.Hour))
}
