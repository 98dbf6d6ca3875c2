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

func contextualInput(repo *profile.Repo) *Input {
	return &Input{
		Event: models.Event{
			ID:         "evt-ctx",
			Type:       models.TypePush,
			Timestamp:  time.Now().UTC(),
			Actor:      models.Actor{ID: 1, Login: "octocat"},
			Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		},
		Repo: repo,
	}
}

func TestContextualUnknownRepoScoresZero(t *testing.T) {
	d := NewContextualDetector(config.DefaultDetectionConfig())

	res := d.Detect(context.Background(), contextualInput(nil))

	assert.Zero(t, res.Score)
	assert.Equal(t, "low", res.Explanation["level"])
	require.Len(t, res.Features, 9)
}

func TestContextualHighProfileRepo(t *testing.T) {
	d := NewContextualDetector(config.DefaultDetectionConfig())
	repo := &profile.Repo{
		Name:                "octo-org/widgets",
		Stars:               80000,
		Forks:               9000,
		ContributorEstimate: 800,
		EventsPerHour:       120,
		HasSecurityPolicy:   true,
		ProtectedBranches:   5,
		FirstSeen:           time.Now().UTC().AddDate(-4, 0, 0),
	}

	res := d.Detect(context.Background(), contextualInput(repo))

	assert.Greater(t, res.Score, 0.6)
	assert.LessOrEqual(t, res.Score, 1.0)
	assert.Contains(t, []string{"high", "critical"}, res.Explanation["level"])
}

func TestContextualScoreOrdering(t *testing.T) {
	now := time.Now().UTC()
	small := &profile.Repo{Name: "a/b", Stars: 3, EventsPerHour: 0.1, FirstSeen: now.AddDate(-1, 0, 0)}
	big := &profile.Repo{
		Name: "c/d", Stars: 50000, Forks: 4000, ContributorEstimate: 500,
		EventsPerHour: 80, HasSecurityPolicy: true, ProtectedBranches: 3,
		FirstSeen: now.AddDate(-1, 0, 0),
	}

	smallScore := CriticalityFeatures(small, now)[0]
	bigScore := CriticalityFeatures(big, now)[0]
	assert.Greater(t, bigScore, smallScore)
}

func TestCriticalityFeaturesBounded(t *testing.T) {
	now := time.Now().UTC()
	repo := &profile.Repo{
		Name: "x/y", Stars: 1 << 30, Forks: 1 << 30, ContributorEstimate: 1e9,
		EventsPerHour: 1e6, HasSecurityPolicy: true, ProtectedBranches: 1000,
		FirstSeen: now, // zero age maximizes momentum
	}

	f := CriticalityFeatures(repo, now)
	require.Len(t, f, 9)
	for i, v := range f {
		assert.GreaterOrEqual(t, v, 0.0, "feature %d", i)
		assert.LessOrEqual(t, v, 1.0, "feature %d", i)
	}
}

func TestCriticalityLevels(t *testing.T) {
	assert.Equal(t, "low", criticalityLevel(0.39))
	assert.Equal(t, "medium", criticalityLevel(0.4))
	assert.Equal(t, "high", criticalityLevel(0.6))
	assert.Equal(t, "critical", criticalityLevel(0.8))
}
