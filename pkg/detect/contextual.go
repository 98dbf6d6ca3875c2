package detect

import (
	"context"
	"math"
	"time"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/profile"
)

// criticality feature weights, summing to 1.
const (
	wStars       = 0.25
	wForks       = 0.15
	wContrib     = 0.10
	wActivity    = 0.15
	wSecurity    = 0.10
	wProtected   = 0.10
	wDependency  = 0.05
	wMomentum    = 0.10
)

// ContextualDetector turns repository criticality into the fusion
// multiplier. Its score is not an anomaly signal: it weights how much a
// given anomaly matters.
type ContextualDetector struct {
	cfg *config.DetectionConfig
}

// NewContextualDetector creates a contextual detector.
func NewContextualDetector(cfg *config.DetectionConfig) *ContextualDetector {
	return &ContextualDetector{cfg: cfg}
}

func (d *ContextualDetector) Name() string { return NameContextual }

// Detect reports the repository's cached criticality and its feature
// breakdown. Unknown repositories score near zero.
func (d *ContextualDetector) Detect(_ context.Context, in *Input) Result {
	features := CriticalityFeatures(in.Repo, in.Event.Timestamp)
	score := clip(features[0], 0, 1)

	return Result{
		Score:    score,
		Features: features,
		Explanation: map[string]any{
			"criticality": score,
			"level":       criticalityLevel(score),
		},
	}
}

// CriticalityFeatures computes the 9-dimension contextual vector.
// Index 0 is the criticality score itself; the rest are its inputs.
func CriticalityFeatures(r *profile.Repo, now time.Time) []float64 {
	f := make([]float64, 9)
	if r == nil {
		return f
	}

	starsNorm := clip(math.Log10(1+float64(r.Stars))/5, 0, 1)
	forksNorm := clip(math.Log10(1+float64(r.Forks))/4, 0, 1)
	contribNorm := clip(math.Log10(1+r.ContributorEstimate)/3, 0, 1)
	activityNorm := clip(r.EventsPerHour/100, 0, 1)
	securityBit := 0.0
	if r.HasSecurityPolicy {
		securityBit = 1
	}
	protectedNorm := clip(float64(r.ProtectedBranches)/5, 0, 1)

	// Dependency-risk proxy: popular and active repositories have more
	// downstream consumers.
	depRisk := clip((starsNorm+activityNorm)/2, 0, 1)

	// Popularity momentum: activity rate relative to repository age.
	ageDays := now.Sub(r.FirstSeen).Hours() / 24
	momentum := clip(r.EventsPerHour/(1+ageDays), 0, 1)

	criticality := wStars*starsNorm +
		wForks*forksNorm +
		wContrib*contribNorm +
		wActivity*activityNorm +
		wSecurity*securityBit +
		wProtected*protectedNorm +
		wDependency*depRisk +
		wMomentum*momentum

	f[0] = clip(criticality, 0, 1)
	f[1] = starsNorm
	f[2] = forksNorm
	f[3] = contribNorm
	f[4] = activityNorm
	f[5] = securityBit
	f[6] = protectedNorm
	f[7] = depRisk
	f[8] = momentum
	return f
}

func criticalityLevel(score float64) string {
	switch {
	case score >= 0.8:
		return "critical"
	case score >= 0.6:
		return "high"
	case score >= 0.4:
		return "medium"
	default:
		return "low"
	}
}
