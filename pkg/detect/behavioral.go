package detect

import (
	"context"
	"math"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/profile"
)

// BehavioralDetector scores per-actor deviations from the EWMA baseline:
// per-dimension z-scores once the profile is warm, a multivariate
// Mahalanobis test once enough history exists, and tiered heuristics
// for cold profiles.
type BehavioralDetector struct {
	cfg *config.DetectionConfig

	// chi-square critical value at df=FeatureDim for the multivariate
	// test, precomputed.
	mvnCritical float64
}

// NewBehavioralDetector creates a behavioral detector.
func NewBehavioralDetector(cfg *config.DetectionConfig) *BehavioralDetector {
	chi := distuv.ChiSquared{K: float64(profile.FeatureDim)}
	return &BehavioralDetector{
		cfg:         cfg,
		mvnCritical: chi.Quantile(1 - cfg.ChiSquareP),
	}
}

func (d *BehavioralDetector) Name() string { return NameBehavioral }

// Detect scores the event's feature vector against the actor baseline.
func (d *BehavioralDetector) Detect(_ context.Context, in *Input) Result {
	x := in.Features

	if in.User == nil || in.User.SampleCount < int64(d.cfg.WarmupSamples) {
		return d.coldPath(x)
	}
	return d.warmPath(in.User, x)
}

func (d *BehavioralDetector) warmPath(u *profile.User, x []float64) Result {
	res := Result{
		Features: x,
		Explanation: map[string]any{
			"path":         "warm",
			"sample_count": u.SampleCount,
		},
	}

	zs := u.ZScores(x)
	for i, z := range zs {
		if math.Abs(z) < d.cfg.ZThreshold {
			continue
		}
		sev := clip((math.Abs(z)-d.cfg.ZThreshold)/5, 0, 1)
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:        "feature_deviation",
			FeatureName: FeatureNames[i],
			Current:     x[i],
			ZScore:      z,
			Severity:    sev,
		})
		if sev > res.Score {
			res.Score = sev
		}
	}

	if u.SampleCount >= int64(d.cfg.MahalanobisSamples) {
		if d2, ok := u.Mahalanobis(x, d.cfg.MahalanobisSamples); ok {
			res.Explanation["mahalanobis_d2"] = d2
			if d2 > d.mvnCritical {
				sev := clip((d2-d.mvnCritical)/d.mvnCritical, 0, 1)
				res.Anomalies = append(res.Anomalies, Anomaly{
					Type:     "multivariate_outlier",
					Current:  d2,
					Severity: sev,
				})
				if sev > res.Score {
					res.Score = sev
				}
			}
		}
	}

	return res
}

// coldPath applies tiered heuristics while the baseline is still
// warming up. Quiet accounts score 0; only raw volume and degenerate
// type distributions flag.
func (d *BehavioralDetector) coldPath(x []float64) Result {
	res := Result{
		Features:    x,
		Explanation: map[string]any{"path": "cold"},
	}

	eph := x[FeatEventsPerHour]
	var volumeSev float64
	switch {
	case eph >= 100:
		volumeSev = 0.9
	case eph >= 50:
		volumeSev = 0.7
	case eph >= 20:
		volumeSev = 0.5
	}
	if volumeSev > 0 {
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:        "high_volume_new_actor",
			FeatureName: FeatureNames[FeatEventsPerHour],
			Current:     eph,
			Severity:    volumeSev,
		})
	}

	var monotonySev float64
	if x[FeatEventTypeEntropy] == 0 && eph >= 10 {
		monotonySev = 0.6
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:        "single_type_flood",
			FeatureName: FeatureNames[FeatEventTypeEntropy],
			Current:     eph,
			Severity:    monotonySev,
		})
	}

	res.Score = math.Max(volumeSev, monotonySev)
	return res
}
