package detect

import (
	"context"
	"math"
	"time"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/forgewatch/forgewatch/pkg/config"
)

// Temporal pattern types, also persisted as auxiliary records.
const (
	PatternBurst        = "activity_burst"
	PatternCoordination = "coordinated_activity"
)

// TemporalDetector finds suprathreshold rates, coordinated multi-actor
// activity, unusual hour-of-day distributions, and rate acceleration.
type TemporalDetector struct {
	cfg *config.DetectionConfig
}

// NewTemporalDetector creates a temporal detector.
func NewTemporalDetector(cfg *config.DetectionConfig) *TemporalDetector {
	return &TemporalDetector{cfg: cfg}
}

func (d *TemporalDetector) Name() string { return NameTemporal }

// Detect evaluates the four temporal patterns; the score is the max of
// the emitted severities.
func (d *TemporalDetector) Detect(_ context.Context, in *Input) Result {
	now := in.Event.Timestamp
	actor := in.Event.Actor.Login
	repo := in.Event.Repository.FullName

	res := Result{Explanation: map[string]any{}}

	burstWin := in.Windows.Actor(actor, now, d.cfg.BurstWindow)
	prevWin := in.Windows.Actor(actor, now.Add(-d.cfg.BurstWindow), d.cfg.BurstWindow)

	// Burst: rate over the sliding window containing this event.
	if len(burstWin) >= d.cfg.BurstMinEvents {
		span := now.Sub(burstWin[0].Ts)
		if span < time.Minute {
			span = time.Minute
		}
		rate := float64(len(burstWin)) / span.Minutes()
		if rate >= d.cfg.BurstRateFactor {
			sev := clip((rate-2)/8, 0, 1)
			res.Anomalies = append(res.Anomalies, Anomaly{
				Type:     PatternBurst,
				Current:  rate,
				Severity: sev,
			})
			res.Patterns = append(res.Patterns, Pattern{
				Type:        PatternBurst,
				Severity:    sev,
				EventCount:  len(burstWin),
				ActorCount:  1,
				WindowStart: burstWin[0].Ts,
				WindowEnd:   now,
			})
			res.Score = math.Max(res.Score, sev)
			res.Explanation["burst_rate_per_min"] = rate
		}
	}

	// Coordination: distinct actors converging on one repo.
	events, actors := in.Windows.RepoActivity(repo, now, d.cfg.CoordinationWindow)
	if actors >= d.cfg.CoordinationMinActors && events >= d.cfg.CoordinationMinEvents {
		sev := clip(float64(actors)/10, 0, 1)
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:     PatternCoordination,
			Current:  float64(actors),
			Severity: sev,
		})
		res.Patterns = append(res.Patterns, Pattern{
			Type:        PatternCoordination,
			Severity:    sev,
			EventCount:  events,
			ActorCount:  actors,
			WindowStart: now.Add(-d.cfg.CoordinationWindow),
			WindowEnd:   now,
		})
		res.Score = math.Max(res.Score, sev)
		res.Explanation["coordination_actors"] = actors
		res.Explanation["coordination_events"] = events
	}

	// Unusual timing: chi-square goodness-of-fit of the actor's hour
	// histogram against uniform.
	if in.User != nil {
		if p, ok := hourChiSquareP(in.User.HourCounts); ok && p < d.cfg.ChiSquareP {
			sev := clip(-math.Log10(p)/6, 0, 1)
			res.Anomalies = append(res.Anomalies, Anomaly{
				Type:     "unusual_timing",
				Current:  p,
				Severity: sev,
			})
			res.Score = math.Max(res.Score, sev)
			res.Explanation["timing_p_value"] = p
		}
	}

	// Velocity acceleration: current window rate vs the preceding one.
	curRate := float64(len(burstWin)) / d.cfg.BurstWindow.Minutes()
	prevRate := float64(len(prevWin)) / d.cfg.BurstWindow.Minutes()
	if curRate >= 0.5 && prevRate >= 0.5 && curRate >= 3*prevRate {
		const sev = 0.6
		res.Anomalies = append(res.Anomalies, Anomaly{
			Type:     "velocity_acceleration",
			Current:  curRate,
			Severity: sev,
		})
		res.Score = math.Max(res.Score, sev)
		res.Explanation["acceleration_ratio"] = curRate / prevRate
	}

	res.Features = d.features(in, burstWin, prevWin, actors, now)
	return res
}

// features is the 9-dimension temporal vector included in explanations.
func (d *TemporalDetector) features(in *Input, burstWin, prevWin []Record, actors int, now time.Time) []float64 {
	f := make([]float64, 9)

	repo := in.Event.Repository.FullName
	perRepo := 0
	for _, r := range burstWin {
		if r.Repo == repo {
			perRepo++
		}
	}
	f[0] = float64(perRepo) / d.cfg.BurstWindow.Minutes() // events/min on this (actor, repo)

	if in.User != nil && in.User.WeekRate > 0 {
		f[1] = (f[0] * 60) / in.User.WeekRate // ratio vs 7-day hourly average
	}

	f[2] = burstScore(burstWin, d.cfg.BurstWindow)

	if len(burstWin) > 2 {
		f[3] = interEventRegularity(burstWin)
	}

	f[4] = clip(float64(actors)/10, 0, 1)

	hourWin := in.Windows.Actor(in.Event.Actor.Login, now, time.Hour)
	if len(hourWin) > 0 {
		var off, weekend float64
		for _, r := range hourWin {
			h := r.Ts.UTC().Hour()
			if h < 9 || h >= 18 {
				off++
			}
			switch r.Ts.UTC().Weekday() {
			case time.Saturday, time.Sunday:
				weekend++
			}
		}
		f[5] = off / float64(len(hourWin))
		f[6] = weekend / float64(len(hourWin))
		f[7] = timeConcentration(hourWin)
	}

	prevRate := float64(len(prevWin)) / d.cfg.BurstWindow.Minutes()
	curRate := float64(len(burstWin)) / d.cfg.BurstWindow.Minutes()
	if prevRate > 0 {
		f[8] = curRate / prevRate
	}

	return f
}

// interEventRegularity maps gap variability onto (0,1]: perfectly
// periodic event trains score near 1.
func interEventRegularity(recs []Record) float64 {
	var gaps []float64
	for i := 1; i < len(recs); i++ {
		gaps = append(gaps, recs[i].Ts.Sub(recs[i-1].Ts).Seconds())
	}
	var mean float64
	for _, g := range gaps {
		mean += g
	}
	mean /= float64(len(gaps))
	if mean == 0 {
		return 1
	}
	var variance float64
	for _, g := range gaps {
		variance += (g - mean) * (g - mean)
	}
	variance /= float64(len(gaps))
	cv := math.Sqrt(variance) / mean
	return 1 / (1 + cv)
}

// timeConcentration is the largest single-minute share of the window.
func timeConcentration(recs []Record) float64 {
	buckets := make(map[int64]int)
	for _, r := range recs {
		buckets[r.Ts.Unix()/60]++
	}
	max := 0
	for _, c := range buckets {
		if c > max {
			max = c
		}
	}
	return float64(max) / float64(len(recs))
}

// hourChiSquareP runs a goodness-of-fit test of the 24-bin hour
// histogram against uniform. Requires enough mass for the test to be
// meaningful.
func hourChiSquareP(counts []float64) (float64, bool) {
	if len(counts) != 24 {
		return 0, false
	}
	var total float64
	for _, c := range counts {
		total += c
	}
	if total < 48 { // expected count below 2 per bin: test unreliable
		return 0, false
	}
	expected := total / 24
	var chi2 float64
	for _, c := range counts {
		d := c - expected
		chi2 += d * d / expected
	}
	dist := distuv.ChiSquared{K: 23}
	p := 1 - dist.CDF(chi2)
	if p < 1e-300 {
		p = 1e-300
	}
	return p, true
}
