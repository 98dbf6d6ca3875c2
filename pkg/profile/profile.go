// Package profile maintains per-actor and per-repository behavioral
// baselines: EWMA feature statistics, hour-of-day activity histograms,
// and cached repository criticality.
package profile

import (
	"math"
	"time"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"
)

// FeatureDim is the length of the behavioral feature vector.
const FeatureDim = 10

// VarianceFloor keeps variances strictly positive so z-scores stay finite.
const VarianceFloor = 1e-6

// hourDecay ages the hour-of-day histogram so it tracks roughly the
// last week of activity.
const hourDecay = 0.995

// User is the per-actor behavioral baseline.
type User struct {
	Login          string
	Mean           []float64
	Variance       []float64
	SampleCount    int64
	FeatureHistory [][]float64
	HourCounts     []float64 // 24 decayed bins, UTC hour of day
	WeekRate       float64   // EWMA of events per hour
	EventTypeCounts map[string]int64
	FirstSeen      time.Time
	LastUpdated    time.Time

	// Inverse covariance, rebuilt lazily from FeatureHistory. Never
	// persisted.
	invCov  *mat.Dense
	invCovN int64
}

// NewUser creates an empty baseline for an actor first seen at ts.
func NewUser(login string, ts time.Time) *User {
	return &User{
		Login:           login,
		Mean:            make([]float64, FeatureDim),
		Variance:        floorVariance(make([]float64, FeatureDim)),
		HourCounts:      make([]float64, 24),
		EventTypeCounts: make(map[string]int64),
		FirstSeen:       ts,
		LastUpdated:     ts,
	}
}

// Update applies one EWMA step with the observed feature vector and
// bumps the sample count. Mean and variance are never recomputed from
// scratch; the update is O(FeatureDim).
func (u *User) Update(x []float64, alpha float64, historyMax int) {
	for i := range u.Mean {
		u.Mean[i] = alpha*x[i] + (1-alpha)*u.Mean[i]
		d := x[i] - u.Mean[i]
		u.Variance[i] = alpha*d*d + (1-alpha)*u.Variance[i]
		if u.Variance[i] < VarianceFloor {
			u.Variance[i] = VarianceFloor
		}
	}
	u.SampleCount++

	u.FeatureHistory = append(u.FeatureHistory, append([]float64(nil), x...))
	if len(u.FeatureHistory) > historyMax {
		u.FeatureHistory = u.FeatureHistory[len(u.FeatureHistory)-historyMax:]
	}
	// Stats moved under the cached inverse; force a rebuild next time.
	u.invCov = nil
}

// Observe records event metadata outside the feature vector: hour
// histogram, type counts, and the events-per-hour EWMA.
func (u *User) Observe(eventType string, ts time.Time, alpha float64) {
	for i := range u.HourCounts {
		u.HourCounts[i] *= hourDecay
	}
	u.HourCounts[ts.UTC().Hour()]++

	if u.EventTypeCounts == nil {
		u.EventTypeCounts = make(map[string]int64)
	}
	u.EventTypeCounts[eventType]++

	// Instantaneous rate proxy: one event per gap since last update.
	if !u.LastUpdated.IsZero() && ts.After(u.LastUpdated) {
		gapHours := ts.Sub(u.LastUpdated).Hours()
		if gapHours > 0 {
			rate := 1 / gapHours
			if rate > 1000 {
				rate = 1000
			}
			u.WeekRate = alpha*rate + (1-alpha)*u.WeekRate
		}
	}
	u.LastUpdated = ts
}

// ZScores returns the per-dimension standardized deviations of x from
// the baseline.
func (u *User) ZScores(x []float64) []float64 {
	z := make([]float64, len(x))
	for i := range x {
		z[i] = (x[i] - u.Mean[i]) / math.Sqrt(u.Variance[i])
	}
	return z
}

// Mahalanobis returns the squared Mahalanobis distance of x from the
// baseline mean, rebuilding the inverse covariance from the feature
// history when stale. Returns false when the history is too short or
// the covariance is not invertible.
func (u *User) Mahalanobis(x []float64, minSamples int) (float64, bool) {
	if u.SampleCount < int64(minSamples) || len(u.FeatureHistory) < minSamples {
		return 0, false
	}

	if u.invCov == nil || u.invCovN != u.SampleCount {
		inv, ok := u.rebuildInverseCovariance()
		if !ok {
			return 0, false
		}
		u.invCov = inv
		u.invCovN = u.SampleCount
	}

	diff := mat.NewVecDense(FeatureDim, nil)
	for i := 0; i < FeatureDim; i++ {
		diff.SetVec(i, x[i]-u.Mean[i])
	}

	var tmp mat.VecDense
	tmp.MulVec(u.invCov, diff)
	return mat.Dot(diff, &tmp), true
}

func (u *User) rebuildInverseCovariance() (*mat.Dense, bool) {
	n := len(u.FeatureHistory)
	data := mat.NewDense(n, FeatureDim, nil)
	for i, row := range u.FeatureHistory {
		data.SetRow(i, row)
	}

	var cov mat.SymDense
	stat.CovarianceMatrix(&cov, data, nil)

	// Ridge regularization keeps near-singular covariances invertible.
	for i := 0; i < FeatureDim; i++ {
		cov.SetSym(i, i, cov.At(i, i)+1e-6)
	}

	var inv mat.Dense
	if err := inv.Inverse(&cov); err != nil {
		return nil, false
	}
	return &inv, true
}

// HourDistribution returns the decayed hour histogram and its total.
func (u *User) HourDistribution() ([]float64, float64) {
	total := 0.0
	for _, c := range u.HourCounts {
		total += c
	}
	return u.HourCounts, total
}

// Repo is the per-repository baseline.
type Repo struct {
	Name                 string
	EventsPerHour        float64
	ContributorEstimate  float64
	Stars                int
	Forks                int
	HasSecurityPolicy    bool
	ProtectedBranches    int
	Criticality          float64
	CriticalityUpdatedAt time.Time
	FirstSeen            time.Time
	LastUpdated          time.Time
}

// NewRepo creates an empty baseline for a repository first seen at ts.
func NewRepo(name string, ts time.Time) *Repo {
	return &Repo{
		Name:        name,
		FirstSeen:   ts,
		LastUpdated: ts,
	}
}

// Touch applies one EWMA step to the events-per-hour rate.
func (r *Repo) Touch(ts time.Time, alpha float64) {
	if !r.LastUpdated.IsZero() && ts.After(r.LastUpdated) {
		gapHours := ts.Sub(r.LastUpdated).Hours()
		if gapHours > 0 {
			rate := 1 / gapHours
			if rate > 10000 {
				rate = 10000
			}
			r.EventsPerHour = alpha*rate + (1-alpha)*r.EventsPerHour
		}
	}
	r.LastUpdated = ts
}

// CriticalityFresh reports whether the cached criticality is within ttl.
func (r *Repo) CriticalityFresh(now time.Time, ttl time.Duration) bool {
	return !r.CriticalityUpdatedAt.IsZero() && now.Sub(r.CriticalityUpdatedAt) < ttl
}

func floorVariance(v []float64) []float64 {
	for i := range v {
		if v[i] < VarianceFloor {
			v[i] = VarianceFloor
		}
	}
	return v
}
