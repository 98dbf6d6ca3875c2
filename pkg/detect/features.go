package detect

import (
	"math"
	"time"

	"github.com/forgewatch/forgewatch/pkg/profile"
)

// Behavioral feature vector layout.
const (
	FeatEventsPerHour = iota
	FeatRepoDiversity
	FeatAvgInterEventMinutes
	FeatCommitMsgLenAvg
	FeatFilesPerCommitAvg
	FeatBurstScore
	FeatTimeSpreadHours
	FeatEventTypeEntropy
	FeatWeekendRatio
	FeatOffHoursRatio
)

// FeatureNames maps vector indexes to stable names used in anomaly
// explanations.
var FeatureNames = [profile.FeatureDim]string{
	"events_per_hour",
	"repository_diversity_ratio",
	"avg_inter_event_interval_minutes",
	"commit_message_length_avg",
	"files_changed_per_commit_avg",
	"activity_burst_score",
	"time_spread_hours",
	"event_type_entropy",
	"weekend_activity_ratio",
	"off_hours_activity_ratio",
}

// ExtractFeatures computes the 10-dimension behavioral vector for an
// actor at time now, from the actor's sliding window records (which
// must already include the current event).
func ExtractFeatures(w *WindowIndex, actorLogin string, now time.Time) []float64 {
	day := w.Actor(actorLogin, now, 24*time.Hour)
	hour := filterSpan(day, now, time.Hour)

	x := make([]float64, profile.FeatureDim)
	if len(hour) == 0 {
		return x
	}

	x[FeatEventsPerHour] = float64(len(hour))

	repos := make(map[string]struct{}, len(hour))
	types := make(map[string]int, len(hour))
	var msgLen, commits, files int
	for _, r := range hour {
		repos[r.Repo] = struct{}{}
		types[r.Type]++
		msgLen += r.CommitMsgLen
		commits += r.CommitCount
		files += r.FilesChanged
	}
	x[FeatRepoDiversity] = float64(len(repos)) / float64(len(hour))

	if len(hour) > 1 {
		var gaps float64
		for i := 1; i < len(hour); i++ {
			gaps += hour[i].Ts.Sub(hour[i-1].Ts).Minutes()
		}
		x[FeatAvgInterEventMinutes] = gaps / float64(len(hour)-1)
	}

	if commits > 0 {
		x[FeatCommitMsgLenAvg] = float64(msgLen) / float64(commits)
		x[FeatFilesPerCommitAvg] = float64(files) / float64(commits)
	}

	x[FeatBurstScore] = burstScore(filterSpan(hour, now, 5*time.Minute), 5*time.Minute)

	x[FeatTimeSpreadHours] = hour[len(hour)-1].Ts.Sub(hour[0].Ts).Hours()

	x[FeatEventTypeEntropy] = entropy(types, len(hour))

	var weekend, offHours float64
	for _, r := range day {
		switch r.Ts.UTC().Weekday() {
		case time.Saturday, time.Sunday:
			weekend++
		}
	}
	x[FeatWeekendRatio] = weekend / float64(len(day))

	for _, r := range hour {
		h := r.Ts.UTC().Hour()
		if h < 9 || h >= 18 {
			offHours++
		}
	}
	x[FeatOffHoursRatio] = offHours / float64(len(hour))

	return x
}

// burstScore reduces a windowed event rate to [0,1] with the burst
// severity curve: zero at 2 events/min, saturating at 10.
func burstScore(recs []Record, window time.Duration) float64 {
	if len(recs) == 0 {
		return 0
	}
	rate := float64(len(recs)) / window.Minutes()
	return clip((rate-2)/8, 0, 1)
}

// entropy is the Shannon entropy (nats) of the event-type distribution.
func entropy(types map[string]int, total int) float64 {
	if total == 0 {
		return 0
	}
	var h float64
	for _, c := range types {
		p := float64(c) / float64(total)
		if p > 0 {
			h -= p * math.Log(p)
		}
	}
	return h
}
