// Package detect implements the four anomaly detectors and the score
// fuser. Detectors are pure CPU-bound scoring functions over a
// prepared input snapshot; all I/O happens before they run.
package detect

import (
	"context"
	"time"

	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/profile"
)

// Detector names, also used as primary-method labels.
const (
	NameBehavioral = "behavioral"
	NameTemporal   = "temporal"
	NameContent    = "content"
	NameContextual = "contextual"
)

// Anomaly is a single flagged deviation inside a detector result.
type Anomaly struct {
	Type        string  `json:"type"`
	FeatureName string  `json:"feature_name,omitempty"`
	Location    string  `json:"location,omitempty"`
	Match       string  `json:"match,omitempty"` // always redacted
	Current     float64 `json:"current,omitempty"`
	ZScore      float64 `json:"z_score,omitempty"`
	Severity    float64 `json:"severity"`
}

// Pattern is an auxiliary multi-event record emitted by the temporal
// detector (bursts, coordination).
type Pattern struct {
	Type        string    `json:"type"`
	Severity    float64   `json:"severity"`
	EventCount  int       `json:"event_count"`
	ActorCount  int       `json:"actor_count"`
	WindowStart time.Time `json:"window_start"`
	WindowEnd   time.Time `json:"window_end"`
}

// Result is the uniform detector output.
type Result struct {
	Score       float64        `json:"score"`
	Features    []float64      `json:"features,omitempty"`
	Explanation map[string]any `json:"explanation,omitempty"`
	Anomalies   []Anomaly      `json:"anomalies,omitempty"`
	Patterns    []Pattern      `json:"patterns,omitempty"`

	// Degraded marks results produced after an internal error or
	// timeout; the score is 0 and the explanation names the cause.
	Degraded bool `json:"degraded,omitempty"`
}

// DegradedResult builds the zero-score result recorded when a detector
// errors or times out.
func DegradedResult(kind string) Result {
	return Result{
		Score:       0,
		Explanation: map[string]any{"degraded": true, "kind": kind},
		Degraded:    true,
	}
}

// Input is the prepared snapshot a detector scores. Everything is
// fetched before the detector fan-out so detectors never suspend.
type Input struct {
	Event models.Event

	// User is the actor's baseline before this event, nil on first
	// sight.
	User *profile.User

	// Repo is the repository baseline including cached criticality,
	// nil on first sight.
	Repo *profile.Repo

	// Features is the 10-dimension behavioral vector for this event.
	Features []float64

	// Windows is the in-process sliding event index, already
	// containing this event.
	Windows *WindowIndex
}

// Detector scores one event against its baselines.
type Detector interface {
	Name() string
	Detect(ctx context.Context, in *Input) Result
}

func clip(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
