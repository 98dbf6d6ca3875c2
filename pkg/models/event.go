// Package models defines the wire-level data structures shared across the
// pipeline: upstream events, anomaly reports, and processing stats.
package models

import (
	"encoding/json"
	"errors"
	"fmt"
	"hash/fnv"
	"time"
)

// Known upstream event types. The set is open: unknown types flow through
// the pipeline as low priority rather than being rejected.
const (
	TypePush            = "PushEvent"
	TypeWorkflowRun     = "WorkflowRunEvent"
	TypeDelete          = "DeleteEvent"
	TypeMember          = "MemberEvent"
	TypePullRequest     = "PullRequestEvent"
	TypeIssues          = "IssuesEvent"
	TypeCreate          = "CreateEvent"
	TypeRelease         = "ReleaseEvent"
	TypeFork            = "ForkEvent"
	TypeWatch           = "WatchEvent"
	TypeStar            = "StarEvent"
	TypeGollum          = "GollumEvent"
	TypeCommitComment   = "CommitCommentEvent"
	TypeIssueComment    = "IssueCommentEvent"
	TypePublic          = "PublicEvent"
	TypePRReview        = "PullRequestReviewEvent"
	TypePRReviewComment = "PullRequestReviewCommentEvent"
)

// Priority classifies how valuable an event is for anomaly detection.
type Priority string

// Priority levels, ordered high > medium > low.
const (
	PriorityHigh   Priority = "high"
	PriorityMedium Priority = "medium"
	PriorityLow    Priority = "low"
)

// Rank returns the claim ordering rank (lower is claimed first).
func (p Priority) Rank() int {
	switch p {
	case PriorityHigh:
		return 0
	case PriorityMedium:
		return 1
	default:
		return 2
	}
}

var highPriorityTypes = map[string]bool{
	TypePush:        true,
	TypeWorkflowRun: true,
	TypeDelete:      true,
	TypeMember:      true,
}

var mediumPriorityTypes = map[string]bool{
	TypePullRequest: true,
	TypeIssues:      true,
	TypeCreate:      true,
	TypeRelease:     true,
	TypeFork:        true,
}

// PriorityFor maps an upstream event type to its ingestion priority.
// Unknown types are low priority and subject to sampling.
func PriorityFor(eventType string) Priority {
	if highPriorityTypes[eventType] {
		return PriorityHigh
	}
	if mediumPriorityTypes[eventType] {
		return PriorityMedium
	}
	return PriorityLow
}

// SampleLow reports whether a low-priority event should be kept, given the
// sampling fraction. The decision is a deterministic FNV-1a hash of the
// event id, so it is stable across restarts and replicas.
func SampleLow(eventID string, fraction float64) bool {
	if fraction >= 1 {
		return true
	}
	if fraction <= 0 {
		return false
	}
	h := fnv.New64a()
	_, _ = h.Write([]byte(eventID))
	return float64(h.Sum64()%10000) < fraction*10000
}

// Actor identifies the user that performed an event.
type Actor struct {
	ID    int64  `json:"id"`
	Login string `json:"login"`
}

// Repository identifies the repository an event targets.
type Repository struct {
	ID       int64  `json:"id"`
	FullName string `json:"full_name"`
}

// Event is an immutable upstream activity record. Events are created on
// ingest and flow by value through the pipeline; the payload stays opaque
// except for the fields detectors consume.
type Event struct {
	ID         string          `json:"id"`
	Type       string          `json:"type"`
	Actor      Actor           `json:"actor"`
	Repository Repository      `json:"repository"`
	Timestamp  time.Time       `json:"timestamp"`
	Payload    json.RawMessage `json:"payload,omitempty"`
	Priority   Priority        `json:"priority"`
}

// Validation errors for corrupt events.
var (
	ErrMissingID        = errors.New("event missing id")
	ErrMissingType      = errors.New("event missing type")
	ErrMissingActor     = errors.New("event missing actor login")
	ErrMissingRepo      = errors.New("event missing repository name")
	ErrMissingTimestamp = errors.New("event missing timestamp")
)

// Validate checks the required fields. Corrupt events are dropped at the
// pipeline boundary with a counter increment, never processed.
func (e *Event) Validate() error {
	if e.ID == "" {
		return ErrMissingID
	}
	if e.Type == "" {
		return fmt.Errorf("event %s: %w", e.ID, ErrMissingType)
	}
	if e.Actor.Login == "" {
		return fmt.Errorf("event %s: %w", e.ID, ErrMissingActor)
	}
	if e.Repository.FullName == "" {
		return fmt.Errorf("event %s: %w", e.ID, ErrMissingRepo)
	}
	if e.Timestamp.IsZero() {
		return fmt.Errorf("event %s: %w", e.ID, ErrMissingTimestamp)
	}
	return nil
}

// PushPayload is the subset of a PushEvent payload the detectors consume.
type PushPayload struct {
	Ref     string       `json:"ref"`
	Head    string       `json:"head"`
	Before  string       `json:"before"`
	Size    int          `json:"size"`
	Forced  bool         `json:"forced"`
	Commits []PushCommit `json:"commits"`
}

// PushCommit is a single commit inside a push payload.
type PushCommit struct {
	SHA      string   `json:"sha"`
	Message  string   `json:"message"`
	Added    []string `json:"added,omitempty"`
	Removed  []string `json:"removed,omitempty"`
	Modified []string `json:"modified,omitempty"`
}

// DeletePayload is the subset of a DeleteEvent payload detectors consume.
type DeletePayload struct {
	Ref     string `json:"ref"`
	RefType string `json:"ref_type"`
}

// DecodePush parses the push payload of an event. Returns false when the
// event is not a push or the payload cannot be decoded.
func (e *Event) DecodePush() (PushPayload, bool) {
	if e.Type != TypePush || len(e.Payload) == 0 {
		return PushPayload{}, false
	}
	var p PushPayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return PushPayload{}, false
	}
	return p, true
}

// DecodeDelete parses the delete payload of an event.
func (e *Event) DecodeDelete() (DeletePayload, bool) {
	if e.Type != TypeDelete || len(e.Payload) == 0 {
		return DeletePayload{}, false
	}
	var p DeletePayload
	if err := json.Unmarshal(e.Payload, &p); err != nil {
		return DeletePayload{}, false
	}
	return p, true
}
