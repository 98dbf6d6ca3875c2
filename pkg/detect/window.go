package detect

import (
	"sync"
	"time"

	"github.com/forgewatch/forgewatch/pkg/models"
)

// Record is one observed event in the sliding window index, reduced to
// the fields the detectors read.
type Record struct {
	EventID      string
	ActorID      int64
	ActorLogin   string
	Repo         string
	Type         string
	Ts           time.Time
	CommitCount  int
	CommitMsgLen int // total characters across commit messages
	FilesChanged int
}

const (
	actorRetention = 24 * time.Hour
	repoRetention  = 15 * time.Minute
	maxPerKey      = 2000
)

// WindowIndex is the in-process sliding event index feeding the
// behavioral and temporal detectors. Entries expire by age and are
// bounded per key; it is a lossy recent-activity view, not a store.
type WindowIndex struct {
	mu     sync.Mutex
	actors map[string][]Record
	repos  map[string][]Record
}

// NewWindowIndex creates an empty index.
func NewWindowIndex() *WindowIndex {
	return &WindowIndex{
		actors: make(map[string][]Record),
		repos:  make(map[string][]Record),
	}
}

// Observe records an event. Call before detection so the current event
// is part of its own windows.
func (w *WindowIndex) Observe(ev models.Event) {
	rec := Record{
		EventID:    ev.ID,
		ActorID:    ev.Actor.ID,
		ActorLogin: ev.Actor.Login,
		Repo:       ev.Repository.FullName,
		Type:       ev.Type,
		Ts:         ev.Timestamp,
	}
	if push, ok := ev.DecodePush(); ok {
		rec.CommitCount = len(push.Commits)
		for _, c := range push.Commits {
			rec.CommitMsgLen += len(c.Message)
			rec.FilesChanged += len(c.Added) + len(c.Removed) + len(c.Modified)
		}
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.actors[rec.ActorLogin] = appendPruned(w.actors[rec.ActorLogin], rec, actorRetention)
	w.repos[rec.Repo] = appendPruned(w.repos[rec.Repo], rec, repoRetention)
}

func appendPruned(recs []Record, rec Record, retention time.Duration) []Record {
	recs = append(recs, rec)
	cutoff := rec.Ts.Add(-retention)
	i := 0
	for i < len(recs) && recs[i].Ts.Before(cutoff) {
		i++
	}
	recs = recs[i:]
	if len(recs) > maxPerKey {
		recs = recs[len(recs)-maxPerKey:]
	}
	return recs
}

// Actor returns the actor's records within span ending at now, oldest
// first.
func (w *WindowIndex) Actor(login string, now time.Time, span time.Duration) []Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return filterSpan(w.actors[login], now, span)
}

// Repo returns the repository's records within span ending at now.
func (w *WindowIndex) Repo(repo string, now time.Time, span time.Duration) []Record {
	w.mu.Lock()
	defer w.mu.Unlock()
	return filterSpan(w.repos[repo], now, span)
}

// RepoActivity summarizes a repository window: event count and distinct
// actor count.
func (w *WindowIndex) RepoActivity(repo string, now time.Time, span time.Duration) (events, actors int) {
	recs := w.Repo(repo, now, span)
	seen := make(map[string]struct{}, len(recs))
	for _, r := range recs {
		seen[r.ActorLogin] = struct{}{}
	}
	return len(recs), len(seen)
}

func filterSpan(recs []Record, now time.Time, span time.Duration) []Record {
	cutoff := now.Add(-span)
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		if !r.Ts.Before(cutoff) && !r.Ts.After(now) {
			out = append(out, r)
		}
	}
	return out
}
