package profile

import (
	"context"
	"fmt"
	"hash/fnv"
	"log/slog"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/forgewatch/forgewatch/ent"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
	"github.com/forgewatch/forgewatch/ent/userprofile"
	"github.com/forgewatch/forgewatch/pkg/config"
)

const lockShards = 256

// Store is the profile read-modify-write layer: a bounded LRU in front
// of the database, with per-key serialization so concurrent updates to
// the same actor never interleave. Updates to distinct keys proceed
// concurrently.
type Store struct {
	client *ent.Client
	cfg    *config.DetectionConfig
	logger *slog.Logger

	users *lru.Cache[string, *User]
	repos *lru.Cache[string, *Repo]

	userLocks [lockShards]sync.Mutex
	repoLocks [lockShards]sync.Mutex
}

// NewStore creates a profile store with the configured cache capacity.
func NewStore(client *ent.Client, cfg *config.DetectionConfig) (*Store, error) {
	users, err := lru.New[string, *User](cfg.ProfileCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create user profile cache: %w", err)
	}
	repos, err := lru.New[string, *Repo](cfg.ProfileCacheSize)
	if err != nil {
		return nil, fmt.Errorf("create repo profile cache: %w", err)
	}

	return &Store{
		client: client,
		cfg:    cfg,
		logger: slog.With("component", "profile_store"),
		users:  users,
		repos:  repos,
	}, nil
}

func shard(key string) int {
	h := fnv.New32a()
	_, _ = h.Write([]byte(key))
	return int(h.Sum32() % lockShards)
}

// GetUser returns the actor's baseline, or nil when none exists yet.
func (s *Store) GetUser(ctx context.Context, login string) (*User, error) {
	if u, ok := s.users.Get(login); ok {
		return u, nil
	}

	row, err := s.client.UserProfile.Get(ctx, login)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load user profile %s: %w", login, err)
	}

	u := userFromRow(row)
	s.users.Add(login, u)
	return u, nil
}

// UpsertUser applies one EWMA update with the observed feature vector
// and persists the result. Concurrent callers on the same login are
// serialized.
func (s *Store) UpsertUser(ctx context.Context, login string, features []float64, eventType string, ts time.Time) (*User, error) {
	mu := &s.userLocks[shard(login)]
	mu.Lock()
	defer mu.Unlock()

	u, err := s.GetUser(ctx, login)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = NewUser(login, ts)
	}

	u.Update(features, s.cfg.EWMAAlpha, s.cfg.FeatureHistoryMax)
	u.Observe(eventType, ts, s.cfg.EWMAAlpha)

	if err := s.persistUser(ctx, u); err != nil {
		return nil, err
	}
	s.users.Add(login, u)
	return u, nil
}

func (s *Store) persistUser(ctx context.Context, u *User) error {
	err := s.client.UserProfile.Create().
		SetID(u.Login).
		SetMeanFeatures(u.Mean).
		SetVarianceFeatures(u.Variance).
		SetSampleCount(u.SampleCount).
		SetFeatureHistory(u.FeatureHistory).
		SetHourCounts(u.HourCounts).
		SetWeekRate(u.WeekRate).
		SetEventTypeCounts(u.EventTypeCounts).
		SetFirstSeen(u.FirstSeen).
		SetLastUpdated(u.LastUpdated).
		OnConflictColumns(userprofile.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("persist user profile %s: %w", u.Login, err)
	}
	return nil
}

// GetRepo returns the repository baseline, or nil when none exists yet.
func (s *Store) GetRepo(ctx context.Context, name string) (*Repo, error) {
	if r, ok := s.repos.Get(name); ok {
		return r, nil
	}

	row, err := s.client.RepositoryProfile.Get(ctx, name)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("load repo profile %s: %w", name, err)
	}

	r := repoFromRow(row)
	s.repos.Add(name, r)
	return r, nil
}

// TouchRepo applies one EWMA step to the repository's event rate and
// persists it. Creates the baseline on first sight.
func (s *Store) TouchRepo(ctx context.Context, name string, ts time.Time) (*Repo, error) {
	mu := &s.repoLocks[shard(name)]
	mu.Lock()
	defer mu.Unlock()

	r, err := s.GetRepo(ctx, name)
	if err != nil {
		return nil, err
	}
	if r == nil {
		r = NewRepo(name, ts)
	}

	r.Touch(ts, s.cfg.EWMAAlpha)

	if err := s.persistRepo(ctx, r); err != nil {
		return nil, err
	}
	s.repos.Add(name, r)
	return r, nil
}

// UpdateRepoCriticality stores freshly computed criticality and the
// metadata it was derived from.
func (s *Store) UpdateRepoCriticality(ctx context.Context, r *Repo) error {
	mu := &s.repoLocks[shard(r.Name)]
	mu.Lock()
	defer mu.Unlock()

	if err := s.persistRepo(ctx, r); err != nil {
		return err
	}
	s.repos.Add(r.Name, r)
	return nil
}

func (s *Store) persistRepo(ctx context.Context, r *Repo) error {
	err := s.client.RepositoryProfile.Create().
		SetID(r.Name).
		SetEventsPerHour(r.EventsPerHour).
		SetContributorEstimate(r.ContributorEstimate).
		SetStars(r.Stars).
		SetForks(r.Forks).
		SetHasSecurityPolicy(r.HasSecurityPolicy).
		SetProtectedBranches(r.ProtectedBranches).
		SetCriticality(r.Criticality).
		SetCriticalityUpdatedAt(r.CriticalityUpdatedAt).
		SetFirstSeen(r.FirstSeen).
		SetLastUpdated(r.LastUpdated).
		OnConflictColumns(repositoryprofile.FieldID).
		UpdateNewValues().
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("persist repo profile %s: %w", r.Name, err)
	}
	return nil
}

// CleanupStale deletes user and repository baselines that have not been
// updated since cutoff, and drops the matching cache entries so a stale
// in-memory copy cannot resurrect a deleted row. Returns the number of
// rows deleted.
func (s *Store) CleanupStale(ctx context.Context, cutoff time.Time) (int, error) {
	users, err := s.client.UserProfile.Delete().
		Where(userprofile.LastUpdatedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("cleanup user profiles: %w", err)
	}
	repos, err := s.client.RepositoryProfile.Delete().
		Where(repositoryprofile.LastUpdatedLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return users, fmt.Errorf("cleanup repo profiles: %w", err)
	}

	for _, login := range s.users.Keys() {
		if u, ok := s.users.Peek(login); ok && u.LastUpdated.Before(cutoff) {
			s.users.Remove(login)
		}
	}
	for _, name := range s.repos.Keys() {
		if r, ok := s.repos.Peek(name); ok && r.LastUpdated.Before(cutoff) {
			s.repos.Remove(name)
		}
	}

	return users + repos, nil
}

func userFromRow(row *ent.UserProfile) *User {
	return &User{
		Login:           row.ID,
		Mean:            row.MeanFeatures,
		Variance:        floorVariance(row.VarianceFeatures),
		SampleCount:     row.SampleCount,
		FeatureHistory:  row.FeatureHistory,
		HourCounts:      row.HourCounts,
		WeekRate:        row.WeekRate,
		EventTypeCounts: row.EventTypeCounts,
		FirstSeen:       row.FirstSeen,
		LastUpdated:     row.LastUpdated,
	}
}

func repoFromRow(row *ent.RepositoryProfile) *Repo {
	return &Repo{
		Name:                 row.ID,
		EventsPerHour:        row.EventsPerHour,
		ContributorEstimate:  row.ContributorEstimate,
		Stars:                row.Stars,
		Forks:                row.Forks,
		HasSecurityPolicy:    row.HasSecurityPolicy,
		ProtectedBranches:    row.ProtectedBranches,
		Criticality:          row.Criticality,
		CriticalityUpdatedAt: row.CriticalityUpdatedAt,
		FirstSeen:            row.FirstSeen,
		LastUpdated:          row.LastUpdated,
	}
}
