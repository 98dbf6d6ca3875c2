// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AnomalyRecord is the predicate function for anomalyrecord builders.
type AnomalyRecord func(*sql.Selector)

// GitHubEvent is the predicate function for githubevent builders.
type GitHubEvent func(*sql.Selector)

// RepositoryProfile is the predicate function for repositoryprofile builders.
type RepositoryProfile func(*sql.Selector)

// StreamEvent is the predicate function for streamevent builders.
type StreamEvent func(*sql.Selector)

// TemporalPattern is the predicate function for temporalpattern builders.
type TemporalPattern func(*sql.Selector)

// UserProfile is the predicate function for userprofile builders.
type UserProfile func(*sql.Selector)
