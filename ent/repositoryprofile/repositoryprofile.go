// Code generated by ent, DO NOT EDIT.

package repositoryprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the repositoryprofile type in the database.
	Label = "repository_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "repo_name"
	// FieldEventsPerHour holds the string denoting the events_per_hour field in the database.
	FieldEventsPerHour = "events_per_hour"
	// FieldContributorEstimate holds the string denoting the contributor_estimate field in the database.
	FieldContributorEstimate = "contributor_estimate"
	// FieldStars holds the string denoting the stars field in the database.
	FieldStars = "stars"
	// FieldForks holds the string denoting the forks field in the database.
	FieldForks = "forks"
	// FieldHasSecurityPolicy holds the string denoting the has_security_policy field in the database.
	FieldHasSecurityPolicy = "has_security_policy"
	// FieldProtectedBranches holds the string denoting the protected_branches field in the database.
	FieldProtectedBranches = "protected_branches"
	// FieldCriticality holds the string denoting the criticality field in the database.
	FieldCriticality = "criticality"
	// FieldCriticalityUpdatedAt holds the string denoting the criticality_updated_at field in the database.
	FieldCriticalityUpdatedAt = "criticality_updated_at"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the repositoryprofile in the database.
	Table = "repository_profiles"
)

// Columns holds all SQL columns for repositoryprofile fields.
var Columns = []string{
	FieldID,
	FieldEventsPerHour,
	FieldContributorEstimate,
	FieldStars,
	FieldForks,
	FieldHasSecurityPolicy,
	FieldProtectedBranches,
	FieldCriticality,
	FieldCriticalityUpdatedAt,
	FieldFirstSeen,
	FieldLastUpdated,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultEventsPerHour holds the default value on creation for the "events_per_hour" field.
	DefaultEventsPerHour float64
	// DefaultContributorEstimate holds the default value on creation for the "contributor_estimate" field.
	DefaultContributorEstimate float64
	// DefaultStars holds the default value on creation for the "stars" field.
	DefaultStars int
	// DefaultForks holds the default value on creation for the "forks" field.
	DefaultForks int
	// DefaultHasSecurityPolicy holds the default value on creation for the "has_security_policy" field.
	DefaultHasSecurityPolicy bool
	// DefaultProtectedBranches holds the default value on creation for the "protected_branches" field.
	DefaultProtectedBranches int
	// DefaultCriticality holds the default value on creation for the "criticality" field.
	DefaultCriticality float64
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the RepositoryProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventsPerHour orders the results by the events_per_hour field.
func ByEventsPerHour(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventsPerHour, opts...).ToFunc()
}

// ByContributorEstimate orders the results by the contributor_estimate field.
func ByContributorEstimate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContributorEstimate, opts...).ToFunc()
}

// ByStars orders the results by the stars field.
func ByStars(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStars, opts...).ToFunc()
}

// ByForks orders the results by the forks field.
func ByForks(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldForks, opts...).ToFunc()
}

// ByHasSecurityPolicy orders the results by the has_security_policy field.
func ByHasSecurityPolicy(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHasSecurityPolicy, opts...).ToFunc()
}

// ByProtectedBranches orders the results by the protected_branches field.
func ByProtectedBranches(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProtectedBranches, opts...).ToFunc()
}

// ByCriticality orders the results by the criticality field.
func ByCriticality(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticality, opts...).ToFunc()
}

// ByCriticalityUpdatedAt orders the results by the criticality_updated_at field.
func ByCriticalityUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCriticalityUpdatedAt, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
