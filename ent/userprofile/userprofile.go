// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the userprofile type in the database.
	Label = "user_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "user_login"
	// FieldMeanFeatures holds the string denoting the mean_features field in the database.
	FieldMeanFeatures = "mean_features"
	// FieldVarianceFeatures holds the string denoting the variance_features field in the database.
	FieldVarianceFeatures = "variance_features"
	// FieldSampleCount holds the string denoting the sample_count field in the database.
	FieldSampleCount = "sample_count"
	// FieldFeatureHistory holds the string denoting the feature_history field in the database.
	FieldFeatureHistory = "feature_history"
	// FieldHourCounts holds the string denoting the hour_counts field in the database.
	FieldHourCounts = "hour_counts"
	// FieldWeekRate holds the string denoting the week_rate field in the database.
	FieldWeekRate = "week_rate"
	// FieldEventTypeCounts holds the string denoting the event_type_counts field in the database.
	FieldEventTypeCounts = "event_type_counts"
	// FieldFirstSeen holds the string denoting the first_seen field in the database.
	FieldFirstSeen = "first_seen"
	// FieldLastUpdated holds the string denoting the last_updated field in the database.
	FieldLastUpdated = "last_updated"
	// Table holds the table name of the userprofile in the database.
	Table = "user_profiles"
)

// Columns holds all SQL columns for userprofile fields.
var Columns = []string{
	FieldID,
	FieldMeanFeatures,
	FieldVarianceFeatures,
	FieldSampleCount,
	FieldFeatureHistory,
	FieldHourCounts,
	FieldWeekRate,
	FieldEventTypeCounts,
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
	// DefaultSampleCount holds the default value on creation for the "sample_count" field.
	DefaultSampleCount int64
	// DefaultWeekRate holds the default value on creation for the "week_rate" field.
	DefaultWeekRate float64
	// DefaultFirstSeen holds the default value on creation for the "first_seen" field.
	DefaultFirstSeen func() time.Time
	// DefaultLastUpdated holds the default value on creation for the "last_updated" field.
	DefaultLastUpdated func() time.Time
	// UpdateDefaultLastUpdated holds the default value on update for the "last_updated" field.
	UpdateDefaultLastUpdated func() time.Time
)

// OrderOption defines the ordering options for the UserProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySampleCount orders the results by the sample_count field.
func BySampleCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSampleCount, opts...).ToFunc()
}

// ByWeekRate orders the results by the week_rate field.
func ByWeekRate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWeekRate, opts...).ToFunc()
}

// ByFirstSeen orders the results by the first_seen field.
func ByFirstSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstSeen, opts...).ToFunc()
}

// ByLastUpdated orders the results by the last_updated field.
func ByLastUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastUpdated, opts...).ToFunc()
}
