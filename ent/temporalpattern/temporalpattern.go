// Code generated by ent, DO NOT EDIT.

package temporalpattern

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the temporalpattern type in the database.
	Label = "temporal_pattern"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPatternType holds the string denoting the pattern_type field in the database.
	FieldPatternType = "pattern_type"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRepoName holds the string denoting the repo_name field in the database.
	FieldRepoName = "repo_name"
	// FieldActorLogin holds the string denoting the actor_login field in the database.
	FieldActorLogin = "actor_login"
	// FieldSeverity holds the string denoting the severity field in the database.
	FieldSeverity = "severity"
	// FieldEventCount holds the string denoting the event_count field in the database.
	FieldEventCount = "event_count"
	// FieldActorCount holds the string denoting the actor_count field in the database.
	FieldActorCount = "actor_count"
	// FieldWindowStart holds the string denoting the window_start field in the database.
	FieldWindowStart = "window_start"
	// FieldWindowEnd holds the string denoting the window_end field in the database.
	FieldWindowEnd = "window_end"
	// FieldDetectedAt holds the string denoting the detected_at field in the database.
	FieldDetectedAt = "detected_at"
	// Table holds the table name of the temporalpattern in the database.
	Table = "temporal_patterns"
)

// Columns holds all SQL columns for temporalpattern fields.
var Columns = []string{
	FieldID,
	FieldPatternType,
	FieldEventID,
	FieldRepoName,
	FieldActorLogin,
	FieldSeverity,
	FieldEventCount,
	FieldActorCount,
	FieldWindowStart,
	FieldWindowEnd,
	FieldDetectedAt,
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
	// DefaultActorCount holds the default value on creation for the "actor_count" field.
	DefaultActorCount int
	// DefaultDetectedAt holds the default value on creation for the "detected_at" field.
	DefaultDetectedAt func() time.Time
)

// PatternType defines the type for the "pattern_type" enum field.
type PatternType string

// PatternType values.
const (
	PatternTypeActivityBurst       PatternType = "activity_burst"
	PatternTypeCoordinatedActivity PatternType = "coordinated_activity"
)

func (pt PatternType) String() string {
	return string(pt)
}

// PatternTypeValidator is a validator for the "pattern_type" field enum values. It is called by the builders before save.
func PatternTypeValidator(pt PatternType) error {
	switch pt {
	case PatternTypeActivityBurst, PatternTypeCoordinatedActivity:
		return nil
	default:
		return fmt.Errorf("temporalpattern: invalid enum value for pattern_type field: %q", pt)
	}
}

// OrderOption defines the ordering options for the TemporalPattern queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPatternType orders the results by the pattern_type field.
func ByPatternType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPatternType, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRepoName orders the results by the repo_name field.
func ByRepoName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepoName, opts...).ToFunc()
}

// ByActorLogin orders the results by the actor_login field.
func ByActorLogin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorLogin, opts...).ToFunc()
}

// BySeverity orders the results by the severity field.
func BySeverity(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverity, opts...).ToFunc()
}

// ByEventCount orders the results by the event_count field.
func ByEventCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventCount, opts...).ToFunc()
}

// ByActorCount orders the results by the actor_count field.
func ByActorCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActorCount, opts...).ToFunc()
}

// ByWindowStart orders the results by the window_start field.
func ByWindowStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowStart, opts...).ToFunc()
}

// ByWindowEnd orders the results by the window_end field.
func ByWindowEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWindowEnd, opts...).ToFunc()
}

// ByDetectedAt orders the results by the detected_at field.
func ByDetectedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectedAt, opts...).ToFunc()
}
