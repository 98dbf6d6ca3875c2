// Code generated by ent, DO NOT EDIT.

package anomalyrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the anomalyrecord type in the database.
	Label = "anomaly_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldEventID holds the string denoting the event_id field in the database.
	FieldEventID = "event_id"
	// FieldRepositoryName holds the string denoting the repository_name field in the database.
	FieldRepositoryName = "repository_name"
	// FieldUserLogin holds the string denoting the user_login field in the database.
	FieldUserLogin = "user_login"
	// FieldEventType holds the string denoting the event_type field in the database.
	FieldEventType = "event_type"
	// FieldEventTimestamp holds the string denoting the event_timestamp field in the database.
	FieldEventTimestamp = "event_timestamp"
	// FieldBehavioralAnomalyScore holds the string denoting the behavioral_anomaly_score field in the database.
	FieldBehavioralAnomalyScore = "behavioral_anomaly_score"
	// FieldContentRiskScore holds the string denoting the content_risk_score field in the database.
	FieldContentRiskScore = "content_risk_score"
	// FieldTemporalAnomalyScore holds the string denoting the temporal_anomaly_score field in the database.
	FieldTemporalAnomalyScore = "temporal_anomaly_score"
	// FieldRepositoryCriticalityScore holds the string denoting the repository_criticality_score field in the database.
	FieldRepositoryCriticalityScore = "repository_criticality_score"
	// FieldFinalAnomalyScore holds the string denoting the final_anomaly_score field in the database.
	FieldFinalAnomalyScore = "final_anomaly_score"
	// FieldSeverityLevel holds the string denoting the severity_level field in the database.
	FieldSeverityLevel = "severity_level"
	// FieldPrimaryMethod holds the string denoting the primary_method field in the database.
	FieldPrimaryMethod = "primary_method"
	// FieldBehavioralAnalysis holds the string denoting the behavioral_analysis field in the database.
	FieldBehavioralAnalysis = "behavioral_analysis"
	// FieldContentAnalysis holds the string denoting the content_analysis field in the database.
	FieldContentAnalysis = "content_analysis"
	// FieldTemporalAnalysis holds the string denoting the temporal_analysis field in the database.
	FieldTemporalAnalysis = "temporal_analysis"
	// FieldRepositoryContext holds the string denoting the repository_context field in the database.
	FieldRepositoryContext = "repository_context"
	// FieldHighRiskIndicators holds the string denoting the high_risk_indicators field in the database.
	FieldHighRiskIndicators = "high_risk_indicators"
	// FieldAiSummary holds the string denoting the ai_summary field in the database.
	FieldAiSummary = "ai_summary"
	// FieldDegraded holds the string denoting the degraded field in the database.
	FieldDegraded = "degraded"
	// FieldDetectionTimestamp holds the string denoting the detection_timestamp field in the database.
	FieldDetectionTimestamp = "detection_timestamp"
	// Table holds the table name of the anomalyrecord in the database.
	Table = "anomaly_records"
)

// Columns holds all SQL columns for anomalyrecord fields.
var Columns = []string{
	FieldID,
	FieldEventID,
	FieldRepositoryName,
	FieldUserLogin,
	FieldEventType,
	FieldEventTimestamp,
	FieldBehavioralAnomalyScore,
	FieldContentRiskScore,
	FieldTemporalAnomalyScore,
	FieldRepositoryCriticalityScore,
	FieldFinalAnomalyScore,
	FieldSeverityLevel,
	FieldPrimaryMethod,
	FieldBehavioralAnalysis,
	FieldContentAnalysis,
	FieldTemporalAnalysis,
	FieldRepositoryContext,
	FieldHighRiskIndicators,
	FieldAiSummary,
	FieldDegraded,
	FieldDetectionTimestamp,
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
	// DefaultDegraded holds the default value on creation for the "degraded" field.
	DefaultDegraded bool
	// DefaultDetectionTimestamp holds the default value on creation for the "detection_timestamp" field.
	DefaultDetectionTimestamp func() time.Time
)

// SeverityLevel defines the type for the "severity_level" enum field.
type SeverityLevel string

// SeverityLevel values.
const (
	SeverityLevelInfo     SeverityLevel = "info"
	SeverityLevelLow      SeverityLevel = "low"
	SeverityLevelMedium   SeverityLevel = "medium"
	SeverityLevelHigh     SeverityLevel = "high"
	SeverityLevelCritical SeverityLevel = "critical"
)

func (sl SeverityLevel) String() string {
	return string(sl)
}

// SeverityLevelValidator is a validator for the "severity_level" field enum values. It is called by the builders before save.
func SeverityLevelValidator(sl SeverityLevel) error {
	switch sl {
	case SeverityLevelInfo, SeverityLevelLow, SeverityLevelMedium, SeverityLevelHigh, SeverityLevelCritical:
		return nil
	default:
		return fmt.Errorf("anomalyrecord: invalid enum value for severity_level field: %q", sl)
	}
}

// OrderOption defines the ordering options for the AnomalyRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByEventID orders the results by the event_id field.
func ByEventID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventID, opts...).ToFunc()
}

// ByRepositoryName orders the results by the repository_name field.
func ByRepositoryName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryName, opts...).ToFunc()
}

// ByUserLogin orders the results by the user_login field.
func ByUserLogin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserLogin, opts...).ToFunc()
}

// ByEventType orders the results by the event_type field.
func ByEventType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventType, opts...).ToFunc()
}

// ByEventTimestamp orders the results by the event_timestamp field.
func ByEventTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEventTimestamp, opts...).ToFunc()
}

// ByBehavioralAnomalyScore orders the results by the behavioral_anomaly_score field.
func ByBehavioralAnomalyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBehavioralAnomalyScore, opts...).ToFunc()
}

// ByContentRiskScore orders the results by the content_risk_score field.
func ByContentRiskScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentRiskScore, opts...).ToFunc()
}

// ByTemporalAnomalyScore orders the results by the temporal_anomaly_score field.
func ByTemporalAnomalyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTemporalAnomalyScore, opts...).ToFunc()
}

// ByRepositoryCriticalityScore orders the results by the repository_criticality_score field.
func ByRepositoryCriticalityScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRepositoryCriticalityScore, opts...).ToFunc()
}

// ByFinalAnomalyScore orders the results by the final_anomaly_score field.
func ByFinalAnomalyScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinalAnomalyScore, opts...).ToFunc()
}

// BySeverityLevel orders the results by the severity_level field.
func BySeverityLevel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSeverityLevel, opts...).ToFunc()
}

// ByPrimaryMethod orders the results by the primary_method field.
func ByPrimaryMethod(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryMethod, opts...).ToFunc()
}

// ByAiSummary orders the results by the ai_summary field.
func ByAiSummary(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAiSummary, opts...).ToFunc()
}

// ByDegraded orders the results by the degraded field.
func ByDegraded(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDegraded, opts...).ToFunc()
}

// ByDetectionTimestamp orders the results by the detection_timestamp field.
func ByDetectionTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionTimestamp, opts...).ToFunc()
}
