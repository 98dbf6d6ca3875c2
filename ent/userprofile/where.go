// Code generated by ent, DO NOT EDIT.

package userprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldContainsFold(FieldID, id))
}

// SampleCount applies equality check predicate on the "sample_count" field. It's identical to SampleCountEQ.
func SampleCount(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldSampleCount, v))
}

// WeekRate applies equality check predicate on the "week_rate" field. It's identical to WeekRateEQ.
func WeekRate(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldWeekRate, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldFirstSeen, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// SampleCountEQ applies the EQ predicate on the "sample_count" field.
func SampleCountEQ(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldSampleCount, v))
}

// SampleCountNEQ applies the NEQ predicate on the "sample_count" field.
func SampleCountNEQ(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldSampleCount, v))
}

// SampleCountIn applies the In predicate on the "sample_count" field.
func SampleCountIn(vs ...int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldSampleCount, vs...))
}

// SampleCountNotIn applies the NotIn predicate on the "sample_count" field.
func SampleCountNotIn(vs ...int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldSampleCount, vs...))
}

// SampleCountGT applies the GT predicate on the "sample_count" field.
func SampleCountGT(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldSampleCount, v))
}

// SampleCountGTE applies the GTE predicate on the "sample_count" field.
func SampleCountGTE(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldSampleCount, v))
}

// SampleCountLT applies the LT predicate on the "sample_count" field.
func SampleCountLT(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldSampleCount, v))
}

// SampleCountLTE applies the LTE predicate on the "sample_count" field.
func SampleCountLTE(v int64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldSampleCount, v))
}

// FeatureHistoryIsNil applies the IsNil predicate on the "feature_history" field.
func FeatureHistoryIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldFeatureHistory))
}

// FeatureHistoryNotNil applies the NotNil predicate on the "feature_history" field.
func FeatureHistoryNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldFeatureHistory))
}

// HourCountsIsNil applies the IsNil predicate on the "hour_counts" field.
func HourCountsIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldHourCounts))
}

// HourCountsNotNil applies the NotNil predicate on the "hour_counts" field.
func HourCountsNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldHourCounts))
}

// WeekRateEQ applies the EQ predicate on the "week_rate" field.
func WeekRateEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldWeekRate, v))
}

// WeekRateNEQ applies the NEQ predicate on the "week_rate" field.
func WeekRateNEQ(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldWeekRate, v))
}

// WeekRateIn applies the In predicate on the "week_rate" field.
func WeekRateIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldWeekRate, vs...))
}

// WeekRateNotIn applies the NotIn predicate on the "week_rate" field.
func WeekRateNotIn(vs ...float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldWeekRate, vs...))
}

// WeekRateGT applies the GT predicate on the "week_rate" field.
func WeekRateGT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldWeekRate, v))
}

// WeekRateGTE applies the GTE predicate on the "week_rate" field.
func WeekRateGTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldWeekRate, v))
}

// WeekRateLT applies the LT predicate on the "week_rate" field.
func WeekRateLT(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldWeekRate, v))
}

// WeekRateLTE applies the LTE predicate on the "week_rate" field.
func WeekRateLTE(v float64) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldWeekRate, v))
}

// EventTypeCountsIsNil applies the IsNil predicate on the "event_type_counts" field.
func EventTypeCountsIsNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIsNull(FieldEventTypeCounts))
}

// EventTypeCountsNotNil applies the NotNil predicate on the "event_type_counts" field.
func EventTypeCountsNotNil() predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotNull(FieldEventTypeCounts))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldFirstSeen, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.UserProfile {
	return predicate.UserProfile(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UserProfile) predicate.UserProfile {
	return predicate.UserProfile(sql.NotPredicates(p))
}
