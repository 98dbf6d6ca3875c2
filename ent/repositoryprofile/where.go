// Code generated by ent, DO NOT EDIT.

package repositoryprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/forgewatch/forgewatch/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldContainsFold(FieldID, id))
}

// EventsPerHour applies equality check predicate on the "events_per_hour" field. It's identical to EventsPerHourEQ.
func EventsPerHour(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldEventsPerHour, v))
}

// ContributorEstimate applies equality check predicate on the "contributor_estimate" field. It's identical to ContributorEstimateEQ.
func ContributorEstimate(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldContributorEstimate, v))
}

// Stars applies equality check predicate on the "stars" field. It's identical to StarsEQ.
func Stars(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldStars, v))
}

// Forks applies equality check predicate on the "forks" field. It's identical to ForksEQ.
func Forks(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldForks, v))
}

// HasSecurityPolicy applies equality check predicate on the "has_security_policy" field. It's identical to HasSecurityPolicyEQ.
func HasSecurityPolicy(v bool) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldHasSecurityPolicy, v))
}

// ProtectedBranches applies equality check predicate on the "protected_branches" field. It's identical to ProtectedBranchesEQ.
func ProtectedBranches(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldProtectedBranches, v))
}

// Criticality applies equality check predicate on the "criticality" field. It's identical to CriticalityEQ.
func Criticality(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldCriticality, v))
}

// CriticalityUpdatedAt applies equality check predicate on the "criticality_updated_at" field. It's identical to CriticalityUpdatedAtEQ.
func CriticalityUpdatedAt(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldCriticalityUpdatedAt, v))
}

// FirstSeen applies equality check predicate on the "first_seen" field. It's identical to FirstSeenEQ.
func FirstSeen(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldFirstSeen, v))
}

// LastUpdated applies equality check predicate on the "last_updated" field. It's identical to LastUpdatedEQ.
func LastUpdated(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// EventsPerHourEQ applies the EQ predicate on the "events_per_hour" field.
func EventsPerHourEQ(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldEventsPerHour, v))
}

// EventsPerHourNEQ applies the NEQ predicate on the "events_per_hour" field.
func EventsPerHourNEQ(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldEventsPerHour, v))
}

// EventsPerHourIn applies the In predicate on the "events_per_hour" field.
func EventsPerHourIn(vs ...float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldEventsPerHour, vs...))
}

// EventsPerHourNotIn applies the NotIn predicate on the "events_per_hour" field.
func EventsPerHourNotIn(vs ...float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldEventsPerHour, vs...))
}

// EventsPerHourGT applies the GT predicate on the "events_per_hour" field.
func EventsPerHourGT(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldEventsPerHour, v))
}

// EventsPerHourGTE applies the GTE predicate on the "events_per_hour" field.
func EventsPerHourGTE(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldEventsPerHour, v))
}

// EventsPerHourLT applies the LT predicate on the "events_per_hour" field.
func EventsPerHourLT(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldEventsPerHour, v))
}

// EventsPerHourLTE applies the LTE predicate on the "events_per_hour" field.
func EventsPerHourLTE(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldEventsPerHour, v))
}

// ContributorEstimateEQ applies the EQ predicate on the "contributor_estimate" field.
func ContributorEstimateEQ(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldContributorEstimate, v))
}

// ContributorEstimateNEQ applies the NEQ predicate on the "contributor_estimate" field.
func ContributorEstimateNEQ(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldContributorEstimate, v))
}

// ContributorEstimateIn applies the In predicate on the "contributor_estimate" field.
func ContributorEstimateIn(vs ...float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldContributorEstimate, vs...))
}

// ContributorEstimateNotIn applies the NotIn predicate on the "contributor_estimate" field.
func ContributorEstimateNotIn(vs ...float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldContributorEstimate, vs...))
}

// ContributorEstimateGT applies the GT predicate on the "contributor_estimate" field.
func ContributorEstimateGT(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldContributorEstimate, v))
}

// ContributorEstimateGTE applies the GTE predicate on the "contributor_estimate" field.
func ContributorEstimateGTE(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldContributorEstimate, v))
}

// ContributorEstimateLT applies the LT predicate on the "contributor_estimate" field.
func ContributorEstimateLT(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldContributorEstimate, v))
}

// ContributorEstimateLTE applies the LTE predicate on the "contributor_estimate" field.
func ContributorEstimateLTE(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldContributorEstimate, v))
}

// StarsEQ applies the EQ predicate on the "stars" field.
func StarsEQ(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldStars, v))
}

// StarsNEQ applies the NEQ predicate on the "stars" field.
func StarsNEQ(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldStars, v))
}

// StarsIn applies the In predicate on the "stars" field.
func StarsIn(vs ...int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldStars, vs...))
}

// StarsNotIn applies the NotIn predicate on the "stars" field.
func StarsNotIn(vs ...int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldStars, vs...))
}

// StarsGT applies the GT predicate on the "stars" field.
func StarsGT(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldStars, v))
}

// StarsGTE applies the GTE predicate on the "stars" field.
func StarsGTE(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldStars, v))
}

// StarsLT applies the LT predicate on the "stars" field.
func StarsLT(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldStars, v))
}

// StarsLTE applies the LTE predicate on the "stars" field.
func StarsLTE(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldStars, v))
}

// ForksEQ applies the EQ predicate on the "forks" field.
func ForksEQ(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldForks, v))
}

// ForksNEQ applies the NEQ predicate on the "forks" field.
func ForksNEQ(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldForks, v))
}

// ForksIn applies the In predicate on the "forks" field.
func ForksIn(vs ...int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldForks, vs...))
}

// ForksNotIn applies the NotIn predicate on the "forks" field.
func ForksNotIn(vs ...int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldForks, vs...))
}

// ForksGT applies the GT predicate on the "forks" field.
func ForksGT(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldForks, v))
}

// ForksGTE applies the GTE predicate on the "forks" field.
func ForksGTE(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldForks, v))
}

// ForksLT applies the LT predicate on the "forks" field.
func ForksLT(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldForks, v))
}

// ForksLTE applies the LTE predicate on the "forks" field.
func ForksLTE(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldForks, v))
}

// HasSecurityPolicyEQ applies the EQ predicate on the "has_security_policy" field.
func HasSecurityPolicyEQ(v bool) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldHasSecurityPolicy, v))
}

// HasSecurityPolicyNEQ applies the NEQ predicate on the "has_security_policy" field.
func HasSecurityPolicyNEQ(v bool) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldHasSecurityPolicy, v))
}

// ProtectedBranchesEQ applies the EQ predicate on the "protected_branches" field.
func ProtectedBranchesEQ(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldProtectedBranches, v))
}

// ProtectedBranchesNEQ applies the NEQ predicate on the "protected_branches" field.
func ProtectedBranchesNEQ(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldProtectedBranches, v))
}

// ProtectedBranchesIn applies the In predicate on the "protected_branches" field.
func ProtectedBranchesIn(vs ...int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldProtectedBranches, vs...))
}

// ProtectedBranchesNotIn applies the NotIn predicate on the "protected_branches" field.
func ProtectedBranchesNotIn(vs ...int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldProtectedBranches, vs...))
}

// ProtectedBranchesGT applies the GT predicate on the "protected_branches" field.
func ProtectedBranchesGT(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldProtectedBranches, v))
}

// ProtectedBranchesGTE applies the GTE predicate on the "protected_branches" field.
func ProtectedBranchesGTE(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldProtectedBranches, v))
}

// ProtectedBranchesLT applies the LT predicate on the "protected_branches" field.
func ProtectedBranchesLT(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldProtectedBranches, v))
}

// ProtectedBranchesLTE applies the LTE predicate on the "protected_branches" field.
func ProtectedBranchesLTE(v int) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldProtectedBranches, v))
}

// CriticalityEQ applies the EQ predicate on the "criticality" field.
func CriticalityEQ(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldCriticality, v))
}

// CriticalityNEQ applies the NEQ predicate on the "criticality" field.
func CriticalityNEQ(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldCriticality, v))
}

// CriticalityIn applies the In predicate on the "criticality" field.
func CriticalityIn(vs ...float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldCriticality, vs...))
}

// CriticalityNotIn applies the NotIn predicate on the "criticality" field.
func CriticalityNotIn(vs ...float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldCriticality, vs...))
}

// CriticalityGT applies the GT predicate on the "criticality" field.
func CriticalityGT(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldCriticality, v))
}

// CriticalityGTE applies the GTE predicate on the "criticality" field.
func CriticalityGTE(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldCriticality, v))
}

// CriticalityLT applies the LT predicate on the "criticality" field.
func CriticalityLT(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldCriticality, v))
}

// CriticalityLTE applies the LTE predicate on the "criticality" field.
func CriticalityLTE(v float64) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldCriticality, v))
}

// CriticalityUpdatedAtEQ applies the EQ predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtEQ(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldCriticalityUpdatedAt, v))
}

// CriticalityUpdatedAtNEQ applies the NEQ predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtNEQ(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldCriticalityUpdatedAt, v))
}

// CriticalityUpdatedAtIn applies the In predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtIn(vs ...time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldCriticalityUpdatedAt, vs...))
}

// CriticalityUpdatedAtNotIn applies the NotIn predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtNotIn(vs ...time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldCriticalityUpdatedAt, vs...))
}

// CriticalityUpdatedAtGT applies the GT predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtGT(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldCriticalityUpdatedAt, v))
}

// CriticalityUpdatedAtGTE applies the GTE predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtGTE(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldCriticalityUpdatedAt, v))
}

// CriticalityUpdatedAtLT applies the LT predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtLT(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldCriticalityUpdatedAt, v))
}

// CriticalityUpdatedAtLTE applies the LTE predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtLTE(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldCriticalityUpdatedAt, v))
}

// CriticalityUpdatedAtIsNil applies the IsNil predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtIsNil() predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIsNull(FieldCriticalityUpdatedAt))
}

// CriticalityUpdatedAtNotNil applies the NotNil predicate on the "criticality_updated_at" field.
func CriticalityUpdatedAtNotNil() predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotNull(FieldCriticalityUpdatedAt))
}

// FirstSeenEQ applies the EQ predicate on the "first_seen" field.
func FirstSeenEQ(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldFirstSeen, v))
}

// FirstSeenNEQ applies the NEQ predicate on the "first_seen" field.
func FirstSeenNEQ(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldFirstSeen, v))
}

// FirstSeenIn applies the In predicate on the "first_seen" field.
func FirstSeenIn(vs ...time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldFirstSeen, vs...))
}

// FirstSeenNotIn applies the NotIn predicate on the "first_seen" field.
func FirstSeenNotIn(vs ...time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldFirstSeen, vs...))
}

// FirstSeenGT applies the GT predicate on the "first_seen" field.
func FirstSeenGT(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldFirstSeen, v))
}

// FirstSeenGTE applies the GTE predicate on the "first_seen" field.
func FirstSeenGTE(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldFirstSeen, v))
}

// FirstSeenLT applies the LT predicate on the "first_seen" field.
func FirstSeenLT(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldFirstSeen, v))
}

// FirstSeenLTE applies the LTE predicate on the "first_seen" field.
func FirstSeenLTE(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldFirstSeen, v))
}

// LastUpdatedEQ applies the EQ predicate on the "last_updated" field.
func LastUpdatedEQ(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldEQ(FieldLastUpdated, v))
}

// LastUpdatedNEQ applies the NEQ predicate on the "last_updated" field.
func LastUpdatedNEQ(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNEQ(FieldLastUpdated, v))
}

// LastUpdatedIn applies the In predicate on the "last_updated" field.
func LastUpdatedIn(vs ...time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldIn(FieldLastUpdated, vs...))
}

// LastUpdatedNotIn applies the NotIn predicate on the "last_updated" field.
func LastUpdatedNotIn(vs ...time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldNotIn(FieldLastUpdated, vs...))
}

// LastUpdatedGT applies the GT predicate on the "last_updated" field.
func LastUpdatedGT(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGT(FieldLastUpdated, v))
}

// LastUpdatedGTE applies the GTE predicate on the "last_updated" field.
func LastUpdatedGTE(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldGTE(FieldLastUpdated, v))
}

// LastUpdatedLT applies the LT predicate on the "last_updated" field.
func LastUpdatedLT(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLT(FieldLastUpdated, v))
}

// LastUpdatedLTE applies the LTE predicate on the "last_updated" field.
func LastUpdatedLTE(v time.Time) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.FieldLTE(FieldLastUpdated, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RepositoryProfile) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RepositoryProfile) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RepositoryProfile) predicate.RepositoryProfile {
	return predicate.RepositoryProfile(sql.NotPredicates(p))
}
