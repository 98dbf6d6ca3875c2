// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/forgewatch/forgewatch/ent/anomalyrecord"
	"github.com/forgewatch/forgewatch/ent/githubevent"
	"github.com/forgewatch/forgewatch/ent/repositoryprofile"
	"github.com/forgewatch/forgewatch/ent/schema"
	"github.com/forgewatch/forgewatch/ent/streamevent"
	"github.com/forgewatch/forgewatch/ent/temporalpattern"
	"github.com/forgewatch/forgewatch/ent/userprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	anomalyrecordFields := schema.AnomalyRecord{}.Fields()
	_ = anomalyrecordFields
	// anomalyrecordDescDegraded is the schema descriptor for degraded field.
	anomalyrecordDescDegraded := anomalyrecordFields[18].Descriptor()
	// anomalyrecord.DefaultDegraded holds the default value on creation for the degraded field.
	anomalyrecord.DefaultDegraded = anomalyrecordDescDegraded.Default.(bool)
	// anomalyrecordDescDetectionTimestamp is the schema descriptor for detection_timestamp field.
	anomalyrecordDescDetectionTimestamp := anomalyrecordFields[19].Descriptor()
	// anomalyrecord.DefaultDetectionTimestamp holds the default value on creation for the detection_timestamp field.
	anomalyrecord.DefaultDetectionTimestamp = anomalyrecordDescDetectionTimestamp.Default.(func() time.Time)
	githubeventFields := schema.GitHubEvent{}.Fields()
	_ = githubeventFields
	// githubeventDescCreatedAt is the schema descriptor for created_at field.
	githubeventDescCreatedAt := githubeventFields[13].Descriptor()
	// githubevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	githubevent.DefaultCreatedAt = githubeventDescCreatedAt.Default.(func() time.Time)
	repositoryprofileFields := schema.RepositoryProfile{}.Fields()
	_ = repositoryprofileFields
	// repositoryprofileDescEventsPerHour is the schema descriptor for events_per_hour field.
	repositoryprofileDescEventsPerHour := repositoryprofileFields[1].Descriptor()
	// repositoryprofile.DefaultEventsPerHour holds the default value on creation for the events_per_hour field.
	repositoryprofile.DefaultEventsPerHour = repositoryprofileDescEventsPerHour.Default.(float64)
	// repositoryprofileDescContributorEstimate is the schema descriptor for contributor_estimate field.
	repositoryprofileDescContributorEstimate := repositoryprofileFields[2].Descriptor()
	// repositoryprofile.DefaultContributorEstimate holds the default value on creation for the contributor_estimate field.
	repositoryprofile.DefaultContributorEstimate = repositoryprofileDescContributorEstimate.Default.(float64)
	// repositoryprofileDescStars is the schema descriptor for stars field.
	repositoryprofileDescStars := repositoryprofileFields[3].Descriptor()
	// repositoryprofile.DefaultStars holds the default value on creation for the stars field.
	repositoryprofile.DefaultStars = repositoryprofileDescStars.Default.(int)
	// repositoryprofileDescForks is the schema descriptor for forks field.
	repositoryprofileDescForks := repositoryprofileFields[4].Descriptor()
	// repositoryprofile.DefaultForks holds the default value on creation for the forks field.
	repositoryprofile.DefaultForks = repositoryprofileDescForks.Default.(int)
	// repositoryprofileDescHasSecurityPolicy is the schema descriptor for has_security_policy field.
	repositoryprofileDescHasSecurityPolicy := repositoryprofileFields[5].Descriptor()
	// repositoryprofile.DefaultHasSecurityPolicy holds the default value on creation for the has_security_policy field.
	repositoryprofile.DefaultHasSecurityPolicy = repositoryprofileDescHasSecurityPolicy.Default.(bool)
	// repositoryprofileDescProtectedBranches is the schema descriptor for protected_branches field.
	repositoryprofileDescProtectedBranches := repositoryprofileFields[6].Descriptor()
	// repositoryprofile.DefaultProtectedBranches holds the default value on creation for the protected_branches field.
	repositoryprofile.DefaultProtectedBranches = repositoryprofileDescProtectedBranches.Default.(int)
	// repositoryprofileDescCriticality is the schema descriptor for criticality field.
	repositoryprofileDescCriticality := repositoryprofileFields[7].Descriptor()
	// repositoryprofile.DefaultCriticality holds the default value on creation for the criticality field.
	repositoryprofile.DefaultCriticality = repositoryprofileDescCriticality.Default.(float64)
	// repositoryprofileDescFirstSeen is the schema descriptor for first_seen field.
	repositoryprofileDescFirstSeen := repositoryprofileFields[9].Descriptor()
	// repositoryprofile.DefaultFirstSeen holds the default value on creation for the first_seen field.
	repositoryprofile.DefaultFirstSeen = repositoryprofileDescFirstSeen.Default.(func() time.Time)
	// repositoryprofileDescLastUpdated is the schema descriptor for last_updated field.
	repositoryprofileDescLastUpdated := repositoryprofileFields[10].Descriptor()
	// repositoryprofile.DefaultLastUpdated holds the default value on creation for the last_updated field.
	repositoryprofile.DefaultLastUpdated = repositoryprofileDescLastUpdated.Default.(func() time.Time)
	// repositoryprofile.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	repositoryprofile.UpdateDefaultLastUpdated = repositoryprofileDescLastUpdated.UpdateDefault.(func() time.Time)
	streameventFields := schema.StreamEvent{}.Fields()
	_ = streameventFields
	// streameventDescCreatedAt is the schema descriptor for created_at field.
	streameventDescCreatedAt := streameventFields[2].Descriptor()
	// streamevent.DefaultCreatedAt holds the default value on creation for the created_at field.
	streamevent.DefaultCreatedAt = streameventDescCreatedAt.Default.(func() time.Time)
	temporalpatternFields := schema.TemporalPattern{}.Fields()
	_ = temporalpatternFields
	// temporalpatternDescActorCount is the schema descriptor for actor_count field.
	temporalpatternDescActorCount := temporalpatternFields[6].Descriptor()
	// temporalpattern.DefaultActorCount holds the default value on creation for the actor_count field.
	temporalpattern.DefaultActorCount = temporalpatternDescActorCount.Default.(int)
	// temporalpatternDescDetectedAt is the schema descriptor for detected_at field.
	temporalpatternDescDetectedAt := temporalpatternFields[9].Descriptor()
	// temporalpattern.DefaultDetectedAt holds the default value on creation for the detected_at field.
	temporalpattern.DefaultDetectedAt = temporalpatternDescDetectedAt.Default.(func() time.Time)
	userprofileFields := schema.UserProfile{}.Fields()
	_ = userprofileFields
	// userprofileDescSampleCount is the schema descriptor for sample_count field.
	userprofileDescSampleCount := userprofileFields[3].Descriptor()
	// userprofile.DefaultSampleCount holds the default value on creation for the sample_count field.
	userprofile.DefaultSampleCount = userprofileDescSampleCount.Default.(int64)
	// userprofileDescWeekRate is the schema descriptor for week_rate field.
	userprofileDescWeekRate := userprofileFields[6].Descriptor()
	// userprofile.DefaultWeekRate holds the default value on creation for the week_rate field.
	userprofile.DefaultWeekRate = userprofileDescWeekRate.Default.(float64)
	// userprofileDescFirstSeen is the schema descriptor for first_seen field.
	userprofileDescFirstSeen := userprofileFields[8].Descriptor()
	// userprofile.DefaultFirstSeen holds the default value on creation for the first_seen field.
	userprofile.DefaultFirstSeen = userprofileDescFirstSeen.Default.(func() time.Time)
	// userprofileDescLastUpdated is the schema descriptor for last_updated field.
	userprofileDescLastUpdated := userprofileFields[9].Descriptor()
	// userprofile.DefaultLastUpdated holds the default value on creation for the last_updated field.
	userprofile.DefaultLastUpdated = userprofileDescLastUpdated.Default.(func() time.Time)
	// userprofile.UpdateDefaultLastUpdated holds the default value on update for the last_updated field.
	userprofile.UpdateDefaultLastUpdated = userprofileDescLastUpdated.UpdateDefault.(func() time.Time)
}
