package processor

import (
	"encoding/json"
	"sort"
	"time"

	"github.com/forgewatch/forgewatch/pkg/detect"
	"github.com/forgewatch/forgewatch/pkg/models"
)

// highRiskFloor is the anomaly severity at which an indicator string is
// surfaced on the report.
const highRiskFloor = 0.6

// buildReport assembles the stable wire record from the detector results
// and the fused score.
func buildReport(ev models.Event, results map[string]detect.Result, fusion detect.Fusion) *models.AnomalyReport {
	behavioral := results[detect.NameBehavioral]
	temporal := results[detect.NameTemporal]
	content := results[detect.NameContent]
	contextual := results[detect.NameContextual]

	return &models.AnomalyReport{
		EventID:        ev.ID,
		RepositoryName: ev.Repository.FullName,
		UserLogin:      ev.Actor.Login,
		EventType:      ev.Type,
		Timestamp:      ev.Timestamp,

		BehavioralAnomalyScore:     behavioral.Score,
		ContentRiskScore:           content.Score,
		TemporalAnomalyScore:       temporal.Score,
		RepositoryCriticalityScore: contextual.Score,
		FinalAnomalyScore:          fusion.Final,
		SeverityLevel:              models.SeverityFromScore(fusion.Final),
		PrimaryMethod:              fusion.PrimaryMethod,

		BehavioralAnalysis: marshalResult(behavioral),
		ContentAnalysis:    marshalResult(content),
		TemporalAnalysis:   marshalResult(temporal),
		RepositoryContext:  marshalResult(contextual),

		HighRiskIndicators: highRiskIndicators(results),
		Degraded: behavioral.Degraded || temporal.Degraded ||
			content.Degraded || contextual.Degraded,

		DetectionTimestamp: time.Now().UTC(),
	}
}

// highRiskIndicators collects the distinct anomaly types at or above the
// high-risk floor, sorted for stable output.
func highRiskIndicators(results map[string]detect.Result) []string {
	seen := map[string]bool{}
	for _, res := range results {
		for _, a := range res.Anomalies {
			if a.Severity >= highRiskFloor {
				seen[a.Type] = true
			}
		}
	}
	if len(seen) == 0 {
		return nil
	}
	indicators := make([]string, 0, len(seen))
	for t := range seen {
		indicators = append(indicators, t)
	}
	sort.Strings(indicators)
	return indicators
}

func marshalResult(res detect.Result) json.RawMessage {
	raw, err := json.Marshal(res)
	if err != nil {
		return nil
	}
	return raw
}
