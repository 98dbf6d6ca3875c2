package detect

import (
	"encoding/json"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/models"
)

func TestWindowIndexActorSpans(t *testing.T) {
	w := NewWindowIndex()
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 10; i++ {
		w.Observe(simpleEvent(fmt.Sprintf("e%d", i), "octocat", "octo-org/widgets",
			start.Add(time.Duration(i)*10*time.Minute)))
	}
	now := start.Add(90 * time.Minute)

	assert.Len(t, w.Actor("octocat", now, time.Hour), 7)       // minutes 30..90
	assert.Len(t, w.Actor("octocat", now, 24*time.Hour), 10)
	assert.Empty(t, w.Actor("someone-else", now, time.Hour))
}

func TestWindowIndexRepoActivity(t *testing.T) {
	w := NewWindowIndex()
	now := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 6; i++ {
		ev := simpleEvent(fmt.Sprintf("e%d", i), fmt.Sprintf("actor-%d", i%3), "octo-org/widgets",
			now.Add(time.Duration(i)*time.Minute))
		w.Observe(ev)
	}

	events, actors := w.RepoActivity("octo-org/widgets", now.Add(5*time.Minute), 10*time.Minute)
	assert.Equal(t, 6, events)
	assert.Equal(t, 3, actors)
}

func TestWindowIndexPrunes(t *testing.T) {
	w := NewWindowIndex()
	start := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)

	w.Observe(simpleEvent("old", "octocat", "octo-org/widgets", start))
	w.Observe(simpleEvent("new", "octocat", "octo-org/widgets", start.Add(25*time.Hour)))

	recs := w.Actor("octocat", start.Add(25*time.Hour), 24*time.Hour)
	require.Len(t, recs, 1)
	assert.Equal(t, "new", recs[0].EventID)
}

func TestWindowIndexPushMetadata(t *testing.T) {
	w := NewWindowIndex()
	payload, err := json.Marshal(models.PushPayload{
		Ref: "refs/heads/main",
		Commits: []models.PushCommit{
			{SHA: "a", Message: "fix widget", Modified: []string{"a.go", "b.go"}},
			{SHA: "b", Message: "more", Added: []string{"c.go"}},
		},
	})
	require.NoError(t, err)

	ev := simpleEvent("e1", "octocat", "octo-org/widgets", time.Now().UTC())
	ev.Payload = payload
	w.Observe(ev)

	recs := w.Actor("octocat", ev.Timestamp, time.Hour)
	require.Len(t, recs, 1)
	assert.Equal(t, 2, recs[0].CommitCount)
	assert.Equal(t, 3, recs[0].FilesChanged)
	assert.Equal(t, len("fix widget")+len("more"), recs[0].CommitMsgLen)
}

func TestExtractFeatures(t *testing.T) {
	w := NewWindowIndex()
	start := time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC) // Saturday, off hours

	for i := 0; i < 4; i++ {
		repo := "octo-org/alpha"
		if i == 3 {
			repo = "octo-org/beta"
		}
		ev := simpleEvent(fmt.Sprintf("e%d", i), "octocat", repo,
			start.Add(time.Duration(i)*10*time.Minute))
		w.Observe(ev)
	}
	now := start.Add(30 * time.Minute)

	x := ExtractFeatures(w, "octocat", now)

	assert.Equal(t, 4.0, x[FeatEventsPerHour])
	assert.InDelta(t, 0.5, x[FeatRepoDiversity], 1e-9)    // 2 repos / 4 events
	assert.InDelta(t, 10, x[FeatAvgInterEventMinutes], 1e-9)
	assert.InDelta(t, 0.5, x[FeatTimeSpreadHours], 1e-9)
	assert.Zero(t, x[FeatEventTypeEntropy], "all pushes")
	assert.InDelta(t, 1.0, x[FeatWeekendRatio], 1e-9)
	assert.InDelta(t, 1.0, x[FeatOffHoursRatio], 1e-9, "02:00-02:30 UTC")
}

func TestExtractFeaturesEmptyWindow(t *testing.T) {
	w := NewWindowIndex()
	x := ExtractFeatures(w, "ghost", time.Now().UTC())
	require.Len(t, x, 10)
	for i, v := range x {
		assert.Zero(t, v, "feature %d", i)
	}
}
