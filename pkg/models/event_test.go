package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPriorityFor(t *testing.T) {
	tests := []struct {
		eventType string
		expected  Priority
	}{
		{TypePush, PriorityHigh},
		{TypeWorkflowRun, PriorityHigh},
		{TypeDelete, PriorityHigh},
		{TypeMember, PriorityHigh},
		{TypePullRequest, PriorityMedium},
		{TypeIssues, PriorityMedium},
		{TypeCreate, PriorityMedium},
		{TypeRelease, PriorityMedium},
		{TypeFork, PriorityMedium},
		{TypeWatch, PriorityLow},
		{TypeGollum, PriorityLow},
		{"SomeFutureEvent", PriorityLow},
		{"", PriorityLow},
	}
	for _, tt := range tests {
		t.Run(tt.eventType, func(t *testing.T) {
			assert.Equal(t, tt.expected, PriorityFor(tt.eventType))
		})
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, PriorityLow.Rank(), Priority("unknown").Rank())
}

func TestSampleLow(t *testing.T) {
	t.Run("deterministic", func(t *testing.T) {
		for _, id := range []string{"123", "456", "abc-def"} {
			first := SampleLow(id, 0.2)
			for i := 0; i < 10; i++ {
				assert.Equal(t, first, SampleLow(id, 0.2), "decision must be stable for %q", id)
			}
		}
	})

	t.Run("boundary fractions", func(t *testing.T) {
		assert.True(t, SampleLow("anything", 1.0))
		assert.True(t, SampleLow("anything", 1.5))
		assert.False(t, SampleLow("anything", 0))
		assert.False(t, SampleLow("anything", -0.1))
	})

	t.Run("fraction roughly honored", func(t *testing.T) {
		kept := 0
		const n = 10000
		for i := 0; i < n; i++ {
			if SampleLow(string(rune('a'+i%26))+string(rune('0'+i%10))+time.Duration(i).String(), 0.2) {
				kept++
			}
		}
		// 20% with generous slack for hash dispersion.
		assert.InDelta(t, 0.2, float64(kept)/n, 0.05)
	})
}

func validEvent() Event {
	return Event{
		ID:         "51000000001",
		Type:       TypePush,
		Actor:      Actor{ID: 42, Login: "octocat"},
		Repository: Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Date(2026, 3, 14, 2, 10, 0, 0, time.UTC),
		Priority:   PriorityHigh,
	}
}

func TestEventValidate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		e := validEvent()
		assert.NoError(t, e.Validate())
	})

	tests := []struct {
		name    string
		mutate  func(*Event)
		wantErr error
	}{
		{"missing id", func(e *Event) { e.ID = "" }, ErrMissingID},
		{"missing type", func(e *Event) { e.Type = "" }, ErrMissingType},
		{"missing actor", func(e *Event) { e.Actor.Login = "" }, ErrMissingActor},
		{"missing repo", func(e *Event) { e.Repository.FullName = "" }, ErrMissingRepo},
		{"missing timestamp", func(e *Event) { e.Timestamp = time.Time{} }, ErrMissingTimestamp},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := validEvent()
			tt.mutate(&e)
			err := e.Validate()
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestDecodePush(t *testing.T) {
	t.Run("valid payload", func(t *testing.T) {
		e := validEvent()
		e.Payload = json.RawMessage(`{
			"ref": "refs/heads/main",
			"size": 2,
			"forced": true,
			"commits": [
				{"sha": "aaa", "message": "fix", "modified": [".github/workflows/ci.yml"]},
				{"sha": "bbb", "message": "wip", "added": ["config/secrets.env"]}
			]
		}`)

		p, ok := e.DecodePush()
		require.True(t, ok)
		assert.Equal(t, "refs/heads/main", p.Ref)
		assert.True(t, p.Forced)
		require.Len(t, p.Commits, 2)
		assert.Equal(t, []string{".github/workflows/ci.yml"}, p.Commits[0].Modified)
	})

	t.Run("wrong type", func(t *testing.T) {
		e := validEvent()
		e.Type = TypeWatch
		e.Payload = json.RawMessage(`{"ref": "refs/heads/main"}`)
		_, ok := e.DecodePush()
		assert.False(t, ok)
	})

	t.Run("malformed payload", func(t *testing.T) {
		e := validEvent()
		e.Payload = json.RawMessage(`{"ref": `)
		_, ok := e.DecodePush()
		assert.False(t, ok)
	})

	t.Run("empty payload", func(t *testing.T) {
		e := validEvent()
		e.Payload = nil
		_, ok := e.DecodePush()
		assert.False(t, ok)
	})
}

func TestDecodeDelete(t *testing.T) {
	e := validEvent()
	e.Type = TypeDelete
	e.Payload = json.RawMessage(`{"ref": "main", "ref_type": "branch"}`)

	p, ok := e.DecodeDelete()
	require.True(t, ok)
	assert.Equal(t, "branch", p.RefType)
	assert.Equal(t, "main", p.Ref)
}
