package detect

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/config"
	"github.com/forgewatch/forgewatch/pkg/models"
)

func pushEvent(t *testing.T, payload models.PushPayload) models.Event {
	t.Helper()
	raw, err := json.Marshal(payload)
	require.NoError(t, err)
	return models.Event{
		ID:         "evt-1",
		Type:       models.TypePush,
		Actor:      models.Actor{ID: 1, Login: "octocat"},
		Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Date(2026, 3, 14, 2, 0, 0, 0, time.UTC),
		Payload:    raw,
		Priority:   models.PriorityHigh,
	}
}

func detectContent(t *testing.T, ev models.Event) Result {
	t.Helper()
	d := NewContentDetector(config.DefaultDetectionConfig())
	return d.Detect(context.Background(), &Input{Event: ev, Windows: NewWindowIndex()})
}

func TestContentSecretScan(t *testing.T) {
	key := "AKIA" + strings.Repeat("A", 16)
	ev := pushEvent(t, models.PushPayload{
		Ref: "refs/heads/feature",
		Commits: []models.PushCommit{
			{SHA: "abcdef1234567890", Message: "temp creds " + key + " do not commit"},
		},
	})

	res := detectContent(t, ev)
	assert.InDelta(t, 0.9, res.Score, 1e-9)

	require.NotEmpty(t, res.Anomalies)
	a := res.Anomalies[0]
	assert.Equal(t, "secret:aws_access_key", a.Type)
	assert.Equal(t, "abcdef123456", a.Location)

	// Redacted: 16-char prefix plus length, never the full key.
	assert.Equal(t, fmt.Sprintf("%s[len=%d]", key[:16], len(key)), a.Match)
	assert.NotContains(t, a.Match, key)
}

func TestContentForcePush(t *testing.T) {
	t.Run("default branch", func(t *testing.T) {
		res := detectContent(t, pushEvent(t, models.PushPayload{
			Ref: "refs/heads/main", Forced: true,
		}))
		assert.InDelta(t, 0.8, res.Score, 1e-9)
	})

	t.Run("feature branch", func(t *testing.T) {
		res := detectContent(t, pushEvent(t, models.PushPayload{
			Ref: "refs/heads/wip", Forced: true,
		}))
		assert.InDelta(t, 0.5, res.Score, 1e-9)
	})
}

func TestContentMassDeletion(t *testing.T) {
	removed := func(n int) []string {
		files := make([]string, n)
		for i := range files {
			files[i] = fmt.Sprintf("src/file%d.go", i)
		}
		return files
	}

	t.Run("ten files", func(t *testing.T) {
		res := detectContent(t, pushEvent(t, models.PushPayload{
			Ref:     "refs/heads/main",
			Commits: []models.PushCommit{{SHA: "a", Message: "cleanup", Removed: removed(10)}},
		}))
		assert.InDelta(t, 0.7, res.Score, 1e-9)
	})

	t.Run("sixty files", func(t *testing.T) {
		res := detectContent(t, pushEvent(t, models.PushPayload{
			Ref:     "refs/heads/main",
			Commits: []models.PushCommit{{SHA: "a", Message: "nuke", Removed: removed(60)}},
		}))
		assert.InDelta(t, 0.9, res.Score, 1e-9)
	})

	t.Run("nine files is quiet", func(t *testing.T) {
		res := detectContent(t, pushEvent(t, models.PushPayload{
			Ref:     "refs/heads/main",
			Commits: []models.PushCommit{{SHA: "a", Message: "cleanup", Removed: removed(9)}},
		}))
		assert.Zero(t, res.Score)
	})
}

func TestContentSuspiciousFiles(t *testing.T) {
	res := detectContent(t, pushEvent(t, models.PushPayload{
		Ref: "refs/heads/main",
		Commits: []models.PushCommit{{
			SHA:     "a",
			Message: "add config",
			Added:   []string{"config/.env", "keys/server.pem", "docs/readme.md"},
		}},
	}))

	var suspicious int
	for _, a := range res.Anomalies {
		if a.Type == "suspicious_file" {
			suspicious++
		}
	}
	assert.Equal(t, 2, suspicious)
	// 0.6 each, capped cumulative at 0.9.
	assert.InDelta(t, 0.9, res.Score, 1e-9)
}

func TestContentBinaryChanges(t *testing.T) {
	res := detectContent(t, pushEvent(t, models.PushPayload{
		Ref: "refs/heads/main",
		Commits: []models.PushCommit{{
			SHA:      "a",
			Message:  "vendor blobs",
			Added:    []string{"bin/tool.exe", "lib/core.dll", "lib/native.so"},
			Modified: []string{"main.go"},
		}},
	}))

	var binary *Anomaly
	for i := range res.Anomalies {
		if res.Anomalies[i].Type == "binary_change" {
			binary = &res.Anomalies[i]
		}
	}
	require.NotNil(t, binary)
	// 0.3 each, capped at 0.5.
	assert.InDelta(t, 0.5, binary.Severity, 1e-9)
}

func TestContentDeleteEvent(t *testing.T) {
	del := models.Event{
		ID:         "evt-2",
		Type:       models.TypeDelete,
		Actor:      models.Actor{ID: 1, Login: "octocat"},
		Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Now().UTC(),
		Payload:    json.RawMessage(`{"ref": "main", "ref_type": "branch"}`),
	}

	res := detectContent(t, del)
	assert.InDelta(t, 0.7, res.Score, 1e-9)
}

func TestContentIgnoresOtherTypes(t *testing.T) {
	ev := models.Event{
		ID:         "evt-3",
		Type:       models.TypeWatch,
		Actor:      models.Actor{ID: 1, Login: "octocat"},
		Repository: models.Repository{ID: 7, FullName: "octo-org/widgets"},
		Timestamp:  time.Now().UTC(),
	}
	res := detectContent(t, ev)
	assert.Zero(t, res.Score)
	assert.Empty(t, res.Anomalies)
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "short[len=5]", redact("short"))
	long := strings.Repeat("x", 40)
	assert.Equal(t, long[:16]+"[len=40]", redact(long))
}
