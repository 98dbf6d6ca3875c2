package pubsub

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgewatch/forgewatch/pkg/models"
	"github.com/forgewatch/forgewatch/pkg/services"
	testdb "github.com/forgewatch/forgewatch/test/database"
)

// Exercises the full cross-replica path: one replica persists and
// notifies through its own pool, a second replica's LISTEN connection
// receives the notification and fans it out to a websocket subscriber.
func TestPublishDeliversAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	publisherDB := shared.NewClient(t)
	apiDB := shared.NewClient(t)

	ctx := context.Background()

	eventService := services.NewEventService(apiDB.Client)
	manager := NewConnectionManager(NewEventServiceAdapter(eventService), 5*time.Second)

	listener := NewNotifyListener(shared.ConnString(), manager)
	require.NoError(t, listener.Start(ctx))
	t.Cleanup(func() { listener.Stop(ctx) })
	manager.SetListener(listener)

	server := serveManager(t, manager)
	conn := connectWS(t, server)
	readJSON(t, conn) // connection.established

	writeJSON(t, conn, ClientMessage{Action: "subscribe", Channel: ChannelAnomalies})
	msg := readJSON(t, conn)
	require.Equal(t, "subscription.confirmed", msg["type"])

	report := &models.AnomalyReport{
		EventID:            "evt-xrep-1",
		RepositoryName:     "octo-org/widgets",
		UserLogin:          "octocat",
		EventType:          models.TypePush,
		Timestamp:          time.Now().UTC(),
		FinalAnomalyScore:  0.9,
		SeverityLevel:      models.SeverityCritical,
		PrimaryMethod:      "content",
		DetectionTimestamp: time.Now().UTC(),
	}

	pub := NewPublisher(publisherDB.DB())
	require.NoError(t, pub.PublishAnomaly(ctx, report))

	msg = readJSON(t, conn)
	assert.Equal(t, MessageTypeAnomaly, msg["type"])
	assert.Equal(t, "evt-xrep-1", msg["event_id"])
	assert.NotNil(t, msg["db_event_id"])

	// The same row must be replayable through catchup.
	writeJSON(t, conn, ClientMessage{Action: "catchup", Channel: ChannelAnomalies, LastEventID: intPtr(0)})
	msg = readJSON(t, conn)
	assert.Equal(t, MessageTypeAnomaly, msg["type"])
	assert.Equal(t, "evt-xrep-1", msg["event_id"])
}

func intPtr(v int) *int { return &v }
