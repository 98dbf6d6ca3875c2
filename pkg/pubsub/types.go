// Package pubsub delivers anomaly reports and processing stats to
// WebSocket subscribers, using PostgreSQL NOTIFY/LISTEN so that a report
// published by any replica reaches clients connected to every replica.
//
// Anomaly messages are persisted to the stream_events table inside the
// publishing transaction, then broadcast via NOTIFY. The stored row id is
// injected into the NOTIFY payload as db_event_id; a reconnecting client
// sends its last seen db_event_id in a catchup request and receives the
// rows it missed. Processing stats are transient: NOTIFY only, lost on
// disconnect, which is fine because the next batch replaces them.
package pubsub

// Message types carried in the "type" field of every payload.
const (
	MessageTypeAnomaly = "anomaly.detected"
	MessageTypeStats   = "processing.stats"
)

// ChannelAnomalies carries every reported anomaly regardless of severity.
// Persistent: rows land in stream_events before NOTIFY fires.
const ChannelAnomalies = "anomalies"

// ChannelStats carries one message per processed batch. Transient.
const ChannelStats = "processing_stats"

// SeverityChannel returns the channel carrying only anomalies of the
// given severity. Format: "anomalies_{severity}". Transient fan-out of
// the persistent anomalies channel.
func SeverityChannel(severity string) string {
	return "anomalies_" + severity
}

// UserChannel returns the channel for one actor's anomalies.
// Format: "user_{login}".
func UserChannel(login string) string {
	return "user_" + login
}

// RepoChannel returns the channel for one repository's anomalies.
// Format: "repo_{owner/name}".
func RepoChannel(fullName string) string {
	return "repo_" + fullName
}

// ClientMessage is the JSON structure for client → server WebSocket messages.
type ClientMessage struct {
	Action      string `json:"action"`                  // "subscribe", "unsubscribe", "catchup", "ping"
	Channel     string `json:"channel,omitempty"`       // Channel name (e.g., "anomalies_critical")
	LastEventID *int   `json:"last_event_id,omitempty"` // For catchup
}
