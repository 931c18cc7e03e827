package events

import (
	"encoding/json"

	"github.com/lazharichir/handscore/events"
	"github.com/lazharichir/handscore/server/connection"
	"github.com/rs/zerolog/log"
)

// EventEnvelope wraps an event with its name for client consumption
type EventEnvelope struct {
	Name    string          `json:"name"`
	Payload json.RawMessage `json:"payload"`
}

// Dispatcher handles routing events to clients
type Dispatcher struct {
	connMgr *connection.Manager
	store   events.EventStore
}

// NewDispatcher creates a new event dispatcher. Every queued event is also
// appended to store.
func NewDispatcher(connMgr *connection.Manager, store events.EventStore) *Dispatcher {
	return &Dispatcher{
		connMgr: connMgr,
		store:   store,
	}
}

// Encode marshals an event into its envelope
func Encode(event events.Event) ([]byte, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return nil, err
	}

	return json.Marshal(EventEnvelope{
		Name:    event.Name(),
		Payload: payload,
	})
}

// SendToClient queues the event on the client's connection. Only events that
// were actually queued are recorded in the store.
func (d *Dispatcher) SendToClient(clientID string, event events.Event) bool {
	data, err := Encode(event)
	if err != nil {
		log.Error().Err(err).Str("event", event.Name()).Msg("failed to marshal event")
		return false
	}

	sent := d.connMgr.Deliver(clientID, data, func() {
		if err := d.store.Append(clientID, event); err != nil {
			log.Warn().Err(err).Str("event", event.Name()).Msg("failed to store event")
		}
	})
	log.Debug().
		Str("client_id", clientID).
		Str("event", event.Name()).
		Bool("sent", sent).
		Msg("dispatching event")
	return sent
}
