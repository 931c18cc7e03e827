package events

import (
	"encoding/json"
	"testing"

	"github.com/lazharichir/handscore/events"
	"github.com/lazharichir/handscore/server/connection"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncode(t *testing.T) {
	data, err := Encode(events.ClientConnected{ClientID: "c1"})
	require.NoError(t, err)

	var env EventEnvelope
	require.NoError(t, json.Unmarshal(data, &env))
	assert.Equal(t, "CLIENT_CONNECTED", env.Name)
	assert.JSONEq(t, `{"clientId":"c1"}`, string(env.Payload))
}

func TestDispatcher_RecordsOnlyQueuedEvents(t *testing.T) {
	connMgr := connection.NewManager()
	store := events.NewInMemoryEventStore()
	d := NewDispatcher(connMgr, store)

	client := &connection.Client{ID: "c1", Send: make(chan []byte, 1)}
	connMgr.Register(client)

	assert.True(t, d.SendToClient("c1", events.ClientConnected{ClientID: "c1"}))
	assert.False(t, d.SendToClient("c1", events.CategoryTable("full")), "buffer is full")

	stored, err := store.LoadEvents("c1")
	require.NoError(t, err)
	assert.Equal(t, []events.Event{events.ClientConnected{ClientID: "c1"}}, stored)

	var env EventEnvelope
	require.NoError(t, json.Unmarshal(<-client.Send, &env))
	assert.Equal(t, "CLIENT_CONNECTED", env.Name)
}

func TestDispatcher_UnknownClient(t *testing.T) {
	store := events.NewInMemoryEventStore()
	d := NewDispatcher(connection.NewManager(), store)

	assert.False(t, d.SendToClient("missing", events.ClientConnected{ClientID: "missing"}))

	stored, err := store.LoadEvents("missing")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
