package events

import (
	"errors"
	"sync"
)

// ErrNoClientID is returned when an event is appended without a client
var ErrNoClientID = errors.New("event has no client id")

// EventStore keeps the events sent to each client
type EventStore interface {
	Append(clientID string, event Event) error
	LoadEvents(clientID string) ([]Event, error)
}

// InMemoryEventStore is an in-memory implementation of the EventStore interface.
type InMemoryEventStore struct {
	events map[string][]Event
	mutex  sync.RWMutex
}

// NewInMemoryEventStore creates a new in-memory event store.
func NewInMemoryEventStore() *InMemoryEventStore {
	return &InMemoryEventStore{
		events: make(map[string][]Event),
	}
}

// Append adds a new event to the client's history.
func (s *InMemoryEventStore) Append(clientID string, event Event) error {
	if clientID == "" {
		return ErrNoClientID
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.events[clientID] = append(s.events[clientID], event)
	return nil
}

// LoadEvents retrieves all events sent to the given client, oldest first.
func (s *InMemoryEventStore) LoadEvents(clientID string) ([]Event, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if events, exists := s.events[clientID]; exists {
		result := make([]Event, len(events))
		copy(result, events)
		return result, nil
	}

	return []Event{}, nil
}

// Forget drops the history of a client
func (s *InMemoryEventStore) Forget(clientID string) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.events, clientID)
}
