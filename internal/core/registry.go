package core

import (
	"sync"

	"github.com/google/uuid"
)

// record is the registry's owned state for one live connection. Name and
// room stay empty until the connection identifies via a join.
type record struct {
	client *Client
	name   string
	room   string
}

// Registry tracks live connections keyed by id. It is the sole owner of
// a connection's identity fields; other components read them through
// Lookup so a connection's state is always observed consistently.
type Registry struct {
	mu     sync.RWMutex
	conns  map[string]*record
	buffer int
}

// NewRegistry constructs an empty registry. buffer sizes each client's
// outbound event channel.
func NewRegistry(buffer int) *Registry {
	return &Registry{
		conns:  make(map[string]*record),
		buffer: buffer,
	}
}

// Register allocates a fresh connection id and returns its client handle.
func (r *Registry) Register() *Client {
	client := NewClient(uuid.NewString(), r.buffer)

	r.mu.Lock()
	r.conns[client.ID] = &record{client: client}
	r.mu.Unlock()

	return client
}

// SetIdentity attaches a display name and room to a registered connection.
func (r *Registry) SetIdentity(connID, name, room string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	rec, ok := r.conns[connID]
	if !ok {
		return ErrUnknownConnection
	}
	rec.name = name
	rec.room = room
	return nil
}

// Lookup returns the connection's current identity. Both fields are empty
// until the connection joins; ok is false if the id is not registered.
func (r *Registry) Lookup(connID string) (name, room string, ok bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, found := r.conns[connID]
	if !found {
		return "", "", false
	}
	return rec.name, rec.room, true
}

// ClientOf returns the delivery handle for a connection id.
func (r *Registry) ClientOf(connID string) (*Client, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	rec, ok := r.conns[connID]
	if !ok {
		return nil, false
	}
	return rec.client, true
}

// ClientsOf resolves many connection ids at once, skipping any that have
// already unregistered.
func (r *Registry) ClientsOf(connIDs []string) []*Client {
	r.mu.RLock()
	defer r.mu.RUnlock()

	clients := make([]*Client, 0, len(connIDs))
	for _, id := range connIDs {
		if rec, ok := r.conns[id]; ok {
			clients = append(clients, rec.client)
		}
	}
	return clients
}

// Unregister removes the connection. No-op if already removed.
func (r *Registry) Unregister(connID string) {
	r.mu.Lock()
	delete(r.conns, connID)
	r.mu.Unlock()
}
