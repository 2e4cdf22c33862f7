package core

// Presence publishes membership snapshots and relays typing signals. The
// server holds no typing state of its own; it is a pure relay between the
// typist's client-side debounce and the rest of the room.
type Presence struct {
	registry  *Registry
	directory *Directory
}

// NewPresence constructs a presence coordinator.
func NewPresence(registry *Registry, directory *Directory) *Presence {
	return &Presence{registry: registry, directory: directory}
}

// Publish fans the room's current presence snapshot out to every
// subscriber, including the connection whose join or leave triggered it.
func (p *Presence) Publish(roomName string) {
	snapshot := p.directory.Members(roomName)
	ev := &Event{
		Kind:  EventPresence,
		Room:  roomName,
		Users: snapshot,
	}
	p.relay(roomName, "", ev)
}

// TypingStart relays a typing indicator to every other subscriber of the
// room. Each inbound signal produces one fan-out; no de-duplication.
func (p *Presence) TypingStart(roomName, connID string) {
	name, _, ok := p.registry.Lookup(connID)
	if !ok || name == "" {
		return
	}
	p.relay(roomName, connID, &Event{
		Kind: EventTypingStart,
		Room: roomName,
		User: name,
	})
}

// TypingStop relays a stop signal to every other subscriber. The signal
// carries no user; observers clear the indicator regardless of whose
// typing triggered it.
func (p *Presence) TypingStop(roomName, connID string) {
	p.relay(roomName, connID, &Event{
		Kind: EventTypingStop,
		Room: roomName,
	})
}

func (p *Presence) relay(roomName, excludeID string, ev *Event) {
	ids := p.directory.Subscribers(roomName)
	for _, client := range p.registry.ClientsOf(ids) {
		if client.ID == excludeID {
			continue
		}
		client.TrySend(ev)
	}
}
