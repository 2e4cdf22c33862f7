package core

// EventKind is a notification the core emits to clients.
type EventKind int

const (
	// EventRoomMessage notifies clients about a chat message in a room.
	EventRoomMessage EventKind = iota
	// EventPrivateMessage delivers a direct message to a single client.
	EventPrivateMessage
	// EventPresence delivers the current member list of a room.
	EventPresence
	// EventTypingStart notifies clients that a peer started typing.
	EventTypingStart
	// EventTypingStop notifies clients that typing stopped. The event is
	// not scoped to a user; any stop clears the indicator for everyone.
	EventTypingStop
)

// Event is sent to clients to describe what happened in the system.
type Event struct {
	Kind    EventKind
	Room    string
	User    string // typing events: display name of the typist
	Message Message
	Users   []Member // presence snapshots
}

// Message is the domain model for a relayed chat message. Time is the
// server-side wall-clock stamp, rendered for display; ordering between
// messages is transport delivery order, not this field.
type Message struct {
	Room    string
	From    string
	Text    string
	Time    string
	Private bool
}

// Member is one (display name, connection id) presence entry.
type Member struct {
	Username string
	ConnID   string
}
