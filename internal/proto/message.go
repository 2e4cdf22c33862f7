package proto

import "encoding/json"

// Inbound is the envelope for messages coming from the client.
type Inbound struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

const (
	ProtocolVersion = 1

	InboundTypeJoin       = "join"
	InboundTypeMsg        = "msg"
	InboundTypePrivate    = "private"
	InboundTypeTyping     = "typing"
	InboundTypeStopTyping = "stop_typing"

	OutboundTypeEvent = "event"
	OutboundTypeError = "error"

	EventNameWelcome    = "welcome"
	EventNameMessage    = "message"
	EventNamePrivate    = "private_message"
	EventNamePresence   = "presence"
	EventNameTyping     = "typing"
	EventNameStopTyping = "stop_typing"
)

// JoinData requests to join a room under a display name.
type JoinData struct {
	Room     string `json:"room"`
	Username string `json:"username"`
}

// MsgData is a chat message for the sender's current room.
type MsgData struct {
	Text string `json:"text"`
}

// PrivateData addresses a message to a single connection.
type PrivateData struct {
	To   string `json:"to"`
	Text string `json:"text"`
}

// Outbound is the envelope for messages sent to the client.
type Outbound struct {
	Type  string `json:"type"`
	Event string `json:"event,omitempty"`
	Data  any    `json:"data,omitempty"`
	Error *Error `json:"error,omitempty"`
}

// EventWelcome tells a client its assigned connection id; clients need it
// to address private messages to each other.
type EventWelcome struct {
	ID       string `json:"id"`
	Protocol int    `json:"protocol"`
}

// EventMessage is a relayed chat message, room or private.
type EventMessage struct {
	Sender  string `json:"sender"`
	Text    string `json:"text"`
	Time    string `json:"time"`
	Private bool   `json:"private,omitempty"`
}

// PresenceEntry is one member of a room's presence list.
type PresenceEntry struct {
	Username string `json:"username"`
	ID       string `json:"id"`
}

// EventPresence carries the full ordered member list of a room.
type EventPresence struct {
	Room  string          `json:"room"`
	Users []PresenceEntry `json:"users"`
}

// EventTyping notifies that a user started typing.
type EventTyping struct {
	Username string `json:"username"`
}

// EventStopTyping clears typing indicators. It deliberately carries no
// user yet; adding one later is not a wire break.
type EventStopTyping struct{}

// Error describes a protocol-level error response.
type Error struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}
