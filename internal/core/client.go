package core

// Client is a connected peer as seen by the core layer. The transport
// drains Events and frames them onto the wire; the core never writes to
// the network directly.
type Client struct {
	ID     string
	Events chan *Event
}

// NewClient constructs a client with a buffered event channel.
func NewClient(id string, buffer int) *Client {
	if buffer <= 0 {
		buffer = 8
	}
	return &Client{
		ID:     id,
		Events: make(chan *Event, buffer),
	}
}

// TrySend queues an event without blocking. Returns false if the
// client's buffer is full; delivery is best-effort.
func (c *Client) TrySend(ev *Event) bool {
	select {
	case c.Events <- ev:
		return true
	default:
		// Drop if slow consumer.
		return false
	}
}
