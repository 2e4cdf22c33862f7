package core

import (
	"fmt"

	"github.com/rs/zerolog"
)

// Controller orchestrates join, message, typing, and disconnect as
// compound operations across the registry, directory, router, and
// presence coordinator. It is the single entry point the transport
// drives; each connection moves through
// connected (unidentified) -> joined (room, name) -> disconnected.
type Controller struct {
	registry  *Registry
	directory *Directory
	router    *Router
	presence  *Presence
	log       *zerolog.Logger
}

// Options tunes engine construction.
type Options struct {
	// ClientBuffer sizes each connection's outbound event channel.
	ClientBuffer int
}

// NewController builds the full engine: registry, directory, router, and
// presence coordinator wired together.
func NewController(logger *zerolog.Logger, opts Options) *Controller {
	registry := NewRegistry(opts.ClientBuffer)
	directory := NewDirectory()
	return &Controller{
		registry:  registry,
		directory: directory,
		router:    NewRouter(registry, directory, logger),
		presence:  NewPresence(registry, directory),
		log:       logger,
	}
}

// Directory exposes the room directory for read-only consumers.
func (c *Controller) Directory() *Directory {
	return c.directory
}

// Connect registers a new connection and returns its delivery handle.
func (c *Controller) Connect() *Client {
	client := c.registry.Register()
	c.log.Debug().Str("conn_id", client.ID).Msg("connection registered")
	return client
}

// Join attaches an identity to the connection, inserts it into the room
// (displacing any prior membership under the same name), then publishes
// the new presence snapshot and announces the arrival to the other
// members.
func (c *Controller) Join(connID, roomName, displayName string) error {
	if roomName == "" || displayName == "" {
		return ErrBadRequest
	}
	if err := c.registry.SetIdentity(connID, displayName, roomName); err != nil {
		c.log.Error().Str("conn_id", connID).Msg("join for unregistered connection")
		return err
	}

	c.directory.Join(roomName, displayName, connID)
	c.presence.Publish(roomName)
	c.router.Announce(roomName, connID, fmt.Sprintf("%s joined the room", displayName))

	c.log.Info().Str("conn_id", connID).Str("room", roomName).Str("user", displayName).Msg("joined room")
	return nil
}

// RoomMessage broadcasts text to the sender's current room. Senders with
// no room yet are dropped silently.
func (c *Controller) RoomMessage(connID, text string) DeliveryResult {
	_, roomName, ok := c.registry.Lookup(connID)
	if !ok {
		c.log.Error().Str("conn_id", connID).Msg("message from unregistered connection")
		return DroppedUnknownConnection
	}
	if roomName == "" {
		return DroppedNotJoined
	}
	return c.router.BroadcastRoom(roomName, connID, text)
}

// PrivateMessage delivers text to exactly the target connection.
func (c *Controller) PrivateMessage(connID, targetID, text string) DeliveryResult {
	return c.router.SendPrivate(connID, targetID, text)
}

// TypingStart relays a typing indicator to the sender's room peers.
func (c *Controller) TypingStart(connID string) {
	_, roomName, ok := c.registry.Lookup(connID)
	if !ok || roomName == "" {
		return
	}
	c.presence.TypingStart(roomName, connID)
}

// TypingStop relays a stop-typing signal to the sender's room peers.
func (c *Controller) TypingStop(connID string) {
	_, roomName, ok := c.registry.Lookup(connID)
	if !ok || roomName == "" {
		return
	}
	c.presence.TypingStop(roomName, connID)
}

// Disconnect tears the connection down: membership removal, then (only if
// the connection had identified) a presence broadcast and a departure
// announcement. The registry record is removed last, after every state
// read referencing it has completed. Idempotent.
func (c *Controller) Disconnect(connID string) {
	name, roomName, ok := c.registry.Lookup(connID)
	if !ok {
		return
	}

	if roomName != "" {
		c.directory.Leave(roomName, connID)
		if name != "" {
			c.presence.Publish(roomName)
			c.router.Announce(roomName, connID, fmt.Sprintf("%s left the room", name))
		}
	}

	c.registry.Unregister(connID)
	c.log.Debug().Str("conn_id", connID).Msg("connection unregistered")
}
