package core

import (
	"time"

	"github.com/rs/zerolog"
)

// SystemSender is the synthetic identity on join/leave announcements.
const SystemSender = "System"

// timeLayout renders the display timestamp: localized hour and minute,
// no date, no seconds.
const timeLayout = "03:04 PM"

// Router resolves send requests to concrete delivery sets and queues
// frames on the recipients' event channels. Recipient resolution happens
// under the room lock; the queueing itself does not, and never blocks, so
// a slow recipient cannot stall anyone else.
type Router struct {
	registry  *Registry
	directory *Directory
	log       *zerolog.Logger
	now       func() time.Time
}

// NewRouter constructs a router over the given registry and directory.
func NewRouter(registry *Registry, directory *Directory, logger *zerolog.Logger) *Router {
	return &Router{
		registry:  registry,
		directory: directory,
		log:       logger,
		now:       time.Now,
	}
}

func (ro *Router) stamp() string {
	return ro.now().Format(timeLayout)
}

// BroadcastRoom delivers a message to every subscriber of the room,
// including the sender; the sender renders its own echo from the
// delivered frame.
func (ro *Router) BroadcastRoom(roomName, senderID, text string) DeliveryResult {
	name, joined, ok := ro.registry.Lookup(senderID)
	if !ok {
		ro.log.Error().Str("conn_id", senderID).Msg("broadcast from unregistered connection")
		return DroppedUnknownConnection
	}
	if joined == "" {
		return DroppedNotJoined
	}

	ev := &Event{
		Kind: EventRoomMessage,
		Room: roomName,
		Message: Message{
			Room: roomName,
			From: name,
			Text: text,
			Time: ro.stamp(),
		},
	}
	ro.fanOut(roomName, "", ev)
	return Delivered
}

// SendPrivate delivers a message to exactly the target connection, tagged
// private. A vanished target is silently dropped; the sender is expected
// to render its own local echo.
func (ro *Router) SendPrivate(senderID, targetID, text string) DeliveryResult {
	name, _, ok := ro.registry.Lookup(senderID)
	if !ok {
		ro.log.Error().Str("conn_id", senderID).Msg("private send from unregistered connection")
		return DroppedUnknownConnection
	}
	if name == "" {
		return DroppedNotJoined
	}

	target, ok := ro.registry.ClientOf(targetID)
	if !ok {
		ro.log.Debug().Str("target_id", targetID).Msg("private target gone, dropping")
		return DroppedUnknownTarget
	}

	target.TrySend(&Event{
		Kind: EventPrivateMessage,
		Message: Message{
			From:    name,
			Text:    text,
			Time:    ro.stamp(),
			Private: true,
		},
	})
	return Delivered
}

// Announce sends a system message to every subscriber of the room except
// the acting connection.
func (ro *Router) Announce(roomName, actorID, text string) {
	ev := &Event{
		Kind: EventRoomMessage,
		Room: roomName,
		Message: Message{
			Room: roomName,
			From: SystemSender,
			Text: text,
			Time: ro.stamp(),
		},
	}
	ro.fanOut(roomName, actorID, ev)
}

// fanOut queues an event for every subscriber of the room, skipping
// excludeID if non-empty. The subscriber list is a snapshot; delivery to
// each client happens outside any room lock.
func (ro *Router) fanOut(roomName, excludeID string, ev *Event) {
	ids := ro.directory.Subscribers(roomName)
	for _, client := range ro.registry.ClientsOf(ids) {
		if client.ID == excludeID {
			continue
		}
		if !client.TrySend(ev) {
			ro.log.Debug().Str("conn_id", client.ID).Str("room", roomName).Msg("slow consumer, event dropped")
		}
	}
}
