package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestRouter() (*Router, *Registry, *Directory) {
	logger := zerolog.Nop()
	registry := NewRegistry(8)
	directory := NewDirectory()
	return NewRouter(registry, directory, &logger), registry, directory
}

func TestRouterTimestampFormat(t *testing.T) {
	router, registry, directory := newTestRouter()
	router.now = func() time.Time {
		return time.Date(2024, 5, 1, 21, 7, 33, 0, time.UTC)
	}

	c := registry.Register()
	if err := registry.SetIdentity(c.ID, "alice", "r"); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	directory.Join("r", "alice", c.ID)

	if res := router.BroadcastRoom("r", c.ID, "hi"); res != Delivered {
		t.Fatalf("broadcast result: %v", res)
	}

	ev := mustEvent(t, c.Events, EventRoomMessage)
	if ev.Message.Time != "09:07 PM" {
		t.Fatalf("unexpected timestamp: %q", ev.Message.Time)
	}
}

func TestRouterAnnounceExcludesActor(t *testing.T) {
	router, registry, directory := newTestRouter()

	actor := registry.Register()
	other := registry.Register()
	directory.Join("r", "actor", actor.ID)
	directory.Join("r", "other", other.ID)

	router.Announce("r", actor.ID, "actor joined the room")

	ev := mustEvent(t, other.Events, EventRoomMessage)
	if ev.Message.From != SystemSender || ev.Message.Text != "actor joined the room" {
		t.Fatalf("unexpected announcement: %+v", ev.Message)
	}
	expectNoEvent(t, actor.Events)
}

func TestRouterSlowConsumerDoesNotBlock(t *testing.T) {
	logger := zerolog.Nop()
	registry := NewRegistry(1)
	directory := NewDirectory()
	router := NewRouter(registry, directory, &logger)

	sender := registry.Register()
	slow := registry.Register()
	if err := registry.SetIdentity(sender.ID, "alice", "r"); err != nil {
		t.Fatalf("set identity: %v", err)
	}
	directory.Join("r", "alice", sender.ID)
	directory.Join("r", "slow", slow.ID)

	// Fill the slow client's buffer; further deliveries must drop, not
	// stall the broadcast.
	slow.TrySend(&Event{Kind: EventRoomMessage})

	done := make(chan struct{})
	go func() {
		for i := 0; i < 10; i++ {
			router.BroadcastRoom("r", sender.ID, "spam")
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("broadcast blocked on slow consumer")
	}
}

func TestRouterBroadcastFromUnregisteredConnection(t *testing.T) {
	router, _, _ := newTestRouter()

	if res := router.BroadcastRoom("r", "ghost", "boo"); res != DroppedUnknownConnection {
		t.Fatalf("expected dropped_unknown_connection, got %v", res)
	}
}
