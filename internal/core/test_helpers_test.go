package core

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestController() *Controller {
	logger := zerolog.Nop()
	return NewController(&logger, Options{ClientBuffer: 32})
}

func mustEvent(t *testing.T, ch <-chan *Event, kind EventKind) *Event {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		select {
		case ev := <-ch:
			if ev == nil {
				continue
			}
			if ev.Kind == kind {
				return ev
			}
		default:
			time.Sleep(10 * time.Millisecond)
		}
	}
	t.Fatalf("expected event kind %v not received", kind)
	return nil
}

func expectNoEvent(t *testing.T, ch <-chan *Event) {
	t.Helper()

	select {
	case ev := <-ch:
		t.Fatalf("expected no event, got kind %v: %+v", ev.Kind, ev)
	case <-time.After(50 * time.Millisecond):
	}
}

func drain(ch <-chan *Event) {
	for {
		select {
		case <-ch:
		default:
			return
		}
	}
}

func presenceNames(ev *Event) []string {
	names := make([]string, 0, len(ev.Users))
	for _, m := range ev.Users {
		names = append(names, m.Username)
	}
	return names
}
