package core

import (
	"fmt"
	"testing"
)

func benchmarkRoomBroadcast(b *testing.B, recipients int) {
	ctrl := newTestController()

	sender := ctrl.Connect()
	if err := ctrl.Join(sender.ID, "bench", "sender"); err != nil {
		b.Fatalf("join sender: %v", err)
	}

	clients := make([]*Client, 0, recipients)
	for i := 0; i < recipients; i++ {
		c := ctrl.Connect()
		if err := ctrl.Join(c.ID, "bench", fmt.Sprintf("client-%d", i)); err != nil {
			b.Fatalf("join client %d: %v", i, err)
		}
		clients = append(clients, c)
	}

	// Drain events for all but the first recipient to avoid channel backpressure.
	target := clients[0]
	for _, c := range clients[1:] {
		go func(cl *Client) {
			for range cl.Events {
			}
		}(c)
	}
	go func() {
		for range sender.Events {
		}
	}()
	drain(target.Events)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		ctrl.RoomMessage(sender.ID, "payload")
		<-target.Events
	}
}

func BenchmarkRoomBroadcast_10(b *testing.B)  { benchmarkRoomBroadcast(b, 10) }
func BenchmarkRoomBroadcast_100(b *testing.B) { benchmarkRoomBroadcast(b, 100) }
func BenchmarkRoomBroadcast_500(b *testing.B) { benchmarkRoomBroadcast(b, 500) }
