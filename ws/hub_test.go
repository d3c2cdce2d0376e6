package ws

import (
	"testing"
	"time"
)

func TestHubRegisterBroadcastUnregister(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	client := &Client{
		Send:     make(chan []byte, 10),
		DealerID: "dealer1",
	}

	hub.register <- client

	data := []byte(`{"event":"order-created","orderId":"o1"}`)
	hub.Broadcast("dealer1", data)

	select {
	case got := <-client.Send:
		if string(got) != string(data) {
			t.Fatalf("expected %s, got %s", data, got)
		}
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	hub.unregister <- client
}

func TestHubBroadcastOnlyToMatchingDealer(t *testing.T) {
	hub := NewHub()
	go hub.Run()
	defer hub.Stop()

	mine := &Client{Send: make(chan []byte, 10), DealerID: "dealerA"}
	other := &Client{Send: make(chan []byte, 10), DealerID: "dealerB"}
	hub.register <- mine
	hub.register <- other

	hub.Broadcast("dealerA", []byte("ping"))

	select {
	case <-mine.Send:
	case <-time.After(1 * time.Second):
		t.Fatal("timeout waiting for message")
	}

	select {
	case msg := <-other.Send:
		t.Fatalf("unexpected message for dealerB: %s", msg)
	case <-time.After(100 * time.Millisecond):
	}
}
