package mq

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"bamboo/rdx"
)

const OrderEventsChannel = "order-events"

// OrderEvent describes an order lifecycle change fanned out over Redis
// pub/sub. Consumers (the dealer websocket feed) pick these up; emission is
// fire-and-forget and never fails the originating request.
type OrderEvent struct {
	Event     string    `json:"event"` // "order-created", "order-status-changed"
	OrderID   string    `json:"orderId"`
	UserID    string    `json:"userId"`
	DealerIDs []string  `json:"dealerIds,omitempty"`
	Status    string    `json:"status,omitempty"`
	At        time.Time `json:"at"`
}

// Emit publishes an order event. Errors are logged, not returned.
func Emit(ctx context.Context, event OrderEvent) {
	if event.At.IsZero() {
		event.At = time.Now()
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Printf("[Emit] Failed to marshal event: %v", err)
		return
	}

	if err := rdx.Conn.Publish(context.Background(), OrderEventsChannel, data).Err(); err != nil {
		log.Printf("[Emit] Failed to publish %s for order %s: %v", event.Event, event.OrderID, err)
	}
}
