package ws

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"bamboo/middleware"
	"bamboo/models"
	"bamboo/mq"
	"bamboo/rdx"

	"github.com/gorilla/websocket"
	"github.com/julienschmidt/httprouter"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// OrderFeed upgrades a dealer's connection and streams their order events.
// Browsers can't set headers on websocket dials, so the token also comes in
// the query string.
func OrderFeed(hub *Hub) httprouter.Handle {
	return func(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
		header := r.Header.Get("Authorization")
		if header == "" {
			if token := r.URL.Query().Get("token"); token != "" {
				header = "Bearer " + token
			}
		}
		claims, err := middleware.ValidateJWT(header)
		if err != nil {
			http.Error(w, "Invalid token", http.StatusUnauthorized)
			return
		}
		if claims.Role != models.RoleDealer {
			http.Error(w, "Access denied", http.StatusForbidden)
			return
		}

		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			log.Println("upgrade:", err)
			return
		}

		client := &Client{
			Send:     make(chan []byte, 256),
			DealerID: claims.UserID,
		}
		hub.register <- client

		go func() {
			defer conn.Close()
			for data := range client.Send {
				if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
					return
				}
			}
		}()

		// reads only to detect disconnect
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				select {
				case hub.unregister <- client:
				case <-hub.done:
				}
				return
			}
		}
	}
}

// StartOrderEventRelay subscribes to the Redis order-events channel and
// forwards each event to the dealers it names. Runs until ctx is cancelled.
func StartOrderEventRelay(ctx context.Context, hub *Hub) {
	sub := rdx.Conn.Subscribe(ctx, mq.OrderEventsChannel)
	ch := sub.Channel()

	log.Println("Order event relay listening")

	for {
		select {
		case msg, ok := <-ch:
			if !ok {
				return
			}
			var event mq.OrderEvent
			if err := json.Unmarshal([]byte(msg.Payload), &event); err != nil {
				log.Printf("Order event parse error: %v", err)
				continue
			}
			for _, dealerID := range event.DealerIDs {
				hub.Broadcast(dealerID, []byte(msg.Payload))
			}
		case <-ctx.Done():
			_ = sub.Close()
			return
		}
	}
}
