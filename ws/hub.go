package ws

import (
	"sync"
)

// Client is one connected dealer socket.
type Client struct {
	Send     chan []byte
	DealerID string
}

type broadcastMsg struct {
	DealerID string
	Data     []byte
}

// Hub fans order events out to connected dealers, one room per dealer id.
type Hub struct {
	rooms      map[string]map[*Client]bool
	register   chan *Client
	unregister chan *Client
	broadcast  chan broadcastMsg
	done       chan struct{}
	mu         sync.Mutex
}

func NewHub() *Hub {
	return &Hub{
		rooms:      make(map[string]map[*Client]bool),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan broadcastMsg),
		done:       make(chan struct{}),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case c := <-h.register:
			h.mu.Lock()
			if h.rooms[c.DealerID] == nil {
				h.rooms[c.DealerID] = make(map[*Client]bool)
			}
			h.rooms[c.DealerID][c] = true
			h.mu.Unlock()

		case c := <-h.unregister:
			h.mu.Lock()
			if conns := h.rooms[c.DealerID]; conns != nil && conns[c] {
				delete(conns, c)
				close(c.Send)
			}
			h.mu.Unlock()

		case m := <-h.broadcast:
			h.mu.Lock()
			for c := range h.rooms[m.DealerID] {
				select {
				case c.Send <- m.Data:
				default:
					close(c.Send)
					delete(h.rooms[m.DealerID], c)
				}
			}
			h.mu.Unlock()

		case <-h.done:
			h.mu.Lock()
			for _, conns := range h.rooms {
				for c := range conns {
					close(c.Send)
				}
			}
			h.rooms = make(map[string]map[*Client]bool)
			h.mu.Unlock()
			return
		}
	}
}

// Broadcast queues data for every socket of the given dealer.
func (h *Hub) Broadcast(dealerID string, data []byte) {
	h.broadcast <- broadcastMsg{DealerID: dealerID, Data: data}
}

// Stop closes all client channels and ends Run.
func (h *Hub) Stop() {
	close(h.done)
}
