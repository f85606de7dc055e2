package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub tracks connected clients per candidate so match notifications reach
// only the candidate they belong to.
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	send       chan targetedMessage
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type targetedMessage struct {
	userID  uuid.UUID
	payload []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		send:       make(chan targetedMessage, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil || client.userID == uuid.Nil {
				continue
			}
			h.mutex.Lock()
			set, ok := h.clients[client.userID]
			if !ok {
				set = make(map[*Client]bool)
				h.clients[client.userID] = set
			}
			set[client] = true
			total := len(set)
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | user_id=%s clients=%d", client.userID, total)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if set, ok := h.clients[client.userID]; ok {
				if _, exists := set[client]; exists {
					delete(set, client)
					close(client.send)
				}
				if len(set) == 0 {
					delete(h.clients, client.userID)
				}
			}
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | user_id=%s", client.userID)
			}

		case msg := <-h.send:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[msg.userID]))
			for c := range h.clients[msg.userID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- msg.payload:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Send queues a payload for every connected client of one candidate. A full
// queue drops the message rather than blocking the caller.
func (h *Hub) Send(userID uuid.UUID, payload []byte) {
	if h == nil || userID == uuid.Nil {
		return
	}
	select {
	case h.send <- targetedMessage{userID: userID, payload: payload}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS send dropped | user_id=%s reason=buffer_full", userID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	total := 0
	for _, set := range h.clients {
		total += len(set)
	}
	return total
}
