// Package websocket pushes pipeline events to connected shop-floor stations
// (rack displays, label printers, admin UI).
package websocket

import (
	"encoding/json"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Event types sent to stations
const (
	EventKeywordsChanged = "KEYWORDS_CHANGED"
	EventLabelsParsed    = "LABELS_PARSED"
)

// Event is the envelope of every message pushed to stations
type Event struct {
	Type    string      `json:"type"`
	At      time.Time   `json:"at"`
	Payload interface{} `json:"payload,omitempty"`
}

// Hub maintains the set of active stations and broadcasts events
type Hub struct {
	log *zap.Logger

	// Registered clients map: StationID -> Client
	clients map[string]*Client

	register   chan *Client
	unregister chan *Client
	broadcast  chan []byte
	done       chan struct{}

	mu sync.RWMutex
}

// NewHub creates a new Hub instance
func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		log:        log,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		clients:    make(map[string]*Client),
	}
}

// Run starts the hub's main loop. It returns after Stop.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			// If a station connects again, close the old connection
			if old, ok := h.clients[client.StationID]; ok && old != client {
				close(old.send)
			}
			h.clients[client.StationID] = client
			h.mu.Unlock()
			h.log.Info("station connected", zap.String("station_id", client.StationID))

		case client := <-h.unregister:
			h.mu.Lock()
			if cur, ok := h.clients[client.StationID]; ok && cur == client {
				delete(h.clients, client.StationID)
				close(client.send)
				h.log.Info("station disconnected", zap.String("station_id", client.StationID))
			}
			h.mu.Unlock()

		case message := <-h.broadcast:
			h.mu.RLock()
			for id, client := range h.clients {
				select {
				case client.send <- message:
				default:
					h.log.Warn("station send buffer full, dropping event", zap.String("station_id", id))
				}
			}
			h.mu.RUnlock()

		case <-h.done:
			h.mu.Lock()
			for id, client := range h.clients {
				close(client.send)
				delete(h.clients, id)
			}
			h.mu.Unlock()
			return
		}
	}
}

// Stop closes every station connection and ends Run
func (h *Hub) Stop() {
	close(h.done)
}

// Broadcast queues an event for every connected station.
// Events are dropped when the queue is full.
func (h *Hub) Broadcast(eventType string, payload interface{}) {
	msg, err := json.Marshal(Event{Type: eventType, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		h.log.Error("failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return
	}
	select {
	case h.broadcast <- msg:
	default:
		h.log.Warn("broadcast queue full, dropping event", zap.String("type", eventType))
	}
}

// SendToStation sends an event to a specific station
func (h *Hub) SendToStation(stationID, eventType string, payload interface{}) bool {
	msg, err := json.Marshal(Event{Type: eventType, At: time.Now().UTC(), Payload: payload})
	if err != nil {
		h.log.Error("failed to marshal event", zap.String("type", eventType), zap.Error(err))
		return false
	}

	// Held while sending: Run closes send channels under the write lock
	h.mu.RLock()
	defer h.mu.RUnlock()

	client, ok := h.clients[stationID]
	if !ok {
		return false
	}

	select {
	case client.send <- msg:
		return true
	default:
		// Buffer full or client dead
		return false
	}
}

// Connected returns the number of registered stations
func (h *Hub) Connected() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}
