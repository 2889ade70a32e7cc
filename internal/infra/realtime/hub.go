package realtime

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"marketplace-api/internal/pkg/config"
	"marketplace-api/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

type envelope struct {
	topic   string
	payload []byte
}

// Hub fans published events out to the websocket clients subscribed to a topic.
// Membership changes go through the run loop; the mutex only guards reads from
// other goroutines.
type Hub struct {
	cfg        config.RealtimeConfig
	upgrader   websocket.Upgrader
	register   chan *Client
	unregister chan *Client
	broadcast  chan envelope
	done       chan struct{}

	mu     sync.RWMutex
	topics map[string]map[*Client]struct{}
}

var _ shared.EventPublisher = (*Hub)(nil)

func NewHub(cfg config.RealtimeConfig) *Hub {
	h := &Hub{
		cfg:        cfg,
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan envelope, 256),
		done:       make(chan struct{}),
		topics:     make(map[string]map[*Client]struct{}),
	}
	h.upgrader = websocket.Upgrader{
		ReadBufferSize:  1024,
		WriteBufferSize: 1024,
	}
	if !cfg.CheckOrigin {
		h.upgrader.CheckOrigin = func(*http.Request) bool { return true }
	}
	return h
}

// Run processes registrations and broadcasts until ctx is cancelled, then
// closes every client.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)
	for {
		select {
		case <-ctx.Done():
			h.closeAll()
			return
		case c := <-h.register:
			h.mu.Lock()
			subs, ok := h.topics[c.topic]
			if !ok {
				subs = make(map[*Client]struct{})
				h.topics[c.topic] = subs
			}
			subs[c] = struct{}{}
			h.mu.Unlock()
			slog.Debug("realtime client subscribed", "topic", c.topic, "user_id", c.userID)
		case c := <-h.unregister:
			h.remove(c)
		case env := <-h.broadcast:
			h.mu.RLock()
			var slow []*Client
			for c := range h.topics[env.topic] {
				select {
				case c.send <- env.payload:
				default:
					slow = append(slow, c)
				}
			}
			h.mu.RUnlock()
			for _, c := range slow {
				slog.Warn("dropping slow realtime client", "topic", c.topic, "user_id", c.userID)
				h.remove(c)
			}
		}
	}
}

func (h *Hub) remove(c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	subs, ok := h.topics[c.topic]
	if !ok {
		return
	}
	if _, ok := subs[c]; !ok {
		return
	}
	delete(subs, c)
	close(c.send)
	if len(subs) == 0 {
		delete(h.topics, c.topic)
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for topic, subs := range h.topics {
		for c := range subs {
			close(c.send)
		}
		delete(h.topics, topic)
	}
}

// Publish never blocks the caller on a slow hub; a full queue drops the event.
func (h *Hub) Publish(topic string, event shared.Event) {
	payload, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to encode realtime event", "topic", topic, "error", err.Error())
		return
	}
	select {
	case h.broadcast <- envelope{topic: topic, payload: payload}:
	case <-h.done:
	default:
		slog.Warn("realtime queue full, event dropped", "topic", topic, "type", event.Type)
	}
}

// Serve upgrades the request and streams topic events to it until either side closes.
func (h *Hub) Serve(w http.ResponseWriter, r *http.Request, topic string, userID uuid.UUID) error {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		return err
	}
	c := &Client{
		hub:    h,
		conn:   conn,
		send:   make(chan []byte, h.cfg.SendBuffer),
		topic:  topic,
		userID: userID,
	}
	select {
	case h.register <- c:
	case <-h.done:
		_ = conn.Close()
		return nil
	}

	go c.writePump()
	go c.readPump()
	return nil
}

func (h *Hub) SubscriberCount(topic string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.topics[topic])
}
