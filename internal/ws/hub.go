package ws

import (
	"context"
	"sync"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"tambua/infra/metrics"
)

// ClientBuffer is how many events a client may lag behind before it is dropped.
const ClientBuffer = 16

type Event struct {
	Type string `json:"type"`
	Data any    `json:"data"`
}

type Hub struct {
	Clients    map[uuid.UUID]*Client
	Register   chan *Client
	Unregister chan *Client
	Broadcast  chan []byte
	done       chan struct{}
	Mu         *sync.RWMutex
	Metrics    *metrics.Metrics
	Logger     *log.Logger
}

func NewHub(m *metrics.Metrics, logger *log.Logger) *Hub {
	return &Hub{
		Clients:    make(map[uuid.UUID]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		Broadcast:  make(chan []byte, 64),
		done:       make(chan struct{}),
		Mu:         &sync.RWMutex{},
		Metrics:    m,
		Logger:     logger,
	}
}

// Publish queues v for every connected client. It never blocks the caller:
// when the broadcast queue is full the event is dropped.
func (h *Hub) Publish(v any) {
	b, err := json.Marshal(Event{Type: "activity", Data: v})
	if err != nil {
		h.Logger.WithError(err).Warn("activity event not encoded")
		return
	}
	select {
	case h.Broadcast <- b:
	default:
		h.Logger.Warn("activity feed queue full, event dropped")
	}
}

func (h *Hub) Len() int {
	h.Mu.RLock()
	defer h.Mu.RUnlock()
	return len(h.Clients)
}

func (h *Hub) Run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			close(h.done)
			h.Mu.Lock()
			for id, cl := range h.Clients {
				delete(h.Clients, id)
				close(cl.Message)
			}
			h.Mu.Unlock()
			h.gauge()
			return

		case cl := <-h.Register:
			h.Mu.Lock()
			if _, ok := h.Clients[cl.ID]; !ok {
				h.Clients[cl.ID] = cl
			}
			h.Mu.Unlock()
			h.gauge()

		case cl := <-h.Unregister:
			h.remove(cl)

		case m := <-h.Broadcast:
			h.Mu.Lock()
			for id, cl := range h.Clients {
				select {
				case cl.Message <- m:
				default:
					delete(h.Clients, id)
					close(cl.Message)
					h.Logger.WithField("client", cl.Name).Warn("slow activity feed client dropped")
				}
			}
			h.Mu.Unlock()
			h.gauge()
		}
	}
}

// Join registers cl unless the hub has stopped.
func (h *Hub) Join(cl *Client) bool {
	select {
	case h.Register <- cl:
		return true
	case <-h.done:
		return false
	}
}

func (h *Hub) Leave(cl *Client) {
	select {
	case h.Unregister <- cl:
	case <-h.done:
	}
}

func (h *Hub) remove(cl *Client) {
	h.Mu.Lock()
	if current, ok := h.Clients[cl.ID]; ok && current == cl {
		delete(h.Clients, cl.ID)
		close(cl.Message)
	}
	h.Mu.Unlock()
	h.gauge()
}

func (h *Hub) gauge() {
	if h.Metrics != nil {
		h.Metrics.WsClients.Set(float64(h.Len()))
	}
}
