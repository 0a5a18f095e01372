package stream

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"
	"wavelab/internal/config"

	"github.com/gorilla/websocket"
)

const writeWait = time.Second

type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(s *Snapshot) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(s)
}

// Hub fans heightmap snapshots out to websocket clients at a bounded rate
type Hub struct {
	upgrader websocket.Upgrader
	interval time.Duration

	updates chan Snapshot

	mu      sync.RWMutex
	clients map[*websocket.Conn]*client
	latest  *Snapshot
}

// NewHub creates a hub broadcasting at most once per config.GetStreamInterval
func NewHub() *Hub {
	return &Hub{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true // viewers are served from anywhere
			},
		},
		interval: config.GetStreamInterval(),
		updates:  make(chan Snapshot, 1),
		clients:  make(map[*websocket.Conn]*client),
	}
}

// Publish hands a snapshot to Run without blocking. It returns false
// when the previous snapshot has not been picked up yet; s is dropped.
func (h *Hub) Publish(s Snapshot) bool {
	select {
	case h.updates <- s:
		return true
	default:
		return false
	}
}

// Clients returns the number of connected clients
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

// Run broadcasts the newest published snapshot once per interval until
// ctx is done, then disconnects every client.
func (h *Hub) Run(ctx context.Context) error {
	ticker := time.NewTicker(h.interval)
	defer ticker.Stop()
	defer h.closeAll()

	var pending *Snapshot
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case s := <-h.updates:
			pending = &s
		case <-ticker.C:
			if pending == nil {
				continue
			}
			h.mu.Lock()
			h.latest = pending
			h.mu.Unlock()
			h.broadcast(pending)
			pending = nil
		}
	}
}

// broadcast sends outside the registry lock so a slow client cannot
// stall connects and disconnects
func (h *Hub) broadcast(s *Snapshot) {
	var failed []*client
	for _, c := range h.snapshotClients() {
		if err := c.send(s); err != nil {
			failed = append(failed, c)
		}
	}

	// slow or gone clients are dropped
	for _, c := range failed {
		log.Printf("stream: dropping %s", c.conn.RemoteAddr())
		h.remove(c.conn)
	}
}

func (h *Hub) snapshotClients() []*client {
	h.mu.RLock()
	defer h.mu.RUnlock()
	clients := make([]*client, 0, len(h.clients))
	for _, c := range h.clients {
		clients = append(clients, c)
	}
	return clients
}

func (h *Hub) remove(conn *websocket.Conn) {
	h.mu.Lock()
	_, ok := h.clients[conn]
	delete(h.clients, conn)
	h.mu.Unlock()
	if ok {
		_ = conn.Close()
	}
}

func (h *Hub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.clients {
		_ = conn.Close()
		delete(h.clients, conn)
	}
}

// ServeWS upgrades the request, sends the latest snapshot and keeps the
// client registered until it disconnects
func (h *Hub) ServeWS(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Println("stream: upgrade error:", err)
		return
	}

	c := &client{conn: conn}
	h.mu.Lock()
	h.clients[conn] = c
	latest := h.latest
	h.mu.Unlock()
	log.Printf("stream: %s connected", conn.RemoteAddr())

	defer func() {
		h.remove(conn)
		log.Printf("stream: %s disconnected", conn.RemoteAddr())
	}()

	if latest != nil {
		if err := c.send(latest); err != nil {
			return
		}
	}

	// clients only listen; reading surfaces the close
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			var closeErr *websocket.CloseError
			if !errors.As(err, &closeErr) {
				log.Println("stream: read error:", err)
			}
			return
		}
	}
}

// Handler routes /ws to the hub
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", h.ServeWS)
	return mux
}
