// Package realtime pushes collection change events to websocket clients.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"laundryadmin/internal/repository"
)

const (
	writeWait = 10 * time.Second
	// sendBuffer is how many events may queue for one client before it is dropped.
	sendBuffer = 16
)

// Source is anything that publishes change events, i.e. every repository.
type Source interface {
	Subscribe(fn func(repository.ChangeEvent)) func()
}

// client owns one connection. Only its writer goroutine writes to conn.
type client struct {
	conn *websocket.Conn
	send chan []byte
	quit chan struct{}
	once sync.Once
}

func newClient(conn *websocket.Conn) *client {
	return &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		quit: make(chan struct{}),
	}
}

func (c *client) stop() {
	c.once.Do(func() { close(c.quit) })
}

// writePump drains the send queue and keeps the connection alive with pings.
// It closes the connection when it returns, which also ends the reader.
func (c *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = c.conn.Close()
	}()

	for {
		select {
		case msg := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		case <-c.quit:
			_ = c.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
				time.Now().Add(writeWait))
			return
		}
	}
}

type Hub struct {
	clients map[string]*client
	mutex   sync.RWMutex
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	if log == nil {
		log = zap.NewNop()
	}
	return &Hub{
		clients: make(map[string]*client),
		log:     log,
	}
}

// Watch forwards events of every source to the connected clients. The returned
// function unsubscribes from all of them.
func (h *Hub) Watch(sources ...Source) func() {
	cancels := make([]func(), 0, len(sources))
	for _, s := range sources {
		cancels = append(cancels, s.Subscribe(func(ev repository.ChangeEvent) { h.Broadcast(ev) }))
	}
	return func() {
		for _, cancel := range cancels {
			cancel()
		}
	}
}

// Register adds conn under id and starts its writer.
func (h *Hub) Register(id string, conn *websocket.Conn) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if old, exists := h.clients[id]; exists {
		old.stop()
	}
	c := newClient(conn)
	h.clients[id] = c
	go c.writePump()
}

func (h *Hub) Unregister(id string) {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	if c, exists := h.clients[id]; exists {
		c.stop()
		delete(h.clients, id)
	}
}

// Broadcast queues ev for every client and never waits on the network. A
// client whose queue is full is dropped. It returns the number of clients the
// event was queued for.
func (h *Hub) Broadcast(ev repository.ChangeEvent) int {
	raw, err := json.Marshal(ev)
	if err != nil {
		h.log.Error("encode change event", zap.Error(err))
		return 0
	}

	h.mutex.RLock()
	targets := make(map[string]*client, len(h.clients))
	for id, c := range h.clients {
		targets[id] = c
	}
	h.mutex.RUnlock()

	sent := 0
	for id, c := range targets {
		select {
		case c.send <- raw:
			sent++
		default:
			h.log.Warn("dropping slow websocket client", zap.String("client_id", id))
			h.Unregister(id)
		}
	}
	return sent
}

func (h *Hub) Count() int {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	return len(h.clients)
}

func (h *Hub) Close() {
	h.mutex.Lock()
	defer h.mutex.Unlock()

	for id, c := range h.clients {
		c.stop()
		delete(h.clients, id)
	}
}
