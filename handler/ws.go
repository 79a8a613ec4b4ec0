package handler

import (
	"context"
	"log"
	"sync"

	"github.com/gofiber/contrib/websocket"
	"github.com/redis/go-redis/v9"
)

const refreshChannel = "console:refresh"

// Hub pushes refresh hints to every open console tab after a mutating action.
// The hint only tells tabs to re-pull the fragment, it carries no state.
// With redis the hint goes through pub/sub so multiple console instances stay
// in step; without it the hub fans out to local connections only.
type Hub struct {
	rdb *redis.Client

	mu    sync.Mutex
	conns map[*websocket.Conn]bool
}

func NewHub(rdb *redis.Client) *Hub {
	h := &Hub{
		rdb:   rdb,
		conns: make(map[*websocket.Conn]bool),
	}
	if rdb != nil {
		go h.listen()
	}
	return h
}

func (h *Hub) Broadcast() {
	if h == nil {
		return
	}
	if h.rdb != nil {
		if err := h.rdb.Publish(context.Background(), refreshChannel, "refresh").Err(); err != nil {
			log.Printf("refresh publish failed: %v", err)
		}
		return
	}
	h.fanOut()
}

func (h *Hub) listen() {
	pubsub := h.rdb.Subscribe(context.Background(), refreshChannel)
	defer pubsub.Close()

	for range pubsub.Channel() {
		h.fanOut()
	}
}

func (h *Hub) fanOut() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteJSON(map[string]string{"type": "refresh"}); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Websocket keeps a console tab registered until it disconnects.
func (h *Hub) Websocket(c *websocket.Conn) {
	h.mu.Lock()
	h.conns[c] = true
	h.mu.Unlock()

	defer func() {
		h.mu.Lock()
		delete(h.conns, c)
		h.mu.Unlock()
		c.Close()
	}()

	for {
		if _, _, err := c.ReadMessage(); err != nil {
			break
		}
	}
}
