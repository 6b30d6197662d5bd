package ws

import (
	"encoding/json"
	"log"
	"sync"

	"github.com/gorilla/websocket"
)

// Hub tracks live trial connections. Trials are anonymous, so connections are
// grouped by channel rather than by user.
type Hub struct {
	clients map[string]map[*Client]struct{}
	mu      sync.RWMutex
}

type Client struct {
	ChannelID string
	Conn      *websocket.Conn
	mu        sync.Mutex // write lock, the connection is not safe for concurrent writes
}

type Message struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

func NewHub() *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[client.ChannelID] == nil {
		h.clients[client.ChannelID] = make(map[*Client]struct{})
	}
	h.clients[client.ChannelID][client] = struct{}{}

	log.Printf("Trial started on channel %s, channel_conns: %d, total: %d",
		client.ChannelID, len(h.clients[client.ChannelID]), h.countLocked())
}

func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if conns, ok := h.clients[client.ChannelID]; ok {
		delete(conns, client)
		if len(conns) == 0 {
			delete(h.clients, client.ChannelID)
		}
	}
	log.Printf("Trial ended on channel %s", client.ChannelID)
}

// Send writes a message to one trial connection.
func (c *Client) Send(msg *Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	return c.Conn.WriteMessage(websocket.TextMessage, data)
}

// ActiveCount returns the number of live trial connections.
func (h *Hub) ActiveCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.countLocked()
}

// ActiveOnChannel returns the live trial count for one channel.
func (h *Hub) ActiveOnChannel(channelID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[channelID])
}

func (h *Hub) countLocked() int {
	total := 0
	for _, conns := range h.clients {
		total += len(conns)
	}
	return total
}
