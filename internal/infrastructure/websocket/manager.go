package websocket

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"pasaratsiri/pkg/logger"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBuffer     = 64
)

// Client is one admin browser tab attached to a live list view.
type Client struct {
	ID       string
	AdminUID string
	Resource string
	Conn     *websocket.Conn
	Send     chan []byte

	mu     sync.Mutex
	closed bool
}

func NewClient(conn *websocket.Conn, adminUID, resource string) *Client {
	return &Client{
		ID:       uuid.NewString(),
		AdminUID: adminUID,
		Resource: resource,
		Conn:     conn,
		Send:     make(chan []byte, sendBuffer),
	}
}

// Enqueue queues message for the write pump. A full buffer means the
// browser stopped reading; the client is closed and false returned.
func (c *Client) Enqueue(message []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.Send <- message:
		return true
	default:
		logger.Warn("websocket client %s send buffer full, closing", c.ID)
		c.closed = true
		close(c.Send)
		return false
	}
}

func (c *Client) close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.Send)
	}
}

// Manager tracks the live view connections.
type Manager struct {
	clients    map[string]*Client
	Register   chan *Client
	Unregister chan *Client
	done       chan struct{}
	mutex      sync.RWMutex
}

func NewManager() *Manager {
	return &Manager{
		clients:    make(map[string]*Client),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
		done:       make(chan struct{}),
	}
}

// Start runs the registration loop until ctx is done, then closes every
// remaining client.
func (m *Manager) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case client := <-m.Register:
				m.mutex.Lock()
				m.clients[client.ID] = client
				m.mutex.Unlock()
				logger.Debug("websocket client registered: %s (%s, admin %s)", client.ID, client.Resource, client.AdminUID)

			case client := <-m.Unregister:
				m.mutex.Lock()
				if _, ok := m.clients[client.ID]; ok {
					delete(m.clients, client.ID)
					client.close()
				}
				m.mutex.Unlock()
				logger.Debug("websocket client unregistered: %s", client.ID)

			case <-ctx.Done():
				close(m.done)
				m.mutex.Lock()
				for id, client := range m.clients {
					client.close()
					delete(m.clients, id)
				}
				m.mutex.Unlock()
				return
			}
		}
	}()
}

// Add registers client. It reports false once the manager has stopped.
func (m *Manager) Add(client *Client) bool {
	select {
	case m.Register <- client:
		return true
	case <-m.done:
		return false
	}
}

func (m *Manager) Count() int {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	return len(m.clients)
}

// ReadPump reads commands until the connection drops, handing each one to
// handler. It unregisters the client on exit.
func (c *Client) ReadPump(ctx context.Context, m *Manager, handler CommandHandler) {
	defer func() {
		select {
		case m.Unregister <- c:
		case <-m.done:
		}
		c.Conn.Close()
	}()

	c.Conn.SetReadLimit(maxMessageSize)
	_ = c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	c.Conn.SetPongHandler(func(string) error {
		return c.Conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, message, err := c.Conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				logger.Warn("websocket client %s: %v", c.ID, err)
			}
			return
		}
		m.HandleClientMessage(ctx, c, message, handler)
	}
}

// WritePump drains Send into the connection and keeps it alive with pings.
func (c *Client) WritePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.Conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.Send:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = c.Conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.Conn.WriteMessage(websocket.TextMessage, message); err != nil {
				logger.Warn("websocket client %s write failed: %v", c.ID, err)
				return
			}

		case <-ticker.C:
			_ = c.Conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.Conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
