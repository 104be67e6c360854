package handler

import (
	"sync"
	"time"

	"live-auction/utils"

	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

// ClientOptions tunes one websocket connection
type ClientOptions struct {
	MaxMessageSize int64
	PingInterval   time.Duration
	WriteWait      time.Duration
	SendBuffer     int
	RateLimit      rate.Limit
	RateBurst      int
	AllowedOrigins []string
}

// pongWait is how long the connection may stay silent; it must exceed the ping interval.
func (o ClientOptions) pongWait() time.Duration {
	return o.PingInterval * 10 / 9
}

// Client is one connected party on a websocket
type Client struct {
	id          string
	conn        *websocket.Conn
	send        chan []byte   // Channel for outgoing messages
	rateLimiter *rate.Limiter // Rate limiter to prevent spamming
	opts        ClientOptions

	mu     sync.Mutex // protects closed and send
	closed bool
}

// NewClient wraps an upgraded connection. conn may be nil in tests that never start the pumps.
func NewClient(id string, conn *websocket.Conn, opts ClientOptions) *Client {
	return &Client{
		id:          id,
		conn:        conn,
		send:        make(chan []byte, opts.SendBuffer),
		rateLimiter: rate.NewLimiter(opts.RateLimit, opts.RateBurst),
		opts:        opts,
	}
}

// ID returns the connection id
func (c *Client) ID() string {
	return c.id
}

// Deliver queues msg for writing. It returns false if the client is closed or its buffer is full.
func (c *Client) Deliver(msg []byte) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.closed {
		return false
	}
	select {
	case c.send <- msg:
		return true
	default:
		return false
	}
}

// Close stops the write pump, which then closes the connection
func (c *Client) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.closed {
		c.closed = true
		close(c.send)
	}
}

// Allow reports whether the client may send another message now
func (c *Client) Allow() bool {
	return c.rateLimiter.Allow()
}

// ReadMessages listens for incoming messages until the connection fails.
func (c *Client) ReadMessages(handleMessage func(*Client, []byte), onClose func()) {
	defer func() {
		onClose()
		c.conn.Close()
		utils.Debug("Client: connection closed", map[string]any{"party_id": c.id})
	}()

	c.conn.SetReadLimit(c.opts.MaxMessageSize)
	_ = c.conn.SetReadDeadline(time.Now().Add(c.opts.pongWait()))
	c.conn.SetPongHandler(func(string) error {
		return c.conn.SetReadDeadline(time.Now().Add(c.opts.pongWait()))
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				utils.Debug("Client: read error", map[string]any{"party_id": c.id, "error": err.Error()})
			}
			return
		}
		handleMessage(c, message)
	}
}

// WriteMessages sends queued messages and keepalive pings until the client is closed.
func (c *Client) WriteMessages() {
	ticker := time.NewTicker(c.opts.PingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if !ok {
				_ = c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				utils.Debug("Client: write error", map[string]any{"party_id": c.id, "error": err.Error()})
				return
			}

		case <-ticker.C:
			_ = c.conn.SetWriteDeadline(time.Now().Add(c.opts.WriteWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
