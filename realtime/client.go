package realtime

import (
	"encoding/json"
	"log"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 32
)

// joinMessage is the first frame a client sends to register its ward
// affiliation. The user id is already bound from the session at upgrade
// time; a claimed userId that disagrees with the session is ignored.
type joinMessage struct {
	Type   string `json:"type"`
	UserID string `json:"userId"`
	WardID string `json:"wardId"`
}

// Client is a single live connection owned by one user.
type Client struct {
	hub    *Hub
	conn   *websocket.Conn
	send   chan []byte
	userID string

	mu     sync.RWMutex
	wardID string
}

func newClient(hub *Hub, conn *websocket.Conn, userID string) *Client {
	return &Client{
		hub:    hub,
		conn:   conn,
		send:   make(chan []byte, sendBufferSize),
		userID: userID,
	}
}

// WardID returns the ward tag stamped by the join handshake, empty until
// the client joins with one.
func (c *Client) WardID() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.wardID
}

func (c *Client) setWardID(wardID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.wardID = wardID
}

// enqueue hands a pre-serialized frame to the writer. A client whose send
// buffer is full misses the frame instead of stalling the fan-out.
func (c *Client) enqueue(payload []byte) {
	select {
	case c.send <- payload:
	default:
		log.Printf("Dropping frame for slow websocket client (user %s)", c.userID)
	}
}

// readPump consumes inbound frames, handling the join handshake, until the
// connection closes.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister(c)
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("Websocket read error: %v", err)
			}
			return
		}

		c.handleMessage(raw)
	}
}

// handleMessage processes one inbound frame. Only the join handshake is
// meaningful; the session identity from the upgrade always wins over a
// claimed userId.
func (c *Client) handleMessage(raw []byte) {
	var msg joinMessage
	if err := json.Unmarshal(raw, &msg); err != nil {
		log.Printf("Websocket message error: %v", err)
		return
	}
	if msg.Type == "join" {
		if msg.UserID != "" && msg.UserID != c.userID {
			log.Printf("Websocket join claimed user %s but session is %s; keeping session identity", msg.UserID, c.userID)
		}
		c.setWardID(msg.WardID)
	}
}

// writePump drains the send channel to the socket and keeps the
// connection alive with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
