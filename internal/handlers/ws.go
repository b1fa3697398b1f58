package handlers

import (
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

var (
	feedClients   = make(map[*feedClient]bool)
	feedClientsMu sync.RWMutex
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
)

// feedClient wraps a connection with a write mutex: broadcasts and the ping
// loop run on different goroutines, and gorilla/websocket allows only one
// concurrent writer per connection.
type feedClient struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (c *feedClient) writeJSON(v interface{}) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteJSON(v)
}

func (c *feedClient) ping() error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()

	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}

	return c.conn.WriteMessage(websocket.PingMessage, nil)
}

// broadcastOrdersChanged tells every connected feed client to re-fetch the
// order ledger. Called after each successful order mutation.
func broadcastOrdersChanged() {
	feedClientsMu.RLock()
	if len(feedClients) == 0 {
		feedClientsMu.RUnlock()
		return
	}

	clients := make([]*feedClient, 0, len(feedClients))
	for client := range feedClients {
		clients = append(clients, client)
	}
	feedClientsMu.RUnlock()

	for _, client := range clients {
		err := client.writeJSON(map[string]string{
			"type":    "refresh",
			"message": "Orders updated",
		})

		if err != nil {
			log.Printf("Failed to broadcast refresh to client: %v", err)
			feedClientsMu.Lock()
			delete(feedClients, client)
			feedClientsMu.Unlock()
			client.conn.Close()
		}
	}
}

// OrderFeed upgrades the request to a websocket and keeps it registered for
// refresh broadcasts. Clients are not expected to send anything meaningful;
// the read loop only detects disconnects.
func (h *Handler) OrderFeed(c *gin.Context) {
	upgrader := websocket.Upgrader{
		CheckOrigin: func(r *http.Request) bool { return true },
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("WebSocket upgrade failed: %v", err)
		return
	}

	conn.SetReadLimit(maxMessageSize)
	if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
		log.Printf("Failed to set initial read deadline: %v", err)
		return
	}
	conn.SetPongHandler(func(string) error {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			log.Printf("Failed to set read deadline in pong handler: %v", err)
		}
		return nil
	})

	client := &feedClient{conn: conn}
	done := make(chan struct{})

	feedClientsMu.Lock()
	feedClients[client] = true
	feedClientsMu.Unlock()

	defer func() {
		feedClientsMu.Lock()
		delete(feedClients, client)
		feedClientsMu.Unlock()
		close(done)
		conn.Close()
	}()

	err = client.writeJSON(map[string]string{
		"type":    "connected",
		"message": "Order feed connected",
	})

	if err != nil {
		log.Printf("Failed to send welcome message: %v", err)
		return
	}

	ticker := time.NewTicker(pingPeriod)
	defer ticker.Stop()

	go func() {
		for {
			select {
			case <-ticker.C:
				if err := client.ping(); err != nil {
					return
				}
			case <-done:
				return
			}
		}
	}()

	for {
		if err := conn.SetReadDeadline(time.Now().Add(pongWait)); err != nil {
			break
		}

		if _, _, err := conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Printf("Order feed error: %v", err)
			}
			break
		}
	}
}
