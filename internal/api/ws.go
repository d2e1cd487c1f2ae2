package api

import (
	"net/http"
	"sync"

	"codeberg.org/mvbarbosa/robodata/internal/feed"
	"codeberg.org/mvbarbosa/robodata/internal/logger"
	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }}

// wsHub tracks connected websocket clients and fans each completed
// cycle's snapshot out to them.
type wsHub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]bool
}

func newWSHub() *wsHub {
	return &wsHub{clients: map[*websocket.Conn]bool{}}
}

// handleWS upgrades HTTP to websocket and registers the client for
// broadcasts. The read loop only exists to detect disconnects.
func (h *wsHub) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		return
	}

	h.mu.Lock()
	h.clients[conn] = true
	h.mu.Unlock()

	logger.Debug().Str("remote", conn.RemoteAddr().String()).Msg("Websocket client connected")

	go func() {
		defer h.drop(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

// broadcast sends the snapshot to every client, dropping any whose
// write fails.
func (h *wsHub) broadcast(snap feed.Snapshot) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		if err := conn.WriteJSON(snap); err != nil {
			logger.Debug().Err(err).Msg("Dropping websocket client")
			conn.Close()
			delete(h.clients, conn)
		}
	}
}

func (h *wsHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.clients[conn] {
		conn.Close()
		delete(h.clients, conn)
	}
}

func (h *wsHub) closeAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for conn := range h.clients {
		conn.Close()
		delete(h.clients, conn)
	}
}
