// Package spectate streams game snapshots to read-only WebSocket watchers.
//
// A Hub fans every published frame out to all connected watchers. Each
// watcher has its own bounded queue drained by a writer goroutine; a watcher
// that cannot keep up loses frames instead of slowing the games down.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Path is the HTTP path watchers connect to.
const Path = "/watch"

const (
	writeWait    = 2 * time.Second
	sendBuffer   = 16
	maxReadBytes = 512
	shutdownWait = 5 * time.Second
)

// Frame is the JSON message sent to watchers.
type Frame struct {
	Player   string `json:"player"`
	Snapshot any    `json:"snapshot"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub tracks connected watchers and broadcasts frames to them.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	closed  bool
}

// NewHub creates a hub. A nil logger discards log output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		upgrader: websocket.Upgrader{
			// Any origin may watch: the feed is read-only and public.
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP upgrades the request and keeps the watcher connected until it
// disconnects or the hub closes. Messages from watchers are discarded.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("Spectator upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}
	if !h.add(c) {
		conn.Close()
		return
	}
	h.logger.Info("Spectator connected", "remote", r.RemoteAddr, "watchers", h.Count())

	go c.writeLoop()
	c.readLoop()

	h.remove(c)
	h.logger.Info("Spectator disconnected", "remote", r.RemoteAddr, "watchers", h.Count())
}

func (h *Hub) add(c *client) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed {
		return false
	}
	h.clients[c] = struct{}{}
	return true
}

func (h *Hub) remove(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[c]; ok {
		delete(h.clients, c)
		close(c.send)
	}
}

// Publish sends a frame for the named player to every watcher.
func (h *Hub) Publish(player string, view any) error {
	data, err := json.Marshal(Frame{Player: player, Snapshot: view})
	if err != nil {
		return fmt.Errorf("spectate: cannot encode frame: %w", err)
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			// Watcher is behind; drop this frame.
		}
	}
	return nil
}

// Count returns the number of connected watchers.
func (h *Hub) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Close disconnects every watcher and refuses new ones.
func (h *Hub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	for c := range h.clients {
		delete(h.clients, c)
		close(c.send)
	}
}

// Serve listens on addr and serves watchers on Path until ctx is done.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("spectate: cannot listen on %s: %w", addr, err)
	}

	mux := http.NewServeMux()
	mux.Handle(Path, h)
	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	done := make(chan error, 1)
	go func() {
		done <- srv.Serve(ln)
	}()
	h.logger.Info("Spectator feed listening", "address", ln.Addr().String(), "path", Path)

	select {
	case err := <-done:
		h.Close()
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: server stopped: %w", err)
	case <-ctx.Done():
	}

	// Hijacked WebSocket connections are not closed by Shutdown.
	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("spectate: shutdown failed: %w", err)
	}
	return nil
}

// readLoop discards incoming messages until the connection fails.
func (c *client) readLoop() {
	c.conn.SetReadLimit(maxReadBytes)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writeLoop drains the send queue. A closed queue ends the connection.
func (c *client) writeLoop() {
	defer c.conn.Close()
	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
	c.conn.SetWriteDeadline(time.Now().Add(writeWait))
	c.conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
