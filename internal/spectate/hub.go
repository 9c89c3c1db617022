// Package spectate broadcasts game snapshots to websocket spectators.
// Spectators are read-only: anything they send is discarded.
package spectate

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Path is where the websocket endpoint is mounted.
const Path = "/ws"

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
)

// Frame is one message on the wire.
type Frame struct {
	Type     string         `json:"t"`
	Session  string         `json:"session"`
	Phase    string         `json:"phase"`
	Snapshot snake.Snapshot `json:"snapshot"`
}

// FrameState is the only frame type currently sent.
const FrameState = "state"

// Conn is a single spectator connection.
type Conn struct {
	ID   string
	ws   *websocket.Conn
	send chan []byte
	once sync.Once
}

func newConn(ws *websocket.Conn) *Conn {
	return &Conn{
		ID:   uuid.New().String(),
		ws:   ws,
		send: make(chan []byte, sendBuffer),
	}
}

// enqueue hands a frame to the writer without blocking.
// A spectator that cannot keep up loses frames, never the game.
func (c *Conn) enqueue(data []byte) bool {
	select {
	case c.send <- data:
		return true
	default:
		return false
	}
}

func (c *Conn) close() {
	c.once.Do(func() {
		close(c.send)
		c.ws.Close()
	})
}

func (c *Conn) writeLoop() {
	for data := range c.send {
		c.ws.SetWriteDeadline(time.Now().Add(writeTimeout))
		if err := c.ws.WriteMessage(websocket.TextMessage, data); err != nil {
			return
		}
	}
}

// Hub tracks spectators and fans frames out to them.
type Hub struct {
	mu       sync.RWMutex
	conns    map[string]*Conn
	last     map[string][]byte // latest frame per session
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewHub creates an empty hub. A nil logger discards output.
func NewHub(logger *log.Logger) *Hub {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Hub{
		conns:  make(map[string]*Conn),
		last:   make(map[string][]byte),
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin:     func(r *http.Request) bool { return true },
			ReadBufferSize:  1024,
			WriteBufferSize: 4096,
		},
	}
}

// Count returns the number of connected spectators.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.conns)
}

// Publish sends the snapshot of a session to every spectator.
// It never blocks on the network.
func (h *Hub) Publish(session string, s snake.Snapshot) {
	data, err := json.Marshal(Frame{
		Type:     FrameState,
		Session:  session,
		Phase:    string(s.Phase()),
		Snapshot: s,
	})
	if err != nil {
		h.logger.Error("could not encode frame", "session", session, "error", err)
		return
	}

	// Connections are only closed after leaving the map, so enqueueing
	// under the lock never races a close.
	h.mu.Lock()
	defer h.mu.Unlock()
	h.last[session] = data
	for _, c := range h.conns {
		if !c.enqueue(data) {
			h.logger.Debug("spectator lagging, frame dropped", "conn", c.ID)
		}
	}
}

// Forget drops the stored frame of a finished session.
func (h *Hub) Forget(session string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.last, session)
}

// ServeHTTP upgrades the request and registers the spectator.
// The latest frame of every live session is sent first so late joiners
// see each board.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}

	c := newConn(ws)
	h.mu.Lock()
	h.conns[c.ID] = c
	for _, data := range h.last {
		c.enqueue(data)
	}
	h.mu.Unlock()

	h.logger.Info("spectator joined", "conn", c.ID, "remote", r.RemoteAddr)
	go c.writeLoop()
	h.readLoop(c)
}

// readLoop drains the connection until the peer goes away.
func (h *Hub) readLoop(c *Conn) {
	defer h.remove(c)
	for {
		if _, _, err := c.ws.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				h.logger.Debug("spectator read error", "conn", c.ID, "error", err)
			}
			return
		}
	}
}

func (h *Hub) remove(c *Conn) {
	h.mu.Lock()
	delete(h.conns, c.ID)
	h.mu.Unlock()
	c.close()
	h.logger.Info("spectator left", "conn", c.ID)
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	conns := h.conns
	h.conns = make(map[string]*Conn)
	h.mu.Unlock()

	for _, c := range conns {
		c.close()
	}
}

// Serve exposes the hub at Path on addr until ctx is cancelled.
func (h *Hub) Serve(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle(Path, h)

	srv := &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		h.logger.Info("spectator feed listening", "address", addr, "path", Path)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("spectate: %w", err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		h.Close()
		return srv.Shutdown(shutdownCtx)
	}
}
