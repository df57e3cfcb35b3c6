// Package telemetry streams simulation snapshots to websocket clients.
//
// The render loop calls Publish each frame; a separate goroutine
// broadcasts the latest snapshot at a fixed interval. The render loop never
// blocks on the network: clients that cannot keep up are dropped.
package telemetry

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/Faultbox/orrery/internal/logger"
	"github.com/Faultbox/orrery/internal/solar"
)

const (
	sendBuffer   = 16
	writeTimeout = 5 * time.Second
	pingInterval = 30 * time.Second
)

type client struct {
	conn *websocket.Conn
	send chan []byte
	addr string
}

// Server serves /ws and /api/state.
type Server struct {
	interval time.Duration
	log      *zap.Logger
	upgrader websocket.Upgrader

	mu      sync.RWMutex
	latest  []byte
	version uint64

	clientsMu sync.Mutex
	clients   map[*client]struct{}

	httpServer *http.Server
	done       chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
}

// New creates a server that broadcasts every interval.
func New(interval time.Duration) *Server {
	return &Server{
		interval: interval,
		log:      logger.Named("telemetry"),
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
		done:    make(chan struct{}),
	}
}

// Publish stores a snapshot for the next broadcast. Safe to call from the render loop.
func (s *Server) Publish(snap solar.Snapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		s.log.Error("encoding snapshot", zap.Error(err))
		return
	}
	s.mu.Lock()
	s.latest = data
	s.version++
	s.mu.Unlock()
}

func (s *Server) snapshot() ([]byte, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.latest, s.version
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWS)
	mux.HandleFunc("/api/state", s.serveState)
	return mux
}

// Start listens on addr and begins broadcasting. It returns the bound
// address, which differs from addr when addr uses port 0.
func (s *Server) Start(addr string) (string, error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return "", fmt.Errorf("telemetry listen: %w", err)
	}

	s.httpServer = &http.Server{Handler: s.Handler(), ReadHeaderTimeout: 5 * time.Second}

	s.wg.Add(2)
	go func() {
		defer s.wg.Done()
		if err := s.httpServer.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error("telemetry server stopped", zap.Error(err))
		}
	}()
	go func() {
		defer s.wg.Done()
		s.broadcastLoop()
	}()

	s.log.Info("telemetry listening", zap.String("addr", ln.Addr().String()))
	return ln.Addr().String(), nil
}

// Shutdown stops the server and disconnects every client.
func (s *Server) Shutdown(ctx context.Context) error {
	s.stopOnce.Do(func() { close(s.done) })

	var err error
	if s.httpServer != nil {
		err = s.httpServer.Shutdown(ctx)
	}

	s.clientsMu.Lock()
	for c := range s.clients {
		s.removeLocked(c)
	}
	s.clientsMu.Unlock()

	s.wg.Wait()
	return err
}

// ClientCount returns the number of connected websocket clients.
func (s *Server) ClientCount() int {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()
	return len(s.clients)
}

func (s *Server) broadcastLoop() {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	var sent uint64
	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
			data, version := s.snapshot()
			if data == nil || version == sent {
				continue
			}
			s.broadcast(data)
			sent = version
		}
	}
}

// broadcast queues data for every client, dropping any whose queue is full.
func (s *Server) broadcast(data []byte) {
	s.clientsMu.Lock()
	defer s.clientsMu.Unlock()

	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.log.Warn("dropping slow client", zap.String("addr", c.addr))
			s.removeLocked(c)
		}
	}
}

// removeLocked unregisters c and closes its queue. clientsMu must be held.
func (s *Server) removeLocked(c *client) {
	if _, ok := s.clients[c]; !ok {
		return
	}
	delete(s.clients, c)
	close(c.send)
}

func (s *Server) serveState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	data, _ := s.snapshot()
	if data == nil {
		http.Error(w, "no state yet", http.StatusServiceUnavailable)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(data)
}

func (s *Server) serveWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	c := &client{conn: conn, send: make(chan []byte, sendBuffer), addr: r.RemoteAddr}

	// New clients get the current state immediately.
	if data, _ := s.snapshot(); data != nil {
		c.send <- data
	}

	s.clientsMu.Lock()
	s.clients[c] = struct{}{}
	s.clientsMu.Unlock()
	s.log.Debug("client connected", zap.String("addr", c.addr), zap.Int("clients", s.ClientCount()))

	go s.writePump(c)
	go s.readPump(c)
}

// readPump discards client messages and unregisters the client on error.
func (s *Server) readPump(c *client) {
	defer func() {
		s.clientsMu.Lock()
		s.removeLocked(c)
		s.clientsMu.Unlock()
		s.log.Debug("client disconnected", zap.String("addr", c.addr), zap.Int("clients", s.ClientCount()))
	}()
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (s *Server) writePump(c *client) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case msg, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeTimeout))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
