package spectate

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// Server serves the spectator feed at /ws.
type Server struct {
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *log.Logger
	addr     string
	listener net.Listener
	srv      *http.Server
}

// NewServer creates a spectator server for addr (e.g. ":8081").
func NewServer(addr string, logger *log.Logger) *Server {
	logger = logger.WithPrefix("spectate")
	return &Server{
		hub:    NewHub(logger),
		logger: logger,
		addr:   addr,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Spectating is read-only, any origin may watch.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// Hub returns the server's hub.
func (s *Server) Hub() *Hub {
	return s.hub
}

// Handler returns the HTTP handler of the feed.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.serveWs)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, "ok %d\n", s.hub.Clients())
	})
	return mux
}

// serveWs upgrades a spectator connection and starts its pumps.
func (s *Server) serveWs(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}
	c := &client{hub: s.hub, conn: conn, send: make(chan []byte, clientBuffer)}
	if !s.hub.join(c) {
		conn.Close()
		return
	}
	go c.writePump()
	go c.readPump()
}

// Start listens on the server address and serves in the background until
// ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("spectate: listen %s: %w", s.addr, err)
	}
	s.listener = ln
	s.srv = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go s.hub.Run(ctx)
	go func() {
		if err := s.srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger.Error("spectator server stopped", "err", err)
		}
	}()
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.srv.Shutdown(shutdownCtx); err != nil {
			s.logger.Warn("spectator shutdown", "err", err)
		}
	}()

	s.logger.Info("spectator feed listening", "addr", ln.Addr().String())
	return nil
}

// Addr returns the listening address, or the configured one before Start.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}
