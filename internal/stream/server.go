package stream

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"mad-life/internal/core"
)

// Server serves a session over HTTP:
//
//	GET  /ws                             websocket stream of frames
//	GET  /state                          current frame as JSON
//	POST /control?action=toggle|reset|step
type Server struct {
	session  *core.Session
	hub      *Hub
	upgrader websocket.Upgrader
	logger   *log.Logger
}

// NewServer wires a session to a hub.
func NewServer(session *core.Session, hub *Hub, logger *log.Logger) *Server {
	return &Server{
		session: session,
		hub:     hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
		logger: logger,
	}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/state", s.handleState)
	mux.HandleFunc("/control", s.handleControl)
	return mux
}

// Run advances the session every tick and publishes each new generation
// until ctx is done.
func (s *Server) Run(ctx context.Context, tick time.Duration) error {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case now := <-ticker.C:
			if s.session.Advance(now) {
				if err := s.hub.Publish(Snapshot(s.session)); err != nil {
					return err
				}
			}
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade", "err", err)
		return
	}
	s.hub.Register(conn, Snapshot(s.session))
	// Drain client messages until the connection goes away.
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			s.hub.Unregister(conn)
			return
		}
	}
}

func (s *Server) handleState(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	writeJSON(w, Snapshot(s.session))
}

func (s *Server) handleControl(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	action := r.URL.Query().Get("action")
	switch action {
	case "toggle":
		s.session.Toggle()
	case "reset":
		s.session.Restart()
	case "step":
		s.session.StepOnce()
	default:
		http.Error(w, "unknown action "+action, http.StatusBadRequest)
		return
	}
	s.logger.Info("control", "action", action, "steps", s.session.Steps())
	frame := Snapshot(s.session)
	if err := s.hub.Publish(frame); err != nil {
		s.logger.Warn("publish", "err", err)
	}
	writeJSON(w, frame)
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
