package stream

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
)

// ErrHubClosed is returned when publishing to a closed hub.
var ErrHubClosed = errors.New("stream: hub closed")

const writeWait = 10 * time.Second

type registration struct {
	conn  *websocket.Conn
	first []byte
}

// Hub fans frames out to websocket clients. A single goroutine owns every
// connection write, so connections never see concurrent writers.
type Hub struct {
	mu      sync.RWMutex
	clients map[*websocket.Conn]bool

	broadcast  chan []byte
	register   chan registration
	unregister chan *websocket.Conn
	done       chan struct{}
	closeOnce  sync.Once
	wg         sync.WaitGroup

	logger *log.Logger
}

// NewHub starts the broadcaster goroutine.
func NewHub(logger *log.Logger) *Hub {
	h := &Hub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan []byte, 64),
		register:   make(chan registration),
		unregister: make(chan *websocket.Conn),
		done:       make(chan struct{}),
		logger:     logger,
	}
	h.wg.Add(1)
	go h.run()
	return h
}

// Register adds a client and sends it first before any broadcast frame.
func (h *Hub) Register(conn *websocket.Conn, first Frame) {
	data, err := json.Marshal(first)
	if err != nil {
		h.logger.Error("encode frame", "err", err)
		return
	}
	select {
	case h.register <- registration{conn: conn, first: data}:
	case <-h.done:
		conn.Close()
	}
}

// Unregister removes and closes a client.
func (h *Hub) Unregister(conn *websocket.Conn) {
	select {
	case h.unregister <- conn:
	case <-h.done:
	}
}

// Publish queues a frame for every client. When the queue is full the oldest
// frame is dropped; clients only need the latest generation.
func (h *Hub) Publish(f Frame) error {
	data, err := json.Marshal(f)
	if err != nil {
		return err
	}
	for {
		select {
		case <-h.done:
			return ErrHubClosed
		default:
		}
		select {
		case h.broadcast <- data:
			return nil
		default:
		}
		select {
		case <-h.broadcast:
		default:
		}
	}
}

// Clients reports the number of connected clients.
func (h *Hub) Clients() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients)
}

func (h *Hub) run() {
	defer h.wg.Done()
	for {
		select {
		case <-h.done:
			return
		case reg := <-h.register:
			if !h.write(reg.conn, reg.first) {
				continue
			}
			h.mu.Lock()
			h.clients[reg.conn] = true
			h.mu.Unlock()
			h.logger.Debug("client connected", "remote", reg.conn.RemoteAddr())
		case conn := <-h.unregister:
			h.drop(conn)
		case data := <-h.broadcast:
			h.mu.RLock()
			conns := make([]*websocket.Conn, 0, len(h.clients))
			for conn := range h.clients {
				conns = append(conns, conn)
			}
			h.mu.RUnlock()
			for _, conn := range conns {
				if !h.write(conn, data) {
					h.drop(conn)
				}
			}
		}
	}
}

func (h *Hub) write(conn *websocket.Conn, data []byte) bool {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		h.logger.Debug("write failed", "remote", conn.RemoteAddr(), "err", err)
		conn.Close()
		return false
	}
	return true
}

func (h *Hub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if _, ok := h.clients[conn]; ok {
		delete(h.clients, conn)
		conn.Close()
		h.logger.Debug("client disconnected", "remote", conn.RemoteAddr())
	}
}

// Close stops the broadcaster and closes every client.
func (h *Hub) Close() error {
	h.closeOnce.Do(func() {
		close(h.done)
		h.wg.Wait()
		h.mu.Lock()
		for conn := range h.clients {
			conn.Close()
			delete(h.clients, conn)
		}
		h.mu.Unlock()
	})
	return nil
}
