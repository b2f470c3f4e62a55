// internal/feed/server.go
package feed

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"
)

const (
	sendBuffer = 64
	writeWait  = 5 * time.Second
)

// Типы сообщений вещания.
const (
	TypeMap   = "map"
	TypeFrame = "frame"
)

// Message — конверт одного сообщения клиенту.
type Message struct {
	Type    string `json:"type"`
	Payload any    `json:"payload"`
}

type client struct {
	conn *websocket.Conn
	send chan []byte
	done chan struct{}
	once sync.Once
}

func (c *client) close() {
	c.once.Do(func() { close(c.done) })
}

// Server раздаёт снимки всем подключённым клиентам. Медленный клиент
// теряет кадры, но не задерживает остальных.
type Server struct {
	upgrader websocket.Upgrader
	logger   zerolog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
	mapMsg  []byte // последняя карта, уходит каждому новому клиенту
	closed  bool
}

func NewServer(logger zerolog.Logger) *Server {
	return &Server{
		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// ServeHTTP переводит запрос в websocket и регистрирует клиента.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	c := &client{
		conn: conn,
		send: make(chan []byte, sendBuffer),
		done: make(chan struct{}),
	}

	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		_ = conn.Close()
		return
	}
	if s.mapMsg != nil {
		c.send <- s.mapMsg
	}
	s.clients[c] = struct{}{}
	n := len(s.clients)
	s.mu.Unlock()

	s.logger.Info().Str("remote", r.RemoteAddr).Int("clients", n).Msg("feed client connected")
	go s.writeLoop(c)
	go s.readLoop(c)
}

// writeLoop — единственный писатель в соединение клиента.
func (s *Server) writeLoop(c *client) {
	defer c.conn.Close()
	for {
		select {
		case <-c.done:
			_ = c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			_ = c.conn.WriteMessage(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
			return
		case data := <-c.send:
			if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
				s.drop(c)
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				s.logger.Debug().Err(err).Msg("feed write failed")
				s.drop(c)
				return
			}
		}
	}
}

// readLoop нужен только чтобы заметить закрытие соединения.
func (s *Server) readLoop(c *client) {
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			s.drop(c)
			return
		}
	}
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	n := len(s.clients)
	s.mu.Unlock()

	c.close()
	if ok {
		s.logger.Info().Int("clients", n).Msg("feed client disconnected")
	}
}

// PublishMap запоминает карту и рассылает её всем.
func (s *Server) PublishMap(payload any) error {
	data, err := json.Marshal(Message{Type: TypeMap, Payload: payload})
	if err != nil {
		return fmt.Errorf("encode map: %w", err)
	}
	s.mu.Lock()
	s.mapMsg = data
	s.mu.Unlock()
	s.fanOut(data)
	return nil
}

// Broadcast рассылает сообщение без ожидания клиентов.
func (s *Server) Broadcast(msg Message) error {
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("encode %s: %w", msg.Type, err)
	}
	s.fanOut(data)
	return nil
}

func (s *Server) fanOut(data []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for c := range s.clients {
		select {
		case c.send <- data:
		default:
			s.logger.Debug().Msg("feed client is slow, frame dropped")
		}
	}
}

// Clients — число подключённых клиентов.
func (s *Server) Clients() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

// Close отключает всех клиентов; новые подключения отклоняются.
func (s *Server) Close() {
	s.mu.Lock()
	s.closed = true
	clients := s.clients
	s.clients = make(map[*client]struct{})
	s.mu.Unlock()

	for c := range clients {
		c.close()
	}
}

// ListenAndServe обслуживает addr до отмены ctx.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	mux := http.NewServeMux()
	mux.Handle("/ws", s)
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}

	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()
	s.logger.Info().Str("addr", addr).Msg("feed listening")

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("feed server: %w", err)
	case <-ctx.Done():
	}

	s.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), writeWait)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("feed shutdown: %w", err)
	}
	return nil
}
