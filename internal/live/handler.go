package live

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/manishpatil55/demo-product-page/internal/content"
)

const (
	writeWait      = 5 * time.Second
	maxMessageSize = 4096
)

// Options configures a Handler.
type Options struct {
	Interval time.Duration
	// AllowAllOrigins accepts upgrades from any origin. Otherwise the
	// Origin header must match the request host.
	AllowAllOrigins bool
	Logger          *zap.Logger
}

// Handler upgrades requests to websockets and runs one Session per
// connection. Sessions keep the offerings they started with; a content
// reload applies to new connections.
type Handler struct {
	holder   *content.Holder
	opts     Options
	logger   *zap.Logger
	upgrader websocket.Upgrader

	mu       sync.Mutex
	sessions map[string]*websocket.Conn
	wg       sync.WaitGroup
}

// NewHandler creates a handler serving the offerings of holder.
func NewHandler(holder *content.Holder, opts Options) *Handler {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	h := &Handler{
		holder:   holder,
		opts:     opts,
		logger:   logger,
		sessions: make(map[string]*websocket.Conn),
	}
	if opts.AllowAllOrigins {
		h.upgrader.CheckOrigin = func(r *http.Request) bool { return true }
	}
	return h
}

// Count returns the number of open sessions.
func (h *Handler) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.sessions)
}

// Close disconnects every session and waits for them to finish.
// Hijacked connections are not closed by http.Server.Shutdown.
func (h *Handler) Close() {
	h.mu.Lock()
	for _, conn := range h.sessions {
		conn.Close()
	}
	h.mu.Unlock()
	h.wg.Wait()
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s := h.holder.Get()
	if s == nil || len(s.Offerings) == 0 {
		http.Error(w, "no offerings to show", http.StatusServiceUnavailable)
		return
	}

	cfg := SessionConfig{Interval: h.opts.Interval, Logger: h.logger}
	if v := r.URL.Query().Get("offering"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 || n >= len(s.Offerings) {
			http.Error(w, "offering out of range", http.StatusBadRequest)
			return
		}
		cfg.Offering = &n
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Debug("websocket upgrade", zap.Error(err))
		return
	}
	defer conn.Close()
	conn.SetReadLimit(maxMessageSize)

	send := func(v interface{}) error {
		conn.SetWriteDeadline(time.Now().Add(writeWait))
		return conn.WriteJSON(v)
	}
	sess, err := NewSession(s.Offerings, cfg, send)
	if err != nil {
		h.logger.Warn("live session", zap.Error(err))
		return
	}

	h.wg.Add(1)
	defer h.wg.Done()
	h.track(sess.ID, conn)
	defer h.untrack(sess.ID)
	defer sess.Close()

	log := h.logger.With(zap.String("session", sess.ID))
	log.Debug("live session opened", zap.String("remote", r.RemoteAddr))

	// The request context is not cancelled when a hijacked client goes
	// away; the session ends when the read loop does.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if err := sess.Start(ctx); err != nil {
		log.Debug("live session start", zap.Error(err))
		return
	}

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Warn("websocket read", zap.Error(err))
			}
			break
		}

		var req Message
		if err := json.Unmarshal(msg, &req); err != nil {
			sess.SendError(errors.New("invalid message format"))
			continue
		}
		if err := sess.Handle(req); err != nil {
			if errors.Is(err, ErrClosed) {
				break
			}
			sess.SendError(err)
		}
	}
	log.Debug("live session closed")
}

func (h *Handler) track(id string, conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.sessions[id] = conn
}

func (h *Handler) untrack(id string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.sessions, id)
}
