package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"growroom/internal/logger"
	"growroom/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	writeWait  = 10 * time.Second
	pongWait   = 60 * time.Second
	pingPeriod = (pongWait * 9) / 10
	maxMsgSize = 1 << 12 // 4 KB

	defaultInterval = 2 * time.Second
	maxInterval     = 30 * time.Second

	wsTypeLive  = "live"
	wsTypeError = "error"
)

type wsEnvelope struct {
	Type  string `json:"type"`
	Data  any    `json:"data,omitempty"`
	Error string `json:"error,omitempty"`
}

// The dashboard is served from the controller's own address.
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// liveStream pushes live grow status over one websocket connection.
type liveStream struct {
	conn  *websocket.Conn
	live  func(ctx context.Context) (service.LiveStatus, error)
	every time.Duration
	log   *logger.Logger
}

// @Summary      Live status stream
// @Description  WebSocket upgrade. Pushes {"type":"live","data":LiveStatus} every interval (default 2s, max 30s).
// @Description  A failed refresh after the first push is reported as {"type":"error"} and the stream continues.
// @Tags         status
// @Param        interval     query  string  false  "Go duration"  example(5s)
// @Param        interval_ms  query  int     false  "Interval in milliseconds"  example(5000)
// @Router       /ws [get]
func (h *Handler) wsConnect(c *gin.Context) {
	every := h.parseInterval(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		if h.log != nil {
			h.log.Errorw("ws_upgrade_failed", "err", err)
		}
		return
	}
	defer func() { _ = conn.Close() }()

	s := &liveStream{conn: conn, live: h.services.Monitoring.Live, every: every, log: h.log}
	s.serve(c.Request.Context())
}

func (h *Handler) parseInterval(c *gin.Context) time.Duration {
	return streamInterval(c.Query("interval"), c.Query("interval_ms"))
}

// streamInterval accepts a Go duration or a millisecond count, in that order,
// within (0, maxInterval]. Anything else yields defaultInterval.
func streamInterval(dur, millis string) time.Duration {
	if d, err := time.ParseDuration(dur); err == nil && validInterval(d) {
		return d
	}
	if ms, err := strconv.Atoi(millis); err == nil {
		if d := time.Duration(ms) * time.Millisecond; validInterval(d) {
			return d
		}
	}
	return defaultInterval
}

func validInterval(d time.Duration) bool { return d > 0 && d <= maxInterval }

func (s *liveStream) serve(ctx context.Context) {
	s.conn.SetReadLimit(maxMsgSize)
	_ = s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	closed := make(chan struct{})
	go s.drain(closed)

	// a failed first snapshot is reported, then the connection is closed
	first := s.next(ctx)
	if err := s.write(first); err != nil {
		s.logf("ws_write_failed_initial", "err", err)
		return
	}
	if first.Type == wsTypeError {
		return
	}

	push := time.NewTicker(s.every)
	defer push.Stop()
	ping := time.NewTicker(pingPeriod)
	defer ping.Stop()

	for {
		select {
		case <-closed:
			return
		case <-ctx.Done():
			return
		case <-ping.C:
			_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				s.logf("ws_ping_failed", "err", err)
				return
			}
		case <-push.C:
			if err := s.write(s.next(ctx)); err != nil {
				s.logf("ws_write_failed", "err", err)
				return
			}
		}
	}
}

func (s *liveStream) next(ctx context.Context) wsEnvelope {
	status, err := s.live(ctx)
	if err != nil {
		s.logf("ws_live_status_failed", "err", err)
		return wsEnvelope{Type: wsTypeError, Error: errLiveStatus}
	}
	return wsEnvelope{Type: wsTypeLive, Data: status}
}

func (s *liveStream) write(env wsEnvelope) error {
	_ = s.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return s.conn.WriteJSON(env)
}

// drain reads until the peer goes away so control frames get processed.
func (s *liveStream) drain(closed chan<- struct{}) {
	defer close(closed)
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			s.logf("ws_read_closed", "err", err)
			return
		}
	}
}

func (s *liveStream) logf(msg string, kv ...any) {
	if s.log != nil {
		s.log.Infow(msg, kv...)
	}
}
