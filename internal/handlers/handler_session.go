package handlers

import (
	"context"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/dto"
	"github.com/SscSPs/shefra_converter/internal/middleware"
	"github.com/SscSPs/shefra_converter/internal/platform/config"
	"github.com/SscSPs/shefra_converter/internal/utils"
	"github.com/SscSPs/shefra_converter/internal/utils/conversion"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"golang.org/x/time/rate"
)

const (
	sessionWriteTimeout = 10 * time.Second
	sessionPongTimeout  = 60 * time.Second
	sessionPingInterval = 50 * time.Second
	sessionMaxMessage   = 4096
)

// sessionHandler bridges a WebSocket client to a conversion session.
type sessionHandler struct {
	sessions      portssvc.SessionFactory
	upgrader      websocket.Upgrader
	posthogClient *utils.PosthogClientWrapper
	messageRPS    float64
	messageBurst  int
}

func newSessionHandler(sessions portssvc.SessionFactory, cfg *config.Config, posthogClient *utils.PosthogClientWrapper) *sessionHandler {
	return &sessionHandler{
		sessions: sessions,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(cfg.FrontendBaseURL),
		},
		posthogClient: posthogClient,
		messageRPS:    cfg.SessionMessageRPS,
		messageBurst:  cfg.SessionMessageBurst,
	}
}

// registerSessionRoutes registers the live session endpoint.
func registerSessionRoutes(rg *gin.RouterGroup, sessions portssvc.SessionFactory, cfg *config.Config, posthogClient *utils.PosthogClientWrapper) {
	h := newSessionHandler(sessions, cfg, posthogClient)

	rg.GET("/sessions/ws", h.serveSession)
}

// newMessageLimiter throttles the messages of one connection. Every accepted
// input starts a rate acquisition, so a single client must not be able to
// drain the shared outbound quota. nil means unlimited.
func (h *sessionHandler) newMessageLimiter() *rate.Limiter {
	if h.messageRPS <= 0 {
		return nil
	}
	burst := h.messageBurst
	if burst < 1 {
		burst = 1
	}
	return rate.NewLimiter(rate.Limit(h.messageRPS), burst)
}

// originChecker accepts requests without an Origin header, same-host origins
// and the configured frontend origin.
func originChecker(allowedOrigin string) func(r *http.Request) bool {
	allowed := strings.TrimRight(allowedOrigin, "/")
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		if allowed != "" && strings.EqualFold(strings.TrimRight(origin, "/"), allowed) {
			return true
		}
		u, err := url.Parse(origin)
		if err != nil {
			return false
		}
		return strings.EqualFold(u.Host, r.Host)
	}
}

// serveSession godoc
// @Summary Open a live conversion session
// @Description Upgrades to a WebSocket. The client sends {"type":"input","amount":..,"currency":..} or {"type":"refresh"}; the server answers every accepted message with rates_updated, shefra_computed and suggestions_ready events. Results of superseded inputs are never sent.
// @Tags sessions
// @Success 101 {object} dto.SessionEvent
// @Failure 400 {object} map[string]string "Not a WebSocket handshake"
// @Router /sessions/ws [get]
func (h *sessionHandler) serveSession(c *gin.Context) {
	sessionID := uuid.NewString()
	logger := middleware.GetLoggerFromCtx(c.Request.Context()).With(slog.String("session_id", sessionID))

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		// Upgrade has already written the error response
		logger.Warn("WebSocket upgrade failed", slog.String("error", err.Error()))
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(middleware.WithLogger(c.Request.Context(), logger))
	defer cancel()

	listener := &wsListener{conn: conn, logger: logger}
	session := h.sessions.NewSession(listener)
	defer session.Close()

	middleware.PosthogEvent(c, h.posthogClient, "session_opened", map[string]any{"session_id": sessionID})
	logger.Info("Session opened")

	conn.SetReadLimit(sessionMaxMessage)
	_ = conn.SetReadDeadline(time.Now().Add(sessionPongTimeout))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(sessionPongTimeout))
	})

	go listener.keepAlive(ctx)

	limiter := h.newMessageLimiter()

	for {
		var msg dto.SessionMessage
		if err := conn.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Warn("Session closed unexpectedly", slog.String("error", err.Error()))
			} else {
				logger.Info("Session closed")
			}
			return
		}
		_ = conn.SetReadDeadline(time.Now().Add(sessionPongTimeout))

		if limiter != nil && !limiter.Allow() {
			logger.Warn("Session message rate exceeded", slog.String("type", msg.Type))
			listener.send(dto.NewSessionErrorEvent("too many messages, slow down"))
			continue
		}

		switch msg.Type {
		case dto.SessionMessageInput:
			currency, ok := domain.ParseCurrencyCode(msg.Currency)
			if !ok {
				listener.send(dto.NewSessionErrorEvent("unsupported currency '" + msg.Currency + "'"))
				continue
			}
			amount := msg.Amount.InexactFloat64()
			if !msg.Amount.IsNegative() && !conversion.IsConvertible(amount) {
				listener.send(dto.NewSessionErrorEvent("amount is out of range"))
				continue
			}
			session.OnAmountOrCurrencyChange(ctx, amount, currency)
		case dto.SessionMessageRefresh:
			session.OnRefreshRequested(ctx)
		default:
			listener.send(dto.NewSessionErrorEvent("unknown message type '" + msg.Type + "'"))
		}
	}
}

// wsListener writes session events to a WebSocket. gorilla connections allow
// one concurrent writer, so every write goes through mu.
type wsListener struct {
	mu     sync.Mutex
	conn   *websocket.Conn
	logger *slog.Logger
}

var _ portssvc.SessionListener = (*wsListener)(nil)

func (l *wsListener) OnRatesUpdated(snapshot domain.RateSnapshot) {
	l.send(dto.NewRatesUpdatedEvent(snapshot))
}

func (l *wsListener) OnShefraComputed(conv domain.Conversion) {
	l.send(dto.NewShefraComputedEvent(conv))
}

func (l *wsListener) OnSuggestionsReady(items []domain.CatalogItem) {
	l.send(dto.NewSuggestionsReadyEvent(items))
}

func (l *wsListener) send(event dto.SessionEvent) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_ = l.conn.SetWriteDeadline(time.Now().Add(sessionWriteTimeout))
	if err := l.conn.WriteJSON(event); err != nil {
		l.logger.Debug("Failed to write session event", slog.String("type", event.Type), slog.String("error", err.Error()))
	}
}

func (l *wsListener) keepAlive(ctx context.Context) {
	ticker := time.NewTicker(sessionPingInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			l.mu.Lock()
			err := l.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(sessionWriteTimeout))
			l.mu.Unlock()
			if err != nil {
				return
			}
		}
	}
}
