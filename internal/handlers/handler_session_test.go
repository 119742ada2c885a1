package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/dto"
	"github.com/SscSPs/shefra_converter/internal/handlers"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// echoSessionFactory creates sessions that answer every input synchronously
// with a fixed fallback cycle.
type echoSessionFactory struct {
	mu       sync.Mutex
	sessions []*echoSession
}

func (f *echoSessionFactory) NewSession(listener portssvc.SessionListener) portssvc.Session {
	f.mu.Lock()
	defer f.mu.Unlock()
	s := &echoSession{listener: listener, currency: domain.USD}
	f.sessions = append(f.sessions, s)
	return s
}

func (f *echoSessionFactory) closedCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, s := range f.sessions {
		if s.isClosed() {
			n++
		}
	}
	return n
}

type echoSession struct {
	mu       sync.Mutex
	listener portssvc.SessionListener
	amount   float64
	currency domain.CurrencyCode
	closed   bool
}

func (s *echoSession) OnAmountOrCurrencyChange(_ context.Context, amount float64, currency domain.CurrencyCode) {
	s.mu.Lock()
	s.amount, s.currency = amount, currency
	s.mu.Unlock()
	s.emit()
}

func (s *echoSession) OnRefreshRequested(context.Context) { s.emit() }

func (s *echoSession) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
}

func (s *echoSession) isClosed() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closed
}

func (s *echoSession) emit() {
	s.mu.Lock()
	amount, currency := s.amount, s.currency
	s.mu.Unlock()
	s.listener.OnRatesUpdated(domain.RateSnapshot{Base: currency, Rates: domain.RateTable{currency: 1}, Status: domain.RateStatusFallback})
	s.listener.OnShefraComputed(domain.Conversion{Amount: amount, Currency: currency, Shefras: amount / 140})
	s.listener.OnSuggestionsReady([]domain.CatalogItem{})
}

type rawEvent struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}

func (suite *HandlersTestSuite) dialSession(server *httptest.Server, header http.Header) (*websocket.Conn, *http.Response, error) {
	wsURL := "ws" + strings.TrimPrefix(server.URL, "http") + "/api/v1/sessions/ws"
	return websocket.DefaultDialer.Dial(wsURL, header)
}

func (suite *HandlersTestSuite) readEvent(conn *websocket.Conn) rawEvent {
	suite.Require().NoError(conn.SetReadDeadline(time.Now().Add(2 * time.Second)))
	var ev rawEvent
	suite.Require().NoError(conn.ReadJSON(&ev))
	return ev
}

func (suite *HandlersTestSuite) TestSession_InputProducesEvents() {
	server := httptest.NewServer(suite.router)
	defer server.Close()

	conn, _, err := suite.dialSession(server, nil)
	suite.Require().NoError(err)
	defer conn.Close()

	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "input", "amount": 280, "currency": "inr"}))

	ev := suite.readEvent(conn)
	suite.Equal(dto.SessionEventRatesUpdated, ev.Type)
	var rates dto.RatesResponse
	suite.Require().NoError(json.Unmarshal(ev.Payload, &rates))
	suite.Equal("INR", rates.Base)
	suite.Equal("fallback", rates.Status)

	ev = suite.readEvent(conn)
	suite.Equal(dto.SessionEventShefraComputed, ev.Type)
	var shefra dto.ShefraComputed
	suite.Require().NoError(json.Unmarshal(ev.Payload, &shefra))
	suite.Equal(2.0, shefra.ShefraAmount)
	suite.Equal("2.00", shefra.ShefraDisplay)

	ev = suite.readEvent(conn)
	suite.Equal(dto.SessionEventSuggestionsReady, ev.Type)
	suite.JSONEq(`[]`, string(ev.Payload))

	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "refresh"}))
	suite.Equal(dto.SessionEventRatesUpdated, suite.readEvent(conn).Type)
	suite.Equal(dto.SessionEventShefraComputed, suite.readEvent(conn).Type)
	suite.Equal(dto.SessionEventSuggestionsReady, suite.readEvent(conn).Type)
}

func (suite *HandlersTestSuite) TestSession_RejectsBadMessages() {
	server := httptest.NewServer(suite.router)
	defer server.Close()

	conn, _, err := suite.dialSession(server, nil)
	suite.Require().NoError(err)
	defer conn.Close()

	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "input", "amount": 1, "currency": "BTC"}))
	ev := suite.readEvent(conn)
	suite.Equal(dto.SessionEventError, ev.Type)
	suite.Contains(string(ev.Payload), "BTC")

	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "dance"}))
	ev = suite.readEvent(conn)
	suite.Equal(dto.SessionEventError, ev.Type)
}

func (suite *HandlersTestSuite) TestSession_LargestAmounts() {
	server := httptest.NewServer(suite.newServiceRouter(suite.cfg))
	defer server.Close()

	conn, _, err := suite.dialSession(server, nil)
	suite.Require().NoError(err)
	defer conn.Close()

	// beyond float64: rejected before a cycle starts
	suite.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"input","amount":1e400,"currency":"USD"}`)))
	ev := suite.readEvent(conn)
	suite.Equal(dto.SessionEventError, ev.Type)
	suite.Contains(string(ev.Payload), "out of range")

	// finite but overflowing once multiplied by the INR rate: a degraded cycle, and the server keeps going
	suite.Require().NoError(conn.WriteMessage(websocket.TextMessage, []byte(`{"type":"input","amount":1e307,"currency":"USD"}`)))
	suite.Equal(dto.SessionEventRatesUpdated, suite.readEvent(conn).Type)
	ev = suite.readEvent(conn)
	suite.Require().Equal(dto.SessionEventShefraComputed, ev.Type)
	var shefra dto.ShefraComputed
	suite.Require().NoError(json.Unmarshal(ev.Payload, &shefra))
	suite.True(shefra.OutOfRange)
	suite.Equal(0.0, shefra.ShefraAmount)
	suite.Equal("0.00", shefra.ShefraDisplay)
	suite.Equal(dto.SessionEventSuggestionsReady, suite.readEvent(conn).Type)

	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "input", "amount": 140, "currency": "INR"}))
	suite.Equal(dto.SessionEventRatesUpdated, suite.readEvent(conn).Type)
	ev = suite.readEvent(conn)
	suite.Require().NoError(json.Unmarshal(ev.Payload, &shefra))
	suite.False(shefra.OutOfRange)
	suite.Equal("1.00", shefra.ShefraDisplay)
}

func (suite *HandlersTestSuite) TestSession_MessagesAreThrottled() {
	cfg := *suite.cfg
	cfg.SessionMessageRPS = 0.001
	cfg.SessionMessageBurst = 1
	container := &portssvc.ServiceContainer{Session: suite.sessionFactory}
	router := gin.New()
	suite.Require().NoError(handlers.RegisterRoutes(router, &cfg, container, nil, nil))
	server := httptest.NewServer(router)
	defer server.Close()

	conn, _, err := suite.dialSession(server, nil)
	suite.Require().NoError(err)
	defer conn.Close()

	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "refresh"}))
	suite.Require().NoError(conn.WriteJSON(map[string]any{"type": "refresh"}))

	suite.Equal(dto.SessionEventRatesUpdated, suite.readEvent(conn).Type)
	suite.Equal(dto.SessionEventShefraComputed, suite.readEvent(conn).Type)
	suite.Equal(dto.SessionEventSuggestionsReady, suite.readEvent(conn).Type)
	ev := suite.readEvent(conn)
	suite.Equal(dto.SessionEventError, ev.Type)
	suite.Contains(string(ev.Payload), "too many messages")
}

func (suite *HandlersTestSuite) TestSession_ClosedWithConnection() {
	server := httptest.NewServer(suite.router)
	defer server.Close()

	conn, _, err := suite.dialSession(server, nil)
	suite.Require().NoError(err)
	suite.Require().NoError(conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye")))
	conn.Close()

	suite.Eventually(func() bool { return suite.sessionFactory.closedCount() == 1 }, 2*time.Second, 10*time.Millisecond)
}

func (suite *HandlersTestSuite) TestSession_ForeignOriginRejected() {
	server := httptest.NewServer(suite.router)
	defer server.Close()

	header := http.Header{}
	header.Set("Origin", "http://evil.example")
	_, resp, err := suite.dialSession(server, header)

	suite.Require().Error(err)
	suite.Require().NotNil(resp)
	suite.Equal(http.StatusForbidden, resp.StatusCode)
}
