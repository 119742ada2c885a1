package services

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/SscSPs/shefra_converter/internal/core/domain"
	portssvc "github.com/SscSPs/shefra_converter/internal/core/ports/services"
	"github.com/SscSPs/shefra_converter/internal/platform/metrics"
	"github.com/SscSPs/shefra_converter/internal/utils/conversion"
)

// sessionFactory builds sessions sharing the same services.
type sessionFactory struct {
	rates       portssvc.RateProviderSvc
	conversion  portssvc.ConversionSvc
	suggestions portssvc.SuggestionSvc
	metrics     *metrics.Metrics
}

// NewSessionFactory creates a factory for live sessions.
func NewSessionFactory(rates portssvc.RateProviderSvc, conv portssvc.ConversionSvc, suggestions portssvc.SuggestionSvc, m *metrics.Metrics) portssvc.SessionFactory {
	return &sessionFactory{rates: rates, conversion: conv, suggestions: suggestions, metrics: m}
}

func (f *sessionFactory) NewSession(listener portssvc.SessionListener) portssvc.Session {
	f.metrics.SessionOpened()
	return &session{
		BaseService: BaseService{Metrics: f.metrics},
		factory:     f,
		listener:    listener,
		currency:    domain.USD,
	}
}

// session runs one acquire, convert, rank cycle per input. Every cycle gets a
// token; starting a cycle cancels the previous one, and a cycle whose token is
// no longer the latest never reaches the listener.
type session struct {
	BaseService
	factory  *sessionFactory
	listener portssvc.SessionListener

	mu       sync.Mutex
	token    uint64
	cancel   context.CancelFunc
	amount   float64
	currency domain.CurrencyCode
	closed   bool

	deliverMu sync.Mutex
	wg        sync.WaitGroup
}

var _ portssvc.Session = (*session)(nil)

func (s *session) OnAmountOrCurrencyChange(ctx context.Context, amount float64, currency domain.CurrencyCode) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.amount = conversion.SanitizeAmount(amount)
	s.currency = currency
	s.startLocked(ctx)
}

func (s *session) OnRefreshRequested(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.startLocked(ctx)
}

func (s *session) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	if s.cancel != nil {
		s.cancel()
	}
	s.mu.Unlock()

	s.wg.Wait()
	s.factory.metrics.SessionClosed()
}

// startLocked must be called with s.mu held.
func (s *session) startLocked(parent context.Context) {
	s.token++
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(parent)
	s.cancel = cancel

	s.wg.Add(1)
	go s.run(ctx, cancel, s.token, s.amount, s.currency)
}

func (s *session) run(ctx context.Context, cancel context.CancelFunc, token uint64, amount float64, currency domain.CurrencyCode) {
	defer s.wg.Done()
	defer cancel()
	// a failing cycle must not take the process down with it
	defer func() {
		if r := recover(); r != nil {
			s.LogError(ctx, fmt.Errorf("session cycle panicked: %v", r), "Session cycle aborted", slog.Uint64("token", token))
		}
	}()

	snapshot := s.factory.rates.AcquireRates(ctx, currency)
	snapshot.Token = token
	if !s.isCurrent(token) {
		s.discard(ctx, token)
		return
	}

	conv := s.factory.conversion.ConvertToShefra(ctx, amount, currency, snapshot.Rates)
	items, err := s.factory.suggestions.Suggest(ctx, conv.Shefras)
	if err != nil {
		s.LogError(ctx, err, "Failed to rank suggestions", slog.Uint64("token", token))
		items = []domain.CatalogItem{}
	}

	s.deliverMu.Lock()
	defer s.deliverMu.Unlock()
	if !s.isCurrent(token) {
		s.discard(ctx, token)
		return
	}
	s.listener.OnRatesUpdated(snapshot)
	s.listener.OnShefraComputed(conv)
	s.listener.OnSuggestionsReady(items)
}

func (s *session) isCurrent(token uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return !s.closed && token == s.token
}

func (s *session) discard(ctx context.Context, token uint64) {
	s.Metrics.IncStaleDiscarded()
	s.LogDebug(ctx, "Discarding superseded session result", slog.Uint64("token", token))
}
