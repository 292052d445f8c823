package service

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/events"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/money"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/state"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrEmptyCart       = errors.New("cart is empty")
	ErrWrongPasscode   = errors.New("incorrect passcode")
	ErrUnauthorized    = errors.New("admin session required")
)

// StorefrontService owns the one application state. The mutex is the event
// queue: every Dispatch runs to completion before the next starts.
type StorefrontService struct {
	mu        sync.Mutex
	state     state.State
	reducer   *state.Reducer
	catalog   *repository.Catalog
	converter money.Converter
	publisher events.Publisher
	logger    *zap.Logger

	now      func() time.Time
	newID    func() string
	newToken func() string
}

type Option func(*StorefrontService)

func WithClock(now func() time.Time) Option {
	return func(s *StorefrontService) { s.now = now }
}

// WithIDGenerator replaces both the order id and the admin token source.
func WithIDGenerator(gen func() string) Option {
	return func(s *StorefrontService) {
		s.newID = gen
		s.newToken = gen
	}
}

func WithPublisher(p events.Publisher) Option {
	return func(s *StorefrontService) { s.publisher = p }
}

func NewStorefrontService(
	catalog *repository.Catalog,
	converter money.Converter,
	passcode string,
	lang domain.Language,
	logger *zap.Logger,
	opts ...Option,
) *StorefrontService {
	s := &StorefrontService{
		state:     state.Initial(lang),
		reducer:   state.NewReducer(catalog, converter, passcode),
		catalog:   catalog,
		converter: converter,
		publisher: events.NopPublisher{},
		logger:    logger,
		now:       time.Now,
		newID:     shortID,
		newToken:  uuid.NewString,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// shortID mimics the eight character upper-case tokens shown to customers.
func shortID() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:8])
}

func (s *StorefrontService) Catalog() *repository.Catalog {
	return s.catalog
}

func (s *StorefrontService) Converter() money.Converter {
	return s.converter
}

// State returns a snapshot. Cart and order slices are never mutated in place,
// so the snapshot stays valid after later events.
func (s *StorefrontService) State() state.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Dispatch applies ev and returns the new state. ConfirmOrder and
// SubmitPasscode get their id, token and clock reading filled in here.
func (s *StorefrontService) Dispatch(ctx context.Context, ev state.Event) state.State {
	_, next := s.apply(ctx, ev)
	return next
}

func (s *StorefrontService) apply(ctx context.Context, ev state.Event) (state.State, state.State) {
	s.mu.Lock()
	switch e := ev.(type) {
	case state.ConfirmOrder:
		e.OrderID = s.newID()
		e.At = s.now()
		ev = e
	case state.SubmitPasscode:
		e.Token = s.newToken()
		e.At = s.now()
		ev = e
	}

	prev := s.state
	next := s.reducer.Reduce(prev, ev)
	s.state = next
	s.mu.Unlock()

	s.logger.Debug("Event applied",
		zap.String("event", ev.Name()),
		zap.String("from_view", string(prev.View)),
		zap.String("to_view", string(next.View)),
		zap.Int("cart_lines", next.Cart.Len()))

	if next.Alert == state.AlertWrongPasscode {
		s.logger.Warn("Admin login rejected")
	}
	if !prev.LoggedIn() && next.LoggedIn() {
		s.logger.Info("Admin session started")
	}

	if _, ok := ev.(state.ConfirmOrder); ok && len(next.Orders) > len(prev.Orders) {
		s.orderPlaced(ctx, next.Orders[0])
	}
	return prev, next
}

func (s *StorefrontService) orderPlaced(ctx context.Context, order domain.Order) {
	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int("lines", len(order.Lines)),
		zap.String("total_usd", order.TotalUSD.StringFixed(2)),
		zap.String("total_irt", order.TotalDisplay.Round(0).String()))

	event := events.NewOrderPlacedEvent(uuid.NewString(), order)
	if rid, ok := ctx.Value(RequestIDKey{}).(string); ok {
		event.RequestID = rid
	}
	// 발행 실패는 로컬 상태에 영향을 주지 않음
	if err := s.publisher.PublishOrderPlaced(ctx, event); err != nil {
		s.logger.Error("Failed to publish order event",
			zap.String("order_id", order.ID),
			zap.Error(err))
	}
}

// RequestIDKey carries the request id from the HTTP layer into events.
type RequestIDKey struct{}

// The methods below back the JSON API and report outcomes as errors.

func (s *StorefrontService) Product(id string) (domain.Product, error) {
	p, ok := s.catalog.Find(id)
	if !ok {
		return domain.Product{}, ErrProductNotFound
	}
	return p, nil
}

func (s *StorefrontService) AddToCart(ctx context.Context, productID string) state.State {
	return s.Dispatch(ctx, state.AddToCart{ID: productID})
}

func (s *StorefrontService) RemoveFromCart(ctx context.Context, productID string) state.State {
	return s.Dispatch(ctx, state.RemoveFromCart{ID: productID})
}

func (s *StorefrontService) Checkout(ctx context.Context, customer domain.Customer) (domain.Order, error) {
	prev, next := s.apply(ctx, state.ConfirmOrder{Customer: customer})
	if len(next.Orders) == len(prev.Orders) {
		return domain.Order{}, ErrEmptyCart
	}
	return next.Orders[0], nil
}

func (s *StorefrontService) AdminLogin(ctx context.Context, passcode string) (domain.AdminSession, error) {
	next := s.Dispatch(ctx, state.SubmitPasscode{Passcode: passcode})
	if next.Alert == state.AlertWrongPasscode || next.Admin == nil {
		return domain.AdminSession{}, ErrWrongPasscode
	}
	return *next.Admin, nil
}

func (s *StorefrontService) AdminLogout(ctx context.Context, token string) error {
	if err := s.Authorize(token); err != nil {
		return err
	}
	s.Dispatch(ctx, state.Logout{})
	return nil
}

// Authorize checks token against the active admin session.
func (s *StorefrontService) Authorize(token string) error {
	st := s.State()
	if token == "" || !st.LoggedIn() || st.Admin.Token != token {
		return ErrUnauthorized
	}
	return nil
}

func (s *StorefrontService) Orders(token string) ([]domain.Order, error) {
	if err := s.Authorize(token); err != nil {
		return nil, err
	}
	orders := s.State().Orders
	if orders == nil {
		orders = []domain.Order{}
	}
	return orders, nil
}
