package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/events"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/money"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type capturePublisher struct {
	mu     sync.Mutex
	events []events.OrderPlacedEvent
	err    error
}

func (p *capturePublisher) PublishOrderPlaced(_ context.Context, e events.OrderPlacedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, e)
	return p.err
}

func (p *capturePublisher) Close() error { return nil }

func newService(t *testing.T, opts ...Option) *StorefrontService {
	t.Helper()
	catalog, err := repository.NewCatalog(repository.DefaultProducts())
	require.NoError(t, err)
	conv, err := money.NewConverter(decimal.NewFromInt(65000))
	require.NoError(t, err)

	n := 0
	base := []Option{
		WithClock(func() time.Time { return time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC) }),
		WithIDGenerator(func() string { n++; return fmt.Sprintf("ID%d", n) }),
	}
	return NewStorefrontService(catalog, conv, "2025", domain.LangEN, zap.NewNop(), append(base, opts...)...)
}

func TestEndToEndShoesCheckout(t *testing.T) {
	pub := &capturePublisher{}
	svc := newService(t, WithPublisher(pub))
	ctx := context.Background()

	s := svc.State()
	require.Zero(t, s.Cart.Len())
	require.Equal(t, domain.CategoryAll, s.Category)

	s = svc.Dispatch(ctx, state.SelectCategory{Category: domain.CategoryShoes})
	filtered := svc.Catalog().Filter(s.Category)
	require.Len(t, filtered, 1)
	assert.Equal(t, "2", filtered[0].ID)

	svc.Dispatch(ctx, state.AddToCart{ID: "2"})
	s = svc.Dispatch(ctx, state.OpenCart{})
	assert.True(t, s.CartOpen)
	assert.Equal(t, "13,650,000 IRT", svc.Converter().Format(s.Cart.Total(svc.Catalog()), domain.LangEN))

	s = svc.Dispatch(ctx, state.ProceedToCheckout{})
	assert.Equal(t, state.ViewCheckout, s.View)

	s = svc.Dispatch(ctx, state.ConfirmOrder{Customer: domain.Customer{Name: "Sara", Address: "Shiraz"}})
	assert.Len(t, s.Orders, 1)
	assert.Zero(t, s.Cart.Len())
	assert.Equal(t, state.ViewSuccess, s.View)
	assert.Equal(t, "ID1", s.Orders[0].ID)
	assert.Equal(t, time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC), s.Orders[0].CreatedAt)

	require.Len(t, pub.events, 1)
	assert.Equal(t, "ID1", pub.events[0].OrderID)
	assert.Equal(t, "210.00", pub.events[0].TotalUSD)
}

func TestCheckoutEmptyCart(t *testing.T) {
	pub := &capturePublisher{}
	svc := newService(t, WithPublisher(pub))

	_, err := svc.Checkout(context.Background(), domain.Customer{})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Empty(t, pub.events)
}

func TestCheckoutAfterSuccessWithEmptyCart(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	svc.AddToCart(ctx, "1")
	first, err := svc.Checkout(ctx, domain.Customer{Name: "A"})
	require.NoError(t, err)
	assert.Equal(t, "A", first.Customer.Name)

	_, err = svc.Checkout(ctx, domain.Customer{Name: "B"})
	assert.ErrorIs(t, err, ErrEmptyCart)
	assert.Len(t, svc.State().Orders, 1)
}

func TestRepeatedConfirmPublishesOnce(t *testing.T) {
	pub := &capturePublisher{}
	svc := newService(t, WithPublisher(pub), WithIDGenerator(func() string { return "SAME" }))
	ctx := context.Background()

	svc.AddToCart(ctx, "2")
	svc.Dispatch(ctx, state.ConfirmOrder{})
	s := svc.Dispatch(ctx, state.ConfirmOrder{})

	assert.Len(t, s.Orders, 1)
	assert.Len(t, pub.events, 1)
}

func TestOrdersEmptyBeforeCheckout(t *testing.T) {
	svc := newService(t)
	session, err := svc.AdminLogin(context.Background(), "2025")
	require.NoError(t, err)

	orders, err := svc.Orders(session.Token)
	require.NoError(t, err)
	assert.NotNil(t, orders)
	assert.Empty(t, orders)
}

func TestPublishFailureKeepsOrder(t *testing.T) {
	svc := newService(t, WithPublisher(&capturePublisher{err: errors.New("down")}))
	ctx := context.Background()

	svc.AddToCart(ctx, "4")
	order, err := svc.Checkout(ctx, domain.Customer{})
	require.NoError(t, err)
	assert.Equal(t, domain.OrderPending, order.Status)
	assert.Len(t, svc.State().Orders, 1)
}

func TestAdminLogin(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	_, err := svc.AdminLogin(ctx, "0000")
	assert.ErrorIs(t, err, ErrWrongPasscode)
	assert.Nil(t, svc.State().Admin)
	assert.Equal(t, state.ViewHome, svc.State().View)

	session, err := svc.AdminLogin(ctx, "2025")
	require.NoError(t, err)
	assert.NotEmpty(t, session.Token)
	assert.Equal(t, state.ViewAdmin, svc.State().View)

	_, err = svc.Orders("wrong")
	assert.ErrorIs(t, err, ErrUnauthorized)

	orders, err := svc.Orders(session.Token)
	require.NoError(t, err)
	assert.Empty(t, orders)

	require.NoError(t, svc.AdminLogout(ctx, session.Token))
	_, err = svc.Orders(session.Token)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestProduct(t *testing.T) {
	svc := newService(t)

	p, err := svc.Product("3")
	require.NoError(t, err)
	assert.Equal(t, "Cyberpunk Shield Shades", p.NameEN)

	_, err = svc.Product("nope")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestConcurrentAddsAreSerialized(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			svc.AddToCart(ctx, "1")
		}()
	}
	wg.Wait()

	assert.Equal(t, []domain.CartLine{{ProductID: "1", Quantity: 50}}, svc.State().Cart.Lines())
}
