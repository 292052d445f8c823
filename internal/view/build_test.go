package view

import (
	"bytes"
	"testing"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/money"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/repository"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/state"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	reducer  *state.Reducer
	renderer *Renderer
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	catalog, err := repository.NewCatalog(repository.DefaultProducts())
	require.NoError(t, err)
	conv, err := money.NewConverter(decimal.NewFromInt(65000))
	require.NoError(t, err)
	return fixture{
		reducer:  state.NewReducer(catalog, conv, "2025"),
		renderer: NewRenderer(catalog, conv),
	}
}

func (f fixture) run(events ...state.Event) state.State {
	s := state.Initial(domain.LangEN)
	for _, ev := range events {
		s = f.reducer.Reduce(s, ev)
	}
	return s
}

func TestBuildHome(t *testing.T) {
	f := newFixture(t)
	page := f.renderer.Build(f.run(state.SelectCategory{Category: domain.CategoryShoes}))

	assert.Equal(t, "home", page.View)
	assert.Equal(t, "ltr", page.Dir)
	require.NotNil(t, page.Home)
	assert.Nil(t, page.Product)
	assert.Nil(t, page.Cart)

	require.Len(t, page.Home.Categories, 5)
	assert.True(t, page.Home.Categories[2].Selected)
	require.Len(t, page.Home.Products, 1)
	assert.Equal(t, "Nike Air Max 2025 Future", page.Home.Products[0].Name)
	assert.Equal(t, "13,650,000 IRT", page.Home.Products[0].Price)
	assert.Empty(t, page.Home.Products[0].OriginalPrice)
}

func TestBuildDiscountedCard(t *testing.T) {
	f := newFixture(t)
	page := f.renderer.Build(f.run(state.SelectCategory{Category: domain.CategoryJackets}))

	require.Len(t, page.Home.Products, 1)
	card := page.Home.Products[0]
	assert.Equal(t, 15, card.Discount)
	assert.Equal(t, "66,300,000 IRT", card.Price)
	assert.Equal(t, "78,000,000 IRT", card.OriginalPrice)
}

func TestBuildCartDrawer(t *testing.T) {
	f := newFixture(t)
	page := f.renderer.Build(f.run(
		state.AddToCart{ID: "2"},
		state.AddToCart{ID: "ghost"},
		state.AddToCart{ID: "2"},
	))

	require.NotNil(t, page.Cart)
	assert.False(t, page.Cart.Empty)
	require.Len(t, page.Cart.Items, 1)
	assert.Equal(t, 2, page.Cart.Items[0].Quantity)
	assert.Equal(t, "27,300,000 IRT", page.Cart.Total)
	assert.Equal(t, 2, page.CartCount)
}

func TestBuildEmptyCart(t *testing.T) {
	f := newFixture(t)
	page := f.renderer.Build(f.run(state.OpenCart{}))

	require.NotNil(t, page.Cart)
	assert.True(t, page.Cart.Empty)
	assert.Empty(t, page.Cart.Total)
}

func TestBuildProduct(t *testing.T) {
	f := newFixture(t)
	page := f.renderer.Build(f.run(state.SelectProduct{ID: "3"}))

	assert.Equal(t, "product", page.View)
	require.NotNil(t, page.Product)
	assert.Equal(t, []string{"One Size"}, page.Product.Sizes)
	assert.Equal(t, 20, page.Product.Stock)
	assert.Nil(t, page.Home)
}

func TestBuildAdminRequiresSession(t *testing.T) {
	f := newFixture(t)
	s := f.run()
	s.View = state.ViewAdmin

	page := f.renderer.Build(s)
	assert.Equal(t, "home", page.View)
	assert.Nil(t, page.Admin)
}

func TestBuildAdminOrders(t *testing.T) {
	f := newFixture(t)
	at := time.Date(2025, 2, 3, 4, 5, 0, 0, time.UTC)
	page := f.renderer.Build(f.run(
		state.AddToCart{ID: "2"},
		state.ConfirmOrder{OrderID: "OLD", At: at},
		state.AddToCart{ID: "4"},
		state.ConfirmOrder{OrderID: "NEW", At: at, Customer: domain.Customer{Name: "Mina"}},
		state.OpenAdmin{},
		state.SubmitPasscode{Passcode: "2025", Token: "tok"},
	))

	assert.Equal(t, "admin", page.View)
	require.NotNil(t, page.Admin)
	require.Len(t, page.Admin.Orders, 2)
	assert.Equal(t, "NEW", page.Admin.Orders[0].ID)
	assert.Equal(t, "Mina", page.Admin.Orders[0].Customer)
	assert.Equal(t, "2025-02-03 04:05", page.Admin.Orders[1].CreatedAt)
	assert.Equal(t, "13,650,000 IRT", page.Admin.Orders[1].Total)
	assert.Equal(t, "Pending", page.Admin.Orders[1].Status)
}

func TestBuildLoginAlert(t *testing.T) {
	f := newFixture(t)
	page := f.renderer.Build(f.run(state.OpenAdmin{}, state.SubmitPasscode{Passcode: "x", Token: "t"}))

	require.NotNil(t, page.AdminLogin)
	assert.Equal(t, "Incorrect passcode", page.AdminLogin.Alert)
}

func TestTemplatesRender(t *testing.T) {
	f := newFixture(t)
	tmpl, err := Templates()
	require.NoError(t, err)

	pages := map[string]state.State{
		"home":     f.run(),
		"product":  f.run(state.SelectProduct{ID: "1"}, state.AddToCart{ID: "1"}),
		"checkout": f.run(state.AddToCart{ID: "1"}, state.ProceedToCheckout{}),
		"success":  f.run(state.AddToCart{ID: "1"}, state.ConfirmOrder{OrderID: "ZZ9"}),
		"admin":    f.run(state.OpenAdmin{}, state.SubmitPasscode{Passcode: "2025", Token: "t"}),
		"login":    f.run(state.OpenAdmin{}),
	}
	for name, s := range pages {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, tmpl.ExecuteTemplate(&buf, "base", f.renderer.Build(s)))
			assert.Contains(t, buf.String(), `dir="ltr"`)
		})
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "base", f.renderer.Build(pages["success"])))
	assert.Contains(t, buf.String(), "Order placed successfully!")
	assert.Contains(t, buf.String(), "#ZZ9")
}

func TestTemplatesPersian(t *testing.T) {
	f := newFixture(t)
	tmpl, err := Templates()
	require.NoError(t, err)

	var buf bytes.Buffer
	s := f.reducer.Reduce(state.Initial(domain.LangFA), state.OpenCart{})
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "base", f.renderer.Build(s)))
	assert.Contains(t, buf.String(), `dir="rtl"`)
	assert.Contains(t, buf.String(), "سبد خرید شما خالی است")
}

func TestAssets(t *testing.T) {
	_, err := Assets().Open("storefront.css")
	assert.NoError(t, err)
}
