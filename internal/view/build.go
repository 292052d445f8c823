package view

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/i18n"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/money"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/state"
)

const timeLayout = "2006-01-02 15:04"

type Catalog interface {
	Find(id string) (domain.Product, bool)
	Filter(category domain.Category) []domain.Product
}

type Renderer struct {
	catalog   Catalog
	converter money.Converter
}

func NewRenderer(catalog Catalog, converter money.Converter) *Renderer {
	return &Renderer{catalog: catalog, converter: converter}
}

// Build recomputes every derived value from s.
func (r *Renderer) Build(s state.State) Page {
	lang := s.Lang
	page := Page{
		Lang:      lang,
		Dir:       i18n.Dir(lang),
		CartCount: s.Cart.Count(r.catalog),
		LoggedIn:  s.LoggedIn(),
	}

	switch {
	case s.View == state.ViewProduct && r.hasProduct(s.SelectedProductID):
		page.View = string(state.ViewProduct)
		page.Product = r.product(s)
	case s.View == state.ViewCheckout:
		page.View = string(state.ViewCheckout)
		total := s.Cart.Total(r.catalog)
		page.Checkout = &CheckoutScreen{
			Total:    r.converter.Format(total, lang),
			TotalUSD: r.converter.FormatUSD(total, lang),
		}
	case s.View == state.ViewSuccess:
		page.View = string(state.ViewSuccess)
		page.Success = &SuccessScreen{OrderID: s.LastOrderID}
	case s.View == state.ViewAdmin && s.LoggedIn():
		page.View = string(state.ViewAdmin)
		page.Admin = r.admin(s)
	default:
		page.View = string(state.ViewHome)
		page.Home = r.home(s)
	}

	if s.CartOpen {
		page.Cart = r.cart(s)
	}
	if s.AdminLoginOpen {
		page.AdminLogin = &LoginModal{}
		if s.Alert != "" {
			page.AdminLogin.Alert = i18n.T(lang, s.Alert)
		}
	}
	return page
}

func (r *Renderer) hasProduct(id string) bool {
	_, ok := r.catalog.Find(id)
	return ok
}

func (r *Renderer) card(p domain.Product, lang domain.Language) ProductCard {
	c := ProductCard{
		ID:       p.ID,
		Name:     p.Name(lang),
		Category: i18n.CategoryLabel(lang, p.Category),
		Price:    r.converter.Format(p.DiscountedPriceUSD(), lang),
		Discount: p.Discount,
		Image:    p.Image(),
	}
	if p.Discount > 0 {
		c.OriginalPrice = r.converter.Format(p.PriceUSD, lang)
	}
	return c
}

func (r *Renderer) home(s state.State) *HomeScreen {
	h := &HomeScreen{}
	for _, c := range domain.Categories {
		h.Categories = append(h.Categories, CategoryOption{
			Value:    c,
			Label:    i18n.CategoryLabel(s.Lang, c),
			Selected: c == s.Category,
		})
	}
	products := r.catalog.Filter(s.Category)
	h.Products = make([]ProductCard, 0, len(products))
	for _, p := range products {
		h.Products = append(h.Products, r.card(p, s.Lang))
	}
	return h
}

func (r *Renderer) product(s state.State) *ProductScreen {
	p, _ := r.catalog.Find(s.SelectedProductID)
	return &ProductScreen{
		ProductCard: r.card(p, s.Lang),
		Sizes:       p.Sizes,
		Colors:      p.Colors,
		Stock:       p.Stock,
	}
}

func (r *Renderer) cart(s state.State) *CartDrawer {
	items := s.Cart.Items(r.catalog)
	d := &CartDrawer{
		Items: make([]CartRow, 0, len(items)),
		Empty: len(items) == 0,
	}
	for _, it := range items {
		d.Items = append(d.Items, CartRow{
			ProductID: it.Product.ID,
			Name:      it.Product.Name(s.Lang),
			Quantity:  it.Quantity,
			LineTotal: r.converter.Format(it.LineTotalUSD(), s.Lang),
			Image:     it.Product.Image(),
		})
	}
	if !d.Empty {
		d.Total = r.converter.Format(s.Cart.Total(r.catalog), s.Lang)
	}
	return d
}

func (r *Renderer) admin(s state.State) *AdminScreen {
	a := &AdminScreen{Orders: make([]OrderRow, 0, len(s.Orders))}
	for _, o := range s.Orders {
		items := 0
		for _, l := range o.Lines {
			items += l.Quantity
		}
		a.Orders = append(a.Orders, OrderRow{
			ID:        o.ID,
			CreatedAt: o.CreatedAt.Format(timeLayout),
			Customer:  o.Customer.Name,
			Items:     items,
			Total:     r.converter.Format(o.TotalUSD, s.Lang),
			Status:    i18n.StatusLabel(s.Lang, o.Status),
		})
	}
	return a
}
