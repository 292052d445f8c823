package state

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/cart"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/money"
)

const AlertWrongPasscode = "wrongPasscode"

// Reducer applies events. It holds only immutable collaborators.
type Reducer struct {
	catalog   cart.Resolver
	converter money.Converter
	// passcode is a demo UI gate shown to every visitor, not a credential.
	passcode string
}

func NewReducer(catalog cart.Resolver, converter money.Converter, passcode string) *Reducer {
	return &Reducer{
		catalog:   catalog,
		converter: converter,
		passcode:  passcode,
	}
}

// Reduce returns the state after ev. s itself is left untouched.
func (r *Reducer) Reduce(s State, ev Event) State {
	s.Alert = ""

	switch e := ev.(type) {
	case ToggleLanguage:
		s.Lang = s.Lang.Toggle()
	case SetLanguage:
		s.Lang = e.Lang
	case SelectCategory:
		s.Category = e.Category
		s.View = ViewHome
	case SelectProduct:
		if _, ok := r.catalog.Find(e.ID); ok {
			s.SelectedProductID = e.ID
			s.View = ViewProduct
		}
	case GoHome:
		s.View = ViewHome
	case AddToCart:
		s.Cart = s.Cart.Add(e.ID)
		s.CartOpen = true
	case RemoveFromCart:
		s.Cart = s.Cart.Remove(e.ID)
	case OpenCart:
		s.CartOpen = true
	case CloseCart:
		s.CartOpen = false
	case ProceedToCheckout:
		if len(s.Cart.Items(r.catalog)) == 0 {
			break
		}
		s.CartOpen = false
		s.View = ViewCheckout
	case ConfirmOrder:
		order, ok := r.buildOrder(s, e)
		if !ok {
			break
		}
		orders := make([]domain.Order, 0, len(s.Orders)+1)
		s.Orders = append(append(orders, order), s.Orders...)
		s.Cart = s.Cart.Clear()
		s.LastOrderID = order.ID
		s.View = ViewSuccess
	case OpenAdmin:
		if s.LoggedIn() {
			s.View = ViewAdmin
		} else {
			s.AdminLoginOpen = true
		}
	case CloseAdminLogin:
		s.AdminLoginOpen = false
	case SubmitPasscode:
		if e.Passcode != r.passcode || e.Token == "" {
			s.Alert = AlertWrongPasscode
			break
		}
		s.Admin = &domain.AdminSession{Token: e.Token, IssuedAt: e.At}
		s.AdminLoginOpen = false
		s.View = ViewAdmin
	case Logout:
		s.Admin = nil
		if s.View == ViewAdmin {
			s.View = ViewHome
		}
	}
	return s
}

func (r *Reducer) buildOrder(s State, e ConfirmOrder) (domain.Order, bool) {
	items := s.Cart.Items(r.catalog)
	if len(items) == 0 {
		return domain.Order{}, false
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.OrderLine{
			ProductID:    it.Product.ID,
			NameFA:       it.Product.NameFA,
			NameEN:       it.Product.NameEN,
			UnitPriceUSD: it.Product.DiscountedPriceUSD(),
			Quantity:     it.Quantity,
			LineTotalUSD: it.LineTotalUSD(),
		})
	}

	total := s.Cart.Total(r.catalog)
	return domain.Order{
		ID:           e.OrderID,
		Customer:     e.Customer,
		Lines:        lines,
		TotalUSD:     total,
		TotalDisplay: r.converter.ToDisplay(total),
		Status:       domain.OrderPending,
		CreatedAt:    e.At,
	}, true
}
