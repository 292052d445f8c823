// Package state holds the storefront's single view-state and the pure
// reducer that applies user events to it.
package state

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/cart"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

type View string

const (
	ViewHome     View = "home"
	ViewProduct  View = "product"
	ViewCheckout View = "checkout"
	ViewSuccess  View = "success"
	ViewAdmin    View = "admin"
)

type State struct {
	Lang              domain.Language
	View              View
	Category          domain.Category
	SelectedProductID string
	Cart              cart.Cart
	CartOpen          bool
	AdminLoginOpen    bool
	// Admin is nil until the passcode check passes.
	Admin *domain.AdminSession
	// Orders is newest first.
	Orders []domain.Order
	// Alert is an i18n key shown once. Every event clears it.
	Alert       string
	LastOrderID string
}

func Initial(lang domain.Language) State {
	return State{
		Lang:     lang,
		View:     ViewHome,
		Category: domain.CategoryAll,
	}
}

func (s State) LoggedIn() bool {
	return s.Admin != nil
}
