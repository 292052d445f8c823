package state

import (
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

// Event is one discrete user interaction.
type Event interface {
	Name() string
}

type (
	ToggleLanguage struct{}
	SetLanguage    struct{ Lang domain.Language }
	SelectCategory struct{ Category domain.Category }
	SelectProduct  struct{ ID string }
	GoHome         struct{}
	AddToCart      struct{ ID string }
	RemoveFromCart struct{ ID string }
	OpenCart       struct{}
	CloseCart      struct{}

	ProceedToCheckout struct{}

	// ConfirmOrder carries the generated id and clock reading so the reducer stays pure.
	ConfirmOrder struct {
		OrderID  string
		At       time.Time
		Customer domain.Customer
	}

	OpenAdmin       struct{}
	CloseAdminLogin struct{}

	SubmitPasscode struct {
		Passcode string
		Token    string
		At       time.Time
	}

	Logout struct{}
)

func (ToggleLanguage) Name() string { return "toggle_language" }
func (SetLanguage) Name() string { return "set_language" }
func (SelectCategory) Name() string { return "select_category" }
func (SelectProduct) Name() string { return "select_product" }
func (GoHome) Name() string { return "go_home" }
func (AddToCart) Name() string { return "add_to_cart" }
func (RemoveFromCart) Name() string { return "remove_from_cart" }
func (OpenCart) Name() string { return "open_cart" }
func (CloseCart) Name() string { return "close_cart" }
func (ProceedToCheckout) Name() string { return "proceed_to_checkout" }
func (ConfirmOrder) Name() string { return "confirm_order" }
func (OpenAdmin) Name() string { return "open_admin" }
func (CloseAdminLogin) Name() string { return "close_admin_login" }
func (SubmitPasscode) Name() string { return "submit_passcode" }
func (Logout) Name() string { return "logout" }
