// Package view derives the rendered screen from the application state.
// Build is pure: the same state always yields the same Page.
package view

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/i18n"
)

type Page struct {
	Lang      domain.Language `json:"lang"`
	Dir       string          `json:"dir"`
	View      string          `json:"view"`
	CartCount int             `json:"cart_count"`
	LoggedIn  bool            `json:"logged_in"`

	// Exactly one screen is non-nil.
	Home     *HomeScreen     `json:"home,omitempty"`
	Product  *ProductScreen  `json:"product,omitempty"`
	Checkout *CheckoutScreen `json:"checkout,omitempty"`
	Success  *SuccessScreen  `json:"success,omitempty"`
	Admin    *AdminScreen    `json:"admin,omitempty"`

	// Overlays.
	Cart       *CartDrawer `json:"cart,omitempty"`
	AdminLogin *LoginModal `json:"admin_login,omitempty"`
}

// T is callable from templates as {{.T "key"}}.
func (p Page) T(key string) string {
	return i18n.T(p.Lang, key)
}

type CategoryOption struct {
	Value    domain.Category `json:"value"`
	Label    string          `json:"label"`
	Selected bool            `json:"selected"`
}

type ProductCard struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	Price         string `json:"price"`
	OriginalPrice string `json:"original_price,omitempty"`
	Discount      int    `json:"discount"`
	Image         string `json:"image"`
}

type HomeScreen struct {
	Categories []CategoryOption `json:"categories"`
	Products   []ProductCard    `json:"products"`
}

type ProductScreen struct {
	ProductCard
	Sizes  []string `json:"sizes"`
	Colors []string `json:"colors"`
	Stock  int      `json:"stock"`
}

type CartRow struct {
	ProductID string `json:"product_id"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
	Image     string `json:"image"`
}

type CartDrawer struct {
	Items []CartRow `json:"items"`
	Empty bool      `json:"empty"`
	Total string    `json:"total"`
}

type CheckoutScreen struct {
	Total    string `json:"total"`
	TotalUSD string `json:"total_usd"`
}

type SuccessScreen struct {
	OrderID string `json:"order_id"`
}

type OrderRow struct {
	ID        string `json:"id"`
	CreatedAt string `json:"created_at"`
	Customer  string `json:"customer"`
	Items     int    `json:"items"`
	Total     string `json:"total"`
	Status    string `json:"status"`
}

type AdminScreen struct {
	Orders []OrderRow `json:"orders"`
}

type LoginModal struct {
	Alert string `json:"alert,omitempty"`
}
