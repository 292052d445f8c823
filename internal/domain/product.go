package domain

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

var (
	ErrInvalidPrice    = errors.New("price must be positive")
	ErrInvalidDiscount = errors.New("discount must be within [0,100]")
	ErrMissingSizes    = errors.New("product needs at least one size")
	ErrMissingID       = errors.New("product id is required")
)

type Category string

const (
	CategoryAll         Category = "All"
	CategoryJackets     Category = "Jackets"
	CategoryShoes       Category = "Shoes"
	CategoryAccessories Category = "Accessories"
	CategoryClothing    Category = "Clothing"
)

// Categories is the filter selector order.
var Categories = []Category{
	CategoryAll,
	CategoryJackets,
	CategoryShoes,
	CategoryAccessories,
	CategoryClothing,
}

var hundred = decimal.NewFromInt(100)

type Product struct {
	ID       string          `json:"id"`
	NameFA   string          `json:"name_fa"`
	NameEN   string          `json:"name_en"`
	PriceUSD decimal.Decimal `json:"price_usd"`
	Discount int             `json:"discount"`
	Category Category        `json:"category"`
	Stock    int             `json:"stock"`
	Sizes    []string        `json:"sizes"`
	Colors   []string        `json:"colors"`
	Images   []string        `json:"images"`
	Active   bool            `json:"active"`
}

func (p Product) Name(lang Language) string {
	if lang == LangEN {
		return p.NameEN
	}
	return p.NameFA
}

// DiscountedPriceUSD = price × (1 − discount/100)
func (p Product) DiscountedPriceUSD() decimal.Decimal {
	factor := decimal.NewFromInt(1).Sub(decimal.NewFromInt(int64(p.Discount)).Div(hundred))
	return p.PriceUSD.Mul(factor)
}

// Image returns the cover image or "" when the product has none.
func (p Product) Image() string {
	if len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

func (p Product) Validate() error {
	if p.ID == "" {
		return ErrMissingID
	}
	if !p.PriceUSD.IsPositive() {
		return fmt.Errorf("product %s: %w", p.ID, ErrInvalidPrice)
	}
	if p.Discount < 0 || p.Discount > 100 {
		return fmt.Errorf("product %s: %w", p.ID, ErrInvalidDiscount)
	}
	if len(p.Sizes) == 0 {
		return fmt.Errorf("product %s: %w", p.ID, ErrMissingSizes)
	}
	return nil
}

type ProductResponse struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Category      Category `json:"category"`
	PriceUSD      string   `json:"price_usd"`
	Discount      int      `json:"discount"`
	DiscountedUSD string   `json:"discounted_usd"`
	DisplayPrice  string   `json:"display_price"`
	Stock         int      `json:"stock"`
	Sizes         []string `json:"sizes"`
	Colors        []string `json:"colors"`
	Images        []string `json:"images"`
}
