package repository

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

// DefaultProducts is the built-in collection.
func DefaultProducts() []domain.Product {
	return []domain.Product{
		{
			ID:       "1",
			NameFA:   "کت چرمی بالنسیاگا نئو",
			NameEN:   "Balenciaga Neo Leather Jacket",
			PriceUSD: decimal.NewFromInt(1200),
			Discount: 15,
			Category: domain.CategoryJackets,
			Stock:    5,
			Sizes:    []string{"M", "L", "XL"},
			Colors:   []string{"Black"},
			Images:   []string{"https://images.unsplash.com/photo-1551028719-00167b16eac5?auto=format&fit=crop&q=80&w=800"},
			Active:   true,
		},
		{
			ID:       "2",
			NameFA:   "کتانی نایک ایر مکس ۲۰۲۵",
			NameEN:   "Nike Air Max 2025 Future",
			PriceUSD: decimal.NewFromInt(210),
			Discount: 0,
			Category: domain.CategoryShoes,
			Stock:    12,
			Sizes:    []string{"40", "41", "42", "43"},
			Colors:   []string{"Volt Glow", "Obsidian"},
			Images:   []string{"https://images.unsplash.com/photo-1542291026-7eec264c27ff?auto=format&fit=crop&q=80&w=800"},
			Active:   true,
		},
		{
			ID:       "3",
			NameFA:   "عینک آفتابی سایبرپانک",
			NameEN:   "Cyberpunk Shield Shades",
			PriceUSD: decimal.NewFromInt(350),
			Discount: 10,
			Category: domain.CategoryAccessories,
			Stock:    20,
			Sizes:    []string{"One Size"},
			Colors:   []string{"Chrome", "Neon"},
			Images:   []string{"https://images.unsplash.com/photo-1511499767390-90342f16b147?auto=format&fit=crop&q=80&w=800"},
			Active:   true,
		},
		{
			ID:       "4",
			NameFA:   "هودی اورسایز مینیمال",
			NameEN:   "Minimalist Oversized Hoodie",
			PriceUSD: decimal.NewFromInt(85),
			Discount: 5,
			Category: domain.CategoryClothing,
			Stock:    30,
			Sizes:    []string{"S", "M", "L", "XL"},
			Colors:   []string{"Off-White", "Slate"},
			Images:   []string{"https://images.unsplash.com/photo-1556821840-3a63f95609a7?auto=format&fit=crop&q=80&w=800"},
			Active:   true,
		},
	}
}
