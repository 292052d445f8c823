package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type OrderStatus string

const (
	OrderPending   OrderStatus = "Pending"
	OrderApproved  OrderStatus = "Approved"
	OrderShipped   OrderStatus = "Shipped"
	OrderCompleted OrderStatus = "Completed"
)

type CartLine struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Customer holds the checkout form fields. Neither is validated.
type Customer struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type OrderLine struct {
	ProductID    string          `json:"product_id"`
	NameFA       string          `json:"name_fa"`
	NameEN       string          `json:"name_en"`
	UnitPriceUSD decimal.Decimal `json:"unit_price_usd"`
	Quantity     int             `json:"quantity"`
	LineTotalUSD decimal.Decimal `json:"line_total_usd"`
}

type Order struct {
	ID           string          `json:"id"`
	Customer     Customer        `json:"customer"`
	Lines        []OrderLine     `json:"lines"`
	TotalUSD     decimal.Decimal `json:"total_usd"`
	TotalDisplay decimal.Decimal `json:"total_irt"`
	Status       OrderStatus     `json:"status"`
	CreatedAt    time.Time       `json:"created_at"`
}

type AdminSession struct {
	Token    string    `json:"token"`
	IssuedAt time.Time `json:"issued_at"`
}

type AddCartItemRequest struct {
	ProductID string `json:"product_id" binding:"required"`
}

type CheckoutRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

type AdminLoginRequest struct {
	Passcode string `json:"passcode" binding:"required"`
}

type CartItemResponse struct {
	ProductID    string `json:"product_id"`
	Name         string `json:"name"`
	Quantity     int    `json:"quantity"`
	UnitPriceUSD string `json:"unit_price_usd"`
	DisplayPrice string `json:"display_price"`
}

type CartResponse struct {
	Items        []CartItemResponse `json:"items"`
	Count        int                `json:"count"`
	TotalUSD     string             `json:"total_usd"`
	TotalDisplay string             `json:"total_display"`
}
