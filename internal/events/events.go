package events

import (
	"context"
	"time"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

// OrderPlacedEvent는 체크아웃 완료 시 발행되는 이벤트
type OrderPlacedEvent struct {
	EventID      string          `json:"event_id"`
	OrderID      string          `json:"order_id"`
	Customer     domain.Customer `json:"customer"`
	Items        []OrderItem     `json:"items"`
	TotalUSD     string          `json:"total_usd"`
	TotalDisplay string          `json:"total_irt"`
	Status       string          `json:"status"`
	Timestamp    time.Time       `json:"timestamp"`
	RequestID    string          `json:"request_id,omitempty"`
}

type OrderItem struct {
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
	Price       string `json:"price"`
}

func NewOrderPlacedEvent(eventID string, o domain.Order) OrderPlacedEvent {
	items := make([]OrderItem, 0, len(o.Lines))
	for _, l := range o.Lines {
		items = append(items, OrderItem{
			ProductID:   l.ProductID,
			ProductName: l.NameEN,
			Quantity:    l.Quantity,
			Price:       l.UnitPriceUSD.StringFixed(2),
		})
	}
	return OrderPlacedEvent{
		EventID:      eventID,
		OrderID:      o.ID,
		Customer:     o.Customer,
		Items:        items,
		TotalUSD:     o.TotalUSD.StringFixed(2),
		TotalDisplay: o.TotalDisplay.Round(0).String(),
		Status:       string(o.Status),
		Timestamp:    o.CreatedAt,
	}
}

// Publisher delivers order events somewhere outside the process.
type Publisher interface {
	PublishOrderPlaced(ctx context.Context, event OrderPlacedEvent) error
	Close() error
}

// NopPublisher is used when no broker is configured.
type NopPublisher struct{}

func (NopPublisher) PublishOrderPlaced(context.Context, OrderPlacedEvent) error { return nil }
func (NopPublisher) Close() error { return nil }
