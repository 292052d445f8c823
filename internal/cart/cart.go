// Package cart implements the shopping cart as an immutable value.
package cart

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/shopspring/decimal"
)

// Resolver looks products up by id.
type Resolver interface {
	Find(id string) (domain.Product, bool)
}

type Cart struct {
	lines []domain.CartLine
}

type Item struct {
	Product  domain.Product
	Quantity int
}

func (i Item) LineTotalUSD() decimal.Decimal {
	return i.Product.DiscountedPriceUSD().Mul(decimal.NewFromInt(int64(i.Quantity)))
}

func New(lines ...domain.CartLine) Cart {
	c := Cart{}
	for _, l := range lines {
		for n := 0; n < l.Quantity; n++ {
			c = c.Add(l.ProductID)
		}
	}
	return c
}

// Lines returns a copy of the raw lines, dangling ids included.
func (c Cart) Lines() []domain.CartLine {
	out := make([]domain.CartLine, len(c.lines))
	copy(out, c.lines)
	return out
}

func (c Cart) Len() int {
	return len(c.lines)
}

// Add bumps the line for id or appends a new one with quantity 1.
// The id is not checked against the catalog.
func (c Cart) Add(id string) Cart {
	lines := c.Lines()
	for i := range lines {
		if lines[i].ProductID == id {
			lines[i].Quantity++
			return Cart{lines: lines}
		}
	}
	return Cart{lines: append(lines, domain.CartLine{ProductID: id, Quantity: 1})}
}

func (c Cart) Remove(id string) Cart {
	lines := make([]domain.CartLine, 0, len(c.lines))
	for _, l := range c.lines {
		if l.ProductID != id {
			lines = append(lines, l)
		}
	}
	return Cart{lines: lines}
}

func (c Cart) Clear() Cart {
	return Cart{}
}

// Items drops lines whose product id does not resolve.
func (c Cart) Items(r Resolver) []Item {
	items := make([]Item, 0, len(c.lines))
	for _, l := range c.lines {
		p, ok := r.Find(l.ProductID)
		if !ok {
			continue
		}
		items = append(items, Item{Product: p, Quantity: l.Quantity})
	}
	return items
}

// Total is in the reference currency.
func (c Cart) Total(r Resolver) decimal.Decimal {
	total := decimal.Zero
	for _, it := range c.Items(r) {
		total = total.Add(it.LineTotalUSD())
	}
	return total
}

func (c Cart) Count(r Resolver) int {
	n := 0
	for _, it := range c.Items(r) {
		n += it.Quantity
	}
	return n
}
