package repository

import (
	"errors"
	"fmt"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
)

var ErrDuplicateProduct = errors.New("duplicate product id")

// Catalog is the read-only product table. It is never mutated after NewCatalog.
type Catalog struct {
	products []domain.Product
	byID     map[string]int
}

func NewCatalog(products []domain.Product) (*Catalog, error) {
	c := &Catalog{
		products: make([]domain.Product, 0, len(products)),
		byID:     make(map[string]int, len(products)),
	}
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return nil, err
		}
		if _, ok := c.byID[p.ID]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateProduct, p.ID)
		}
		c.byID[p.ID] = len(c.products)
		c.products = append(c.products, p)
	}
	return c, nil
}

// All returns a copy of the catalog in insertion order.
func (c *Catalog) All() []domain.Product {
	out := make([]domain.Product, len(c.products))
	copy(out, c.products)
	return out
}

func (c *Catalog) Find(id string) (domain.Product, bool) {
	i, ok := c.byID[id]
	if !ok {
		return domain.Product{}, false
	}
	return c.products[i], true
}

// Filter keeps active products of the given category, or every active product
// for CategoryAll. Order follows the catalog.
func (c *Catalog) Filter(category domain.Category) []domain.Product {
	out := []domain.Product{}
	for _, p := range c.products {
		if !p.Active {
			continue
		}
		if category == domain.CategoryAll || p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (c *Catalog) Len() int {
	return len(c.products)
}
