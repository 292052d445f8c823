package i18n

import (
	"testing"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestTablesHaveSameKeys(t *testing.T) {
	for k := range fa {
		_, ok := en[k]
		assert.True(t, ok, "key %q missing from en", k)
	}
	for k := range en {
		_, ok := fa[k]
		assert.True(t, ok, "key %q missing from fa", k)
	}
}

func TestT(t *testing.T) {
	assert.Equal(t, "Shopping Cart", T(domain.LangEN, "cart"))
	assert.Equal(t, "سبد خرید", T(domain.LangFA, "cart"))
	assert.Equal(t, "no.such.key", T(domain.LangFA, "no.such.key"))
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "Shoes", CategoryLabel(domain.LangEN, domain.CategoryShoes))
	assert.Equal(t, "همه", CategoryLabel(domain.LangFA, domain.CategoryAll))
	assert.Equal(t, "Pending", StatusLabel(domain.LangEN, domain.OrderPending))
	assert.Equal(t, "rtl", Dir(domain.LangFA))
	assert.Equal(t, "ltr", Dir(domain.LangEN))
}
