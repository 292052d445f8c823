// Package money converts reference-currency (USD) amounts into the display
// currency (toman) and formats both for a UI language.
package money

import (
	"errors"
	"strings"

	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"github.com/cloud-wave-best-zizon/storefront-service/internal/i18n"
	"github.com/shopspring/decimal"
	"golang.org/x/text/message"
)

var ErrInvalidRate = errors.New("exchange rate must be positive")

// Converter applies a fixed rate chosen at startup.
type Converter struct {
	rate decimal.Decimal
}

func NewConverter(rate decimal.Decimal) (Converter, error) {
	if !rate.IsPositive() {
		return Converter{}, ErrInvalidRate
	}
	return Converter{rate: rate}, nil
}

// ParseRate accepts the EXCHANGE_RATE config value.
func ParseRate(s string) (Converter, error) {
	rate, err := decimal.NewFromString(s)
	if err != nil {
		return Converter{}, err
	}
	return NewConverter(rate)
}

func (c Converter) Rate() decimal.Decimal {
	return c.rate
}

func (c Converter) ToDisplay(usd decimal.Decimal) decimal.Decimal {
	return usd.Mul(c.rate)
}

// Format renders usd in the display currency, rounded to whole toman.
func (c Converter) Format(usd decimal.Decimal, lang domain.Language) string {
	p := message.NewPrinter(i18n.Locale(lang))
	return p.Sprintf("%d", c.ToDisplay(usd).Round(0).IntPart()) + " " + i18n.T(lang, "currency")
}

// FormatUSD groups the whole dollars by locale and keeps two cents digits.
func (c Converter) FormatUSD(usd decimal.Decimal, lang domain.Language) string {
	p := message.NewPrinter(i18n.Locale(lang))
	r := usd.Round(2)
	sign := ""
	if r.IsNegative() {
		sign = "-"
	}
	fixed := r.Abs().StringFixed(2)
	cents := fixed[strings.IndexByte(fixed, '.')+1:]
	return sign + p.Sprintf("%d", r.Abs().IntPart()) + "." + cents + " " + i18n.T(lang, "usd")
}
