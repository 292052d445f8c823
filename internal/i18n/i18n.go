// Package i18n holds the static Persian and English UI string tables.
package i18n

import (
	"github.com/cloud-wave-best-zizon/storefront-service/internal/domain"
	"golang.org/x/text/language"
)

type Table map[string]string

var tables = map[domain.Language]Table{
	domain.LangFA: fa,
	domain.LangEN: en,
}

// T looks key up in lang, then in English, then gives the key back.
func T(lang domain.Language, key string) string {
	if v, ok := tables[lang][key]; ok {
		return v
	}
	if v, ok := en[key]; ok {
		return v
	}
	return key
}

func Dir(lang domain.Language) string {
	if lang.RTL() {
		return "rtl"
	}
	return "ltr"
}

func Locale(lang domain.Language) language.Tag {
	if lang == domain.LangEN {
		return language.English
	}
	return language.Persian
}

// CategoryLabel maps a filter value onto its lower-cased table key.
func CategoryLabel(lang domain.Language, c domain.Category) string {
	return T(lang, categoryKeys[c])
}

func StatusLabel(lang domain.Language, s domain.OrderStatus) string {
	return T(lang, "status"+string(s))
}

var categoryKeys = map[domain.Category]string{
	domain.CategoryAll:         "all",
	domain.CategoryJackets:     "jackets",
	domain.CategoryShoes:       "shoes",
	domain.CategoryAccessories: "accessories",
	domain.CategoryClothing:    "clothing",
}
