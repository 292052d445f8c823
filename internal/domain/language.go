package domain

// Language는 UI 표시 언어
type Language string

const (
	LangFA Language = "fa"
	LangEN Language = "en"
)

// ParseLanguage returns LangFA for anything it does not recognise.
func ParseLanguage(s string) Language {
	if Language(s) == LangEN {
		return LangEN
	}
	return LangFA
}

func (l Language) Toggle() Language {
	if l == LangFA {
		return LangEN
	}
	return LangFA
}

func (l Language) RTL() bool {
	return l != LangEN
}
