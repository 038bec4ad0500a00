// Package i18n resolves the user's locale and renders the planner's
// user-facing strings through a golang.org/x/text message catalog.
package i18n

import (
	"strings"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultTag is used when the requested locale is empty or unsupported.
var DefaultTag = language.BrazilianPortuguese

var supported = []language.Tag{
	language.BrazilianPortuguese,
	language.English,
}

var matcher = language.NewMatcher(supported)

// Match returns the supported tag closest to locale (e.g. "pt", "en-GB").
func Match(locale string) language.Tag {
	locale = strings.TrimSpace(locale)
	if locale == "" {
		return DefaultTag
	}
	tag, err := language.Parse(locale)
	if err != nil {
		return DefaultTag
	}
	_, index, confidence := matcher.Match(tag)
	if confidence == language.No {
		return DefaultTag
	}
	return supported[index]
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Sprintf renders catalog key in tag.
func Sprintf(tag language.Tag, key string, args ...any) string {
	return Printer(tag).Sprintf(key, args...)
}

var monthsShort = map[language.Base][12]string{
	base(language.English): {
		"Jan", "Feb", "Mar", "Apr", "May", "Jun",
		"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
	},
	base(language.Portuguese): {
		"jan", "fev", "mar", "abr", "mai", "jun",
		"jul", "ago", "set", "out", "nov", "dez",
	},
}

// MonthShort returns the abbreviated month name for tag, falling back to
// English for languages without a table.
func MonthShort(tag language.Tag, m time.Month) string {
	names, ok := monthsShort[base(tag)]
	if !ok {
		names = monthsShort[base(language.English)]
	}
	return names[m-1]
}

func base(tag language.Tag) language.Base {
	b, _ := tag.Base()
	return b
}
