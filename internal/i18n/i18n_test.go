package i18n_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"

	"github.com/pkordes/tripplanner/internal/i18n"
)

func TestMatch(t *testing.T) {
	tests := []struct {
		locale string
		want   language.Tag
	}{
		{"", language.BrazilianPortuguese},
		{"pt-BR", language.BrazilianPortuguese},
		{"pt", language.BrazilianPortuguese},
		{"en", language.English},
		{"en-GB", language.English},
		{"not a locale!", language.BrazilianPortuguese},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			assert.Equal(t, tt.want, i18n.Match(tt.locale))
		})
	}
}

func TestMonthShort(t *testing.T) {
	assert.Equal(t, "fev", i18n.MonthShort(language.BrazilianPortuguese, time.February))
	assert.Equal(t, "Feb", i18n.MonthShort(language.English, time.February))
	assert.Equal(t, "Dec", i18n.MonthShort(language.Japanese, time.December), "falls back to English")
}

func TestSprintf_Catalog(t *testing.T) {
	assert.Equal(t, "Viagem criada com sucesso!", i18n.Sprintf(language.BrazilianPortuguese, i18n.KeyTripCreated))
	assert.Equal(t, "Trip created successfully!", i18n.Sprintf(language.English, i18n.KeyTripCreated))
	assert.Equal(t, "2 pessoa(s) convidada(s)", i18n.Sprintf(language.BrazilianPortuguese, i18n.KeyGuestCount, 2))
	assert.Equal(t, "O destino da viagem deve ter no mínimo 4 caracteres.",
		i18n.Sprintf(language.BrazilianPortuguese, i18n.KeyDestTooShort, 4))
}

func TestSprintf_ValidationKeysFollowFieldReason(t *testing.T) {
	assert.Equal(t, "validation.destination.too_short", i18n.KeyDestTooShort)
	assert.Equal(t, "validation.email.invalid_format", i18n.KeyInvalidEmail)
	assert.Equal(t, "validation.dates.before_min", i18n.KeyDatesBeforeMin)
}
