package i18n

import (
	"testing"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		locale   string
		expected string
	}{
		{locale: "fr", expected: "fr"},
		{locale: "fr-FR", expected: "fr"},
		{locale: "fr-CA", expected: "fr"},
		{locale: "en", expected: "en"},
		{locale: "en-US", expected: "en"},
		{locale: "en-US,en;q=0.9,fr;q=0.8", expected: "en"},
		{locale: "de", expected: DefaultLocale},
		{locale: "", expected: DefaultLocale},
		{locale: "not a locale", expected: DefaultLocale},
	}

	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			if got := Resolve(tt.locale); got != tt.expected {
				t.Errorf("Resolve(%q) = %q, want %q", tt.locale, got, tt.expected)
			}
		})
	}
}

func TestTranslator_Interpolation(t *testing.T) {
	translate := Translator("en")

	got := translate(openinghours.KeyClosedOpenToday, map[string]string{"time": "18:00"})
	if got != "Closed — opens today at 18:00" {
		t.Errorf("translate = %q", got)
	}

	got = translate(openinghours.KeyOpensSoon, map[string]string{"minutes": "25"})
	if got != "Opens in 25 min" {
		t.Errorf("translate = %q", got)
	}
}

func TestTranslator_FrenchDefault(t *testing.T) {
	translate := Translator("pt-BR")
	if got := translate(openinghours.KeyOpen, nil); got != "Ouvert actuellement" {
		t.Errorf("translate = %q, want French fallback", got)
	}
}

func TestTranslator_UnknownKeyReturnsKey(t *testing.T) {
	translate := Translator("en")
	if got := translate("badge.unheardOf", nil); got != "badge.unheardOf" {
		t.Errorf("translate = %q, want key echoed back", got)
	}
}
