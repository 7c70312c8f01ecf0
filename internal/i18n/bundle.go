// Package i18n provides the message catalogs behind the opening-hours
// status strings. The core library only sees an opaque TranslateFunc; locale
// negotiation and parameter interpolation live here.
package i18n

import (
	"strings"

	"golang.org/x/text/language"

	"github.com/oliveraie/oliveraie/pkg/openinghours"
)

// DefaultLocale is used when a requested locale matches no catalog.
const DefaultLocale = "fr"

// supported lists the catalog languages in matcher preference order; the
// first entry is the fallback.
var supported = []language.Tag{
	language.French,
	language.English,
}

var matcher = language.NewMatcher(supported)

// catalogs hold the per-language message tables. Parameters appear as
// {name} placeholders.
var catalogs = map[string]map[string]string{
	"fr": {
		openinghours.KeyOpen:             "Ouvert actuellement",
		openinghours.KeyOpensSoon:        "Ouvre dans {minutes} min",
		openinghours.KeyClosed:           "Fermé actuellement",
		openinghours.KeyClosedOpenToday:  "Fermé — ouvre aujourd'hui à {time}",
		openinghours.KeyClosedOpenFuture: "Fermé — ouvre demain à {time}",
	},
	"en": {
		openinghours.KeyOpen:             "Open now",
		openinghours.KeyOpensSoon:        "Opens in {minutes} min",
		openinghours.KeyClosed:           "Currently closed",
		openinghours.KeyClosedOpenToday:  "Closed — opens today at {time}",
		openinghours.KeyClosedOpenFuture: "Closed — opens tomorrow at {time}",
	},
}

// Resolve maps an arbitrary locale value to a supported catalog language.
// It accepts a single tag ("en-US", "fr-CA"), a full Accept-Language header
// ("en-US,en;q=0.9"), or garbage, which falls back to the default.
func Resolve(locale string) string {
	if locale == "" {
		return DefaultLocale
	}
	tag, _ := language.MatchStrings(matcher, locale)
	base, _ := tag.Base()
	if _, ok := catalogs[base.String()]; !ok {
		return DefaultLocale
	}
	return base.String()
}

// Translator returns a TranslateFunc bound to the catalog for the given
// locale. Unknown keys come back verbatim so a missing translation is
// visible rather than silent.
func Translator(locale string) openinghours.TranslateFunc {
	catalog := catalogs[Resolve(locale)]
	return func(key string, params map[string]string) string {
		message, ok := catalog[key]
		if !ok {
			return key
		}
		return interpolate(message, params)
	}
}

func interpolate(message string, params map[string]string) string {
	for name, value := range params {
		message = strings.ReplaceAll(message, "{"+name+"}", value)
	}
	return message
}
