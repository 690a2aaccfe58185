// Package translate formats user-facing strings for the user's locale.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLocale is used when the host reports no usable locale.
const DefaultLocale = "en-US"

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("pfpu: locale: %v", err)
	}

	printer = newPrinter(locales...)
}

// newPrinter picks the best match among locales, falling back to DefaultLocale.
func newPrinter(locales ...string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{DefaultLocale}
	}

	tag := message.MatchLanguage(locales...)
	if tag == language.Und {
		tag = language.MustParse(DefaultLocale)
	}

	return message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
