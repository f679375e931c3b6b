// Package translate formats user-visible messages for the process locale.
package translate

import (
	"log"
	"sync"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     atomic.Pointer[message.Printer]
	printerOnce sync.Once
)

// Printer returns the message printer for the process locale.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		locales, err := locale.GetLocales()
		if err != nil {
			log.Printf("rawasm: locale: %v", err)
		}

		if len(locales) == 0 {
			locales = []string{"en-US"}
		}

		printer.Store(message.NewPrinter(message.MatchLanguage(locales...)))
	})

	return printer.Load()
}

// SetLanguage forces message output to a specific language tag.
func SetLanguage(tag language.Tag) {
	Printer()
	printer.Store(message.NewPrinter(tag))
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
