// Package translate localizes the user visible strings of the accu8 tools.
package translate

//go:generate go tool gotext -srclang=en-US update -out=catalog.go -lang=en-US github.com/ezrec/accu8/cpu github.com/ezrec/accu8/emulator github.com/ezrec/accu8/io

import (
	"log"
	"sync"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	printer     *message.Printer
	printerOnce sync.Once
)

// Locales returns the user's preferred locales, falling back to en-US.
func Locales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("accu8: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	return
}

// Printer returns the message printer for the user's locale.
func Printer() *message.Printer {
	printerOnce.Do(func() {
		tag := message.MatchLanguage(Locales()...)
		if tag == language.Und {
			tag = language.AmericanEnglish
		}
		printer = message.NewPrinter(tag)
	})

	return printer
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return Printer().Sprintf(key, args...)
}
