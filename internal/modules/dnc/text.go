package dnc

import (
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

const (
	keyOvercapWhy     = "dnc.esprit.overcap.why"
	keyOvercapContent = "dnc.esprit.overcap.content"
)

var printer = newPrinter()

func newPrinter() *message.Printer {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	must(b.Set(language.English, keyOvercapWhy, plural.Selectf(1, "%d",
		plural.One, "%d Saber Dance may have been missed.",
		plural.Other, "%d Saber Dances may have been missed.",
	)))
	must(b.SetString(language.English, keyOvercapContent,
		"You may have lost uses of Saber Dance due to overcapping your Esprit gauge. "+
			"Make sure you use it, especially if your gauge is above 80."))
	return message.NewPrinter(language.English, message.Catalog(b))
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

func overcapWhy(missed int64) string {
	return printer.Sprintf(keyOvercapWhy, missed)
}

func overcapContent() string {
	return printer.Sprintf(keyOvercapContent)
}
