package money

import (
	"strings"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.French)

// Group formats n with French digit grouping, using plain spaces.
func Group(n int64) string {
	s := printer.Sprintf("%d", n)
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return ' '
		}
		return r
	}, s)
}

// FC is the short dashboard form, "1 850 000 FC".
func FC(n int64) string {
	return Group(n) + " FC"
}

func CDF(n int64) string {
	return Group(n) + " CDF"
}
