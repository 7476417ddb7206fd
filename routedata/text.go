package routedata

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// plainText strips any html markup from a description and collapses whitespace.
func plainText(s string) string {
	if strings.ContainsAny(s, "<&") {
		dom, err := goquery.NewDocumentFromReader(strings.NewReader(s))
		if err == nil {
			s = dom.Text()
		}
	}
	return strings.Join(strings.Fields(s), " ")
}
