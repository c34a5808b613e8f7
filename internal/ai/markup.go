package ai

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var spaceRun = regexp.MustCompile(`\s{2,}`)

// CondenseMarkup drops scripts, styles, inline svg, head metadata and
// comments, collapses whitespace and keeps at most limit runes of the body.
// limit <= 0 means no cap. Markup that cannot be parsed is only truncated.
func CondenseMarkup(markup string, limit int) string {
	out := markup
	if doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup)); err == nil {
		doc.Find("script, style, noscript, svg, link, meta").Remove()
		removeComments(doc.Selection)
		if body, err := doc.Find("body").Html(); err == nil {
			out = body
		}
	}
	out = strings.TrimSpace(spaceRun.ReplaceAllString(out, " "))

	if limit > 0 {
		if r := []rune(out); len(r) > limit {
			out = string(r[:limit])
		}
	}
	return out
}

func removeComments(sel *goquery.Selection) {
	sel.Contents().Each(func(_ int, s *goquery.Selection) {
		if goquery.NodeName(s) == "#comment" {
			s.Remove()
			return
		}
		removeComments(s)
	})
}
