package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// TextFromHTML reduces an HTML paste (WhatsApp Web export, forwarded web
// snippet) to plain text lines suitable for classification. Block-level
// elements become line breaks so the line-oriented grammars still see the
// original message layout.
func TextFromHTML(input string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(input))
	if err != nil {
		return "", err
	}
	doc.Find("script, style").Remove()
	doc.Find("br").Each(func(_ int, sel *goquery.Selection) {
		sel.ReplaceWithHtml("\n")
	})
	doc.Find("p, div, li, tr, h1, h2, h3, h4, h5, h6").Each(func(_ int, sel *goquery.Selection) {
		sel.AppendHtml("\n")
	})

	text := doc.Text()
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		clean := strings.TrimSpace(line)
		if clean == "" {
			continue
		}
		out = append(out, clean)
	}
	return strings.Join(out, "\n"), nil
}
