// core/wiki/links.go
package wiki

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// ParseLinks extracts the polymer index from the landing page: anchors of the
// wiki link style inside the first inline-styled table whose target carries an
// id= query parameter. Relative targets are resolved against base.
// No table or no qualifying anchors yields an empty result.
func ParseLinks(html string, base *url.URL) ([]Link, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, err
	}
	table := doc.Find("table.inline").First()
	if table.Length() == 0 {
		return nil, nil
	}
	var links []Link
	table.Find("a.wikilink1").Each(func(_ int, a *goquery.Selection) {
		href, ok := a.Attr("href")
		if !ok || !strings.Contains(href, "id=") {
			return
		}
		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		links = append(links, Link{
			Name: strings.TrimSpace(a.Text()),
			URL:  base.ResolveReference(ref).String(),
		})
	})
	return links, nil
}
