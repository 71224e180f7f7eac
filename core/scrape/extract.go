package scrape

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// The extractors below pull single fields out of a break detail page. Every
// one of them degrades to an empty string when the page lacks the expected
// markup, so a layout change on the source site thins the data instead of
// failing the run.

func extractRegion(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("select#region_id option[selected]").First().Text())
}

func extractCountry(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("select#country_id option[selected]").First().Text())
}

// extractType reads the text node following the break-type icon, the only
// place the page states whether the spot is a reef, point, or beach break.
func extractType(doc *goquery.Document) string {
	icon := doc.Find("table.guide-header__information img.guide-header__type-icon.guide-header__type-icon--break").First()
	if icon.Length() == 0 {
		return ""
	}
	for n := icon.Nodes[0].NextSibling; n != nil; n = n.NextSibling {
		if n.Type == html.TextNode {
			return strings.TrimSpace(n.Data)
		}
	}
	return ""
}

func extractRating(doc *goquery.Document) string {
	icon := doc.Find("table.guide-header__information img.guide-header__type-icon.guide-header__type-icon--stars").First()
	if icon.Length() == 0 {
		return ""
	}
	return strings.TrimSpace(icon.NextAllFiltered("span").First().Text())
}

func extractReliability(doc *goquery.Document) string {
	tds := doc.Find("table.guide-header__information td")
	if tds.Length() <= 2 {
		return ""
	}
	return strings.TrimSpace(tds.Eq(2).Text())
}

func extractDirections(doc *goquery.Document) (swell, wind string) {
	spans := doc.Find("div.guide-header__best-surf p").First().Find("span.guide-header__dir")
	if spans.Length() > 0 {
		swell = strings.TrimSpace(spans.Eq(0).Text())
	}
	if spans.Length() > 1 {
		wind = strings.TrimSpace(spans.Eq(1).Text())
	}
	return swell, wind
}

func extractBestMonth(doc *goquery.Document) (month, season string) {
	div := doc.Find("div.guide-page__best-month").First()
	if div.Length() == 0 {
		return "", ""
	}

	before, _, _ := strings.Cut(div.Text(), "Best")
	month = strings.TrimSpace(before)

	if parts := strings.Split(div.Find("span").First().Text(), ": "); len(parts) > 1 {
		season = strings.TrimSpace(parts[1])
	}
	return month, season
}

func extractSummary(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("div.guide-header__summary__text").First().Text())
}

func extractTimeOfYear(doc *goquery.Document) string {
	return strings.TrimSpace(doc.Find("div.guide-page__text").First().Text())
}
