package crawler

import (
	"net/url"
	"regexp"

	"github.com/PuerkitoBio/goquery"
)

var (
	// facilityPathRe matches a path segment of the form data-center(s) or
	// data-centre(s), bounded by slashes.
	facilityPathRe = regexp.MustCompile(`(?i)/data-?cent(?:er|re)s?/`)

	// addressClassRe matches class attributes that usually carry a street
	// address in listing markup.
	addressClassRe = regexp.MustCompile(`(?i)address|location`)
)

// ExtractHeuristic is the fallback extractor for pages without usable
// structured data. It scans anchors whose href matches the facility path
// pattern, takes the anchor text as the facility name, and looks for an
// address-like element near the anchor. City and state come from the
// supplied defaults.
func ExtractHeuristic(doc *goquery.Document, pageURL *url.URL, defaults Location) []Facility {
	var records []Facility
	seen := make(map[string]struct{})

	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		if !facilityPathRe.MatchString(href) {
			return
		}
		resolved := resolveHref(href, pageURL)
		if resolved == "" {
			return
		}
		name := normalizeWhitespace(anchor.Text())
		if name == "" {
			return
		}
		if _, ok := seen[resolved]; ok {
			return
		}
		seen[resolved] = struct{}{}

		records = append(records, Facility{
			Name:    name,
			URL:     resolved,
			Address: nearbyAddressText(anchor),
			City:    defaults.City,
			State:   defaults.State,
		})
	})
	return records
}

// resolveHref makes href absolute against the page URL. Unlike NormalizeURL
// it keeps the query string: facility detail links are records, not crawl
// targets.
func resolveHref(href string, pageURL *url.URL) string {
	if pageURL == nil {
		return href
	}
	resolved, err := pageURL.Parse(href)
	if err != nil {
		return ""
	}
	return resolved.String()
}

// nearbyAddressText searches the anchor's nearest li/article/div ancestor
// (or its immediate parent if none) for a descendant whose class attribute
// looks like an address, and returns that element's normalized text.
func nearbyAddressText(anchor *goquery.Selection) string {
	container := anchor.Closest("li,article,div")
	if container.Length() == 0 {
		container = anchor.Parent()
	}
	var text string
	container.Find("[class]").EachWithBreak(func(_ int, candidate *goquery.Selection) bool {
		class, _ := candidate.Attr("class")
		if !addressClassRe.MatchString(class) {
			return true
		}
		text = normalizeWhitespace(candidate.Text())
		return false
	})
	return text
}
