package crawler

import (
	"net/url"

	"github.com/PuerkitoBio/goquery"
)

// ExtractPage runs the two-step extraction pipeline: structured data first,
// heuristic link scanning only when the structured pass yields nothing. The
// returned Extraction tags which step produced the records.
func ExtractPage(doc *goquery.Document, pageURL *url.URL, defaults Location) Extraction {
	if records := ExtractStructured(doc, defaults); len(records) > 0 {
		return Extraction{Source: SourceStructured, Facilities: records}
	}
	if records := ExtractHeuristic(doc, pageURL, defaults); len(records) > 0 {
		return Extraction{Source: SourceHeuristic, Facilities: records}
	}
	return Extraction{Source: SourceNone}
}
