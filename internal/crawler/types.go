package crawler

import "net/http"

// Facility is one extracted facility listing. Name and URL are always set;
// the remaining fields are optional and whitespace-normalized.
type Facility struct {
	Name       string `json:"name"`
	URL        string `json:"url"`
	Address    string `json:"address,omitempty"`
	City       string `json:"city,omitempty"`
	State      string `json:"state,omitempty"`
	PostalCode string `json:"postal_code,omitempty"`
}

// FacilityKey is the identity used for deduplication. Two records sharing a
// key describe the same facility regardless of their other fields.
type FacilityKey struct {
	Name string
	URL  string
}

// Key returns the record's deduplication identity.
func (f Facility) Key() FacilityKey {
	return FacilityKey{Name: f.Name, URL: f.URL}
}

// DedupeFacilities removes duplicate records by (name, url). The first
// occurrence wins and first-seen order is preserved.
func DedupeFacilities(records []Facility) []Facility {
	seen := make(map[FacilityKey]struct{}, len(records))
	unique := make([]Facility, 0, len(records))
	for _, rec := range records {
		key := rec.Key()
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		unique = append(unique, rec)
	}
	return unique
}

// Location holds the human-readable state/city defaults derived from a
// directory URL's path.
type Location struct {
	State string
	City  string
}

// URLClass classifies a discovered URL by its position in the directory
// hierarchy.
type URLClass int

const (
	// URLClassNone marks URLs outside the directory (wrong host or path shape).
	URLClassNone URLClass = iota
	// URLClassRegion marks state/province listing pages (two path segments).
	URLClassRegion
	// URLClassLocality marks city listing pages (three or more path segments).
	URLClassLocality
)

// String implements fmt.Stringer for log fields.
func (c URLClass) String() string {
	switch c {
	case URLClassRegion:
		return "region"
	case URLClassLocality:
		return "locality"
	default:
		return "none"
	}
}

// Page is the raw result returned by a Fetcher implementation.
type Page struct {
	URL        string
	FinalURL   string
	StatusCode int
	Headers    http.Header
	Body       []byte
}

// ExtractionSource tags which extractor produced a page's records.
type ExtractionSource string

// Extraction sources reported per page.
const (
	SourceStructured ExtractionSource = "structured"
	SourceHeuristic  ExtractionSource = "heuristic"
	SourceNone       ExtractionSource = "none"
)

// Extraction is the tagged outcome of the two-step extraction pipeline.
type Extraction struct {
	Source     ExtractionSource
	Facilities []Facility
}

// Report summarizes a single crawl run.
type Report struct {
	RunID           string `json:"run_id"`
	PagesFetched    int    `json:"pages_fetched"`
	PagesFailed     int    `json:"pages_failed"`
	URLsDiscovered  int    `json:"urls_discovered"`
	StructuredPages int    `json:"structured_pages"`
	HeuristicPages  int    `json:"heuristic_pages"`
	Records         int    `json:"records"`
}

// Result carries the deduplicated records and the run report.
type Result struct {
	Facilities []Facility
	Report     Report
}
