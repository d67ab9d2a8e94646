package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractHeuristic(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://example.com/usa/texas/austin/")
	doc := docFromHTML(t, `<html><body>
<ul>
  <li>
    <a href="/texas/austin/data-centers/acme">Acme DC</a>
    <span class="listing-address">1 Main St, Austin</span>
  </li>
  <li>
    <a href="https://example.com/texas/austin/data-centres/beta">Beta   Colo</a>
  </li>
  <li><a href="/texas/austin/data-centers/acme">Acme DC duplicate</a></li>
  <li><a href="/texas/austin/data-centers/empty"><img src="x.png"></a></li>
  <li><a href="/texas/austin/pricing/">Pricing</a></li>
</ul>
</body></html>`)

	records := ExtractHeuristic(doc, pageURL, Location{State: "Texas", City: "Austin"})
	require.Len(t, records, 2)

	assert.Equal(t, Facility{
		Name:    "Acme DC",
		URL:     "https://example.com/texas/austin/data-centers/acme",
		Address: "1 Main St, Austin",
		City:    "Austin",
		State:   "Texas",
	}, records[0])

	// Name whitespace-normalized, no address element nearby.
	assert.Equal(t, "Beta Colo", records[1].Name)
	assert.Empty(t, records[1].Address)
	assert.Equal(t, "Austin", records[1].City)
	assert.Equal(t, "Texas", records[1].State)
}

func TestExtractHeuristicPathPattern(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://example.com/usa/")

	tests := []struct {
		name    string
		href    string
		matches bool
	}{
		{"data-center", "/foo/data-center/one", true},
		{"data-centers", "/foo/data-centers/one", true},
		{"datacentre", "/foo/datacentre/one", true},
		{"data-centres uppercase", "/foo/DATA-CENTRES/one", true},
		{"not a segment", "/foo/data-centering/one", false},
		{"unrelated", "/foo/servers/one", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc := docFromHTML(t, `<html><body><a href="`+tt.href+`">Some DC</a></body></html>`)
			records := ExtractHeuristic(doc, pageURL, Location{})
			if tt.matches {
				assert.Len(t, records, 1)
			} else {
				assert.Empty(t, records)
			}
		})
	}
}

func TestNearbyAddressTextUsesClosestContainer(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://example.com/usa/ohio/")

	// The address lives on an ancestor article, class match is
	// case-insensitive, and "location" is accepted too.
	doc := docFromHTML(t, `<html><body>
<article>
  <h3><a href="/ohio/data-centers/delta">Delta DC</a></h3>
  <div><p class="Location-Line">55  Oak   Ave</p></div>
</article>
</body></html>`)

	records := ExtractHeuristic(doc, pageURL, Location{})
	require.Len(t, records, 1)
	assert.Equal(t, "55 Oak Ave", records[0].Address)
}
