package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractPagePrefersStructuredData(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://example.com/usa/texas/")
	doc := docFromHTML(t, `<html><head>
<script type="application/ld+json">
{"@type": "ItemList", "itemListElement": [
  {"item": {"name": "Acme DC", "url": "https://example.com/f/acme"}}
]}
</script>
</head><body>
<a href="/texas/data-centers/ignored">Ignored DC</a>
</body></html>`)

	extraction := ExtractPage(doc, pageURL, Location{State: "Texas"})
	assert.Equal(t, SourceStructured, extraction.Source)
	require.Len(t, extraction.Facilities, 1)
	assert.Equal(t, "Acme DC", extraction.Facilities[0].Name)
}

func TestExtractPageFallsBackToHeuristic(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://example.com/usa/texas/")

	// Structured data exists but holds no item list, so the heuristic
	// pass supplies the page's contribution.
	doc := docFromHTML(t, `<html><head>
<script type="application/ld+json">{"@type": "BreadcrumbList"}</script>
</head><body>
<a href="/texas/data-centers/acme">Acme DC</a>
</body></html>`)

	extraction := ExtractPage(doc, pageURL, Location{State: "Texas"})
	assert.Equal(t, SourceHeuristic, extraction.Source)
	require.Len(t, extraction.Facilities, 1)
	assert.Equal(t, "Acme DC", extraction.Facilities[0].Name)
	assert.Equal(t, "Texas", extraction.Facilities[0].State)
}

func TestExtractPageEmpty(t *testing.T) {
	t.Parallel()

	pageURL := mustParse(t, "https://example.com/usa/")
	doc := docFromHTML(t, `<html><body><p>Nothing here.</p></body></html>`)

	extraction := ExtractPage(doc, pageURL, Location{})
	assert.Equal(t, SourceNone, extraction.Source)
	assert.Empty(t, extraction.Facilities)
}
