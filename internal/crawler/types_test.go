package crawler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDedupeFacilities(t *testing.T) {
	t.Parallel()

	records := []Facility{
		{Name: "Acme DC", URL: "https://example.com/f/acme", City: "Austin"},
		{Name: "Beta Colo", URL: "https://example.com/f/beta"},
		// Same key as the first record with different field values: the
		// first occurrence's fields win.
		{Name: "Acme DC", URL: "https://example.com/f/acme", City: "Dallas"},
		{Name: "Acme DC", URL: "https://example.com/f/acme-2"},
	}

	unique := DedupeFacilities(records)
	require.Len(t, unique, 3)
	assert.Equal(t, "Austin", unique[0].City)
	assert.Equal(t, "Beta Colo", unique[1].Name)
	assert.Equal(t, "https://example.com/f/acme-2", unique[2].URL)

	seen := make(map[FacilityKey]struct{})
	for _, rec := range unique {
		_, dup := seen[rec.Key()]
		assert.False(t, dup, "duplicate key %+v survived dedup", rec.Key())
		seen[rec.Key()] = struct{}{}
	}
}

func TestDedupeFacilitiesEmpty(t *testing.T) {
	t.Parallel()

	assert.Empty(t, DedupeFacilities(nil))
}

func TestURLClassString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "region", URLClassRegion.String())
	assert.Equal(t, "locality", URLClassLocality.String())
	assert.Equal(t, "none", URLClassNone.String())
}
