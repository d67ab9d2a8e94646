package sink

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rbeggs/dcmap-crawler/internal/crawler"
)

func TestCSVSinkWrite(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out", "facilities.csv")
	s := NewCSVSink(path)

	records := []crawler.Facility{
		{
			Name:       "Acme DC",
			URL:        "https://example.com/facility/acme",
			Address:    "1 Main St",
			City:       "Austin",
			State:      "Texas",
			PostalCode: "78701",
		},
		{
			Name: "Beta, Colo",
			URL:  "https://example.com/facility/beta",
		},
	}
	require.NoError(t, s.Write(context.Background(), records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	want := "name,url,address,city,state,postal_code\n" +
		"Acme DC,https://example.com/facility/acme,1 Main St,Austin,Texas,78701\n" +
		"\"Beta, Colo\",https://example.com/facility/beta,,,,\n"
	assert.Equal(t, want, string(data))
}

func TestCSVSinkWriteCanceledContext(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewCSVSink(filepath.Join(t.TempDir(), "facilities.csv"))
	err := s.Write(ctx, nil)
	assert.Error(t, err)
}
