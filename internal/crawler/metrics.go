package crawler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// TotalPagesFetched tracks pages successfully fetched and processed.
	TotalPagesFetched = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crawler_pages_fetched_total",
		Help: "The total number of pages successfully fetched.",
	})
	// TotalFetchErrors tracks per-URL fetch failures (the crawl continues).
	TotalFetchErrors = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crawler_fetch_errors_total",
		Help: "The total number of failed page fetches.",
	})
	// TotalURLsDiscovered tracks directory URLs enqueued during traversal.
	TotalURLsDiscovered = promauto.NewCounter(prometheus.CounterOpts{
		Name: "crawler_urls_discovered_total",
		Help: "The total number of location URLs discovered and enqueued.",
	})
	// TotalRecordsExtracted tracks extracted records labeled by extractor.
	TotalRecordsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "crawler_records_extracted_total",
		Help: "The total number of facility records extracted, by source.",
	}, []string{"source"})
)
