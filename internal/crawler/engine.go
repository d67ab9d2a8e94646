package crawler

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/PuerkitoBio/goquery"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrNoRecords is returned to callers when a crawl completes without finding
// a single facility record. It is a reportable outcome, not a crawl failure.
var ErrNoRecords = errors.New("no facility records found")

// Engine performs a breadth-first traversal of the directory's location
// pages. It owns the work queue and visited set for the duration of one Run
// call; no state survives between runs.
type Engine struct {
	cfg     Config
	fetcher Fetcher
	dump    *HTMLDump
	logger  *zap.Logger
}

// NewEngine constructs an Engine. dump may be nil to disable the raw HTML
// diagnostic dump.
func NewEngine(cfg Config, fetcher Fetcher, dump *HTMLDump, logger *zap.Logger) *Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Engine{
		cfg:     cfg,
		fetcher: fetcher,
		dump:    dump,
		logger:  logger,
	}
}

// Run crawls from the configured start URL until the queue is empty, the
// page cap is reached, or the context expires. Each URL is fetched at most
// once; a fetch failure is logged and the traversal continues. The returned
// records are deduplicated by (name, url) preserving first-seen order.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	report := Report{RunID: uuid.NewString()}
	logger := e.logger.With(zap.String("run_id", report.RunID))

	seedBase, err := url.Parse(e.cfg.StartURL)
	if err != nil {
		return Result{}, fmt.Errorf("parse start url %q: %w", e.cfg.StartURL, err)
	}
	seed := NormalizeURL(e.cfg.StartURL, seedBase)
	if seed == "" {
		return Result{}, fmt.Errorf("start url %q is not an absolute http(s) URL", e.cfg.StartURL)
	}
	baseHost := seedBase.Host

	queue := []string{seed}
	queued := map[string]struct{}{seed: {}}
	visited := make(map[string]struct{})
	var accumulated []Facility

	logger.Info("Starting crawl",
		zap.String("seed", seed),
		zap.String("directory_root", e.cfg.DirectoryRoot),
	)

	for len(queue) > 0 {
		if err := ctx.Err(); err != nil {
			logger.Warn("Crawl budget exhausted; returning accumulated records",
				zap.Int("pending", len(queue)),
				zap.Error(err),
			)
			break
		}
		if e.cfg.MaxPages > 0 && report.PagesFetched+report.PagesFailed >= e.cfg.MaxPages {
			logger.Warn("Page cap reached; returning accumulated records",
				zap.Int("max_pages", e.cfg.MaxPages),
				zap.Int("pending", len(queue)),
			)
			break
		}

		current := queue[0]
		queue = queue[1:]
		delete(queued, current)
		if _, ok := visited[current]; ok {
			continue
		}
		visited[current] = struct{}{}

		page, err := e.fetcher.Fetch(ctx, current)
		if err != nil {
			report.PagesFailed++
			TotalFetchErrors.Inc()
			logger.Error("Failed to fetch page", zap.String("url", current), zap.Error(err))
			continue
		}
		report.PagesFetched++
		TotalPagesFetched.Inc()

		if e.dump != nil && current == seed {
			if err := e.dump.Save(page); err != nil {
				logger.Warn("Failed to save HTML dump", zap.Error(err))
			}
		}

		doc, err := goquery.NewDocumentFromReader(bytes.NewReader(page.Body))
		if err != nil {
			logger.Warn("Failed to parse page", zap.String("url", current), zap.Error(err))
			continue
		}
		pageURL, err := url.Parse(current)
		if err != nil {
			logger.Warn("Skipping unparseable queued URL", zap.String("url", current), zap.Error(err))
			continue
		}

		defaults := LocationFromPath(pageURL, e.cfg.DirectoryRoot)
		extraction := ExtractPage(doc, pageURL, defaults)
		switch extraction.Source {
		case SourceStructured:
			report.StructuredPages++
		case SourceHeuristic:
			report.HeuristicPages++
		}
		TotalRecordsExtracted.WithLabelValues(string(extraction.Source)).
			Add(float64(len(extraction.Facilities)))
		accumulated = append(accumulated, extraction.Facilities...)

		discovered := 0
		for _, link := range e.locationLinks(doc, pageURL, baseHost) {
			if _, ok := visited[link]; ok {
				continue
			}
			if _, ok := queued[link]; ok {
				continue
			}
			queued[link] = struct{}{}
			queue = append(queue, link)
			discovered++
		}
		report.URLsDiscovered += discovered
		TotalURLsDiscovered.Add(float64(discovered))

		logger.Debug("Processed page",
			zap.String("url", current),
			zap.String("source", string(extraction.Source)),
			zap.Int("records", len(extraction.Facilities)),
			zap.Int("discovered", discovered),
		)
	}

	unique := DedupeFacilities(accumulated)
	report.Records = len(unique)
	logger.Info("Crawl finished",
		zap.Int("pages_fetched", report.PagesFetched),
		zap.Int("pages_failed", report.PagesFailed),
		zap.Int("records", report.Records),
	)
	return Result{Facilities: unique, Report: report}, nil
}

// locationLinks normalizes every anchor on the page and keeps those that
// classify as region or locality pages of the directory.
func (e *Engine) locationLinks(doc *goquery.Document, pageURL *url.URL, baseHost string) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, anchor *goquery.Selection) {
		href, _ := anchor.Attr("href")
		normalized := NormalizeURL(href, pageURL)
		if normalized == "" {
			return
		}
		u, err := url.Parse(normalized)
		if err != nil {
			return
		}
		if ClassifyURL(u, baseHost, e.cfg.DirectoryRoot) == URLClassNone {
			return
		}
		links = append(links, normalized)
	})
	return links
}
