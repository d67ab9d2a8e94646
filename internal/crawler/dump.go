package crawler

import (
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"
)

// HTMLDump writes the raw HTML of the seed page to disk for diagnostics,
// typically used when a crawl unexpectedly yields zero records.
type HTMLDump struct {
	path   string
	logger *zap.Logger
}

// NewHTMLDump returns a dump target for the given file path.
func NewHTMLDump(path string, logger *zap.Logger) *HTMLDump {
	return &HTMLDump{path: path, logger: logger}
}

// Save writes the page body to the dump path, creating parent directories as
// needed.
func (d *HTMLDump) Save(page Page) error {
	if err := os.MkdirAll(filepath.Dir(d.path), 0o750); err != nil {
		return fmt.Errorf("create dump dir for %s: %w", d.path, err)
	}
	if err := os.WriteFile(d.path, page.Body, 0o600); err != nil {
		return fmt.Errorf("write HTML dump %s: %w", d.path, err)
	}
	d.logger.Info("Saved raw HTML dump",
		zap.String("url", page.URL),
		zap.String("path", d.path),
		zap.Int("bytes", len(page.Body)),
	)
	return nil
}
