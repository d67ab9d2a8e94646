package crawler

import (
	"fmt"
	"time"

	"github.com/spf13/viper"
)

// Config captures every knob that influences a crawl run. All values
// originate from Viper so the engine can be configured via files, env vars,
// or CLI flags.
type Config struct {
	StartURL       string
	DirectoryRoot  string
	UserAgent      string
	AcceptLanguage string
	RequestTimeout time.Duration
	MaxPages       int
	CrawlBudget    time.Duration
}

// LoadCrawlerConfig constructs a Config by reading from Viper.
func LoadCrawlerConfig(v *viper.Viper) (Config, error) {
	cfg := Config{
		StartURL:       v.GetString("crawler.start_url"),
		DirectoryRoot:  v.GetString("crawler.directory_root"),
		UserAgent:      v.GetString("crawler.user_agent"),
		AcceptLanguage: v.GetString("crawler.accept_language"),
		RequestTimeout: v.GetDuration("crawler.request_timeout"),
		MaxPages:       v.GetInt("crawler.max_pages"),
		CrawlBudget:    v.GetDuration("crawler.crawl_budget"),
	}
	return cfg, cfg.Validate()
}

// Validate checks for obviously bad configuration combinations.
func (c Config) Validate() error {
	if c.StartURL == "" {
		return fmt.Errorf("crawler.start_url must be set")
	}
	if c.DirectoryRoot == "" {
		return fmt.Errorf("crawler.directory_root must be set")
	}
	if c.UserAgent == "" {
		return fmt.Errorf("crawler.user_agent must be set")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("crawler.request_timeout must be > 0")
	}
	if c.MaxPages < 0 {
		return fmt.Errorf("crawler.max_pages must be >= 0")
	}
	if c.CrawlBudget < 0 {
		return fmt.Errorf("crawler.crawl_budget must be >= 0")
	}
	return nil
}
