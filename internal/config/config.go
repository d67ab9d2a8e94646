// Package config is responsible for initializing the application's
// configuration. It uses the Viper library to read settings from a config
// file and environment variables, providing a unified configuration system.
package config

import (
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/rbeggs/dcmap-crawler/internal/logging"
)

// DefaultUserAgent is the browser-like User-Agent sent with every request.
const DefaultUserAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) " +
	"AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// InitConfig initializes the application's configuration using Viper. It
// sets defaults, wires environment variables, and reads the optional config
// file. Designed to be called once at startup via cobra.OnInitialize.
func InitConfig(cfgFile string) {
	SetDefaults(viper.GetViper())

	viper.SetEnvPrefix("CRAWLER") // e.g. CRAWLER_CRAWLER_MAX_PAGES=500
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("config")
		viper.AddConfigPath(".")
		viper.AddConfigPath("$HOME/.dcmap-crawler")
	}

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			logging.L.Debug("Config file not found; using defaults and environment variables.")
		} else {
			logging.L.Error("Error reading config file", zap.Error(err))
		}
	} else {
		logging.L.Info("Using config file", zap.String("path", viper.ConfigFileUsed()))
	}
}

// SetDefaults installs the default configuration values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("crawler.start_url", "https://www.datacentermap.com/usa/")
	v.SetDefault("crawler.directory_root", "usa")
	v.SetDefault("crawler.user_agent", DefaultUserAgent)
	v.SetDefault("crawler.accept_language", "en-US,en;q=0.9")
	v.SetDefault("crawler.request_timeout", "30s")
	v.SetDefault("crawler.max_pages", 0)
	v.SetDefault("crawler.crawl_budget", "0s")

	v.SetDefault("output.path", "output/datacenters_usa.csv")
	v.SetDefault("output.dump_html", "")

	v.SetDefault("server.addr", "")

	v.SetDefault("database.dsn", "")
	v.SetDefault("database.table", "facilities")

	v.SetDefault("logging.development", true)
}
