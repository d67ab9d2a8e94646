// Package config includes tests for the Viper configuration defaults.
package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestSetDefaults(t *testing.T) {
	t.Parallel()

	v := viper.New()
	SetDefaults(v)

	assert.Equal(t, "https://www.datacentermap.com/usa/", v.GetString("crawler.start_url"))
	assert.Equal(t, "usa", v.GetString("crawler.directory_root"))
	assert.Equal(t, DefaultUserAgent, v.GetString("crawler.user_agent"))
	assert.Equal(t, "en-US,en;q=0.9", v.GetString("crawler.accept_language"))
	assert.Equal(t, "30s", v.GetString("crawler.request_timeout"))
	assert.Equal(t, 0, v.GetInt("crawler.max_pages"))

	assert.Equal(t, "output/datacenters_usa.csv", v.GetString("output.path"))
	assert.Empty(t, v.GetString("output.dump_html"))

	assert.Empty(t, v.GetString("server.addr"))
	assert.Empty(t, v.GetString("database.dsn"))
	assert.Equal(t, "facilities", v.GetString("database.table"))

	assert.True(t, v.GetBool("logging.development"))
}
