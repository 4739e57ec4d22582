package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() Config {
	return Config{
		ReadabilityDelay: 800 * time.Millisecond,
		CloudLimit:       30,
		CharLimit:        6,
		Workers:          0,
		Format:           "text",
	}
}

func TestConfigValidateAcceptsDefaults(t *testing.T) {
	require.NoError(t, validConfig().Validate())
}

func TestConfigValidateReportsFlag(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"cloud too large", func(c *Config) { c.CloudLimit = 51 }, "--cloud-limit must be <= 50"},
		{"char zero", func(c *Config) { c.CharLimit = 0 }, "--char-limit must be >= 1"},
		{"negative workers", func(c *Config) { c.Workers = -1 }, "--workers must be >= 0"},
		{"bad format", func(c *Config) { c.Format = "xml" }, "--format must be one of: text json yaml"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			cfg := validConfig()
			tc.mutate(&cfg)
			assert.EqualError(t, cfg.Validate(), tc.want)
		})
	}
}

func TestBasicStatsAverages(t *testing.T) {
	var empty BasicStats
	assert.Zero(t, empty.AvgWordLength())
	assert.Zero(t, empty.AvgSentenceLength())

	s := BasicStats{CharactersNoSpaces: 12, Words: 3, Sentences: 2}
	assert.Equal(t, 4.0, s.AvgWordLength())
	assert.Equal(t, 1.5, s.AvgSentenceLength())
}
