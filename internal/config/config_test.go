package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigMissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "config.toml"))
	require.NoError(t, err)
	assert.Nil(t, cfg.Analysis.CloudLimit)
	assert.Nil(t, cfg.Batch.Format)
}

func TestLoadConfigValues(t *testing.T) {
	path := writeConfig(t, `[analysis]
readability-delay = "250ms"
cloud-limit = 12

[batch]
workers = 4
format = "json"
`)
	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	d := cfg.Analysis.Delay()
	require.NotNil(t, d)
	assert.Equal(t, 250*time.Millisecond, *d)
	require.NotNil(t, cfg.Analysis.CloudLimit)
	assert.Equal(t, 12, *cfg.Analysis.CloudLimit)
	assert.Nil(t, cfg.Analysis.CharLimit)
	require.NotNil(t, cfg.Batch.Workers)
	assert.Equal(t, 4, *cfg.Batch.Workers)
	require.NotNil(t, cfg.Batch.Format)
	assert.Equal(t, "json", *cfg.Batch.Format)
}

func TestLoadConfigRejectsBadValues(t *testing.T) {
	cases := map[string]string{
		"bad delay":   "[analysis]\nreadability-delay = \"soon\"\n",
		"unknown key": "[analysis]\ncolour = true\n",
		"bad toml":    "[analysis\n",
	}
	for name, content := range cases {
		_, err := LoadConfig(writeConfig(t, content))
		assert.Error(t, err, name)
	}
}

func TestTemplateDecodes(t *testing.T) {
	// Uncomment every setting.
	var lines []string
	for _, line := range strings.Split(Template(), "\n") {
		if strings.HasPrefix(line, "# ") && strings.Contains(line, " = ") {
			line = strings.TrimPrefix(line, "# ")
		}
		lines = append(lines, line)
	}
	cfg, err := LoadConfig(writeConfig(t, strings.Join(lines, "\n")))
	require.NoError(t, err, "template does not decode")

	require.NotNil(t, cfg.Analysis.CloudLimit)
	assert.Equal(t, DefaultCloudLimit, *cfg.Analysis.CloudLimit)
	require.NotNil(t, cfg.Batch.Format)
	assert.Equal(t, DefaultFormat, *cfg.Batch.Format)
	d := cfg.Analysis.Delay()
	require.NotNil(t, d)
	assert.Equal(t, DefaultReadabilityDelay, *d)
	assert.NoError(t, Defaults().Validate())
}

func TestDefaultPathsUseXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/tmp/cfg")
	t.Setenv("XDG_DATA_HOME", "/tmp/data")
	assert.Equal(t, filepath.Join("/tmp/cfg", "textlens", "config.toml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/tmp/data", "textlens", "textlens.db"), DefaultDBPath())
}
