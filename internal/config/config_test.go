package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/tuiotime/internal/tuiotime"
)

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, ClockSystem, cfg.Clock.Kind)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
format: json
database: ./sessions.db
clock:
  kind: fixed
  seconds: 3913000000
  microseconds: 250000
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Format)
	assert.Equal(t, "./sessions.db", cfg.Database)
	assert.Equal(t, ClockConfig{Kind: ClockFixed, Seconds: 3913000000, Microseconds: 250000}, cfg.Clock)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)

	var cfgErr *ConfigError
	require.True(t, errors.As(err, &cfgErr))
	assert.Equal(t, "read failed", cfgErr.Message)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestParse_EmptyDocumentUsesDefaults(t *testing.T) {
	cfg, err := Parse("empty.yaml", nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_PartialDocumentFillsDefaults(t *testing.T) {
	cfg, err := Parse("partial.yaml", []byte("database: /tmp/x.db\n"))
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Format)
	assert.Equal(t, "/tmp/x.db", cfg.Database)
	assert.Equal(t, ClockSystem, cfg.Clock.Kind)
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		message string
	}{
		{"unknown format", "format: xml\n", "schema violation"},
		{"unknown clock kind", "clock:\n  kind: ntp\n", "schema violation"},
		{"fraction out of range", "clock:\n  kind: fixed\n  microseconds: 1000000\n", "schema violation"},
		{"negative seconds", "clock:\n  kind: fixed\n  seconds: -1\n", "schema violation"},
		{"unknown key", "colour: blue\n", "invalid YAML"},
		{"wrong type", "clock:\n  seconds: soon\n", "invalid YAML"},
		{"malformed", "format: [json\n", "invalid YAML"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("bad.yaml", []byte(tt.yaml))
			require.Error(t, err)

			var cfgErr *ConfigError
			require.True(t, errors.As(err, &cfgErr), "want *ConfigError, got %T", err)
			assert.Equal(t, tt.message, cfgErr.Message)
			assert.Equal(t, "bad.yaml", cfgErr.Path)
			assert.Contains(t, err.Error(), "config bad.yaml")
		})
	}
}

func TestConfig_Source(t *testing.T) {
	cfg := Default()
	assert.IsType(t, tuiotime.SystemSource{}, cfg.Source())

	cfg.Clock = ClockConfig{Kind: ClockFixed, Seconds: 12, Microseconds: 34}
	src := cfg.Source()
	assert.Equal(t, tuiotime.New(12, 34), tuiotime.SnapshotNow(src))
	assert.Equal(t, tuiotime.SnapshotNow(src), tuiotime.SnapshotNow(src))
}
