package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/report"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate points HOME at an empty directory so no real config is read.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("PROPWIZ_CONFIG", "")
	return home
}

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	t.Setenv("PROPWIZ_CONFIG", path)
	return path
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, len(domain.DefaultStrategicAxes), cfg.Axes().Len())
	assert.Equal(t, report.DefaultOptions(), cfg.ReportOptions())
}

func TestLoad_HomeConfigFile(t *testing.T) {
	home := isolate(t)
	dir := filepath.Join(home, ".config", "propwiz")
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte("report:\n  currency: EUR\n"), 0o644))

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "EUR", cfg.Report.Currency)
	assert.Equal(t, report.DefaultNumberFormat, cfg.Report.NumberFormat)
}

func TestLoad_ExplicitFile(t *testing.T) {
	isolate(t)
	writeConfig(t, `
strategic_axes:
  - Health
  - Water management
report:
  currency: USD
  number_format: "#,###.##"
export:
  dir: /tmp/proposals
log:
  file: /tmp/propwiz.log
  level: debug
`)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"Health", "Water management"}, cfg.StrategicAxes)
	assert.Equal(t, "USD", cfg.Report.Currency)
	assert.Equal(t, "#,###.##", cfg.Report.NumberFormat)
	assert.Equal(t, "/tmp/proposals", cfg.Export.Dir)
	assert.Equal(t, "/tmp/propwiz.log", cfg.Log.File)

	level, err := cfg.Log.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelDebug, level)
}

func TestLoad_EnvOverrides(t *testing.T) {
	isolate(t)
	writeConfig(t, "report:\n  currency: USD\n")
	t.Setenv("PROPWIZ_REPORT_CURRENCY", "MAD")
	t.Setenv("PROPWIZ_STRATEGIC_AXES", "Health; Food security ;")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "MAD", cfg.Report.Currency)
	assert.Equal(t, []string{"Health", "Food security"}, cfg.StrategicAxes)
}

func TestLoad_RejectsInvalidNumberFormat(t *testing.T) {
	isolate(t)
	writeConfig(t, "report:\n  number_format: \"1,2\"\n")

	_, err := Load()
	assert.ErrorIs(t, err, report.ErrInvalidNumberFormat)
}

func TestLoad_RejectsInvalidLogLevel(t *testing.T) {
	isolate(t)
	t.Setenv("PROPWIZ_LOG_LEVEL", "chatty")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")
}

func TestLoad_MissingExplicitFileFails(t *testing.T) {
	isolate(t)
	t.Setenv("PROPWIZ_CONFIG", filepath.Join(t.TempDir(), "nope.yaml"))

	_, err := Load()
	assert.Error(t, err)
}

func TestPath(t *testing.T) {
	isolate(t)
	t.Setenv("HOME", "/home/ada")
	assert.Equal(t, "/home/ada/.config/propwiz/config.yaml", Path())

	t.Setenv("PROPWIZ_CONFIG", "/etc/propwiz.yaml")
	assert.Equal(t, "/etc/propwiz.yaml", Path())
}
