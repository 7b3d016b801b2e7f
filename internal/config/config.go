// Package config loads propwiz settings from an optional YAML file and
// PROPWIZ_* environment variables.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexanderramin/propwiz/internal/domain"
	"github.com/alexanderramin/propwiz/internal/report"
)

// Config holds application configuration.
type Config struct {
	StrategicAxes []string     `mapstructure:"-"`
	Report        ReportConfig `mapstructure:"report"`
	Export        ExportConfig `mapstructure:"export"`
	Log           LogConfig    `mapstructure:"log"`
}

// ReportConfig controls amounts in the report.
type ReportConfig struct {
	Currency     string `mapstructure:"currency"`
	NumberFormat string `mapstructure:"number_format"`
}

// ExportConfig controls where export files are written.
type ExportConfig struct {
	Dir string `mapstructure:"dir"`
}

// LogConfig controls the diagnostic log. An empty File discards logs.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		StrategicAxes: append([]string(nil), domain.DefaultStrategicAxes...),
		Report: ReportConfig{
			Currency:     report.DefaultCurrency,
			NumberFormat: report.DefaultNumberFormat,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Path returns the config file consulted by Load.
func Path() string {
	if p := os.Getenv("PROPWIZ_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "propwiz", "config.yaml")
}

// Load reads configuration from file and env. Env var overrides use prefix
// PROPWIZ_; PROPWIZ_STRATEGIC_AXES separates labels with ";".
func Load() (Config, error) {
	def := Default()
	v := viper.New()

	v.SetDefault("strategic_axes", def.StrategicAxes)
	v.SetDefault("report.currency", def.Report.Currency)
	v.SetDefault("report.number_format", def.Report.NumberFormat)
	v.SetDefault("export.dir", def.Export.Dir)
	v.SetDefault("log.file", def.Log.File)
	v.SetDefault("log.level", def.Log.Level)

	v.SetConfigType("yaml")
	if p := os.Getenv("PROPWIZ_CONFIG"); p != "" {
		v.SetConfigFile(p)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "propwiz"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("PROPWIZ")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	switch raw := v.Get("strategic_axes").(type) {
	case string:
		c.StrategicAxes = splitAxes(raw)
	default:
		c.StrategicAxes = v.GetStringSlice("strategic_axes")
	}

	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects settings the report or logger cannot use.
func (c Config) Validate() error {
	if err := report.ValidateNumberFormat(c.Report.NumberFormat); err != nil {
		return fmt.Errorf("report.number_format: %w", err)
	}
	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	return nil
}

// Axes returns the configured strategic axes, falling back to the
// built-in list when none are set.
func (c Config) Axes() domain.AxisSet {
	return domain.NewAxisSet(c.StrategicAxes)
}

// ReportOptions returns the formatting options for the report package.
func (c Config) ReportOptions() report.Options {
	return report.Options{Currency: c.Report.Currency, NumberFormat: c.Report.NumberFormat}
}

// SlogLevel parses Level ("debug", "info", "warn", "error"); empty is info.
func (l LogConfig) SlogLevel() (slog.Level, error) {
	if l.Level == "" {
		return slog.LevelInfo, nil
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(l.Level)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

func splitAxes(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ";") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
