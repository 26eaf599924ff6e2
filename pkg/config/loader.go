package config

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// Initialize loads sit.yaml from configDir, expands environment variables,
// merges the file over the built-in defaults and validates the result. A
// missing file yields the pure defaults.
func Initialize(configDir string) (*Config, error) {
	cfg, err := load(configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	slog.Info("configuration initialized",
		slog.String("config_dir", configDir),
		slog.Bool("redis", cfg.Redis.URL != ""),
		slog.Bool("broker", cfg.Broker.URL != ""))
	return cfg, nil
}

func load(configDir string) (*Config, error) {
	cfg := defaultConfig()

	path := filepath.Join(configDir, "sit.yaml")
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	var fileCfg Config
	if err := yaml.Unmarshal(ExpandEnv(data), &fileCfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	// File values override defaults; unset fields keep them.
	if err := mergo.Merge(cfg, &fileCfg, mergo.WithOverride); err != nil {
		return nil, fmt.Errorf("failed to merge configuration: %w", err)
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.Upstream.PanelURL == "" {
		return invalid("upstream.panel_url", "required")
	}
	if c.Upstream.AWSURL == "" {
		return invalid("upstream.aws_url", "required")
	}
	if c.Collector.TrainPeriod <= 0 {
		return invalid("collector.train_period", "must be positive")
	}
	if c.Collector.TimetablePeriod <= 0 {
		return invalid("collector.timetable_period", "must be positive")
	}
	if c.Collector.GoneThreshold < 1 {
		return invalid("collector.gone_threshold", "must be at least 1")
	}
	if c.Retention.Days < 1 {
		return invalid("retention.days", "must be at least 1")
	}
	if c.Retention.BatchSize < 1 {
		return invalid("retention.batch_size", "must be at least 1")
	}
	if c.Listen.HTTP == "" {
		return invalid("listen.http", "required")
	}
	if c.Static.Dir == "" {
		return invalid("static.dir", "required")
	}
	return nil
}
