package config

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"dario.cat/mergo"
	"gopkg.in/yaml.v3"
)

// ForgewatchYAMLConfig represents the complete forgewatch.yaml file
// structure. Every section is optional; omitted sections fall back to
// built-in defaults.
type ForgewatchYAMLConfig struct {
	Poller     *PollerConfig     `yaml:"poller"`
	Detection  *DetectionConfig  `yaml:"detection"`
	Queue      *QueueConfig      `yaml:"queue"`
	Redis      *RedisConfig      `yaml:"redis"`
	Server     *ServerConfig     `yaml:"server"`
	Summarizer *SummarizerConfig `yaml:"summarizer"`
	Retention  *RetentionConfig  `yaml:"retention"`
}

// Initialize loads, validates, and returns ready-to-use configuration.
// This is the primary entry point for configuration loading.
//
// Steps performed:
//  1. Load forgewatch.yaml from configDir (missing file is fine)
//  2. Expand environment variables
//  3. Merge user-provided sections over built-in defaults
//  4. Validate all configuration
func Initialize(ctx context.Context, configDir string) (*Config, error) {
	log := slog.With("config_dir", configDir)
	log.Info("Initializing configuration")

	cfg, err := load(ctx, configDir)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if err := validate(cfg); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	log.Info("Configuration initialized successfully",
		"workers", cfg.Queue.WorkerCount,
		"batch_size", cfg.Queue.BatchSize,
		"report_floor", cfg.Detection.ReportFloor,
		"summarizer_enabled", cfg.Summarizer.Enabled)

	return cfg, nil
}

// load is the internal loader (not exported)
func load(_ context.Context, configDir string) (*Config, error) {
	loader := &configLoader{configDir: configDir}

	userCfg, err := loader.loadForgewatchYAML()
	if err != nil {
		return nil, NewLoadError("forgewatch.yaml", err)
	}

	cfg := &Config{
		configDir:  configDir,
		Poller:     DefaultPollerConfig(),
		Detection:  DefaultDetectionConfig(),
		Queue:      DefaultQueueConfig(),
		Redis:      DefaultRedisConfig(),
		Server:     DefaultServerConfig(),
		Summarizer: DefaultSummarizerConfig(),
		Retention:  DefaultRetentionConfig(),
	}

	// Merge user-provided sections into defaults. Non-zero user values
	// override; unset values keep the defaults.
	merge := func(name string, dst, src any) error {
		if err := mergo.Merge(dst, src, mergo.WithOverride); err != nil {
			return fmt.Errorf("failed to merge %s config: %w", name, err)
		}
		return nil
	}
	if userCfg.Poller != nil {
		if err := merge("poller", cfg.Poller, userCfg.Poller); err != nil {
			return nil, err
		}
	}
	if userCfg.Detection != nil {
		if err := merge("detection", cfg.Detection, userCfg.Detection); err != nil {
			return nil, err
		}
	}
	if userCfg.Queue != nil {
		if err := merge("queue", cfg.Queue, userCfg.Queue); err != nil {
			return nil, err
		}
	}
	if userCfg.Redis != nil {
		if err := merge("redis", cfg.Redis, userCfg.Redis); err != nil {
			return nil, err
		}
	}
	if userCfg.Server != nil {
		if err := merge("server", cfg.Server, userCfg.Server); err != nil {
			return nil, err
		}
	}
	if userCfg.Summarizer != nil {
		if err := merge("summarizer", cfg.Summarizer, userCfg.Summarizer); err != nil {
			return nil, err
		}
		// Enabled is a bare bool: mergo cannot distinguish an explicit
		// false from unset, so copy it directly.
		cfg.Summarizer.Enabled = userCfg.Summarizer.Enabled
	}
	if userCfg.Retention != nil {
		if err := merge("retention", cfg.Retention, userCfg.Retention); err != nil {
			return nil, err
		}
	}

	return cfg, nil
}

// validate performs comprehensive validation on loaded configuration
func validate(cfg *Config) error {
	validator := NewValidator(cfg)
	return validator.ValidateAll()
}

type configLoader struct {
	configDir string
}

func (l *configLoader) loadYAML(filename string, target any) error {
	path := filepath.Join(l.configDir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", ErrConfigNotFound, path)
		}
		return err
	}

	// Expand environment variables using {{.VAR}} template syntax.
	data = ExpandEnv(data)

	if err := yaml.Unmarshal(data, target); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidYAML, err)
	}

	return nil
}

func (l *configLoader) loadForgewatchYAML() (*ForgewatchYAMLConfig, error) {
	var config ForgewatchYAMLConfig

	err := l.loadYAML("forgewatch.yaml", &config)
	if err != nil {
		// A missing config file means all-defaults, which is a valid
		// deployment (everything important can come from env).
		if errors.Is(err, ErrConfigNotFound) {
			slog.Info("No forgewatch.yaml found, using built-in defaults")
			return &config, nil
		}
		return nil, err
	}

	return &config, nil
}
