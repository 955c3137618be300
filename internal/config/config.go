package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kimurataturyu-sys/workout-log/internal/constants"
)

type Config struct {
	Storage     StorageConfig     `yaml:"storage"`
	Session     SessionConfig     `yaml:"session"`
	Progression ProgressionConfig `yaml:"progression"`
	Swap        SwapConfig        `yaml:"swap"`
	Debug       bool              `yaml:"debug"`
}

type StorageConfig struct {
	Backend string `yaml:"backend"` // sqlite | json
	Path    string `yaml:"path"`
}

type SessionConfig struct {
	Policy string `yaml:"policy"` // strict | replace
	RepMin int    `yaml:"rep_min"`
	RepMax int    `yaml:"rep_max"`
}

type ProgressionConfig struct {
	WeightIncrement   float64 `yaml:"weight_increment"`
	EffortMin         int     `yaml:"effort_min"`
	EffortMax         int     `yaml:"effort_max"`
	RegressionRepDrop int     `yaml:"regression_rep_drop"`
	CeilingMinSets    int     `yaml:"ceiling_min_sets"`
}

type SwapConfig struct {
	HistoryCap int `yaml:"history_cap"`
}

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Storage: StorageConfig{
			Backend: constants.BackendSQLite,
			Path:    constants.DefaultStorePath,
		},
		Session: SessionConfig{
			Policy: constants.SessionPolicyStrict,
			RepMin: constants.DefaultRepMin,
			RepMax: constants.DefaultRepMax,
		},
		Progression: ProgressionConfig{
			WeightIncrement:   constants.DefaultWeightIncrement,
			EffortMin:         constants.EffortBandMin,
			EffortMax:         constants.EffortBandMax,
			RegressionRepDrop: constants.RegressionRepDrop,
			CeilingMinSets:    constants.CeilingMinSets,
		},
		Swap: SwapConfig{
			HistoryCap: constants.SwapHistoryCap,
		},
	}
}

// Load reads config from a YAML file layered over the defaults, then applies
// environment variable overrides. A missing file is not an error.
// Env vars use the prefix LIFTLOG_:
//
//	LIFTLOG_STORAGE_BACKEND, LIFTLOG_STORAGE_PATH,
//	LIFTLOG_SESSION_POLICY, LIFTLOG_SESSION_REP_MIN, LIFTLOG_SESSION_REP_MAX,
//	LIFTLOG_WEIGHT_INCREMENT, LIFTLOG_SWAP_HISTORY_CAP, LIFTLOG_DEBUG
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(ExpandPath(path))
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config file: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	applyEnvOverrides(cfg)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation: %w", err)
	}

	return cfg, nil
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("LIFTLOG_STORAGE_BACKEND"); v != "" {
		cfg.Storage.Backend = v
	}
	if v := os.Getenv("LIFTLOG_STORAGE_PATH"); v != "" {
		cfg.Storage.Path = v
	}
	if v := os.Getenv("LIFTLOG_SESSION_POLICY"); v != "" {
		cfg.Session.Policy = v
	}
	if v := os.Getenv("LIFTLOG_SESSION_REP_MIN"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.RepMin = n
		}
	}
	if v := os.Getenv("LIFTLOG_SESSION_REP_MAX"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Session.RepMax = n
		}
	}
	if v := os.Getenv("LIFTLOG_WEIGHT_INCREMENT"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Progression.WeightIncrement = f
		}
	}
	if v := os.Getenv("LIFTLOG_SWAP_HISTORY_CAP"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Swap.HistoryCap = n
		}
	}
	if v := os.Getenv("LIFTLOG_DEBUG"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.Debug = b
		}
	}
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	switch c.Storage.Backend {
	case constants.BackendSQLite, constants.BackendJSON:
	default:
		return fmt.Errorf("storage.backend must be %q or %q, got %q", constants.BackendSQLite, constants.BackendJSON, c.Storage.Backend)
	}
	if c.Storage.Path == "" {
		return fmt.Errorf("storage.path is required")
	}
	switch c.Session.Policy {
	case constants.SessionPolicyStrict, constants.SessionPolicyReplace:
	default:
		return fmt.Errorf("session.policy must be %q or %q, got %q", constants.SessionPolicyStrict, constants.SessionPolicyReplace, c.Session.Policy)
	}
	if c.Session.RepMin < 1 || c.Session.RepMin >= c.Session.RepMax {
		return fmt.Errorf("session rep range must satisfy 1 <= rep_min < rep_max, got %d-%d", c.Session.RepMin, c.Session.RepMax)
	}
	if math.IsNaN(c.Progression.WeightIncrement) || math.IsInf(c.Progression.WeightIncrement, 0) || c.Progression.WeightIncrement <= 0 {
		return fmt.Errorf("progression.weight_increment must be positive")
	}
	if c.Progression.EffortMin > c.Progression.EffortMax {
		return fmt.Errorf("progression effort band is empty: %d-%d", c.Progression.EffortMin, c.Progression.EffortMax)
	}
	if c.Progression.RegressionRepDrop < 1 {
		return fmt.Errorf("progression.regression_rep_drop must be at least 1")
	}
	if c.Progression.CeilingMinSets < 1 {
		return fmt.Errorf("progression.ceiling_min_sets must be at least 1")
	}
	if c.Swap.HistoryCap < 1 {
		return fmt.Errorf("swap.history_cap must be at least 1")
	}
	return nil
}

// StorePath returns the storage path with "~" expanded
func (c *Config) StorePath() string {
	return ExpandPath(c.Storage.Path)
}

// ExpandPath replaces a leading "~" with the user's home directory
func ExpandPath(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}
