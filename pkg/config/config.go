// Package config loads the kakeibo configuration: a YAML file listing the
// account ledgers, with KAKEIBO_* environment and flag overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/subosito/gotenv"
	"go.uber.org/multierr"

	"github.com/yurifrl/kakeibo/pkg/ledger"
)

const envPrefix = "KAKEIBO"

// Config is the resolved configuration of a session.
type Config struct {
	// Accounts are the ledger files, in configuration order, with the
	// ledger suffix and the data directory applied.
	Accounts    []string `mapstructure:"accounts"`
	DataDir     string   `mapstructure:"data_dir"`
	CutoffHour  int      `mapstructure:"cutoff_hour"`
	HistoryFile string   `mapstructure:"history_file"`
	LogLevel    string   `mapstructure:"log_level"`
}

// Build reads cfgFile and applies, in increasing priority, a .env file next
// to it, KAKEIBO_* environment variables and the flags that were set.
func Build(cfgFile string, flags *pflag.FlagSet) (*Config, error) {
	if cfgFile == "" {
		return nil, errors.New("no config file given")
	}

	envFile := filepath.Join(filepath.Dir(cfgFile), ".env")
	if err := gotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", envFile, err)
	}

	v := viper.New()
	v.SetConfigFile(cfgFile)
	v.SetConfigType("yaml")
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	v.SetDefault("data_dir", filepath.Dir(cfgFile))
	v.SetDefault("cutoff_hour", 6)
	v.SetDefault("log_level", "info")

	if flags != nil {
		for _, key := range []string{"data_dir", "cutoff_hour", "history_file", "log_level"} {
			if f := flags.Lookup(strings.ReplaceAll(key, "_", "-")); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("failed to bind flag %s: %w", f.Name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", cfgFile, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}

	cfg.resolve()
	return &cfg, nil
}

// Validate reports every problem of the configuration at once.
func (c *Config) Validate() error {
	var errs error
	if len(c.Accounts) == 0 {
		errs = multierr.Append(errs, errors.New("no accounts configured"))
	}
	for i, a := range c.Accounts {
		if strings.TrimSpace(a) == "" {
			errs = multierr.Append(errs, fmt.Errorf("account %d has an empty filename", i+1))
		}
	}
	if c.CutoffHour < 0 || c.CutoffHour > 23 {
		errs = multierr.Append(errs, fmt.Errorf("cutoff_hour %d must be between 0 and 23", c.CutoffHour))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = multierr.Append(errs, fmt.Errorf("unknown log_level %q", c.LogLevel))
	}
	return errs
}

// resolve expands ~ in paths, applies the ledger suffix to account files and
// places relative ones under DataDir.
func (c *Config) resolve() {
	c.DataDir = expandHome(c.DataDir)
	c.HistoryFile = expandHome(c.HistoryFile)
	for i, a := range c.Accounts {
		c.Accounts[i] = AccountFile(c.DataDir, a)
	}
}

// AccountFile returns the ledger file of a configured account entry.
func AccountFile(dataDir, entry string) string {
	filename := expandHome(strings.TrimSpace(entry))
	filename = strings.TrimSuffix(filename, ledger.Ext) + ledger.Ext
	if !filepath.IsAbs(filename) {
		filename = filepath.Join(dataDir, filename)
	}
	return filename
}

func expandHome(path string) string {
	if !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}
