package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/spf13/pflag"
	"go.uber.org/multierr"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "kakeibo.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to create test file: %v", err)
	}
	return path
}

func TestBuildDefaults(t *testing.T) {
	path := writeConfig(t, "accounts:\n  - food\n  - rent.yaml\n  - /abs/card\n")
	dir := filepath.Dir(path)

	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	want := []string{
		filepath.Join(dir, "food.yaml"),
		filepath.Join(dir, "rent.yaml"),
		"/abs/card.yaml",
	}
	if !reflect.DeepEqual(cfg.Accounts, want) {
		t.Errorf("expected accounts %q, got %q", want, cfg.Accounts)
	}
	if cfg.CutoffHour != 6 {
		t.Errorf("expected default cutoff 6, got %d", cfg.CutoffHour)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("expected default log level info, got %q", cfg.LogLevel)
	}
}

func TestBuildOverrides(t *testing.T) {
	path := writeConfig(t, "accounts: [food]\ncutoff_hour: 4\ndata_dir: /ledgers\n")

	t.Setenv("KAKEIBO_CUTOFF_HOUR", "5")
	cfg, err := Build(path, nil)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.CutoffHour != 5 {
		t.Errorf("expected env cutoff 5, got %d", cfg.CutoffHour)
	}
	if cfg.Accounts[0] != "/ledgers/food.yaml" {
		t.Errorf("expected account under data dir, got %q", cfg.Accounts[0])
	}

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.Int("cutoff-hour", 0, "")
	flags.String("log-level", "", "")
	if err := flags.Parse([]string{"--cutoff-hour=3", "--log-level=debug"}); err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cfg, err = Build(path, flags)
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if cfg.CutoffHour != 3 || cfg.LogLevel != "debug" {
		t.Errorf("expected flag overrides, got cutoff=%d level=%q", cfg.CutoffHour, cfg.LogLevel)
	}
}

func TestBuildInvalid(t *testing.T) {
	path := writeConfig(t, "accounts: []\ncutoff_hour: 30\nlog_level: loud\n")

	_, err := Build(path, nil)
	if err == nil {
		t.Fatal("expected an error")
	}

	cfg := Config{CutoffHour: 30, LogLevel: "loud"}
	if got := len(multierr.Errors(cfg.Validate())); got != 3 {
		t.Errorf("expected 3 validation errors, got %d", got)
	}
}

func TestBuildMissingFile(t *testing.T) {
	if _, err := Build(filepath.Join(t.TempDir(), "nope.yaml"), nil); err == nil {
		t.Error("expected an error for a missing config file")
	}
	if _, err := Build("", nil); err == nil {
		t.Error("expected an error for an empty config path")
	}
}

func TestAccountFile(t *testing.T) {
	tests := []struct {
		entry string
		want  string
	}{
		{"food", "/data/food.yaml"},
		{"food.yaml", "/data/food.yaml"},
		{"card.yml", "/data/card.yml.yaml"},
		{"sub/wallet", "/data/sub/wallet.yaml"},
		{"/elsewhere/rent", "/elsewhere/rent.yaml"},
	}

	for _, tt := range tests {
		if got := AccountFile("/data", tt.entry); got != tt.want {
			t.Errorf("AccountFile(%q) = %q, want %q", tt.entry, got, tt.want)
		}
	}
}
