// Package storage reads and writes ledger blobs as YAML files. Each call
// opens, fully reads or writes, and closes its file.
package storage

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/yurifrl/kakeibo/pkg/models"
)

// Load decodes the YAML file at filename into v. A missing or malformed
// file is a ParseFailure; an empty file leaves v untouched.
func Load(filename string, v any) error {
	if filename == "" {
		return models.ErrInvalidFilename
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return &models.Error{Kind: models.ParseFailure, Name: filename, Err: err}
	}

	if err := yaml.Unmarshal(data, v); err != nil {
		return &models.Error{Kind: models.ParseFailure, Name: filename, Err: err}
	}
	return nil
}

// Save encodes v as YAML and overwrites filename with it. The write is not
// atomic: a crash mid-write can leave a truncated file behind.
func Save(v any, filename string) error {
	if filename == "" {
		return models.ErrInvalidFilename
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filename, err)
	}

	if err := os.WriteFile(filename, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filename, err)
	}
	return nil
}
