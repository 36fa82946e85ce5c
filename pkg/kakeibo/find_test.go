package kakeibo

import (
	"errors"
	"testing"

	"github.com/yurifrl/kakeibo/pkg/models"
)

func TestFindAccount(t *testing.T) {
	tests := []struct {
		name     string
		accounts []string
		prefix   string
		want     string
		kind     models.Kind
	}{
		{"empty prefix", []string{"food", "rent"}, "", "", models.NotFound},
		{"empty prefix without accounts", nil, "", "", models.NotFound},
		{"unique prefix", []string{"food", "rent"}, "fo", "food", models.KindUnknown},
		{"exact name", []string{"food", "rent"}, "rent", "rent", models.KindUnknown},
		{"ambiguous prefix", []string{"food", "food2"}, "food", "", models.NotUnique},
		{"no match", []string{"food", "rent"}, "car", "", models.NotFound},
		{"case sensitive", []string{"food", "rent"}, "Fo", "", models.NotFound},
		{"metacharacters are literal", []string{"food", "rent"}, ".*", "", models.NotFound},
		{"metacharacters in names", []string{"c++", "cash"}, "c+", "c++", models.KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newTestManager(t, tt.accounts...)
			got, err := m.FindAccount(tt.prefix)
			if tt.kind != models.KindUnknown {
				if models.KindOf(err) != tt.kind {
					t.Fatalf("expected %s, got %v", tt.kind, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FindAccount(%q) failed: %v", tt.prefix, err)
			}
			if got.Name() != tt.want {
				t.Errorf("FindAccount(%q) = %q, want %q", tt.prefix, got.Name(), tt.want)
			}
		})
	}
}

func TestFindAccountSentinels(t *testing.T) {
	m := newTestManager(t, "food", "food2")

	if _, err := m.FindAccount("food"); !errors.Is(err, models.ErrNotUnique) {
		t.Errorf("expected ErrNotUnique, got %v", err)
	}
	if _, err := m.FindAccount("x"); !errors.Is(err, models.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if _, err := m.FindAccount("x"); err == nil || err.Error() != "not found: x" {
		t.Errorf("unexpected message: %v", err)
	}
}
