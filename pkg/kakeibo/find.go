package kakeibo

import (
	"strings"

	"github.com/yurifrl/kakeibo/pkg/ledger"
	"github.com/yurifrl/kakeibo/pkg/models"
)

// FindAccount returns the only account whose name starts with prefix. The
// match is literal and case-sensitive.
func (m *Manager) FindAccount(prefix string) (*ledger.Account, error) {
	if prefix == "" {
		return nil, &models.Error{Kind: models.NotFound, Name: "(empty)"}
	}

	var candidates []*ledger.Account
	for _, a := range m.accounts {
		if strings.HasPrefix(a.Name(), prefix) {
			candidates = append(candidates, a)
		}
	}

	switch len(candidates) {
	case 0:
		return nil, &models.Error{Kind: models.NotFound, Name: prefix}
	case 1:
		return candidates[0], nil
	default:
		return nil, &models.Error{Kind: models.NotUnique, Name: prefix}
	}
}
