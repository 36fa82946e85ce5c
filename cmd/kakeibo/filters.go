package main

import (
	"fmt"
	"strings"

	"github.com/yurifrl/kakeibo/pkg/csv"
	"github.com/yurifrl/kakeibo/pkg/ledger"
	"github.com/yurifrl/kakeibo/pkg/models"
)

type filters struct {
	startDate string
	endDate   string
	minAmount int
	maxAmount int
	shop      string
	category  string
}

func (f *filters) toFilterFunc() (csv.FilterFunc[ledger.Entry], error) {
	var start, end models.Date
	var err error
	if f.startDate != "" {
		if start, err = models.ParseDate(f.startDate); err != nil {
			return nil, fmt.Errorf("invalid --start: %w", err)
		}
	}
	if f.endDate != "" {
		if end, err = models.ParseDate(f.endDate); err != nil {
			return nil, fmt.Errorf("invalid --end: %w", err)
		}
	}

	return func(e ledger.Entry) bool {
		if !start.IsZero() && e.Date.Before(start) {
			return false
		}
		if !end.IsZero() && e.Date.After(end) {
			return false
		}
		if f.minAmount != 0 && e.Amount < f.minAmount {
			return false
		}
		if f.maxAmount != 0 && e.Amount > f.maxAmount {
			return false
		}
		if f.shop != "" && !strings.Contains(strings.ToLower(e.Shop), strings.ToLower(f.shop)) {
			return false
		}
		if f.category != "" && !strings.Contains(strings.ToLower(e.Category), strings.ToLower(f.category)) {
			return false
		}
		return true
	}, nil
}
