package main

import (
	"bytes"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/yurifrl/kakeibo/pkg/kakeibo"
	"github.com/yurifrl/kakeibo/pkg/models"
)

func TestPrinter(t *testing.T) {
	var buf bytes.Buffer
	p := newPrinter(&buf)
	day := models.NewDate(2026, time.October, 14)

	total := 1234567
	p.Committed(kakeibo.Receipt{Account: "food", Date: day, Total: &total})
	tx := models.NewTransaction(-4500, "lunch", "cafe", "meal")
	p.Committed(kakeibo.Receipt{Account: "food", Date: day, Transaction: &tx})
	p.Rejected(models.Record{Account: "x"}, errors.New("not found: x"))

	out := buf.String()
	for _, want := range []string{"2026-10-14", "total 1,234,567", "-4,500", "lunch @ cafe [meal]", "! not found: x"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got:\n%s", want, out)
		}
	}
}
