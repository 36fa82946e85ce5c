package csv

import (
	"testing"
	"time"

	"github.com/yurifrl/kakeibo/pkg/ledger"
	"github.com/yurifrl/kakeibo/pkg/models"
)

func TestCreate(t *testing.T) {
	a := ledger.New("food.yaml", "")
	day := models.NewDate(2026, time.October, 14)
	a.AddTransaction(day, models.NewTransaction(-450, "lunch, with Ken", "cafe", "meal"))
	a.AddTransaction(day.Add(-1), models.NewTransaction(-120, "coffee", "", ""))
	a.SetTotal(day, 1000)

	got, err := Create(ledger.EntryHeader, a.Entries(), nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	want := "Date,Title,Shop,Category,Amount\n" +
		"2026-10-13,coffee,,,-120\n" +
		"2026-10-14,\"lunch, with Ken\",cafe,meal,-450\n"
	if string(got) != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}

func TestCreateFiltered(t *testing.T) {
	a := ledger.New("food.yaml", "")
	day := models.NewDate(2026, time.October, 14)
	a.AddTransaction(day, models.NewTransaction(-450, "lunch", "cafe", "meal"))
	a.AddTransaction(day, models.NewTransaction(3000, "refund", "", ""))

	got, err := Create(ledger.EntryHeader, a.Entries(), func(e ledger.Entry) bool { return e.Amount > 0 })
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	want := "Date,Title,Shop,Category,Amount\n2026-10-14,refund,,,3000\n"
	if string(got) != want {
		t.Errorf("Expected:\n%s\nGot:\n%s", want, got)
	}
}
