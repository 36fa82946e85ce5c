package ledger

import (
	"strconv"

	"github.com/yurifrl/kakeibo/pkg/models"
)

// Entry is a transaction together with the date it is filed under.
type Entry struct {
	Date models.Date
	models.Transaction
}

// Entries returns every transaction of the account, oldest date first and
// in insertion order within a date.
func (a *Account) Entries() []Entry {
	var entries []Entry
	for _, d := range a.Dates() {
		for _, t := range a.transactions[d] {
			entries = append(entries, Entry{Date: d, Transaction: t})
		}
	}
	return entries
}

// EntryHeader names the columns of Entry.CSV.
var EntryHeader = []string{"Date", "Title", "Shop", "Category", "Amount"}

func (e Entry) CSV() []string {
	return []string{e.Date.String(), e.Title, e.Shop, e.Category, strconv.Itoa(e.Amount)}
}
