// Package ledger holds the per-account books: running totals and itemized
// transactions indexed by date, each account backed by one YAML file.
package ledger

import (
	"path/filepath"
	"slices"
	"strings"

	"github.com/yurifrl/kakeibo/pkg/models"
	"github.com/yurifrl/kakeibo/pkg/storage"
)

// Ext is the suffix of ledger files.
const Ext = ".yaml"

// Account is one named ledger. Totals and transactions are never nil.
type Account struct {
	filename     string
	name         string
	totals       map[models.Date]int
	transactions map[models.Date][]models.Transaction
}

// accountFile is the on-disk layout of an account. Keys are dates
// formatted with models.DateFormat.
type accountFile struct {
	Name         string                          `yaml:"name"`
	Totals       map[string]int                  `yaml:"totals"`
	Transactions map[string][]models.Transaction `yaml:"transactions"`
}

// New returns an empty account stored at filename. An empty name is derived
// from the filename.
func New(filename, name string) *Account {
	if name == "" {
		name = NameFromFilename(filename)
	}
	return &Account{
		filename:     filename,
		name:         name,
		totals:       make(map[models.Date]int),
		transactions: make(map[models.Date][]models.Transaction),
	}
}

// Load reads the account stored at filename. Absent fields default to the
// derived name and empty books.
func Load(filename string) (*Account, error) {
	var f accountFile
	if err := storage.Load(filename, &f); err != nil {
		return nil, err
	}

	a := New(filename, f.Name)
	for key, total := range f.Totals {
		date, err := models.ParseDate(key)
		if err != nil {
			return nil, &models.Error{Kind: models.ParseFailure, Name: filename, Err: err}
		}
		a.totals[date] = total
	}
	for key, txs := range f.Transactions {
		date, err := models.ParseDate(key)
		if err != nil {
			return nil, &models.Error{Kind: models.ParseFailure, Name: filename, Err: err}
		}
		a.transactions[date] = append(a.transactions[date], txs...)
	}
	return a, nil
}

// NameFromFilename strips the directory and the ledger suffix from filename.
func NameFromFilename(filename string) string {
	return strings.TrimSuffix(filepath.Base(filename), Ext)
}

func (a *Account) Filename() string { return a.filename }
func (a *Account) Name() string     { return a.name }

// SetTotal records total for date, replacing any previous one.
func (a *Account) SetTotal(date models.Date, total int) {
	a.totals[date] = total
}

// Total returns the total recorded for date.
func (a *Account) Total(date models.Date) (int, bool) {
	total, ok := a.totals[date]
	return total, ok
}

// AddTransaction appends t to the transactions of date.
func (a *Account) AddTransaction(date models.Date, t models.Transaction) {
	a.transactions[date] = append(a.transactions[date], t)
}

// Transactions returns a copy of the transactions of date in insertion order.
func (a *Account) Transactions(date models.Date) []models.Transaction {
	return slices.Clone(a.transactions[date])
}

// Dates returns every date holding a total or transactions, oldest first.
func (a *Account) Dates() []models.Date {
	seen := make(map[models.Date]bool, len(a.totals)+len(a.transactions))
	for d := range a.totals {
		seen[d] = true
	}
	for d := range a.transactions {
		seen[d] = true
	}

	dates := make([]models.Date, 0, len(seen))
	for d := range seen {
		dates = append(dates, d)
	}
	slices.SortFunc(dates, func(x, y models.Date) int {
		switch {
		case x.Before(y):
			return -1
		case x.After(y):
			return 1
		}
		return 0
	})
	return dates
}

// Save overwrites the account file with the in-memory books.
func (a *Account) Save() error {
	f := accountFile{
		Name:         a.name,
		Totals:       make(map[string]int, len(a.totals)),
		Transactions: make(map[string][]models.Transaction, len(a.transactions)),
	}
	for d, total := range a.totals {
		f.Totals[d.String()] = total
	}
	for d, txs := range a.transactions {
		f.Transactions[d.String()] = txs
	}
	return storage.Save(f, a.filename)
}
