// Package kakeibo routes typed entries into the right account ledger: it
// resolves dates and account prefixes and drives an input session.
package kakeibo

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"go.uber.org/multierr"

	"github.com/yurifrl/kakeibo/pkg/ledger"
	"github.com/yurifrl/kakeibo/pkg/models"
)

// Source yields raw records one at a time. It returns io.EOF when there is
// no more input.
type Source interface {
	Next(ctx context.Context) (models.Record, error)
}

// Notifier is told about every record of a session.
type Notifier interface {
	Committed(r Receipt)
	Rejected(rec models.Record, err error)
}

// Receipt describes a committed record.
type Receipt struct {
	Account     string
	Date        models.Date
	Total       *int
	Transaction *models.Transaction
}

// Manager owns the configured accounts, in configuration order, and the
// accounting day fixed at session start.
type Manager struct {
	logger   *log.Logger
	accounts []*ledger.Account
	today    models.Date
}

// NewManager returns a manager over already loaded accounts.
func NewManager(accounts []*ledger.Account, today models.Date, logger *log.Logger) *Manager {
	return &Manager{
		logger:   logger,
		accounts: accounts,
		today:    today,
	}
}

// Open loads every account file and returns a manager over them. Any file
// that cannot be loaded fails the whole call.
func Open(filenames []string, today models.Date, logger *log.Logger) (*Manager, error) {
	var (
		accounts []*ledger.Account
		errs     error
	)
	for _, filename := range filenames {
		a, err := ledger.Load(filename)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		logger.Debug("loaded account", "account", a.Name(), "file", filename)
		accounts = append(accounts, a)
	}
	if errs != nil {
		return nil, fmt.Errorf("failed to load accounts: %w", errs)
	}
	return NewManager(accounts, today, logger), nil
}

// Today returns the accounting day of the session.
func (m *Manager) Today() models.Date { return m.today }

// Accounts returns the accounts in configuration order.
func (m *Manager) Accounts() []*ledger.Account { return m.accounts }

// Put commits one record. The date and the account are resolved before any
// account is touched, so a failing record leaves every ledger unchanged.
func (m *Manager) Put(rec models.Record) (Receipt, error) {
	date := m.ResolveDate(rec.Date)
	account, err := m.FindAccount(rec.Account)
	if err != nil {
		return Receipt{}, err
	}

	r := Receipt{Account: account.Name(), Date: date}
	if rec.IsTotal() {
		total := *rec.Total
		account.SetTotal(date, total)
		r.Total = &total
	} else {
		t := rec.Transaction()
		account.AddTransaction(date, t)
		r.Transaction = &t
	}

	m.logger.Debug("committed record", "account", r.Account, "date", date, "total", rec.IsTotal())
	return r, nil
}

// Run feeds every record of src to Put until src is exhausted. A rejected
// record is reported and the session goes on.
func (m *Manager) Run(ctx context.Context, src Source, n Notifier) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		rec, err := src.Next(ctx)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("failed to read record: %w", err)
		}

		r, err := m.Put(rec)
		if err != nil {
			m.logger.Warn("record rejected", "account", rec.Account, "error", err)
			n.Rejected(rec, err)
			continue
		}
		n.Committed(r)
	}
}

// Save writes every account. A failing account does not stop the others;
// all failures are returned together.
func (m *Manager) Save() error {
	var errs error
	for _, a := range m.accounts {
		if err := a.Save(); err != nil {
			m.logger.Error("failed to save account", "account", a.Name(), "file", a.Filename(), "error", err)
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", a.Name(), err))
			continue
		}
		m.logger.Debug("saved account", "account", a.Name(), "file", a.Filename())
	}
	return errs
}
