package kakeibo

import (
	"context"
	"io"
	"path/filepath"
	"testing"
	"time"

	"github.com/charmbracelet/log"

	"github.com/yurifrl/kakeibo/pkg/ledger"
	"github.com/yurifrl/kakeibo/pkg/models"
)

var today = models.NewDate(2026, time.October, 14)

func newTestManager(t *testing.T, names ...string) *Manager {
	t.Helper()
	dir := t.TempDir()
	accounts := make([]*ledger.Account, 0, len(names))
	for _, name := range names {
		accounts = append(accounts, ledger.New(filepath.Join(dir, name+ledger.Ext), ""))
	}
	return NewManager(accounts, today, log.New(io.Discard))
}

func intPtr(i int) *int { return &i }

// sliceSource replays records, then reports io.EOF.
type sliceSource struct {
	records []models.Record
}

func (s *sliceSource) Next(context.Context) (models.Record, error) {
	if len(s.records) == 0 {
		return models.Record{}, io.EOF
	}
	rec := s.records[0]
	s.records = s.records[1:]
	return rec, nil
}

type recordingNotifier struct {
	committed []Receipt
	rejected  []error
}

func (n *recordingNotifier) Committed(r Receipt) { n.committed = append(n.committed, r) }

func (n *recordingNotifier) Rejected(_ models.Record, err error) {
	n.rejected = append(n.rejected, err)
}
