package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"github.com/yurifrl/kakeibo/pkg/kakeibo"
	"github.com/yurifrl/kakeibo/pkg/models"
)

// printer confirms every entry of a session on the terminal.
type printer struct {
	out      io.Writer
	total    lipgloss.Style
	added    lipgloss.Style
	rejected lipgloss.Style
}

func newPrinter(out io.Writer) *printer {
	return &printer{
		out:      out,
		total:    lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // blue
		added:    lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // green
		rejected: lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // red
	}
}

func (p *printer) Committed(r kakeibo.Receipt) {
	if r.Total != nil {
		line := fmt.Sprintf("= %s | %-16s | total %s", r.Date, r.Account, humanize.Comma(int64(*r.Total)))
		fmt.Fprintln(p.out, p.total.Render(line))
		return
	}
	line := fmt.Sprintf("+ %s | %-16s | %s | %s", r.Date, r.Account, humanize.Comma(int64(r.Transaction.Amount)), describe(*r.Transaction))
	fmt.Fprintln(p.out, p.added.Render(line))
}

func (p *printer) Rejected(_ models.Record, err error) {
	fmt.Fprintln(p.out, p.rejected.Render("! "+err.Error()))
}

func describe(t models.Transaction) string {
	var parts []string
	if t.Title != "" {
		parts = append(parts, t.Title)
	}
	if t.Shop != "" {
		parts = append(parts, "@ "+t.Shop)
	}
	if t.Category != "" {
		parts = append(parts, "["+t.Category+"]")
	}
	return strings.Join(parts, " ")
}
