// Package reader prompts for ledger entries on an interactive terminal.
package reader

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/peterh/liner"

	"github.com/yurifrl/kakeibo/pkg/models"
)

// TotalMarker flags an amount answer as a running total.
const TotalMarker = "="

// Prompter is the line editor the reader talks to. *liner.State satisfies it.
type Prompter interface {
	Prompt(prompt string) (string, error)
	AppendHistory(item string)
}

// Reader asks for one entry at a time: an amount, or a total prefixed by
// TotalMarker, then the account and, for transactions, title, shop and
// category. An empty amount ends the input.
type Reader struct {
	logger *log.Logger
	line   Prompter
}

func New(line Prompter, logger *log.Logger) *Reader {
	return &Reader{
		logger: logger,
		line:   line,
	}
}

// Next returns the next entry, or io.EOF once the user is done. An aborted
// prompt discards the entry in progress and starts over.
func (r *Reader) Next(ctx context.Context) (models.Record, error) {
	for {
		if err := ctx.Err(); err != nil {
			return models.Record{}, err
		}

		rec, err := r.read()
		switch {
		case errors.Is(err, liner.ErrPromptAborted):
			r.logger.Debug("prompt aborted, starting over")
			continue
		case errors.Is(err, errInvalidAmount):
			r.logger.Warn("invalid amount", "error", err)
			continue
		}
		return rec, err
	}
}

var errInvalidAmount = errors.New("amount must be an integer")

func (r *Reader) read() (models.Record, error) {
	var rec models.Record

	amount, err := r.line.Prompt("amount: ")
	if err != nil {
		return rec, err
	}
	amount = strings.TrimSpace(amount)
	if amount == "" {
		return rec, io.EOF
	}

	isTotal := strings.HasPrefix(amount, TotalMarker)
	value, err := ParseAmount(strings.TrimPrefix(amount, TotalMarker))
	if err != nil {
		return rec, err
	}

	if rec.Account, err = r.ask("account: ", true); err != nil {
		return rec, err
	}

	if isTotal {
		rec.Total = &value
		return rec, nil
	}

	rec.Amount = value
	if rec.Title, err = r.ask("title: ", true); err != nil {
		return rec, err
	}
	if rec.Shop, err = r.ask("shop: ", true); err != nil {
		return rec, err
	}
	if rec.Category, err = r.ask("category: ", false); err != nil {
		return rec, err
	}
	return rec, nil
}

// ask prompts for one field. An EOF on a field means an empty answer.
func (r *Reader) ask(prompt string, history bool) (string, error) {
	answer, err := r.line.Prompt(prompt)
	if errors.Is(err, io.EOF) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	answer = strings.TrimSpace(answer)
	if history && answer != "" {
		r.line.AppendHistory(answer)
	}
	return answer, nil
}

// ParseAmount parses a signed integer amount. Digit group separators
// (commas, underscores and spaces) are ignored.
func ParseAmount(s string) (int, error) {
	cleaned := strings.NewReplacer(",", "", "_", "", " ", "").Replace(s)
	v, err := strconv.Atoi(cleaned)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", errInvalidAmount, s)
	}
	return v, nil
}
