package kakeibo

import (
	"strconv"
	"strings"
	"time"

	"github.com/yurifrl/kakeibo/pkg/models"
)

// DefaultCutoffHour is the hour before which the accounting day is still the
// previous calendar day.
const DefaultCutoffHour = 6

// AccountingDay returns the day entries made at now belong to.
func AccountingDay(now time.Time, cutoffHour int) models.Date {
	today := models.DateOf(now)
	if now.Hour() < cutoffHour {
		return today.Add(-1)
	}
	return today
}

// ResolveDate turns user input into a date: a full date is used as is, a
// month and day get the year of today, anything else falls back to today.
func (m *Manager) ResolveDate(input string) models.Date {
	input = strings.TrimSpace(input)
	if input == "" {
		return m.today
	}
	if d, err := models.ParseDate(input); err == nil {
		return d
	}
	if d, err := models.ParseDate(strconv.Itoa(m.today.Year()) + "-" + input); err == nil {
		return d
	}
	m.logger.Debug("unparsable date, using today", "input", input, "today", m.today)
	return m.today
}
