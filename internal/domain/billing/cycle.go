// Package billing computes recurring billing dates for subscriptions.
package billing

import (
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Period is the unit of a billing cycle.
type Period string

const (
	PeriodDay     Period = "day"
	PeriodMonth   Period = "month"
	PeriodQuarter Period = "quarter"
	PeriodYear    Period = "year"
)

// maxIterations bounds the correction loops of NextOccurrence so corrupt rows can never spin forever.
const maxIterations = 5000

const daysPerMonth = 30

var (
	ErrInvalidPeriod = errors.New("billing: unknown cycle period")
	ErrInvalidCount  = errors.New("billing: cycle count must be at least 1")
)

// ParsePeriod accepts a period name case-insensitively.
func ParsePeriod(s string) (Period, error) {
	p := Period(strings.ToLower(strings.TrimSpace(s)))
	if !p.Valid() {
		return "", errors.Wrapf(ErrInvalidPeriod, "%q", s)
	}

	return p, nil
}

func (p Period) Valid() bool {
	switch p {
	case PeriodDay, PeriodMonth, PeriodQuarter, PeriodYear:
		return true
	default:
		return false
	}
}

func (p Period) String() string {
	return string(p)
}

// Cycle is a fixed recurrence such as "every 3 months" or "every 1 year".
type Cycle struct {
	Count  int
	Period Period
}

// Validate rejects cycles that cannot be stored on a subscription.
func (c Cycle) Validate() error {
	if c.Count < 1 {
		return errors.Wrapf(ErrInvalidCount, "got %d", c.Count)
	}
	if !c.Period.Valid() {
		return errors.Wrapf(ErrInvalidPeriod, "%q", string(c.Period))
	}

	return nil
}

func (c Cycle) count() int {
	if c.Count < 1 {
		return 1
	}

	return c.Count
}

// stepMonths returns the number of calendar months per step. Unknown periods behave like months.
func (c Cycle) stepMonths() int {
	switch c.Period {
	case PeriodQuarter:
		return 3 * c.count()
	case PeriodYear:
		return 12 * c.count()
	default:
		return c.count()
	}
}

// Occurrence returns the k-th billing date counted from anchor. Every occurrence is computed
// from the anchor itself, so a day-of-month clamped in a short month is restored afterwards
// (Jan 31 monthly yields Feb 28, then Mar 31).
func (c Cycle) Occurrence(anchor time.Time, k int) time.Time {
	if c.Period == PeriodDay {
		return anchor.AddDate(0, 0, k*c.count())
	}

	return AddMonthsClamped(anchor, k*c.stepMonths())
}

// NextOccurrence returns the first billing date strictly after now. If the subscription has not
// started yet the start date itself is returned. Dates are interpreted in now's location.
func (c Cycle) NextOccurrence(start, now time.Time) time.Time {
	anchor := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, now.Location())
	if now.Before(anchor) {
		return anchor
	}

	k := c.estimateSteps(anchor, now)
	for i := 0; i < maxIterations && k > 1 && c.Occurrence(anchor, k-1).After(now); i++ {
		k--
	}
	for i := 0; i < maxIterations && !c.Occurrence(anchor, k).After(now); i++ {
		k++
	}

	return c.Occurrence(anchor, k)
}

// estimateSteps guesses the number of whole steps between anchor and now, plus one.
func (c Cycle) estimateSteps(anchor, now time.Time) int {
	if c.Period == PeriodDay {
		elapsedDays := int(now.Sub(anchor) / (24 * time.Hour))

		return elapsedDays/c.count() + 1
	}

	elapsedMonths := (now.Year()-anchor.Year())*12 + int(now.Month()) - int(anchor.Month())
	if elapsedMonths < 0 {
		elapsedMonths = 0
	}

	return elapsedMonths/c.stepMonths() + 1
}

// MonthlyCost normalises a per-cycle price to a monthly amount, treating a month as 30 days.
func (c Cycle) MonthlyCost(price decimal.Decimal) decimal.Decimal {
	count := decimal.NewFromInt(int64(c.count()))

	switch c.Period {
	case PeriodDay:
		return price.Mul(decimal.NewFromInt(daysPerMonth)).Div(count)
	case PeriodQuarter:
		return price.Div(count.Mul(decimal.NewFromInt(3)))
	case PeriodYear:
		return price.Div(count.Mul(decimal.NewFromInt(12)))
	default:
		return price.Div(count)
	}
}

func (c Cycle) String() string {
	return strconv.Itoa(c.count()) + " " + string(c.Period)
}

// AddMonthsClamped adds months to t, clamping the day to the last day of the resulting month.
func AddMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()
	first := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := DaysInMonth(first.Year(), first.Month()); day > last {
		day = last
	}

	return time.Date(first.Year(), first.Month(), day, t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// DaysInMonth returns the number of days of the given month.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// DateOf truncates t to midnight in its own location.
func DateOf(t time.Time) time.Time {
	year, month, day := t.Date()

	return time.Date(year, month, day, 0, 0, 0, 0, t.Location())
}

// SameDate reports whether a and b fall on the same calendar date, each in its own location.
func SameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()

	return ay == by && am == bm && ad == bd
}
