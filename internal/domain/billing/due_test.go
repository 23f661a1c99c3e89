package billing

import (
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type item struct {
	name  string
	start time.Time
	cycle Cycle
}

func (i item) BillingStart() time.Time { return i.start }
func (i item) BillingCycle() Cycle     { return i.cycle }

func names(items []item) []string {
	out := make([]string, 0, len(items))
	for _, it := range items {
		out = append(out, it.name)
	}

	return out
}

func TestFindDue(t *testing.T) {
	monthly := Cycle{Count: 1, Period: PeriodMonth}
	now := time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)

	items := []item{
		{name: "netflix", start: date(2025, time.January, 1), cycle: monthly},
		{name: "spotify", start: date(2025, time.January, 2), cycle: monthly},
		{name: "gym", start: date(2024, time.April, 1), cycle: Cycle{Count: 1, Period: PeriodYear}},
		{name: "cloud", start: date(2025, time.January, 4), cycle: monthly},
		{name: "starts-today", start: date(2025, time.April, 1), cycle: monthly},
		{name: "future", start: date(2025, time.April, 2), cycle: monthly},
	}

	tests := []struct {
		daysAhead int
		want      []string
	}{
		{daysAhead: 0, want: []string{"netflix", "gym", "starts-today"}},
		{daysAhead: 1, want: []string{"spotify", "future"}},
		{daysAhead: 3, want: []string{"cloud"}},
		{daysAhead: 5, want: []string{}},
		{daysAhead: -1, want: []string{}},
	}

	for _, tt := range tests {
		t.Run("days_ahead_"+strconv.Itoa(tt.daysAhead), func(t *testing.T) {
			assert.Equal(t, tt.want, names(FindDue(items, tt.daysAhead, now)))
		})
	}
}

func TestFindDue_Idempotent(t *testing.T) {
	now := time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC)
	items := []item{
		{name: "a", start: date(2025, time.January, 2), cycle: Cycle{Count: 1, Period: PeriodMonth}},
		{name: "b", start: date(2025, time.March, 31), cycle: Cycle{Count: 2, Period: PeriodDay}},
		{name: "c", start: date(2024, time.April, 2), cycle: Cycle{Count: 1, Period: PeriodYear}},
	}

	first := FindDue(items, 1, now)
	second := FindDue(items, 1, now)

	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a", "b", "c"}, names(first))
}

func TestIsDue_MonthlyRenewalEndToEnd(t *testing.T) {
	sub := item{name: "netflix", start: date(2025, time.January, 1), cycle: Cycle{Count: 1, Period: PeriodMonth}}

	assert.Equal(t, date(2025, time.April, 1), sub.cycle.NextOccurrence(sub.start, time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)))
	assert.True(t, IsDue(sub, 0, time.Date(2025, time.April, 1, 8, 0, 0, 0, time.UTC)))
	assert.True(t, IsDue(sub, 3, time.Date(2025, time.March, 29, 9, 0, 0, 0, time.UTC)))
	assert.False(t, IsDue(sub, 1, time.Date(2025, time.April, 1, 9, 30, 0, 0, time.UTC)))
}

func TestNextDueDate_CountsToday(t *testing.T) {
	sub := item{start: date(2025, time.January, 15), cycle: Cycle{Count: 1, Period: PeriodMonth}}

	assert.Equal(t, date(2025, time.March, 15), NextDueDate(sub, time.Date(2025, time.March, 15, 23, 0, 0, 0, time.UTC)))
	assert.Equal(t, date(2025, time.April, 15), NextDueDate(sub, time.Date(2025, time.March, 16, 0, 0, 0, 0, time.UTC)))
}

func TestTargetDate(t *testing.T) {
	now := time.Date(2025, time.December, 30, 22, 15, 0, 0, time.UTC)

	assert.Equal(t, date(2026, time.January, 2), TargetDate(now, 3))
}
