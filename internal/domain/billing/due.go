package billing

import (
	"time"

	"github.com/samber/lo"
)

// Schedulable is anything that bills on a fixed cycle from a start date.
type Schedulable interface {
	BillingStart() time.Time
	BillingCycle() Cycle
}

// TargetDate returns the calendar date daysAhead days after now's date.
func TargetDate(now time.Time, daysAhead int) time.Time {
	return DateOf(now).AddDate(0, 0, daysAhead)
}

// NextDueDate returns the next billing date of item as seen from the start of now's day.
// A billing date falling today is still pending.
func NextDueDate(item Schedulable, now time.Time) time.Time {
	return item.BillingCycle().NextOccurrence(item.BillingStart(), DateOf(now).Add(-time.Nanosecond))
}

// IsDue reports whether the next billing date of item is exactly daysAhead days after today.
// For daysAhead == 0 an occurrence falling today counts; for later offsets the next occurrence
// is taken after today, so an item billed today is not reported again for tomorrow.
func IsDue(item Schedulable, daysAhead int, now time.Time) bool {
	if daysAhead < 0 {
		return false
	}

	target := TargetDate(now, daysAhead)
	if daysAhead == 0 {
		return SameDate(NextDueDate(item, now), target)
	}

	next := item.BillingCycle().NextOccurrence(item.BillingStart(), DateOf(now))

	return SameDate(next, target)
}

// FindDue keeps the items of items that are due in exactly daysAhead days, preserving order.
// Cancellation is not considered; callers pass active items only.
func FindDue[T Schedulable](items []T, daysAhead int, now time.Time) []T {
	return lo.Filter(items, func(item T, _ int) bool {
		return IsDue(item, daysAhead, now)
	})
}
