// Package dates holds the calendar-date helpers shared by the reservation
// engine. Dates travel through the system as ISO YYYY-MM-DD strings, so
// interval comparisons can stay lexicographic.
package dates

import (
	"fmt"
	"math"
	"time"

	"github.com/maruthihotels/roombooking/internal/domain"
)

const Layout = "2006-01-02"

// Overlaps reports whether the half-open intervals [aStart, aEnd) and
// [bStart, bEnd) share at least one day. Inputs must be ISO YYYY-MM-DD
// strings; lexicographic order equals calendar order for that format.
// Adjacent intervals sharing an endpoint do not overlap.
func Overlaps(aStart, aEnd, bStart, bEnd string) bool {
	return !(aEnd <= bStart || aStart >= bEnd)
}

// ValidateRange checks that both dates are well-formed and checkin < checkout.
func ValidateRange(checkin, checkout string) error {
	if checkin == "" || checkout == "" {
		return domain.ErrMissingParameter
	}
	if _, err := time.Parse(Layout, checkin); err != nil {
		return fmt.Errorf("%w: checkin %q", domain.ErrInvalidDateRange, checkin)
	}
	if _, err := time.Parse(Layout, checkout); err != nil {
		return fmt.Errorf("%w: checkout %q", domain.ErrInvalidDateRange, checkout)
	}
	if checkin >= checkout {
		return fmt.Errorf("%w: checkin must be before checkout", domain.ErrInvalidDateRange)
	}
	return nil
}

// DaysUntil returns ceil((checkin - now) / 24h). Zero or negative means the
// stay has already started or starts today.
func DaysUntil(checkin string, now time.Time) int {
	day, err := time.Parse(Layout, checkin)
	if err != nil {
		return 0
	}
	return int(math.Ceil(day.Sub(now.UTC()).Hours() / 24))
}
