package availability

import (
	"time"

	"grandehotel-core/internal/domain/stay"
)

// DayKey identifies one calendar day without any locale or timezone
// formatting concerns.
type DayKey struct {
	Year  int
	Month time.Month
	Day   int
}

func NewDayKey(t time.Time) DayKey {
	return DayKey{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// Entry is one booking projected onto the calendar: its stay interval plus
// an opaque label shown in tooltips (typically the guest name).
type Entry struct {
	Stay  stay.Range
	Label string
}

// Index maps booked days to the labels of contributing bookings. Free days
// are simply absent.
type Index struct {
	days map[DayKey][]string
}

// BuildIndex projects entries onto a per-day index. Each day in
// [check-in, check-out) contributes; the check-out day does not, since a
// departing guest frees the room. Entries whose range is zero are skipped so
// rendering stays resilient to malformed upstream records (a range that
// failed validation is only representable as the zero Range).
func BuildIndex(entries []Entry) Index {
	idx := Index{days: make(map[DayKey][]string)}
	for _, e := range entries {
		if e.Stay.IsZero() {
			continue
		}
		start := dayStart(e.Stay.CheckIn())
		end := dayStart(e.Stay.CheckOut())
		for d := start; d.Before(end); d = d.AddDate(0, 0, 1) {
			key := NewDayKey(d)
			idx.days[key] = append(idx.days[key], e.Label)
		}
	}
	return idx
}

// IsBooked reports whether any booking covers the day. Count does not
// matter; one contributor makes the day booked.
func (i Index) IsBooked(key DayKey) bool {
	return len(i.days[key]) > 0
}

// Entries returns the contributing labels in insertion order, or nil for a
// free day.
func (i Index) Entries(key DayKey) []string {
	labels := i.days[key]
	if len(labels) == 0 {
		return nil
	}
	out := make([]string, len(labels))
	copy(out, labels)
	return out
}

// BookedDays reports how many distinct days carry at least one booking.
func (i Index) BookedDays() int {
	return len(i.days)
}

func dayStart(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
