package booking

import "time"

// DateRange is a half-open interval [start, end) at date granularity.
// Time-of-day carried by the inputs is discarded; all comparisons happen
// on UTC midnights.
type DateRange struct {
	start time.Time
	end   time.Time
}

func NewDateRange(start, end time.Time) (DateRange, error) {
	s := truncateToDate(start)
	e := truncateToDate(end)

	if !e.After(s) {
		return DateRange{}, ErrInvalidDateRange
	}

	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time {
	return r.start
}

func (r DateRange) End() time.Time {
	return r.end
}

func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// Overlaps applies the strict test: [s1,e1) and [s2,e2) overlap iff
// s1 < e2 AND s2 < e1. A checkout sharing another booking's check-in
// date does not conflict.
func (r DateRange) Overlaps(other DateRange) bool {
	return r.start.Before(other.end) && other.start.Before(r.end)
}

// EndedBefore reports whether the stay is entirely over as of the given
// date: the exclusive end date has already passed.
func (r DateRange) EndedBefore(today time.Time) bool {
	return r.end.Before(truncateToDate(today))
}

// StartedBy reports whether the stay has begun on or before the given
// date.
func (r DateRange) StartedBy(today time.Time) bool {
	return !r.start.After(truncateToDate(today))
}

func truncateToDate(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}
