package booking

import (
	"errors"
	"time"
)

var (
	ErrInvalidPeriod = errors.New("end time must be after start time")
	ErrPeriodInPast  = errors.New("start time cannot be in the past")
)

// Period is the booked time window. Both bounds are fixed at creation;
// they are validated once here and never re-checked afterwards.
type Period struct {
	start time.Time
	end   time.Time
}

func NewPeriod(start, end, now time.Time) (Period, error) {
	if !end.After(start) {
		return Period{}, ErrInvalidPeriod
	}
	if start.Before(now) {
		return Period{}, ErrPeriodInPast
	}
	return Period{start: start, end: end}, nil
}

func ReconstructPeriod(start, end time.Time) Period {
	return Period{start: start, end: end}
}

func (p Period) Start() time.Time {
	return p.start
}

func (p Period) End() time.Time {
	return p.end
}

func (p Period) Duration() time.Duration {
	return p.end.Sub(p.start)
}

func (p Period) EndedBefore(now time.Time) bool {
	return p.end.Before(now)
}

func (p Period) StartsAfter(now time.Time) bool {
	return p.start.After(now)
}
