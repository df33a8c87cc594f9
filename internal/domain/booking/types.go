package booking

import "errors"

var ErrUnknownStateFilter = errors.New("unknown state filter")

type Status string

const (
	StatusWaiting  Status = "WAITING"
	StatusApproved Status = "APPROVED"
	StatusRejected Status = "REJECTED"
	// StatusCanceled is part of the data model but no operation assigns
	// it; rows carrying it are still read back correctly.
	StatusCanceled Status = "CANCELED"
)

func (s Status) String() string {
	return string(s)
}

func (s Status) IsValid() bool {
	switch s {
	case StatusWaiting, StatusApproved, StatusRejected, StatusCanceled:
		return true
	default:
		return false
	}
}

// StateFilter classifies bookings when listing. FilterCurrent matches by
// approval status, not by whether now falls inside the booking period;
// the name is historical and kept as-is.
type StateFilter string

const (
	FilterAll      StateFilter = "ALL"
	FilterCurrent  StateFilter = "CURRENT"
	FilterPast     StateFilter = "PAST"
	FilterFuture   StateFilter = "FUTURE"
	FilterWaiting  StateFilter = "WAITING"
	FilterRejected StateFilter = "REJECTED"
)

func ParseStateFilter(s string) (StateFilter, error) {
	f := StateFilter(s)
	switch f {
	case FilterAll, FilterCurrent, FilterPast, FilterFuture, FilterWaiting, FilterRejected:
		return f, nil
	default:
		return "", ErrUnknownStateFilter
	}
}
