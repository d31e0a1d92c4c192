package slot

import "errors"

var (
	ErrInvalidTimeRange = errors.New("timeFrom must be before timeTo")
	ErrInvalidDuration  = errors.New("duration must be between 15 and 120 minutes")
	ErrPastDate         = errors.New("date must not be in the past")
	ErrInvalidTimezone  = errors.New("unknown timezone")
	ErrSlotBooked       = errors.New("booked slots cannot be deleted")
	ErrSlotNotFound     = errors.New("time slot not found")
	ErrProfileBlocked   = errors.New("profile is not eligible for slot management")
)
