package emergency

import "errors"

var (
	ErrSymptomsRequired = errors.New("symptoms are required")
	ErrLocationRequired = errors.New("location is required")
	ErrInvalidUrgency   = errors.New("urgency must be HIGH, MEDIUM or LOW")
	ErrInvalidPhone     = errors.New("invalid contact number")
	ErrActionFailed     = errors.New("emergency action failed")
)
