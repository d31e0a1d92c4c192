package profile

import "errors"

var (
	ErrFetchFailed = errors.New("could not load profile")
	ErrNoIdentity  = errors.New("no authenticated identity")
)
