package appointment

import "errors"

var (
	ErrFetchFailed = errors.New("could not load appointments")
	ErrNoIdentity  = errors.New("no authenticated identity")
)
