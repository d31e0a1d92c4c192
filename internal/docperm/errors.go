package docperm

import "errors"

var (
	ErrNotRevocable = errors.New("only approved, unexpired permissions can be revoked")
	ErrAccessDenied = errors.New("no active permission for this document")
	ErrActionFailed = errors.New("document permission action failed")
)
