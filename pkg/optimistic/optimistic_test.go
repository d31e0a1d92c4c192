package optimistic

import (
	"context"
	"errors"
	"testing"
)

func TestUpdateCommitSuccess(t *testing.T) {
	val := false
	err := Update(context.Background(),
		func() bool { return val },
		func(v bool) { val = v },
		true,
		func(context.Context) error { return nil },
	)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if !val {
		t.Error("value not applied after successful commit")
	}
}

func TestUpdateRollsBackOnFailure(t *testing.T) {
	val := false
	commitErr := errors.New("server unavailable")

	var seenDuringCommit bool
	err := Update(context.Background(),
		func() bool { return val },
		func(v bool) { val = v },
		true,
		func(context.Context) error {
			seenDuringCommit = val
			return commitErr
		},
	)

	if !errors.Is(err, commitErr) {
		t.Fatalf("expected commit error, got %v", err)
	}
	if !seenDuringCommit {
		t.Error("optimistic value was not visible during commit")
	}
	if val {
		t.Error("value not rolled back after failed commit, stuck at true")
	}
}
