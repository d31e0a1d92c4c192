// Package optimistic implements the snapshot → apply → rollback-on-failure
// pattern used for mutations that flip local state before the server
// confirms, such as the doctor availability toggle.
package optimistic

import "context"

// Update applies next to the value held behind get/set, then runs commit.
// If commit fails the prior value is restored and the error returned; the
// caller never observes the optimistic value after a failure.
func Update[T any](ctx context.Context, get func() T, set func(T), next T, commit func(context.Context) error) error {
	prev := get()
	set(next)
	if err := commit(ctx); err != nil {
		set(prev)
		return err
	}
	return nil
}
