// Package repo queries version control for the author identity used in the
// 42 header.
package repo

import (
	"context"
	"fmt"
)

// Gitter defines the version-control lookups the formatter needs.
type Gitter interface {
	// UserEmail returns the configured git user email.
	UserEmail(ctx context.Context) (string, error)
}

// NoUserEmailError means git has no user.email configured or could not be
// invoked. Callers fall back to the conventional "<author>@student.42.fr".
type NoUserEmailError struct {
	Wrapped error
}

func (e *NoUserEmailError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("git user.email not available: %v", e.Wrapped)
	}
	return "git user.email not configured"
}

func (e *NoUserEmailError) Unwrap() error { return e.Wrapped }
