// README: Per-caller daily allowance for AI airport lookups, stored in Postgres.
package quota

import (
	"context"
	"errors"
)

// Usage is the persistence contract; *Store satisfies it.
type Usage interface {
	UseLookup(ctx context.Context, uid string) error
	EnsureUser(ctx context.Context, uid string) error
}

// Service orchestrates lookup-quota logic.
type Service struct {
	store Usage
}

// NewService creates a Service backed by the given store.
func NewService(store Usage) *Service {
	return &Service{store: store}
}

// Use deducts one lookup from the caller's daily allowance.
// A caller without a row is initialised and the lookup is immediately consumed.
// Returns ErrQuotaExceeded when today's allowance is spent.
func (s *Service) Use(ctx context.Context, uid string) error {
	err := s.store.UseLookup(ctx, uid)
	if !errors.Is(err, ErrQuotaExceeded) {
		return err
	}

	// Row may be missing: create it, then retry the deduction once.
	if initErr := s.store.EnsureUser(ctx, uid); initErr != nil {
		return initErr
	}
	return s.store.UseLookup(ctx, uid)
}
