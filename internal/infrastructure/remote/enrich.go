package remote

import (
	"context"
	"errors"

	"github.com/quickbite/backend/internal/domain/shared"
)

// Enrichment is the per-call-site policy for filling one field from a peer
// service. A missing remote row always yields the fallback: remote rows may
// be legitimately deleted and a read endpoint must not fail because of it.
// An unreachable peer yields the fallback too unless the field is Required,
// in which case the whole operation fails with the resolver's error. A
// definitive non-404 rejection from the peer always propagates: it means
// the request itself was wrong, not that the row is missing.
type Enrichment[T any] struct {
	Required bool
	Fallback T
}

// Resolve runs fn and applies the policy to its outcome
func (e Enrichment[T]) Resolve(ctx context.Context, fn func(ctx context.Context) (T, error)) (T, error) {
	value, err := fn(ctx)
	if err == nil {
		return value, nil
	}
	if errors.Is(err, shared.ErrNotFound) {
		return e.Fallback, nil
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return e.Fallback, err
	}
	if e.Required {
		return e.Fallback, err
	}
	return e.Fallback, nil
}
