package remote

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickbite/backend/internal/domain/shared"
)

func TestEnrichmentFound(t *testing.T) {
	e := Enrichment[string]{Fallback: "Unknown"}

	name, err := e.Resolve(context.Background(), func(ctx context.Context) (string, error) {
		return "Margherita", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Margherita", name)
}

func TestEnrichmentNotFoundUsesFallback(t *testing.T) {
	// A deleted remote row degrades the field, never the operation.
	for _, required := range []bool{false, true} {
		e := Enrichment[string]{Required: required, Fallback: "Unknown"}

		name, err := e.Resolve(context.Background(), func(ctx context.Context) (string, error) {
			return "", shared.ErrNotFound
		})
		require.NoError(t, err)
		assert.Equal(t, "Unknown", name)
	}
}

func TestEnrichmentUnavailableOptional(t *testing.T) {
	e := Enrichment[[]string]{Fallback: []string{}}

	values, err := e.Resolve(context.Background(), func(ctx context.Context) ([]string, error) {
		return nil, shared.ErrUpstreamUnavailable
	})
	require.NoError(t, err)
	assert.Empty(t, values)
}

func TestEnrichmentPeerRejectionPropagates(t *testing.T) {
	// A 403 from the peer is not a missing row and not an outage: it
	// surfaces even on an optional field.
	for _, required := range []bool{false, true} {
		e := Enrichment[string]{Required: required, Fallback: "Unknown"}

		rejection := &StatusError{Status: 403, Body: []byte("forbidden")}
		_, err := e.Resolve(context.Background(), func(ctx context.Context) (string, error) {
			return "", rejection
		})
		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, 403, statusErr.Status)
	}
}

func TestEnrichmentUnavailableRequired(t *testing.T) {
	e := Enrichment[string]{Required: true, Fallback: ""}

	_, err := e.Resolve(context.Background(), func(ctx context.Context) (string, error) {
		return "", shared.ErrUpstreamUnavailable
	})
	assert.ErrorIs(t, err, shared.ErrUpstreamUnavailable)
}
