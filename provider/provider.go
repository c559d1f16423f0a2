// Package provider resolves free-text queries into video search
// candidates through whichever upstream providers are registered.
package provider

import (
	"context"

	"github.com/wavecrossed/tubefy/entity"
)

type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]entity.Candidate, error)
}

var providers []Provider

func register(provider Provider) {
	providers = append(providers, provider)
}

// Search queries the registered providers in order and returns the
// first non-empty candidate list. No provider finding anything is an
// empty result, not an error.
func Search(ctx context.Context, query string, limit int) ([]entity.Candidate, error) {
	for _, provider := range providers {
		candidates, err := provider.Search(ctx, query, limit)
		if err != nil {
			return nil, err
		}
		if len(candidates) > 0 {
			return candidates, nil
		}
	}
	return nil, nil
}
