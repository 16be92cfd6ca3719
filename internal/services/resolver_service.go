package services

import (
	"context"
	"sync/atomic"

	"travelmap/internal/domain"
	"travelmap/internal/utils"
)

// Geocoder is the remote lookup collaborator used when the catalog has no
// match for a query.
type Geocoder interface {
	Search(ctx context.Context, query string) ([]domain.Destination, error)
}

// Resolution is the outcome of one search.
type Resolution struct {
	Query   string               `json:"query"`
	Results []domain.Destination `json:"results"`
	Source  string               `json:"source"` // "catalog" or "geocoder"
	// Reset is set for blank queries: the caller returns the viewport to the
	// global default instead of focusing a result.
	Reset bool `json:"-"`
	// Stale marks a resolution superseded by a newer search while the remote
	// lookup was in flight. Callers must not publish stale results.
	Stale bool `json:"-"`
}

// ResolverService turns a free-text query into a destination list: local
// catalog first, remote geocoder only when the catalog has nothing.
type ResolverService struct {
	Catalog  *CatalogService
	Geocoder Geocoder

	gen atomic.Uint64
}

// Resolve runs the search pipeline. Every call claims a generation; a remote
// response that finishes after a newer search started comes back marked Stale
// so it cannot overwrite fresher results.
func (s *ResolverService) Resolve(ctx context.Context, query string) (Resolution, error) {
	query = utils.NormalizeSpace(query)
	gen := s.gen.Add(1)

	if query == "" {
		return Resolution{Results: s.Catalog.All(), Source: "catalog", Reset: true}, nil
	}

	if local := s.Catalog.Match(query); len(local) > 0 {
		return Resolution{Query: query, Results: local, Source: "catalog"}, nil
	}

	remote, err := s.Geocoder.Search(ctx, query)

	// A newer search claimed a later generation while this lookup was in
	// flight. Whether it completed or failed, this resolution is superseded
	// and must not be published.
	if s.gen.Load() != gen {
		utils.LogEvent(utils.RequestIDFromContext(ctx), "resolver", "geocode", "discarding superseded response for "+query)
		return Resolution{Query: query, Results: []domain.Destination{}, Source: "geocoder", Stale: true}, nil
	}

	if err != nil {
		utils.LogEvent(utils.RequestIDFromContext(ctx), "resolver", "geocode", "remote lookup failed: "+err.Error())
		return Resolution{Query: query, Results: []domain.Destination{}, Source: "geocoder"},
			domain.ResolutionError{Query: query, Err: err}
	}

	if remote == nil {
		remote = []domain.Destination{}
	}
	return Resolution{Query: query, Results: remote, Source: "geocoder"}, nil
}
