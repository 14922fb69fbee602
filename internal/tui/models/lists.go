package models

import (
	"context"
	"sync"

	"github.com/x88a9/edge-lab/internal/api"
	"github.com/x88a9/edge-lab/internal/loader"
	"github.com/x88a9/edge-lab/internal/model"
)

// listSet owns the stateful list fetchers behind the browse screens.
// App is a value model, so the set lives behind a pointer shared by
// every App copy. A list is reused while its browse scope is unchanged
// and rebuilt when the scope moves, so overlapping refetches of one
// scope (a manual refresh racing the scheduled one) resolve last-wins
// instead of interleaving.
type listSet struct {
	mu sync.Mutex

	systems *loader.List[model.System]

	variants    *loader.List[model.Variant]
	variantsFor string

	runs    *loader.List[model.Run]
	runsFor string
}

func newListSet(client *api.Client) *listSet {
	return &listSet{systems: loader.NewList(client.ListSystems)}
}

func (s *listSet) systemsList() *loader.List[model.System] {
	return s.systems
}

func (s *listSet) variantsList(client *api.Client, systemID string) *loader.List[model.Variant] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.variants == nil || s.variantsFor != systemID {
		fetch := loader.FetchFunc[model.Variant](client.ListVariants)
		if systemID != "" {
			fetch = func(ctx context.Context) ([]model.Variant, error) {
				return client.ListSystemVariants(ctx, systemID)
			}
		}
		s.variants = loader.NewList(fetch)
		s.variantsFor = systemID
	}
	return s.variants
}

func (s *listSet) runsList(client *api.Client, variantID string) *loader.List[model.Run] {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.runs == nil || s.runsFor != variantID {
		fetch := loader.FetchFunc[model.Run](client.ListRuns)
		if variantID != "" {
			fetch = func(ctx context.Context) ([]model.Run, error) {
				return client.ListVariantRuns(ctx, variantID)
			}
		}
		s.runs = loader.NewList(fetch)
		s.runsFor = variantID
	}
	return s.runs
}
