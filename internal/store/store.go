// Package store defines persistence for named scenarios. The engine itself is
// stateless; stores only hold parameter sets so they can be recalled by name.
package store

import (
	"errors"
	"sort"
	"sync"

	"github.com/quantdash/retirement-planner/internal/domain"
)

// ErrNotFound is returned when no scenario with the given name exists.
var ErrNotFound = errors.New("scenario not found")

// ScenarioStore persists named parameter sets. Save is an upsert keyed by
// scenario name.
type ScenarioStore interface {
	Save(scenario domain.Scenario) error
	List() ([]domain.Scenario, error)
	Get(name string) (*domain.Scenario, error)
	Delete(name string) error
}

// MemoryStore is an in-memory ScenarioStore, used by tests and as the serve
// default when no database path is given.
type MemoryStore struct {
	mu        sync.RWMutex
	scenarios map[string]domain.Scenario
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{scenarios: make(map[string]domain.Scenario)}
}

func (ms *MemoryStore) Save(scenario domain.Scenario) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	ms.scenarios[scenario.Name] = scenario
	return nil
}

func (ms *MemoryStore) List() ([]domain.Scenario, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	out := make([]domain.Scenario, 0, len(ms.scenarios))
	for _, sc := range ms.scenarios {
		out = append(out, sc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (ms *MemoryStore) Get(name string) (*domain.Scenario, error) {
	ms.mu.RLock()
	defer ms.mu.RUnlock()
	sc, ok := ms.scenarios[name]
	if !ok {
		return nil, ErrNotFound
	}
	return &sc, nil
}

func (ms *MemoryStore) Delete(name string) error {
	ms.mu.Lock()
	defer ms.mu.Unlock()
	if _, ok := ms.scenarios[name]; !ok {
		return ErrNotFound
	}
	delete(ms.scenarios, name)
	return nil
}
