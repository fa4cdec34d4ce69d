package service

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"sync"
)

var (
	ErrDuplicate  = errors.New("service already registered")
	ErrMissingDep = errors.New("service depends on unregistered service")
	ErrCycle      = errors.New("circular service dependency")
)

// Hub owns service instances and runs their lifecycle in dependency order
type Hub struct {
	mu       sync.Mutex
	services map[string]Service
	sorted   []string // Dependency order, computed on InitAll
	started  []string // Services that completed Start, for rollback
}

// NewHub creates an empty service hub
func NewHub() *Hub {
	return &Hub{services: make(map[string]Service)}
}

// Register adds a service instance
func (h *Hub) Register(svc Service) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	name := svc.Name()
	if _, exists := h.services[name]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicate, name)
	}
	h.services[name] = svc
	h.sorted = nil
	return nil
}

// Get retrieves a service by name
func (h *Hub) Get(name string) (Service, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	svc, ok := h.services[name]
	return svc, ok
}

// Order returns the dependency order computed by the last InitAll
func (h *Hub) Order() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return slices.Clone(h.sorted)
}

// InitAll resolves dependencies and calls Init on every service
// On failure, already initialized services are stopped in reverse order
func (h *Hub) InitAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.sorted == nil {
		order, err := h.topologicalSort()
		if err != nil {
			return err
		}
		h.sorted = order
	}

	for i, name := range h.sorted {
		if err := h.services[name].Init(); err != nil {
			for j := i - 1; j >= 0; j-- {
				_ = h.services[h.sorted[j]].Stop()
			}
			return fmt.Errorf("service %s init: %w", name, err)
		}
	}
	return nil
}

// StartAll calls Start in dependency order
// On failure, already started services are stopped in reverse order
func (h *Hub) StartAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.started = nil
	for _, name := range h.sorted {
		if err := h.services[name].Start(); err != nil {
			h.stopStarted()
			return fmt.Errorf("service %s start: %w", name, err)
		}
		h.started = append(h.started, name)
	}
	return nil
}

// StopAll stops every started service in reverse order and joins their errors
func (h *Hub) StopAll() error {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.stopStarted()
}

func (h *Hub) stopStarted() error {
	var errs []error
	for i := len(h.started) - 1; i >= 0; i-- {
		if err := h.services[h.started[i]].Stop(); err != nil {
			errs = append(errs, fmt.Errorf("service %s stop: %w", h.started[i], err))
		}
	}
	h.started = nil
	return errors.Join(errs...)
}

// topologicalSort orders services with Kahn's algorithm
// Ready services are taken in name order so the result is stable
func (h *Hub) topologicalSort() ([]string, error) {
	inDegree := make(map[string]int, len(h.services))
	dependents := make(map[string][]string)

	names := slices.Sorted(maps.Keys(h.services))
	for _, name := range names {
		inDegree[name] += 0
		for _, dep := range h.services[name].Dependencies() {
			if _, ok := h.services[dep]; !ok {
				return nil, fmt.Errorf("%w: %s needs %s", ErrMissingDep, name, dep)
			}
			inDegree[name]++
			dependents[dep] = append(dependents[dep], name)
		}
	}

	var ready []string
	for _, name := range names {
		if inDegree[name] == 0 {
			ready = append(ready, name)
		}
	}

	result := make([]string, 0, len(names))
	for len(ready) > 0 {
		name := ready[0]
		ready = ready[1:]
		result = append(result, name)

		for _, d := range dependents[name] {
			inDegree[d]--
			if inDegree[d] == 0 {
				ready = append(ready, d)
				slices.Sort(ready)
			}
		}
	}

	if len(result) != len(names) {
		return nil, ErrCycle
	}
	return result, nil
}
