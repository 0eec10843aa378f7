package driver

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"sort"
	"sync"
)

// DefaultWeight is the weight used by providers that have no reason to be preferred.
const DefaultWeight = 50

var (
	// ErrIncompatible marks a provider as not usable in the current environment.
	ErrIncompatible = errors.New("driver is incompatible")
	// ErrNoDriver is returned by Get when no registered provider is compatible.
	ErrNoDriver = errors.New("no compatible driver found")
)

// Provider builds a driver implementation of type T.
type Provider[T any] interface {
	ID() string
	Name() string
	DefaultWeight() int
	CheckCompatibility(ctx context.Context) error
	New(ctx context.Context) (T, error)
}

// meta is the type-erased part of a Provider, used for listing.
type meta interface {
	ID() string
	Name() string
	DefaultWeight() int
	CheckCompatibility(ctx context.Context) error
}

type registration struct {
	meta meta
	// build is New() with the result boxed.
	build func(ctx context.Context) (any, error)
}

var (
	mu            sync.Mutex
	registrations = map[reflect.Type][]registration{}
	instances     = map[reflect.Type]any{}
	weights       = map[string]int{}
)

// Register adds a provider for driver interface T. Call it from init().
func Register[T any](p Provider[T]) {
	mu.Lock()
	defer mu.Unlock()
	key := reflect.TypeFor[T]()
	registrations[key] = append(registrations[key], registration{
		meta: p,
		build: func(ctx context.Context) (any, error) {
			return p.New(ctx)
		},
	})
}

// SetWeights overrides provider weights by provider ID. A weight <= 0 disables the provider.
// Cached driver instances are dropped so the next Get honours the new weights.
func SetWeights(w map[string]int) {
	mu.Lock()
	defer mu.Unlock()
	weights = make(map[string]int, len(w))
	for k, v := range w {
		weights[k] = v
	}
	instances = map[reflect.Type]any{}
}

// Reset drops every cached driver instance.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	instances = map[reflect.Type]any{}
}

func weightOf(m meta) int {
	if w, ok := weights[m.ID()]; ok {
		return w
	}
	return m.DefaultWeight()
}

// sorted returns the registrations for key ordered by effective weight, highest first.
// Caller must hold mu.
func sorted(key reflect.Type) []registration {
	regs := append([]registration(nil), registrations[key]...)
	sort.SliceStable(regs, func(i, j int) bool {
		return weightOf(regs[i].meta) > weightOf(regs[j].meta)
	})
	return regs
}

// Get returns the driver of type T from the highest weighted compatible provider.
// The instance is cached for the lifetime of the process.
func Get[T any](ctx context.Context) (T, error) {
	var zero T
	key := reflect.TypeFor[T]()

	mu.Lock()
	if inst, ok := instances[key]; ok {
		mu.Unlock()
		return inst.(T), nil
	}
	candidates := sorted(key)
	effective := make([]int, len(candidates))
	for i, reg := range candidates {
		effective[i] = weightOf(reg.meta)
	}
	mu.Unlock()

	// Providers may resolve other drivers while checking compatibility,
	// so the lock is not held here.
	var errs []error
	for i, reg := range candidates {
		if effective[i] <= 0 {
			continue
		}
		if err := reg.meta.CheckCompatibility(ctx); err != nil {
			slog.Debug("driver incompatible", "driver", key.String(), "provider", reg.meta.ID(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", reg.meta.ID(), err))
			continue
		}
		inst, err := reg.build(ctx)
		if err != nil {
			slog.Debug("driver init failed", "driver", key.String(), "provider", reg.meta.ID(), "error", err)
			errs = append(errs, fmt.Errorf("%s: %w", reg.meta.ID(), err))
			continue
		}
		slog.Debug("driver selected", "driver", key.String(), "provider", reg.meta.ID())

		mu.Lock()
		if existing, ok := instances[key]; ok {
			inst = existing
		} else {
			instances[key] = inst
		}
		mu.Unlock()
		return inst.(T), nil
	}

	if len(errs) == 0 {
		return zero, fmt.Errorf("%w: %s", ErrNoDriver, key.String())
	}
	return zero, fmt.Errorf("%w: %s: %w", ErrNoDriver, key.String(), errors.Join(errs...))
}

// Status describes one registered provider.
type Status struct {
	Driver string
	ID     string
	Name   string
	Weight int
	// Err is nil when the provider is compatible.
	Err error
}

// List reports every registered provider grouped by driver interface, highest weight first.
func List(ctx context.Context) []Status {
	mu.Lock()
	keys := make([]reflect.Type, 0, len(registrations))
	for k := range registrations {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].String() < keys[j].String() })

	type item struct {
		driver string
		meta   meta
		weight int
	}
	var items []item
	for _, k := range keys {
		for _, reg := range sorted(k) {
			items = append(items, item{driver: k.String(), meta: reg.meta, weight: weightOf(reg.meta)})
		}
	}
	mu.Unlock()

	// Compatibility checks may shell out, so run them without the lock.
	out := make([]Status, 0, len(items))
	for _, it := range items {
		s := Status{Driver: it.driver, ID: it.meta.ID(), Name: it.meta.Name(), Weight: it.weight}
		if it.weight <= 0 {
			s.Err = fmt.Errorf("%w: disabled by config", ErrIncompatible)
		} else {
			s.Err = it.meta.CheckCompatibility(ctx)
		}
		out = append(out, s)
	}
	return out
}

// Selected returns the ID of the provider Get would pick for the driver named name
// (as printed by List, e.g. "clipboard.Driver"), without instantiating it.
func Selected(ctx context.Context, name string) (string, error) {
	for _, s := range List(ctx) {
		if s.Driver != name {
			continue
		}
		if s.Err == nil {
			return s.ID, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNoDriver, name)
}
