package accessor

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/danmuck/bufrkit/internal/codes"
)

var (
	ErrKindExists  = errors.New("accessor: kind already registered")
	ErrKindNil     = errors.New("accessor: kind is nil")
	ErrUnknownKind = errors.New("accessor: unknown kind")
)

// Factory builds an accessor from a binding and a kind-specific config.
type Factory func(b Binding, cfg any) (Accessor, error)

type entry struct {
	kind    *Kind
	factory Factory
}

// Registry maps kind names to their factories. It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	items map[string]entry
}

func NewRegistry() *Registry {
	return &Registry{items: make(map[string]entry)}
}

// DefaultRegistry returns a registry holding every built-in kind.
func DefaultRegistry() *Registry {
	r := NewRegistry()
	_ = r.Register(KindElement, func(b Binding, cfg any) (Accessor, error) {
		c, err := configAs[ElementConfig](KindElement, cfg)
		if err != nil {
			return nil, err
		}
		return NewElement(b, c)
	})
	_ = r.Register(KindWhen, func(b Binding, _ any) (Accessor, error) {
		return NewWhen(b)
	})
	_ = r.Register(KindElementsTable, func(b Binding, cfg any) (Accessor, error) {
		c, err := configAs[ElementsTableConfig](KindElementsTable, cfg)
		if err != nil {
			return nil, err
		}
		return NewElementsTable(b, c)
	})
	return r
}

// Register adds a kind. Its parent chain must already end at KindGen.
func (r *Registry) Register(kind *Kind, factory Factory) error {
	if kind == nil || factory == nil {
		return ErrKindNil
	}
	name := strings.TrimSpace(kind.Name)
	if name == "" {
		return fmt.Errorf("%w: kind has no name", codes.ErrInvalidArgument)
	}
	if !kind.Is(KindGen) {
		return fmt.Errorf("%w: kind %q does not descend from %s", codes.ErrInvalidArgument, name, KindGen)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.items[name]; ok {
		return ErrKindExists
	}
	r.items[name] = entry{kind: kind, factory: factory}
	return nil
}

// Create builds an accessor of the named kind.
func (r *Registry) Create(kindName string, b Binding, cfg any) (Accessor, error) {
	r.mu.RLock()
	e, ok := r.items[kindName]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kindName)
	}
	return e.factory(b, cfg)
}

// Kind returns a registered kind by name.
func (r *Registry) Kind(name string) (*Kind, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.items[name]
	return e.kind, ok
}

// Names returns registered kind names in order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	out := make([]string, 0, len(r.items))
	for name := range r.items {
		out = append(out, name)
	}
	r.mu.RUnlock()
	sort.Strings(out)
	return out
}

func configAs[T any](kind *Kind, cfg any) (T, error) {
	switch c := cfg.(type) {
	case T:
		return c, nil
	case *T:
		if c != nil {
			return *c, nil
		}
	}
	var zero T
	return zero, fmt.Errorf("%w: %s expects %T, got %T", codes.ErrInvalidArgument, kind, zero, cfg)
}
