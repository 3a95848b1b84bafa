// Package message provides an in-memory message that owns field values and
// the accessors bound to them.
package message

import (
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/danmuck/bufrkit/internal/accessor"
	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/rs/zerolog/log"
)

// ChangeFunc observes change events forwarded by when-style accessors.
type ChangeFunc func(observer, changed accessor.Accessor) error

// Message stores long arrays and string values by field name.
type Message struct {
	mu        sync.RWMutex
	longs     map[string][]int64
	strs      map[string]string
	accessors map[string]accessor.Accessor
	order     []string
	onChange  ChangeFunc
}

func New() *Message {
	return &Message{
		longs:     make(map[string][]int64),
		strs:      make(map[string]string),
		accessors: make(map[string]accessor.Accessor),
	}
}

// OnChange installs the observer for forwarded change events.
func (m *Message) OnChange(fn ChangeFunc) {
	m.mu.Lock()
	m.onChange = fn
	m.mu.Unlock()
}

// SetString stores a string field value.
func (m *Message) SetString(name, val string) {
	m.mu.Lock()
	m.strs[name] = val
	m.mu.Unlock()
}

// String returns a string field. Long fields are rendered in decimal.
func (m *Message) String(name string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if v, ok := m.strs[name]; ok {
		return v, nil
	}
	if arr, ok := m.longs[name]; ok && len(arr) == 1 {
		return fmt.Sprintf("%d", arr[0]), nil
	}
	return "", fmt.Errorf("%w: field %q", codes.ErrNotFound, name)
}

// Size returns the number of values held by a long array field.
func (m *Message) Size(name string) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	arr, ok := m.longs[name]
	if !ok {
		return 0, fmt.Errorf("%w: field %q", codes.ErrNotFound, name)
	}
	return len(arr), nil
}

// LongArray copies a long array field into dst.
func (m *Message) LongArray(name string, dst []int64) (int, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	arr, ok := m.longs[name]
	if !ok {
		return 0, fmt.Errorf("%w: field %q", codes.ErrNotFound, name)
	}
	if len(dst) < len(arr) {
		return 0, fmt.Errorf("%w: field %q holds %d values, buffer has %d",
			codes.ErrArrayTooSmall, name, len(arr), len(dst))
	}
	return copy(dst, arr), nil
}

// SetLongArray replaces a long array field with a copy of vals.
func (m *Message) SetLongArray(name string, vals []int64) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: empty field name", codes.ErrInvalidArgument)
	}
	buf := make([]int64, len(vals))
	copy(buf, vals)
	m.mu.Lock()
	m.longs[name] = buf
	m.mu.Unlock()
	return nil
}

// Add registers a bound accessor under its name.
func (m *Message) Add(a accessor.Accessor) error {
	if a == nil {
		return fmt.Errorf("%w: nil accessor", codes.ErrInvalidArgument)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accessors[a.Name()]; ok {
		return fmt.Errorf("%w: accessor %q already bound", codes.ErrInvalidArgument, a.Name())
	}
	m.accessors[a.Name()] = a
	m.order = append(m.order, a.Name())
	return nil
}

// Accessor returns a bound accessor by name.
func (m *Message) Accessor(name string) (accessor.Accessor, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	a, ok := m.accessors[name]
	return a, ok
}

// Accessors returns bound accessors in insertion order.
func (m *Message) Accessors() []accessor.Accessor {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]accessor.Accessor, 0, len(m.order))
	for _, name := range m.order {
		out = append(out, m.accessors[name])
	}
	return out
}

// Fields lists stored field names.
func (m *Message) Fields() []string {
	m.mu.RLock()
	keys := make([]string, 0, len(m.longs)+len(m.strs))
	for k := range m.longs {
		keys = append(keys, k)
	}
	for k := range m.strs {
		keys = append(keys, k)
	}
	m.mu.RUnlock()
	sort.Strings(keys)
	return keys
}

// NotifyChange implements accessor.Creator.
func (m *Message) NotifyChange(observer, changed accessor.Accessor) error {
	m.mu.RLock()
	fn := m.onChange
	m.mu.RUnlock()
	if fn == nil {
		log.Debug().Str("observer", observer.Name()).Msg("message: change ignored, no observer")
		return nil
	}
	return fn(observer, changed)
}

// Dump writes every bound accessor to d.
func (m *Message) Dump(d accessor.Dumper) {
	for _, a := range m.Accessors() {
		if a.Flags().Has(accessor.FlagHidden) {
			continue
		}
		a.Dump(d)
	}
}
