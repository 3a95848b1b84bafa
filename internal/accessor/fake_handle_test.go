package accessor

import (
	"fmt"

	"github.com/danmuck/bufrkit/internal/codes"
)

type fakeHandle struct {
	longs    map[string][]int64
	strs     map[string]string
	sizes    map[string]int
	sizeErr  error
	readErr  error
	writeErr error
	reads    int
	writes   int
}

func newFakeHandle() *fakeHandle {
	return &fakeHandle{longs: map[string][]int64{}, strs: map[string]string{}, sizes: map[string]int{}}
}

func (h *fakeHandle) String(name string) (string, error) {
	v, ok := h.strs[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", codes.ErrNotFound, name)
	}
	return v, nil
}

func (h *fakeHandle) Size(name string) (int, error) {
	if h.sizeErr != nil {
		return 0, h.sizeErr
	}
	if n, ok := h.sizes[name]; ok {
		return n, nil
	}
	arr, ok := h.longs[name]
	if !ok {
		return 0, fmt.Errorf("%w: %s", codes.ErrNotFound, name)
	}
	return len(arr), nil
}

func (h *fakeHandle) LongArray(name string, dst []int64) (int, error) {
	if h.readErr != nil {
		return 0, h.readErr
	}
	h.reads++
	return copy(dst, h.longs[name]), nil
}

func (h *fakeHandle) SetLongArray(name string, vals []int64) error {
	if h.writeErr != nil {
		return h.writeErr
	}
	h.writes++
	h.longs[name] = append([]int64(nil), vals...)
	return nil
}

type recordingCreator struct {
	observer Accessor
	changed  Accessor
	calls    int
}

func (c *recordingCreator) NotifyChange(observer, changed Accessor) error {
	c.calls++
	c.observer = observer
	c.changed = changed
	return nil
}

type recordingDumper struct {
	values []any
	errs   []error
}

func (d *recordingDumper) DumpValue(a Accessor, value any, err error) {
	d.values = append(d.values, value)
	d.errs = append(d.errs, err)
}
