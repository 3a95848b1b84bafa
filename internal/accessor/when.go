package accessor

import (
	"fmt"

	"github.com/danmuck/bufrkit/internal/codes"
)

// When carries no value. It exists to forward change events to the action
// that created it.
type When struct {
	Gen
}

func NewWhen(b Binding) (*When, error) {
	w := &When{}
	w.bind(w, KindWhen, b)
	if err := w.Init(b.Length); err != nil {
		return nil, err
	}
	return w, nil
}

func (w *When) Init(int64) error {
	w.length = 0
	w.flags |= FlagHidden | FlagReadOnly
	return nil
}

func (w *When) NotifyChange(changed Accessor) error {
	if w.creator == nil {
		return fmt.Errorf("%w: when %q has no creator", codes.ErrNotImplemented, w.name)
	}
	return w.creator.NotifyChange(w, changed)
}

func (w *When) Dump(Dumper) {}
