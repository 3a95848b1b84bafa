package accessor

import (
	"fmt"
	"strings"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/rs/zerolog/log"
)

// MaxScratchLen bounds the copy of a backing array taken by Element.
const MaxScratchLen = 1 << 24

// ElementConfig selects one slot of a named long array.
type ElementConfig struct {
	Array string
	Index int64
}

func (c ElementConfig) Validate() error {
	if strings.TrimSpace(c.Array) == "" {
		return fmt.Errorf("%w: element config missing array", codes.ErrInvalidArgument)
	}
	return nil
}

// Element exposes a single entry of a backing long array as a scalar.
type Element struct {
	Long
	array string
	index int64
}

func NewElement(b Binding, cfg ElementConfig) (*Element, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if b.Handle == nil {
		return nil, fmt.Errorf("%w: element %q has no handle", codes.ErrInvalidArgument, b.Name)
	}
	e := &Element{array: cfg.Array, index: cfg.Index}
	e.bind(e, KindElement, b)
	if err := e.Init(b.Length); err != nil {
		return nil, err
	}
	return e, nil
}

func (e *Element) Array() string { return e.array }
func (e *Element) Index() int64  { return e.index }

func (e *Element) UnpackLong(dst []int64) (int, error) {
	if len(dst) < 1 {
		return 0, codes.ErrArrayTooSmall
	}
	scratch, err := e.readArray()
	if err != nil {
		return 0, err
	}
	if err := e.checkIndex(len(scratch)); err != nil {
		return 0, err
	}
	dst[0] = scratch[e.index]
	return 1, nil
}

func (e *Element) PackLong(vals []int64) error {
	if len(vals) < 1 {
		return codes.ErrArrayTooSmall
	}
	scratch, err := e.readArray()
	if err != nil {
		return err
	}
	if err := e.checkIndex(len(scratch)); err != nil {
		return err
	}
	scratch[e.index] = vals[0]
	return e.handle.SetLongArray(e.array, scratch)
}

func (e *Element) readArray() ([]int64, error) {
	size, err := e.handle.Size(e.array)
	if err != nil {
		return nil, err
	}
	if size < 0 || size > MaxScratchLen {
		log.Error().
			Str("accessor", e.name).
			Str("array", e.array).
			Int("size", size).
			Msg("element scratch allocation refused")
		return nil, fmt.Errorf("%w: %d entries for array %q", codes.ErrOutOfMemory, size, e.array)
	}
	scratch := make([]int64, size)
	n, err := e.handle.LongArray(e.array, scratch)
	if err != nil {
		return nil, err
	}
	return scratch[:n], nil
}

func (e *Element) checkIndex(size int) error {
	if e.index >= 0 && e.index < int64(size) {
		return nil
	}
	log.Error().
		Str("accessor", e.name).
		Str("array", e.array).
		Int64("element", e.index).
		Int("size", size).
		Msg("invalid element index")
	return fmt.Errorf("%w: element %d for array %q, must be between 0 and %d",
		codes.ErrInvalidArgument, e.index, e.array, size-1)
}
