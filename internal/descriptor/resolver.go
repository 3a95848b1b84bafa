package descriptor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/danmuck/bufrkit/internal/observability"
	"github.com/danmuck/bufrkit/internal/tables"
	"github.com/rs/zerolog/log"
)

// Resolver builds descriptors from the element table of one source.
type Resolver struct {
	cache *tables.Cache
	ctx   tables.Context
	src   tables.Source
}

func NewResolver(cache *tables.Cache, ctx tables.Context, src tables.Source) (*Resolver, error) {
	if cache == nil {
		return nil, fmt.Errorf("%w: resolver needs a table cache", codes.ErrInvalidArgument)
	}
	if err := src.Validate(); err != nil {
		return nil, err
	}
	return &Resolver{cache: cache, ctx: ctx, src: src}, nil
}

// Resolve returns the descriptor for code. Only element descriptors (F=0)
// touch the table.
func (r *Resolver) Resolve(code int) (*Descriptor, error) {
	if code < 0 || code > MaxCode {
		return nil, fmt.Errorf("%w: code %d outside [0, %d]", codes.ErrInvalidArgument, code, MaxCode)
	}
	d := &Descriptor{Code: code}
	d.F, d.X, d.Y = Decompose(code)

	var err error
	switch d.F {
	case 0:
		err = r.fromTable(d)
	case 1:
		d.Type = TypeReplication
	case 2:
		d.Type = TypeOperator
	case 3:
		d.Type = TypeSequence
	}
	observability.RecordDescriptorResolve(d.F, err == nil)
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *Resolver) fromTable(d *Descriptor) error {
	dict, err := r.cache.Dictionary(r.ctx, r.src)
	if err != nil {
		return err
	}
	key := FormatCode(d.Code)
	row, ok := dict.Get(key)
	if !ok {
		log.Debug().Str("code", key).Str("dictionary", r.src.Dictionary).Msg("descriptor: code not in table")
		return fmt.Errorf("%w: code %s in %s", codes.ErrNotFound, key, r.src.Dictionary)
	}

	d.ShortName = column(row, tables.ColShortName)
	d.Type = ParseType(column(row, tables.ColType))
	d.Units = column(row, tables.ColUnits)

	if d.Scale, err = parseLong(row, tables.ColScale, key); err != nil {
		return err
	}
	d.Factor = math.Pow10(int(-d.Scale))
	if d.Reference, err = parseLong(row, tables.ColReference, key); err != nil {
		return err
	}
	if d.Width, err = parseLong(row, tables.ColWidth, key); err != nil {
		return err
	}
	return nil
}

func column(row tables.Row, i int) string {
	v, _ := row.Column(i)
	return v
}

// parseLong reads an integer column. Scale and reference are usually "0".
func parseLong(row tables.Row, i int, code string) (int64, error) {
	raw := column(row, i)
	if raw == "0" {
		return 0, nil
	}
	v, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: code %s column %d: %q is not an integer",
			codes.ErrInvalidArgument, code, i, raw)
	}
	return v, nil
}
