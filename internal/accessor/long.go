package accessor

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/danmuck/bufrkit/internal/codes"
)

// Long is the parent of integer-valued kinds. It derives the double and
// string forms from whatever UnpackLong/PackLong the concrete kind provides.
type Long struct {
	Gen
}

func (l *Long) NativeType() NativeType {
	return TypeLong
}

func (l *Long) UnpackDouble(dst []float64) (int, error) {
	scratch := make([]int64, len(dst))
	n, err := l.target().UnpackLong(scratch)
	if err != nil {
		return 0, err
	}
	for i := 0; i < n; i++ {
		dst[i] = float64(scratch[i])
	}
	return n, nil
}

func (l *Long) PackDouble(vals []float64) error {
	scratch := make([]int64, len(vals))
	for i, v := range vals {
		if math.IsNaN(v) || math.IsInf(v, 0) || v >= math.MaxInt64 || v < math.MinInt64 {
			return fmt.Errorf("%w: cannot pack %v as long", codes.ErrInvalidArgument, v)
		}
		scratch[i] = int64(v)
	}
	return l.target().PackLong(scratch)
}

func (l *Long) UnpackString() (string, error) {
	count, err := l.target().ValueCount()
	if err != nil {
		return "", err
	}
	if count < 1 {
		count = 1
	}
	scratch := make([]int64, count)
	n, err := l.target().UnpackLong(scratch)
	if err != nil {
		return "", err
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = strconv.FormatInt(scratch[i], 10)
	}
	return strings.Join(parts, " "), nil
}

func (l *Long) PackString(val string) error {
	v, err := strconv.ParseInt(strings.TrimSpace(val), 10, 64)
	if err != nil {
		return fmt.Errorf("%w: %q is not a long", codes.ErrInvalidArgument, val)
	}
	return l.target().PackLong([]int64{v})
}
