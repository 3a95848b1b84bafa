package descriptor

import (
	"testing"

	"github.com/danmuck/bufrkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestDecompose(t *testing.T) {
	testlog.Start(t)
	cases := []struct {
		code    int
		f, x, y int
	}{
		{0, 0, 0, 0},
		{1001, 0, 1, 1},
		{12101, 0, 12, 101},
		{101000, 1, 1, 0},
		{205001, 2, 5, 1},
		{301011, 3, 1, 11},
		{999999, 9, 99, 999},
	}
	for _, c := range cases {
		f, x, y := Decompose(c.code)
		require.Equal(t, [3]int{c.f, c.x, c.y}, [3]int{f, x, y}, "code %d", c.code)
	}
}

func TestDecomposeRecomposesEveryStride(t *testing.T) {
	testlog.Start(t)
	for code := 0; code <= MaxCode; code += 997 {
		f, x, y := Decompose(code)
		require.Equal(t, code, f*100000+x*1000+y)
		require.Equal(t, code/100000, f)
		require.Equal(t, (code-f*100000)/1000, x)
		require.Equal(t, (code-f*100000)%1000, y)
		require.True(t, x < 100 && y < 1000)
	}
}

func TestParseType(t *testing.T) {
	testlog.Start(t)
	require.Equal(t, TypeString, ParseType("string"))
	require.Equal(t, TypeLong, ParseType("long"))
	require.Equal(t, TypeDouble, ParseType("double"))
	require.Equal(t, TypeTable, ParseType("table"))
	require.Equal(t, TypeFlag, ParseType("flag"))
	for _, token := range []string{"", "Long", "longer", "code table", "s"} {
		require.Equal(t, TypeUnknown, ParseType(token), "token %q", token)
	}
	require.Equal(t, "operator", TypeOperator.String())
	require.Equal(t, "unknown", Type(42).String())
}

func TestIsMarker(t *testing.T) {
	testlog.Start(t)
	marker := func(code int) bool {
		d := &Descriptor{Code: code}
		d.F, d.X, d.Y = Decompose(code)
		return IsMarker(d)
	}
	for _, code := range []int{223255, 224255, 225255, 232255, 205001, 205255} {
		require.True(t, marker(code), "code %d", code)
	}
	for _, code := range []int{1001, 223000, 204001, 206001, 5001} {
		require.False(t, marker(code), "code %d", code)
	}
	require.False(t, IsMarker(nil))
}

func TestFormatCode(t *testing.T) {
	testlog.Start(t)
	require.Equal(t, "001001", FormatCode(1001))
	require.Equal(t, "000000", FormatCode(0))
	require.Equal(t, "312021", FormatCode(312021))
}
