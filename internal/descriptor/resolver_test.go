package descriptor

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/danmuck/bufrkit/internal/tables"
	"github.com/danmuck/bufrkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

type mapContext map[string]string

func (m mapContext) String(name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", codes.ErrNotFound, name)
	}
	return v, nil
}

const header = "#code|abbreviation|type|name|unit|scale|reference|width\n"

var source = tables.Source{Dictionary: "element.table", MasterDir: "masterDir", LocalDir: "localDir"}

func writeFile(t *testing.T, root, rel, body string) {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
	require.NoError(t, os.WriteFile(p, []byte(body), 0o644))
}

func newResolver(t *testing.T, root string, ctx mapContext, policy tables.RowPolicy) *Resolver {
	t.Helper()
	cache := tables.NewCache(tables.NewMemoryStore(), tables.NewLoader(policy), tables.NewDefsPath(root))
	r, err := NewResolver(cache, ctx, source)
	require.NoError(t, err)
	return r
}

func TestResolveMasterOnly(t *testing.T) {
	testlog.Start(t)
	root := t.TempDir()
	writeFile(t, root, "wmo/element.table", header+
		"001001|WMO_BLOCK_NUMBER|long|WMO BLOCK NUMBER|Numeric|0|0|7\n")
	r := newResolver(t, root, mapContext{"masterDir": "wmo"}, tables.RowsStrict)

	d, err := r.Resolve(1001)
	require.NoError(t, err)
	require.Equal(t, "WMO_BLOCK_NUMBER", d.ShortName)
	require.Equal(t, TypeLong, d.Type)
	require.Equal(t, "Numeric", d.Units)
	require.Equal(t, int64(0), d.Scale)
	require.Equal(t, 1.0, d.Factor)
	require.Equal(t, int64(0), d.Reference)
	require.Equal(t, int64(7), d.Width)
	require.Equal(t, [3]int{0, 1, 1}, [3]int{d.F, d.X, d.Y})
}

func TestResolveLocalOverrideWins(t *testing.T) {
	testlog.Start(t)
	root := t.TempDir()
	writeFile(t, root, "wmo/element.table", header+
		"001001|WMO_BLOCK_NUMBER|long|WMO BLOCK NUMBER|Numeric|0|0|7\n")
	writeFile(t, root, "local/98/element.table", header+
		"001001|WMO_BLOCK_NUMBER|long|WMO BLOCK NUMBER|Numeric|0|0|10\n")
	r := newResolver(t, root, mapContext{"masterDir": "wmo", "localDir": "local/[centre]", "centre": "98"}, tables.RowsStrict)

	d, err := r.Resolve(1001)
	require.NoError(t, err)
	require.Equal(t, int64(10), d.Width)
}

func TestResolveScaleFactorAndNegativeReference(t *testing.T) {
	testlog.Start(t)
	root := t.TempDir()
	writeFile(t, root, "wmo/element.table", header+
		"012101|airTemperature|double|TEMPERATURE/AIR TEMPERATURE|K|2|0|16\n"+
		"007030|heightOfStationGroundAboveMeanSeaLevel|double|HEIGHT|m|1|-4000|17\n"+
		"010004|pressure|double|PRESSURE|Pa|-1|0|14\n"+
		"020003|presentWeather|table|PRESENT WEATHER|CODE TABLE|0|0|9\n"+
		"008042|extendedVerticalSoundingSignificance|flag|SIGNIFICANCE|FLAG TABLE|0|0|18\n"+
		"001015|stationOrSiteName|string|STATION NAME|CCITT IA5|0|0|160\n"+
		"099999|oddity|quaternion|ODD|1|0|0|1\n")
	r := newResolver(t, root, mapContext{"masterDir": "wmo"}, tables.RowsStrict)

	d, err := r.Resolve(12101)
	require.NoError(t, err)
	require.Equal(t, 0.01, d.Factor)

	d, err = r.Resolve(7030)
	require.NoError(t, err)
	require.Equal(t, int64(-4000), d.Reference)
	require.InDelta(t, 0.1, d.Factor, 1e-15)

	d, err = r.Resolve(10004)
	require.NoError(t, err)
	require.Equal(t, 10.0, d.Factor)

	want := map[int]Type{20003: TypeTable, 8042: TypeFlag, 1015: TypeString, 99999: TypeUnknown}
	for code, typ := range want {
		d, err := r.Resolve(code)
		require.NoError(t, err)
		require.Equal(t, typ, d.Type, "code %d", code)
	}
}

func TestResolveNonElementCategoriesSkipTable(t *testing.T) {
	testlog.Start(t)
	// No table exists: categories 1-3 must not need one.
	r := newResolver(t, t.TempDir(), mapContext{}, tables.RowsStrict)

	cases := map[int]Type{101000: TypeReplication, 205001: TypeOperator, 301011: TypeSequence, 401000: TypeUnknown}
	for code, typ := range cases {
		d, err := r.Resolve(code)
		require.NoError(t, err, "code %d", code)
		require.Equal(t, typ, d.Type, "code %d", code)
		require.Empty(t, d.ShortName)
	}

	_, err := r.Resolve(1001)
	require.True(t, errors.Is(err, codes.ErrNotFound), "got %v", err)
}

func TestResolveMissingCode(t *testing.T) {
	testlog.Start(t)
	root := t.TempDir()
	writeFile(t, root, "element.table", header+"001001|blockNumber|long|X|Numeric|0|0|7\n")
	r := newResolver(t, root, mapContext{}, tables.RowsStrict)

	_, err := r.Resolve(1002)
	require.ErrorIs(t, err, codes.ErrNotFound)
}

func TestResolveOutOfRange(t *testing.T) {
	testlog.Start(t)
	r := newResolver(t, t.TempDir(), mapContext{}, tables.RowsStrict)
	for _, code := range []int{-1, MaxCode + 1} {
		_, err := r.Resolve(code)
		require.ErrorIs(t, err, codes.ErrInvalidArgument)
	}
}

func TestResolveTolerantShortRowFailsOnlyThatCode(t *testing.T) {
	testlog.Start(t)
	root := t.TempDir()
	writeFile(t, root, "element.table", header+
		"001001|blockNumber|long||0|0|7\n"+
		"001002|stationNumber|long|STATION|Numeric|0|0|10\n")

	strict := newResolver(t, root, mapContext{}, tables.RowsStrict)
	_, err := strict.Resolve(1002)
	require.ErrorIs(t, err, codes.ErrInvalidArgument)

	tolerant := newResolver(t, root, mapContext{}, tables.RowsTolerant)
	_, err = tolerant.Resolve(1001)
	require.ErrorIs(t, err, codes.ErrInvalidArgument)
	d, err := tolerant.Resolve(1002)
	require.NoError(t, err)
	require.Equal(t, int64(10), d.Width)
}

func TestNewResolverValidation(t *testing.T) {
	testlog.Start(t)
	_, err := NewResolver(nil, mapContext{}, source)
	require.ErrorIs(t, err, codes.ErrInvalidArgument)
	cache := tables.NewCache(nil, nil, tables.NewDefsPath(t.TempDir()))
	_, err = NewResolver(cache, mapContext{}, tables.Source{})
	require.ErrorIs(t, err, codes.ErrInvalidArgument)
}
