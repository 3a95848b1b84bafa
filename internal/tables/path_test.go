package tables

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/danmuck/bufrkit/internal/testutil/testlog"
	"github.com/stretchr/testify/require"
)

func TestRecomposePlaceholders(t *testing.T) {
	testlog.Start(t)
	ctx := mapContext{"centre": "98", "version": "36"}

	got, err := Recompose(ctx, "bufr/tables/0/local/[version]/[centre:l]/element.table")
	require.NoError(t, err)
	require.Equal(t, "bufr/tables/0/local/36/98/element.table", got)

	got, err = Recompose(nil, "plain/element.table")
	require.NoError(t, err)
	require.Equal(t, "plain/element.table", got)

	_, err = Recompose(ctx, "bufr/[missing]/element.table")
	require.True(t, errors.Is(err, codes.ErrNotFound), "got %v", err)

	_, err = Recompose(ctx, "bufr/[version/element.table")
	require.ErrorIs(t, err, codes.ErrInvalidArgument)
}

func TestDefsPathRecomposeDirectory(t *testing.T) {
	testlog.Start(t)
	p := NewDefsPath("defs")
	ctx := mapContext{"masterDir": " bufr/tables/0/wmo/[v] ", "v": "36", "empty": ""}

	got, err := p.Recompose(ctx, "masterDir", "element.table")
	require.NoError(t, err)
	require.Equal(t, "bufr/tables/0/wmo/36/element.table", got)

	for _, field := range []string{"", "empty", "unset"} {
		got, err = p.Recompose(ctx, field, "element.table")
		require.NoError(t, err)
		require.Equal(t, "element.table", got, "field %q", field)
	}
}

func TestDefsPathFindSearchesRootsInOrder(t *testing.T) {
	testlog.Start(t)
	first := t.TempDir()
	second := t.TempDir()
	writeTable(t, second, "bufr/element.table", tableHeader)
	shadow := writeTable(t, first, "bufr/sequence.def", "")
	writeTable(t, second, "bufr/sequence.def", "")

	p := NewDefsPath(first, " ", second)
	require.Len(t, p.Roots, 2)

	got, ok := p.Find("bufr/element.table")
	require.True(t, ok)
	require.Equal(t, filepath.Join(second, "bufr", "element.table"), got)

	got, ok = p.Find("bufr/sequence.def")
	require.True(t, ok)
	require.Equal(t, shadow, got)

	_, ok = p.Find("bufr")
	require.False(t, ok, "directories are not table files")
	_, ok = p.Find("")
	require.False(t, ok)

	got, ok = p.Find(shadow)
	require.True(t, ok)
	require.Equal(t, shadow, got)
}
