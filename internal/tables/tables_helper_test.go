package tables

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/danmuck/bufrkit/internal/codes"
)

type mapContext map[string]string

func (m mapContext) String(name string) (string, error) {
	v, ok := m[name]
	if !ok {
		return "", fmt.Errorf("%w: %s", codes.ErrNotFound, name)
	}
	return v, nil
}

// countingLoader wraps os.Open and counts opens per path.
type countingLoader struct {
	mu    sync.Mutex
	opens map[string]int
}

func newCountingLoader(policy RowPolicy) (*Loader, *countingLoader) {
	c := &countingLoader{opens: map[string]int{}}
	l := NewLoader(policy)
	l.Open = func(path string) (io.ReadCloser, error) {
		c.mu.Lock()
		c.opens[path]++
		c.mu.Unlock()
		return os.Open(path)
	}
	return l, c
}

func (c *countingLoader) total() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := 0
	for _, v := range c.opens {
		n += v
	}
	return n
}

func writeTable(t *testing.T, root, rel, body string) string {
	t.Helper()
	p := filepath.Join(root, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(p, []byte(body), 0o644); err != nil {
		t.Fatalf("write %s: %v", rel, err)
	}
	return p
}

const tableHeader = "#code|abbreviation|type|name|unit|scale|reference|width\n"
