package accessor

import (
	"fmt"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/danmuck/bufrkit/internal/descriptor"
	"github.com/danmuck/bufrkit/internal/tables"
)

// ElementsTableConfig names the element table and the fields holding its
// master and local directories.
type ElementsTableConfig struct {
	Dictionary string
	MasterDir  string
	LocalDir   string
	Tables     *tables.Cache
}

func (c ElementsTableConfig) Validate() error {
	if c.Tables == nil {
		return fmt.Errorf("%w: elements table config missing cache", codes.ErrInvalidArgument)
	}
	return c.source().Validate()
}

func (c ElementsTableConfig) source() tables.Source {
	return tables.Source{Dictionary: c.Dictionary, MasterDir: c.MasterDir, LocalDir: c.LocalDir}
}

// ElementsTable is a read-only, zero-length accessor whose only job is to
// resolve element descriptors for the message that owns it.
type ElementsTable struct {
	Gen
	resolver *descriptor.Resolver
	source   tables.Source
}

func NewElementsTable(b Binding, cfg ElementsTableConfig) (*ElementsTable, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	resolver, err := descriptor.NewResolver(cfg.Tables, b.Handle, cfg.source())
	if err != nil {
		return nil, err
	}
	t := &ElementsTable{resolver: resolver, source: cfg.source()}
	t.bind(t, KindElementsTable, b)
	if err := t.Init(b.Length); err != nil {
		return nil, err
	}
	return t, nil
}

func (t *ElementsTable) Init(int64) error {
	t.length = 0
	t.flags |= FlagReadOnly
	return nil
}

func (t *ElementsTable) Source() tables.Source { return t.source }

// Descriptor resolves code through the table cache.
func (t *ElementsTable) Descriptor(code int) (*descriptor.Descriptor, error) {
	return t.resolver.Resolve(code)
}

func (t *ElementsTable) ValueCount() (int64, error) { return 1, nil }
func (t *ElementsTable) NativeType() NativeType     { return TypeString }

// The table itself has no scalar value.
func (t *ElementsTable) UnpackString() (string, error) {
	return "", t.notImplemented("unpack_string")
}

func (t *ElementsTable) UnpackLong([]int64) (int, error) {
	return 0, t.notImplemented("unpack_long")
}

func (t *ElementsTable) UnpackDouble([]float64) (int, error) {
	return 0, t.notImplemented("unpack_double")
}
