package main

import (
	"fmt"

	"github.com/danmuck/bufrkit/internal/accessor"
	"github.com/danmuck/bufrkit/internal/config"
	"github.com/danmuck/bufrkit/internal/message"
	"github.com/danmuck/bufrkit/internal/tables"
)

const tableAccessorName = "elementsTable"

// newTableAccessor binds an elements table accessor to a message holding the
// configured context values.
func newTableAccessor(cfg config.Config) (*accessor.ElementsTable, error) {
	msg := message.New()
	for k, v := range cfg.Context {
		msg.SetString(k, v)
	}

	cache := tables.NewCache(
		tables.NewMemoryStore(),
		tables.NewLoader(cfg.Policy()),
		tables.NewDefsPath(cfg.DefinitionsPath...),
	)
	src := cfg.Source()
	a, err := accessor.DefaultRegistry().Create(
		accessor.KindElementsTable.Name,
		accessor.Binding{Name: tableAccessorName, Handle: msg, Creator: msg},
		accessor.ElementsTableConfig{
			Dictionary: src.Dictionary,
			MasterDir:  src.MasterDir,
			LocalDir:   src.LocalDir,
			Tables:     cache,
		},
	)
	if err != nil {
		return nil, fmt.Errorf("bind %s: %w", tableAccessorName, err)
	}
	if err := msg.Add(a); err != nil {
		return nil, err
	}
	table, ok := a.(*accessor.ElementsTable)
	if !ok {
		return nil, fmt.Errorf("bind %s: unexpected accessor %T", tableAccessorName, a)
	}
	return table, nil
}
