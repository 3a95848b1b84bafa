package tables

import (
	"fmt"
	"strings"
	"time"

	"github.com/danmuck/bufrkit/internal/codes"
	"github.com/danmuck/bufrkit/internal/observability"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/singleflight"
)

// Source names a table and the context fields holding its master and local
// directories.
type Source struct {
	Dictionary string
	MasterDir  string
	LocalDir   string
}

func (s Source) Validate() error {
	if strings.TrimSpace(s.Dictionary) == "" {
		return fmt.Errorf("%w: table source missing dictionary", codes.ErrInvalidArgument)
	}
	return nil
}

// ComposeKey returns the cache key for a master/local pair.
func ComposeKey(localPath, masterPath string) string {
	if localPath != "" {
		return localPath + ":" + masterPath
	}
	return masterPath
}

// Cache resolves sources to merged dictionaries, loading each composed key at
// most once.
type Cache struct {
	store  Store
	loader *Loader
	paths  PathResolver
	group  singleflight.Group
}

func NewCache(store Store, loader *Loader, paths PathResolver) *Cache {
	if store == nil {
		store = NewMemoryStore()
	}
	if loader == nil {
		loader = NewLoader(RowsStrict)
	}
	return &Cache{store: store, loader: loader, paths: paths}
}

// Store exposes the backing store.
func (c *Cache) Store() Store {
	return c.store
}

// Dictionary returns the merged dictionary for src in ctx.
func (c *Cache) Dictionary(ctx Context, src Source) (*Dictionary, error) {
	if err := src.Validate(); err != nil {
		return nil, err
	}
	if c.paths == nil {
		return nil, fmt.Errorf("%w: cache has no path resolver", codes.ErrNotFound)
	}
	masterRel, err := c.paths.Recompose(ctx, src.MasterDir, src.Dictionary)
	if err != nil {
		observability.RecordTableLookup(src.Dictionary, observability.LookupError)
		return nil, err
	}
	localRel := ""
	if src.LocalDir != "" {
		local, err := fieldValue(ctx, src.LocalDir)
		if err != nil {
			observability.RecordTableLookup(src.Dictionary, observability.LookupError)
			return nil, err
		}
		if local != "" {
			localRel, err = c.paths.Recompose(ctx, src.LocalDir, src.Dictionary)
			if err != nil {
				observability.RecordTableLookup(src.Dictionary, observability.LookupError)
				return nil, err
			}
		}
	}
	key := ComposeKey(localRel, masterRel)

	if d, ok := c.store.Get(key); ok {
		observability.RecordTableLookup(src.Dictionary, observability.LookupHit)
		return d, nil
	}

	v, err, _ := c.group.Do(key, func() (any, error) {
		if d, ok := c.store.Get(key); ok {
			return d, nil
		}
		d, err := c.build(src.Dictionary, key, masterRel, localRel)
		if err != nil {
			return nil, err
		}
		return c.store.Publish(key, d), nil
	})
	if err != nil {
		observability.RecordTableLookup(src.Dictionary, observability.LookupError)
		return nil, err
	}
	observability.RecordTableLookup(src.Dictionary, observability.LookupLoad)
	return v.(*Dictionary), nil
}

// build parses the master file and merges the local file over it. Nothing is
// published until both are fully read.
func (c *Cache) build(name, key, masterRel, localRel string) (*Dictionary, error) {
	start := time.Now()
	masterPath, ok := c.paths.Find(masterRel)
	if !ok {
		log.Error().
			Str("dictionary", name).
			Str("master_path", masterRel).
			Str("local_path", localRel).
			Msg("tables: unable to find definition file")
		return nil, fmt.Errorf("%w: definition file %s", codes.ErrNotFound, masterRel)
	}
	log.Debug().Str("dictionary", name).Str("file", masterPath).Msg("tables: loading dictionary")

	d := NewDictionary()
	if err := c.loader.LoadFile(masterPath, d); err != nil {
		return nil, err
	}
	if localRel != "" {
		// A local table that is not on the search path merges nothing.
		if localPath, ok := c.paths.Find(localRel); ok {
			if err := c.loader.LoadFile(localPath, d); err != nil {
				return nil, err
			}
		} else {
			log.Debug().
				Str("dictionary", name).
				Str("local_path", localRel).
				Msg("tables: no local override found")
		}
	}
	observability.RecordTableLoad(name, key, d.Len(), time.Since(start))
	log.Info().Str("key", key).Int("rows", d.Len()).Msg("tables: dictionary published")
	return d, nil
}
