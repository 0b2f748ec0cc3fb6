package compiler

import (
	"context"
	"fmt"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/syssam/structarith/compiler/gen"
	"github.com/syssam/structarith/compiler/gen/arith"
	"github.com/syssam/structarith/compiler/load"
)

// Compiler generates the record files of schema paths.
type Compiler struct {
	config *gen.Config
	cache  *Cache
	log    *zap.Logger
}

// Result describes a generation run.
type Result struct {
	// Records holds the names of all records loaded, in load order.
	Records []string
	// Generated holds the paths of the files written.
	Generated []string
	// Skipped holds the paths of the files that were up to date.
	Skipped []string
}

// New returns a compiler using the given configuration.
func New(c *gen.Config) *Compiler {
	log := zap.NewNop()
	if c != nil && c.Logger != nil {
		log = c.Logger
	}
	return &Compiler{config: c, log: log}
}

// WithCache enables incremental generation backed by the cache.
func (c *Compiler) WithCache(cache *Cache) *Compiler {
	c.cache = cache
	return c
}

// Config returns the compiler configuration.
func (c *Compiler) Config() *gen.Config {
	return c.config
}

// Load loads the schema paths and validates them into a graph without
// writing anything.
func (c *Compiler) Load(paths ...string) (*gen.Graph, error) {
	if c.config == nil {
		return nil, gen.NewConfigError("Config", nil, "config cannot be nil")
	}
	records, err := load.Load(paths...)
	if err != nil {
		return nil, err
	}
	return gen.NewGraph(c.config, records...)
}

// Generate loads the schema paths and writes the record files. Invalid
// schemas fail the whole run before any file is written. With a cache,
// records whose output is up to date are skipped.
func (c *Compiler) Generate(ctx context.Context, paths ...string) (*Result, error) {
	g, err := c.Load(paths...)
	if err != nil {
		return nil, err
	}
	res := &Result{}
	for _, r := range g.Records {
		res.Records = append(res.Records, r.Name)
	}
	sums := make(map[*gen.Record]string, len(g.Records))
	if c.cache != nil {
		for _, r := range g.Records {
			sum, err := Fingerprint(r)
			if err != nil {
				return nil, err
			}
			sums[r] = sum
		}
	}
	pending := g.Subgraph(func(r *gen.Record) bool {
		sum, ok := sums[r]
		if ok && c.cache.Fresh(outputKey(r), sum) {
			res.Skipped = append(res.Skipped, r.OutputPath())
			return false
		}
		return true
	})
	if len(pending.Records) > 0 {
		if err := arith.GenerateContext(ctx, pending); err != nil {
			return nil, err
		}
	}
	for _, r := range pending.Records {
		res.Generated = append(res.Generated, r.OutputPath())
		if sum, ok := sums[r]; ok {
			c.cache.Set(outputKey(r), sum)
		}
	}
	if c.cache != nil {
		if err := c.cache.Save(); err != nil {
			return nil, err
		}
	}
	c.log.Info("generation finished",
		zap.Int("records", len(res.Records)),
		zap.Int("generated", len(res.Generated)),
		zap.Int("skipped", len(res.Skipped)),
	)
	return res, nil
}

// outputKey returns the cache key of the record output.
func outputKey(r *gen.Record) string {
	path := r.OutputPath()
	if abs, err := filepath.Abs(path); err == nil {
		return abs
	}
	return path
}

// DefaultCachePath returns where the cache of a run lives: in the target
// directory if one is configured, otherwise next to the first schema path.
func DefaultCachePath(c *gen.Config, paths ...string) (string, error) {
	if c != nil && c.Target != "" {
		return filepath.Join(c.Target, CacheFile), nil
	}
	if len(paths) == 0 {
		return "", fmt.Errorf("compiler: no schema paths provided")
	}
	dir := paths[0]
	if load.IsSchemaFile(dir) {
		dir = filepath.Dir(dir)
	}
	return filepath.Join(dir, CacheFile), nil
}
