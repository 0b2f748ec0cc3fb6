package gen

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/syssam/structarith/compiler/load"
)

type (
	// The Generator interface is implemented by the record synthesizer and
	// by the hooks wrapping it.
	Generator interface {
		// Generate generates the code for the given graph.
		Generate(*Graph) error
	}

	// The GenerateFunc type is an adapter to allow the use of ordinary
	// function as Generator. If f is a function with the appropriate signature,
	// GenerateFunc(f) is a Generator that calls f.
	GenerateFunc func(*Graph) error

	// Hook defines the "generate middleware". A function that gets a Generator
	// and returns a Generator. For example:
	//
	//	hook := func(next gen.Generator) gen.Generator {
	//		return gen.GenerateFunc(func(g *Graph) error {
	//			fmt.Println("Graph:", g)
	//			return next.Generate(g)
	//		})
	//	}
	//
	Hook func(Generator) Generator
)

// Generate calls f(g).
func (f GenerateFunc) Generate(g *Graph) error {
	return f(g)
}

// Graph holds the validated records of a generation run.
type Graph struct {
	*Config
	// Records are kept in load order.
	Records []*Record
}

// NewGraph validates the loaded records and creates a new graph. All record
// failures are reported together; any failure means no graph.
func NewGraph(c *Config, records ...*load.Record) (*Graph, error) {
	if c == nil {
		return nil, NewConfigError("Config", nil, "config cannot be nil")
	}
	g := &Graph{Config: c, Records: make([]*Record, 0, len(records))}
	var (
		errs []error
		seen = make(map[string]*Record, len(records))
	)
	for _, raw := range records {
		r, err := NewRecord(c, raw)
		if err != nil {
			errs = append(errs, err)
			continue
		}
		key := filepath.Join(r.OutputDir(), r.Name)
		if prev, ok := seen[key]; ok {
			errs = append(errs, NewSchemaError(r.Name, "", DuplicateRecord,
				fmt.Sprintf("also declared at %s", prev.Pos())))
			continue
		}
		seen[key] = r
		g.Records = append(g.Records, r)
	}
	if len(errs) > 0 {
		return nil, errors.Join(errs...)
	}
	return g, nil
}

// Record returns the record with the given name, if any.
func (g *Graph) Record(name string) (*Record, bool) {
	for _, r := range g.Records {
		if r.Name == name {
			return r, true
		}
	}
	return nil, false
}

// Subgraph returns a graph sharing the config and holding only the records
// for which keep returns true.
func (g *Graph) Subgraph(keep func(*Record) bool) *Graph {
	sub := &Graph{Config: g.Config}
	for _, r := range g.Records {
		if keep(r) {
			sub.Records = append(sub.Records, r)
		}
	}
	return sub
}

// Wrap applies the configured hooks on the given generator. The first hook
// is the outermost one.
func (g *Graph) Wrap(base Generator) Generator {
	gen := base
	for i := len(g.Hooks) - 1; i >= 0; i-- {
		gen = g.Hooks[i](gen)
	}
	return gen
}
