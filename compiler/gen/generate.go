package gen

import (
	"context"
	"go/types"
	"path"
	"runtime"
	"sync"

	"github.com/dave/jennifer/jen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/syssam/structarith/schema/field"
)

// JenniferGenerator renders the records of a graph with a RecordGenerator,
// one file per record, in parallel.
type JenniferGenerator struct {
	graph   *Graph
	workers int
	synth   RecordGenerator

	mu      sync.Mutex
	written []string
	metrics WriterMetrics
}

// NewJenniferGenerator creates a new Jennifer-based generator.
// You must call WithSynthesizer() before calling Generate().
//
// Example:
//
//	import "github.com/syssam/structarith/compiler/gen/arith"
//
//	generator := gen.NewJenniferGenerator(graph)
//	generator.WithSynthesizer(arith.NewSynthesizer(generator))
//	generator.Generate(ctx)
func NewJenniferGenerator(g *Graph) *JenniferGenerator {
	workers := runtime.GOMAXPROCS(0)
	if g.Config != nil && g.Workers > 0 {
		workers = g.Workers
	}
	return &JenniferGenerator{
		graph:   g,
		workers: workers,
	}
}

// WithWorkers sets the number of parallel workers.
func (g *JenniferGenerator) WithWorkers(n int) *JenniferGenerator {
	if n > 0 {
		g.workers = n
	}
	return g
}

// WithSynthesizer sets the record code synthesizer.
func (g *JenniferGenerator) WithSynthesizer(s RecordGenerator) *JenniferGenerator {
	if s != nil {
		g.synth = s
	}
	return g
}

// Generate renders and writes every record of the graph. The first failure
// cancels the records not yet started.
func (g *JenniferGenerator) Generate(ctx context.Context) error {
	if g.synth == nil {
		return NewConfigError("Synthesizer", nil, "no synthesizer set: call WithSynthesizer() before Generate()")
	}
	log := g.graph.logger().With(zap.String("synthesizer", g.synth.Name()))
	errg, ctx := errgroup.WithContext(ctx)
	errg.SetLimit(g.workers)
	for _, r := range g.graph.Records {
		errg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f := g.synth.GenRecord(r)
			if f == nil {
				return NewGenerationError("render", r.FileName(), "synthesizer returned no file for record "+r.Name, nil)
			}
			if err := g.writeFile(f, r.OutputDir(), r.FileName()); err != nil {
				return err
			}
			log.Debug("record generated", zap.String("record", r.Name), zap.String("path", r.OutputPath()))
			return nil
		})
	}
	return errg.Wait()
}

// Written returns the paths written by the generator so far.
func (g *JenniferGenerator) Written() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.written...)
}

// Metrics returns the generation metrics.
func (g *JenniferGenerator) Metrics() WriterMetrics {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.metrics
}

// =============================================================================
// GeneratorHelper interface implementation
// These exported methods allow synthesizer packages to access helper functionality.
// =============================================================================

// NewFile creates a new Jennifer file with the standard header comment.
func (g *JenniferGenerator) NewFile(pkg string) *jen.File {
	f := jen.NewFile(pkg)
	if h := g.graph.Header; h != "" {
		f.HeaderComment(h)
	}
	// Generated code always refers to the runtime as structarith.
	if rt := g.RuntimePkg(); path.Base(rt) == "structarith" {
		f.ImportName(rt, "structarith")
	} else {
		f.ImportAlias(rt, "structarith")
	}
	return f
}

// GoType returns the Jennifer code for a field's Go type.
func (g *JenniferGenerator) GoType(f *Field) jen.Code {
	if f.IsArray() {
		return jen.Index(jen.Lit(f.Len)).Add(g.ElemType(f))
	}
	return g.ElemType(f)
}

// ElemType returns the Jennifer code for a field's element type. A reserved
// element keeps its spelling when it is a Go type, e.g. byte; schema aliases
// such as u8 resolve to the scalar type.
func (g *JenniferGenerator) ElemType(f *Field) jen.Code {
	if f.Reserved && f.Ident != "" && (!f.Type.Valid() || types.Universe.Lookup(f.Ident) != nil) {
		return jen.Id(f.Ident)
	}
	return g.ScalarType(f.Type)
}

// ScalarType returns the Jennifer code for a scalar type.
func (g *JenniferGenerator) ScalarType(t field.Type) jen.Code {
	if t.Native() {
		return jen.Id(t.String())
	}
	return jen.Qual(g.RuntimePkg(), "Uint128")
}

// RuntimePkg returns the import path for the runtime helpers package.
func (g *JenniferGenerator) RuntimePkg() string {
	if g.graph.Config == nil || g.graph.Runtime == "" {
		return DefaultRuntime
	}
	return g.graph.Runtime
}

// Graph returns the record graph.
func (g *JenniferGenerator) Graph() *Graph {
	return g.graph
}

// OperationEnabled reports if the given operation is generated.
func (g *JenniferGenerator) OperationEnabled(op Operation) bool {
	return g.graph.OperationEnabled(op)
}

// Verify JenniferGenerator implements GeneratorHelper at compile time.
var _ GeneratorHelper = (*JenniferGenerator)(nil)
