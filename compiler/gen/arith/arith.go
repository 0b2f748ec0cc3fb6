package arith

import (
	"context"

	"github.com/dave/jennifer/jen"

	"github.com/syssam/structarith/compiler/gen"
)

// Generate is a convenience function to generate the record files of the
// graph using the Jennifer generator.
//
// This function properly applies hooks registered in g.Config.Hooks.
func Generate(g *gen.Graph) error {
	return GenerateContext(context.Background(), g)
}

// GenerateContext is like Generate, with a context bounding the run.
func GenerateContext(ctx context.Context, g *gen.Graph) error {
	if g == nil || g.Config == nil {
		return gen.NewConfigError("Config", nil, "missing graph config")
	}
	base := gen.GenerateFunc(func(g *gen.Graph) error {
		generator := gen.NewJenniferGenerator(g)
		generator.WithSynthesizer(NewSynthesizer(generator))
		return generator.Generate(ctx)
	})
	return g.Wrap(base).Generate(g)
}

// Synthesizer implements gen.RecordGenerator.
type Synthesizer struct {
	helper gen.GeneratorHelper
}

// NewSynthesizer creates a new record synthesizer.
// The helper parameter should be a *gen.JenniferGenerator.
func NewSynthesizer(helper gen.GeneratorHelper) *Synthesizer {
	return &Synthesizer{helper: helper}
}

// Name returns the synthesizer name.
func (s *Synthesizer) Name() string {
	return "arith"
}

// GenRecord generates the record file (<record>_arith.go).
func (s *Synthesizer) GenRecord(r *gen.Record) *jen.File {
	return genRecord(s.helper, r)
}

var _ gen.RecordGenerator = (*Synthesizer)(nil)

// genRecord emits every enabled operation of the record in a fixed order.
func genRecord(h gen.GeneratorHelper, r *gen.Record) *jen.File {
	f := h.NewFile(r.PackageName())
	locals := localNames(r)

	if !r.Declared {
		genStruct(h, f, r)
	}
	genNew(h, f, r, locals)
	if h.OperationEnabled(gen.OpIsZero) {
		genIsZero(h, f, r)
	}
	for _, op := range []gen.Operation{gen.OpAdd, gen.OpSub, gen.OpMul, gen.OpDiv} {
		if h.OperationEnabled(op) {
			genBinary(h, f, r, locals, op)
		}
	}
	for _, op := range []gen.Operation{gen.OpAddAssign, gen.OpSubAssign} {
		if h.OperationEnabled(op) {
			genAssign(h, f, r, locals, op)
		}
	}
	for _, op := range []gen.Operation{gen.OpMulScalar, gen.OpDivScalar} {
		if h.OperationEnabled(op) {
			genScalar(h, f, r, locals, op)
		}
	}
	if h.OperationEnabled(gen.OpMulFraction) {
		genFraction(h, f, r, locals)
	}
	if h.OperationEnabled(gen.OpMulBps) {
		genFractionOf(h, f, r, gen.OpMulBps, 10_000, "basis points (1/10000)")
	}
	if h.OperationEnabled(gen.OpMulPercent) {
		genFractionOf(h, f, r, gen.OpMulPercent, 100, "percent (1/100)")
	}
	return f
}
