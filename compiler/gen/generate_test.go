package gen

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/dave/jennifer/jen"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/structarith/schema/field"
)

// stubSynth emits a constant per record through the helper.
type stubSynth struct {
	helper GeneratorHelper
	broken bool
}

func (s *stubSynth) Name() string { return "stub" }

func (s *stubSynth) GenRecord(r *Record) *jen.File {
	f := s.helper.NewFile(r.PackageName())
	if s.broken {
		f.Op("}")
		return f
	}
	f.Var().Id("_").Add(s.helper.GoType(r.Fields[0]))
	f.Func().Id(r.Constructor()).Params().Add(s.helper.ScalarType(field.TypeUint128)).Block(
		jen.Return(jen.Qual(s.helper.RuntimePkg(), "Uint128").Values()),
	)
	return f
}

func newTestGraph(t *testing.T, opts ...Option) *Graph {
	t.Helper()
	target := t.TempDir()
	g, err := NewGraph(MustNewConfig(append([]Option{WithTarget(target)}, opts...)...),
		vaultRecord(),
		raw("Pair", "a", "u32", "b", "u64"),
	)
	require.NoError(t, err)
	return g
}

func TestJenniferGenerator(t *testing.T) {
	t.Run("writes one file per record", func(t *testing.T) {
		g := newTestGraph(t)
		generator := NewJenniferGenerator(g).WithWorkers(1)
		generator.WithSynthesizer(&stubSynth{helper: generator})
		require.NoError(t, generator.Generate(context.Background()))

		assert.ElementsMatch(t, []string{
			filepath.Join(g.Target, "vault_arith.go"),
			filepath.Join(g.Target, "pair_arith.go"),
		}, generator.Written())
		m := generator.Metrics()
		assert.Equal(t, 2, m.FilesGenerated)
		assert.Positive(t, m.TotalBytes)

		buf, err := os.ReadFile(filepath.Join(g.Target, "vault_arith.go"))
		require.NoError(t, err)
		code := string(buf)
		assert.Contains(t, code, "// "+DefaultHeader)
		assert.Contains(t, code, "package vault")
		assert.Contains(t, code, `"github.com/syssam/structarith"`)
		assert.Contains(t, code, "func NewVault() structarith.Uint128")
	})

	t.Run("custom runtime and header", func(t *testing.T) {
		g := newTestGraph(t, WithRuntime("example.com/checked"), WithHeader("Code generated by test. DO NOT EDIT."))
		generator := NewJenniferGenerator(g)
		generator.WithSynthesizer(&stubSynth{helper: generator})
		require.NoError(t, generator.Generate(context.Background()))

		buf, err := os.ReadFile(filepath.Join(g.Target, "pair_arith.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), `structarith "example.com/checked"`)
		assert.Contains(t, string(buf), "// Code generated by test. DO NOT EDIT.")
	})

	t.Run("requires a synthesizer", func(t *testing.T) {
		err := NewJenniferGenerator(newTestGraph(t)).WithSynthesizer(nil).Generate(context.Background())
		assert.True(t, IsConfigError(err))
	})

	t.Run("render failure", func(t *testing.T) {
		g := newTestGraph(t)
		generator := NewJenniferGenerator(g)
		generator.WithSynthesizer(&stubSynth{helper: generator, broken: true})
		err := generator.Generate(context.Background())
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrGenerationFailed)
		assert.Empty(t, generator.Written())
	})

	t.Run("cancelled context", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		g := newTestGraph(t)
		generator := NewJenniferGenerator(g)
		generator.WithSynthesizer(&stubSynth{helper: generator})
		assert.ErrorIs(t, generator.Generate(ctx), context.Canceled)
		assert.Empty(t, generator.Written())
	})
}

func TestGeneratorHelper(t *testing.T) {
	g := newTestGraph(t, WithOperations(OpAdd))
	generator := NewJenniferGenerator(g)
	vault, ok := g.Record("Vault")
	require.True(t, ok)

	render := func(c jen.Code) string { return jen.Var().Id("x").Add(c).GoString() }
	assert.Equal(t, "var x uint64", render(generator.GoType(vault.Fields[0])))
	assert.Equal(t, "var x [2]uint64", render(generator.GoType(vault.Fields[3])))
	assert.Equal(t, "var x [3]structarith.Uint128", render(generator.GoType(vault.Fields[4])))
	assert.Equal(t, "var x structarith.Uint128", render(generator.ElemType(vault.Fields[4])))
	assert.Equal(t, "var x [128]byte", render(generator.GoType(vault.Reserved)))

	assert.Same(t, g, generator.Graph())
	assert.Equal(t, DefaultRuntime, generator.RuntimePkg())
	assert.True(t, generator.OperationEnabled(OpAdd))
	assert.True(t, generator.OperationEnabled(OpNew))
	assert.False(t, generator.OperationEnabled(OpMulBps))
}
