package arith

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/structarith/compiler/gen"
	"github.com/syssam/structarith/compiler/load"
)

func raw(name string, pairs ...string) *load.Record {
	r := &load.Record{Name: name, Package: "vault", Dir: "/tmp/vault"}
	for i := 0; i+1 < len(pairs); i += 2 {
		r.Fields = append(r.Fields, &load.Field{Name: pairs[i], Type: pairs[i+1]})
	}
	return r
}

func vaultRecord() *load.Record {
	return raw("Vault",
		"sol", "u64",
		"eth", "uint64",
		"btc", "uint64",
		"tk1", "[2]uint64",
		"tk2", "[3]u128",
		"_reserved", "[128]byte",
	)
}

// render generates the source of the single record of the graph.
func render(t *testing.T, r *load.Record, opts ...gen.Option) string {
	t.Helper()
	g, err := gen.NewGraph(gen.MustNewConfig(opts...), r)
	require.NoError(t, err)
	require.Len(t, g.Records, 1)
	helper := gen.NewJenniferGenerator(g)
	code := NewSynthesizer(helper).GenRecord(g.Records[0]).GoString()
	_, err = parser.ParseFile(token.NewFileSet(), "", code, parser.AllErrors)
	require.NoError(t, err, code)
	return code
}

func TestGenRecord(t *testing.T) {
	code := render(t, vaultRecord())

	for _, s := range []string{
		"// " + gen.DefaultHeader,
		"package vault",
		"type Vault struct",
		"func NewVault(sol uint64, eth uint64, btc uint64, tk1 [2]uint64, tk2 [3]structarith.Uint128) *Vault",
		"_reserved: [128]byte{}",
		"func (r *Vault) IsZero() bool",
		"if !r.Tk2[i].IsZero()",
		"func (r *Vault) Add(other *Vault) (*Vault, error)",
		"sol, err := structarith.AddUint64(r.Sol, other.Sol)",
		`return nil, structarith.NewOpError("add", "sol", -1, err)`,
		"if tk2[i], err = structarith.AddUint128(r.Tk2[i], other.Tk2[i]); err != nil",
		`return nil, structarith.NewOpError("add", "tk2", i, err)`,
		"return NewVault(sol, eth, btc, tk1, tk2), nil",
		"func (r *Vault) Sub(other *Vault) (*Vault, error)",
		"func (r *Vault) Mul(other *Vault) (*Vault, error)",
		"func (r *Vault) Div(other *Vault) (*Vault, error)",
		"func (r *Vault) AddAssign(other *Vault) error",
		"r.Tk1 = tk1",
		`return structarith.NewOpError("sub_assign", "eth", -1, err)`,
		"func (r *Vault) MulScalar(factor uint64) (*Vault, error)",
		"structarith.MulUint128(r.Tk2[i], structarith.Uint128From64(factor))",
		"func (r *Vault) DivScalar(factor uint64) (*Vault, error)",
		"func (r *Vault) MulFraction(numerator, denominator uint64) (*Vault, error)",
		"structarith.MulDivUint64(r.Btc, numerator, denominator)",
		"structarith.MulDivUint128(r.Tk2[i], structarith.Uint128From64(numerator), structarith.Uint128From64(denominator))",
		"func (r *Vault) MulBps(factor uint16) (*Vault, error)",
		"return r.MulFraction(uint64(factor), 10000)",
		"return r.MulFraction(uint64(factor), 100)",
	} {
		assert.Contains(t, code, s)
	}
	assert.Regexp(t, `Tk2\s+\[3\]structarith\.Uint128`, code)
	assert.Regexp(t, `_reserved\s+\[128\]byte\n`, code)
	assert.NotContains(t, code, "r._reserved", "reserved region is never read")
}

func TestGenRecordReserved(t *testing.T) {
	t.Run("schema alias", func(t *testing.T) {
		code := render(t, raw("Small", "a", "u64", "b", "[3]u8", "_reserved", "[16]u8"), gen.WithOperations(gen.OpAdd))
		assert.Regexp(t, `_reserved\s+\[16\]uint8\n`, code)
		assert.Contains(t, code, "_reserved: [16]uint8{}")
		assert.Contains(t, code, "func NewSmall(a uint64, b [3]uint8) *Small")
		assert.NotContains(t, code, "u8")
	})
	t.Run("u128 alias", func(t *testing.T) {
		code := render(t, raw("Wide", "a", "u64", "_reserved", "[2]u128"))
		assert.Contains(t, code, "_reserved: [2]structarith.Uint128{}")
	})
	t.Run("named type", func(t *testing.T) {
		code := render(t, raw("Padded", "a", "u64", "_reserved", "[4]Padding"))
		assert.Contains(t, code, "_reserved: [4]Padding{}")
	})
}

func TestGenRecordNewOrder(t *testing.T) {
	code := render(t, vaultRecord())
	var last int
	for _, s := range []string{"Sol:", "Eth:", "Btc:", "Tk1:", "Tk2:", "_reserved:"} {
		i := strings.Index(code, s)
		require.Positive(t, i, s)
		assert.Greater(t, i, last, "constructor keys follow the declared order: %s", s)
		last = i
	}
}

func TestGenRecordOrder(t *testing.T) {
	code := render(t, vaultRecord())
	var last int
	for _, s := range []string{
		"type Vault struct", "func NewVault", ") IsZero(", ") Add(", ") Sub(", ") Mul(", ") Div(",
		") AddAssign(", ") SubAssign(", ") MulScalar(", ") DivScalar(", ") MulFraction(", ") MulBps(", ") MulPercent(",
	} {
		i := strings.Index(code, s)
		require.Positive(t, i, s)
		assert.Greater(t, i, last, s)
		last = i
	}
}

func TestGenRecordDeclared(t *testing.T) {
	r := raw("TokenMap", "Sol", "uint64", "Eth", "uint64", "Btc", "uint64")
	r.Declared = true
	r.Package = "tokenmap"
	code := render(t, r)

	assert.Contains(t, code, "package tokenmap")
	assert.NotContains(t, code, "type TokenMap struct")
	assert.Contains(t, code, "func NewTokenMap(sol uint64, eth uint64, btc uint64) *TokenMap")
	assert.Contains(t, code, "func (r *TokenMap) SubAssign(other *TokenMap) error")
	assert.NotContains(t, code, "_reserved")
}

func TestGenRecordOperations(t *testing.T) {
	code := render(t, raw("Pair", "a", "u32", "b", "[2]u32"), gen.WithOperations(gen.OpAdd))

	assert.Contains(t, code, "func NewPair(a uint32, b [2]uint32) *Pair")
	assert.Contains(t, code, "func (r *Pair) Add(other *Pair) (*Pair, error)")
	for _, s := range []string{"IsZero", "Sub(", "AddAssign", "MulScalar", "MulFraction", "MulBps"} {
		assert.NotContains(t, code, s)
	}

	code = render(t, raw("Pair", "a", "u32", "b", "[2]u32"), gen.WithOperations(gen.OpMulPercent))
	assert.Contains(t, code, ") MulFraction(", "percent implies fraction")
	assert.Contains(t, code, "return r.MulFraction(uint32(factor), 100)")
}

func TestGenRecordWidening(t *testing.T) {
	t.Run("u16 primary", func(t *testing.T) {
		code := render(t, raw("Mixed", "a", "u16", "b", "u32", "c", "[2]u64"))
		assert.Contains(t, code, "func (r *Mixed) MulScalar(factor uint16) (*Mixed, error)")
		assert.Contains(t, code, "structarith.MulUint32(r.B, uint32(factor))")
		assert.Contains(t, code, "structarith.MulUint64(r.C[i], uint64(factor))")
		assert.Contains(t, code, "return r.MulFraction(factor, 10000)")
	})
	t.Run("u128 primary", func(t *testing.T) {
		code := render(t, raw("Big", "a", "u128", "b", "[2]uint128"))
		assert.Contains(t, code, "func (r *Big) MulFraction(numerator, denominator structarith.Uint128) (*Big, error)")
		assert.Contains(t, code, "structarith.MulDivUint128(r.A, numerator, denominator)")
		assert.Contains(t, code, "return r.MulFraction(structarith.Uint128From64(uint64(factor)), structarith.Uint128From64(10000))")
		assert.Contains(t, code, "if !r.A.IsZero()")
	})
	t.Run("u8 primary without factors", func(t *testing.T) {
		code := render(t, raw("Small", "a", "u8", "b", "u8"), gen.WithOperations(gen.OpAdd, gen.OpMulScalar))
		assert.Contains(t, code, "structarith.MulUint8(r.B, factor)")
	})
}

func TestLocalNames(t *testing.T) {
	g, err := gen.NewGraph(gen.MustNewConfig(gen.WithOperations(gen.OpAdd)),
		raw("Odd", "err", "u64", "Func", "u64", "len", "u64", "i", "u64", "x", "u64"),
	)
	require.NoError(t, err)
	r := g.Records[0]
	names := localNames(r)
	assert.Equal(t, "_err", names[r.Fields[0]])
	assert.Equal(t, "_func", names[r.Fields[1]])
	assert.Equal(t, "_len", names[r.Fields[2]])
	assert.Equal(t, "_i", names[r.Fields[3]])
	assert.Equal(t, "x", names[r.Fields[4]])

	code := render(t, raw("Odd", "err", "u64", "Func", "u64", "x", "[2]u64"), gen.WithOperations(gen.OpAdd))
	assert.Contains(t, code, "_err, err := structarith.AddUint64(r.Err, other.Err)")
	assert.Contains(t, code, "return NewOdd(_err, _func, x), nil")
}

func TestGenerate(t *testing.T) {
	target := t.TempDir()
	var (
		mu    sync.Mutex
		calls []string
	)
	hook := func(name string) gen.Hook {
		return func(next gen.Generator) gen.Generator {
			return gen.GenerateFunc(func(g *gen.Graph) error {
				mu.Lock()
				calls = append(calls, name)
				mu.Unlock()
				return next.Generate(g)
			})
		}
	}
	g, err := gen.NewGraph(
		gen.MustNewConfig(gen.WithTarget(target), gen.WithHooks(hook("outer"), hook("inner"))),
		vaultRecord(),
		raw("Pair", "a", "u32", "b", "u32"),
	)
	require.NoError(t, err)
	require.NoError(t, Generate(g))
	assert.Equal(t, []string{"outer", "inner"}, calls)

	for _, name := range []string{"vault_arith.go", "pair_arith.go"} {
		path := filepath.Join(target, name)
		buf, err := os.ReadFile(path)
		require.NoError(t, err)
		_, err = parser.ParseFile(token.NewFileSet(), path, buf, parser.AllErrors)
		require.NoError(t, err)
	}

	t.Run("nil graph", func(t *testing.T) {
		assert.True(t, gen.IsConfigError(Generate(nil)))
	})
}
