package load

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/structarith/schema/field"
)

func TestLoadDir(t *testing.T) {
	records, err := Load("./testdata/valid")
	require.NoError(t, err)
	require.Len(t, records, 2)

	tm := records[0]
	assert.Equal(t, "TokenMap", tm.Name)
	assert.Equal(t, "valid", tm.Package)
	assert.True(t, tm.Declared)
	assert.Equal(t, []string{"Sol", "Eth", "Btc"}, tm.FieldNames())
	assert.Equal(t, "Sol balance.", tm.Fields[0].Comment)
	assert.Equal(t, "eth balance", tm.Fields[1].Comment)
	assert.Contains(t, tm.Pos, "tokenmap.go")
	assert.True(t, filepath.IsAbs(tm.Dir))

	v := records[1]
	assert.Equal(t, "Vault", v.Name)
	assert.Equal(t, "vault", v.Package)
	assert.False(t, v.Declared)
	assert.Equal(t, "[3]u128", v.Fields[4].Type)
	assert.Equal(t, tm.Dir, v.Dir)
}

func TestLoadMixed(t *testing.T) {
	records, err := Load("./testdata/mixed")
	require.NoError(t, err)
	require.Len(t, records, 2)

	amount := records[0]
	assert.Equal(t, "Amount", amount.Name)
	want := []*Field{
		{Name: "Base", Type: "structarith.Uint128"},
		{Name: "Quote", Type: "structarith.Uint128"},
		{Name: "Fees", Type: "[2]uint32"},
	}
	if diff := cmp.Diff(want, amount.Fields); diff != "" {
		t.Errorf("fields mismatch (-want +got):\n%s", diff)
	}

	pair := records[1]
	assert.Equal(t, "Pair", pair.Name)
	assert.Equal(t, "mixed", pair.Package)
}

// The three schema sources describe the same record identically.
func TestLoadEquivalentSources(t *testing.T) {
	dir := t.TempDir()
	yml := `records:
  - name: Balance
    fields:
      - {name: sol, type: uint64}
      - {name: tk1, type: "[2]uint64"}
`
	src := `package tmp

//structarith:derive
type Balance struct {
	sol uint64
	tk1 [2]uint64
}
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "balance.yaml"), []byte(yml), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "balance.go"), []byte(src), 0o600))

	fromYAML, err := LoadFile(filepath.Join(dir, "balance.yaml"))
	require.NoError(t, err)
	fromGo, err := LoadSource(filepath.Join(dir, "balance.go"))
	require.NoError(t, err)
	fromDSL := MustNewRecord("Balance", field.Uint64("sol"), field.Array("tk1", field.TypeUint64, 2))

	ignore := cmpopts.IgnoreFields(Record{}, "Package", "Declared", "Dir", "Pos")
	assert.Empty(t, cmp.Diff(fromDSL, fromYAML[0], ignore))
	assert.Empty(t, cmp.Diff(fromDSL, fromGo[0], ignore))
}

func TestLoadErrors(t *testing.T) {
	t.Run("no paths", func(t *testing.T) {
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("missing path", func(t *testing.T) {
		_, err := Load("./testdata/missing")
		assert.Error(t, err)
	})

	t.Run("field without type", func(t *testing.T) {
		_, err := Load("./testdata/failure")
		assert.ErrorContains(t, err, "name and type are required")
	})

	t.Run("explicit file without records", func(t *testing.T) {
		_, err := Load("./testdata/valid/structarith.yaml")
		assert.ErrorIs(t, err, errNoRecords)
	})

	t.Run("empty directory", func(t *testing.T) {
		_, err := Load(t.TempDir())
		assert.ErrorContains(t, err, "no records found")
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "schema.toml")
		require.NoError(t, os.WriteFile(path, nil, 0o600))
		_, err := Load(path)
		assert.ErrorContains(t, err, "unsupported schema file")
	})

	t.Run("annotated non-struct", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.go")
		src := "package bad\n\n//structarith:derive\ntype Bad uint64\n"
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
		_, err := LoadSource(path)
		assert.ErrorContains(t, err, "is not a struct")
	})

	t.Run("embedded field", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.go")
		src := "package bad\n\n//structarith:derive\ntype Bad struct {\n\tOther\n}\n"
		require.NoError(t, os.WriteFile(path, []byte(src), 0o600))
		_, err := LoadSource(path)
		assert.ErrorContains(t, err, "embedded fields")
	})
}

func TestIsSchemaFile(t *testing.T) {
	for name, want := range map[string]bool{
		"vault.yaml":         true,
		"vault.yml":          true,
		"vault.json":         true,
		"tokenmap.go":        true,
		"tokenmap_test.go":   false,
		"token_map_arith.go": false,
		"README.md":          false,
		"structarith.lock":   false,
	} {
		assert.Equal(t, want, IsSchemaFile(name), name)
	}
}
