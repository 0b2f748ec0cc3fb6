package compiler

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/structarith/compiler/gen"
	"github.com/syssam/structarith/compiler/load"
	"github.com/syssam/structarith/schema/field"
)

func TestCache(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, CacheFile)

	c, err := OpenCache(path)
	require.NoError(t, err)
	assert.Zero(t, c.Len())
	require.NoError(t, c.Save())
	assert.NoFileExists(t, path, "an unchanged cache is not written")

	c.Set("/a/x_arith.go", "1")
	c.Set("/a/y_arith.go", "2")
	c.Set("/b/z_arith.go", "3")
	require.NoError(t, c.Save())

	c, err = OpenCache(path)
	require.NoError(t, err)
	assert.Equal(t, 3, c.Len())
	sum, ok := c.Get("/a/y_arith.go")
	assert.True(t, ok)
	assert.Equal(t, "2", sum)

	c.DeletePrefix("/a/")
	assert.Equal(t, 1, c.Len())
	c.Delete("/b/z_arith.go")
	_, ok = c.Get("/b/z_arith.go")
	assert.False(t, ok)

	t.Run("fresh", func(t *testing.T) {
		out := filepath.Join(dir, "vault_arith.go")
		c.Set(out, "sum")
		assert.False(t, c.Fresh(out, "sum"), "missing output")
		_, ok := c.Get(out)
		assert.False(t, ok, "missing output is forgotten")

		require.NoError(t, os.WriteFile(out, nil, 0o644))
		c.Set(out, "sum")
		assert.True(t, c.Fresh(out, "sum"))
		assert.False(t, c.Fresh(out, "other"))
	})

	t.Run("corrupt", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("not msgpack"), 0o644))
		c, err := OpenCache(path)
		require.NoError(t, err)
		assert.Zero(t, c.Len())
		require.NoError(t, c.Save())
		c, err = OpenCache(path)
		require.NoError(t, err)
		assert.Zero(t, c.Len())
	})
}

func TestFingerprint(t *testing.T) {
	raw := load.MustNewRecord("Pair", field.Uint64("a"), field.Array("b", field.TypeUint64, 2))
	raw.Package = "pair"
	record := func(opts ...gen.Option) *gen.Record {
		r, err := gen.NewRecord(gen.MustNewConfig(opts...), raw)
		require.NoError(t, err)
		return r
	}

	a, err := Fingerprint(record())
	require.NoError(t, err)
	b, err := Fingerprint(record())
	require.NoError(t, err)
	assert.Equal(t, a, b)
	assert.Len(t, a, 64)

	all, err := Fingerprint(record(gen.WithOperations(gen.AllOperations)))
	require.NoError(t, err)
	assert.Equal(t, a, all, "default operations select every operation")

	c, err := Fingerprint(record(gen.WithOperations(gen.OpAdd)))
	require.NoError(t, err)
	assert.NotEqual(t, a, c)

	d, err := Fingerprint(record(gen.WithHeader("Code generated by hand. DO NOT EDIT.")))
	require.NoError(t, err)
	assert.NotEqual(t, a, d)
}
