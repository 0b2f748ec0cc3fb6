package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syssam/structarith/compiler"
)

const vaultSchema = `package: vault
records:
  - name: Vault
    fields:
      - {name: sol, type: u64, comment: lamports held}
      - {name: eth, type: u64}
      - {name: tk2, type: "[3]u128"}
      - {name: _reserved, type: "[32]byte"}
`

func TestMain(m *testing.M) {
	newLogger = func(bool) (*zap.Logger, error) { return zap.NewNop(), nil }
	os.Exit(m.Run())
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func schemaDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "vault.yaml"), []byte(vaultSchema), 0o644))
	return dir
}

func TestGenerateCmd(t *testing.T) {
	dir, target := schemaDir(t), t.TempDir()
	out, err := execute(t, "generate", dir, "--target", target, "--no-cache")
	require.NoError(t, err)
	path := filepath.Join(target, "vault_arith.go")
	assert.Contains(t, out, "generated "+path)
	assert.Contains(t, out, "1 records: 1 generated, 0 up to date")
	assert.NoFileExists(t, filepath.Join(target, compiler.CacheFile))

	buf, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(buf), "func (r *Vault) MulBps(factor uint16) (*Vault, error)")
}

func TestGenerateCmdCache(t *testing.T) {
	dir := schemaDir(t)
	_, err := execute(t, "generate", dir)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, compiler.CacheFile))

	out, err := execute(t, "generate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "1 records: 0 generated, 1 up to date")
}

func TestGenerateCmdOps(t *testing.T) {
	dir, target := schemaDir(t), t.TempDir()
	_, err := execute(t, "generate", dir, "-t", target, "-p", "amount", "--ops", "add,sub", "--no-cache")
	require.NoError(t, err)
	buf, err := os.ReadFile(filepath.Join(target, "vault_arith.go"))
	require.NoError(t, err)
	code := string(buf)
	assert.Contains(t, code, "package amount")
	assert.Contains(t, code, "func (r *Vault) Sub(")
	assert.NotContains(t, code, "MulBps")

	_, err = execute(t, "generate", dir, "-t", target, "--ops", "pow")
	assert.Error(t, err)
}

func TestGenerateCmdConfigFile(t *testing.T) {
	dir := schemaDir(t)
	config := filepath.Join(dir, "structarith.yaml")
	require.NoError(t, os.WriteFile(config, []byte("schemas: [.]\ntarget: out\noperations: [add]\n"), 0o644))

	_, err := execute(t, "--config", config, "generate")
	require.NoError(t, err)
	buf, err := os.ReadFile(filepath.Join(dir, "out", "vault_arith.go"))
	require.NoError(t, err)
	assert.NotContains(t, string(buf), "func (r *Vault) Sub(")
	assert.FileExists(t, filepath.Join(dir, "out", compiler.CacheFile))

	t.Run("flags override the file", func(t *testing.T) {
		_, err := execute(t, "--config", config, "generate", "--ops", "all", "--no-cache")
		require.NoError(t, err)
		buf, err := os.ReadFile(filepath.Join(dir, "out", "vault_arith.go"))
		require.NoError(t, err)
		assert.Contains(t, string(buf), "func (r *Vault) Sub(")
	})
}

func TestGenerateCmdNoPaths(t *testing.T) {
	t.Chdir(t.TempDir())
	_, err := execute(t, "generate")
	assert.ErrorContains(t, err, "no schema paths")
}

func TestValidateCmd(t *testing.T) {
	dir := schemaDir(t)
	out, err := execute(t, "validate", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "Vault: ok")
	assert.NoFileExists(t, filepath.Join(dir, "vault_arith.go"))

	require.NoError(t, os.WriteFile(filepath.Join(dir, "bad.yaml"), []byte("records: [{name: bad, fields: [{name: a, type: u64}]}]\n"), 0o644))
	_, err = execute(t, "validate", dir)
	assert.Error(t, err)
}

func TestDescribeCmd(t *testing.T) {
	dir := schemaDir(t)
	out, err := execute(t, "describe", dir, "--format", "json")
	require.NoError(t, err)
	var infos []recordInfo
	require.NoError(t, json.Unmarshal([]byte(out), &infos))
	require.Len(t, infos, 1)
	info := infos[0]
	assert.Equal(t, "Vault", info.Name)
	assert.Equal(t, "vault", info.Package)
	assert.Equal(t, "uint64", info.Primary)
	assert.Equal(t, 32, info.Reserved)
	require.Len(t, info.Fields, 3)
	assert.Equal(t, fieldInfo{Name: "sol", GoName: "Sol", Type: "uint64", Comment: "lamports held"}, info.Fields[0])
	assert.Equal(t, "[3]uint128", info.Fields[2].Type)
	assert.Contains(t, info.Operations, "mul_percent")

	out, err = execute(t, "describe", dir)
	require.NoError(t, err)
	assert.Contains(t, out, "- name: Vault")
	assert.Contains(t, out, "primary: uint64")

	_, err = execute(t, "describe", dir, "-f", "xml")
	assert.ErrorContains(t, err, "unknown format")
}

func TestVersionCmd(t *testing.T) {
	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Regexp(t, `^structarith \S+\n$`, out)
}
