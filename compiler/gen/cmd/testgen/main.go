// testgen is a small program demonstrating the generator on records
// declared with the field DSL.
// Run: go run ./compiler/gen/cmd/testgen
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/syssam/structarith/compiler/gen"
	"github.com/syssam/structarith/compiler/gen/arith"
	"github.com/syssam/structarith/compiler/load"
	"github.com/syssam/structarith/schema/field"
	"github.com/syssam/structarith/schema/mixin"
)

func main() {
	outDir, err := os.MkdirTemp("", "structarith-testgen-*")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create temp dir: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Output directory: %s\n", outDir)

	records := []*load.Record{
		load.MustNewRecord("Vault", mixin.Fields(
			[]mixin.Mixin{
				mixin.Balances{Tokens: []string{"sol", "eth", "btc"}},
				mixin.Padding{Size: 128},
			},
			field.Array("tk1", field.TypeUint64, 2),
			field.Array("tk2", field.TypeUint128, 3),
		)...),
		load.MustNewRecord("Fees",
			field.Uint16("maker"),
			field.Uint32("taker"),
			field.Array("tiers", field.TypeUint64, 4),
		),
	}

	config, err := gen.NewConfig(
		gen.WithTarget(outDir),
		gen.WithPackage("sample"),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create config: %v\n", err)
		os.Exit(1)
	}
	graph, err := gen.NewGraph(config, records...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create graph: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Generating record arithmetic...")
	if err := arith.Generate(graph); err != nil {
		fmt.Fprintf(os.Stderr, "generation failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("\nGenerated files:")
	entries, err := os.ReadDir(outDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to list files: %v\n", err)
	}
	for _, e := range entries {
		if info, err := e.Info(); err == nil {
			fmt.Printf("  %s (%d bytes)\n", e.Name(), info.Size())
		}
	}

	fmt.Println("\n--- Sample: vault_arith.go ---")
	if content, err := os.ReadFile(filepath.Join(outDir, "vault_arith.go")); err == nil {
		lines := strings.SplitAfter(string(content), "\n")
		if len(lines) > 80 {
			lines = append(lines[:80], "... (truncated)\n")
		}
		fmt.Print(strings.Join(lines, ""))
	}
	fmt.Printf("\nTo inspect generated code: ls -la %s\n", outDir)
}
