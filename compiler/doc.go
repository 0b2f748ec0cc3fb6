// Package compiler drives code generation: it loads schema paths, validates
// them into a graph, skips records whose output is up to date, runs the arith
// synthesizer, and optionally watches the schema paths for changes.
//
//	c := compiler.New(gen.MustNewConfig(gen.WithTarget("internal/amount")))
//	res, err := c.Generate(ctx, "schema/")
package compiler
