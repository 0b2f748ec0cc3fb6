package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/syssam/structarith/compiler"
	"github.com/syssam/structarith/compiler/gen"
)

type generateOptions struct {
	target  string
	pkg     string
	header  string
	runtime string
	ops     []string
	workers int
	watch   bool
	noCache bool
}

func newGenerateCmd(root *rootOptions) *cobra.Command {
	opts := &generateOptions{}
	cmd := &cobra.Command{
		Use:   "generate [paths...]",
		Short: "Generate the arithmetic of the records in the given schema paths",
		Long: `Loads the records of the given schema files and directories, validates
them, and writes one <record>_arith.go file per record. Without paths, the
schemas listed in the configuration file are used.

Examples:
  structarith generate ./schema
  structarith generate vault.yaml --target internal/vault --ops add,sub,mul_bps
  structarith generate ./amount --watch`,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags, err := opts.options(cmd)
			if err != nil {
				return err
			}
			fc, config, paths, err := root.setup(args, flags...)
			if err != nil {
				return err
			}
			c := compiler.New(config)
			if !opts.noCache && fc.CacheEnabled() {
				path, err := compiler.DefaultCachePath(config, paths...)
				if err != nil {
					return err
				}
				cache, err := compiler.OpenCache(path)
				if err != nil {
					return err
				}
				c.WithCache(cache)
			}
			out := cmd.OutOrStdout()
			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			if opts.watch {
				ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
				defer stop()
				root.logger.Info("watching schemas", zap.Strings("paths", paths))
				return c.Watch(ctx, func(res *compiler.Result, err error) {
					if err != nil {
						fmt.Fprintf(cmd.ErrOrStderr(), "generate: %v\n", err)
						return
					}
					report(out, res)
				}, paths...)
			}
			res, err := c.Generate(ctx, paths...)
			if err != nil {
				return err
			}
			report(out, res)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.target, "target", "t", "", "output directory (default: next to each schema)")
	f.StringVarP(&opts.pkg, "package", "p", "", "package name of the generated files")
	f.StringVar(&opts.header, "header", "", "header comment of the generated files")
	f.StringVar(&opts.runtime, "runtime", "", "import path of the checked arithmetic runtime")
	f.StringSliceVar(&opts.ops, "ops", nil, "operations to generate (comma separated, default all)")
	f.IntVarP(&opts.workers, "workers", "w", 0, "number of parallel workers (default GOMAXPROCS)")
	f.BoolVar(&opts.watch, "watch", false, "regenerate when a schema changes")
	f.BoolVar(&opts.noCache, "no-cache", false, "regenerate every record")
	return cmd
}

// options returns the generator options of the flags set on the command
// line.
func (o *generateOptions) options(cmd *cobra.Command) ([]gen.Option, error) {
	var opts []gen.Option
	changed := cmd.Flags().Changed
	if changed("target") {
		opts = append(opts, gen.WithTarget(o.target))
	}
	if changed("package") {
		opts = append(opts, gen.WithPackage(o.pkg))
	}
	if changed("header") {
		opts = append(opts, gen.WithHeader(o.header))
	}
	if changed("runtime") {
		opts = append(opts, gen.WithRuntime(o.runtime))
	}
	if changed("ops") {
		ops, err := gen.ParseOperations(o.ops...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gen.WithOperations(ops))
	}
	if changed("workers") {
		opts = append(opts, gen.WithWorkers(o.workers))
	}
	return opts, nil
}

func report(w io.Writer, res *compiler.Result) {
	for _, path := range res.Generated {
		fmt.Fprintf(w, "generated %s\n", path)
	}
	fmt.Fprintf(w, "%d records: %d generated, %d up to date\n", len(res.Records), len(res.Generated), len(res.Skipped))
}
