// Command structarith generates checked elementwise arithmetic for value
// records described by schema files or annotated Go structs.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/syssam/structarith/compiler"
	"github.com/syssam/structarith/compiler/gen"
)

// DefaultConfigFile is read from the working directory when no --config
// flag is given and the file exists.
const DefaultConfigFile = "structarith.yaml"

// rootOptions holds the global flags and the state derived from them.
type rootOptions struct {
	verbose bool
	config  string

	logger *zap.Logger
}

// newLogger builds the logger of a command run.
var newLogger = func(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// newRootCmd returns the structarith command tree.
func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:   "structarith",
		Short: "Checked elementwise arithmetic for fixed-layout value records",
		Long: `structarith derives a constructor, IsZero and checked arithmetic
operations (Add, Sub, Mul, Div, the assign variants, scalar and fraction
scaling) for value records whose fields are unsigned integers or fixed-length
arrays of them.

Records are described in YAML/JSON schema files or by Go structs annotated
with the //structarith:derive directive.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(opts.verbose)
			if err != nil {
				return fmt.Errorf("failed to initialize logger: %w", err)
			}
			opts.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if opts.logger != nil {
				_ = opts.logger.Sync()
			}
		},
	}
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable debug logging")
	cmd.PersistentFlags().StringVar(&opts.config, "config", "", "configuration file (default ./"+DefaultConfigFile+" if present)")
	cmd.AddCommand(
		newGenerateCmd(opts),
		newValidateCmd(opts),
		newDescribeCmd(opts),
		newVersionCmd(),
	)
	return cmd
}

// fileConfig loads the configuration file named by --config, or the default
// one if it exists.
func (o *rootOptions) fileConfig() (*compiler.FileConfig, error) {
	path := o.config
	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err != nil {
			return &compiler.FileConfig{}, nil
		}
		path = DefaultConfigFile
	}
	fc, err := compiler.LoadFileConfig(path)
	if err != nil {
		return nil, err
	}
	// Paths in the file are relative to it.
	dir := filepath.Dir(path)
	for i, s := range fc.Schemas {
		if !filepath.IsAbs(s) {
			fc.Schemas[i] = filepath.Join(dir, s)
		}
	}
	if fc.Target != "" && !filepath.IsAbs(fc.Target) {
		fc.Target = filepath.Join(dir, fc.Target)
	}
	return fc, nil
}

// setup resolves the schema paths and the generator configuration. Options
// given on the command line are applied after the file ones.
func (o *rootOptions) setup(args []string, flags ...gen.Option) (*compiler.FileConfig, *gen.Config, []string, error) {
	fc, err := o.fileConfig()
	if err != nil {
		return nil, nil, nil, err
	}
	paths := args
	if len(paths) == 0 {
		paths = fc.Schemas
	}
	if len(paths) == 0 {
		return nil, nil, nil, fmt.Errorf("no schema paths given")
	}
	opts, err := fc.Options()
	if err != nil {
		return nil, nil, nil, err
	}
	opts = append(opts, flags...)
	opts = append(opts, gen.WithLogger(o.logger))
	config, err := gen.NewConfig(opts...)
	if err != nil {
		return nil, nil, nil, err
	}
	return fc, config, paths, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
