package gen

import (
	"errors"
	"go/token"

	"go.uber.org/zap"
)

// DefaultRuntime is the import path of the package generated code imports
// its checked helpers from.
const DefaultRuntime = "github.com/syssam/structarith"

// DefaultHeader is the comment placed at the top of each generated file.
const DefaultHeader = "Code generated by structarith. DO NOT EDIT."

// Config holds the global codegen configuration shared by all records.
type Config struct {
	// Target is the output directory. If empty, each record is written next
	// to the schema it was loaded from.
	Target string
	// Package overrides the package name of generated files.
	Package string
	// Header is the comment at the top of each generated file.
	Header string
	// Operations selects the generated operations.
	Operations Operation
	// Workers bounds parallel rendering. Zero means GOMAXPROCS.
	Workers int
	// Runtime is the import path of the checked arithmetic helpers.
	Runtime string
	// Logger receives generation events.
	Logger *zap.Logger
	// Hooks wrap the generator, outermost first.
	Hooks []Hook
}

// Option configures code generation.
type Option func(*Config) error

// WithTarget sets the output directory.
func WithTarget(dir string) Option {
	return func(c *Config) error {
		if dir == "" {
			return NewConfigError("Target", nil, "target directory cannot be empty")
		}
		c.Target = dir
		return nil
	}
}

// WithPackage sets the package name of generated files.
func WithPackage(pkg string) Option {
	return func(c *Config) error {
		if !token.IsIdentifier(pkg) || token.IsKeyword(pkg) {
			return NewConfigError("Package", pkg, "package must be a valid Go identifier")
		}
		c.Package = pkg
		return nil
	}
}

// WithHeader sets the file header comment.
func WithHeader(header string) Option {
	return func(c *Config) error {
		c.Header = header
		return nil
	}
}

// WithOperations restricts generation to the given operations. Implied
// operations are added, see Operation.Normalize.
func WithOperations(ops ...Operation) Option {
	return func(c *Config) error {
		var set Operation
		for _, op := range ops {
			set |= op
		}
		if set&AllOperations == 0 {
			return NewConfigError("Operations", nil, "no operations selected")
		}
		c.Operations = set.Normalize()
		return nil
	}
}

// WithWorkers sets the number of records rendered in parallel.
func WithWorkers(n int) Option {
	return func(c *Config) error {
		if n < 0 {
			return NewConfigError("Workers", n, "workers cannot be negative")
		}
		c.Workers = n
		return nil
	}
}

// WithRuntime sets the import path of the runtime helpers package.
func WithRuntime(path string) Option {
	return func(c *Config) error {
		if path == "" {
			return NewConfigError("Runtime", nil, "runtime import path cannot be empty")
		}
		c.Runtime = path
		return nil
	}
}

// WithLogger sets the generation logger.
func WithLogger(l *zap.Logger) Option {
	return func(c *Config) error {
		if l == nil {
			return NewConfigError("Logger", nil, "logger cannot be nil")
		}
		c.Logger = l
		return nil
	}
}

// WithHooks adds generation hooks.
// Hooks are called before/after code generation.
func WithHooks(hooks ...Hook) Option {
	return func(c *Config) error {
		for _, h := range hooks {
			if h == nil {
				return NewConfigError("Hooks", nil, "hook cannot be nil")
			}
		}
		c.Hooks = append(c.Hooks, hooks...)
		return nil
	}
}

// Apply applies options to the config.
// It returns the first error encountered.
func (c *Config) Apply(opts ...Option) error {
	for _, opt := range opts {
		if err := opt(c); err != nil {
			return err
		}
	}
	return nil
}

// ApplyAll applies options and collects all errors.
// Returns a joined error if any options failed.
func (c *Config) ApplyAll(opts ...Option) error {
	var errs []error
	for _, opt := range opts {
		if err := opt(c); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// NewConfig creates a new Config with the defaults and the given options.
func NewConfig(opts ...Option) (*Config, error) {
	c := &Config{
		Header:     DefaultHeader,
		Operations: AllOperations,
		Runtime:    DefaultRuntime,
		Logger:     zap.NewNop(),
	}
	if err := c.Apply(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

// MustNewConfig creates a new Config with the given options.
// It panics if any option fails.
func MustNewConfig(opts ...Option) *Config {
	c, err := NewConfig(opts...)
	if err != nil {
		panic(err)
	}
	return c
}

// OperationEnabled reports if the operation is generated.
func (c *Config) OperationEnabled(op Operation) bool {
	return c.EnabledOperations().Has(op)
}

// EnabledOperations returns the normalized set of generated operations.
// An empty Operations field selects every operation.
func (c *Config) EnabledOperations() Operation {
	if c.Operations == 0 {
		return AllOperations
	}
	return c.Operations.Normalize()
}

func (c *Config) logger() *zap.Logger {
	if c.Logger == nil {
		return zap.NewNop()
	}
	return c.Logger
}
