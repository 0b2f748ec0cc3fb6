package compiler

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/syssam/structarith/compiler/gen"
)

// FileConfig is the layout of a structarith.yaml configuration file.
//
//	schemas: [schema/]
//	target: internal/amount
//	operations: [add, sub, mul_bps]
type FileConfig struct {
	// Schemas are the schema paths generated when none are given.
	Schemas    []string `yaml:"schemas,omitempty"`
	Target     string   `yaml:"target,omitempty"`
	Package    string   `yaml:"package,omitempty"`
	Header     string   `yaml:"header,omitempty"`
	Operations []string `yaml:"operations,omitempty"`
	Workers    int      `yaml:"workers,omitempty"`
	Runtime    string   `yaml:"runtime,omitempty"`
	// Cache disables the incremental cache when false.
	Cache *bool `yaml:"cache,omitempty"`
}

// LoadFileConfig reads a configuration file. Unknown keys are rejected.
func LoadFileConfig(path string) (*FileConfig, error) {
	buf, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("compiler: read config: %w", err)
	}
	fc := &FileConfig{}
	dec := yaml.NewDecoder(bytes.NewReader(buf))
	dec.KnownFields(true)
	if err := dec.Decode(fc); err != nil && !errors.Is(err, io.EOF) {
		return nil, gen.NewConfigError("File", path, err.Error())
	}
	return fc, nil
}

// CacheEnabled reports whether the file leaves the cache enabled.
func (fc *FileConfig) CacheEnabled() bool {
	return fc.Cache == nil || *fc.Cache
}

// Options returns the generator options set by the file. Unset keys yield
// no option, so the defaults or later options apply.
func (fc *FileConfig) Options() ([]gen.Option, error) {
	var opts []gen.Option
	if fc.Target != "" {
		opts = append(opts, gen.WithTarget(fc.Target))
	}
	if fc.Package != "" {
		opts = append(opts, gen.WithPackage(fc.Package))
	}
	if fc.Header != "" {
		opts = append(opts, gen.WithHeader(fc.Header))
	}
	if len(fc.Operations) > 0 {
		ops, err := gen.ParseOperations(fc.Operations...)
		if err != nil {
			return nil, err
		}
		opts = append(opts, gen.WithOperations(ops))
	}
	if fc.Workers != 0 {
		opts = append(opts, gen.WithWorkers(fc.Workers))
	}
	if fc.Runtime != "" {
		opts = append(opts, gen.WithRuntime(fc.Runtime))
	}
	return opts, nil
}
