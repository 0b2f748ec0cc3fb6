package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/syssam/structarith/compiler"
	"github.com/syssam/structarith/compiler/gen"
)

// recordInfo is the description of a validated record.
type recordInfo struct {
	Name       string      `json:"name" yaml:"name"`
	Package    string      `json:"package" yaml:"package"`
	Output     string      `json:"output" yaml:"output"`
	Primary    string      `json:"primary" yaml:"primary"`
	Fields     []fieldInfo `json:"fields" yaml:"fields"`
	Reserved   int         `json:"reserved,omitempty" yaml:"reserved,omitempty"`
	Operations []string    `json:"operations" yaml:"operations"`
}

type fieldInfo struct {
	Name    string `json:"name" yaml:"name"`
	GoName  string `json:"go_name" yaml:"go_name"`
	Type    string `json:"type" yaml:"type"`
	Comment string `json:"comment,omitempty" yaml:"comment,omitempty"`
}

func describe(r *gen.Record) recordInfo {
	info := recordInfo{
		Name:    r.Name,
		Package: r.PackageName(),
		Output:  r.OutputPath(),
		Primary: r.Primary.String(),
	}
	for _, f := range r.Fields {
		info.Fields = append(info.Fields, fieldInfo{Name: f.Name, GoName: f.GoName, Type: f.TypeString(), Comment: f.Comment})
	}
	if r.Reserved != nil {
		info.Reserved = r.Reserved.Len
	}
	ops := r.Operations
	if ops == 0 {
		ops = gen.AllOperations
	}
	for _, op := range ops.Normalize().List() {
		info.Operations = append(info.Operations, op.Name())
	}
	return info
}

func newDescribeCmd(root *rootOptions) *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "describe [paths...]",
		Short: "Print the validated layout of the records in the given schema paths",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, config, paths, err := root.setup(args)
			if err != nil {
				return err
			}
			g, err := compiler.New(config).Load(paths...)
			if err != nil {
				return err
			}
			infos := make([]recordInfo, 0, len(g.Records))
			for _, r := range g.Records {
				infos = append(infos, describe(r))
			}
			return encode(cmd.OutOrStdout(), format, infos)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "yaml", "output format (yaml or json)")
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return err
		}
		return enc.Close()
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown format %q", format)
	}
}
