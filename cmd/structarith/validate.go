package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/syssam/structarith/compiler"
)

func newValidateCmd(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [paths...]",
		Short: "Validate the records in the given schema paths without generating",
		RunE: func(cmd *cobra.Command, args []string) error {
			_, config, paths, err := root.setup(args)
			if err != nil {
				return err
			}
			g, err := compiler.New(config).Load(paths...)
			if err != nil {
				return err
			}
			for _, r := range g.Records {
				fmt.Fprintf(cmd.OutOrStdout(), "%s: ok (%s)\n", r.Name, r.Pos())
			}
			return nil
		},
	}
}
