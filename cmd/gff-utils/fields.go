package main

import (
	"fmt"

	"github.com/frubino/gff-utils/internal/cli"
	"github.com/spf13/cobra"
)

func newFieldsCmd(state *rootState) *cobra.Command {
	var opts cli.FieldsOptions

	cmd := &cobra.Command{
		Use:   "fields [input]",
		Short: "List the fields found in the first annotations",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("num-ann") {
				opts.NumAnn = state.app.Config.Fields.NumAnn
			}
			if opts.NumAnn < 1 {
				return fmt.Errorf("--num-ann must be at least 1, got %d", opts.NumAnn)
			}
			opts.Input, _ = inputOutput(args)
			return state.app.Fields(opts)
		},
	}

	cmd.Flags().IntVarP(&opts.NumAnn, "num-ann", "n", 100, "Number of annotations to scan")
	return cmd
}
