package main

import (
	"github.com/frubino/gff-utils/internal/cli"
	"github.com/spf13/cobra"
)

func newViewCmd(state *rootState) *cobra.Command {
	var opts cli.ViewOptions

	cmd := &cobra.Command{
		Use:   "view [input] [output]",
		Short: "Print fields of annotations as a table",
		Long: `Writes the requested fields of each annotation as a tab separated row.

Fields are either columns (seq_id, source, feature_type, start, end, score,
strand, phase), the uid, the taxon_id, the derived length, or any attribute.
Use the fields command to list what the input contains.`,
		Example: `  gff-utils view -e -a uid,seq_id,length,product input.gff`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input, opts.Output = inputOutput(args)
			return state.app.View(opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Attributes, "attribute", "a", nil, "Field to print")
	cmd.Flags().BoolVarP(&opts.KeepEmpty, "keep-empty", "k", false, "Write missing attributes as empty values")
	cmd.Flags().BoolVarP(&opts.Header, "header", "e", false, "Write a header line")
	_ = cmd.MarkFlagRequired("attribute")
	return cmd
}
