package main

import (
	"github.com/frubino/gff-utils/internal/cli"
	"github.com/frubino/gff-utils/pkg/syntax"
	"github.com/spf13/cobra"
)

func newConvertCmd(state *rootState) *cobra.Command {
	var to string

	cmd := &cobra.Command{
		Use:   "convert [input] [output]",
		Short: "Rewrite annotations in another attribute format",
		Long: `Rewrites the input, read with --format, with the attribute column in the
format given by --to.`,
		Example: `  gff-utils --format gtf convert --to gff input.gtf output.gff`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			dialect, err := syntax.ParseDialect(to)
			if err != nil {
				return err
			}
			input, output := inputOutput(args)
			return state.app.Convert(cli.ConvertOptions{Input: input, Output: output, To: dialect})
		},
	}

	cmd.Flags().StringVar(&to, "to", "gff", "Output attribute format: gff or gtf")
	_ = cmd.RegisterFlagCompletionFunc("to", completeDialect)
	return cmd
}

func newGtfCmd(state *rootState) *cobra.Command {
	return &cobra.Command{
		Use:   "gtf [input] [output]",
		Short: "Convert a GTF file to GFF",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, output := inputOutput(args)
			return state.app.GtfToGff(input, output)
		},
	}
}
