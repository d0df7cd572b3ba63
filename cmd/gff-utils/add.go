package main

import (
	"github.com/frubino/gff-utils/internal/cli"
	"github.com/spf13/cobra"
)

func newAddCmd(state *rootState) *cobra.Command {
	var opts cli.AddOptions

	cmd := &cobra.Command{
		Use:   "add [input] [output]",
		Short: "Add attributes to annotations",
		Long: `Adds one or more key:value attributes to each annotation.

Existing attributes are kept unless --overwrite is passed. A taxon_id value
must be numeric. The uid of an annotation cannot be changed. With --uid-file
only the annotations whose uid is listed in the file are changed.`,
		Example: `  gff-utils add -a taxon_id:9606 -a note:reviewed input.gff output.gff
  gff-utils add -o -a product:kinase -u uids.txt input.gff.gz`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input, opts.Output = inputOutput(args)
			return state.app.Add(opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Attributes, "attribute", "a", nil, "Attribute to add, as key:value")
	cmd.Flags().BoolVarP(&opts.Overwrite, "overwrite", "o", false, "Replace attributes already present")
	cmd.Flags().StringVarP(&opts.UIDFile, "uid-file", "u", "", "File with the uids of the annotations to change, one per line")
	_ = cmd.MarkFlagRequired("attribute")
	return cmd
}
