package main

import (
	"github.com/frubino/gff-utils/internal/cli"
	"github.com/spf13/cobra"
)

func newRemoveCmd(state *rootState) *cobra.Command {
	var opts cli.RemoveOptions

	cmd := &cobra.Command{
		Use:     "rm [input] [output]",
		Aliases: []string{"remove"},
		Short:   "Remove attributes from annotations",
		Long: `Removes the named attributes from each annotation. Names that are not
present are ignored. Removing taxon_id unassigns the taxon; the uid cannot be
removed.`,
		Args: cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.Input, opts.Output = inputOutput(args)
			return state.app.Remove(opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Attributes, "attribute", "a", nil, "Attribute to remove")
	cmd.Flags().StringVarP(&opts.UIDFile, "uid-file", "u", "", "File with the uids of the annotations to change, one per line")
	_ = cmd.MarkFlagRequired("attribute")
	return cmd
}
