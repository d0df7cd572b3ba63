package main

import (
	"github.com/frubino/gff-utils/internal/cli"
	"github.com/frubino/gff-utils/pkg/table"
	"github.com/spf13/cobra"
)

func newTableCmd(state *rootState) *cobra.Command {
	var opts cli.TableOptions

	cmd := &cobra.Command{
		Use:   "table [input] [output]",
		Short: "Add attributes from a tab separated table",
		Long: `Reads a tab separated table whose first column is matched against a
field of each annotation (the uid by default). The following columns are
assigned, in order, to the attributes given with -a. Values already present
are replaced.

With --prodigal the key is the sequence name and the ID attribute joined
by "_", matching the gene names written by Prodigal.`,
		Example: `  gff-utils table -t kegg.tsv -k ID -a ko,ko_desc input.gff output.gff`,
		Args:    cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := state.app.Config.Table
			if !cmd.Flags().Changed("key") {
				opts.Key = cfg.Key
			}
			if !cmd.Flags().Changed("comment") {
				opts.CommentChar = cfg.CommentChar
			}
			if !cmd.Flags().Changed("skip-rows") {
				opts.SkipRows = cfg.SkipRows
			}
			opts.Input, opts.Output = inputOutput(args)
			return state.app.Table(opts)
		},
	}

	cmd.Flags().StringVarP(&opts.TableFile, "table", "t", "", "Table file")
	cmd.Flags().StringVarP(&opts.Key, "key", "k", "uid", "Annotation field matched against the first column")
	cmd.Flags().StringSliceVarP(&opts.Attributes, "attribute", "a", nil, "Attribute name for each table column after the first")
	cmd.Flags().BoolVarP(&opts.OnlyEdited, "only-edited", "o", false, "Write only annotations found in the table")
	cmd.Flags().BoolVarP(&opts.Prodigal, "prodigal", "p", false, "Build the key from a Prodigal ID")
	cmd.Flags().StringVarP(&opts.CommentChar, "comment", "c", table.DefaultCommentPrefix, "Prefix of the table lines to skip")
	cmd.Flags().IntVarP(&opts.SkipRows, "skip-rows", "s", 0, "Number of table lines to skip first")
	_ = cmd.MarkFlagRequired("table")
	_ = cmd.MarkFlagRequired("attribute")
	return cmd
}
