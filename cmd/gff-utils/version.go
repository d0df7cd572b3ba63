package main

import (
	"fmt"
	"strings"

	gffutils "github.com/frubino/gff-utils"
	"github.com/spf13/cobra"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number of gff-utils",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "gff-utils version %s\n", strings.TrimSpace(gffutils.Version))
		},
	}
}
